package domain

import "sort"

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

func newLineIndex(text string) lineIndex {
	starts := lineIndex{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// line returns the 1-based line containing offset.
func (li lineIndex) line(offset int) int {
	return sort.Search(len(li), func(i int) bool { return li[i] > offset })
}

// start returns the byte offset of a 1-based line.
func (li lineIndex) start(line int) int {
	if line <= 0 || line > len(li) {
		return -1
	}

	return li[line-1]
}
