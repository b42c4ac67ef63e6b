package domain

import (
	"strings"
	"unicode"

	m "github.com/mouse-blink/mojifix/internal/model"
)

const (
	directiveIgnore     = "mojifix:ignore"
	directiveIgnoreFile = "mojifix:ignore-file"
)

// Directives holds the inline ignore comments of one file.
//
// A comment containing mojifix:ignore excludes the literals on its own line,
// or on the following line when the comment is the first thing on its line.
// mojifix:ignore-file anywhere, or mojifix:ignore before any code, excludes
// the whole file.
type Directives struct {
	file  bool
	lines map[int]struct{}
}

// IgnoresFile reports whether the file must be left untouched.
func (d Directives) IgnoresFile() bool {
	return d.file
}

// IgnoresLine reports whether literals starting on line are excluded.
func (d Directives) IgnoresLine(line int) bool {
	if d.file {
		return true
	}

	_, ok := d.lines[line]

	return ok
}

// BuildDirectives scans the comments in the code spans of text.
func BuildDirectives(text string, spans []m.Span) Directives {
	return buildDirectives(text, spans, newLineIndex(text))
}

func buildDirectives(text string, spans []m.Span, lines lineIndex) Directives {
	var d Directives

	seenCode := false

	for _, span := range spans {
		if span.IsLiteral() {
			seenCode = true

			continue
		}

		for _, c := range scanComments(span, &seenCode) {
			kind, ok := parseDirective(c.text)
			if !ok {
				continue
			}

			if kind == directiveIgnoreFile || c.beforeCode {
				d.file = true

				continue
			}

			line := lines.line(c.start)
			if isLeadingComment(text, lines, line, c.start) {
				line++
			}

			if d.lines == nil {
				d.lines = make(map[int]struct{})
			}

			d.lines[line] = struct{}{}
		}
	}

	return d
}

type comment struct {
	start      int
	text       string
	beforeCode bool
}

// scanComments finds // and /* */ comments in a code span. seenCode is set
// once any non-space, non-comment byte has been passed.
func scanComments(span m.Span, seenCode *bool) []comment {
	var out []comment

	s := span.Text

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "//"):
			end := strings.IndexByte(s[i:], '\n')
			if end < 0 {
				end = len(s) - i
			}

			out = append(out, comment{
				start:      span.Start + i,
				text:       s[i : i+end],
				beforeCode: !*seenCode,
			})
			i += end
		case strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				end = len(s) - i
			} else {
				end += 4
			}

			out = append(out, comment{
				start:      span.Start + i,
				text:       s[i : i+end],
				beforeCode: !*seenCode,
			})
			i += end
		default:
			if !unicode.IsSpace(rune(s[i])) {
				*seenCode = true
			}
			i++
		}
	}

	return out
}

// parseDirective returns the directive named by a comment.
func parseDirective(commentText string) (string, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	for _, kind := range []string{directiveIgnoreFile, directiveIgnore} {
		if !strings.HasPrefix(s, kind) {
			continue
		}

		rest := s[len(kind):]
		if rest == "" || unicode.IsSpace(rune(rest[0])) {
			return kind, true
		}
	}

	return "", false
}

// isLeadingComment reports whether only whitespace precedes offset on line.
func isLeadingComment(text string, lines lineIndex, line, offset int) bool {
	start := lines.start(line)
	if start < 0 || offset < start || offset > len(text) {
		return false
	}

	for _, r := range text[start:offset] {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
