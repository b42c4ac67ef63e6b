package domain

import (
	"strings"

	"github.com/mouse-blink/mojifix/internal/domain/repair"
	m "github.com/mouse-blink/mojifix/internal/model"
)

// Resolver picks the final text of one literal.
type Resolver interface {
	Resolve(text string) repair.Resolution
}

// FileOutcome is the rewritten text of one file and what changed in it.
type FileOutcome struct {
	Text       string
	Changes    []m.ChangeRecord
	Unresolved []m.Finding
}

// Changed reports whether any literal was replaced.
func (o FileOutcome) Changed() bool {
	return len(o.Changes) > 0
}

// Process rebuilds text from spans, replacing the literals the resolver
// changes. Code spans are copied verbatim.
func Process(file, text string, spans []m.Span, resolver Resolver, directives Directives) FileOutcome {
	return process(file, text, spans, resolver, directives, newLineIndex(text))
}

func process(file, text string, spans []m.Span, resolver Resolver, directives Directives, lines lineIndex) FileOutcome {
	outcome := FileOutcome{Text: text}

	if directives.IgnoresFile() {
		return outcome
	}

	var sb strings.Builder

	sb.Grow(len(text))

	for _, span := range spans {
		if !span.IsLiteral() {
			sb.WriteString(span.Text)

			continue
		}

		line := lines.line(span.Start)
		if directives.IgnoresLine(line) {
			sb.WriteString(span.Text)

			continue
		}

		res := resolver.Resolve(span.Text)

		switch {
		case res.Changed:
			sb.WriteString(res.Text)

			outcome.Changes = append(outcome.Changes, m.ChangeRecord{
				File:       file,
				Line:       line,
				Before:     span.Text,
				After:      res.Text,
				Provenance: res.Winner.Provenance,
			})
		case res.Unresolved():
			sb.WriteString(span.Text)

			outcome.Unresolved = append(outcome.Unresolved, m.Finding{
				File: file,
				Line: line,
				Text: span.Text,
			})
		default:
			sb.WriteString(span.Text)
		}
	}

	if outcome.Changed() {
		outcome.Text = sb.String()
	}

	return outcome
}
