// Package observability provides formatted terminal output for the review
// summary, the wizard position and generation results.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/review"
	"github.com/jonathan/resume-builder/internal/wizard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxDescriptionsToShow caps the description lines per experience
	maxDescriptionsToShow = 3
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// wrap splits s into lines of at most width runes, breaking at spaces where
// possible. Continuation lines keep the indentation of the first.
func wrap(s string, width int) []string {
	if utf8.RuneCountInString(s) <= width {
		return []string{s}
	}
	indent := s[:len(s)-len(strings.TrimLeft(s, " "))]
	words := strings.Fields(s)

	var lines []string
	current := indent
	for _, word := range words {
		for utf8.RuneCountInString(indent+word) > width {
			// A single word wider than the box is split hard
			if current != indent {
				lines = append(lines, current)
				current = indent
			}
			runes := []rune(word)
			cut := width - utf8.RuneCountInString(indent)
			lines = append(lines, indent+string(runes[:cut]))
			word = string(runes[cut:])
		}
		switch {
		case current == indent:
			current += word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = indent + word
		}
	}
	if current != indent {
		lines = append(lines, current)
	}
	return lines
}

// PrintReview outputs one box per review section.
func (p *Printer) PrintReview(summary review.Summary) {
	for _, section := range summary.Sections {
		title := fmt.Sprintf("%s (edit: step %d)", strings.ToUpper(section.Title), section.Step)
		if section.Empty {
			p.printBox(title, section.Placeholder)
			continue
		}

		var sb strings.Builder
		for _, field := range section.Fields {
			sb.WriteString(fmt.Sprintf("%s: %s\n", field.Label, field.Value))
		}

		for i, exp := range section.Experiences {
			sb.WriteString(fmt.Sprintf("#%d  %s", exp.Index+1, exp.Title))
			if exp.Duration != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.Duration))
			}
			sb.WriteString("\n")

			count := min(len(exp.Descriptions), maxDescriptionsToShow)
			for j := 0; j < count; j++ {
				sb.WriteString(fmt.Sprintf("  • %s\n", exp.Descriptions[j]))
			}
			if len(exp.Descriptions) > maxDescriptionsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(exp.Descriptions)-maxDescriptionsToShow))
			}
			if len(exp.Tags) > 0 {
				sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(exp.Tags, ", ")))
			}
			if i < len(section.Experiences)-1 {
				sb.WriteString("\n")
			}
		}

		for _, cat := range section.Skills {
			sb.WriteString(fmt.Sprintf("%s: %s\n", cat.Title, strings.Join(cat.Tags, ", ")))
		}

		p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintGeneration outputs the outcome of a generation request. path is where
// the resume was downloaded to, if anywhere. The user-facing message follows
// the box on its own line so it is never wrapped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGeneration(state generation.State, path string) {
	switch state.Phase {
	case generation.PhaseSucceeded:
		var lines []string
		if state.Artifact != nil {
			lines = append(lines,
				fmt.Sprintf("File:  %s", state.Artifact.Filename),
				fmt.Sprintf("Size:  %d bytes", state.Artifact.Size),
			)
		}
		if path != "" {
			lines = append(lines, fmt.Sprintf("Saved: %s", path))
		}
		p.printBox("✅ RESUME GENERATED", strings.Join(lines, "\n"))
	case generation.PhaseFailed:
		content := ""
		if state.Err != nil {
			content = fmt.Sprintf("Kind: %s", state.Err.Kind)
			if state.Err.Status != 0 {
				content += fmt.Sprintf("\nStatus: %d", state.Err.Status)
			}
		}
		p.printBox("⚠ GENERATION FAILED", content)
	case generation.PhasePending:
		p.printBox("GENERATING", "")
	default:
		return
	}
	fmt.Fprintln(p.out, state.Message())
}

// PrintSteps outputs the wizard sections, marking the active one.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSteps(active int) {
	for _, step := range wizard.Steps {
		marker := " "
		if step.Index == active {
			marker = "▶"
		}
		fmt.Fprintf(p.out, "%s %d. %-24s %s\n", marker, step.Index, step.Title, step.Key)
	}
	if active == wizard.StepResult {
		fmt.Fprintf(p.out, "▶ %d. %s\n", wizard.StepResult, wizard.Title(wizard.StepResult))
	}
}
