package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/review"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReview_Placeholders(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReview(review.Build(types.DefaultResumeDocument()))
	output := buf.String()

	assert.Contains(t, output, "PERSONAL INFORMATION (edit: step 0)")
	assert.Contains(t, output, review.PlaceholderPersonalInfo)
	assert.Contains(t, output, review.PlaceholderThoughtworks)
	assert.Contains(t, output, review.PlaceholderOtherExperience)
	assert.Contains(t, output, review.PlaceholderSkills)
}

func TestPrintReview_Content(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.DefaultResumeDocument()
	doc.Name = "Jane Doe"
	doc.Role = "Developer"
	doc.ThoughtworksExperiences[0] = types.Experience{
		Title:        "Lead Dev",
		Duration:     "2020 - 2024",
		Descriptions: []string{"Built things", "", "Led team", "Mentored", "Hired"},
		TechStack:    "Go, Kafka",
	}
	doc.Skills[0] = types.SkillCategory{Title: "Languages", Skills: "Go, , Java"}

	p.PrintReview(review.Build(doc))
	output := buf.String()

	assert.Contains(t, output, "Name: Jane Doe")
	assert.Contains(t, output, "Current Role: Developer")
	assert.Contains(t, output, "#1  Lead Dev (2020 - 2024)")
	assert.Contains(t, output, "• Built things")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "[Go, Kafka]")
	assert.Contains(t, output, "Languages: Go, Java")
	assert.NotContains(t, output, review.PlaceholderSkills)
}

func TestPrintGeneration(t *testing.T) {
	tests := []struct {
		name     string
		state    generation.State
		path     string
		contains []string
	}{
		{
			name: "succeeded",
			state: generation.State{
				Phase:    generation.PhaseSucceeded,
				Artifact: &generation.Artifact{Filename: "Jane_Doe_resume.pdf", Size: 1024},
			},
			path:     "out/Jane_Doe_resume.pdf",
			contains: []string{"RESUME GENERATED", generation.SuccessMessage, "Jane_Doe_resume.pdf", "1024 bytes", "Saved: out/Jane_Doe_resume.pdf"},
		},
		{
			name: "failed",
			state: generation.State{
				Phase: generation.PhaseFailed,
				Err:   &generation.Error{Kind: generation.KindServerError, Message: "Server error: 400 - bad input"},
			},
			contains: []string{"GENERATION FAILED", "Server error: 400 - bad input", "Kind: server_error"},
		},
		{
			name:     "pending",
			state:    generation.State{Phase: generation.PhasePending},
			contains: []string{"GENERATING", generation.PendingMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintGeneration(tt.state, tt.path)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrintGeneration_IdlePrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGeneration(generation.State{}, "")
	assert.Empty(t, buf.String())
}

func TestPrintSteps(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSteps(wizard.StepSkills)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, wizard.NumSections)
	assert.True(t, strings.HasPrefix(lines[wizard.StepSkills], "▶ 3. Skills"))
	assert.True(t, strings.HasPrefix(lines[0], "  0. Personal Information"))
}

func TestPrintSteps_Result(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSteps(wizard.StepResult)
	assert.Contains(t, buf.String(), "▶ 5. Result")
}

func TestPrintGeneration_FullFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		kind    generation.ErrorKind
		message string
	}{
		{
			name:    "connection refused",
			kind:    generation.KindConnectionRefused,
			message: "Could not connect to the backend server. Please ensure it is running at http://localhost:5001",
		},
		{
			name:    "no response",
			kind:    generation.KindNoResponse,
			message: "No response received from server. Please check if the backend is running.",
		},
		{
			name:    "timeout",
			kind:    generation.KindTimeout,
			message: "Request timed out after 30s. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			state := generation.State{
				Phase: generation.PhaseFailed,
				Err:   &generation.Error{Kind: tt.kind, Message: tt.message},
			}
			NewPrinter(&buf).PrintGeneration(state, "")

			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), "Kind: "+string(tt.kind))
		})
	}
}

func TestPrintBox_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("lorem ipsum ", 20) + strings.Repeat("x", 120)
	p.printBox("TITLE", long)

	var body []string
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
		if strings.HasPrefix(line, "│ ") {
			body = append(body, strings.TrimSpace(strings.Trim(line, "│")))
		}
	}
	assert.NotContains(t, buf.String(), "...")
	require.Greater(t, len(body), 2)
	assert.Equal(t, strings.ReplaceAll(long, " ", ""), strings.ReplaceAll(strings.Join(body[1:], ""), " ", ""), "no content is dropped")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 9))
	assert.Equal(t, []string{"  • one", "  two"}, wrap("  • one two", 8))
	assert.Equal(t, []string{"abcde", "fghij", "k"}, wrap("abcdefghijk", 5))
}
