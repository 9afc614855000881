// Package wizard provides the step sequence of the resume builder and the
// controller that moves between steps.
package wizard

// Step indices of the editable sections, in presentation order
const (
	StepPersonalInfo = iota
	StepThoughtworksExperience
	StepOtherExperience
	StepSkills
	StepReview
)

// NumSections is the number of editable sections. It is also the index of the
// terminal result step, which follows the last section.
const NumSections = StepReview + 1

// StepResult is the terminal pseudo-step shown after a generation attempt.
const StepResult = NumSections

// StepDefinition defines metadata for a wizard step
type StepDefinition struct {
	Index int
	Key   string
	Title string
}

// Steps lists the editable sections in order.
var Steps = []StepDefinition{
	{Index: StepPersonalInfo, Key: "personal_info", Title: "Personal Information"},
	{Index: StepThoughtworksExperience, Key: "thoughtworks_experience", Title: "ThoughtWorks Experience"},
	{Index: StepOtherExperience, Key: "other_experience", Title: "Other Experience"},
	{Index: StepSkills, Key: "skills", Title: "Skills"},
	{Index: StepReview, Key: "review", Title: "Review & Submit"},
}

// Title returns the display title of a step, including the result step.
func Title(step int) string {
	if step >= 0 && step < len(Steps) {
		return Steps[step].Title
	}
	if step == StepResult {
		return "Result"
	}
	return "Unknown step"
}
