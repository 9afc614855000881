package review

import (
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Placeholders shown when a whole section has nothing to display
const (
	PlaceholderPersonalInfo    = "No personal information provided."
	PlaceholderThoughtworks    = "No ThoughtWorks experience provided."
	PlaceholderOtherExperience = "No other experience provided."
	PlaceholderSkills          = "No skills provided."
)

const (
	untitledPosition       = "Untitled Position"
	unlabeledSkillCategory = "Unlabeled Skill Category"
)

// Summary is the read-only view of a document used by the review step
type Summary struct {
	Sections []Section
}

// Section is one block of the review view. Step is the wizard step its
// edit action navigates to.
type Section struct {
	Title       string
	Step        int
	Empty       bool
	Placeholder string
	Fields      []LabeledValue
	Experiences []ExperienceEntry
	Skills      []SkillEntry
}

// LabeledValue is a single personal-information line
type LabeledValue struct {
	Label string
	Value string
}

// ExperienceEntry is a non-empty experience. Index is its position in the
// document list so edits can be routed back to it.
type ExperienceEntry struct {
	Index        int
	Title        string
	Duration     string
	Descriptions []string
	Tags         []string
}

// SkillEntry is a non-empty skill category
type SkillEntry struct {
	Index int
	Title string
	Tags  []string
}

// HasContent reports whether any section has something to show.
func (s Summary) HasContent() bool {
	for _, section := range s.Sections {
		if !section.Empty {
			return true
		}
	}
	return false
}

// Build derives the review summary. The document is not modified.
func Build(doc types.ResumeDocument) Summary {
	return Summary{
		Sections: []Section{
			personalSection(doc),
			experienceSection(wizard.StepThoughtworksExperience, PlaceholderThoughtworks, doc.ThoughtworksExperiences),
			experienceSection(wizard.StepOtherExperience, PlaceholderOtherExperience, doc.OtherExperiences),
			skillsSection(doc.Skills),
		},
	}
}

// IsPersonalInfoEmpty reports whether the personal section has nothing to
// show. Pronouns alone do not count as content.
func IsPersonalInfoEmpty(doc types.ResumeDocument) bool {
	return IsEmpty(doc.Name) && IsEmpty(doc.Role) && IsEmpty(doc.Summary)
}

func personalSection(doc types.ResumeDocument) Section {
	section := Section{
		Title: wizard.Title(wizard.StepPersonalInfo),
		Step:  wizard.StepPersonalInfo,
	}
	if IsPersonalInfoEmpty(doc) {
		section.Empty = true
		section.Placeholder = PlaceholderPersonalInfo
		return section
	}

	candidates := []LabeledValue{
		{Label: "Name", Value: doc.Name},
		{Label: "Preferred Pronouns", Value: doc.PreferredPronouns},
		{Label: "Current Role", Value: doc.Role},
		{Label: "Professional Summary", Value: doc.Summary},
	}
	for _, field := range candidates {
		if !IsEmpty(field.Value) {
			section.Fields = append(section.Fields, field)
		}
	}
	return section
}

func experienceSection(step int, placeholder string, exps []types.Experience) Section {
	section := Section{
		Title: wizard.Title(step),
		Step:  step,
	}
	for i, exp := range exps {
		if IsExperienceEmpty(exp) {
			continue
		}
		entry := ExperienceEntry{
			Index:    i,
			Title:    exp.Title,
			Duration: exp.Duration,
			Tags:     SplitTags(exp.TechStack),
		}
		if IsEmpty(entry.Title) {
			entry.Title = untitledPosition
		}
		for _, desc := range exp.Descriptions {
			if !IsEmpty(desc) {
				entry.Descriptions = append(entry.Descriptions, desc)
			}
		}
		section.Experiences = append(section.Experiences, entry)
	}
	if len(section.Experiences) == 0 {
		section.Empty = true
		section.Placeholder = placeholder
	}
	return section
}

func skillsSection(cats []types.SkillCategory) Section {
	section := Section{
		Title: wizard.Title(wizard.StepSkills),
		Step:  wizard.StepSkills,
	}
	for i, cat := range cats {
		if IsSkillCategoryEmpty(cat) {
			continue
		}
		entry := SkillEntry{
			Index: i,
			Title: cat.Title,
			Tags:  SplitTags(cat.Skills),
		}
		if IsEmpty(entry.Title) {
			entry.Title = unlabeledSkillCategory
		}
		section.Skills = append(section.Skills, entry)
	}
	if len(section.Skills) == 0 {
		section.Empty = true
		section.Placeholder = PlaceholderSkills
	}
	return section
}
