// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument is the canonical structured representation of a resume.
// The three list-valued sections always hold at least one element.
type ResumeDocument struct {
	Name                    string          `json:"name"`
	PreferredPronouns       string          `json:"preferred_pronouns"`
	Role                    string          `json:"role"`
	Summary                 string          `json:"summary"`
	ThoughtworksExperiences []Experience    `json:"thoughtworks_experiences"`
	OtherExperiences        []Experience    `json:"other_experiences"`
	Skills                  []SkillCategory `json:"skills"`
}

// Experience represents a single role or engagement
type Experience struct {
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	Descriptions []string `json:"descriptions"`
	// TechStack is free text shown as comma-separated tags; it is never parsed structurally.
	TechStack string `json:"tech_stack"`
}

// SkillCategory groups comma-separated skills under a title
type SkillCategory struct {
	Title  string `json:"title"`
	Skills string `json:"skills"`
}

// DefaultExperience returns a blank experience with a single empty description.
func DefaultExperience() Experience {
	return Experience{Descriptions: []string{""}}
}

// DefaultSkillCategory returns a blank skill category.
func DefaultSkillCategory() SkillCategory {
	return SkillCategory{}
}

// DefaultResumeDocument returns the document a new session starts with:
// empty scalar fields and one blank entry in every list.
func DefaultResumeDocument() ResumeDocument {
	return ResumeDocument{
		ThoughtworksExperiences: []Experience{DefaultExperience()},
		OtherExperiences:        []Experience{DefaultExperience()},
		Skills:                  []SkillCategory{DefaultSkillCategory()},
	}
}

// Clone returns a deep copy of the experience.
func (e Experience) Clone() Experience {
	e.Descriptions = append([]string(nil), e.Descriptions...)
	return e
}

// Clone returns a deep copy of the document. The copy shares no slices with d.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.ThoughtworksExperiences = cloneExperiences(d.ThoughtworksExperiences)
	out.OtherExperiences = cloneExperiences(d.OtherExperiences)
	out.Skills = append([]SkillCategory(nil), d.Skills...)
	return out
}

// Normalize restores the non-empty list invariants on a document that came
// from outside the session (JSON file, sample data). Absent or empty lists
// become a single default element.
func (d *ResumeDocument) Normalize() {
	d.ThoughtworksExperiences = normalizeExperiences(d.ThoughtworksExperiences)
	d.OtherExperiences = normalizeExperiences(d.OtherExperiences)
	if len(d.Skills) == 0 {
		d.Skills = []SkillCategory{DefaultSkillCategory()}
	}
}

func cloneExperiences(in []Experience) []Experience {
	if in == nil {
		return nil
	}
	out := make([]Experience, len(in))
	for i, exp := range in {
		out[i] = exp.Clone()
	}
	return out
}

func normalizeExperiences(in []Experience) []Experience {
	if len(in) == 0 {
		return []Experience{DefaultExperience()}
	}
	for i := range in {
		if len(in[i].Descriptions) == 0 {
			in[i].Descriptions = []string{""}
		}
	}
	return in
}
