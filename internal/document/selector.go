// Package document provides the pure update operations section editors use to
// change a resume document. Every operation takes a document and returns a new
// one; the input is never modified.
package document

import (
	"fmt"
	"strings"
)

// Section identifies one of the list-valued sections of a resume
type Section int

// Sections in the order the wizard presents them
const (
	ThoughtworksExperiences Section = iota
	OtherExperiences
	Skills
)

var sectionKeys = map[Section]string{
	ThoughtworksExperiences: "thoughtworks_experiences",
	OtherExperiences:        "other_experiences",
	Skills:                  "skills",
}

// String returns the JSON key of the section.
func (s Section) String() string {
	if key, ok := sectionKeys[s]; ok {
		return key
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// HoldsExperiences reports whether the section is a list of experiences.
func (s Section) HoldsExperiences() bool {
	return s == ThoughtworksExperiences || s == OtherExperiences
}

// ParseSection maps a JSON key (or its hyphenated form) to a Section.
func ParseSection(key string) (Section, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
	for section, k := range sectionKeys {
		if k == normalized {
			return section, nil
		}
	}
	return 0, &SelectorError{Message: fmt.Sprintf("unknown section %q", key)}
}

// Selector addresses a list inside the document: either a top-level section
// or the descriptions of one experience in an experience section.
type Selector struct {
	Section Section
	// Descriptions selects the descriptions list of the experience at
	// Experience instead of the section list itself.
	Descriptions bool
	Experience   int
}

// ListOf selects a top-level section list.
func ListOf(section Section) Selector {
	return Selector{Section: section}
}

// DescriptionsOf selects the descriptions list of one experience.
func DescriptionsOf(section Section, experience int) Selector {
	return Selector{Section: section, Descriptions: true, Experience: experience}
}

func (s Selector) String() string {
	if s.Descriptions {
		return fmt.Sprintf("%s[%d].descriptions", s.Section, s.Experience)
	}
	return s.Section.String()
}

// Field names an editable field of a list element or of the document itself
type Field string

// Element fields
const (
	FieldTitle     Field = "title"
	FieldDuration  Field = "duration"
	FieldTechStack Field = "tech_stack"
	FieldSkills    Field = "skills"
	// FieldText addresses a description string itself.
	FieldText Field = "text"
)

// Document-level fields
const (
	FieldName              Field = "name"
	FieldPreferredPronouns Field = "preferred_pronouns"
	FieldRole              Field = "role"
	FieldSummary           Field = "summary"
)

// SelectorError reports a selector or field that cannot be parsed from user input.
type SelectorError struct {
	Message string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selector error: %s", e.Message)
}

// ParseField maps user input to a known Field.
func ParseField(key string) (Field, error) {
	field := Field(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_"))
	switch field {
	case FieldTitle, FieldDuration, FieldTechStack, FieldSkills, FieldText,
		FieldName, FieldPreferredPronouns, FieldRole, FieldSummary:
		return field, nil
	}
	return "", &SelectorError{Message: fmt.Sprintf("unknown field %q", key)}
}
