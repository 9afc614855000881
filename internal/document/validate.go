package document

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Len returns the length of the selected list.
func Len(doc types.ResumeDocument, sel Selector) (int, error) {
	if sel.Descriptions {
		if !sel.Section.HoldsExperiences() {
			return 0, &SelectorError{Message: fmt.Sprintf("%s has no descriptions", sel.Section)}
		}
		exps := doc.ThoughtworksExperiences
		if sel.Section == OtherExperiences {
			exps = doc.OtherExperiences
		}
		if sel.Experience < 0 || sel.Experience >= len(exps) {
			return 0, &SelectorError{Message: fmt.Sprintf("experience %d out of range for %s (len %d)", sel.Experience, sel.Section, len(exps))}
		}
		return len(exps[sel.Experience].Descriptions), nil
	}

	switch sel.Section {
	case ThoughtworksExperiences:
		return len(doc.ThoughtworksExperiences), nil
	case OtherExperiences:
		return len(doc.OtherExperiences), nil
	case Skills:
		return len(doc.Skills), nil
	}
	return 0, &SelectorError{Message: fmt.Sprintf("unknown section %d", int(sel.Section))}
}

// Validate checks user-supplied arguments before they reach an operation, so
// that bad input is reported as a *SelectorError instead of a panic. A
// negative index skips the index check and an empty field skips the field
// check.
func Validate(doc types.ResumeDocument, sel Selector, index int, field Field) error {
	length, err := Len(doc, sel)
	if err != nil {
		return err
	}
	if index >= 0 && index >= length {
		return &SelectorError{Message: fmt.Sprintf("index %d out of range for %s (len %d)", index, sel, length)}
	}
	if field == "" {
		return nil
	}

	var allowed []Field
	switch {
	case sel.Descriptions:
		allowed = []Field{FieldText}
	case sel.Section.HoldsExperiences():
		allowed = []Field{FieldTitle, FieldDuration, FieldTechStack}
	default:
		allowed = []Field{FieldTitle, FieldSkills}
	}
	for _, f := range allowed {
		if f == field {
			return nil
		}
	}
	return &SelectorError{Message: fmt.Sprintf("field %q not valid for %s (want one of %v)", field, sel, allowed)}
}
