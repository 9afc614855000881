package document

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// An index outside the current list, or a field the addressed element does
// not have, is a caller bug: indices always come from the rendered list. Those
// cases panic instead of returning an error.

// AddEntry appends a default element to the selected list.
func AddEntry(doc types.ResumeDocument, sel Selector) types.ResumeDocument {
	out := doc.Clone()
	if sel.Descriptions {
		exp := experienceAt(&out, sel)
		exp.Descriptions = append(exp.Descriptions, "")
		return out
	}
	switch sel.Section {
	case ThoughtworksExperiences:
		out.ThoughtworksExperiences = append(out.ThoughtworksExperiences, types.DefaultExperience())
	case OtherExperiences:
		out.OtherExperiences = append(out.OtherExperiences, types.DefaultExperience())
	case Skills:
		out.Skills = append(out.Skills, types.DefaultSkillCategory())
	default:
		panic(fmt.Sprintf("document: unknown section %d", int(sel.Section)))
	}
	return out
}

// RemoveEntry removes the element at index from the selected list. Removing
// the only element leaves a single default element in its place.
func RemoveEntry(doc types.ResumeDocument, sel Selector, index int) types.ResumeDocument {
	out := doc.Clone()
	if sel.Descriptions {
		exp := experienceAt(&out, sel)
		exp.Descriptions = removeAt(exp.Descriptions, index, "", sel)
		return out
	}
	switch sel.Section {
	case ThoughtworksExperiences:
		out.ThoughtworksExperiences = removeAt(out.ThoughtworksExperiences, index, types.DefaultExperience(), sel)
	case OtherExperiences:
		out.OtherExperiences = removeAt(out.OtherExperiences, index, types.DefaultExperience(), sel)
	case Skills:
		out.Skills = removeAt(out.Skills, index, types.DefaultSkillCategory(), sel)
	default:
		panic(fmt.Sprintf("document: unknown section %d", int(sel.Section)))
	}
	return out
}

// UpdateField replaces one field of the element at index in the selected list.
// Descriptions are plain strings and are addressed with FieldText.
func UpdateField(doc types.ResumeDocument, sel Selector, index int, field Field, value string) types.ResumeDocument {
	out := doc.Clone()
	if sel.Descriptions {
		exp := experienceAt(&out, sel)
		checkIndex(len(exp.Descriptions), index, sel)
		if field != FieldText {
			panic(fmt.Sprintf("document: field %q not valid for %s", field, sel))
		}
		exp.Descriptions[index] = value
		return out
	}

	switch sel.Section {
	case ThoughtworksExperiences:
		checkIndex(len(out.ThoughtworksExperiences), index, sel)
		setExperienceField(&out.ThoughtworksExperiences[index], field, value, sel)
	case OtherExperiences:
		checkIndex(len(out.OtherExperiences), index, sel)
		setExperienceField(&out.OtherExperiences[index], field, value, sel)
	case Skills:
		checkIndex(len(out.Skills), index, sel)
		cat := &out.Skills[index]
		switch field {
		case FieldTitle:
			cat.Title = value
		case FieldSkills:
			cat.Skills = value
		default:
			panic(fmt.Sprintf("document: field %q not valid for %s", field, sel))
		}
	default:
		panic(fmt.Sprintf("document: unknown section %d", int(sel.Section)))
	}
	return out
}

// SetField replaces one of the document-level text fields.
func SetField(doc types.ResumeDocument, field Field, value string) types.ResumeDocument {
	out := doc.Clone()
	switch field {
	case FieldName:
		out.Name = value
	case FieldPreferredPronouns:
		out.PreferredPronouns = value
	case FieldRole:
		out.Role = value
	case FieldSummary:
		out.Summary = value
	default:
		panic(fmt.Sprintf("document: %q is not a document field", field))
	}
	return out
}

// IsDocumentField reports whether field can be passed to SetField.
func IsDocumentField(field Field) bool {
	switch field {
	case FieldName, FieldPreferredPronouns, FieldRole, FieldSummary:
		return true
	}
	return false
}

func setExperienceField(exp *types.Experience, field Field, value string, sel Selector) {
	switch field {
	case FieldTitle:
		exp.Title = value
	case FieldDuration:
		exp.Duration = value
	case FieldTechStack:
		exp.TechStack = value
	default:
		panic(fmt.Sprintf("document: field %q not valid for %s", field, sel))
	}
}

// experienceAt returns a pointer into doc, which must already be a clone.
func experienceAt(doc *types.ResumeDocument, sel Selector) *types.Experience {
	var list []types.Experience
	switch sel.Section {
	case ThoughtworksExperiences:
		list = doc.ThoughtworksExperiences
	case OtherExperiences:
		list = doc.OtherExperiences
	default:
		panic(fmt.Sprintf("document: %s has no descriptions", sel.Section))
	}
	checkIndex(len(list), sel.Experience, sel)
	return &list[sel.Experience]
}

func removeAt[T any](list []T, index int, fresh T, sel Selector) []T {
	checkIndex(len(list), index, sel)
	if len(list) == 1 {
		return []T{fresh}
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

func checkIndex(length, index int, sel Selector) {
	if index < 0 || index >= length {
		panic(fmt.Sprintf("document: index %d out of range for %s (len %d)", index, sel, length))
	}
}
