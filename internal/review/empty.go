// Package review decides which parts of a resume carry content worth showing
// in the review summary, and builds that summary.
package review

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// IsEmpty reports whether v has no displayable content.
//
//   - nil is empty
//   - a string is empty when it is blank after trimming
//   - a sequence is empty when it has no elements, or exactly one element that
//     is itself empty (an object element is empty when all its fields are)
//   - a keyed map is empty when it has no keys
//
// Anything else, including sequences of two or more elements, is not empty.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return isBlank(val)
	case []string:
		return len(val) == 0 || (len(val) == 1 && isBlank(val[0]))
	case []types.Experience:
		return len(val) == 0 || (len(val) == 1 && IsExperienceEmpty(val[0]))
	case []types.SkillCategory:
		return len(val) == 0 || (len(val) == 1 && IsSkillCategoryEmpty(val[0]))
	case []any:
		if len(val) == 0 {
			return true
		}
		if len(val) > 1 {
			return false
		}
		if obj, ok := val[0].(map[string]any); ok {
			return allFieldsEmpty(obj)
		}
		return IsEmpty(val[0])
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

// IsExperienceEmpty reports whether none of the experience fields carry content.
func IsExperienceEmpty(exp types.Experience) bool {
	return IsEmpty(exp.Title) &&
		IsEmpty(exp.Duration) &&
		IsEmpty(exp.Descriptions) &&
		IsEmpty(exp.TechStack)
}

// IsSkillCategoryEmpty reports whether both the title and the skills text are blank.
func IsSkillCategoryEmpty(cat types.SkillCategory) bool {
	return IsEmpty(cat.Title) && IsEmpty(cat.Skills)
}

// SplitTags turns a comma-separated free-text field into display tags.
// Tokens are trimmed and blank tokens dropped.
func SplitTags(text string) []string {
	var tags []string
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			tags = append(tags, token)
		}
	}
	return tags
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// allFieldsEmpty applies the object-element rule to decoded JSON: nested
// sequences are empty at length 0 or with a single blank string.
func allFieldsEmpty(obj map[string]any) bool {
	for _, field := range obj {
		switch val := field.(type) {
		case []any:
			if len(val) == 0 {
				continue
			}
			if len(val) == 1 {
				if s, ok := val[0].(string); ok && isBlank(s) {
					continue
				}
			}
			return false
		default:
			if !IsEmpty(val) {
				return false
			}
		}
	}
	return true
}
