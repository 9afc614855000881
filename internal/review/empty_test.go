package review

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "empty string", value: "", want: true},
		{name: "whitespace string", value: " \t\n", want: true},
		{name: "text", value: "Go", want: false},
		{name: "no descriptions", value: []string{}, want: true},
		{name: "single blank description", value: []string{"  "}, want: true},
		{name: "single description", value: []string{"Led a team"}, want: false},
		{name: "two blank descriptions", value: []string{"", ""}, want: false},
		{name: "single empty experience", value: []types.Experience{types.DefaultExperience()}, want: true},
		{name: "two empty experiences", value: []types.Experience{types.DefaultExperience(), types.DefaultExperience()}, want: false},
		{name: "single filled skill", value: []types.SkillCategory{{Skills: "Java"}}, want: false},
		{name: "single empty skill", value: []types.SkillCategory{{}}, want: true},
		{name: "empty map", value: map[string]any{}, want: true},
		{name: "map with keys", value: map[string]any{"title": ""}, want: false},
		{name: "number", value: 42, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.value))
		})
	}
}

func TestIsEmpty_DecodedJSON(t *testing.T) {
	var emptyList []any
	require.NoError(t, json.Unmarshal([]byte(`[{"title":"","duration":" ","descriptions":[""],"tech_stack":""}]`), &emptyList))
	assert.True(t, IsEmpty(emptyList))

	var filledList []any
	require.NoError(t, json.Unmarshal([]byte(`[{"title":"","descriptions":["did work"]}]`), &filledList))
	assert.False(t, IsEmpty(filledList))

	var twoDescriptions []any
	require.NoError(t, json.Unmarshal([]byte(`[{"title":"","descriptions":["",""]}]`), &twoDescriptions))
	assert.False(t, IsEmpty(twoDescriptions))

	var blanks []any
	require.NoError(t, json.Unmarshal([]byte(`[" "]`), &blanks))
	assert.True(t, IsEmpty(blanks))
}

func TestIsExperienceEmpty(t *testing.T) {
	assert.True(t, IsExperienceEmpty(types.Experience{Descriptions: []string{""}}))
	assert.False(t, IsExperienceEmpty(types.Experience{Title: "X", Descriptions: []string{""}}))
	assert.False(t, IsExperienceEmpty(types.Experience{Descriptions: []string{"", ""}}))
	assert.False(t, IsExperienceEmpty(types.Experience{Descriptions: []string{""}, TechStack: "Go"}))
	assert.True(t, IsExperienceEmpty(types.Experience{}))
}

func TestIsSkillCategoryEmpty(t *testing.T) {
	assert.True(t, IsSkillCategoryEmpty(types.SkillCategory{}))
	assert.True(t, IsSkillCategoryEmpty(types.SkillCategory{Title: "  ", Skills: ""}))
	assert.False(t, IsSkillCategoryEmpty(types.SkillCategory{Skills: "Java"}))
	assert.False(t, IsSkillCategoryEmpty(types.SkillCategory{Title: "Languages"}))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"Selenium", "Jenkins", "Python"}, SplitTags("Selenium, Jenkins ,Python"))
	assert.Equal(t, []string{"Go"}, SplitTags(" , Go,, "))
	assert.Nil(t, SplitTags(""))
	assert.Nil(t, SplitTags(" , ,"))
}

func TestSplitTags_DoesNotChangeSource(t *testing.T) {
	cat := types.SkillCategory{Title: "Languages", Skills: "Go , Java"}
	_ = SplitTags(cat.Skills)
	assert.Equal(t, "Go , Java", cat.Skills)
}
