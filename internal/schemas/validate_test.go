package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestValidateResumeDocument_DefaultDocument(t *testing.T) {
	data, err := json.Marshal(types.DefaultResumeDocument())
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeDocument(data))
}

func TestValidateResumeDocument_WrongType(t *testing.T) {
	data := []byte(`{
		"name": 42,
		"preferred_pronouns": "",
		"role": "",
		"summary": "",
		"thoughtworks_experiences": [],
		"other_experiences": [],
		"skills": []
	}`)

	err := ValidateResumeDocument(data)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateResumeDocument_DescriptionsMustBeStrings(t *testing.T) {
	data := []byte(`{
		"name": "", "preferred_pronouns": "", "role": "", "summary": "",
		"thoughtworks_experiences": [{"title": "", "duration": "", "descriptions": [1], "tech_stack": ""}],
		"other_experiences": [],
		"skills": []
	}`)

	err := ValidateResumeDocument(data)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "thoughtworks_experiences.0.descriptions.0")
}

func TestValidateResumeDocument_NotJSON(t *testing.T) {
	err := ValidateResumeDocument([]byte("<html>oops</html>"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidate_RootField(t *testing.T) {
	schema := gojsonschema.NewStringLoader(`{"type": "object", "required": ["id"]}`)

	err := validate(schema, gojsonschema.NewStringLoader(`{}`), "id.schema.json")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidSchema(t *testing.T) {
	err := validate(gojsonschema.NewStringLoader(`{ not json`), gojsonschema.NewStringLoader(`{}`), "broken.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema broken.schema.json")
}
