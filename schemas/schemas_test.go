package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	rootschemas "github.com/jonathan/resume-builder/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"resume_document.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestResumeDocumentSchema_Embedded(t *testing.T) {
	data, err := os.ReadFile("resume_document.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), rootschemas.ResumeDocument)
}

func TestResumeDocumentSchema_ValidDocument(t *testing.T) {
	doc := `{
		"name": "Janani P",
		"preferred_pronouns": "She/Her",
		"role": "Quality Analyst",
		"summary": "Seasoned QA",
		"thoughtworks_experiences": [
			{"title": "QA Lead", "duration": "2024 - Present", "descriptions": ["Led QA"], "tech_stack": "Selenium"}
		],
		"other_experiences": [
			{"title": "", "duration": "", "descriptions": [""], "tech_stack": ""}
		],
		"skills": [
			{"title": "Languages", "skills": "Java, Python"}
		]
	}`

	assert.NoError(t, schemas.ValidateResumeDocument([]byte(doc)))
}

func TestResumeDocumentSchema_MissingField(t *testing.T) {
	doc := `{
		"name": "Janani P",
		"role": "Quality Analyst",
		"summary": "",
		"thoughtworks_experiences": [],
		"other_experiences": [],
		"skills": [{"title": "Languages"}]
	}`

	err := schemas.ValidateResumeDocument([]byte(doc))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}
