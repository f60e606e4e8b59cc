package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/ats-matcher/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniSchema = `{
	"type": "object",
	"required": ["score"],
	"properties": {"score": {"type": "number", "minimum": 0}}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(miniSchema, `{"score": 42}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(miniSchema, `{"score": -1}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveSchemaPath_FindsPublishedSchema(t *testing.T) {
	path := ResolveSchemaPath(AnalysisResultSchema)

	assert.NotEmpty(t, path)
}

func TestValidateAnalysisResult_RealOutput(t *testing.T) {
	result := analyzer.Analyze(
		"## Skills\nPython, Django, AWS",
		"Python Developer\n## Requirements\n- Python and Django experience",
	)
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAnalysisResult(payload))
}

func TestValidateAnalysisResult_EmptySentinel(t *testing.T) {
	result := analyzer.Analyze("", "")
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateAnalysisResult(payload))
}

func TestValidateAnalysisResult_RejectsGarbage(t *testing.T) {
	err := ValidateAnalysisResult([]byte(`{"score": "not a number"}`))

	assert.Error(t, err)
}
