package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apshaya/RES-Checker/internal/analysis"
	"github.com/Apshaya/RES-Checker/internal/scoring"
)

const validResume = `Jane Doe
jane.doe@example.com

SUMMARY
Backend engineer with 6 years of experience building reliable systems.

WORK EXPERIENCE
Built services in Go with PostgreSQL on Kubernetes.

EDUCATION
B.S. Computer Science

SKILLS
Go, PostgreSQL, Kubernetes, Docker, AWS
`

const validJob = `Position: Backend Engineer

Requirements
- 5+ years of Go experience is required
- PostgreSQL knowledge is essential for the role
`

func TestEmbeddedSchemas_AreValidJSON(t *testing.T) {
	for name, content := range registry {
		t.Run(name, func(t *testing.T) {
			var v any
			assert.NoError(t, json.Unmarshal([]byte(content), &v))
		})
	}
}

func TestValidate_ResumeAnalysisOutput(t *testing.T) {
	out, err := json.Marshal(analysis.AnalyzeResume(validResume))
	require.NoError(t, err)
	assert.NoError(t, Validate(SchemaResumeAnalysis, out))
}

func TestValidate_JobAnalysisOutput(t *testing.T) {
	out, err := json.Marshal(analysis.AnalyzeJob(validJob))
	require.NoError(t, err)
	assert.NoError(t, Validate(SchemaJobAnalysis, out))
}

func TestValidate_MatchResultOutput(t *testing.T) {
	resume := analysis.AnalyzeResume(validResume)
	job := analysis.AnalyzeJob(validJob)
	out, err := json.Marshal(scoring.Compare(resume, job))
	require.NoError(t, err)
	assert.NoError(t, Validate(SchemaMatchResult, out))
}

func TestValidate_RejectsOutOfRangeScore(t *testing.T) {
	doc := `{
		"role": "Engineer",
		"experience_level": {"minimum": 0, "preferred": 0, "level": "Not specified"},
		"match_score": 250,
		"recommendations": []
	}`
	err := Validate(SchemaMatchResult, []byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_UnknownSchemaName(t *testing.T) {
	err := Validate("no_such_schema", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "unknown schema")
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(SchemaJobAnalysis, []byte(`{not json`))
	assert.Error(t, err)
}
