package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apshaya/RES-Checker/internal/extraction"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-0100

SUMMARY
Backend engineer with 6 years of experience building distributed systems.
Led a team that delivered an excellent platform migration.

WORK EXPERIENCE
Acme Corp - Senior Engineer
- Built services in Go with PostgreSQL and Redis
- Deployed with Docker and Kubernetes on AWS

EDUCATION
B.S. Computer Science, State University

SKILLS
Go, PostgreSQL, Redis, Docker, Kubernetes, AWS, Git, Terraform
`

func TestAnalyzeResume_CompleteResume(t *testing.T) {
	a := AnalyzeResume(sampleResume)
	require.NotNil(t, a)

	assert.Contains(t, a.Sections.Found, "contact")
	assert.Contains(t, a.Sections.Found, "summary")
	assert.Contains(t, a.Sections.Found, "experience")
	assert.Contains(t, a.Sections.Found, "education")
	assert.Contains(t, a.Sections.Found, "skills")

	assert.Contains(t, a.Skills.Found, "Go")
	assert.Contains(t, a.Skills.Found, "PostgreSQL")
	assert.Contains(t, a.Skills.Found, "Kubernetes")

	assert.Equal(t, 6, a.Experience.Years)
	assert.Equal(t, "Senior", a.Experience.Level)
	assert.Equal(t, "positive", a.Sentiment.Bucket)

	assert.GreaterOrEqual(t, a.OverallScore, 0)
	assert.LessOrEqual(t, a.OverallScore, 100)
}

func TestExtractFeatures_MirrorsExtractorOutputs(t *testing.T) {
	f := extractFeatures(sampleResume)

	assert.Equal(t, extraction.ExtractSkills(sampleResume), f.Skills)
	assert.Equal(t, extraction.ExtractExperienceYears(sampleResume), f.ExperienceYears)
	assert.Equal(t, extraction.AnalyzeSentiment(sampleResume), f.Sentiment)
	assert.True(t, f.Sections["experience"])
	assert.NotEmpty(t, f.Keywords)
}

func TestAnalyzeResume_MissingSectionsProduceRecommendations(t *testing.T) {
	a := AnalyzeResume("Some text without any recognizable structure at all in it")

	assert.Contains(t, a.Sections.Missing, "education")
	assert.NotEmpty(t, a.Sections.Recommendations)
	// Every missing required section yields one recommendation, every missing
	// recommended section yields one softer suggestion.
	assert.Len(t, a.Sections.Recommendations, len(a.Sections.Missing))
}

func TestAnalyzeResume_SkillsByCategory(t *testing.T) {
	a := AnalyzeResume(sampleResume)

	assert.Contains(t, a.Skills.ByCategory["Databases"], "PostgreSQL")
	assert.Contains(t, a.Skills.ByCategory["Cloud & DevOps"], "Docker")
}

func TestAnalyzeResume_GitAlwaysSuggestedWhenAbsent(t *testing.T) {
	a := AnalyzeResume("SUMMARY\nFrontend developer working with React and TypeScript daily for years.")
	assert.Contains(t, a.Skills.Suggested, "Git")
}

func TestAnalyzeResume_FrontendRulesSuggestTypeScriptAndTesting(t *testing.T) {
	a := AnalyzeResume("SKILLS\nReact, HTML, CSS and plenty of enthusiasm for the web platform.")

	assert.Contains(t, a.Skills.Suggested, "TypeScript")
	assert.Contains(t, a.Skills.Suggested, "Jest")
}

func TestAnalyzeResume_BackendRulesSuggestDatabaseAndDocker(t *testing.T) {
	a := AnalyzeResume("SKILLS\nNode.js and Express services maintained over several releases.")

	assert.Contains(t, a.Skills.Suggested, "PostgreSQL")
	assert.Contains(t, a.Skills.Suggested, "Docker")
}

func TestResumeLevel_Boundaries(t *testing.T) {
	tests := []struct {
		years int
		level string
	}{
		{0, "Entry Level"},
		{1, "Junior"},
		{2, "Junior"},
		{3, "Mid-Level"},
		{4, "Mid-Level"},
		{5, "Senior"},
		{7, "Senior"},
		{8, "Senior/Lead"},
		{15, "Senior/Lead"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, resumeLevel(tt.years), "years=%d", tt.years)
	}
}

func TestAnalyzeResume_TotalOverMinimalText(t *testing.T) {
	a := AnalyzeResume("x y z")
	require.NotNil(t, a)
	assert.Equal(t, 0, a.Experience.Years)
	assert.Equal(t, "neutral", a.Sentiment.Bucket)
	assert.NotEmpty(t, a.Improvements)
}
