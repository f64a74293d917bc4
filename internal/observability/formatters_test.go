package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Apshaya/RES-Checker/internal/types"
)

func TestPrintResumeAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeAnalysis(&types.ResumeAnalysis{
		OverallScore: 85,
		Experience:   types.ExperienceReport{Years: 6, Level: "Senior"},
		Sentiment:    types.Sentiment{Score: 1.2, Bucket: "positive"},
		Skills:       types.SkillReport{Found: []string{"Go", "PostgreSQL"}},
		Sections:     types.SectionReport{Missing: []string{"projects"}},
		Improvements: []string{"Add a projects section"},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME ANALYSIS")
	assert.Contains(t, out, "85/100")
	assert.Contains(t, out, "6 years (Senior)")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "projects")
}

func TestPrintResumeAnalysis_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobAnalysis(&types.JobAnalysis{
		Role:            "Backend Engineer",
		RequiredSkills:  []string{"Go", "Kubernetes"},
		PreferredSkills: []string{"Terraform"},
		ExperienceLevel: types.ExperienceLevel{Minimum: 5, Level: "Senior"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB ANALYSIS")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "5+ years (Senior)")
	assert.Contains(t, out, "Kubernetes")
	assert.Contains(t, out, "Terraform")
}

func TestPrintMatchResult_CapsRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := []string{"one", "two", "three", "four", "five", "six", "seven"}
	p.PrintMatchResult(&types.MatchResult{
		JobAnalysis: types.JobAnalysis{Role: "Engineer"},
		MatchScore:  72,
		Recommendations: recs,
	})

	out := buf.String()
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "... and 2 more")
	assert.NotContains(t, out, "seven")
}

func TestPrintSkillRecommendation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillRecommendation(&types.SkillRecommendation{
		Recommendations: []types.RecommendedSkill{
			{Skill: "TypeScript", Priority: "high"},
		},
		CareerPaths: []string{"Frontend Developer: deepen framework expertise."},
	})

	out := buf.String()
	assert.Contains(t, out, "TypeScript (high)")
	assert.Contains(t, out, "Career Paths")
}

func TestPrintInterviewPreparation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInterviewPreparation(&types.InterviewPreparation{
		Questions: []types.Question{
			{Text: "What is a goroutine?", Difficulty: "easy"},
		},
		FocusAreas: []string{"Deep-dive preparation for Backend Development"},
	})

	out := buf.String()
	assert.Contains(t, out, "INTERVIEW PREPARATION")
	assert.Contains(t, out, "[easy]")
	assert.Contains(t, out, "Focus Areas")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := "this line is well beyond the sixty character box width and must be truncated"
	p.printBox("TITLE", long)

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), "must be truncated")
}
