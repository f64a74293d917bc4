// Package analysis orchestrates the text-feature extractor to build
// structured analyses of single documents, applying document-type-specific
// heuristics for resumes and job postings.
package analysis

import (
	"fmt"
	"strings"

	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/scoring"
	"github.com/Apshaya/RES-Checker/internal/taxonomy"
	"github.com/Apshaya/RES-Checker/internal/types"
)

// topKeywords is how many ranked keywords each analysis carries.
const topKeywords = 10

// requiredSections must appear on every resume; recommendedSections are
// softer suggestions.
var (
	requiredSections    = []string{"contact", "summary", "experience", "education", "skills"}
	recommendedSections = []string{"projects", "certifications", "achievements"}
)

// AnalyzeResume builds a structured analysis of a resume text. It is total
// over any non-empty string: missing sections, zero skills and zero
// experience are valid outputs, not errors.
func AnalyzeResume(text string) *types.ResumeAnalysis {
	features := extractFeatures(text)

	report := buildSectionReport(features.Sections)
	suggested := suggestSkills(features.Skills)

	analysis := &types.ResumeAnalysis{
		Sections: report,
		Skills: types.SkillReport{
			Found:      features.Skills,
			Suggested:  suggested,
			ByCategory: groupByCategory(features.Skills),
		},
		Experience: types.ExperienceReport{
			Years: features.ExperienceYears,
			Level: resumeLevel(features.ExperienceYears),
		},
		Keywords:     features.Keywords,
		Sentiment:    features.Sentiment,
		Improvements: buildImprovements(report, features.Skills, features.ExperienceYears, features.Sentiment),
	}
	analysis.OverallScore = scoring.OverallScore(
		len(report.Found), len(features.Skills), features.ExperienceYears, features.Sentiment.Bucket)
	return analysis
}

// extractFeatures runs one full extractor pass over the text. The value is
// request-scoped; nothing in it is shared or cached.
func extractFeatures(text string) types.ExtractedFeatures {
	return types.ExtractedFeatures{
		Keywords:        extraction.ExtractKeywords(text, topKeywords),
		Skills:          extraction.ExtractSkills(text),
		Sections:        extraction.ExtractSections(text),
		ExperienceYears: extraction.ExtractExperienceYears(text),
		Sentiment:       extraction.AnalyzeSentiment(text),
	}
}

// resumeLevel maps years of experience to a seniority label. Boundaries are
// closed at the stated integers.
func resumeLevel(years int) string {
	switch {
	case years >= 8:
		return "Senior/Lead"
	case years >= 5:
		return "Senior"
	case years >= 3:
		return "Mid-Level"
	case years >= 1:
		return "Junior"
	default:
		return "Entry Level"
	}
}

func buildSectionReport(sections map[string]bool) types.SectionReport {
	report := types.SectionReport{}
	for _, name := range extraction.SectionNames {
		if sections[name] {
			report.Found = append(report.Found, name)
		} else {
			report.Missing = append(report.Missing, name)
		}
	}
	for _, name := range requiredSections {
		if !sections[name] {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Add a %s section; recruiters expect one.", name))
		}
	}
	for _, name := range recommendedSections {
		if !sections[name] {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Consider adding a %s section to stand out.", name))
		}
	}
	return report
}

func groupByCategory(skills []string) map[string][]string {
	out := make(map[string][]string)
	for _, skill := range skills {
		if cat, ok := taxonomy.CategoryOf(skill); ok {
			out[cat.Name] = append(out[cat.Name], skill)
		}
	}
	return out
}

// Co-occurrence suggestion rules.
var (
	frontendFrameworks = []string{"React", "Angular", "Vue"}
	backendRuntimes    = []string{"Node.js", "Django", "Flask", "Spring Boot", "Go", "Express"}
	databaseSkills     = []string{"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite"}
	testingTools       = []string{"Jest", "Mocha", "Cypress", "Selenium", "JUnit", "Pytest", "Playwright", "Unit Testing"}
)

// minSkillCount below which the generic broaden-your-toolkit suggestion fires.
const minSkillCount = 5

// suggestSkills applies fixed co-occurrence rules to the detected skill set.
func suggestSkills(skills []string) []string {
	var out []string

	if hasAnySkill(skills, frontendFrameworks) {
		if !scoring.MatchesAny(skills, "TypeScript") {
			out = append(out, "TypeScript")
		}
		if !hasAnySkill(skills, testingTools) {
			out = append(out, "Jest")
		}
	}
	if hasAnySkill(skills, backendRuntimes) {
		if !hasAnySkill(skills, databaseSkills) {
			out = append(out, "PostgreSQL")
		}
		if !scoring.MatchesAny(skills, "Docker") {
			out = append(out, "Docker")
		}
	}
	if len(skills) < minSkillCount {
		out = append(out, "List more of the tools and technologies you use daily.")
	}
	if !scoring.MatchesAny(skills, "Git") {
		out = append(out, "Git")
	}
	return out
}

func hasAnySkill(skills, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range skills {
			if strings.EqualFold(s, w) {
				return true
			}
		}
	}
	return false
}

func buildImprovements(report types.SectionReport, skills []string, years int, sentiment types.Sentiment) []string {
	var out []string
	out = append(out, report.Recommendations...)
	if years == 0 {
		out = append(out, "State your years of experience explicitly, e.g. \"5 years of backend development\".")
	}
	if len(skills) < minSkillCount {
		out = append(out, "Your skill list is thin; name the languages, frameworks and tools you work with.")
	}
	if sentiment.Bucket == "negative" {
		out = append(out, "Use achievement-oriented language: led, delivered, improved.")
	}
	if len(out) == 0 {
		out = append(out, "Strong resume overall; tailor it to each job posting for best results.")
	}
	return out
}
