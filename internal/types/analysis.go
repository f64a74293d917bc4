// Package types provides type definitions for structured data used throughout the resume checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentiment holds the rule-based sentiment score and its bucket label.
// Bucket is one of "positive", "neutral", "negative".
type Sentiment struct {
	Score  float64 `json:"score"`
	Bucket string  `json:"bucket"`
}

// ExtractedFeatures holds the raw signals extracted from a single text blob.
// An ExtractedFeatures value is built fresh per analysis and never shared
// across requests.
type ExtractedFeatures struct {
	Keywords        []string        `json:"keywords"`
	Skills          []string        `json:"skills"`
	Sections        map[string]bool `json:"sections"`
	ExperienceYears int             `json:"experience_years"`
	Sentiment       Sentiment       `json:"sentiment"`
}

// ExperienceLevel describes the experience requirements of a job posting.
type ExperienceLevel struct {
	Minimum   int    `json:"minimum"`
	Preferred int    `json:"preferred"`
	Level     string `json:"level"`
}

// JobAnalysis represents a structured job posting extracted from raw text.
type JobAnalysis struct {
	Role             string          `json:"role"`
	RequiredSkills   []string        `json:"required_skills"`
	PreferredSkills  []string        `json:"preferred_skills"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	Keywords         []string        `json:"keywords"`
	Responsibilities []string        `json:"responsibilities"`
	Qualifications   []string        `json:"qualifications"`
}

// MatchResult is a JobAnalysis augmented with a resume comparison.
// MatchScore and Recommendations are only populated in compare mode.
type MatchResult struct {
	JobAnalysis
	MatchScore      int      `json:"match_score"`
	Recommendations []string `json:"recommendations"`
}

// SectionReport describes which resume sections were found and which are missing.
type SectionReport struct {
	Found           []string `json:"found"`
	Missing         []string `json:"missing"`
	Recommendations []string `json:"recommendations"`
}

// SkillReport describes the skills detected in a resume.
type SkillReport struct {
	Found      []string            `json:"found"`
	Suggested  []string            `json:"suggested"`
	ByCategory map[string][]string `json:"by_category"`
}

// ExperienceReport describes the experience detected in a resume.
type ExperienceReport struct {
	Years int    `json:"years"`
	Level string `json:"level"`
}

// ResumeAnalysis represents a structured analysis of a resume.
type ResumeAnalysis struct {
	OverallScore int              `json:"overall_score"`
	Sections     SectionReport    `json:"sections"`
	Skills       SkillReport      `json:"skills"`
	Experience   ExperienceReport `json:"experience"`
	Keywords     []string         `json:"keywords"`
	Sentiment    Sentiment        `json:"sentiment"`
	Improvements []string         `json:"improvements"`
}
