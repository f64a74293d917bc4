// Package scoring computes composite scores and gap recommendations from
// structured document analyses.
package scoring

import (
	"math"

	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/types"
)

// Weights for the resume-vs-job match score.
const (
	// defaultMatchScore is returned when the job lists no required skills.
	// This short-circuit takes precedence over preferred-skill scoring.
	defaultMatchScore = 50

	requiredWeight  = 70.0
	preferredWeight = 30.0
)

// MatchScore scores a resume's skills against a job analysis on a 0-100
// scale. Required coverage contributes up to 70 points, preferred coverage up
// to 30; a job with no preferred skills gets the full 30. A required or
// preferred skill is matched when any resume skill and it are substrings of
// one another, case-insensitively.
func MatchScore(resumeSkills []string, job *types.JobAnalysis) int {
	if len(job.RequiredSkills) == 0 {
		return defaultMatchScore
	}

	score := requiredWeight * coverage(resumeSkills, job.RequiredSkills)
	if len(job.PreferredSkills) == 0 {
		score += preferredWeight
	} else {
		score += preferredWeight * coverage(resumeSkills, job.PreferredSkills)
	}
	return int(math.Round(score))
}

// coverage returns the fraction of wanted skills matched by the held skills.
func coverage(held, wanted []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matched := 0
	for _, w := range wanted {
		if MatchesAny(held, w) {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

// MatchesAny reports whether any held skill matches the wanted skill under
// bidirectional containment.
func MatchesAny(held []string, wanted string) bool {
	for _, h := range held {
		if extraction.EitherContains(h, wanted) {
			return true
		}
	}
	return false
}

// Compare builds a MatchResult from a resume analysis and a job analysis.
func Compare(resume *types.ResumeAnalysis, job *types.JobAnalysis) *types.MatchResult {
	return &types.MatchResult{
		JobAnalysis:     *job,
		MatchScore:      MatchScore(resume.Skills.Found, job),
		Recommendations: GapRecommendations(resume.Skills.Found, job),
	}
}
