package scoring

import (
	"fmt"

	"github.com/Apshaya/RES-Checker/internal/types"
)

const (
	maxCriticalGaps  = 5
	maxPreferredGaps = 3
)

// closingTips are always appended after the gap items, in this order.
var closingTips = []string{
	"Tailor your summary to mirror the language of the job posting.",
	"Quantify achievements with concrete metrics wherever possible.",
}

// GapRecommendations lists the skill gaps between a resume and a job:
// missing required skills first (capped at 5), then missing preferred skills
// (capped at 3), then two fixed closing tips. Order is significant.
func GapRecommendations(resumeSkills []string, job *types.JobAnalysis) []string {
	var out []string

	missingRequired := missing(resumeSkills, job.RequiredSkills, maxCriticalGaps)
	for _, skill := range missingRequired {
		out = append(out, fmt.Sprintf("Critical: highlight experience with %s, a required skill for this role.", skill))
	}

	missingPreferred := missing(resumeSkills, job.PreferredSkills, maxPreferredGaps)
	for _, skill := range missingPreferred {
		out = append(out, fmt.Sprintf("Consider adding %s to strengthen your application.", skill))
	}

	out = append(out, closingTips...)
	return out
}

// missing returns up to limit wanted skills with no bidirectional-containment
// match among the held skills, preserving the wanted order.
func missing(held, wanted []string, limit int) []string {
	var out []string
	for _, w := range wanted {
		if !MatchesAny(held, w) {
			out = append(out, w)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
