// Package prep generates skill-gap recommendations, career-path suggestions
// and interview preparation sets from a user's skills and the fixed taxonomy.
package prep

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Apshaya/RES-Checker/internal/scoring"
	"github.com/Apshaya/RES-Checker/internal/taxonomy"
	"github.com/Apshaya/RES-Checker/internal/types"
)

// maxRecommendations caps the final recommendation list.
const maxRecommendations = 10

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// RecommendSkills proposes skills the user does not hold yet. Every other
// skill in a category where the user already has at least one match is
// proposed at medium priority; four fixed cross-category rules inject
// high/medium items. The list is sorted by priority (stable) and truncated
// to 10.
func RecommendSkills(userSkills []string, targetRole string) *types.SkillRecommendation {
	var recs []types.RecommendedSkill
	index := make(map[string]int) // lowercase skill -> position in recs

	add := func(skill, priority, reason string) {
		key := strings.ToLower(skill)
		if i, exists := index[key]; exists {
			// Keep the stronger priority and its rationale.
			if priorityRank[priority] < priorityRank[recs[i].Priority] {
				recs[i].Priority = priority
				recs[i].Reason = reason
			}
			return
		}
		if scoring.MatchesAny(userSkills, skill) {
			return
		}
		index[key] = len(recs)
		recs = append(recs, types.RecommendedSkill{Skill: skill, Priority: priority, Reason: reason})
	}

	for _, cat := range taxonomy.Categories {
		if !hasMatchInCategory(userSkills, cat) {
			continue
		}
		for _, skill := range cat.Skills {
			add(skill, "medium", fmt.Sprintf("Complements your existing %s skills.", cat.Name))
		}
	}

	applyCrossCategoryRules(userSkills, add)

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return &types.SkillRecommendation{
		CurrentSkills:   canonicalSkills(userSkills),
		Recommendations: recs,
		CareerPaths:     CareerPaths(userSkills, targetRole),
	}
}

// canonicalSkills echoes the user's skills in the taxonomy's display casing;
// skills outside the taxonomy pass through unchanged.
func canonicalSkills(userSkills []string) []string {
	if userSkills == nil {
		return nil
	}
	out := make([]string, len(userSkills))
	for i, s := range userSkills {
		out[i] = taxonomy.Canonical(s)
	}
	return out
}

// Skill signatures used by the cross-category rules.
var (
	frontendFrameworks = []string{"React", "Angular", "Vue"}
	backendRuntimes    = []string{"Node.js", "Express", "Django", "Flask", "Spring Boot", "Go"}
	databaseSkills     = []string{"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite"}
	testingTools       = []string{"Jest", "Mocha", "Cypress", "Selenium", "JUnit", "Pytest", "Playwright"}
	cloudPlatforms     = []string{"AWS", "Azure", "GCP"}
)

// applyCrossCategoryRules injects the four fixed rules: frontend framework
// without TypeScript, backend runtime without a database, no testing tool at
// all, and no cloud platform at all.
func applyCrossCategoryRules(userSkills []string, add func(skill, priority, reason string)) {
	if holdsAny(userSkills, frontendFrameworks) && !scoring.MatchesAny(userSkills, "TypeScript") {
		add("TypeScript", "high", "Typed JavaScript is expected alongside modern frontend frameworks.")
	}
	if holdsAny(userSkills, backendRuntimes) && !holdsAny(userSkills, databaseSkills) {
		add("PostgreSQL", "high", "Backend work almost always pairs with a relational database.")
	}
	if !holdsAny(userSkills, testingTools) {
		add("Jest", "medium", "Automated testing experience strengthens any profile.")
	}
	if !holdsAny(userSkills, cloudPlatforms) {
		add("AWS", "medium", "Cloud platform experience is requested in most postings.")
	}
}

func hasMatchInCategory(userSkills []string, cat types.SkillCategory) bool {
	for _, skill := range cat.Skills {
		if scoring.MatchesAny(userSkills, skill) {
			return true
		}
	}
	return false
}

func holdsAny(userSkills, wanted []string) bool {
	for _, w := range wanted {
		if scoring.MatchesAny(userSkills, w) {
			return true
		}
	}
	return false
}
