package prep

import (
	"fmt"
	"strings"

	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/taxonomy"
	"github.com/Apshaya/RES-Checker/internal/types"
)

const (
	// perDifficultyCap bounds how many questions of one difficulty the
	// diversified set takes before moving on.
	perDifficultyCap = 5
	maxQuestions     = 15
	minHardForFocus  = 1
)

var difficultyOrder = []string{"easy", "medium", "hard"}

// roleCategories maps role-title keywords to the question categories they
// pull in on top of the skill-tag matches.
var roleCategories = []struct {
	keyword    string
	categories []string
}{
	{keyword: "full stack", categories: []string{"Frontend Development", "Backend Development"}},
	{keyword: "full-stack", categories: []string{"Frontend Development", "Backend Development"}},
	{keyword: "frontend", categories: []string{"Frontend Development"}},
	{keyword: "backend", categories: []string{"Backend Development"}},
}

// PrepareInterview assembles an interview question set for the user's skills
// and target role, balanced across difficulties and capped at 15 questions.
func PrepareInterview(userSkills []string, targetRole string) *types.InterviewPreparation {
	gathered := gatherQuestions(userSkills, targetRole)
	return &types.InterviewPreparation{
		Questions:  Diversify(gathered),
		FocusAreas: focusAreas(gathered),
	}
}

// gatherQuestions walks the bank front to back and keeps every question
// whose skill tags overlap the user's skills. Role-title keywords then pull
// in whole categories the skill match may have missed.
func gatherQuestions(userSkills []string, targetRole string) []types.Question {
	var out []types.Question
	seen := make(map[string]bool)

	keep := func(q types.Question) {
		if seen[q.Text] {
			return
		}
		seen[q.Text] = true
		out = append(out, q)
	}

	for _, q := range taxonomy.QuestionBank {
		if tagsOverlap(q.Skills, userSkills) {
			keep(q)
		}
	}

	lowerRole := strings.ToLower(targetRole)
	for _, rc := range roleCategories {
		if !strings.Contains(lowerRole, rc.keyword) {
			continue
		}
		for _, q := range taxonomy.QuestionBank {
			for _, cat := range rc.categories {
				if q.Category == cat {
					keep(q)
				}
			}
		}
	}
	return out
}

func tagsOverlap(tags, userSkills []string) bool {
	for _, tag := range tags {
		for _, skill := range userSkills {
			if extraction.EitherContains(tag, skill) {
				return true
			}
		}
	}
	return false
}

// Diversify balances a question list across difficulties: up to 5 easy, then
// up to 5 medium, then up to 5 hard, then any remainder in bank order, with
// duplicate texts dropped and the whole set capped at 15.
func Diversify(questions []types.Question) []types.Question {
	var out []types.Question
	taken := make(map[string]bool)

	take := func(q types.Question) bool {
		if taken[q.Text] {
			return false
		}
		taken[q.Text] = true
		out = append(out, q)
		return len(out) == maxQuestions
	}

	for _, diff := range difficultyOrder {
		count := 0
		for _, q := range questions {
			if q.Difficulty != diff || taken[q.Text] {
				continue
			}
			if take(q) {
				return out
			}
			count++
			if count == perDifficultyCap {
				break
			}
		}
	}
	for _, q := range questions {
		if taken[q.Text] {
			continue
		}
		if take(q) {
			return out
		}
	}
	return out
}

// focusAreas derives study guidance per category present in the gathered
// set. Categories with at least one hard question get a deep-dive pointer;
// with no hard questions anywhere the generic fundamentals list is returned.
func focusAreas(gathered []types.Question) []string {
	hardByCategory := make(map[string]int)
	for _, q := range gathered {
		if q.Difficulty == "hard" {
			hardByCategory[q.Category]++
		}
	}

	var out []string
	for _, cat := range taxonomy.Categories {
		if n := hardByCategory[cat.Name]; n >= minHardForFocus {
			out = append(out, fmt.Sprintf("Deep-dive preparation for %s (%d hard questions)", cat.Name, n))
		}
	}
	if len(out) == 0 {
		out = []string{
			"Review data structures and algorithms",
			"Practice system design fundamentals",
			"Prepare behavioral stories using the STAR method",
		}
	}
	return out
}
