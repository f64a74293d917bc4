package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallScore_AllComponents(t *testing.T) {
	// 8/8 sections (40) + 10 skills (30) + experience (15) + positive (15) = 100
	assert.Equal(t, 100, OverallScore(8, 10, 5, "positive"))
}

func TestOverallScore_SkillsCapped(t *testing.T) {
	// 25 skills still only earn the 30-point skill budget.
	assert.Equal(t, 100, OverallScore(8, 25, 5, "positive"))
}

func TestOverallScore_EmptyResume(t *testing.T) {
	// No sections, no skills, no experience, neutral sentiment = 10.
	assert.Equal(t, 10, OverallScore(0, 0, 0, "neutral"))
}

func TestOverallScore_SentimentPoints(t *testing.T) {
	base := OverallScore(4, 5, 0, "neutral")
	assert.Equal(t, base+5, OverallScore(4, 5, 0, "positive"))
	assert.Equal(t, base-5, OverallScore(4, 5, 0, "negative"))
}

func TestOverallScore_ExperienceIsFlat(t *testing.T) {
	one := OverallScore(4, 5, 1, "neutral")
	twenty := OverallScore(4, 5, 20, "neutral")
	assert.Equal(t, one, twenty, "experience contributes a flat 15 for any non-zero years")
	assert.Equal(t, OverallScore(4, 5, 0, "neutral")+15, one)
}

func TestOverallScore_RoundingAndBounds(t *testing.T) {
	for sections := 0; sections <= 8; sections++ {
		for _, skills := range []int{0, 3, 7, 10, 15} {
			score := OverallScore(sections, skills, 2, "positive")
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
	// 3/8 sections = 15, 7 skills = 21, no experience, neutral 10 -> 46.
	assert.Equal(t, 46, OverallScore(3, 7, 0, "neutral"))
}
