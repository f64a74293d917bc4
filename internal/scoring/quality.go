package scoring

import "math"

// Weights for the resume overall quality score.
const (
	sectionWeight     = 40.0
	totalSectionSlots = 8

	skillsWeight    = 30.0
	skillsFullCount = 10

	experiencePoints = 15

	sentimentPositivePoints = 15
	sentimentNeutralPoints  = 10
	sentimentNegativePoints = 5

	maxScore = 100
)

// OverallScore computes the 0-100 resume quality score: sections contribute
// up to 40 points, skills up to 30 (full credit at 10 skills), any non-zero
// experience a flat 15, and sentiment 15/10/5 for positive/neutral/negative.
func OverallScore(sectionsFound, skillCount, experienceYears int, sentimentBucket string) int {
	score := sectionWeight * float64(sectionsFound) / totalSectionSlots

	skillScore := skillsWeight * float64(skillCount) / skillsFullCount
	if skillScore > skillsWeight {
		skillScore = skillsWeight
	}
	score += skillScore

	if experienceYears > 0 {
		score += experiencePoints
	}

	switch sentimentBucket {
	case "positive":
		score += sentimentPositivePoints
	case "negative":
		score += sentimentNegativePoints
	default:
		score += sentimentNeutralPoints
	}

	rounded := int(math.Round(score))
	if rounded > maxScore {
		rounded = maxScore
	}
	return rounded
}
