package scoring

import (
	"strings"
	"testing"

	"github.com/Apshaya/RES-Checker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapRecommendations_CriticalFirst(t *testing.T) {
	job := &types.JobAnalysis{
		RequiredSkills:  []string{"Kafka"},
		PreferredSkills: []string{"Terraform"},
	}
	recs := GapRecommendations([]string{"Go"}, job)

	require.Len(t, recs, 4) // 1 critical + 1 preferred + 2 closing tips
	assert.Contains(t, recs[0], "Critical")
	assert.Contains(t, recs[0], "Kafka")
	assert.Contains(t, recs[1], "Terraform")
}

func TestGapRecommendations_Caps(t *testing.T) {
	job := &types.JobAnalysis{
		RequiredSkills:  []string{"A1x", "B2x", "C3x", "D4x", "E5x", "F6x", "G7x"},
		PreferredSkills: []string{"P1x", "P2x", "P3x", "P4x", "P5x"},
	}
	recs := GapRecommendations(nil, job)

	critical := 0
	for _, r := range recs {
		if strings.HasPrefix(r, "Critical") {
			critical++
		}
	}
	assert.Equal(t, 5, critical, "critical gaps capped at 5")
	assert.Len(t, recs, 5+3+2, "5 critical + 3 preferred + 2 closing tips")
}

func TestGapRecommendations_ClosingTipsAlwaysPresent(t *testing.T) {
	job := &types.JobAnalysis{RequiredSkills: []string{"Go"}}
	recs := GapRecommendations([]string{"Go"}, job)

	require.Len(t, recs, 2)
	assert.Equal(t, closingTips[0], recs[0])
	assert.Equal(t, closingTips[1], recs[1])
}

func TestGapRecommendations_MatchedSkillsNotSurfaced(t *testing.T) {
	job := &types.JobAnalysis{
		RequiredSkills: []string{"React.js", "Kafka"},
	}
	recs := GapRecommendations([]string{"React"}, job)

	for _, r := range recs {
		assert.NotContains(t, r, "React.js", "contained skill counts as matched")
	}
}
