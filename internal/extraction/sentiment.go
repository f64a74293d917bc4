package extraction

import (
	"regexp"
	"strings"

	"github.com/Apshaya/RES-Checker/internal/taxonomy"
	"github.com/Apshaya/RES-Checker/internal/types"
)

// Bucket thresholds for the summed polarity score.
const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// AnalyzeSentiment sums word polarities from the fixed lexicon and buckets
// the result. The score is an unbounded signed float; the thresholds are
// fixed constants.
func AnalyzeSentiment(text string) types.Sentiment {
	score := 0.0
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		score += taxonomy.Polarity[word]
	}

	bucket := "neutral"
	switch {
	case score > positiveThreshold:
		bucket = "positive"
	case score < negativeThreshold:
		bucket = "negative"
	}
	return types.Sentiment{Score: score, Bucket: bucket}
}
