// Package extraction provides stateless text-feature extraction over a single
// text blob: keyword ranking, skill detection, section detection, experience
// detection and sentiment scoring. All functions are deterministic, total over
// non-empty strings and safe to call concurrently.
package extraction

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// minKeywordLength is exclusive: tokens of this length or shorter are discarded.
const minKeywordLength = 3

var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#.\-]*`)

var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "each": {}, "from": {}, "have": {}, "having": {},
	"into": {}, "more": {}, "most": {}, "other": {}, "over": {}, "same": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "through": {},
	"under": {}, "very": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "will": {}, "with": {}, "within": {}, "your": {},
	"years": {}, "year": {},
}

// termStats accumulates per-call term frequencies. A fresh accumulator is
// built on every call so rankings never leak between documents.
type termStats struct {
	count int
	first int
}

// ExtractKeywords ranks tokens by term frequency weighted by an inverse
// document frequency computed over the input as a single-document corpus.
// Tokens of length <= 3 and stopwords are discarded. Returns the topN tokens
// in descending score order, ties broken by first occurrence.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	stats := make(map[string]*termStats)
	total := 0
	pos := 0
	for _, raw := range tokenPattern.FindAllString(text, -1) {
		word := strings.ToLower(strings.Trim(raw, ".-"))
		if len(word) <= minKeywordLength {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		total++
		if s, ok := stats[word]; ok {
			s.count++
		} else {
			stats[word] = &termStats{count: 1, first: pos}
		}
		pos++
	}

	if total == 0 {
		return nil
	}

	type scoredTerm struct {
		word  string
		score float64
		first int
	}
	scored := make([]scoredTerm, 0, len(stats))
	for word, s := range stats {
		// tf * idf with the input treated as a one-document corpus; the idf
		// factor degenerates to a dampened frequency weighting.
		tf := float64(s.count)
		idf := math.Log(1 + float64(total)/tf)
		scored = append(scored, scoredTerm{word: word, score: tf * idf, first: s.first})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].first < scored[j].first
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.word
	}
	return out
}
