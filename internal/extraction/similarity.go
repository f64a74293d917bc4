package extraction

import "strings"

// Similarity returns a normalized edit-distance similarity in [0,1],
// case-insensitive and symmetric. Identical strings score 1.0; strings with
// no characters in common score 0.0.
func Similarity(a, b string) float64 {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return 1.0
	}
	longest := len(la)
	if len(lb) > longest {
		longest = len(lb)
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(la, lb))/float64(longest)
}

// levenshtein computes edit distance with a two-row dynamic program.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
