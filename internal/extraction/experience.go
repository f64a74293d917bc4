package extraction

import (
	"regexp"
	"strconv"
	"strings"
)

// yearsPatterns is an ordered list; the first pattern that matches wins and
// only its first capture group is used. The range pattern comes first so that
// "3-5 years" yields the lower bound.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*\d+\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?\.?`),
}

// ExtractExperienceYears returns the number of years captured by the first
// matching pattern, or 0 when nothing matches.
func ExtractExperienceYears(text string) int {
	for _, re := range yearsPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}
	return 0
}

var yearsMention = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`)

const experienceContextWindow = 40

var (
	minimumSignals   = []string{"required", "minimum", "must", "at least"}
	preferredSignals = []string{"preferred", "ideal", "nice to have", "bonus"}
)

// ExtractExperienceRange scans every years mention and classifies it as a
// minimum or preferred requirement from a small lowercase context window
// around the match. Windows are clamped at neighboring mentions so each
// qualifier binds to its own number. The first unlabeled mention counts as
// the minimum; when no distinctly preferred mention exists, preferred
// defaults to the minimum.
func ExtractExperienceRange(text string) (minimum, preferred int) {
	lower := strings.ToLower(text)
	matches := yearsMention.FindAllStringSubmatchIndex(lower, -1)
	haveMin, havePref := false, false

	for i, m := range matches {
		years, err := strconv.Atoi(lower[m[2]:m[3]])
		if err != nil {
			continue
		}
		lo, hi := m[0]-experienceContextWindow, m[1]+experienceContextWindow
		if i > 0 && matches[i-1][1] > lo {
			lo = matches[i-1][1]
		}
		if i < len(matches)-1 && matches[i+1][0] < hi {
			hi = matches[i+1][0]
		}
		window := clampWindow(lower, lo, hi)

		switch {
		case containsAny(window, preferredSignals):
			if !havePref {
				preferred = years
				havePref = true
			}
		case containsAny(window, minimumSignals):
			if !haveMin {
				minimum = years
				haveMin = true
			}
		default:
			if !haveMin {
				minimum = years
				haveMin = true
			}
		}
	}

	if !havePref {
		preferred = minimum
	}
	return minimum, preferred
}

func clampWindow(text string, lo, hi int) string {
	if lo < 0 {
		lo = 0
	}
	if hi > len(text) {
		hi = len(text)
	}
	if lo > hi {
		return ""
	}
	return text[lo:hi]
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
