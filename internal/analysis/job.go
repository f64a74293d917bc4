package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/types"
)

const (
	roleTitleScanLines = 5
	maxRoleTitleLength = 50
	defaultRoleTitle   = "Not specified"

	// classifyWindow is the number of characters inspected on each side of a
	// skill's first occurrence when deciding its bucket.
	classifyWindow = 100

	maxListItems  = 8
	minItemLength = 20
	maxItemLength = 200
)

// rolePatterns are tried in priority order against the first non-blank lines.
var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:position|role|title|job)\s*[:\-]\s*(.+)`),
	regexp.MustCompile(`(?i)\bhiring\s+(?:an?\s+)?(.+)`),
}

// skillBucket classification rules, evaluated in fixed order. A skill joins
// every bucket whose signals appear in its context window; with no signal it
// falls into the default required bucket.
type bucketRule struct {
	signals  []string
	required bool
}

var bucketRules = []bucketRule{
	{signals: []string{"required", "must have", "essential"}, required: true},
	{signals: []string{"preferred", "nice to have", "bonus"}, required: false},
}

var (
	responsibilityStart = regexp.MustCompile(`(?i)^[#*\s]*(responsibilities|duties|what you'll do|what you will do)\b`)
	qualificationStart  = regexp.MustCompile(`(?i)^[#*\s]*(qualifications|requirements|what we're looking for|what we are looking for)\b`)
	bulletPrefix        = regexp.MustCompile(`^(?:[-*•·]+|\d+[.)])\s*`)
)

// AnalyzeJob builds a structured analysis of a job posting text.
func AnalyzeJob(text string) *types.JobAnalysis {
	skills := extraction.ExtractSkills(text)
	required, preferred := classifySkills(text, skills)
	minimum, preferredYears := extraction.ExtractExperienceRange(text)

	return &types.JobAnalysis{
		Role:            extractRoleTitle(text),
		RequiredSkills:  required,
		PreferredSkills: preferred,
		ExperienceLevel: types.ExperienceLevel{
			Minimum:   minimum,
			Preferred: preferredYears,
			Level:     jobLevel(minimum),
		},
		Keywords:         extraction.ExtractKeywords(text, topKeywords),
		Responsibilities: collectListItems(text, responsibilityStart, qualificationStart),
		Qualifications:   collectListItems(text, qualificationStart, responsibilityStart),
	}
}

// jobLevel maps the minimum required years to a seniority label.
func jobLevel(minimum int) string {
	switch {
	case minimum >= 8:
		return "Senior/Lead"
	case minimum >= 5:
		return "Senior"
	case minimum >= 3:
		return "Intermediate"
	case minimum >= 1:
		return "Entry Level"
	default:
		return "Not specified"
	}
}

// extractRoleTitle scans the first 5 non-blank lines against the prioritized
// role patterns, then falls back to the first short capitalized line.
func extractRoleTitle(text string) string {
	lines := firstNonBlankLines(text, roleTitleScanLines)

	for _, re := range rolePatterns {
		for _, line := range lines {
			if m := re.FindStringSubmatch(line); m != nil {
				if title := cleanRoleTitle(m[1]); title != "" {
					return title
				}
			}
		}
	}

	for _, line := range lines {
		if len(line) < maxRoleTitleLength && startsWithUpper(line) {
			return line
		}
	}
	return defaultRoleTitle
}

func firstNonBlankLines(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == n {
			break
		}
	}
	return out
}

func cleanRoleTitle(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ".,;:!"))
}

func startsWithUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// classifySkills splits the detected skills into required and preferred
// buckets by inspecting a context window around each skill's first
// occurrence. A skill that occurs in both contexts lands in both buckets.
func classifySkills(text string, skills []string) (required, preferred []string) {
	lower := strings.ToLower(text)

	for _, skill := range skills {
		window := skillContext(lower, strings.ToLower(skill))

		matchedAny := false
		for _, rule := range bucketRules {
			if containsAnySignal(window, rule.signals) {
				matchedAny = true
				if rule.required {
					required = append(required, skill)
				} else {
					preferred = append(preferred, skill)
				}
			}
		}
		if !matchedAny {
			// Default-required policy: no context signal means required.
			required = append(required, skill)
		}
	}
	return required, preferred
}

func skillContext(lowerText, lowerSkill string) string {
	idx := strings.Index(lowerText, lowerSkill)
	if idx < 0 {
		return ""
	}
	lo := idx - classifyWindow
	if lo < 0 {
		lo = 0
	}
	hi := idx + len(lowerSkill) + classifyWindow
	if hi > len(lowerText) {
		hi = len(lowerText)
	}
	return lowerText[lo:hi]
}

func containsAnySignal(window string, signals []string) bool {
	for _, s := range signals {
		if strings.Contains(window, s) {
			return true
		}
	}
	return false
}

// collectListItems gathers bullet lines after a section-start marker,
// stripping bullet prefixes, filtering by length, stopping at the
// complementary section header and capping at 8 items.
func collectListItems(text string, start, stop *regexp.Regexp) []string {
	var items []string
	collecting := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !collecting {
			if start.MatchString(trimmed) {
				collecting = true
			}
			continue
		}
		if stop.MatchString(trimmed) {
			break
		}
		item := strings.TrimSpace(bulletPrefix.ReplaceAllString(trimmed, ""))
		if len(item) >= minItemLength && len(item) <= maxItemLength {
			items = append(items, item)
		}
		if len(items) == maxListItems {
			break
		}
	}
	return items
}
