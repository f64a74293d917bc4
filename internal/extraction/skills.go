package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Apshaya/RES-Checker/internal/taxonomy"
)

// acronymPattern matches all-capital tokens of 2+ letters (AWS, SQL, CI).
var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// sectionHeaderWords are uppercase resume headers that would otherwise be
// misreported as acronyms.
var sectionHeaderWords = map[string]struct{}{
	"work": {}, "experience": {}, "education": {}, "skills": {}, "summary": {},
	"projects": {}, "certifications": {}, "achievements": {}, "contact": {},
	"objective": {}, "profile": {}, "employment": {}, "references": {},
}

// ExtractSkills detects skills by case-insensitive search of the input
// against the taxonomy lexicon and soft-skill phrases, plus all-capital
// acronym tokens. Each skill is reported once regardless of occurrence count;
// the result is sorted for determinism.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]string) // lowercase key -> reported name

	for _, skill := range taxonomy.AllSkills() {
		if matchesSkill(lower, skill) {
			found[strings.ToLower(skill)] = skill
		}
	}
	for _, phrase := range taxonomy.SoftSkillPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			found[strings.ToLower(phrase)] = phrase
		}
	}

	for _, acro := range acronymPattern.FindAllString(text, -1) {
		key := strings.ToLower(acro)
		if _, stop := stopwords[key]; stop {
			continue
		}
		if _, header := sectionHeaderWords[key]; header {
			continue
		}
		if _, seen := found[key]; !seen {
			found[key] = acro
		}
	}

	out := make([]string, 0, len(found))
	for _, name := range found {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// matchesSkill matches long skill names by substring and short ones (<= 3
// chars, e.g. Go, R, AWS) on word boundaries to avoid false hits inside
// unrelated words.
func matchesSkill(lowerText, skill string) bool {
	needle := strings.ToLower(skill)
	if len(needle) > 3 {
		return strings.Contains(lowerText, needle)
	}
	re, err := shortSkillPattern(needle)
	if err != nil {
		return strings.Contains(lowerText, needle)
	}
	return re.MatchString(lowerText)
}

var shortSkillCache = buildShortSkillCache()

func buildShortSkillCache() map[string]*regexp.Regexp {
	cache := make(map[string]*regexp.Regexp)
	for _, skill := range taxonomy.AllSkills() {
		needle := strings.ToLower(skill)
		if len(needle) <= 3 {
			re, err := regexp.Compile(`(^|[^a-z0-9])` + regexp.QuoteMeta(needle) + `($|[^a-z0-9])`)
			if err == nil {
				cache[needle] = re
			}
		}
	}
	return cache
}

func shortSkillPattern(needle string) (*regexp.Regexp, error) {
	if re, ok := shortSkillCache[needle]; ok {
		return re, nil
	}
	return regexp.Compile(`(^|[^a-z0-9])` + regexp.QuoteMeta(needle) + `($|[^a-z0-9])`)
}

// EitherContains reports whether either string is a case-insensitive
// substring of the other. This deliberately permissive rule tolerates
// phrasing variants ("React" vs "React.js") when matching skills.
func EitherContains(a, b string) bool {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
