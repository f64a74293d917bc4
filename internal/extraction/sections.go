package extraction

import "regexp"

// SectionNames is the fixed set of detectable resume sections, in report order.
var SectionNames = []string{
	"contact",
	"summary",
	"experience",
	"education",
	"skills",
	"projects",
	"certifications",
	"achievements",
}

// sectionPatterns maps each section to an alternation of synonyms. Sections
// are independent booleans: a match anywhere in the text marks the section
// as present.
var sectionPatterns = map[string]*regexp.Regexp{
	"contact":        regexp.MustCompile(`(?i)\b(contact|e-?mail|phone|linkedin|github)\b|@`),
	"summary":        regexp.MustCompile(`(?i)\b(summary|objective|profile|about me)\b`),
	"experience":     regexp.MustCompile(`(?i)\b(experience|employment|work history|career history)\b`),
	"education":      regexp.MustCompile(`(?i)\b(education|academic|degree|university|college)\b`),
	"skills":         regexp.MustCompile(`(?i)\b(skills|technologies|competencies|tech stack)\b`),
	"projects":       regexp.MustCompile(`(?i)\b(projects?|portfolio)\b`),
	"certifications": regexp.MustCompile(`(?i)\b(certifications?|certificates?|licenses?|credentials)\b`),
	"achievements":   regexp.MustCompile(`(?i)\b(achievements?|awards?|accomplishments|honors)\b`),
}

// ExtractSections reports, for each known section name, whether any of its
// synonym patterns matches the text.
func ExtractSections(text string) map[string]bool {
	out := make(map[string]bool, len(SectionNames))
	for _, name := range SectionNames {
		out[name] = sectionPatterns[name].MatchString(text)
	}
	return out
}
