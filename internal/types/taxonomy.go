package types

// SkillCategory groups related skills and the job roles they map to.
// Category data is immutable reference data; skill names are compared
// case-insensitively everywhere.
type SkillCategory struct {
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	RelatedRoles []string `json:"related_roles"`
}

// Question is an interview question tagged by category, difficulty and skills.
// Difficulty is one of "easy", "medium", "hard".
type Question struct {
	Text       string   `json:"text"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Skills     []string `json:"skills"`
}
