package types

// RecommendedSkill is a single skill suggestion with a priority and rationale.
// Priority is one of "high", "medium", "low".
type RecommendedSkill struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// SkillRecommendation is the output of the skill-gap recommendation engine.
type SkillRecommendation struct {
	CurrentSkills   []string           `json:"current_skills"`
	Recommendations []RecommendedSkill `json:"recommendations"`
	CareerPaths     []string           `json:"career_paths"`
}

// InterviewPreparation is a diversified question set with derived focus areas.
type InterviewPreparation struct {
	Questions  []Question `json:"questions"`
	FocusAreas []string   `json:"focus_areas"`
}
