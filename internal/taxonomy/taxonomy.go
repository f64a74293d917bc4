// Package taxonomy holds the immutable reference data the analysis engine
// runs against: skill categories with related roles, the soft-skill phrase
// list, the sentiment polarity lexicon and the interview question bank.
// Everything here is loaded once at process start and never mutated.
package taxonomy

import (
	"strings"

	"github.com/Apshaya/RES-Checker/internal/types"
)

// Categories is the fixed skill taxonomy. A skill appears in at most one
// category; lookups are first-match and case-insensitive.
var Categories = []types.SkillCategory{
	{
		Name: "Frontend Development",
		Skills: []string{
			"JavaScript", "TypeScript", "React", "Angular", "Vue", "HTML", "CSS",
			"Sass", "Redux", "Next.js", "Webpack", "Tailwind CSS",
		},
		RelatedRoles: []string{"Frontend Developer", "UI Engineer", "Web Developer"},
	},
	{
		Name: "Backend Development",
		Skills: []string{
			"Node.js", "Express", "Django", "Flask", "Spring Boot", "Go", "Rust",
			"PHP", "Laravel", "Ruby on Rails", "GraphQL", "REST API", "Microservices",
		},
		RelatedRoles: []string{"Backend Developer", "API Engineer", "Software Engineer"},
	},
	{
		Name: "Databases",
		Skills: []string{
			"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
			"SQLite", "DynamoDB", "Cassandra",
		},
		RelatedRoles: []string{"Database Administrator", "Data Engineer", "Backend Developer"},
	},
	{
		Name: "Cloud & DevOps",
		Skills: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins",
			"CI/CD", "Linux", "Ansible", "Git", "Nginx",
		},
		RelatedRoles: []string{"DevOps Engineer", "Cloud Architect", "Site Reliability Engineer"},
	},
	{
		Name: "Data & Machine Learning",
		Skills: []string{
			"Python", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn",
			"Spark", "Tableau", "Power BI", "Machine Learning", "Deep Learning",
			"Data Analysis", "R",
		},
		RelatedRoles: []string{"Data Scientist", "Data Analyst", "ML Engineer"},
	},
	{
		Name: "Mobile Development",
		Skills: []string{
			"Swift", "Kotlin", "React Native", "Flutter", "Android", "iOS",
			"Objective-C",
		},
		RelatedRoles: []string{"Mobile Developer", "iOS Developer", "Android Developer"},
	},
	{
		Name: "Testing & Quality",
		Skills: []string{
			"Jest", "Mocha", "Cypress", "Selenium", "JUnit", "Pytest", "Playwright",
			"Unit Testing", "TDD",
		},
		RelatedRoles: []string{"QA Engineer", "Test Automation Engineer", "SDET"},
	},
	{
		Name: "Soft Skills",
		Skills: []string{
			"Leadership", "Communication", "Teamwork", "Problem Solving",
			"Project Management", "Agile", "Scrum", "Mentoring", "Collaboration",
			"Time Management",
		},
		RelatedRoles: []string{"Engineering Manager", "Team Lead", "Scrum Master"},
	},
}

// CategoryOf returns the first category containing the skill, matched
// case-insensitively.
func CategoryOf(skill string) (types.SkillCategory, bool) {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, cat := range Categories {
		for _, s := range cat.Skills {
			if strings.ToLower(s) == needle {
				return cat, true
			}
		}
	}
	return types.SkillCategory{}, false
}

// AllSkills returns every skill name in the taxonomy in category order.
func AllSkills() []string {
	var out []string
	for _, cat := range Categories {
		out = append(out, cat.Skills...)
	}
	return out
}

// Canonical returns the taxonomy's display casing for a skill name, or the
// input unchanged when the skill is not in the taxonomy.
func Canonical(skill string) string {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, cat := range Categories {
		for _, s := range cat.Skills {
			if strings.ToLower(s) == needle {
				return s
			}
		}
	}
	for _, s := range SoftSkillPhrases {
		if strings.ToLower(s) == needle {
			return s
		}
	}
	return skill
}

// SoftSkillPhrases are multi-word soft-skill phrases detected by substring
// search in addition to the taxonomy skill lists.
var SoftSkillPhrases = []string{
	"attention to detail",
	"critical thinking",
	"cross-functional collaboration",
	"stakeholder management",
	"public speaking",
	"conflict resolution",
}
