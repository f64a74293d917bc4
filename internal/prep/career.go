package prep

import "fmt"

// careerRule maps a skill signature to a suggested career direction. Rules
// are evaluated in order and every matching rule contributes a path.
type careerRule struct {
	signals []string
	path    string
}

var careerRules = []careerRule{
	{
		signals: []string{"React", "Angular", "Vue", "JavaScript", "TypeScript", "CSS"},
		path:    "Frontend Developer: deepen framework expertise and ship user-facing features.",
	},
	{
		signals: []string{"Node.js", "Express", "Django", "Flask", "Spring Boot", "Go", "PHP", "Laravel"},
		path:    "Backend Developer: own APIs, data models and service reliability.",
	},
	{
		signals: []string{"Docker", "Kubernetes", "AWS", "Terraform", "Jenkins", "CI/CD", "Ansible"},
		path:    "DevOps Engineer: automate infrastructure and deployment pipelines.",
	},
	{
		signals: []string{"Python", "Pandas", "Machine Learning", "TensorFlow", "PyTorch", "Data Analysis"},
		path:    "Data Scientist: move from analysis toward modeling and production ML.",
	},
}

const fullStackPath = "Full-Stack Developer: combine your frontend and backend skills end to end."

// CareerPaths suggests career directions from the user's skills. The
// full-stack path requires both a frontend and a backend signal; every other
// rule fires independently. With no matches a generic fallback is returned,
// personalized to the target role when one was given.
func CareerPaths(userSkills []string, targetRole string) []string {
	var paths []string
	frontend := holdsAny(userSkills, careerRules[0].signals)
	backend := holdsAny(userSkills, careerRules[1].signals)

	for i, rule := range careerRules {
		if holdsAny(userSkills, rule.signals) {
			paths = append(paths, rule.path)
		}
		if i == 1 && frontend && backend {
			paths = append(paths, fullStackPath)
		}
	}

	if len(paths) == 0 {
		if targetRole != "" {
			return []string{fmt.Sprintf("Build foundational projects toward a %s role and document them publicly.", targetRole)}
		}
		return []string{"Build foundational projects in an area that interests you and document them publicly."}
	}
	return paths
}
