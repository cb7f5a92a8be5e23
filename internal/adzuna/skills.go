package adzuna

import "strings"

// maxSkills caps how many extracted skills are kept per listing.
const maxSkills = 10

// skillKeywords is the fixed vocabulary scanned for in job descriptions.
// Matching is a case-insensitive substring scan; the canonical casing here
// is what ends up in the stored skills field.
var skillKeywords = []string{
	"Python", "Java", "JavaScript", "TypeScript", "React", "Angular", "Vue",
	"Node.js", "Django", "Flask", "Spring", "Express", "SQL", "PostgreSQL",
	"MongoDB", "Redis", "AWS", "Azure", "GCP", "Docker", "Kubernetes",
	"Git", "Linux", "REST", "GraphQL", "Microservices", "CI/CD",
	"Machine Learning", "AI", "Data Science", "TensorFlow", "PyTorch",
	"Pandas", "NumPy", "Scikit-learn", "HTML", "CSS", "Bootstrap",
	"jQuery", "Webpack", "Babel", "Jest", "Mocha", "Selenium",
}

// ExtractSkills scans description for known skill keywords and returns
// them comma-joined, capped at maxSkills. Best-effort only.
func ExtractSkills(description string) string {
	if description == "" {
		return ""
	}
	lower := strings.ToLower(description)

	var found []string
	for _, skill := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == maxSkills {
				break
			}
		}
	}
	return strings.Join(found, ", ")
}

// LooksRemote reports whether the listing text marks the role as remote.
func LooksRemote(title, description string) bool {
	combined := strings.ToLower(title + " " + description)
	return strings.Contains(combined, "remote")
}
