// Package profile builds the target keyword set for a job posting from the
// description text and curated company preference data.
package profile

// Tables holds the process-wide keyword data: the industry baseline set, the
// generic requirement set used when no job description is supplied, and the
// per-company preference lists. Loaded once at startup and never mutated.
type Tables struct {
	// Reference is the industry baseline keyword set, scored independently
	// of any one job posting.
	Reference []string
	// General is the generic requirement set used as a fallback target.
	General []string
	// Preferences maps lowercase company names to curated keyword lists.
	Preferences map[string][]string
}

// DefaultTables returns the built-in keyword data.
func DefaultTables() *Tables {
	return &Tables{
		Reference: []string{
			"distributed systems", "machine learning", "cloud computing", "big data",
			"scalability", "microservices", "devops", "ci/cd", "agile", "scrum",
			"react", "angular", "vue", "node.js", "python", "java", "c++", "go",
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
		},
		General: []string{
			"software engineering", "data structures", "algorithms", "problem solving",
			"communication", "teamwork", "leadership", "project management",
		},
		Preferences: map[string][]string{
			"google":   {"distributed systems", "machine learning", "android", "flutter"},
			"amazon":   {"leadership principles", "aws", "ecommerce", "logistics"},
			"apple":    {"ios", "swift", "objective-c", "hardware integration"},
			"netflix":  {"streaming", "content delivery", "recommendation systems"},
			"facebook": {"social media", "graph databases", "react", "php"},
		},
	}
}

// PreferencesFor returns the preference keywords for a company, matched
// case-insensitively. Unknown companies yield nil; that is not an error.
func (t *Tables) PreferencesFor(company string) []string {
	if company == "" {
		return nil
	}
	return t.Preferences[lower(company)]
}
