// Package roadmap builds ordered milestone sequences from a user's skill gap
// toward a target career.
package roadmap

import "github.com/mkaplan/careercompass/internal/skills"

// prerequisites is a coarse dependency table (skill key -> prerequisite skill
// keys), not a full dependency graph: it only front-loads well-known
// foundations when both sides appear in the same gap. Keys are normalizer
// identity keys.
var prerequisites = map[string][]string{
	"react":            {"javascript"},
	"vue":              {"javascript"},
	"node.js":          {"javascript"},
	"typescript":       {"javascript"},
	"django":           {"python"},
	"flask":            {"python"},
	"machine learning": {"python", "statistics"},
	"deep learning":    {"machine learning"},
	"mlops":            {"machine learning", "docker"},
	"kubernetes":       {"docker"},
	"ci/cd":            {"git"},
	"spring boot":      {"java"},
	"rails":            {"ruby"},
	"graphql":          {"api design"},
	"system design":    {"data structures"},
}

// orderByDependencies reorders the missing-skill list so no skill appears
// before a prerequisite that is itself part of the gap, otherwise preserving
// the original importance order. Deterministic; bounded recursion because the
// table is small and acyclic.
func orderByDependencies(n *skills.Normalizer, missing []string) []string {
	inGap := make(map[string]string, len(missing)) // key -> original spelling
	for _, skill := range missing {
		key := n.Key(skill)
		if _, seen := inGap[key]; !seen {
			inGap[key] = skill
		}
	}

	ordered := make([]string, 0, len(missing))
	placed := make(map[string]bool, len(missing))

	var place func(key string, depth int)
	place = func(key string, depth int) {
		original, ok := inGap[key]
		if !ok || placed[key] || depth > 4 {
			return
		}
		placed[key] = true
		for _, prereq := range prerequisites[key] {
			place(prereq, depth+1)
		}
		ordered = append(ordered, original)
	}

	for _, skill := range missing {
		place(n.Key(skill), 0)
	}

	return ordered
}
