// Package skills provides skill-name normalization and gap analysis between
// user profiles and career requirements.
package skills

import "strings"

// defaultSynonyms maps common skill name variants to canonical names
var defaultSynonyms = map[string]string{
	"golang":           "Go",
	"go lang":          "Go",
	"javascript":       "JavaScript",
	"js":               "JavaScript",
	"typescript":       "TypeScript",
	"ts":               "TypeScript",
	"k8s":              "Kubernetes",
	"kubernetes":       "Kubernetes",
	"react.js":         "React",
	"reactjs":          "React",
	"vue.js":           "Vue",
	"vuejs":            "Vue",
	"node.js":          "Node.js",
	"nodejs":           "Node.js",
	"node":             "Node.js",
	"postgres":         "PostgreSQL",
	"postgresql":       "PostgreSQL",
	"ml":               "Machine Learning",
	"machine learning": "Machine Learning",
	"py":               "Python",
	"python":           "Python",
	"sql":              "SQL",
	"css3":             "CSS",
	"html5":            "HTML",
	"aws":              "AWS",
	"gcp":              "Google Cloud",
	"google cloud":     "Google Cloud",
	"ci/cd":            "CI/CD",
	"cicd":             "CI/CD",
}

// Normalizer canonicalizes skill names so that variants and synonyms compare
// equal. The zero value is not usable; construct with NewNormalizer.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer creates a Normalizer with the built-in synonym table merged
// with extra entries (variant -> canonical, matched case-insensitively).
// Extra entries override built-ins on conflict.
func NewNormalizer(extra map[string]string) *Normalizer {
	merged := make(map[string]string, len(defaultSynonyms)+len(extra))
	for variant, canonical := range defaultSynonyms {
		merged[variant] = canonical
	}
	for variant, canonical := range extra {
		v := strings.ToLower(strings.TrimSpace(variant))
		if v == "" || canonical == "" {
			continue
		}
		merged[v] = canonical
	}
	return &Normalizer{synonyms: merged}
}

// Canonical returns the canonical display form of a skill name.
// Unknown skills keep their trimmed spelling.
func (n *Normalizer) Canonical(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := n.synonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Key returns the case-insensitive identity key for a skill name, used for
// set membership. Two names with the same key are the same skill.
func (n *Normalizer) Key(name string) string {
	return strings.ToLower(n.Canonical(name))
}

// KeySet converts a list of skill names into a deduplicated identity set.
// Empty names are dropped.
func (n *Normalizer) KeySet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		key := n.Key(name)
		if key != "" {
			set[key] = true
		}
	}
	return set
}
