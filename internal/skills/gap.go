package skills

// GapAnalysis is the result of comparing a user's skills against a career's
// required skills. Matched and Missing preserve the required-skill order
// (most important first) and partition the requirement list exactly.
type GapAnalysis struct {
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Coverage float64  `json:"coverage"` // 0-1
}

// AnalyzeGap compares userSkills against requiredSkills. Matching is
// case-insensitive, trims whitespace and treats synonyms as equal via the
// normalizer. A career with no requirements yields coverage 1.0 (no
// requirements means fully qualified). Total over all inputs; never errors.
func AnalyzeGap(n *Normalizer, userSkills []string, requiredSkills []string) GapAnalysis {
	if len(requiredSkills) == 0 {
		return GapAnalysis{Matched: []string{}, Missing: []string{}, Coverage: 1.0}
	}

	userSet := n.KeySet(userSkills)

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))
	seen := make(map[string]bool, len(requiredSkills))

	for _, required := range requiredSkills {
		key := n.Key(required)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if userSet[key] {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}

	total := len(matched) + len(missing)
	coverage := 1.0
	if total > 0 {
		coverage = float64(len(matched)) / float64(total)
	}

	return GapAnalysis{Matched: matched, Missing: missing, Coverage: coverage}
}
