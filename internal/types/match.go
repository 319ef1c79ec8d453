package types

// ScoreBreakdown holds the explainable components of a hybrid match score,
// each on the 0-100 scale.
type ScoreBreakdown struct {
	ContentBased  float64 `json:"content_based"`
	Collaborative float64 `json:"collaborative"`
	Hybrid        float64 `json:"hybrid"`
}

// SalaryRange holds numeric salary bounds parsed from the catalog's salary
// text. LowConfidence marks ranges that failed to parse and were zeroed
// rather than aborting the ranking.
type SalaryRange struct {
	Min           int  `json:"min"`
	Max           int  `json:"max"`
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// CareerMatch is one ranked recommendation. It is derived per request and
// never persisted by the engine; missing skills preserve the career's
// required-skill importance order.
type CareerMatch struct {
	Career          CareerDefinition `json:"career"`
	MatchPercentage int              `json:"match_percentage"`
	Breakdown       ScoreBreakdown   `json:"breakdown"`
	RequiredSkills  []string         `json:"required_skills"`
	MatchedSkills   []string         `json:"matched_skills"`
	MissingSkills   []string         `json:"missing_skills"`
	Timeline        string           `json:"timeline"`
	SalaryRange     SalaryRange      `json:"salary_range"`
	TargetCompanies []string         `json:"target_companies"`
	Degraded        bool             `json:"degraded,omitempty"` // collaborative signal fell back to proxy
}
