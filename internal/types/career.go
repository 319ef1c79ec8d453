package types

import (
	"github.com/go-playground/validator/v10"
)

// DemandLevel represents the hiring-demand bucket for a career.
type DemandLevel string

// Demand levels
const (
	DemandLow    DemandLevel = "Low"
	DemandMedium DemandLevel = "Medium"
	DemandHigh   DemandLevel = "High"
)

// ExperienceRange bounds the years of experience typical for a career.
type ExperienceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CareerDefinition is a catalog entry supplied by the admin surface.
// The engine reads a snapshot per request and never mutates it.
// RequiredSkills are ordered most-important first; that order drives
// missing-skill prioritization and roadmap sequencing.
type CareerDefinition struct {
	ID              string          `json:"id" validate:"required"`
	Title           string          `json:"title" validate:"required"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	DifficultyLevel ExperienceLevel `json:"difficulty_level,omitempty"`

	RequiredSkills   []string `json:"required_skills"`
	RelatedInterests []string `json:"related_interests,omitempty"`

	GrowthScore            int         `json:"growth_score" validate:"gte=0,lte=100"`
	Salary                 string      `json:"salary,omitempty"` // raw text, e.g. "$80k-$150k"
	LearningDurationMonths int         `json:"learning_duration_months" validate:"gte=0"`
	Demand                 DemandLevel `json:"demand,omitempty"`

	ExperienceRange *ExperienceRange `json:"experience_range,omitempty"`
	Industries      []string         `json:"industries,omitempty"`
	TopCompanies    []string         `json:"top_companies,omitempty"`
	Trending        bool             `json:"trending,omitempty"`
}

// Validate checks the career for structural validity (MalformedInput class).
func (c *CareerDefinition) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
