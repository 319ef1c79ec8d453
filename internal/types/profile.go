// Package types provides type definitions for structured data used throughout the careercompass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ExperienceLevel represents a user's or career's position on the ordinal
// beginner/intermediate/advanced scale.
type ExperienceLevel string

// Experience levels in ascending order
const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// Ordinal returns the position of the level on the ordinal scale.
// Unknown or empty levels map to intermediate (neutral).
func (l ExperienceLevel) Ordinal() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 1
	}
}

// TimeCommitment represents a weekly learning-hours bucket.
type TimeCommitment string

// Time commitment buckets as collected by the onboarding wizard
const (
	TimeMinimal  TimeCommitment = "less_than_5_hours"
	TimeLight    TimeCommitment = "5_to_10_hours"
	TimeModerate TimeCommitment = "10_to_20_hours"
	TimeFullTime TimeCommitment = "full_time"
)

// UserProfile represents the profile collected by the onboarding wizard.
// Optional fields left empty are treated as unknown/neutral by the scorers;
// an empty skill list is a valid "starting fresh" profile.
type UserProfile struct {
	Skills          []string        `json:"skills"`
	Interests       []string        `json:"interests"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	YearsExperience int             `json:"years_experience" validate:"gte=0"`

	PrimaryObjectives []string       `json:"primary_objectives,omitempty"`
	PreferredDomains  []string       `json:"preferred_domains,omitempty"`
	TimeCommitment    TimeCommitment `json:"time_commitment,omitempty"`
	LearningPace      string         `json:"learning_pace,omitempty"` // fast, steady, thorough

	ProjectsCompleted int      `json:"projects_completed,omitempty" validate:"gte=0"`
	Certifications    []string `json:"certifications,omitempty"`
	PortfolioURL      string   `json:"portfolio_url,omitempty"`

	CareerTimeline   string `json:"career_timeline,omitempty"` // 6months, 1year, 2years, 5years
	RiskTolerance    string `json:"risk_tolerance,omitempty"`
	RemotePreference string `json:"remote_preference,omitempty"`
	StartingFresh    bool   `json:"starting_fresh,omitempty"`
}

// Validate checks the profile for structural validity (MalformedInput class).
// Profiles with missing optional fields pass; negative counts do not.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// FreshStart reports whether the profile should be scored without the skill
// component: either explicitly flagged, or carrying no skills and no interests.
func (p *UserProfile) FreshStart() bool {
	return p.StartingFresh || (len(p.Skills) == 0 && len(p.Interests) == 0)
}
