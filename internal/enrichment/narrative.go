package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkaplan/careercompass/internal/types"
)

// Narrator turns structured match and roadmap output into short prose
// summaries. A nil Narrator (or one built with a nil client) is a no-op
// so callers never have to branch on whether enrichment is enabled.
type Narrator struct {
	client Client
}

// NewNarrator wraps a client. Passing nil yields a disabled narrator.
func NewNarrator(client Client) *Narrator {
	return &Narrator{client: client}
}

// Enabled reports whether narrative generation is available.
func (n *Narrator) Enabled() bool {
	return n != nil && n.client != nil
}

// SummarizeMatches produces a short prose summary of the top matches
// for a user. Returns empty string when disabled.
func (n *Narrator) SummarizeMatches(ctx context.Context, profile *types.UserProfile, matches []types.CareerMatch) (string, error) {
	if !n.Enabled() {
		return "", nil
	}
	if len(matches) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("You are a career advisor. Write a concise, encouraging summary (3-4 sentences) of the following career matches for a user.\n")
	sb.WriteString("Do not invent facts beyond the data given. Plain text only, no markdown.\n\n")
	fmt.Fprintf(&sb, "User experience level: %s\n", profile.ExperienceLevel)
	if len(profile.Skills) > 0 {
		fmt.Fprintf(&sb, "User skills: %s\n", strings.Join(profile.Skills, ", "))
	}
	sb.WriteString("\nMatches:\n")
	for i, m := range matches {
		fmt.Fprintf(&sb, "%d. %s (%d%% match, timeline %s", i+1, m.Career.Title, m.MatchPercentage, m.Timeline)
		if len(m.MissingSkills) > 0 {
			fmt.Fprintf(&sb, ", missing: %s", strings.Join(m.MissingSkills, ", "))
		}
		sb.WriteString(")\n")
	}

	return n.client.GenerateContent(ctx, sb.String(), TierLite)
}

// DescribeRoadmap produces a short motivational overview of a roadmap.
// Returns empty string when disabled.
func (n *Narrator) DescribeRoadmap(ctx context.Context, roadmap *types.Roadmap) (string, error) {
	if !n.Enabled() {
		return "", nil
	}
	if roadmap == nil || len(roadmap.Milestones) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("You are a career advisor. Write a brief (2-3 sentences) motivational overview of this learning roadmap.\n")
	sb.WriteString("Do not invent facts beyond the data given. Plain text only, no markdown.\n\n")
	fmt.Fprintf(&sb, "Career path: %s\n", roadmap.CareerPath)
	fmt.Fprintf(&sb, "Total duration: %s\n", roadmap.TotalDuration)
	sb.WriteString("Milestones:\n")
	for _, ms := range roadmap.Milestones {
		fmt.Fprintf(&sb, "- %s (%s)\n", ms.Title, ms.Duration)
	}

	return n.client.GenerateContent(ctx, sb.String(), TierLite)
}

// ExplainPrediction produces a short explanation of a placement
// prediction. Returns empty string when disabled.
func (n *Narrator) ExplainPrediction(ctx context.Context, prediction *types.PlacementPrediction) (string, error) {
	if !n.Enabled() {
		return "", nil
	}
	if prediction == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("You are a career advisor. In 2-3 sentences, explain this placement prediction to the user in plain language.\n")
	sb.WriteString("Do not invent facts beyond the data given. Plain text only, no markdown.\n\n")
	fmt.Fprintf(&sb, "Probability: %d%% (confidence: %s)\n", prediction.Probability, prediction.Confidence)
	fmt.Fprintf(&sb, "Profile strength: skills %d/10, experience %d/10, projects %d/10, certifications %d/5\n",
		prediction.ProfileStrength.Skills, prediction.ProfileStrength.Experience,
		prediction.ProfileStrength.Projects, prediction.ProfileStrength.Certifications)
	if len(prediction.ImprovementAreas) > 0 {
		sb.WriteString("Top improvement areas:\n")
		for i, area := range prediction.ImprovementAreas {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&sb, "- %s: %s\n", area.Area, area.Suggestion)
		}
	}

	return n.client.GenerateContent(ctx, sb.String(), TierStandard)
}
