// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkaplan/careercompass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatches outputs the top career matches with scores and skill gaps.
func (p *Printer) PrintMatches(matches []types.CareerMatch) {
	if len(matches) == 0 {
		p.printBox("CAREER MATCHES", "No matches found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Top %d matches:\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Career.Title))
		sb.WriteString(fmt.Sprintf("    Match: %d%% (content %.1f / collab %.1f)",
			m.MatchPercentage, m.Breakdown.ContentBased, m.Breakdown.Collaborative))
		if m.Degraded {
			sb.WriteString(" *")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Timeline: %s\n", m.Timeline))
		if len(m.MissingSkills) > 0 {
			skills := strings.Join(m.MissingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("CAREER MATCHES", sb.String())
}

// PrintPrediction outputs a placement prediction with insights and
// prioritized improvement areas.
func (p *Printer) PrintPrediction(prediction *types.PlacementPrediction) {
	if prediction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Probability: %d%%\n", prediction.Probability))
	sb.WriteString(fmt.Sprintf("Confidence:  %s\n", prediction.Confidence))
	sb.WriteString(fmt.Sprintf("Strength:    skills %d/10  exp %d/10  proj %d/10  certs %d/5\n",
		prediction.ProfileStrength.Skills, prediction.ProfileStrength.Experience,
		prediction.ProfileStrength.Projects, prediction.ProfileStrength.Certifications))

	if len(prediction.Insights) > 0 {
		sb.WriteString("\nInsights:\n")
		count := min(len(prediction.Insights), maxItemsToShow)
		for i := 0; i < count; i++ {
			insight := prediction.Insights[i]
			if len(insight) > 50 {
				insight = insight[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", insight))
		}
	}

	if len(prediction.ImprovementAreas) > 0 {
		sb.WriteString("\nImprovement Areas:\n")
		count := min(len(prediction.ImprovementAreas), maxItemsToShow)
		for i := 0; i < count; i++ {
			area := prediction.ImprovementAreas[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", area.Priority, area.Area))
		}
		if len(prediction.ImprovementAreas) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(prediction.ImprovementAreas)-maxItemsToShow))
		}
	}

	p.printBox("PLACEMENT PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs a roadmap milestone by milestone.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil || len(roadmap.Milestones) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career path: %s\n", roadmap.CareerPath))
	sb.WriteString(fmt.Sprintf("Duration:    %s\n", roadmap.TotalDuration))
	if roadmap.EstimatedPlacementDate != "" {
		sb.WriteString(fmt.Sprintf("Target date: %s\n", roadmap.EstimatedPlacementDate))
	}
	sb.WriteString("\n")

	for i, ms := range roadmap.Milestones {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", ms.Order, ms.Title, ms.Duration))
		if len(ms.Skills) > 0 {
			skills := strings.Join(ms.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("   Skills: %s\n", skills))
		}
		if i < len(roadmap.Milestones)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING ROADMAP", sb.String())
}

// PrintGapAnalysis outputs matched and missing skills for a target career.
func (p *Printer) PrintGapAnalysis(career string, matched, missing []string, coverage float64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target:   %s\n", career))
	sb.WriteString(fmt.Sprintf("Coverage: %.0f%%\n", coverage*100))

	if len(matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", matched[i]))
		}
		if len(matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matched)-maxItemsToShow))
		}
	}

	if len(missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
