package roadmap

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

// Bucketing and duration policy
const (
	DefaultBucketSize   = 3 // skills per gap milestone
	minBucketSize       = 2
	maxBucketSize       = 4
	foundationWeeks     = 4
	projectsWeeks       = 4
	interviewWeeks      = 4
	baseWeeksPerBucket  = 3
	minTotalWeeks       = 4
	maxTotalWeeks       = 96
	weeksPerMonth       = 4
	placementDateLayout = "January 2, 2006"
)

// Options controls roadmap generation. The zero value is usable: the default
// bucket size applies and Now falls back to the wall clock. Tests pin Now for
// reproducible placement dates; milestone ids never depend on it.
type Options struct {
	BucketSize int
	Normalizer *skills.Normalizer
	Now        time.Time
}

// Generate builds the milestone sequence from the profile's current coverage
// to job-ready state for the target career. Milestones preserve the career's
// skill importance order with known prerequisites front-loaded, and the
// union of the gap milestones' skills equals the missing-skill set exactly.
// A career with no required skills yields a single zero-duration "Ready to
// Apply" milestone, never an empty roadmap.
func Generate(profile *types.UserProfile, career *types.CareerDefinition, opts Options) (*types.Roadmap, error) {
	if profile == nil {
		return nil, &types.ValidationError{Subject: "profile", Cause: fmt.Errorf("profile is nil")}
	}
	if err := profile.Validate(); err != nil {
		return nil, &types.ValidationError{Subject: "profile", Cause: err}
	}
	if career == nil {
		return nil, &types.ValidationError{Subject: "career", Cause: fmt.Errorf("career is nil")}
	}
	if err := career.Validate(); err != nil {
		return nil, &types.ValidationError{Subject: "career", Cause: err}
	}

	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = skills.NewNormalizer(nil)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if len(career.RequiredSkills) == 0 {
		return readyToApply(profile, career, now), nil
	}

	gap := skills.AnalyzeGap(normalizer, profile.Skills, career.RequiredSkills)
	ordered := orderByDependencies(normalizer, gap.Missing)

	milestones := make([]types.Milestone, 0, len(ordered)/minBucketSize+3)
	order := 1

	// Foundation stage for profiles starting near zero. Its skills are
	// foundational prerequisites, not part of the career's declared gap.
	if profile.ExperienceLevel == types.LevelBeginner || len(profile.Skills) < 3 {
		milestones = append(milestones, types.Milestone{
			ID:            milestoneID(career.ID, "foundation", 0, []string{"Programming Basics", "Problem Solving", "Git Basics"}),
			Title:         "Build Strong Foundation",
			Description:   "Master the fundamentals and core concepts before tackling the skill gap",
			Duration:      formatWeeks(foundationWeeks),
			DurationWeeks: foundationWeeks,
			Skills:        []string{"Programming Basics", "Problem Solving", "Git Basics"},
			Resources: []types.Resource{
				{Title: "CS50 Introduction to Computer Science", Type: "Course", URL: "https://cs50.harvard.edu"},
				{Title: "FreeCodeCamp", Type: "Platform", URL: "https://www.freecodecamp.org"},
			},
			CompletionCriteria: []string{
				"Complete 20+ coding problems on a practice platform",
				"Build 2 basic projects",
				"Demonstrate proficiency in Git Basics via a project or assessment",
			},
			Order: order,
		})
		order++
	}

	// Gap stages: bucket the ordered missing skills.
	for i, bucket := range chunkSkills(ordered, bucketSize(opts.BucketSize)) {
		weeks := bucketWeeks(profile, len(bucket))
		milestones = append(milestones, types.Milestone{
			ID:                 milestoneID(career.ID, "gap", i, bucket),
			Title:              fmt.Sprintf("Master %s", strings.Join(bucket, " & ")),
			Description:        fmt.Sprintf("Deep dive into %s", strings.Join(bucket, " and ")),
			Duration:           formatWeeks(weeks),
			DurationWeeks:      weeks,
			Skills:             bucket,
			Resources:          resourcesForSkills(normalizer, bucket),
			CompletionCriteria: completionCriteria(bucket),
			Order:              order,
		})
		order++
	}

	// Closing stages carry no gap skills so the coverage property holds.
	milestones = append(milestones, types.Milestone{
		ID:            milestoneID(career.ID, "projects", 0, nil),
		Title:         "Build Real-World Projects",
		Description:   fmt.Sprintf("Apply your skills to portfolio-worthy projects relevant to %s", career.Title),
		Duration:      formatWeeks(projectsWeeks),
		DurationWeeks: projectsWeeks,
		Skills:        []string{},
		Resources: []types.Resource{
			{Title: "GitHub for your portfolio", Type: "Platform", URL: "https://github.com"},
		},
		CompletionCriteria: []string{
			"Complete 2-3 production-ready projects",
			"Deploy projects with live demos",
			"Write comprehensive documentation",
		},
		Order: order,
	})
	order++

	milestones = append(milestones, types.Milestone{
		ID:            milestoneID(career.ID, "interview", 0, nil),
		Title:         "Interview Preparation",
		Description:   "Prepare for technical interviews and job applications",
		Duration:      formatWeeks(interviewWeeks),
		DurationWeeks: interviewWeeks,
		Skills:        []string{},
		Resources: []types.Resource{
			{Title: "System Design Primer", Type: "Guide", URL: "https://github.com/donnemartin/system-design-primer"},
		},
		CompletionCriteria: []string{
			"Complete 5+ mock interviews",
			"Create an ATS-friendly resume",
		},
		Order: order,
	})

	totalWeeks := 0
	for _, m := range milestones {
		totalWeeks += m.DurationWeeks
	}
	totalWeeks = adjustForTimeline(totalWeeks, profile.CareerTimeline)

	months := (totalWeeks + weeksPerMonth - 1) / weeksPerMonth
	return &types.Roadmap{
		CareerPath:             career.Title,
		TotalDuration:          formatTotalDuration(totalWeeks),
		EstimatedMonths:        months,
		DifficultyLevel:        difficultyLevel(profile, len(gap.Missing)),
		EstimatedPlacementDate: now.AddDate(0, 0, totalWeeks*7).Format(placementDateLayout),
		Milestones:             milestones,
	}, nil
}

// readyToApply is the degenerate roadmap for careers with no requirements.
func readyToApply(profile *types.UserProfile, career *types.CareerDefinition, now time.Time) *types.Roadmap {
	return &types.Roadmap{
		CareerPath:             career.Title,
		TotalDuration:          "0 weeks",
		EstimatedMonths:        0,
		DifficultyLevel:        difficultyLevel(profile, 0),
		EstimatedPlacementDate: now.Format(placementDateLayout),
		Milestones: []types.Milestone{{
			ID:            milestoneID(career.ID, "ready", 0, nil),
			Title:         "Ready to Apply",
			Description:   fmt.Sprintf("%s declares no skill requirements; start applying now", career.Title),
			Duration:      "0 weeks",
			DurationWeeks: 0,
			Skills:        []string{},
			Resources:     []types.Resource{},
			CompletionCriteria: []string{
				"Polish your resume and portfolio",
				"Apply to open positions",
			},
			Order: 1,
		}},
	}
}

// milestoneID is a stable hash of the career, stage, bucket index and sorted
// skill list, so regenerating a roadmap for unchanged inputs yields identical
// ids across sessions.
func milestoneID(careerID, stage string, index int, skillList []string) string {
	sorted := make([]string, len(skillList))
	copy(sorted, skillList)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s", careerID, stage, index, strings.Join(sorted, ","))))
	return hex.EncodeToString(sum[:])[:12]
}

func bucketSize(requested int) int {
	if requested <= 0 {
		return DefaultBucketSize
	}
	if requested < minBucketSize {
		return minBucketSize
	}
	if requested > maxBucketSize {
		return maxBucketSize
	}
	return requested
}

func chunkSkills(skillList []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(skillList); start += size {
		end := start + size
		if end > len(skillList) {
			end = len(skillList)
		}
		chunks = append(chunks, skillList[start:end])
	}
	return chunks
}

// bucketWeeks estimates a gap milestone's duration from its skill count and
// the profile's pace and commitment.
func bucketWeeks(profile *types.UserProfile, skillCount int) int {
	weeks := float64(baseWeeksPerBucket) + float64(skillCount-1)

	switch profile.ExperienceLevel {
	case types.LevelBeginner:
		weeks++
	case types.LevelAdvanced:
		weeks--
	}

	switch profile.TimeCommitment {
	case types.TimeMinimal:
		weeks *= 1.5
	case types.TimeLight:
		weeks *= 1.2
	case types.TimeFullTime:
		weeks *= 0.7
	}

	switch profile.LearningPace {
	case "fast":
		weeks *= 0.8
	case "thorough":
		weeks *= 1.2
	}

	result := int(math.Ceil(weeks))
	if result < 1 {
		result = 1
	}
	return result
}

// completionCriteria renders the per-bucket template.
func completionCriteria(bucket []string) []string {
	criteria := make([]string, 0, len(bucket)+1)
	for _, skill := range bucket {
		criteria = append(criteria, fmt.Sprintf("Demonstrate proficiency in %s via a project or assessment", skill))
	}
	criteria = append(criteria, fmt.Sprintf("Build 1-2 projects using %s", strings.Join(bucket, " and ")))
	return criteria
}

// adjustForTimeline compresses or relaxes the plan under timeline pressure
// and clamps the total to sane bounds.
func adjustForTimeline(weeks int, timeline string) int {
	adjusted := float64(weeks)
	switch timeline {
	case "6months":
		adjusted *= 0.75
	case "5years":
		adjusted *= 1.2
	}

	result := int(math.Ceil(adjusted))
	if result < minTotalWeeks {
		result = minTotalWeeks
	}
	if result > maxTotalWeeks {
		result = maxTotalWeeks
	}
	return result
}

func formatWeeks(weeks int) string {
	if weeks == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", weeks)
}

func formatTotalDuration(weeks int) string {
	months := (weeks + weeksPerMonth - 1) / weeksPerMonth
	if months <= 3 {
		return fmt.Sprintf("%d weeks", weeks)
	}
	if months < 12 {
		return fmt.Sprintf("%d months (%d weeks)", months, weeks)
	}
	return fmt.Sprintf("%.1f years (%d months)", float64(months)/12.0, months)
}

// difficultyLevel mirrors the presentation tiering: large gaps or beginner
// profiles read as beginner plans, small gaps for advanced users as advanced.
func difficultyLevel(profile *types.UserProfile, missingCount int) types.ExperienceLevel {
	if profile.ExperienceLevel == types.LevelBeginner || missingCount > 8 {
		return types.LevelBeginner
	}
	if profile.ExperienceLevel == types.LevelAdvanced && missingCount < 4 {
		return types.LevelAdvanced
	}
	return types.LevelIntermediate
}
