package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaplan/careercompass/internal/catalog"
	"github.com/mkaplan/careercompass/internal/observability"
	"github.com/mkaplan/careercompass/internal/roadmap"
	"github.com/mkaplan/careercompass/internal/skills"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a learning roadmap for a target career",
	Long:  "Builds the milestone sequence from the profile's current skill coverage to job-ready state for the target career, with curated resources and completion criteria per milestone.",
	RunE:  runRoadmap,
}

var (
	roadmapProfile    string
	roadmapConfig     string
	roadmapCareers    string
	roadmapCareer     string
	roadmapBucketSize int
	roadmapVerbose    bool
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapProfile, "profile", "p", "", "Path to user profile JSON (required)")
	roadmapCmd.Flags().StringVarP(&roadmapConfig, "config", "c", "", "Path to config JSON")
	roadmapCmd.Flags().StringVar(&roadmapCareers, "careers", "", "Path to career catalog JSON")
	roadmapCmd.Flags().StringVar(&roadmapCareer, "career-id", "", "Target career ID (required)")
	roadmapCmd.Flags().IntVar(&roadmapBucketSize, "bucket-size", 0, "Skills per milestone")
	roadmapCmd.Flags().BoolVarP(&roadmapVerbose, "verbose", "v", false, "Print formatted breakdowns instead of JSON")

	if err := roadmapCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := roadmapCmd.MarkFlagRequired("career-id"); err != nil {
		panic(fmt.Sprintf("failed to mark career-id flag as required: %v", err))
	}

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(roadmapConfig)
	if err != nil {
		return err
	}
	if roadmapCareers != "" {
		cfg.Careers = roadmapCareers
	}
	if roadmapBucketSize > 0 {
		cfg.BucketSize = roadmapBucketSize
	}

	profile, err := loadProfile(roadmapProfile)
	if err != nil {
		return err
	}

	snapshot, err := catalog.LoadSnapshot(cfg.Careers, cfg.Cohort)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	career, ok := snapshot.CareerByID(roadmapCareer)
	if !ok {
		return fmt.Errorf("career not found: %s", roadmapCareer)
	}

	result, err := roadmap.Generate(profile, career, roadmap.Options{
		BucketSize: cfg.BucketSize,
		Normalizer: skills.NewNormalizer(cfg.Synonyms),
	})
	if err != nil {
		return fmt.Errorf("roadmap generation failed: %w", err)
	}

	if roadmapVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRoadmap(result)
		return nil
	}

	return printJSON(result)
}
