package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaplan/careercompass/internal/catalog"
	"github.com/mkaplan/careercompass/internal/observability"
	"github.com/mkaplan/careercompass/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap against a target career",
	Long:  "Compares the profile's skills against a career's requirements after synonym normalization and reports matched skills, missing skills and coverage.",
	RunE:  runAnalyze,
}

var (
	analyzeProfile string
	analyzeConfig  string
	analyzeCareers string
	analyzeCareer  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProfile, "profile", "p", "", "Path to user profile JSON (required)")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to config JSON")
	analyzeCmd.Flags().StringVar(&analyzeCareers, "careers", "", "Path to career catalog JSON")
	analyzeCmd.Flags().StringVar(&analyzeCareer, "career-id", "", "Target career ID (required)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted breakdowns instead of JSON")

	if err := analyzeCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("career-id"); err != nil {
		panic(fmt.Sprintf("failed to mark career-id flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(analyzeConfig)
	if err != nil {
		return err
	}
	if analyzeCareers != "" {
		cfg.Careers = analyzeCareers
	}

	profile, err := loadProfile(analyzeProfile)
	if err != nil {
		return err
	}

	snapshot, err := catalog.LoadSnapshot(cfg.Careers, cfg.Cohort)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	career, ok := snapshot.CareerByID(analyzeCareer)
	if !ok {
		return fmt.Errorf("career not found: %s", analyzeCareer)
	}

	gap := skills.AnalyzeGap(skills.NewNormalizer(cfg.Synonyms), profile.Skills, career.RequiredSkills)

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintGapAnalysis(career.Title, gap.Matched, gap.Missing, gap.Coverage)
		return nil
	}

	return printJSON(map[string]any{
		"career":   career.Title,
		"matched":  gap.Matched,
		"missing":  gap.Missing,
		"coverage": gap.Coverage,
	})
}
