package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaplan/careercompass/internal/catalog"
	"github.com/mkaplan/careercompass/internal/observability"
	"github.com/mkaplan/careercompass/internal/placement"
	"github.com/mkaplan/careercompass/internal/skills"
	"github.com/mkaplan/careercompass/internal/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict placement probability for a user profile",
	Long:  "Computes a placement probability against a target career with confidence tier, profile strength sub-scores, insights and prioritized improvement areas. Without a target career the career-specific signals default to neutral.",
	RunE:  runPredict,
}

var (
	predictProfile string
	predictConfig  string
	predictCareers string
	predictCareer  string
	predictVerbose bool
)

func init() {
	predictCmd.Flags().StringVarP(&predictProfile, "profile", "p", "", "Path to user profile JSON (required)")
	predictCmd.Flags().StringVarP(&predictConfig, "config", "c", "", "Path to config JSON")
	predictCmd.Flags().StringVar(&predictCareers, "careers", "", "Path to career catalog JSON")
	predictCmd.Flags().StringVar(&predictCareer, "career-id", "", "Target career ID")
	predictCmd.Flags().BoolVarP(&predictVerbose, "verbose", "v", false, "Print formatted breakdowns instead of JSON")

	if err := predictCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(predictConfig)
	if err != nil {
		return err
	}
	if predictCareers != "" {
		cfg.Careers = predictCareers
	}

	profile, err := loadProfile(predictProfile)
	if err != nil {
		return err
	}

	var target *types.CareerDefinition
	if predictCareer != "" {
		snapshot, err := catalog.LoadSnapshot(cfg.Careers, cfg.Cohort)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		career, ok := snapshot.CareerByID(predictCareer)
		if !ok {
			return fmt.Errorf("career not found: %s", predictCareer)
		}
		target = career
	}

	prediction, err := placement.Predict(skills.NewNormalizer(cfg.Synonyms), profile, target)
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	if predictVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPrediction(prediction)
		return nil
	}

	return printJSON(prediction)
}
