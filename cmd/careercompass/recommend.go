package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaplan/careercompass/internal/catalog"
	"github.com/mkaplan/careercompass/internal/observability"
	"github.com/mkaplan/careercompass/internal/ranking"
	"github.com/mkaplan/careercompass/internal/skills"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank career paths against a user profile",
	Long:  "Scores every career in the catalog against the profile using the hybrid content and collaborative model, and prints the top matches with skill gaps and timeline estimates.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendConfig  string
	recommendCareers string
	recommendCohort  string
	recommendTopN    int
	recommendVerbose bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to user profile JSON (required)")
	recommendCmd.Flags().StringVarP(&recommendConfig, "config", "c", "", "Path to config JSON")
	recommendCmd.Flags().StringVar(&recommendCareers, "careers", "", "Path to career catalog JSON")
	recommendCmd.Flags().StringVar(&recommendCohort, "cohort", "", "Path to cohort statistics JSON")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top", "n", 0, "Number of matches to return")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print formatted breakdowns instead of JSON")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(recommendConfig)
	if err != nil {
		return err
	}
	if recommendCareers != "" {
		cfg.Careers = recommendCareers
	}
	if recommendCohort != "" {
		cfg.Cohort = recommendCohort
	}
	if recommendTopN > 0 {
		cfg.TopN = recommendTopN
	}

	profile, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}

	snapshot, err := catalog.LoadSnapshot(cfg.Careers, cfg.Cohort)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	matches, err := ranking.Rank(profile, snapshot.Careers, snapshot.Cohort, ranking.Options{
		TopN:       cfg.TopN,
		Weights:    cfg.EffectiveWeights(),
		Normalizer: skills.NewNormalizer(cfg.Synonyms),
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if recommendVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatches(matches)
		return nil
	}

	return printJSON(matches)
}
