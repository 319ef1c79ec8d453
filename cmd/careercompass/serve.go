package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkaplan/careercompass/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for career ranking, placement prediction and roadmap generation.`,
	RunE:  runServe,
}

var (
	servePort   int
	serveConfig string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to config JSON")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadEffectiveConfig(serveConfig)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        servePort,
		Careers:     cfg.Careers,
		Cohort:      cfg.Cohort,
		TopN:        cfg.TopN,
		BucketSize:  cfg.BucketSize,
		Weights:     cfg.EffectiveWeights(),
		Synonyms:    cfg.Synonyms,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
