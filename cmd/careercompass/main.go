// Package main provides the entry point for the CareerCompass CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careercompass",
	Short: "Career matching and roadmap engine",
	Long:  "CareerCompass ranks career paths against a user profile, predicts placement probability and generates milestone learning roadmaps, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
