// Package main provides the entry point for the ats_match CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_match",
	Short: "Resume vs job description match scoring",
	Long:  "ats_match scores how well a resume matches a job description the way applicant tracking systems do: weighted keyword matching, section coverage, and a calibrated 0-100 score with improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
