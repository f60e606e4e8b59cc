package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-matcher/internal/analyzer"
	"github.com/jonathan/ats-matcher/internal/config"
	"github.com/jonathan/ats-matcher/internal/observability"
	"github.com/jonathan/ats-matcher/internal/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one resume against one job description",
	Long:  "Score a plain-text resume against a plain-text job description and emit the full analysis as JSON: calibrated score, matched and missing keywords, per-section scores, and improvement suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeOutputFile string
	analyzeConfigFile string
	analyzeVerbose    bool
	analyzeValidate   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file (overrides ATS_MATCH_CONFIG env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	analyzeCmd.Flags().BoolVar(&analyzeValidate, "validate", false, "Validate the emitted JSON against the result schema")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(analyzeConfigFile, config.Config{
		Resume:   analyzeResumeFile,
		Job:      analyzeJobFile,
		Output:   analyzeOutputFile,
		Verbose:  analyzeVerbose,
		Validate: analyzeValidate,
	})
	if err != nil {
		return err
	}

	if cfg.Resume == "" || cfg.Job == "" {
		return fmt.Errorf("both --resume and --job are required")
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	return analyzeFiles(cfg, out, os.Stderr)
}

// analyzeFiles runs one analysis from file paths and writes the JSON result.
// Split from the cobra handler so tests can drive it directly.
func analyzeFiles(cfg *config.Config, out, verboseOut io.Writer) error {
	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	result := analyzer.AnalyzeWithConfig(string(resumeText), string(jobText), cfg.ScoringOrDefault())

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if cfg.Validate {
		if err := schemas.ValidateAnalysisResult(payload); err != nil {
			return fmt.Errorf("result failed schema validation: %w", err)
		}
	}

	if _, err := out.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(verboseOut).PrintAnalysis(&result)
	}
	return nil
}

// resolveConfig loads the config file (flag, then ATS_MATCH_CONFIG env var),
// merges flag values over it, and validates the outcome.
func resolveConfig(configFlag string, flags config.Config) (*config.Config, error) {
	path := configFlag
	if path == "" {
		path = os.Getenv("ATS_MATCH_CONFIG")
	}

	merged := flags
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
	}

	if err := merged.ValidateConfig(); err != nil {
		return nil, err
	}
	return &merged, nil
}
