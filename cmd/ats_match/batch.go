package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-matcher/internal/analyzer"
	"github.com/jonathan/ats-matcher/internal/config"
	"github.com/jonathan/ats-matcher/internal/jobdesc"
	"github.com/jonathan/ats-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank a directory of resumes against one job description",
	Long:  "Analyze every resume text file in a directory against the same job description, in parallel, and emit a ranked JSON report. The engine is stateless per call, so analyses fan out across workers safely.",
	RunE:  runBatch,
}

var (
	batchResumeDir  string
	batchJobFile    string
	batchOutputFile string
	batchConfigFile string
	batchWorkers    int
)

func init() {
	batchCmd.Flags().StringVarP(&batchResumeDir, "resume-dir", "d", "", "Directory of resume text files (required)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job description text file (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON report (default: stdout)")
	batchCmd.Flags().StringVar(&batchConfigFile, "config", "", "Path to JSON config file (overrides ATS_MATCH_CONFIG env var)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Number of concurrent analyses")

	rootCmd.AddCommand(batchCmd)
}

// BatchEntry is one ranked resume in a batch report.
type BatchEntry struct {
	Resume     string           `json:"resume"`
	Score      float64          `json:"score"`
	Confidence types.Confidence `json:"confidence"`
	TopMatches []string         `json:"top_matches"`
}

// BatchReport is the output of one batch run.
type BatchReport struct {
	RunID   string        `json:"run_id"`
	Job     string        `json:"job"`
	JobType types.JobType `json:"job_type"`
	Ranked  []BatchEntry  `json:"ranked"`
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(batchConfigFile, config.Config{
		ResumeDir: batchResumeDir,
		Job:       batchJobFile,
		Output:    batchOutputFile,
	})
	if err != nil {
		return err
	}

	if cfg.ResumeDir == "" || cfg.Job == "" {
		return fmt.Errorf("both --resume-dir and --job are required")
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

	report, err := batchAnalyze(cfg, batchWorkers)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if _, err := out.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// batchAnalyze fans resume files out over an errgroup and collects a report
// ranked by score descending.
func batchAnalyze(cfg *config.Config, workers int) (*BatchReport, error) {
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file: %w", err)
	}

	paths, err := listResumeFiles(cfg.ResumeDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no resume files found in %s", cfg.ResumeDir)
	}

	if workers < 1 {
		workers = 1
	}
	scoring := cfg.ScoringOrDefault()
	entries := make([]BatchEntry, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			resumeText, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read resume %s: %w", path, err)
			}
			result := analyzer.AnalyzeWithConfig(string(resumeText), string(jobText), scoring)

			topMatches := result.MatchingKeywords
			if len(topMatches) > 5 {
				topMatches = topMatches[:5]
			}
			entries[i] = BatchEntry{
				Resume:     filepath.Base(path),
				Score:      result.Score,
				Confidence: result.Confidence,
				TopMatches: topMatches,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Resume < entries[j].Resume
	})

	return &BatchReport{
		RunID:   uuid.New().String(),
		Job:     filepath.Base(cfg.Job),
		JobType: jobdesc.DetectJobType(string(jobText)),
		Ranked:  entries,
	}, nil
}

// listResumeFiles returns the text-like files of a directory, sorted.
func listResumeFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var paths []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".text":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
