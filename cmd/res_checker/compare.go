package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Apshaya/RES-Checker/internal/analysis"
	"github.com/Apshaya/RES-Checker/internal/config"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
	"github.com/Apshaya/RES-Checker/internal/observability"
	"github.com/Apshaya/RES-Checker/internal/schemas"
	"github.com/Apshaya/RES-Checker/internal/scoring"
	"github.com/Apshaya/RES-Checker/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Score a resume against a job posting",
	Long: `Analyze a resume and a job posting, then score how well they match and
recommend what to change.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runCompare,
}

var (
	compareConfigPath string
	compareResume     string
	compareJob        string
	compareJobURL     string
	compareOutput     string
	compareUseBrowser bool
	compareVerbose    bool
)

func init() {
	// Config file flag (processed first)
	compareCmd.Flags().StringVar(&compareConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	compareCmd.Flags().StringVarP(&compareResume, "resume", "r", "", "Path to resume file")
	compareCmd.Flags().StringVarP(&compareJob, "job", "j", "", "Path to job posting file (mutually exclusive with --job-url)")
	compareCmd.Flags().StringVar(&compareJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "", "Path to write the JSON result to (default stdout)")
	compareCmd.Flags().BoolVar(&compareUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if compareConfigPath != "" {
		loadedCfg, err := config.LoadConfig(compareConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if compareVerbose {
			_, _ = fmt.Fprintf(os.Stderr, "Loaded config from: %s\n", compareConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = compareResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = compareJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = compareJobURL
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = compareOutput
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = compareUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = compareVerbose
	}
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 3: Validate required fields after merging
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	resumeText, err := ingestion.ReadDocument(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if err := ingestion.CheckLength(resumeText, "resume", ingestion.MinDocumentChars); err != nil {
		return err
	}

	jobText, err := loadJobText(ctx, cfg.Job, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return err
	}

	var (
		resumeAnalysis *types.ResumeAnalysis
		jobAnalysis    *types.JobAnalysis
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeAnalysis = analysis.AnalyzeResume(resumeText)
		return nil
	})
	g.Go(func() error {
		jobAnalysis = analysis.AnalyzeJob(jobText)
		return nil
	})
	_ = g.Wait() // analyses are total; the group only coordinates

	result := scoring.Compare(resumeAnalysis, jobAnalysis)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(result)
	}
	return emitResult(result, schemas.SchemaMatchResult, cfg.Output)
}
