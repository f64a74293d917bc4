package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Apshaya/RES-Checker/internal/analysis"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
	"github.com/Apshaya/RES-Checker/internal/observability"
	"github.com/Apshaya/RES-Checker/internal/schemas"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job posting from a file or URL",
	Long:  "Read a job posting from a file or fetch it from a URL, then extract the role title, required and preferred skills, experience expectations, responsibilities and qualifications.",
	RunE:  runAnalyzeJob,
}

var (
	jobPath       string
	jobURL        string
	jobOutput     string
	jobUseBrowser bool
	jobVerbose    bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to job posting file (mutually exclusive with --job-url)")
	analyzeJobCmd.Flags().StringVar(&jobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeJobCmd.Flags().StringVarP(&jobOutput, "output", "o", "", "Path to write the JSON result to (default stdout)")
	analyzeJobCmd.Flags().BoolVar(&jobUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeJobCmd.Flags().BoolVarP(&jobVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeJobCmd)
}

// loadJobText resolves job posting text from either a file path or a URL.
func loadJobText(ctx context.Context, path, urlStr string, useBrowser, verbose bool) (string, error) {
	switch {
	case path == "" && urlStr == "":
		return "", fmt.Errorf("either --job or --job-url must be provided")
	case path != "" && urlStr != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	case urlStr != "":
		text, _, err := ingestion.IngestFromURL(ctx, urlStr, useBrowser, verbose)
		if err != nil {
			return "", fmt.Errorf("failed to ingest from URL: %w", err)
		}
		return text, nil
	default:
		text, err := ingestion.ReadDocument(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting: %w", err)
		}
		if err := ingestion.CheckLength(text, "job posting", ingestion.MinDocumentChars); err != nil {
			return "", err
		}
		return text, nil
	}
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	text, err := loadJobText(context.Background(), jobPath, jobURL, jobUseBrowser, jobVerbose)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeJob(text)

	if jobVerbose {
		observability.NewPrinter(os.Stderr).PrintJobAnalysis(result)
	}
	return emitResult(result, schemas.SchemaJobAnalysis, jobOutput)
}
