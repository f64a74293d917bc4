package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Apshaya/RES-Checker/internal/analysis"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
	"github.com/Apshaya/RES-Checker/internal/observability"
	"github.com/Apshaya/RES-Checker/internal/schemas"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Analyze a resume file and score its quality",
	Long:  "Read a resume (.txt, .md, .pdf or .docx), extract sections, skills, experience and sentiment, and produce a quality score with improvement suggestions.",
	RunE:  runAnalyzeResume,
}

var (
	resumePath    string
	resumeOutput  string
	resumeVerbose bool
)

func init() {
	analyzeResumeCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume file (required)")
	analyzeResumeCmd.Flags().StringVarP(&resumeOutput, "output", "o", "", "Path to write the JSON result to (default stdout)")
	analyzeResumeCmd.Flags().BoolVarP(&resumeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	_ = analyzeResumeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeResumeCmd)
}

func runAnalyzeResume(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ReadDocument(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	if err := ingestion.CheckLength(text, "resume", ingestion.MinDocumentChars); err != nil {
		return err
	}

	result := analysis.AnalyzeResume(text)

	if resumeVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeAnalysis(result)
	}
	return emitResult(result, schemas.SchemaResumeAnalysis, resumeOutput)
}
