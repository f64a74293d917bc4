package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
	"github.com/Apshaya/RES-Checker/internal/observability"
	"github.com/Apshaya/RES-Checker/internal/prep"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Prepare interview questions for your skills",
	Long:  "Given your skills and an optional target role, assemble a difficulty-balanced set of interview questions with focus areas to study.",
	RunE:  runInterview,
}

var (
	interviewSkills     string
	interviewTargetRole string
	interviewOutput     string
	interviewVerbose    bool
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewSkills, "skills", "s", "", "Your current skills as free text (required)")
	interviewCmd.Flags().StringVarP(&interviewTargetRole, "target-role", "t", "", "Role you are interviewing for")
	interviewCmd.Flags().StringVarP(&interviewOutput, "output", "o", "", "Path to write the JSON result to (default stdout)")
	interviewCmd.Flags().BoolVarP(&interviewVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	_ = interviewCmd.MarkFlagRequired("skills")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(_ *cobra.Command, _ []string) error {
	if err := ingestion.CheckLength(interviewSkills, "skills", ingestion.MinSkillsChars); err != nil {
		return err
	}

	skills := extraction.ExtractSkills(interviewSkills)
	result := prep.PrepareInterview(skills, interviewTargetRole)

	if interviewVerbose {
		observability.NewPrinter(os.Stderr).PrintInterviewPreparation(result)
	}
	return emitResult(result, "", interviewOutput)
}
