package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Apshaya/RES-Checker/internal/extraction"
	"github.com/Apshaya/RES-Checker/internal/ingestion"
	"github.com/Apshaya/RES-Checker/internal/observability"
	"github.com/Apshaya/RES-Checker/internal/prep"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills to learn next",
	Long:  "Given your current skills and an optional target role, recommend prioritized skills to learn and plausible career paths.",
	RunE:  runRecommend,
}

var (
	recommendSkills     string
	recommendTargetRole string
	recommendOutput     string
	recommendVerbose    bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendSkills, "skills", "s", "", "Your current skills as free text, e.g. \"React, Node.js and PostgreSQL\" (required)")
	recommendCmd.Flags().StringVarP(&recommendTargetRole, "target-role", "t", "", "Role you are aiming for, e.g. \"Backend Engineer\"")
	recommendCmd.Flags().StringVarP(&recommendOutput, "output", "o", "", "Path to write the JSON result to (default stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	_ = recommendCmd.MarkFlagRequired("skills")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	if err := ingestion.CheckLength(recommendSkills, "skills", ingestion.MinSkillsChars); err != nil {
		return err
	}

	skills := extraction.ExtractSkills(recommendSkills)
	result := prep.RecommendSkills(skills, recommendTargetRole)

	if recommendVerbose {
		observability.NewPrinter(os.Stderr).PrintSkillRecommendation(result)
	}
	return emitResult(result, "", recommendOutput)
}
