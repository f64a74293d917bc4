// Package main provides the entry point for the RES Checker CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "res_checker",
	Short: "Resume and job posting analysis toolkit",
	Long:  "RES Checker extracts skills, sections, experience and sentiment from resumes and job postings, scores resume quality and job fit, and prepares skill recommendations and interview questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
