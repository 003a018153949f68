// Package main provides the entry point for the cover letter agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "cover_letter_agent",
	Version: version,
	Short:   "AI-powered cover letter generator",
	Long:    "Cover Letter Agent extracts a structured profile from free text, searches live job postings, scores each posting against the candidate's skills, and drafts a tailored cover letter for the best match.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
