// Package main provides the entry point for the resume mentor CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_mentor",
	Short: "Resume vs job-description alignment analyzer",
	Long:  "Resume Mentor analyzes a resume against a job description, scores section-by-section alignment, and produces mentor-style feedback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
