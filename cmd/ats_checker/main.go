// Package main provides the entry point for the ATS Checker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_checker",
	Short: "ATS Checker API Server",
	Long:  "ATS Checker scores how well a structured resume matches a target job description, reporting matched and missing keywords, suggestions, and formatting warnings.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
