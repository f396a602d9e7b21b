package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/link-verse-ai/ATS-score-checker/internal/config"
	"github.com/link-verse-ai/ATS-score-checker/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the /check-ats scoring endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:                cfg.Port,
		Workers:             cfg.Workers,
		SimilarityThreshold: cfg.SimilarityThreshold,
		EmbeddingModel:      cfg.EmbeddingModel,
		APIKey:              cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig merges the optional config file, environment variables, and
// built-in defaults, in that order of precedence.
func resolveConfig() (config.Config, error) {
	cfg := config.FromEnv()
	if serveConfig != "" {
		fileCfg, err := config.Load(serveConfig)
		if err != nil {
			return config.Config{}, err
		}
		merged := fileCfg.MergeWithDefaults(*cfg)
		cfg = &merged
	}

	resolved := cfg.MergeWithDefaults(config.Defaults())
	if err := resolved.Validate(); err != nil {
		return config.Config{}, err
	}
	return resolved, nil
}
