package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/link-verse-ai/ATS-score-checker/internal/formatting"
	"github.com/link-verse-ai/ATS-score-checker/internal/ingestion"
	"github.com/link-verse-ai/ATS-score-checker/internal/keywords"
	"github.com/link-verse-ai/ATS-score-checker/internal/matching"
	"github.com/link-verse-ai/ATS-score-checker/internal/nlp"
	"github.com/link-verse-ai/ATS-score-checker/internal/profile"
	"github.com/link-verse-ai/ATS-score-checker/internal/resume"
	"github.com/link-verse-ai/ATS-score-checker/internal/scoring"
	"github.com/link-verse-ai/ATS-score-checker/internal/types"
)

var (
	checkResumePath string
	checkConfig     string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Score a resume JSON file from the command line",
	Long:  `Run the full scoring flow over a resume document stored as JSON and print the report.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkResumePath, "resume", "", "Path to resume JSON file (required)")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "Path to JSON config file")
	_ = checkCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	serveConfig = checkConfig
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	data, err := os.ReadFile(checkResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	var doc types.Resume
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid resume: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	embedder, err := nlp.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	annotator := nlp.NewProseAnnotator(embedder)
	defer func() { _ = annotator.Close() }()

	extractor := keywords.NewExtractor(annotator)
	aggregator := keywords.NewAggregator(extractor, cfg.Workers)
	builder := profile.NewBuilder(extractor, profile.DefaultTables())
	calculator := scoring.NewCalculator(matching.NewMatcher(annotator, cfg.SimilarityThreshold))

	jobKeywords := builder.FallbackKeywords()
	if doc.JobDescription != "" && doc.TargetPosition != "" && doc.TargetCompany != "" {
		cleaned := ingestion.CleanJobDescription(doc.JobDescription)
		jobKeywords, err = builder.BuildJobProfile(ctx, cleaned, doc.TargetCompany)
		if err != nil {
			return err
		}
	}

	fragments := resume.Fragments(&doc)
	if len(fragments) == 0 {
		return fmt.Errorf("could not extract meaningful content from resume")
	}

	resumeKeywords, err := aggregator.ExtractAll(ctx, fragments)
	if err != nil {
		return err
	}

	report, err := calculator.Score(ctx, resumeKeywords, jobKeywords, builder.ReferenceKeywords())
	if err != nil {
		return err
	}

	out := struct {
		*types.ScoreReport
		FormattingWarnings []string `json:"formatting_warnings"`
	}{report, formatting.Analyze(&doc)}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
