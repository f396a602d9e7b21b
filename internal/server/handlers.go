package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/link-verse-ai/ATS-score-checker/internal/formatting"
	"github.com/link-verse-ai/ATS-score-checker/internal/ingestion"
	"github.com/link-verse-ai/ATS-score-checker/internal/resume"
	"github.com/link-verse-ai/ATS-score-checker/internal/types"
)

// maxRequestBytes bounds the request body size for /check-ats.
const maxRequestBytes = 2 << 20

// CheckATSResponse is the response body for /check-ats.
type CheckATSResponse struct {
	Score              float64  `json:"score"`
	Matches            []string `json:"matches"`
	MissingKeywords    []string `json:"missing_keywords"`
	Suggestions        []string `json:"suggestions"`
	FormattingWarnings []string `json:"formatting_warnings"`
}

// handleCheckATS scores a structured resume against its target job.
func (s *Server) handleCheckATS(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	if err := validateResumeDocument(body); err != nil {
		var schemaErr *SchemaValidationError
		if errors.As(err, &schemaErr) {
			s.errorResponse(w, http.StatusBadRequest, schemaErr.Error())
			return
		}
		// The embedded schema is known-good, so a validation failure here
		// means the document itself could not be parsed.
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var doc types.Resume
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := doc.Validate(); err != nil {
		verr := &ErrValidation{Field: "resume", Message: err.Error()}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			verr.Field = fieldErrs[0].Field()
		}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	response, err := s.checkATS(r.Context(), &doc)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("check-ats failed: %v", err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// checkATS runs the full scoring flow: job keyword set, resume keyword set,
// semantic match scoring, and formatting analysis.
func (s *Server) checkATS(ctx context.Context, doc *types.Resume) (*CheckATSResponse, error) {
	jobKeywords, err := s.jobKeywords(ctx, doc)
	if err != nil {
		return nil, err
	}

	fragments := resume.Fragments(doc)
	if len(fragments) == 0 {
		return nil, &ErrEmptyResume{}
	}

	resumeKeywords, err := s.aggregator.ExtractAll(ctx, fragments)
	if err != nil {
		return nil, err
	}

	report, err := s.calculator.Score(ctx, resumeKeywords, jobKeywords, s.builder.ReferenceKeywords())
	if err != nil {
		return nil, err
	}

	return &CheckATSResponse{
		Score:              report.Score,
		Matches:            report.Matches,
		MissingKeywords:    report.MissingKeywords,
		Suggestions:        report.Suggestions,
		FormattingWarnings: formatting.Analyze(doc),
	}, nil
}

// jobKeywords builds the target keyword set. The job profile is used only
// when the request carries a description, position, and company; otherwise
// the generic requirement set unioned with the reference set stands in.
func (s *Server) jobKeywords(ctx context.Context, doc *types.Resume) ([]string, error) {
	if doc.JobDescription != "" && doc.TargetPosition != "" && doc.TargetCompany != "" {
		cleaned := ingestion.CleanJobDescription(doc.JobDescription)
		return s.builder.BuildJobProfile(ctx, cleaned, doc.TargetCompany)
	}
	return s.builder.FallbackKeywords(), nil
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRoot returns a welcome message.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Welcome to the ATS Checker API. Use /check-ats to analyze a resume.",
	})
}
