// Package server provides the HTTP REST API for the ATS checker.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/link-verse-ai/ATS-score-checker/internal/nlp"
)

// ErrEmptyResume indicates the resume carried no meaningful free-text content.
type ErrEmptyResume struct{}

func (e *ErrEmptyResume) Error() string {
	return "could not extract meaningful content from resume"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Empty or invalid client input maps to 400; a failing annotation capability
// is an upstream dependency problem and maps to 502.
func HTTPStatus(err error) int {
	var annotationErr *nlp.AnnotationError
	if errors.As(err, &annotationErr) {
		return http.StatusBadGateway
	}

	var emptyResume *ErrEmptyResume
	var validation *ErrValidation
	switch {
	case errors.As(err, &emptyResume), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
