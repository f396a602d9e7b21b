package profile

import (
	"context"
	"strings"

	"github.com/link-verse-ai/ATS-score-checker/internal/keywords"
)

// Builder combines extracted job-description keywords with curated company
// preference keywords into the target keyword set.
type Builder struct {
	extractor *keywords.Extractor
	tables    *Tables
}

// NewBuilder creates a job profile builder.
func NewBuilder(extractor *keywords.Extractor, tables *Tables) *Builder {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Builder{extractor: extractor, tables: tables}
}

// BuildJobProfile extracts keywords from the job description and unions in
// the target company's preference keywords, if the company is known.
// Preference keywords are curated, not NLP-derived; they are inserted
// verbatim rather than passed through extraction. An empty description
// yields an empty set.
func (b *Builder) BuildJobProfile(ctx context.Context, jobDescription, targetCompany string) ([]string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return []string{}, nil
	}

	extracted, err := b.extractor.Extract(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	prefs := b.tables.PreferencesFor(targetCompany)
	if len(prefs) == 0 {
		return extracted, nil
	}
	return keywords.Union(extracted, prefs), nil
}

// FallbackKeywords returns the generic requirement set unioned with the
// reference set, used as the job keyword set when the request does not carry
// a complete job description, position, and company.
func (b *Builder) FallbackKeywords() []string {
	return keywords.Union(b.tables.General, b.tables.Reference)
}

// ReferenceKeywords returns the industry baseline keyword set in sorted order.
func (b *Builder) ReferenceKeywords() []string {
	return keywords.Union(b.tables.Reference)
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
