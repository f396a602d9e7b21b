// Package scoring converts match results into the final compatibility report.
package scoring

import (
	"context"
	"math"
	"sort"

	"github.com/link-verse-ai/ATS-score-checker/internal/matching"
	"github.com/link-verse-ai/ATS-score-checker/internal/types"
)

// Calculator derives a 0-100 score and improvement suggestions from the
// resume, job, and reference keyword sets.
type Calculator struct {
	matcher *matching.Matcher
}

// NewCalculator creates a score calculator.
func NewCalculator(matcher *matching.Matcher) *Calculator {
	return &Calculator{matcher: matcher}
}

// Score matches resume keywords against job keywords, then checks which of
// those confirmed job matches also qualify against the reference set.
// Reference matches are a lens over job matches, not a separate matching
// universe: only keywords already matched to the job are offered against the
// reference set, in a pass with its own bookkeeping.
//
//	score = (|jobMatches| + |refMatches|) / (|jobKeywords| + |refKeywords|) * 100
//
// rounded to one decimal, and 0 when both keyword sets are empty.
func (c *Calculator) Score(ctx context.Context, resumeKeywords, jobKeywords, referenceKeywords []string) (*types.ScoreReport, error) {
	jobMatches, err := c.matcher.Match(ctx, resumeKeywords, jobKeywords)
	if err != nil {
		return nil, err
	}

	referenceMatches, err := c.matcher.Match(ctx, jobMatches, referenceKeywords)
	if err != nil {
		return nil, err
	}

	score := 0.0
	denominator := len(jobKeywords) + len(referenceKeywords)
	if denominator > 0 {
		raw := float64(len(jobMatches)+len(referenceMatches)) / float64(denominator) * 100
		score = math.Round(raw*10) / 10
	}

	missing := missingKeywords(jobKeywords, jobMatches)
	suggestions := make([]string, 0, len(missing))
	for _, kw := range missing {
		suggestions = append(suggestions, "Add '"+kw+"' to your resume")
	}

	return &types.ScoreReport{
		Score:           score,
		Matches:         jobMatches,
		MissingKeywords: missing,
		Suggestions:     suggestions,
	}, nil
}

// missingKeywords returns the job keywords whose text is absent from the
// match set, in lexicographic order.
func missingKeywords(jobKeywords, matches []string) []string {
	matched := make(map[string]bool, len(matches))
	for _, kw := range matches {
		matched[kw] = true
	}

	missing := make([]string, 0)
	for _, kw := range jobKeywords {
		if !matched[kw] {
			missing = append(missing, kw)
		}
	}
	sort.Strings(missing)
	return missing
}
