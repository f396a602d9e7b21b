// Package matching reconciles keyword sets by pairwise semantic similarity.
package matching

import (
	"context"
	"sort"

	"github.com/link-verse-ai/ATS-score-checker/internal/nlp"
)

// DefaultThreshold is the similarity score a pair must exceed to count as a match.
const DefaultThreshold = 0.8

// Matcher performs greedy, first-qualifying-pair-wins matching between a
// subject keyword set and a target keyword set.
type Matcher struct {
	annotator nlp.Annotator
	threshold float64
}

// NewMatcher creates a matcher with the given similarity threshold.
// A non-positive threshold falls back to DefaultThreshold.
func NewMatcher(annotator nlp.Annotator, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{annotator: annotator, threshold: threshold}
}

// Match runs one matching pass of subject keywords against target keywords
// and returns the matched subject keyword texts in iteration order.
//
// Both sides are iterated in lexicographic order so the outcome is
// reproducible given identical inputs and an identical similarity model; the
// greedy strategy is order-sensitive when several candidates sit near the
// threshold. Within the pass, a keyword consumed as a match on either side
// can be neither re-matched nor re-offered.
func (m *Matcher) Match(ctx context.Context, subject, target []string) ([]string, error) {
	subject = sortedUnique(subject)
	target = sortedUnique(target)

	matchedSubject := make(map[string]bool)
	matchedTarget := make(map[string]bool)
	matched := make([]string, 0)

	for _, s := range subject {
		for _, t := range target {
			if matchedSubject[s] || matchedTarget[t] {
				continue
			}
			sim, err := m.annotator.Similarity(ctx, s, t)
			if err != nil {
				return nil, err
			}
			if sim > m.threshold {
				matchedSubject[s] = true
				matchedTarget[t] = true
				matched = append(matched, s)
				break
			}
		}
	}

	return matched, nil
}

// sortedUnique returns a deduplicated lexicographically sorted copy of keywords.
// Extractor output is already sorted; curated keyword lists may not be.
func sortedUnique(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}
