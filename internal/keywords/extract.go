// Package keywords converts free-form resume and job-description text into
// normalized, deduplicated keyword sets using the linguistic annotator.
package keywords

import (
	"context"
	"sort"
	"strings"

	"github.com/link-verse-ai/ATS-score-checker/internal/nlp"
)

// Extractor turns one text blob into a sorted keyword set.
type Extractor struct {
	annotator nlp.Annotator
}

// NewExtractor creates an extractor backed by the given annotator.
func NewExtractor(annotator nlp.Annotator) *Extractor {
	return &Extractor{annotator: annotator}
}

// Extract returns the normalized keyword set for text: single nouns and
// proper nouns that are not stopwords, plus multi-token noun phrases with no
// stopword constituent. Keywords are lowercase, deduplicated, and sorted
// lexicographically. Empty or whitespace-only input yields an empty set.
func (e *Extractor) Extract(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	lowered := strings.ToLower(text)

	tokens, err := e.annotator.Tokenize(ctx, lowered)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, tok := range tokens {
		if nlp.IsNounTag(tok.Tag) && !tok.Stopword {
			seen[tok.Text] = true
		}
	}

	phrases, err := e.annotator.NounPhrases(ctx, lowered)
	if err != nil {
		return nil, err
	}
	for _, phrase := range phrases {
		if len(phrase.Tokens) < 2 {
			continue
		}
		if anyStopword(phrase.Tokens) {
			continue
		}
		seen[phraseText(phrase)] = true
	}

	return sortedKeys(seen), nil
}

// anyStopword reports whether any constituent token is a stopword.
func anyStopword(tokens []nlp.Token) bool {
	for _, tok := range tokens {
		if tok.Stopword {
			return true
		}
	}
	return false
}

// phraseText renders a phrase as its constituent tokens joined by single spaces.
func phraseText(phrase nlp.Phrase) string {
	parts := make([]string, len(phrase.Tokens))
	for i, tok := range phrase.Tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// sortedKeys returns the map's keys in lexicographic order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Union merges keyword sets into one deduplicated, lexicographically sorted set.
func Union(sets ...[]string) []string {
	merged := make(map[string]bool)
	for _, set := range sets {
		for _, kw := range set {
			merged[kw] = true
		}
	}
	return sortedKeys(merged)
}
