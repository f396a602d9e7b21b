// Package nlp provides the linguistic annotation capability used for keyword
// extraction and semantic matching: tokenization with part-of-speech tags,
// noun-phrase chunking, and similarity between short phrases.
package nlp

import (
	"context"
	"fmt"
)

// Token is a single token of annotated text.
type Token struct {
	Text     string // surface form
	Tag      string // Penn Treebank part-of-speech tag
	Stopword bool
}

// Phrase is a multi-token noun-phrase span.
type Phrase struct {
	Text   string
	Tokens []Token
}

// Annotator is an abstraction over linguistic annotation providers.
// Implementations must be deterministic for identical input text and model
// version, and safe for concurrent use by multiple goroutines.
type Annotator interface {
	// Tokenize splits text into tokens with part-of-speech tags and stopword flags.
	Tokenize(ctx context.Context, text string) ([]Token, error)
	// NounPhrases returns the multi-token noun-phrase spans found in text.
	NounPhrases(ctx context.Context, text string) ([]Phrase, error)
	// Similarity returns a semantic closeness measure in [0, 1] between two keywords.
	Similarity(ctx context.Context, a, b string) (float64, error)
	// Close releases any resources held by the annotator.
	Close() error
}

// Embedder computes semantic vector representations of short phrases.
// Implementations must be safe for concurrent use.
type Embedder interface {
	// Embed returns the vector representation of text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}

// IsNounTag reports whether tag marks a noun or proper noun.
func IsNounTag(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	default:
		return false
	}
}

// AnnotationError indicates the annotation capability failed on a piece of
// text. It fails the enclosing extraction; partial keyword sets would
// silently understate resume content and bias the score low.
type AnnotationError struct {
	Op    string // operation that failed (tokenize, noun_phrases, similarity, embed)
	Cause error
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("annotation failed during %s: %v", e.Op, e.Cause)
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}
