package nlp

import (
	"context"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseAnnotator implements Annotator using the prose NLP library for
// tokenization and part-of-speech tagging, and a pluggable Embedder for
// similarity between keywords.
//
// prose models are read-only after load, so a single ProseAnnotator is safe
// for concurrent use by the extraction worker pool.
type ProseAnnotator struct {
	embedder Embedder
}

// NewProseAnnotator creates an annotator backed by prose and the given embedder.
func NewProseAnnotator(embedder Embedder) *ProseAnnotator {
	return &ProseAnnotator{embedder: embedder}
}

// parse runs prose over text with entity extraction disabled (only tags are needed).
func (a *ProseAnnotator) parse(text string) (*prose.Document, error) {
	return prose.NewDocument(text, prose.WithExtraction(false))
}

// Tokenize splits text into tokens with part-of-speech tags and stopword flags.
func (a *ProseAnnotator) Tokenize(_ context.Context, text string) ([]Token, error) {
	doc, err := a.parse(text)
	if err != nil {
		return nil, &AnnotationError{Op: "tokenize", Cause: err}
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	for _, tok := range proseTokens {
		tokens = append(tokens, Token{
			Text:     tok.Text,
			Tag:      tok.Tag,
			Stopword: IsStopword(tok.Text),
		})
	}
	return tokens, nil
}

// NounPhrases chunks the tagged token stream into noun-phrase spans:
// maximal runs of adjectives and nouns that end in a noun.
func (a *ProseAnnotator) NounPhrases(ctx context.Context, text string) ([]Phrase, error) {
	tokens, err := a.Tokenize(ctx, text)
	if err != nil {
		return nil, &AnnotationError{Op: "noun_phrases", Cause: err}
	}
	return ChunkNounPhrases(tokens), nil
}

// ChunkNounPhrases groups tagged tokens into noun-phrase spans: maximal runs
// of adjectives and nouns, trimmed so each span ends at its head noun.
func ChunkNounPhrases(tokens []Token) []Phrase {
	var phrases []Phrase
	var run []Token
	flush := func() {
		end := len(run)
		for end > 0 && !IsNounTag(run[end-1].Tag) {
			end--
		}
		if end > 0 {
			span := make([]Token, end)
			copy(span, run[:end])
			phrases = append(phrases, Phrase{Text: joinTokens(span), Tokens: span})
		}
		run = nil
	}

	for _, tok := range tokens {
		if isChunkTag(tok.Tag) {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases
}

// Similarity embeds both keywords and returns their cosine similarity clamped to [0, 1].
func (a *ProseAnnotator) Similarity(ctx context.Context, x, y string) (float64, error) {
	vx, err := a.embedder.Embed(ctx, x)
	if err != nil {
		return 0, &AnnotationError{Op: "similarity", Cause: err}
	}
	vy, err := a.embedder.Embed(ctx, y)
	if err != nil {
		return 0, &AnnotationError{Op: "similarity", Cause: err}
	}
	return Cosine(vx, vy), nil
}

// Close releases the underlying embedder.
func (a *ProseAnnotator) Close() error {
	return a.embedder.Close()
}

// isChunkTag reports whether tag can participate in a noun-phrase span.
func isChunkTag(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	default:
		return IsNounTag(tag)
	}
}

// joinTokens renders a span's surface text with single spaces.
func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}
