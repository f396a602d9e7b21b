package nlp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.2, 0.8}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
}

func TestCosine_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.Equal(t, 0.0, Cosine(a, b))
}

func TestCosine_OppositeVectorsClampToZero(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}
	assert.Equal(t, 0.0, Cosine(a, b))
}

func TestCosine_MismatchedOrEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{0, 0}))
}

func TestIsNounTag(t *testing.T) {
	assert.True(t, IsNounTag("NN"))
	assert.True(t, IsNounTag("NNS"))
	assert.True(t, IsNounTag("NNP"))
	assert.True(t, IsNounTag("NNPS"))
	assert.False(t, IsNounTag("VB"))
	assert.False(t, IsNounTag("JJ"))
	assert.False(t, IsNounTag(""))
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("with"))
	assert.False(t, IsStopword("python"))
	assert.False(t, IsStopword("kubernetes"))
}

func TestChunkNounPhrases_AdjectiveNounRun(t *testing.T) {
	tokens := []Token{
		{Text: "distributed", Tag: "JJ"},
		{Text: "systems", Tag: "NNS"},
		{Text: "run", Tag: "VBP"},
		{Text: "fast", Tag: "RB"},
	}

	phrases := ChunkNounPhrases(tokens)

	require.Len(t, phrases, 1)
	assert.Equal(t, "distributed systems", phrases[0].Text)
	assert.Len(t, phrases[0].Tokens, 2)
}

func TestChunkNounPhrases_TrimsTrailingAdjective(t *testing.T) {
	tokens := []Token{
		{Text: "cloud", Tag: "NN"},
		{Text: "computing", Tag: "NN"},
		{Text: "scalable", Tag: "JJ"},
	}

	phrases := ChunkNounPhrases(tokens)

	require.Len(t, phrases, 1)
	assert.Equal(t, "cloud computing", phrases[0].Text)
}

func TestChunkNounPhrases_NoNouns(t *testing.T) {
	tokens := []Token{
		{Text: "quickly", Tag: "RB"},
		{Text: "ran", Tag: "VBD"},
	}

	assert.Empty(t, ChunkNounPhrases(tokens))
}

func TestChunkNounPhrases_MultipleRuns(t *testing.T) {
	tokens := []Token{
		{Text: "python", Tag: "NN"},
		{Text: "and", Tag: "CC"},
		{Text: "machine", Tag: "NN"},
		{Text: "learning", Tag: "NN"},
	}

	phrases := ChunkNounPhrases(tokens)

	require.Len(t, phrases, 2)
	assert.Equal(t, "python", phrases[0].Text)
	assert.Equal(t, "machine learning", phrases[1].Text)
}

func TestAnnotationError_Unwrap(t *testing.T) {
	cause := errors.New("model unavailable")
	err := &AnnotationError{Op: "embed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "embed")
	assert.Contains(t, err.Error(), "model unavailable")
}
