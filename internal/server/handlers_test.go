package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/link-verse-ai/ATS-score-checker/internal/keywords"
	"github.com/link-verse-ai/ATS-score-checker/internal/matching"
	"github.com/link-verse-ai/ATS-score-checker/internal/nlp"
	"github.com/link-verse-ai/ATS-score-checker/internal/profile"
	"github.com/link-verse-ai/ATS-score-checker/internal/scoring"
	"github.com/link-verse-ai/ATS-score-checker/internal/types"
)

// wordAnnotator tags whitespace-separated fields as nouns unless they are
// stopwords and treats identical keyword texts as a perfect similarity match.
type wordAnnotator struct{}

func (wordAnnotator) Tokenize(_ context.Context, text string) ([]nlp.Token, error) {
	fields := strings.Fields(text)
	tokens := make([]nlp.Token, 0, len(fields))
	for _, f := range fields {
		tok := nlp.Token{Text: f, Tag: "NN", Stopword: nlp.IsStopword(f)}
		if tok.Stopword {
			tok.Tag = "DT"
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (a wordAnnotator) NounPhrases(ctx context.Context, text string) ([]nlp.Phrase, error) {
	tokens, err := a.Tokenize(ctx, text)
	if err != nil {
		return nil, err
	}
	return nlp.ChunkNounPhrases(tokens), nil
}

func (wordAnnotator) Similarity(_ context.Context, x, y string) (float64, error) {
	if x == y {
		return 1.0, nil
	}
	return 0.0, nil
}

func (wordAnnotator) Close() error { return nil }

// failingAnnotator tokenizes normally but cannot compute similarity.
type failingAnnotator struct{ wordAnnotator }

func (failingAnnotator) Similarity(context.Context, string, string) (float64, error) {
	return 0, &nlp.AnnotationError{Op: "similarity", Cause: errors.New("embedding backend unavailable")}
}

func newTestServer() *Server {
	return newTestServerWith(wordAnnotator{})
}

func newTestServerWith(annotator nlp.Annotator) *Server {
	extractor := keywords.NewExtractor(annotator)
	matcher := matching.NewMatcher(annotator, matching.DefaultThreshold)
	return &Server{
		annotator:  annotator,
		aggregator: keywords.NewAggregator(extractor, 2),
		builder:    profile.NewBuilder(extractor, profile.DefaultTables()),
		calculator: scoring.NewCalculator(matcher),
	}
}

func validResume() map[string]any {
	return map[string]any{
		"contactInfo": map[string]any{
			"fullName": "Jordan Smith",
			"email":    "jordan@example.com",
			"phone":    "555-0100",
		},
		"summary": map[string]any{"content": "python"},
	}
}

func postCheckATS(t *testing.T, s *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case []byte:
		payload = b
	default:
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, "/check-ats", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handleCheckATS(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *CheckATSResponse {
	t.Helper()
	var resp CheckATSResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestHandleCheckATS_FallbackKeywords(t *testing.T) {
	// No job description, position, or company: the target set is the
	// generic requirement set unioned with the reference set.
	s := newTestServer()

	rec := postCheckATS(t, s, validResume())

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	fallback := s.builder.FallbackKeywords()
	reference := s.builder.ReferenceKeywords()
	expected := math.Round(200.0/float64(len(fallback)+len(reference))*10) / 10

	assert.Equal(t, expected, resp.Score)
	assert.Equal(t, []string{"python"}, resp.Matches)
	assert.Len(t, resp.MissingKeywords, len(fallback)-1)
	assert.Len(t, resp.Suggestions, len(resp.MissingKeywords))
}

func TestHandleCheckATS_JobProfileKeywords(t *testing.T) {
	s := newTestServer()

	doc := validResume()
	doc["jobDescription"] = "python and kubernetes"
	doc["targetPosition"] = "Software Engineer"
	doc["targetCompany"] = "Google"

	rec := postCheckATS(t, s, doc)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	// Job set: {python, kubernetes} plus Google's four preference keywords.
	// "python" matches both the job and the reference set.
	reference := s.builder.ReferenceKeywords()
	expected := math.Round(200.0/float64(6+len(reference))*10) / 10

	assert.Equal(t, expected, resp.Score)
	assert.Equal(t, []string{"python"}, resp.Matches)
	assert.Len(t, resp.MissingKeywords, 5)
	assert.Contains(t, resp.MissingKeywords, "android")
	assert.Contains(t, resp.Suggestions, "Add 'kubernetes' to your resume")
}

func TestHandleCheckATS_PartialTargetingUsesFallback(t *testing.T) {
	s := newTestServer()

	doc := validResume()
	doc["jobDescription"] = "python"
	// No position or company: targeting is incomplete.

	rec := postCheckATS(t, s, doc)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	fallback := s.builder.FallbackKeywords()
	assert.Len(t, resp.MissingKeywords, len(fallback)-1)
}

func TestHandleCheckATS_HTMLJobDescription(t *testing.T) {
	s := newTestServer()

	doc := validResume()
	doc["jobDescription"] = "<p>python and <b>kubernetes</b></p>"
	doc["targetPosition"] = "Software Engineer"
	doc["targetCompany"] = "Initech"

	rec := postCheckATS(t, s, doc)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	assert.Equal(t, []string{"python"}, resp.Matches)
	assert.Equal(t, []string{"kubernetes"}, resp.MissingKeywords)
}

func TestHandleCheckATS_FormattingWarnings(t *testing.T) {
	s := newTestServer()

	doc := validResume()
	doc["experiences"] = []map[string]any{
		{"position": "Engineer", "company": "Initech", "description": []string{"built python services"}},
	}

	rec := postCheckATS(t, s, doc)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)

	assert.Contains(t, resp.FormattingWarnings, "Skills section is empty; ATS relies heavily on skills keywords.")
	assert.Contains(t, resp.FormattingWarnings, "Experience at Initech lacks achievements; add measurable outcomes.")
}

func TestHandleCheckATS_EmptyResumeContent(t *testing.T) {
	s := newTestServer()

	doc := validResume()
	doc["summary"] = map[string]any{"content": ""}

	rec := postCheckATS(t, s, doc)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not extract meaningful content")
}

func TestHandleCheckATS_MalformedJSON(t *testing.T) {
	s := newTestServer()

	rec := postCheckATS(t, s, []byte(`{"contactInfo": `))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCheckATS_SchemaViolation(t *testing.T) {
	s := newTestServer()

	rec := postCheckATS(t, s, map[string]any{"summary": map[string]any{"content": "python"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "contactInfo")
}

func TestHandleCheckATS_InvalidEmail(t *testing.T) {
	s := newTestServer()

	doc := validResume()
	doc["contactInfo"].(map[string]any)["email"] = "not-an-email"

	rec := postCheckATS(t, s, doc)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCheckATS_InvalidProfileURL(t *testing.T) {
	// The embedded schema types linkedIn as a plain string, so a malformed
	// URL passes schema validation and must be caught by struct validation.
	s := newTestServer()

	doc := validResume()
	doc["contactInfo"].(map[string]any)["linkedIn"] = "not-a-url"

	rec := postCheckATS(t, s, doc)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
	assert.Contains(t, rec.Body.String(), "LinkedIn")
}

func TestHandleCheckATS_AnnotationFailureMapsToBadGateway(t *testing.T) {
	// A failing annotation capability is an upstream dependency problem,
	// not a client fault.
	s := newTestServerWith(failingAnnotator{})

	rec := postCheckATS(t, s, validResume())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "annotation failed")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleRoot(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handleRoot(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/check-ats")
}

func TestHandleRoot_UnknownPath(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.handleRoot(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckATS_ScoreUsesResumeSections(t *testing.T) {
	s := newTestServer()

	doc := &types.Resume{
		JobDescription: "python and kubernetes",
		TargetPosition: "Engineer",
		TargetCompany:  "Initech",
		Summary:        types.Summary{Content: "backend engineer"},
		Skills:         []types.Skill{{Names: []string{"python", "kubernetes"}}},
	}

	resp, err := s.checkATS(context.Background(), doc)
	require.NoError(t, err)

	assert.Contains(t, resp.Matches, "python")
	assert.Contains(t, resp.Matches, "kubernetes")
	assert.Empty(t, resp.MissingKeywords)
}