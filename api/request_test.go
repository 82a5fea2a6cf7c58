package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkmorph.org/core/analysis"
	"turkmorph.org/core/lexicon"
	"turkmorph.org/core/types"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	lex, err := lexicon.LoadLexiconFromLines("kitap", "okumak")
	require.NoError(t, err)
	m, err := analysis.NewMorphologyFromLexicon(lex, types.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	nop := zerolog.Nop()
	req := &Request{
		Morphology: func() *analysis.Morphology { return m },
		Logger:     &nop,
	}
	return NewHandler(req, []string{"https://example.org"})
}

func post(h http.Handler, body string, headers ...string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestProcessData(t *testing.T) {
	h := newTestHandler(t)

	t.Run("analyses words", func(t *testing.T) {
		w := post(h, `{"words":["kitaplarda","okut","xyz"]}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.NotEmpty(t, w.Header().Get("ETag"))

		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		_, err := uuid.Parse(resp.RequestID)
		assert.NoError(t, err)
		assert.Equal(t, resp.RequestID, w.Header().Get(RequestIDHeader))
		require.Len(t, resp.Results, 3)

		assert.Equal(t, "kitaplarda", resp.Results[0].Word)
		require.Len(t, resp.Results[0].Analyses, 1)
		assert.Equal(t, "[kitap:Noun] kitap:Noun+lar:A3pl+da:Loc", resp.Results[0].Analyses[0].Analysis)

		require.Len(t, resp.Results[1].Analyses, 1)
		assert.Equal(t, []string{"oku", "okut"}, resp.Results[1].Analyses[0].Stems)
		assert.Equal(t, []string{"okumak", "okutmak"}, resp.Results[1].Analyses[0].Lemmas)

		require.Len(t, resp.Results[2].Analyses, 1)
		assert.True(t, resp.Results[2].Analyses[0].Unknown)
	})

	t.Run("stable etag and client request id", func(t *testing.T) {
		id := uuid.NewString()
		first := post(h, `{"words":["kitaba"]}`, RequestIDHeader, id)
		second := post(h, `{"words":["kitaba"]}`)
		assert.Equal(t, id, first.Header().Get(RequestIDHeader))
		assert.NotEqual(t, id, second.Header().Get(RequestIDHeader))
		assert.Equal(t, first.Header().Get("ETag"), second.Header().Get("ETag"))
	})

	t.Run("ends with filter", func(t *testing.T) {
		w := post(h, `{"words":["kitaplarda","kitaba","xyz"],"ends_with":["Loc"]}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 3)
		require.Len(t, resp.Results[0].Analyses, 1)
		assert.Equal(t, "[kitap:Noun] kitap:Noun+lar:A3pl+da:Loc", resp.Results[0].Analyses[0].Analysis)
		assert.Empty(t, resp.Results[1].Analyses)
		require.Len(t, resp.Results[2].Analyses, 1)
		assert.True(t, resp.Results[2].Analyses[0].Unknown)

		w = post(h, `{"words":["okut"],"ends_with":["Imp","A2sg"]}`)
		require.Equal(t, http.StatusOK, w.Code)
		var imperative AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &imperative))
		require.Len(t, imperative.Results, 1)
		assert.Len(t, imperative.Results[0].Analyses, 1)

		w = post(h, `{"words":["kitaba"],"ends_with":["Locative"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Locative")
	})

	t.Run("rejects bad requests", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, post(h, `{"words":`).Code)
		assert.Equal(t, http.StatusBadRequest, post(h, `{"words":[]}`).Code)
		assert.Equal(t, http.StatusRequestEntityTooLarge, post(h, `{"words":["`+strings.Repeat("a", maxBodyBytes)+`"]}`).Code)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analyze", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("cors", func(t *testing.T) {
		w := post(h, `{"words":["kitap"]}`, "Origin", "https://example.org")
		assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
		w = post(h, `{"words":["kitap"]}`, "Origin", "https://other.org")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "morph_analyze_requests_total")
		assert.Contains(t, w.Body.String(), "morph_surface_cache_lookups_total")
	})
}
