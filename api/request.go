package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"turkmorph.org/core/analysis"
	"turkmorph.org/core/morphotactics"
	"turkmorph.org/core/utils"
)

const (
	maxBodyBytes = 1 << 20
	maxWords     = 10000
)

// AnalyzeRequest lists the words to analyze. EndsWith optionally names morpheme
// ids such as "Loc" or "Imp", "A2sg"; only analyses ending with them are returned.
type AnalyzeRequest struct {
	Words    []string `json:"words"`
	EndsWith []string `json:"ends_with,omitempty"`
}

type AnalysisResult struct {
	Analysis string   `json:"analysis"`
	Stems    []string `json:"stems"`
	Lemmas   []string `json:"lemmas"`
	Unknown  bool     `json:"unknown,omitempty"`
}

type WordResult struct {
	Word     string           `json:"word"`
	Analyses []AnalysisResult `json:"analyses"`
}

type AnalyzeResponse struct {
	RequestID string       `json:"request_id"`
	Results   []WordResult `json:"results"`
}

// Request serves word analysis. Morphology is called once per request, so the
// caller may swap the underlying instance between requests.
type Request struct {
	Morphology func() *analysis.Morphology
	Logger     *zerolog.Logger
}

func (req *Request) logger() zerolog.Logger {
	if req.Logger != nil {
		return *req.Logger
	}
	return defaultLogger
}

func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := requestID(r)
	w.Header().Set(RequestIDHeader, id)
	logger := makeRequestLogger(req.logger(), r, id)

	if r.Method != http.MethodPost {
		logger.Err(nil).Int("status", http.StatusMethodNotAllowed).Msg("Only 'POST' method is allowed here")
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}

	msg, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not read request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}
	if len(msg) > maxBodyBytes {
		logger.Err(nil).Int("status", http.StatusRequestEntityTooLarge).Msg("Request body too large")
		http.Error(w, "", http.StatusRequestEntityTooLarge)
		return
	}

	var body AnalyzeRequest
	if err := json.Unmarshal(msg, &body); err != nil {
		logger.Err(err).Int("status", http.StatusBadRequest).Msg("Could not parse request body")
		http.Error(w, "", http.StatusBadRequest)
		return
	}
	if len(body.Words) == 0 || len(body.Words) > maxWords {
		logger.Err(nil).Int("status", http.StatusBadRequest).Int("words", len(body.Words)).Msg("Word count out of range")
		http.Error(w, fmt.Sprintf("expected 1 to %d words", maxWords), http.StatusBadRequest)
		return
	}

	morphology := req.Morphology()
	var endsWith []*morphotactics.Morpheme
	if len(body.EndsWith) > 0 {
		endsWith, err = morphology.Morphotactics().Registry().GetAll(body.EndsWith...)
		if err != nil {
			logger.Err(err).Int("status", http.StatusBadRequest).Msg("Unknown morpheme in request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	logger.Info().Int("words", len(body.Words)).Msg("Starting analysis for request from API")
	results, err := morphology.AnalyzeAll(r.Context(), body.Words)
	if err != nil {
		logger.Err(err).Int("status", http.StatusServiceUnavailable).Msg("Analysis was interrupted")
		http.Error(w, "", http.StatusServiceUnavailable)
		return
	}

	resp := AnalyzeResponse{
		RequestID: id,
		Results:   make([]WordResult, len(body.Words)),
	}
	var keys []string
	for i, word := range body.Words {
		analyses := results[i]
		if len(analyses) == 0 {
			analyses = []*analysis.SingleAnalysis{analysis.UnknownAnalysis(word)}
		} else if len(endsWith) > 0 {
			analyses = filterEndsWith(analyses, endsWith)
		}
		resp.Results[i] = WordResult{Word: word, Analyses: make([]AnalysisResult, len(analyses))}
		for j, a := range analyses {
			formatted := a.FormatLong()
			resp.Results[i].Analyses[j] = AnalysisResult{
				Analysis: formatted,
				Stems:    a.Stems(),
				Lemmas:   a.Lemmas(),
				Unknown:  a.IsUnknown(),
			}
			keys = append(keys, word, formatted)
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logger.Err(err).Int("status", http.StatusInternalServerError).Msg("Could not encode response")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	// same words and analyses give the same tag regardless of request id
	w.Header().Set("ETag", fmt.Sprintf(`"%x"`, utils.HashStrings(keys...)))
	_, _ = w.Write(data)
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

// filterEndsWith returns a new slice; cached analysis slices are shared.
func filterEndsWith(analyses []*analysis.SingleAnalysis, morphemes []*morphotactics.Morpheme) []*analysis.SingleAnalysis {
	kept := make([]*analysis.SingleAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if a.EndsWith(morphemes...) {
			kept = append(kept, a)
		}
	}
	return kept
}
