// Package server exposes the tokenizer as a JSON HTTP API.
//
// Endpoints:
//
//	GET  /api/classify?token=<token>
//	POST /api/tokenize   body: {"text":"...","format":"tagged"}
//	GET  /api/categories
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/az-ai-labs/ts-tokenizer/classify"
	"github.com/az-ai-labs/ts-tokenizer/tokenizer"
)

// MaxBodyBytes bounds the request body of /api/tokenize.
const MaxBodyBytes = 1 << 20

// ---- JSON types -----------------------------------------------------------

type classifyResponse struct {
	Tag classify.Category `json:"category"`
	classify.Result
}

type tokenizeRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

type tokenizeResponse struct {
	Format string             `json:"format"`
	Lines  [][]classify.Token `json:"lines"`
	Output string             `json:"output"`
}

type categoriesResponse struct {
	Categories []classify.Category `json:"categories"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// ---- handlers -------------------------------------------------------------

func handleClassify(t *tokenizer.Tokenizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		token := r.URL.Query().Get("token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "missing 'token' query parameter")
			return
		}
		if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
			writeError(w, http.StatusBadRequest, "'token' must not contain whitespace")
			return
		}
		res := t.Classify(token)
		writeJSON(w, http.StatusOK, classifyResponse{Tag: res.Tag(), Result: res})
	}
}

func handleTokenize(t *tokenizer.Tokenizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body tokenizeRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err := dec.Decode(&body); err != nil || strings.TrimSpace(body.Text) == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		format := tokenizer.Tokenized
		if body.Format != "" {
			f, err := tokenizer.ParseFormat(body.Format)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			format = f
		}

		lines := strings.Split(strings.TrimRight(body.Text, "\n"), "\n")
		resp := tokenizeResponse{Format: format.String(), Lines: make([][]classify.Token, 0, len(lines))}
		rendered := make([]string, 0, len(lines))
		for _, line := range lines {
			tokens := t.Line(strings.TrimSuffix(line, "\r"))
			if tokens == nil {
				tokens = []classify.Token{}
			}
			resp.Lines = append(resp.Lines, tokens)
			rendered = append(rendered, tokenizer.Render(tokens, format))
		}
		resp.Output = strings.Join(rendered, "\n")
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, categoriesResponse{Categories: classify.Categories()})
	}
}

// New returns the API handler. Responses carry permissive CORS headers.
func New(t *tokenizer.Tokenizer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/classify", handleClassify(t))
	mux.HandleFunc("/api/tokenize", handleTokenize(t))
	mux.HandleFunc("/api/categories", handleCategories())
	return cors.Default().Handler(logRequests(mux))
}
