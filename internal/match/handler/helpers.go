package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"match-service/internal/match/model"
)

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
		return logger.With().Str("req_id", reqID).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func roundCandidate(c *model.Candidate) {
	c.Confidence = round4(c.Confidence)
	c.Scores.Tfidf = round4(c.Scores.Tfidf)
	c.Scores.Levenshtein = round4(c.Scores.Levenshtein)
	c.Scores.TokenSet = round4(c.Scores.TokenSet)
}

func roundResult(res *model.MatchResult) {
	if res.TopMatch != nil {
		roundCandidate(res.TopMatch)
	}
	for i := range res.Alternatives {
		roundCandidate(&res.Alternatives[i])
	}
}

func roundItems(items []model.BatchItem) {
	for i := range items {
		items[i].Confidence = round4(items[i].Confidence)
		items[i].Scores.Tfidf = round4(items[i].Scores.Tfidf)
		items[i].Scores.Levenshtein = round4(items[i].Scores.Levenshtein)
		items[i].Scores.TokenSet = round4(items[i].Scores.TokenSet)
	}
}
