package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-service/internal/config"
	"match-service/internal/match/model"
	"match-service/internal/match/service"
)

var testCfg = config.Config{DefaultTopN: 3}

func newTestEngine(t *testing.T) *service.Engine {
	t.Helper()
	eng, err := service.NewEngine(
		[]string{"Büro AG", "Büro Offices Berlin GmbH & Co. KG", "Acme Corporation"},
		service.Weights{Tfidf: 0.4, Levenshtein: 0.4, TokenSet: 0.2},
	)
	require.NoError(t, err)
	return eng
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestMatchSingle(t *testing.T) {
	h := Match(testCfg, zerolog.Nop(), newTestEngine(t))

	req := httptest.NewRequest(http.MethodPost, "/match",
		strings.NewReader(`{"query": "Buro AG"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res model.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "Buro AG", res.Query)
	require.NotNil(t, res.TopMatch)
	assert.Equal(t, "Büro AG", res.TopMatch.Entity)
	assert.Greater(t, res.TopMatch.Confidence, 0.8)
	assert.Len(t, res.Alternatives, 2)
}

func TestMatchSingleTopN(t *testing.T) {
	h := Match(testCfg, zerolog.Nop(), newTestEngine(t))

	req := httptest.NewRequest(http.MethodPost, "/match",
		strings.NewReader(`{"query": "Buro AG", "top_n": 1}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res model.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Alternatives)
}

func TestMatchSingleErrors(t *testing.T) {
	h := Match(testCfg, zerolog.Nop(), newTestEngine(t))

	cases := []struct {
		name string
		body string
	}{
		{"empty query", `{"query": ""}`},
		{"blank query", `{"query": "   "}`},
		{"bad json", `{`},
		{"bad top_n", `{"query": "x", "top_n": -1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func assertRounded(t *testing.T, vals ...float64) {
	t.Helper()
	for _, v := range vals {
		assert.Equal(t, math.Round(v*10000)/10000, v, "value %v carries more than 4 decimals", v)
	}
}

func TestMatchResponseRounded(t *testing.T) {
	h := Match(testCfg, zerolog.Nop(), newTestEngine(t))

	req := httptest.NewRequest(http.MethodPost, "/match",
		strings.NewReader(`{"query": "Buro Offices Berlin"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res model.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.TopMatch)

	cands := append([]model.Candidate{*res.TopMatch}, res.Alternatives...)
	for _, c := range cands {
		assertRounded(t, c.Confidence, c.Scores.Tfidf, c.Scores.Levenshtein, c.Scores.TokenSet)
	}
}

func TestMatchBatchResponseRounded(t *testing.T) {
	h := MatchBatch(testCfg, zerolog.Nop(), newTestEngine(t))

	buf, ctype := multipartBody(t, "upload.csv", []byte("names\nBuro Offices Berlin\n"))
	req := httptest.NewRequest(http.MethodPost, "/match/batch", buf)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.BatchItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assertRounded(t, items[0].Confidence, items[0].Scores.Tfidf,
		items[0].Scores.Levenshtein, items[0].Scores.TokenSet)
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestMatchBatchCSV(t *testing.T) {
	h := MatchBatch(testCfg, zerolog.Nop(), newTestEngine(t))

	buf, ctype := multipartBody(t, "upload.csv", []byte("names\nBuro AG\nAcme Corp.\n"))
	req := httptest.NewRequest(http.MethodPost, "/match/batch", buf)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.BatchItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Match)
	assert.Equal(t, "Büro AG", *items[0].Match)
	require.NotNil(t, items[1].Match)
	assert.Equal(t, "Acme Corporation", *items[1].Match)
}

func TestMatchBatchJSON(t *testing.T) {
	h := MatchBatch(testCfg, zerolog.Nop(), newTestEngine(t))

	buf, ctype := multipartBody(t, "upload.json", []byte(`{"names": ["Buro AG", "Buro GmbH"]}`))
	req := httptest.NewRequest(http.MethodPost, "/match/batch", buf)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.BatchItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.NotNil(t, items[0].Match)
}

func TestMatchBatchUnsupportedFile(t *testing.T) {
	h := MatchBatch(testCfg, zerolog.Nop(), newTestEngine(t))

	buf, ctype := multipartBody(t, "upload.txt", []byte("irrelevant"))
	req := httptest.NewRequest(http.MethodPost, "/match/batch", buf)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestMatchBatchMissingFile(t *testing.T) {
	h := MatchBatch(testCfg, zerolog.Nop(), newTestEngine(t))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/match/batch", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
