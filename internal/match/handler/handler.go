package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"match-service/internal/config"
	"match-service/internal/fileio"
	"match-service/internal/match/model"
	"match-service/internal/match/service"
)

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Match handles POST /match: a single query against the canonical set.
func Match(cfg config.Config, logger zerolog.Logger, eng *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)
		defer r.Body.Close()

		var req model.MatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		topN := req.TopN
		if topN == 0 {
			topN = cfg.DefaultTopN
		}

		res, err := eng.Match(req.Query, topN)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		roundResult(&res)
		writeJSON(w, http.StatusOK, res)

		conf := 0.0
		if res.TopMatch != nil {
			conf = res.TopMatch.Confidence
		}
		log.Info().
			Str("query", res.Query).
			Float64("confidence", conf).
			Dur("elapsed", time.Since(start)).
			Msg("match done")
	}
}

// MatchBatch handles POST /match/batch: a multipart file upload with a
// "names" column, matched row by row.
func MatchBatch(cfg config.Config, logger zerolog.Logger, eng *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		names, err := fileio.ReadNames(file, header.Filename)
		if err != nil {
			log.Warn().Str("filename", header.Filename).Err(err).Msg("rejected upload")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		items := eng.MatchBatch(names)
		roundItems(items)
		writeJSON(w, http.StatusOK, items)

		log.Info().
			Str("filename", header.Filename).
			Int("names", len(names)).
			Dur("elapsed", time.Since(start)).
			Msg("batch done")
	}
}
