package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"match-service/internal/config"
	matchHnd "match-service/internal/match/handler"
	"match-service/internal/match/service"
	"match-service/internal/middleware"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, eng *service.Engine) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", matchHnd.Health)

	r.Post("/match", matchHnd.Match(cfg, logger, eng))
	r.Post("/match/batch", matchHnd.MatchBatch(cfg, logger, eng))

	return r
}
