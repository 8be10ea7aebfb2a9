package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"match-service/internal/config"
	"match-service/internal/match/service"
	serverhttp "match-service/server/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger needs config; config errors go straight to stderr
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.SetupLogger(cfg)

	eng, err := service.NewEngine(cfg.Entities, service.Weights{
		Tfidf:       cfg.TfidfWeight,
		Levenshtein: cfg.LevenshteinWeight,
		TokenSet:    cfg.TokenSetWeight,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("engine init")
	}
	logger.Info().Int("entities", eng.Size()).Msg("engine ready")

	r := serverhttp.NewRouter(cfg, logger, eng)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
