// Package server exposes the analyzer over HTTP: upload a document,
// get the compliance report back as JSON.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/tezlab/tezdenetim/internal/config"
	ownmiddleware "github.com/tezlab/tezdenetim/internal/server/middleware"
)

// WebAPI is the HTTP surface of the analyzer.
type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

// Config configures the HTTP surface.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Rules           config.Rules
}

// NewWebAPI assembles the router and handlers.
func NewWebAPI(logger zerolog.Logger, cfg Config) *WebAPI {
	handler := newCheckHandler(cfg.Rules, logger)

	router := chi.NewRouter()
	router.Use(ownmiddleware.Logger(&logger))
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/check", handler.Check)
		r.Get("/rules", handler.Rules)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
	}
}

// Start serves until an error or a termination signal, then shuts
// down gracefully.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
