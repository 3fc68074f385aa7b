package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	firebase "firebase.google.com/go/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/todoflow-labs/firebase-config/internal/config"
	"github.com/todoflow-labs/firebase-config/internal/dto"
	"github.com/todoflow-labs/firebase-config/internal/firebaseapp"
	"github.com/todoflow-labs/firebase-config/internal/handler"
	"github.com/todoflow-labs/firebase-config/internal/logging"
	"github.com/todoflow-labs/firebase-config/internal/metrics"
)

func Run() {
	if err := config.LoadDotenv(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dotenv files")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize logger and metrics
	logger := logging.New(cfg.LogLevel).With().Str("service", "firebase-config").Logger()
	metrics.Init(cfg.MetricsAddr)
	logger.Info().Msgf("metrics server listening on %s", cfg.MetricsAddr)

	// Firebase must be fully configured before anything is served.
	creds := firebaseapp.Credentials{Path: cfg.CredentialsPath, Base64: cfg.CredentialsBase64}
	fbApp, web, err := firebaseapp.Init(context.Background(), creds)
	metrics.ObserveLoad(metrics.SourceStartup, err)
	if err != nil {
		var incomplete *config.IncompleteError
		if errors.As(err, &incomplete) {
			logger.Fatal().Err(err).Strs("missing", incomplete.Missing).Msg("failed to initialize Firebase")
		}
		logger.Fatal().Err(err).Msg("failed to initialize Firebase")
	}
	logger.Info().
		Str("project_id", web.ProjectID).
		Str("credentials_source", creds.Source()).
		Msg("firebase app initialized")

	// NATS is optional
	if cfg.NATSURL != "" {
		nc, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to NATS")
		}
		defer nc.Drain()
		if _, err := handler.RespondFirebaseConfig(nc, cfg.ConfigSubject, &logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to subscribe to config subject")
		}
		logger.Info().Str("subject", cfg.ConfigSubject).Msg("firebase config responder started")
	}

	r := NewRouter(fbApp, &logger)

	logger.Info().Msgf("firebase-config listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server failed")
	}
}

// NewRouter builds the HTTP routes. fbApp may be nil, in which case /healthz
// reports the service as unavailable.
func NewRouter(fbApp *firebase.App, logger *logging.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(jsonContentType)

	// Routes
	r.Get(handler.InitJSONPath, handler.ServeFirebaseConfig(logger))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if fbApp == nil {
			writeError(w, http.StatusServiceUnavailable, "firebase app not initialized")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Error handlers
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
		logger.Warn().Str("path", r.URL.Path).Msg("404 not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		logger.Warn().Str("path", r.URL.Path).Msg("405 method not allowed")
	})

	return r
}

// Forces JSON Content-Type for all responses
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Writes a structured JSON error
func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msg})
}
