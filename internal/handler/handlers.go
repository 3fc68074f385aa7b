package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nats-io/nats.go"

	"github.com/todoflow-labs/firebase-config/internal/config"
	"github.com/todoflow-labs/firebase-config/internal/dto"
	"github.com/todoflow-labs/firebase-config/internal/logging"
	"github.com/todoflow-labs/firebase-config/internal/metrics"
)

// InitJSONPath mirrors the reserved path Firebase Hosting uses for the web config.
const InitJSONPath = "/__/firebase/init.json"

// loadFirebase loads the config and records the outcome. Missing variable
// names are logged here and never sent to clients.
func loadFirebase(source string, logger *logging.Logger) (config.FirebaseConfig, error) {
	cfg, err := config.LoadFirebase()
	metrics.ObserveLoad(source, err)
	if err != nil {
		var incomplete *config.IncompleteError
		if errors.As(err, &incomplete) {
			logger.Error().Strs("missing", incomplete.Missing).Str("source", source).Msg("firebase config incomplete")
		} else {
			logger.Error().Err(err).Str("source", source).Msg("firebase config load failed")
		}
	}
	return cfg, err
}

func ServeFirebaseConfig(logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug().Msg("handling firebase config request")

		cfg, err := loadFirebase(metrics.SourceHTTP, logger)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			logger.Error().Err(err).Msg("failed to write firebase config")
		}
	}
}

// RespondFirebaseConfig answers requests on subject with a dto.ConfigReply.
func RespondFirebaseConfig(nc *nats.Conn, subject string, logger *logging.Logger) (*nats.Subscription, error) {
	return nc.Subscribe(subject, func(msg *nats.Msg) {
		logger.Debug().Str("subject", msg.Subject).Msg("handling firebase config request")

		var reply dto.ConfigReply
		cfg, err := loadFirebase(metrics.SourceNATS, logger)
		if err != nil {
			reply.Error = err.Error()
		} else {
			reply.Config = &cfg
		}

		data, _ := json.Marshal(reply)
		if err := msg.Respond(data); err != nil {
			logger.Error().Err(err).Msg("failed to respond with firebase config")
		}
	})
}
