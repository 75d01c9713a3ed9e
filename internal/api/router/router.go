package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/wolfman30/meeting-scheduler/internal/http/middleware"
	"github.com/wolfman30/meeting-scheduler/internal/scheduling"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// LexService decides one code-hook turn.
type LexService interface {
	Handle(ctx context.Context, evt events.LexEvent) (events.LexResponse, error)
}

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	Lex            LexService
	MetricsHandler http.Handler
}

// New creates the dev server router. POST /lex replays a Lex V1 code-hook
// event posted as JSON.
func New(cfg *Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpmiddleware.RequestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.Lex != nil {
		r.Post("/lex", lexEndpoint(cfg.Lex, logger))
	}
	return r
}

func lexEndpoint(svc LexService, logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var evt events.LexEvent
		if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lex event"})
			return
		}

		resp, err := svc.Handle(r.Context(), evt)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, scheduling.ErrUnknownIntent) {
				status = http.StatusUnprocessableEntity
			}
			logger.Warn("lex turn failed", "user_id", evt.UserID, "error", err)
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
