package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wolfman30/meeting-scheduler/cmd/mainconfig"
	"github.com/wolfman30/meeting-scheduler/internal/app/bootstrap"
	appconfig "github.com/wolfman30/meeting-scheduler/internal/config"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

type lexHandler func(ctx context.Context, evt events.LexEvent) (events.LexResponse, error)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting meeting scheduler code hook",
		"env", cfg.Env,
		"availability", cfg.AvailabilityMode,
		"turn_log", cfg.TurnLogBackend,
	)

	handle, err := buildHandler(context.Background(), cfg, nil, logger)
	if err != nil {
		logger.Error("failed to build handler", "error", err)
		os.Exit(1)
	}
	lambda.Start(handle)
}

func buildHandler(ctx context.Context, cfg *appconfig.Config, reg prometheus.Registerer, logger *logging.Logger) (lexHandler, error) {
	h, err := bootstrap.BuildHandler(ctx, cfg, mainconfig.LoadAWSConfig, reg, logger)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, evt events.LexEvent) (events.LexResponse, error) {
		resp, err := h.Handle(ctx, evt)
		if err != nil {
			logger.Error("code hook failed", "user_id", evt.UserID, "error", err)
		}
		return resp, err
	}, nil
}
