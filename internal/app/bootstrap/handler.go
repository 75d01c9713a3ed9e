package bootstrap

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // Lambda runtimes ship without a zoneinfo database

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wolfman30/meeting-scheduler/internal/availability"
	appconfig "github.com/wolfman30/meeting-scheduler/internal/config"
	"github.com/wolfman30/meeting-scheduler/internal/lex"
	"github.com/wolfman30/meeting-scheduler/internal/observability/metrics"
	"github.com/wolfman30/meeting-scheduler/internal/prompts"
	"github.com/wolfman30/meeting-scheduler/internal/scheduling"
	"github.com/wolfman30/meeting-scheduler/pkg/logging"
)

// BuildScheduler wires the dialog core from config.
func BuildScheduler(cfg *appconfig.Config, observer scheduling.Observer, logger *logging.Logger) (*scheduling.Scheduler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load timezone %q: %w", cfg.Timezone, err)
	}
	window, err := parseWindow(cfg.BusinessOpen, cfg.BusinessClose)
	if err != nil {
		return nil, err
	}

	var gen availability.Generator
	switch cfg.AvailabilityMode {
	case "", appconfig.AvailabilityBusinessHours:
		gen = availability.NewBusinessHours(window)
	case appconfig.AvailabilityDemo:
		if cfg.DemoSeed != 0 {
			gen = availability.NewSeededDemo(cfg.DemoSeed)
		} else {
			gen = availability.NewDemo(nil)
		}
	default:
		return nil, fmt.Errorf("bootstrap: unknown availability mode %q", cfg.AvailabilityMode)
	}

	logger.Info("scheduler configured",
		"timezone", loc.String(),
		"open", window.Open.String(),
		"close", window.Close.String(),
		"availability", cfg.AvailabilityMode,
	)
	return scheduling.New(scheduling.Options{
		Generator: gen,
		Window:    window,
		Location:  loc,
		Logger:    logger.Component("scheduling"),
		Observer:  observer,
	}), nil
}

// BuildHandler wires the Lex handler with its side channels. reg receives the
// dialog metrics; nil uses the default registry.
func BuildHandler(ctx context.Context, cfg *appconfig.Config, loadAWS AWSLoader, reg prometheus.Registerer, logger *logging.Logger) (*lex.Handler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := metrics.NewDialogMetrics(reg)
	sched, err := BuildScheduler(cfg, m, logger)
	if err != nil {
		return nil, err
	}
	recorder, err := BuildTurnRecorder(ctx, cfg, loadAWS, logger)
	if err != nil {
		return nil, err
	}
	publisher, err := BuildBookingPublisher(ctx, cfg, loadAWS, logger)
	if err != nil {
		return nil, err
	}

	opts := lex.Options{
		Catalog:  prompts.MustCatalog(),
		Recorder: recorder,
		Metrics:  m,
		Logger:   logger.Component("lex"),
	}
	if publisher != nil {
		opts.Publisher = publisher
	}
	return lex.NewHandler(sched, opts), nil
}

func parseWindow(openRaw, closeRaw string) (availability.Window, error) {
	o, err := availability.ParseTimeOfDay(openRaw)
	if err != nil {
		return availability.Window{}, fmt.Errorf("bootstrap: BUSINESS_OPEN: %w", err)
	}
	c, err := availability.ParseTimeOfDay(closeRaw)
	if err != nil {
		return availability.Window{}, fmt.Errorf("bootstrap: BUSINESS_CLOSE: %w", err)
	}
	if c <= o {
		return availability.Window{}, fmt.Errorf("bootstrap: business window %s-%s is empty", openRaw, closeRaw)
	}
	return availability.Window{Open: o, Close: c}, nil
}
