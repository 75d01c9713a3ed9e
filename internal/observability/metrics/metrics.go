package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// DialogMetrics exposes counters/histograms for scheduling turns.
type DialogMetrics struct {
	turnsTotal          *prometheus.CounterVec
	turnLatency         *prometheus.HistogramVec
	validationFailures  *prometheus.CounterVec
	ledgerSeeded        prometheus.Counter
	bookingsTotal       *prometheus.CounterVec
	missingLedgerEntry  prometheus.Counter
	sideChannelFailures *prometheus.CounterVec
}

func NewDialogMetrics(reg prometheus.Registerer) *DialogMetrics {
	m := &DialogMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meetings",
			Subsystem: "dialog",
			Name:      "turns_total",
			Help:      "Total code hook turns by invocation source and resulting dialog action",
		}, []string{"source", "directive", "rule"}),
		turnLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meetings",
			Subsystem: "dialog",
			Name:      "turn_latency_seconds",
			Help:      "Latency of code hook turn processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meetings",
			Subsystem: "dialog",
			Name:      "validation_failures_total",
			Help:      "Slot values rejected by validation",
		}, []string{"slot"}),
		ledgerSeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "meetings",
			Subsystem: "ledger",
			Name:      "seeded_total",
			Help:      "Dates seeded into a session ledger from the availability generator",
		}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meetings",
			Subsystem: "ledger",
			Name:      "bookings_total",
			Help:      "Bookings committed by meeting type and intervals consumed",
		}, []string{"meeting_type", "intervals"}),
		missingLedgerEntry: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "meetings",
			Subsystem: "ledger",
			Name:      "missing_entry_total",
			Help:      "Fulfillments for dates the session ledger never saw",
		}),
		sideChannelFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meetings",
			Subsystem: "dialog",
			Name:      "side_channel_failures_total",
			Help:      "Turn log and booking event failures that did not fail the turn",
		}, []string{"channel"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.turnsTotal,
		m.turnLatency,
		m.validationFailures,
		m.ledgerSeeded,
		m.bookingsTotal,
		m.missingLedgerEntry,
		m.sideChannelFailures,
	)
	return m
}

func (m *DialogMetrics) ObserveTurn(source, directive, rule string, seconds float64) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(source, directive, rule).Inc()
	m.turnLatency.WithLabelValues(source).Observe(seconds)
}

func (m *DialogMetrics) ObserveValidationFailure(slot string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(slot).Inc()
}

func (m *DialogMetrics) ObserveLedgerSeeded() {
	if m == nil {
		return
	}
	m.ledgerSeeded.Inc()
}

func (m *DialogMetrics) ObserveBooking(meetingType string, intervals int) {
	if m == nil {
		return
	}
	if meetingType == "" {
		meetingType = "unknown"
	}
	m.bookingsTotal.WithLabelValues(meetingType, strconv.Itoa(intervals)).Inc()
}

func (m *DialogMetrics) ObserveMissingLedgerEntry() {
	if m == nil {
		return
	}
	m.missingLedgerEntry.Inc()
}

func (m *DialogMetrics) ObserveSideChannelFailure(channel string) {
	if m == nil {
		return
	}
	m.sideChannelFailures.WithLabelValues(channel).Inc()
}
