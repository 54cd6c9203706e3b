package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	botCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total number of bot commands received labeled by command and status",
		},
		[]string{"command", "status"},
	)
	commandDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "command_duration_seconds",
			Help:    "Duration of bot commands in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
	callbackActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callback_actions_total",
			Help: "Total number of settings menu button presses labeled by verb and status",
		},
		[]string{"verb", "status"},
	)
	azkarSendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azkar_sends_total",
			Help: "Total number of reminder deliveries labeled by category and status",
		},
		[]string{"category", "status"},
	)
	sweepDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sweep_duration_seconds",
			Help:    "Duration of one scheduler sweep across all registered groups",
			Buckets: prometheus.DefBuckets,
		},
	)
	providerFetchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_fetch_duration_seconds",
			Help:    "Duration of reminder content fetches labeled by category",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category"},
	)
	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors split by type and severity",
		},
		[]string{"type", "severity"},
	)
	registeredGroups = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registered_groups",
			Help: "Current number of groups with a settings record",
		},
	)
)

// RecordCommand increments command counters and records duration.
func RecordCommand(command, status string, duration time.Duration) {
	if command == "" {
		command = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	botCommandsTotal.WithLabelValues(command, status).Inc()
	commandDurationSeconds.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordCallbackAction tracks settings menu button presses.
func RecordCallbackAction(verb, status string) {
	if verb == "" {
		verb = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	callbackActionsTotal.WithLabelValues(verb, status).Inc()
}

// RecordSend tracks one reminder delivery attempt.
func RecordSend(category, status string) {
	if category == "" {
		category = "unknown"
	}
	if status == "" {
		status = "unknown"
	}

	azkarSendsTotal.WithLabelValues(category, status).Inc()
}

// ObserveSweep records the duration of one scheduler sweep.
func ObserveSweep(duration time.Duration) {
	sweepDurationSeconds.Observe(duration.Seconds())
}

// ObserveProviderFetch records the duration of one content fetch.
func ObserveProviderFetch(category string, duration time.Duration) {
	if category == "" {
		category = "unknown"
	}

	providerFetchDurationSeconds.WithLabelValues(category).Observe(duration.Seconds())
}

// RecordError increments error counters with metadata.
func RecordError(errType, severity string) {
	if errType == "" {
		errType = "unknown"
	}
	if severity == "" {
		severity = "unknown"
	}

	errorsTotal.WithLabelValues(errType, severity).Inc()
}

// SetRegisteredGroups updates the gauge for groups with a settings record.
func SetRegisteredGroups(count int) {
	registeredGroups.Set(float64(count))
}

// GroupLister is the slice of the settings store the collector needs.
type GroupLister interface {
	GroupIDs(ctx context.Context) ([]int64, error)
}

// GroupCollector periodically counts registered groups and emits the gauge.
type GroupCollector struct {
	store GroupLister
}

// NewGroupCollector builds a collector bound to the provided store.
func NewGroupCollector(store GroupLister) *GroupCollector {
	return &GroupCollector{store: store}
}

// Run polls the store every 30 seconds until ctx is cancelled.
func (c *GroupCollector) Run(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		if ids, err := c.store.GroupIDs(ctx); err == nil {
			SetRegisteredGroups(len(ids))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(30 * time.Second):
		}
	}
}
