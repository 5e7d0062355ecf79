package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "fleetworks"
	subsystem = "factory"
)

// Registry is the global Prometheus registry, nil when metrics are disabled
var Registry *prometheus.Registry

// FactoryRecorder records construction pipeline events
type FactoryRecorder interface {
	RecordBuildStarted(playerID int, durationMinutes int)
	RecordBuildCompleted(playerID int, templateID int)
	RecordBuildSkipped(playerID int, itemConsumed bool)
}

var globalRecorder FactoryRecorder

// InitRegistry initializes the Prometheus registry.
// Should be called once at startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalRecorder installs the recorder used by the package-level helpers
func SetGlobalRecorder(r FactoryRecorder) {
	globalRecorder = r
}

// RecordBuildStarted records a started construction globally
func RecordBuildStarted(playerID int, durationMinutes int) {
	if globalRecorder != nil {
		globalRecorder.RecordBuildStarted(playerID, durationMinutes)
	}
}

// RecordBuildCompleted records a collected construction globally
func RecordBuildCompleted(playerID int, templateID int) {
	if globalRecorder != nil {
		globalRecorder.RecordBuildCompleted(playerID, templateID)
	}
}

// RecordBuildSkipped records an instant completion globally
func RecordBuildSkipped(playerID int, itemConsumed bool) {
	if globalRecorder != nil {
		globalRecorder.RecordBuildSkipped(playerID, itemConsumed)
	}
}

// PrometheusFactoryCollector implements FactoryRecorder on Prometheus counters
type PrometheusFactoryCollector struct {
	buildsStarted   *prometheus.CounterVec
	buildsCompleted *prometheus.CounterVec
	buildsSkipped   *prometheus.CounterVec
	buildDuration   prometheus.Histogram
}

// NewPrometheusFactoryCollector creates and registers the factory collectors
func NewPrometheusFactoryCollector(registry *prometheus.Registry) *PrometheusFactoryCollector {
	c := &PrometheusFactoryCollector{
		buildsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "builds_started_total",
			Help:      "Constructions started, by player",
		}, []string{"player_id"}),
		buildsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "builds_completed_total",
			Help:      "Constructions collected, by player and template",
		}, []string{"player_id", "template_id"}),
		buildsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "builds_skipped_total",
			Help:      "Instant completions, split by free window and item use",
		}, []string{"player_id", "variant"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "build_duration_minutes",
			Help:      "Scheduled construction durations in minutes",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 240, 480},
		}),
	}

	registry.MustRegister(c.buildsStarted, c.buildsCompleted, c.buildsSkipped, c.buildDuration)
	return c
}

// RecordBuildStarted increments the started counter and observes the duration
func (c *PrometheusFactoryCollector) RecordBuildStarted(playerID int, durationMinutes int) {
	c.buildsStarted.WithLabelValues(strconv.Itoa(playerID)).Inc()
	c.buildDuration.Observe(float64(durationMinutes))
}

// RecordBuildCompleted increments the completed counter
func (c *PrometheusFactoryCollector) RecordBuildCompleted(playerID int, templateID int) {
	c.buildsCompleted.WithLabelValues(strconv.Itoa(playerID), strconv.Itoa(templateID)).Inc()
}

// RecordBuildSkipped increments the skipped counter
func (c *PrometheusFactoryCollector) RecordBuildSkipped(playerID int, itemConsumed bool) {
	variant := "free"
	if itemConsumed {
		variant = "item"
	}
	c.buildsSkipped.WithLabelValues(strconv.Itoa(playerID), variant).Inc()
}
