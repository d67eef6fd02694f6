package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "justicia"

// Registry holds every collector exposed at /metrics.
var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	chatRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Chatbot requests by whether a user was attached.",
	}, []string{"authenticated"})

	generationFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_failures_total",
		Help:      "Failed calls to the text generation service.",
	}, []string{"operation"})

	generationDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Latency of text generation calls.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"operation"})

	recommendationFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendation_failures_total",
		Help:      "Recommendation producers that degraded to an empty result.",
	}, []string{"producer"})

	bookingsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_bookings_total",
		Help:      "Appointment booking attempts by outcome.",
	}, []string{"outcome"})

	remindersSentTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_reminders_sent_total",
		Help:      "Reminder notifications created by the worker.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// IncChatRequest counts a chatbot request.
func IncChatRequest(authenticated bool) {
	chatRequestsTotal.WithLabelValues(strconv.FormatBool(authenticated)).Inc()
}

// ObserveGeneration records latency and, when err is non-nil, a failure for the operation.
func ObserveGeneration(operation string, elapsed time.Duration, err error) {
	generationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		generationFailuresTotal.WithLabelValues(operation).Inc()
	}
}

// IncRecommendationFailure counts a degraded recommendation producer.
func IncRecommendationFailure(producer string) {
	recommendationFailuresTotal.WithLabelValues(producer).Inc()
}

// IncBooking counts a booking attempt outcome (created, slot_taken, unavailable, not_found, error).
func IncBooking(outcome string) {
	bookingsTotal.WithLabelValues(outcome).Inc()
}

// AddRemindersSent counts reminder notifications.
func AddRemindersSent(n int) {
	if n <= 0 {
		return
	}
	remindersSentTotal.Add(float64(n))
}

// RegisterDBStats exposes pool statistics for db under name. Registering the
// same name twice is a no-op.
func RegisterDBStats(db *sql.DB, name string) error {
	err := Registry.Register(collectors.NewDBStatsCollector(db, name))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
