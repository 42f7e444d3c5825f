package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourgo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_bookings_total",
			Help: "Total number of bookings created",
		},
		[]string{"hotel_category"},
	)

	BookingStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_booking_status_changes_total",
			Help: "Total number of booking status transitions",
		},
		[]string{"from", "to"},
	)

	CoinsSpentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_coins_spent_total",
			Help: "Total coins debited from tourist balances",
		},
		[]string{"transaction_type"},
	)

	BookingsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_bookings_rejected_total",
			Help: "Total number of booking attempts rejected",
		},
		[]string{"reason"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tourgo_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourgo_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"path"},
	)

	SSESubscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourgo_sse_subscribers",
			Help: "Number of connected realtime feed subscribers",
		},
		[]string{"feed"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(hotelCategory string) {
	BookingsTotal.WithLabelValues(hotelCategory).Inc()
}

func RecordBookingStatusChange(from, to string) {
	BookingStatusChangesTotal.WithLabelValues(from, to).Inc()
}

func RecordCoinsSpent(txType string, amount int64) {
	CoinsSpentTotal.WithLabelValues(txType).Add(float64(amount))
}

func RecordBookingRejected(reason string) {
	BookingsRejectedTotal.WithLabelValues(reason).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordRateLimited(path string) {
	RateLimitedTotal.WithLabelValues(path).Inc()
}
