package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_bookings_created_total",
			Help: "The total number of bookings created on the backend.",
		}),
		PaymentsInitiated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_payments_initiated_total",
			Help: "The total number of payment attempts started.",
		}),
		PaymentsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_payments_settled_total",
			Help: "The total number of payments that settled successfully.",
		}),
		PaymentsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_payments_failed_total",
			Help: "The total number of payments rejected by the backend.",
		}),
		ScoreUploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_score_uploads_total",
			Help: "The total number of score sheets accepted for upload.",
		}),
		ScoreValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_score_validation_failures_total",
			Help: "The total number of score sheets rejected before upload.",
		}),
		JoinRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_join_requests_total",
			Help: "The total number of open-match join requests submitted.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		ConfirmDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtside_confirm_duration_seconds",
			Help:    "The duration of the booking confirm flow.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.BookingsCreated,
		s.PaymentsInitiated,
		s.PaymentsSettled,
		s.PaymentsFailed,
		s.ScoreUploads,
		s.ScoreValidationFailures,
		s.JoinRequests,
		s.NotifSent,
		s.NotifFailed,
		s.ConfirmDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncBookingCreated() {
	s.BookingsCreated.Inc()
}

func (s *Service) IncPaymentInitiated() {
	s.PaymentsInitiated.Inc()
}

func (s *Service) IncPaymentSettled() {
	s.PaymentsSettled.Inc()
}

func (s *Service) IncPaymentFailed() {
	s.PaymentsFailed.Inc()
}

func (s *Service) IncScoreUpload() {
	s.ScoreUploads.Inc()
}

func (s *Service) IncScoreValidationFailure() {
	s.ScoreValidationFailures.Inc()
}

func (s *Service) IncJoinRequest() {
	s.JoinRequests.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveConfirmDuration(duration float64) {
	s.ConfirmDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
