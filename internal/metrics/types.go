package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	BookingsCreated         prometheus.Counter
	PaymentsInitiated       prometheus.Counter
	PaymentsSettled         prometheus.Counter
	PaymentsFailed          prometheus.Counter
	ScoreUploads            prometheus.Counter
	ScoreValidationFailures prometheus.Counter
	JoinRequests            prometheus.Counter
	NotifSent               prometheus.Counter
	NotifFailed             prometheus.Counter
	ConfirmDuration         prometheus.Histogram
	StartupTimeSeconds      prometheus.Gauge
}
