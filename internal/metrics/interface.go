package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncBookingCreated()
	IncPaymentInitiated()
	IncPaymentSettled()
	IncPaymentFailed()
	IncScoreUpload()
	IncScoreValidationFailure()
	IncJoinRequest()
	IncNotifSent()
	IncNotifFailed()
	ObserveConfirmDuration(duration float64)
	SetStartupTime(duration float64)
}

// MetricsStore is a durable key/value counter store. Unlike the Prometheus
// registry it survives restarts, so it backs the long-lived usage counters.
type MetricsStore interface {
	Increment(key string)
	Get(key string) int
	GetAll() (map[string]int, error)
}
