package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                      sync.Mutex
	bookingsCreated         int
	paymentsInitiated       int
	paymentsSettled         int
	paymentsFailed          int
	scoreUploads            int
	scoreValidationFailures int
	joinRequests            int
	notifSent               int
	notifFailed             int
	confirmDurations        []float64
	startupTime             float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		confirmDurations: make([]float64, 0),
	}
}

func (m *Mock) IncBookingCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookingsCreated++
}

func (m *Mock) IncPaymentInitiated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paymentsInitiated++
}

func (m *Mock) IncPaymentSettled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paymentsSettled++
}

func (m *Mock) IncPaymentFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paymentsFailed++
}

func (m *Mock) IncScoreUpload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreUploads++
}

func (m *Mock) IncScoreValidationFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreValidationFailures++
}

func (m *Mock) IncJoinRequest() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.joinRequests++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) ObserveConfirmDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmDurations = append(m.confirmDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// BookingsCreated returns the number of times IncBookingCreated was called.
func (m *Mock) BookingsCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookingsCreated
}

// PaymentsInitiated returns the number of times IncPaymentInitiated was called.
func (m *Mock) PaymentsInitiated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paymentsInitiated
}

// PaymentsSettled returns the number of times IncPaymentSettled was called.
func (m *Mock) PaymentsSettled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paymentsSettled
}

// PaymentsFailed returns the number of times IncPaymentFailed was called.
func (m *Mock) PaymentsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paymentsFailed
}

// ScoreUploads returns the number of times IncScoreUpload was called.
func (m *Mock) ScoreUploads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreUploads
}

// ScoreValidationFailures returns the number of times IncScoreValidationFailure was called.
func (m *Mock) ScoreValidationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreValidationFailures
}

// JoinRequests returns the number of times IncJoinRequest was called.
func (m *Mock) JoinRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.joinRequests
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
