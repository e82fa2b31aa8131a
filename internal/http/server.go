package http

import (
	"net/http"

	"github.com/auspicious-soft/courtside/internal/backend"
	"github.com/auspicious-soft/courtside/internal/catalog"
	"github.com/auspicious-soft/courtside/internal/config"
	"github.com/auspicious-soft/courtside/internal/discovery"
	"github.com/auspicious-soft/courtside/internal/flows"
	"github.com/auspicious-soft/courtside/internal/metrics"
	"github.com/auspicious-soft/courtside/internal/notifier"
	"github.com/auspicious-soft/courtside/internal/pubsub"
	"github.com/auspicious-soft/courtside/internal/session"
)

func NewServer(sessions session.SessionStore, catalogStore catalog.CatalogStore, backendClient backend.BookingAPI, discoveryClient discovery.DiscoveryClient, bookingFlows *flows.Flows, notifier notifier.Notifier, metricsSvc metrics.Metrics, counters metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Sessions:       sessions,
		Catalog:        catalogStore,
		Backend:        backendClient,
		Discovery:      discoveryClient,
		Flows:          bookingFlows,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		Counters:       counters,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoresHandler(), paramsMiddleware))
	s.Router.Handle("/venues", Chain(s.ListVenuesHandler(), paramsMiddleware))
	s.Router.Handle("/venues/refresh", Chain(s.RefreshVenuesHandler(), paramsMiddleware))
	s.Router.Handle("/availability", Chain(s.AvailabilityHandler(), paramsMiddleware))
	s.Router.Handle("/discover", Chain(s.DiscoverMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/session/start", Chain(s.StartSessionHandler(), paramsMiddleware))
	s.Router.Handle("/session/get", Chain(s.GetSessionHandler(), paramsMiddleware))
	s.Router.Handle("/session/seat/assign", Chain(s.AssignSeatHandler(), paramsMiddleware))
	s.Router.Handle("/session/seat/clear", Chain(s.ClearSeatHandler(), paramsMiddleware))
	s.Router.Handle("/session/equipment", Chain(s.SetEquipmentHandler(), paramsMiddleware))
	s.Router.Handle("/session/payment-method", Chain(s.SetPaymentMethodHandler(), paramsMiddleware))
	s.Router.Handle("/session/confirm", Chain(s.ConfirmBookingHandler(), paramsMiddleware))
	s.Router.Handle("/session/payment/complete", Chain(s.CompletePaymentHandler(), paramsMiddleware))
	s.Router.Handle("/session/payment/abandon", Chain(s.AbandonPaymentHandler(), paramsMiddleware))
	s.Router.Handle("/session/cancel", Chain(s.CancelSessionHandler(), paramsMiddleware))
	s.Router.Handle("/join", Chain(s.JoinMatchHandler(), paramsMiddleware))
	s.Router.Handle("/bookings", Chain(s.ListBookingsHandler(), paramsMiddleware))
	s.Router.Handle("/score/upload", Chain(s.UploadScoreHandler(), paramsMiddleware))
	s.Router.Handle("/notify-spot-filled", Chain(s.NotifySpotFilledHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
