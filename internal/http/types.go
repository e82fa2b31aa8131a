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

// Server holds the dependencies for the HTTP server.
type Server struct {
	Sessions       session.SessionStore
	Catalog        catalog.CatalogStore
	Backend        backend.BookingAPI
	Discovery      discovery.DiscoveryClient
	Flows          *flows.Flows
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	Counters       metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
