package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Board counters, exposed on /-/metrics.
var (
	QuotesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quoteboard",
		Name:      "quotes_served_total",
		Help:      "Quotes returned to clients, by endpoint.",
	}, []string{"endpoint"})

	QuotesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quoteboard",
		Name:      "quotes_added_total",
		Help:      "Quotes created through the API.",
	})

	LinkEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quoteboard",
		Name:      "short_link_events_total",
		Help:      "Short link operations, by event (created, redirected, deleted, missed).",
	}, []string{"event"})
)
