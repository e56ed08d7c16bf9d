package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_map_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "community_map_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"method", "route"})
	IncidentsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_map_incidents_created_total",
		Help: "Total incidents created by category",
	}, []string{"category"})
	IncidentClusterSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "community_map_incident_cluster_size",
		Help:    "Cluster count assigned to new incidents",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
	ReactionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_map_reactions_total",
		Help: "Total reactions by kind",
	}, []string{"reaction"})
	SweptRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_map_swept_records_total",
		Help: "Records removed by the retention sweep",
	}, []string{"resource"})
	GeocodeRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "community_map_geocode_requests_total",
		Help: "Total geocoding provider requests",
	})
	GeocodeFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "community_map_geocode_fail_total",
		Help: "Total geocoding provider failures",
	})
	GeocodeCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "community_map_geocode_cache_hits_total",
		Help: "Total geocode cache hits",
	})
	GeocodeDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "community_map_geocode_duration_ms",
		Help:    "Geocoding provider call duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	})
	WebhookDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "community_map_webhook_deliveries_total",
		Help: "Webhook delivery attempts by outcome",
	}, []string{"outcome"})
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "community_map_active_sessions",
		Help: "Sessions with a heartbeat inside the presence window",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(IncidentsCreatedTotal)
	prometheus.MustRegister(IncidentClusterSize)
	prometheus.MustRegister(ReactionsTotal)
	prometheus.MustRegister(SweptRecordsTotal)
	prometheus.MustRegister(GeocodeRequestsTotal)
	prometheus.MustRegister(GeocodeFailTotal)
	prometheus.MustRegister(GeocodeCacheHitsTotal)
	prometheus.MustRegister(GeocodeDurationMs)
	prometheus.MustRegister(WebhookDeliveriesTotal)
	prometheus.MustRegister(ActiveSessions)
}

func Handler() http.Handler { return promhttp.Handler() }
