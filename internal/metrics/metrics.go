package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// Metrics owns the service collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	donationsCreated    *prometheus.CounterVec
	donationTransitions *prometheus.CounterVec
	couponsIssued       prometheus.Counter
	redeemRejected      *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	overdueDonations    prometheus.Gauge
	requestDuration     *prometheus.HistogramVec
}

// New registers FoodBridge collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		donationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_donations_created_total",
			Help: "Donations recorded by type",
		}, []string{"type"}),
		donationTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_donation_transitions_total",
			Help: "Food donation status transitions",
		}, []string{"transition"}),
		couponsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "foodbridge_coupons_issued_total",
			Help: "Restaurant coupons issued",
		}),
		redeemRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_redeem_rejected_total",
			Help: "Rejected coupon redemptions by reason",
		}, []string{"reason"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foodbridge_notifications_total",
			Help: "Notification deliveries by result",
		}, []string{"result"}),
		overdueDonations: factory.NewGauge(prometheus.GaugeOpts{
			Name: "foodbridge_overdue_donations",
			Help: "Accepted donations past their expected completion date",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foodbridge_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) DonationCreated(kind model.DonationType) {
	m.donationsCreated.WithLabelValues(label(string(kind))).Inc()
}

func (m *Metrics) DonationTransition(to model.DonationStatus) {
	m.donationTransitions.WithLabelValues(label(string(to))).Inc()
}

func (m *Metrics) CouponIssued() { m.couponsIssued.Inc() }

func (m *Metrics) RedeemRejected(reason string) {
	m.redeemRejected.WithLabelValues(label(reason)).Inc()
}

// NotificationSent counts a delivery attempt outcome: sent, failed or dropped.
func (m *Metrics) NotificationSent(result string) {
	m.notifications.WithLabelValues(label(result)).Inc()
}

// SetOverdue publishes the number of overdue pickups found by the last sweep.
func (m *Metrics) SetOverdue(count int) {
	if count < 0 {
		count = 0
	}
	m.overdueDonations.Set(float64(count))
}

// ObserveRequest records HTTP latency. Unmatched routes share one label.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

func label(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "unknown"
	}
	return v
}
