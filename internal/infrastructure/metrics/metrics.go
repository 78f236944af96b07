package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "studyquest"

// Metrics groups the collectors the service exports on /metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	llmRequests  *prometheus.CounterVec
	battlesEnded *prometheus.CounterVec
	xpAwarded    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of response latency (seconds) for HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		llmRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "llm_requests_total",
				Help:      "Language-model calls by kind and outcome (ok, fallback)",
			},
			[]string{"kind", "outcome"},
		),
		battlesEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "boss_battles_ended_total",
				Help:      "Boss battles ended, by terminal status",
			},
			[]string{"status"},
		),
		xpAwarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "xp_awarded_total",
				Help:      "XP credited to users, by source",
			},
			[]string{"source"},
		),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.llmRequests, m.battlesEnded, m.xpAwarded)
	return m
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) LLMRequest(kind, outcome string) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) BattleEnded(status string) {
	if m == nil {
		return
	}
	m.battlesEnded.WithLabelValues(status).Inc()
}

func (m *Metrics) XPAwarded(source string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.xpAwarded.WithLabelValues(source).Add(float64(amount))
}
