// Package metrics provides Prometheus instrumentation for the whitelist
// client: wallet connection attempts, registry reads, and the join
// transaction lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the whitelist client. All
// recording methods are safe to call on a nil receiver, so instrumentation
// stays optional for callers.
type Metrics struct {
	ConnectAttempts      prometheus.Counter
	WrongNetwork         prometheus.Counter
	RegistryReads        *prometheus.CounterVec
	RegistryReadFailures *prometheus.CounterVec
	JoinSubmitted        prometheus.Counter
	JoinConfirmed        prometheus.Counter
	JoinFailed           prometheus.Counter
	WhitelistedCount     prometheus.Gauge
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics and registers them on reg. Tests pass a fresh
// registry to avoid duplicate registration across cases.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ConnectAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "whitelist_connect_attempts_total",
			Help: "Total number of wallet connection attempts",
		}),
		WrongNetwork: factory.NewCounter(prometheus.CounterOpts{
			Name: "whitelist_wrong_network_total",
			Help: "Total number of connection attempts rejected for being on the wrong network",
		}),
		RegistryReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "whitelist_registry_reads_total",
			Help: "Total number of registry read calls by contract method",
		}, []string{"method"}),
		RegistryReadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "whitelist_registry_read_failures_total",
			Help: "Total number of failed registry read calls by contract method",
		}, []string{"method"}),
		JoinSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "whitelist_join_submitted_total",
			Help: "Total number of join transactions submitted",
		}),
		JoinConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "whitelist_join_confirmed_total",
			Help: "Total number of join transactions confirmed on chain",
		}),
		JoinFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "whitelist_join_failed_total",
			Help: "Total number of join attempts that failed or reverted",
		}),
		WhitelistedCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "whitelist_registered_addresses",
			Help: "Number of registered addresses last read from the registry",
		}),
	}
}

// IncrementConnectAttempts records a wallet connection attempt.
func (m *Metrics) IncrementConnectAttempts() {
	if m == nil {
		return
	}
	m.ConnectAttempts.Inc()
}

// IncrementWrongNetwork records a connection rejected by the network guard.
func (m *Metrics) IncrementWrongNetwork() {
	if m == nil {
		return
	}
	m.WrongNetwork.Inc()
}

// ObserveRegistryRead records a registry read call and its outcome.
func (m *Metrics) ObserveRegistryRead(method string, err error) {
	if m == nil {
		return
	}
	m.RegistryReads.WithLabelValues(method).Inc()
	if err != nil {
		m.RegistryReadFailures.WithLabelValues(method).Inc()
	}
}

// IncrementJoinSubmitted records a submitted join transaction.
func (m *Metrics) IncrementJoinSubmitted() {
	if m == nil {
		return
	}
	m.JoinSubmitted.Inc()
}

// IncrementJoinConfirmed records a join transaction confirmed on chain.
func (m *Metrics) IncrementJoinConfirmed() {
	if m == nil {
		return
	}
	m.JoinConfirmed.Inc()
}

// IncrementJoinFailed records a failed or reverted join attempt.
func (m *Metrics) IncrementJoinFailed() {
	if m == nil {
		return
	}
	m.JoinFailed.Inc()
}

// SetWhitelistedCount records the registration count read from the registry.
func (m *Metrics) SetWhitelistedCount(n int) {
	if m == nil {
		return
	}
	m.WhitelistedCount.Set(float64(n))
}
