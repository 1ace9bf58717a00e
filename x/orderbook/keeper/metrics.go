package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the orderbook module's Prometheus counters, scoped to the
// concerns this module actually has an opinion about — matches/sweeps/
// disbursements — following the field-per-metric Collector shape the
// teacher's metrics/prometheus.go uses, pared down from that file's
// perpetuals/oracle/websocket/API surface to what x/orderbook emits.
type Metrics struct {
	ordersSubmitted     prometheus.Counter
	ordersCancelled     prometheus.Counter
	matchesExecuted     *prometheus.CounterVec
	dustSweeps          *prometheus.CounterVec
	rewardDisbursements *prometheus.CounterVec
	stuckRowSweeps      *prometheus.CounterVec
}

var (
	metricsSingleton *Metrics
	metricsOnce      sync.Once
)

// NewMetrics returns the process-wide orderbook metrics collector,
// registering it with the default Prometheus registry exactly once —
// multiple Keeper instances in the same process (as in package tests that
// construct a fresh keeper per test) share one collector, matching the
// teacher's GetCollector singleton pattern.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		m := &Metrics{
			ordersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "orderbook",
				Subsystem: "orders",
				Name:      "submitted_total",
				Help:      "Total number of orders submitted",
			}),
			ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "orderbook",
				Subsystem: "orders",
				Name:      "cancelled_total",
				Help:      "Total number of orders cancelled",
			}),
			matchesExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "orderbook",
				Subsystem: "matching",
				Name:      "orders_matched_total",
				Help:      "Total number of orders that reached a terminal fill during a matching pass",
			}, []string{"pair"}),
			dustSweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "orderbook",
				Subsystem: "matching",
				Name:      "dust_sweeps_total",
				Help:      "Total number of sub-minimum remainders swept into the reward account",
			}, []string{"pair"}),
			rewardDisbursements: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "orderbook",
				Subsystem: "rewards",
				Name:      "disbursements_total",
				Help:      "Total number of reward/relayer accrual slots drained past the disbursement threshold",
			}, []string{"pair"}),
			stuckRowSweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "orderbook",
				Subsystem: "matching",
				Name:      "stuck_row_sweeps_total",
				Help:      "Total number of index-drifted stuck orders removed lazily during matching",
			}, []string{"pair"}),
		}
		prometheus.MustRegister(
			m.ordersSubmitted,
			m.ordersCancelled,
			m.matchesExecuted,
			m.dustSweeps,
			m.rewardDisbursements,
			m.stuckRowSweeps,
		)
		metricsSingleton = m
	})
	return metricsSingleton
}
