// Package metrics defines and registers all custom Prometheus metrics for the
// events API. It is the single source of truth for metric names, labels, and
// help strings. HTTP-level request metrics come from the echoprometheus
// middleware; only domain counters live here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "events_api"

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure" (failure covers both unknown email and
//     bad password, the split is not observable)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// EventWritesTotal counts successful event mutations.
// Label:
//   - op: "create", "update", or "delete"
var EventWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_writes_total",
		Help:      "Total number of successful event mutations, by operation.",
	},
	[]string{"op"},
)

// SocietyWritesTotal counts successful society mutations.
// Label:
//   - op: "create", "update", or "delete"
var SocietyWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "society_writes_total",
		Help:      "Total number of successful society mutations, by operation.",
	},
	[]string{"op"},
)
