package observe

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup result label values.
const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Prometheus is an Observer backed by Prometheus counters.
//
// Metrics (all labelled by repr):
//
//	<ns>_nodes_added_total
//	<ns>_nodes_moved_total
//	<ns>_moves_refused_total
//	<ns>_lookups_total{result="hit"|"miss"}
type Prometheus struct {
	// NodesAdded counts successful AddChild calls.
	NodesAdded *prometheus.CounterVec

	// NodesMoved counts successful MoveNode calls.
	NodesMoved *prometheus.CounterVec

	// MovesRefused counts MoveNode calls rejected as cyclic.
	MovesRefused *prometheus.CounterVec

	// Lookups counts FindByID calls by outcome.
	Lookups *prometheus.CounterVec
}

// NewPrometheus creates the counters and registers them on reg.
// An empty namespace defaults to "lvtree". Registering twice on the same
// registry fails with the registry's AlreadyRegisteredError. Registration is
// all or nothing: on failure the collectors already registered are removed.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		return nil, errors.New("observe: nil prometheus registerer")
	}
	if namespace == "" {
		namespace = "lvtree"
	}

	p := &Prometheus{
		NodesAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_added_total",
			Help:      "Children linked into a tree, by representation.",
		}, []string{"repr"}),
		NodesMoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_moved_total",
			Help:      "Successful reparent operations, by representation.",
		}, []string{"repr"}),
		MovesRefused: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_refused_total",
			Help:      "Moves refused because the destination lies inside the moved subtree.",
		}, []string{"repr"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Id lookups, by representation and result.",
		}, []string{"repr", "result"}),
	}

	registered := make([]prometheus.Collector, 0, 4)
	for _, c := range []prometheus.Collector{p.NodesAdded, p.NodesMoved, p.MovesRefused, p.Lookups} {
		if err := reg.Register(c); err != nil {
			// Roll back the partial registration
			for _, done := range registered {
				reg.Unregister(done)
			}
			return nil, err
		}
		registered = append(registered, c)
	}

	return p, nil
}

// NodeAdded implements Observer.
func (p *Prometheus) NodeAdded(repr string) { p.NodesAdded.WithLabelValues(repr).Inc() }

// NodeMoved implements Observer.
func (p *Prometheus) NodeMoved(repr string) { p.NodesMoved.WithLabelValues(repr).Inc() }

// MoveRefused implements Observer.
func (p *Prometheus) MoveRefused(repr string) { p.MovesRefused.WithLabelValues(repr).Inc() }

// Lookup implements Observer.
func (p *Prometheus) Lookup(repr string, found bool) {
	result := resultMiss
	if found {
		result = resultHit
	}
	p.Lookups.WithLabelValues(repr, result).Inc()
}
