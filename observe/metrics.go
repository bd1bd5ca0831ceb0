package observe

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/abcvrp/foodsource"
)

// Collector counts food source events as Prometheus metrics:
//
//	abc_exploit_total{outcome}  exploitation steps by outcome
//	abc_randomize_total         randomizations
//	abc_exhausted_total         events that left a source exhausted
//	abc_fitness                 fitness retained after each exploitation
type Collector struct {
	exploits   *prometheus.CounterVec
	randomizes prometheus.Counter
	exhausted  prometheus.Counter
	fitness    prometheus.Histogram
}

// FitnessBuckets spans fitness 1e-6 to about 4.2 (route lengths from 10^6
// grid units down to about 0.24).
var FitnessBuckets = prometheus.ExponentialBuckets(1e-6, 4, 12)

// NewCollector creates a Collector and registers its metrics on reg.
// Registering twice on the same Registerer returns the AlreadyRegistered error.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		exploits: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "abc_exploit_total", Help: "Exploitation steps by outcome."},
			[]string{"outcome"},
		),
		randomizes: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "abc_randomize_total", Help: "Route randomizations."},
		),
		exhausted: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "abc_exhausted_total", Help: "Events reporting an exhausted food source."},
		),
		fitness: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "abc_fitness", Help: "Fitness retained after exploitation.", Buckets: FitnessBuckets},
		),
	}

	for _, m := range []prometheus.Collector{c.exploits, c.randomizes, c.exhausted, c.fitness} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe implements foodsource.Observer.
func (c *Collector) Observe(e foodsource.Event) {
	switch e.Kind {
	case foodsource.KindExploit:
		c.exploits.WithLabelValues(e.Outcome.String()).Inc()
		c.fitness.Observe(e.Fitness)
	case foodsource.KindRandomize:
		c.randomizes.Inc()
	}
	if e.Exhausted {
		c.exhausted.Inc()
	}
}

var (
	// Registry is the dedicated registry behind Default.
	Registry = prometheus.NewRegistry()

	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns a process-wide Collector registered on Registry together
// with the Go runtime and process collectors.
func Default() *Collector {
	defaultOnce.Do(func() {
		c, err := NewCollector(Registry)
		if err != nil {
			panic(err)
		}
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		defaultCollector = c
	})
	return defaultCollector
}
