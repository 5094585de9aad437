// Package prom exports multiread events as Prometheus counters.
//
//	h := prom.New(prom.Options{Namespace: "app"})
//	prometheus.MustRegister(h)
//	r, _ := multiread.New(multiread.Options{Hooks: h})
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/multiread"
)

type Options struct {
	Namespace   string            // metric name prefix, optional
	ConstLabels prometheus.Labels // attached to every series
}

// Hooks counts reads by path. It is a prometheus.Collector; register it once.
type Hooks struct {
	native      *prometheus.CounterVec
	fallback    *prometheus.CounterVec
	batchErrors *prometheus.CounterVec
	readErrors  *prometheus.CounterVec
	keys        *prometheus.CounterVec
}

var (
	_ multiread.Hooks      = (*Hooks)(nil)
	_ prometheus.Collector = (*Hooks)(nil)
)

func New(opts Options) *Hooks {
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   opts.Namespace,
			Subsystem:   "multiread",
			Name:        name,
			Help:        help,
			ConstLabels: opts.ConstLabels,
		}, labels)
	}
	return &Hooks{
		native:      counter("native_batch_total", "Batch reads served by the store's native multi-read", "store"),
		fallback:    counter("fallback_total", "Batch reads served by single-key reads", "store", "reason"),
		batchErrors: counter("batch_errors_total", "Native batch reads that failed with a genuine error", "store"),
		readErrors:  counter("read_errors_total", "Single-key reads that failed during fallback", "store"),
		keys:        counter("keys_total", "Keys requested through batch reads", "store", "path"),
	}
}

func (h *Hooks) NativeBatch(storeType string, requested int) {
	h.native.WithLabelValues(storeType).Inc()
	h.keys.WithLabelValues(storeType, "native").Add(float64(requested))
}

func (h *Hooks) Fallback(storeType string, requested int, reason string) {
	h.fallback.WithLabelValues(storeType, reason).Inc()
	h.keys.WithLabelValues(storeType, "fallback").Add(float64(requested))
}

func (h *Hooks) BatchError(storeType string, _ int, _ error) {
	h.batchErrors.WithLabelValues(storeType).Inc()
}

// ReadError counts per store only; keys are unbounded and stay out of labels.
func (h *Hooks) ReadError(storeType, _ string, _ error) {
	h.readErrors.WithLabelValues(storeType).Inc()
}

func (h *Hooks) Describe(ch chan<- *prometheus.Desc) {
	h.native.Describe(ch)
	h.fallback.Describe(ch)
	h.batchErrors.Describe(ch)
	h.readErrors.Describe(ch)
	h.keys.Describe(ch)
}

func (h *Hooks) Collect(ch chan<- prometheus.Metric) {
	h.native.Collect(ch)
	h.fallback.Collect(ch)
	h.batchErrors.Collect(ch)
	h.readErrors.Collect(ch)
	h.keys.Collect(ch)
}
