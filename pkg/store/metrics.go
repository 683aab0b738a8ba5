package store

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts snapshot store activity. A nil *Metrics records nothing.
type Metrics struct {
	Saves        prometheus.Counter
	Loads        prometheus.Counter
	QuadsWritten prometheus.Counter
}

// NewMetrics creates the snapshot counters and registers them with reg when
// reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Saves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simplerdf",
			Subsystem: "snapshot",
			Name:      "saves_total",
			Help:      "Number of datasets saved as snapshots.",
		}),
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simplerdf",
			Subsystem: "snapshot",
			Name:      "loads_total",
			Help:      "Number of snapshots loaded into datasets.",
		}),
		QuadsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simplerdf",
			Subsystem: "snapshot",
			Name:      "quads_written_total",
			Help:      "Number of quads written by snapshot saves.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Saves, m.Loads, m.QuadsWritten)
	}
	return m
}

func (m *Metrics) saved(quads int) {
	if m == nil {
		return
	}
	m.Saves.Inc()
	m.QuadsWritten.Add(float64(quads))
}

func (m *Metrics) loaded() {
	if m == nil {
		return
	}
	m.Loads.Inc()
}
