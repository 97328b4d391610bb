package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry builds the process-wide prometheus registry.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Metrics counts domain-level events.
type Metrics struct {
	DevicesRegistered prometheus.Counter
	ReadingsRecorded  *prometheus.CounterVec
	ReadingsRejected  *prometheus.CounterVec
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DevicesRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "enertrack_devices_registered_total",
			Help: "Devices registered since process start.",
		}),
		ReadingsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "enertrack_readings_recorded_total",
			Help: "Energy readings accepted, by data source.",
		}, []string{"data_source"}),
		ReadingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "enertrack_readings_rejected_total",
			Help: "Energy readings rejected, by reason.",
		}, []string{"reason"}),
	}
}
