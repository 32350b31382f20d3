package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the realm. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	recordsLoaded    *prometheus.CounterVec
	loadFailures     prometheus.Counter
	recordsSaved     *prometheus.CounterVec
	references       *prometheus.CounterVec
	eventsDispatched *prometheus.CounterVec
	messagesSent     prometheus.Counter
	entities         prometheus.Gauge
}

// NewMetrics creates the realm collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recordsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realm_records_loaded_total",
			Help: "Records loaded into the registry by entity type.",
		}, []string{"type"}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "realm_record_load_failures_total",
			Help: "Records that failed to load.",
		}),
		recordsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realm_records_saved_total",
			Help: "Records written to storage by entity type.",
		}, []string{"type"}),
		references: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realm_references_resolved_total",
			Help: "References resolved by outcome.",
		}, []string{"state"}),
		eventsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "realm_events_dispatched_total",
			Help: "Perception events dispatched by kind.",
		}, []string{"kind"}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "realm_messages_sent_total",
			Help: "Event descriptions delivered to characters.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "realm_entities",
			Help: "Entities currently registered.",
		}),
	}

	reg.MustRegister(
		m.recordsLoaded,
		m.loadFailures,
		m.recordsSaved,
		m.references,
		m.eventsDispatched,
		m.messagesSent,
		m.entities,
	)

	return m
}

func (m *Metrics) RecordLoaded(objectType string) {
	if m == nil {
		return
	}
	m.recordsLoaded.WithLabelValues(objectType).Inc()
}

func (m *Metrics) LoadFailed() {
	if m == nil {
		return
	}
	m.loadFailures.Inc()
}

func (m *Metrics) RecordSaved(objectType string) {
	if m == nil {
		return
	}
	m.recordsSaved.WithLabelValues(objectType).Inc()
}

// ReferencesResolved counts the outcome of a resolution pass.
func (m *Metrics) ReferencesResolved(resolved, absent int) {
	if m == nil {
		return
	}
	m.references.WithLabelValues("resolved").Add(float64(resolved))
	m.references.WithLabelValues("absent").Add(float64(absent))
}

func (m *Metrics) EventDispatched(kind string, messages int) {
	if m == nil {
		return
	}
	m.eventsDispatched.WithLabelValues(kind).Inc()
	m.messagesSent.Add(float64(messages))
}

func (m *Metrics) SetEntities(n int) {
	if m == nil {
		return
	}
	m.entities.Set(float64(n))
}
