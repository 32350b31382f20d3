package game

import (
	"github.com/pixil98/go-realm/internal/metrics"
	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/script"
	"github.com/pixil98/go-realm/internal/storage"
)

type RealmOpt func(*Realm)

// WithStore sets where modified entities are saved.
func WithStore(st storage.Storer) RealmOpt {
	return func(r *Realm) {
		r.store = st
	}
}

// WithPublisher sets where rendered event descriptions are delivered.
func WithPublisher(p Publisher) RealmOpt {
	return func(r *Realm) {
		r.publisher = p
	}
}

// WithTriggers sets the engine entity triggers are invoked through.
func WithTriggers(e *script.Engine) RealmOpt {
	return func(r *Realm) {
		r.triggers = e
	}
}

// WithAttenuation sets how quickly events fired by the realm fade.
func WithAttenuation(a perception.Attenuation) RealmOpt {
	return func(r *Realm) {
		r.atten = a
	}
}

func WithMetrics(m *metrics.Metrics) RealmOpt {
	return func(r *Realm) {
		r.metrics = m
	}
}
