package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pixil98/go-realm/internal/driver"
	"github.com/pixil98/go-realm/internal/game"
	"github.com/pixil98/go-realm/internal/metrics"
	"github.com/pixil98/go-realm/internal/storage"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tick, err := cfg.tickInterval()
	if err != nil {
		return nil, err
	}

	store, err := cfg.Storage.buildStore()
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	realm := game.NewRealm(
		game.WithStore(store),
		game.WithPublisher(cfg.Nats.buildPublisher(natsServer)),
		game.WithAttenuation(cfg.Perception.attenuation()),
		game.WithMetrics(metrics.NewMetrics(reg)),
	)

	// Broken records are reported but do not keep the rest of the world from loading.
	batch := realm.Load(store)
	if err := batch.Err(); err != nil {
		slog.Warn("some records failed to load", "failed", batch.Failed(), "error", err)
	}
	batch.Resolve()

	workers := service.WorkerList{
		"driver": &realmWorker{
			driver: driver.NewRealmDriver([]driver.Manager{realm}, driver.WithTickLength(tick)),
			store:  store,
		},
		"nats": natsServer,
	}
	if srv := cfg.Metrics.buildServer(reg); srv != nil {
		workers["metrics"] = srv
	}

	return workers, nil
}

// realmWorker runs the driver and closes the store once the final flush is done.
type realmWorker struct {
	driver *driver.RealmDriver
	store  storage.Storer
}

func (w *realmWorker) Start(ctx context.Context) error {
	err := w.driver.Start(ctx)
	if cerr := w.store.Close(); cerr != nil {
		slog.Warn("closing storage", "error", cerr)
	}
	return err
}
