package driver

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultTickLength = time.Second * 2
)

// Manager is work the driver runs on every tick, such as flushing modified
// entities to storage.
type Manager interface {
	Tick(context.Context) error
}

// RealmDriver ticks its managers at a fixed interval. Tick failures are logged
// and retried on the next tick. A final tick runs on shutdown so that pending
// saves are not lost.
type RealmDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewRealmDriver(managers []Manager, opts ...RealmDriverOpt) *RealmDriver {
	d := &RealmDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *RealmDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return d.Tick(context.WithoutCancel(ctx))
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				slog.WarnContext(ctx, "tick failed", "error", err)
			}
		}
	}
}

// Tick runs every manager once, stopping at the first error.
func (d *RealmDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
