package game

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-realm/internal/storage"
)

// Batch is the result of loading every record of a store into the realm. Its
// entities hold unresolved references until Resolve is called.
type Batch struct {
	realm    *Realm
	entities []Entity
	failures []error
}

// Load reads and registers every record in st. A record that cannot be read,
// parsed or registered is reported through Err and does not stop the others.
// References are left unresolved; call Resolve on the returned batch once
// loading is done.
func (r *Realm) Load(st storage.Storer) *Batch {
	b := &Batch{realm: r}

	names, err := st.Names()
	if err != nil {
		b.fail(fmt.Errorf("listing records: %w", err))
		return b
	}

	for _, name := range names {
		e, err := r.loadRecord(st, name)
		if err != nil {
			slog.Warn("failed to load record", "record", name, "error", err)
			b.fail(fmt.Errorf("record %s: %w", name, err))
			continue
		}
		b.entities = append(b.entities, e)
		r.metrics.RecordLoaded(e.Key().Type)
	}

	slog.Info("records loaded", "loaded", len(b.entities), "failed", len(b.failures))
	return b
}

func (r *Realm) loadRecord(st storage.Storer, name string) (Entity, error) {
	e, err := NewEntityForRecord(name)
	if err != nil {
		return nil, err
	}

	data, err := st.Read(name)
	if err != nil {
		return nil, err
	}

	if err := r.Register(e); err != nil {
		return nil, err
	}
	if err := storage.Unmarshal(data, e); err != nil {
		if uerr := r.Unregister(e.Key()); uerr != nil {
			slog.Warn("unregistering failed record", "record", name, "error", uerr)
		}
		return nil, err
	}
	return e, nil
}

func (b *Batch) fail(err error) {
	b.failures = append(b.failures, err)
	b.realm.metrics.LoadFailed()
}

// Entities returns the entities loaded by the batch.
func (b *Batch) Entities() []Entity {
	return b.entities
}

// Failed returns the number of records that could not be loaded.
func (b *Batch) Failed() int {
	return len(b.failures)
}

// Failures returns the error for each record that could not be loaded.
func (b *Batch) Failures() []error {
	return b.failures
}

// Err returns the aggregated load failures, or nil.
func (b *Batch) Err() error {
	el := errors.NewErrorList()
	for _, err := range b.failures {
		el.Add(err)
	}
	return el.Err()
}

// Resolve links the references of every entity in the batch against the realm.
// References to entities that are not registered are left absent and returned.
// Resolve may be called again after the realm changes.
func (b *Batch) Resolve() (resolved int, dangling []DanglingRef) {
	for _, e := range b.entities {
		n, d := b.realm.resolveEntity(e)
		resolved += n
		dangling = append(dangling, d...)
	}

	b.realm.metrics.ReferencesResolved(resolved, len(dangling))
	slog.Info("references resolved", "resolved", resolved, "absent", len(dangling))
	return resolved, dangling
}
