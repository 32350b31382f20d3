package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-realm/internal/metrics"
	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/script"
	"github.com/pixil98/go-realm/internal/storage"
)

// Realm is the registry of every live entity. It owns the entities; everything
// else refers to them by key.
type Realm struct {
	mu       sync.RWMutex
	entities map[storage.Key]Entity
	modified map[storage.Key]struct{}
	lastId   uint64

	store     storage.Storer
	publisher Publisher
	triggers  *script.Engine
	atten     perception.Attenuation
	metrics   *metrics.Metrics
}

func NewRealm(opts ...RealmOpt) *Realm {
	r := &Realm{
		entities: make(map[storage.Key]Entity),
		modified: make(map[storage.Key]struct{}),
		triggers: script.NewEngine(),
		atten:    perception.DefaultAttenuation(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lookup returns the registered entity for key.
func (r *Realm) Lookup(key storage.Key) (Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[key]
	return e, ok
}

// Contains satisfies storage.Registry.
func (r *Realm) Contains(key storage.Key) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Len returns the number of registered entities.
func (r *Realm) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

// Entities calls fn for every registered entity of objectType, or every entity
// if objectType is empty.
func (r *Realm) Entities(objectType string, fn func(Entity)) {
	r.mu.RLock()
	list := make([]Entity, 0, len(r.entities))
	for k, e := range r.entities {
		if objectType == "" || k.Type == objectType {
			list = append(list, e)
		}
	}
	r.mu.RUnlock()

	for _, e := range list {
		fn(e)
	}
}

// Register adds e to the realm. Copies and duplicate keys are rejected.
func (r *Realm) Register(e Entity) error {
	if e.IsCopy() {
		return fmt.Errorf("%w: %s", ErrCopyNotRegistrable, e.Key())
	}
	key := e.Key()
	if err := key.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, key)
	}
	r.entities[key] = e
	r.lastId = max(r.lastId, key.Id)
	r.metrics.SetEntities(len(r.entities))
	return nil
}

// Unregister removes the entity with key from the realm. It is not deleted
// from storage.
func (r *Realm) Unregister(key storage.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[key]; !exists {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, key)
	}
	delete(r.entities, key)
	delete(r.modified, key)
	r.metrics.SetEntities(len(r.entities))
	return nil
}

// AllocateId returns an id that no registered entity uses. Ids are never
// handed out twice during the life of the realm.
func (r *Realm) AllocateId() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastId++
	return r.lastId
}

// Create constructs and registers a new entity. An id of 0 allocates one.
func (r *Realm) Create(objectType string, id uint64) (Entity, error) {
	if id == 0 {
		id = r.AllocateId()
	}

	e, err := NewEntity(objectType, id)
	if err != nil {
		return nil, err
	}
	if err := r.Register(e); err != nil {
		return nil, err
	}
	r.MarkModified(e)
	return e, nil
}

// CreateCopy returns a transient copy of e. See CreateCopy.
func (r *Realm) CreateCopy(e Entity) (Entity, error) {
	return CreateCopy(e)
}

// Destroy unregisters the entity and removes its record from storage.
func (r *Realm) Destroy(key storage.Key) error {
	if err := r.Unregister(key); err != nil {
		return err
	}
	if r.store == nil {
		return nil
	}
	if err := r.store.Delete(key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// MarkModified schedules e to be saved on the next tick. Copies are ignored.
func (r *Realm) MarkModified(e Entity) {
	if e.IsCopy() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entities[e.Key()]; ok {
		r.modified[e.Key()] = struct{}{}
	}
}

// Save writes e to storage immediately.
func (r *Realm) Save(e Entity) error {
	if e.IsCopy() {
		return fmt.Errorf("%w: %s", ErrCopyNotRegistrable, e.Key())
	}
	if r.store == nil {
		return fmt.Errorf("no store configured")
	}

	data, err := storage.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", e.Key(), err)
	}
	if err := r.store.Write(e.Key(), data); err != nil {
		return fmt.Errorf("saving %s: %w", e.Key(), err)
	}

	r.metrics.RecordSaved(e.Key().Type)
	return nil
}

// Tick saves every entity modified since the last tick. Entities that fail to
// save stay marked and are retried on the next tick.
func (r *Realm) Tick(ctx context.Context) error {
	if r.store == nil {
		return nil
	}

	r.mu.Lock()
	pending := make([]Entity, 0, len(r.modified))
	for key := range r.modified {
		if e, ok := r.entities[key]; ok {
			pending = append(pending, e)
		}
	}
	r.modified = make(map[storage.Key]struct{})
	r.mu.Unlock()

	el := errors.NewErrorList()
	for _, e := range pending {
		if err := r.Save(e); err != nil {
			el.Add(err)
			r.MarkModified(e)
		}
	}

	if len(pending) > 0 {
		slog.DebugContext(ctx, "flushed modified entities", "count", len(pending))
	}
	return el.Err()
}

// Resolve re-resolves the references of every registered entity, for use after
// entities were added or removed.
func (r *Realm) Resolve() (resolved int, dangling []DanglingRef) {
	r.Entities("", func(e Entity) {
		n, d := r.resolveEntity(e)
		resolved += n
		dangling = append(dangling, d...)
	})
	r.metrics.ReferencesResolved(resolved, len(dangling))
	return resolved, dangling
}

// DanglingRef is a reference whose target was not registered when resolved.
type DanglingRef struct {
	Owner storage.Key
	Field string
	Ref   storage.Ref
}

func (r *Realm) resolveEntity(e Entity) (int, []DanglingRef) {
	n, dangling := storage.ResolveFields(e.Schema(), r)

	refs := make([]DanglingRef, 0, len(dangling))
	for _, d := range dangling {
		slog.Warn("unresolved reference", "owner", e.Key().String(), "field", d.Field, "target", d.Ref.String())
		refs = append(refs, DanglingRef{Owner: e.Key(), Field: d.Field, Ref: d.Ref})
	}
	return n, refs
}
