package script

import (
	"log/slog"
	"sync"

	"github.com/pixil98/go-realm/internal/storage"
)

type binding struct {
	owner storage.Key
	name  string
}

// Engine invokes triggers bound to entities. Triggers are either bound from Go
// with Bind or declared on the entity itself as "<name>:<template>" strings.
type Engine struct {
	mu       sync.RWMutex
	bound    map[binding]Trigger
	compiled map[string]Trigger
}

func NewEngine() *Engine {
	return &Engine{
		bound:    make(map[binding]Trigger),
		compiled: make(map[string]Trigger),
	}
}

// Bind attaches t to the entity owner under name, replacing any previous binding.
// Bound triggers take precedence over declared ones.
func (e *Engine) Bind(owner storage.Key, name string, t Trigger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bound[binding{owner: owner, name: name}] = t
}

func (e *Engine) Unbind(owner storage.Key, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.bound, binding{owner: owner, name: name})
}

// Invoke runs the trigger named call.Name on call.Owner, consulting the entity's
// declarations if nothing was bound. A missing or broken trigger proceeds.
func (e *Engine) Invoke(declarations []string, call Call) bool {
	t := e.lookup(declarations, call)
	if t == nil {
		return true
	}
	return t.Invoke(call)
}

func (e *Engine) lookup(declarations []string, call Call) Trigger {
	e.mu.RLock()
	t, ok := e.bound[binding{owner: call.Owner, name: call.Name}]
	e.mu.RUnlock()
	if ok {
		return t
	}

	for _, decl := range declarations {
		name, source, err := ParseDeclaration(decl)
		if err != nil {
			slog.Warn("skipping trigger declaration", "owner", call.Owner.String(), "error", err)
			continue
		}
		if name != call.Name {
			continue
		}
		return e.compile(call, source)
	}
	return nil
}

func (e *Engine) compile(call Call, source string) Trigger {
	e.mu.RLock()
	t, ok := e.compiled[source]
	e.mu.RUnlock()
	if ok {
		return t
	}

	tt, err := ParseTemplateTrigger(source)
	if err != nil {
		slog.Warn("compiling trigger", "owner", call.Owner.String(), "trigger", call.Name, "error", err)
		return nil
	}

	e.mu.Lock()
	e.compiled[source] = tt
	e.mu.Unlock()
	return tt
}
