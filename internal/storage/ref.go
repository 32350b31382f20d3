package storage

import (
	"encoding/json"
	"fmt"
)

// RefState describes how far a Ref has been resolved.
type RefState int

const (
	Unresolved RefState = iota // Holds only a token loaded from storage
	Resolved                   // Target was present in the registry at last resolution
	Absent                     // Target was missing at last resolution
)

func (s RefState) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolved:
		return "resolved"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

// Registry is the lookup a Ref is resolved against.
type Registry interface {
	Contains(Key) bool
}

// Ref is a non-owning reference to another entity. It always keeps the target
// key, so an absent reference survives a save and can be resolved again later.
type Ref struct {
	key   Key
	state RefState
}

// NewRef creates an unresolved reference to key.
func NewRef(key Key) Ref {
	return Ref{key: key}
}

// NewResolvedRef creates a reference that is already known to point at a live entity.
func NewResolvedRef(key Key) Ref {
	return Ref{key: key, state: Resolved}
}

// ParseRef creates an unresolved reference from a token.
func ParseRef(token string) (Ref, error) {
	k, err := ParseKey(token)
	if err != nil {
		return Ref{}, err
	}
	return NewRef(k), nil
}

func (r Ref) Key() Key {
	return r.key
}

func (r Ref) State() RefState {
	return r.state
}

// IsNull returns true if the reference does not point anywhere.
func (r Ref) IsNull() bool {
	return r.key.IsZero()
}

// IsResolved returns true if the reference was found in the registry when last resolved.
func (r Ref) IsResolved() bool {
	return r.state == Resolved
}

// String returns the reference token.
func (r Ref) String() string {
	return r.key.String()
}

// Resolve looks the key up in reg, overwriting any previous result. It returns
// true if the target exists.
func (r *Ref) Resolve(reg Registry) bool {
	if !r.IsNull() && reg.Contains(r.key) {
		r.state = Resolved
		return true
	}
	r.state = Absent
	return false
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return err
	}
	ref, err := ParseRef(token)
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Edge is a named connection to another entity.
type Edge struct {
	Name   string
	Target Ref
	Hidden bool
}

func (e *Edge) UnmarshalJSON(b []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("edge must have 2 or 3 elements, got %d", len(parts))
	}

	var edge Edge
	if err := json.Unmarshal(parts[0], &edge.Name); err != nil {
		return fmt.Errorf("edge name: %w", err)
	}
	if err := json.Unmarshal(parts[1], &edge.Target); err != nil {
		return fmt.Errorf("edge target: %w", err)
	}
	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &edge.Hidden); err != nil {
			return fmt.Errorf("edge hidden flag: %w", err)
		}
	}

	*e = edge
	return nil
}

func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Name, e.Target, e.Hidden})
}
