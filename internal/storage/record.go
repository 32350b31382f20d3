package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var errKindMismatch = errors.New("field value does not match its kind")

// Persistent is anything that can be written to and read from a record.
type Persistent interface {
	Key() Key
	Schema() Schema
}

// Marshal encodes the stored fields of p as a record: a JSON object with one
// field per line in schema order. Fields of an unknown kind are logged and skipped.
func Marshal(p Persistent) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")

	written := 0
	for _, f := range p.Schema().Stored() {
		v, err := f.encode()
		if err != nil {
			slog.Warn("skipping field while saving", "key", p.Key().String(), "field", f.Name, "kind", f.Kind.String(), "error", err)
			continue
		}

		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("encoding field name %q: %w", f.Name, err)
		}

		if written > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		buf.Write(name)
		buf.WriteString(": ")
		buf.Write(v)
		written++
	}

	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

// Unmarshal populates the stored fields of p from data. Fields missing from the
// record keep their current value. A record that is not a JSON object fails with
// ErrCorruptRecord; an unparseable reference token fails with ErrInvalidIdentifier.
// Any other per-field problem is logged and the field is skipped.
func Unmarshal(data []byte, p Persistent) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: record is not an object", ErrCorruptRecord)
	}

	for _, f := range p.Schema().Stored() {
		msg, ok := raw[f.Name]
		if !ok {
			continue
		}

		err := f.decode(msg)
		if errors.Is(err, ErrInvalidIdentifier) {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		if err != nil {
			slog.Warn("skipping field while loading", "key", p.Key().String(), "field", f.Name, "kind", f.Kind.String(), "error", err)
		}
	}

	return nil
}

// CopyFields copies every stored value of src into the matching field of dst.
// Lists are copied into fresh slices; references are copied as references.
func CopyFields(dst, src Schema) {
	for _, sf := range src.Stored() {
		df, ok := dst.Lookup(sf.Name)
		if !ok || df.Kind != sf.Kind {
			continue
		}

		var err error
		switch sf.Kind {
		case KindBool:
			err = copyValue[bool](df, sf, identity)
		case KindInt:
			err = copyValue[int](df, sf, identity)
		case KindString:
			err = copyValue[string](df, sf, identity)
		case KindStringList:
			err = copyValue[[]string](df, sf, slices.Clone)
		case KindRef:
			err = copyValue[Ref](df, sf, identity)
		case KindRefList:
			err = copyValue[[]Ref](df, sf, slices.Clone)
		case KindEdge:
			err = copyValue[Edge](df, sf, identity)
		case KindEdgeList:
			err = copyValue[[]Edge](df, sf, slices.Clone)
		default:
			err = errKindMismatch
		}
		if err != nil {
			slog.Warn("skipping field while copying", "field", sf.Name, "kind", sf.Kind.String(), "error", err)
		}
	}
}

// Dangling describes a reference that could not be resolved.
type Dangling struct {
	Field string
	Ref   Ref
}

// ResolveFields resolves every reference and edge in the stored fields of s
// against reg. Non-null references whose target is missing are returned.
func ResolveFields(s Schema, reg Registry) (resolved int, dangling []Dangling) {
	check := func(name string, r *Ref) {
		if r.Resolve(reg) {
			resolved++
		} else if !r.IsNull() {
			dangling = append(dangling, Dangling{Field: name, Ref: *r})
		}
	}

	for _, f := range s.Stored() {
		switch f.Kind {
		case KindRef:
			if p, ok := f.value.(*Ref); ok {
				check(f.Name, p)
			}
		case KindRefList:
			if p, ok := f.value.(*[]Ref); ok {
				for i := range *p {
					check(f.Name, &(*p)[i])
				}
			}
		case KindEdge:
			if p, ok := f.value.(*Edge); ok {
				check(f.Name, &p.Target)
			}
		case KindEdgeList:
			if p, ok := f.value.(*[]Edge); ok {
				for i := range *p {
					check(f.Name, &(*p)[i].Target)
				}
			}
		}
	}

	return resolved, dangling
}

func (f Field) encode() ([]byte, error) {
	switch f.Kind {
	case KindBool:
		return encodeValue[bool](f)
	case KindInt:
		return encodeValue[int](f)
	case KindString:
		return encodeValue[string](f)
	case KindStringList:
		return encodeValue[[]string](f)
	case KindRef:
		return encodeValue[Ref](f)
	case KindRefList:
		return encodeValue[[]Ref](f)
	case KindEdge:
		return encodeValue[Edge](f)
	case KindEdgeList:
		return encodeValue[[]Edge](f)
	default:
		return nil, fmt.Errorf("unknown kind %d", int(f.Kind))
	}
}

func (f Field) decode(msg json.RawMessage) error {
	switch f.Kind {
	case KindBool:
		return decodeValue[bool](f, msg)
	case KindInt:
		return decodeValue[int](f, msg)
	case KindString:
		return decodeValue[string](f, msg)
	case KindStringList:
		return decodeValue[[]string](f, msg)
	case KindRef:
		return decodeValue[Ref](f, msg)
	case KindRefList:
		return decodeValue[[]Ref](f, msg)
	case KindEdge:
		return decodeValue[Edge](f, msg)
	case KindEdgeList:
		return decodeValue[[]Edge](f, msg)
	default:
		return fmt.Errorf("unknown kind %d", int(f.Kind))
	}
}

func encodeValue[T any](f Field) ([]byte, error) {
	p, ok := f.value.(*T)
	if !ok || p == nil {
		return nil, errKindMismatch
	}
	v := *p
	// Lists are written as [] rather than null so records stay uniform.
	switch l := any(v).(type) {
	case []string:
		if l == nil {
			return []byte("[]"), nil
		}
	case []Ref:
		if l == nil {
			return []byte("[]"), nil
		}
	case []Edge:
		if l == nil {
			return []byte("[]"), nil
		}
	}
	return json.Marshal(v)
}

func decodeValue[T any](f Field, msg json.RawMessage) error {
	p, ok := f.value.(*T)
	if !ok || p == nil {
		return errKindMismatch
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return err
	}
	*p = v
	return nil
}

func copyValue[T any](dst, src Field, clone func(T) T) error {
	dp, ok := dst.value.(*T)
	if !ok || dp == nil {
		return errKindMismatch
	}
	sp, ok := src.value.(*T)
	if !ok || sp == nil {
		return errKindMismatch
	}
	*dp = clone(*sp)
	return nil
}

func identity[T any](v T) T {
	return v
}
