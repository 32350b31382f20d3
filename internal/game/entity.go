package game

import (
	"fmt"
	"slices"
	"sort"

	"github.com/pixil98/go-realm/internal/storage"
)

// Entity is anything the realm stores and references by key.
type Entity interface {
	storage.Persistent
	// IsCopy returns true for transient copies made by CreateCopy.
	IsCopy() bool
}

// header holds the identity shared by every entity type.
type header struct {
	key  storage.Key
	copy bool
}

func (h *header) Key() storage.Key {
	return h.key
}

func (h *header) IsCopy() bool {
	return h.copy
}

var constructors = map[string]func(header) Entity{
	AreaType:      func(h header) Entity { return &Area{header: h} },
	RoomType:      func(h header) Entity { return &Room{header: h} },
	PortalType:    func(h header) Entity { return &Portal{header: h} },
	CharacterType: func(h header) Entity { return &Character{header: h} },
	ItemType:      func(h header) Entity { return &Item{header: h} },
}

// EntityTypes lists the object types NewEntity can create.
func EntityTypes() []string {
	types := make([]string, 0, len(constructors))
	for t := range constructors {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// NewEntity creates an empty, unregistered entity of objectType.
func NewEntity(objectType string, id uint64) (Entity, error) {
	key, err := storage.NewKey(objectType, id)
	if err != nil {
		return nil, err
	}

	ctor, ok := constructors[key.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, objectType)
	}
	return ctor(header{key: key}), nil
}

// NewEntityForRecord creates the entity a record name such as "room.12" describes.
func NewEntityForRecord(name string) (Entity, error) {
	key, err := storage.ParseRecordName(name)
	if err != nil {
		return nil, err
	}
	return NewEntity(key.Type, key.Id)
}

// CreateCopy returns a transient copy of e with the same key and stored values.
// The copy is never registered, so it cannot be looked up or referenced.
func CreateCopy(e Entity) (Entity, error) {
	key := e.Key()
	ctor, ok := constructors[key.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityKind, key.Type)
	}

	c := ctor(header{key: key, copy: true})
	storage.CopyFields(c.Schema(), e.Schema())
	return c, nil
}

// hasFlag reports whether flag is present in a stored flag list.
func hasFlag(flags []string, flag string) bool {
	return slices.Contains(flags, flag)
}

// setFlag adds or removes flag from a stored flag list.
func setFlag(flags []string, flag string, on bool) []string {
	idx := slices.Index(flags, flag)
	switch {
	case on && idx < 0:
		return append(flags, flag)
	case !on && idx >= 0:
		return slices.Delete(slices.Clone(flags), idx, idx+1)
	default:
		return flags
	}
}

// refKeys returns the keys of refs.
func refKeys(refs []storage.Ref) []storage.Key {
	keys := make([]storage.Key, 0, len(refs))
	for _, r := range refs {
		keys = append(keys, r.Key())
	}
	return keys
}

// withRef returns refs with a resolved reference to key appended if it is not already present.
func withRef(refs []storage.Ref, key storage.Key) []storage.Ref {
	if slices.Contains(refKeys(refs), key) {
		return refs
	}
	return append(refs, storage.NewResolvedRef(key))
}

// withoutRef returns refs without any reference to key.
func withoutRef(refs []storage.Ref, key storage.Key) []storage.Ref {
	return slices.DeleteFunc(slices.Clone(refs), func(r storage.Ref) bool {
		return r.Key() == key
	})
}
