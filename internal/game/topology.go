package game

import (
	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/storage"
)

// RoomOf returns the registered room ref points at, or nil.
func (r *Realm) RoomOf(ref storage.Ref) *Room {
	return lookupAs[*Room](r, ref)
}

// PortalOf returns the registered portal ref points at, or nil.
func (r *Realm) PortalOf(ref storage.Ref) *Portal {
	return lookupAs[*Portal](r, ref)
}

// CharacterOf returns the registered character ref points at, or nil.
func (r *Realm) CharacterOf(ref storage.Ref) *Character {
	return lookupAs[*Character](r, ref)
}

func lookupAs[T Entity](r *Realm, ref storage.Ref) T {
	var zero T
	if ref.IsNull() {
		return zero
	}
	e, ok := r.Lookup(ref.Key())
	if !ok {
		return zero
	}
	t, ok := e.(T)
	if !ok {
		return zero
	}
	return t
}

// PortalsOf satisfies perception.Map. Portals of rooms that are not registered
// in this realm are never returned.
func (r *Realm) PortalsOf(room perception.Room) []perception.Portal {
	rm, ok := room.(*Room)
	if !ok {
		return nil
	}

	portals := make([]perception.Portal, 0, len(rm.Portals))
	for _, ref := range rm.Portals {
		if p := r.PortalOf(ref); p != nil {
			portals = append(portals, portalView{realm: r, portal: p})
		}
	}
	return portals
}

// portalView presents a Portal to the perception engine with its rooms
// looked up in the realm.
type portalView struct {
	realm  *Realm
	portal *Portal
}

func (v portalView) Room() perception.Room {
	return v.room(v.portal.Room1)
}

func (v portalView) Room2() perception.Room {
	return v.room(v.portal.Room2)
}

// room converts a missing room into an untyped nil so callers can compare
// against nil.
func (v portalView) room(ref storage.Ref) perception.Room {
	if rm := v.realm.RoomOf(ref); rm != nil {
		return rm
	}
	return nil
}

func (v portalView) NameFromRoom(room perception.Room) string {
	return v.portal.NameFrom(keyOf(room))
}

func (v portalView) CanOpenFromRoom(room perception.Room) bool {
	return v.portal.CanOpenFrom(keyOf(room))
}

func (v portalView) CanSeeThrough() bool {
	return v.portal.CanSeeThrough()
}

func (v portalView) CanHearThrough() bool {
	return v.portal.CanHearThrough()
}

func keyOf(room perception.Room) storage.Key {
	if rm, ok := room.(*Room); ok && rm != nil {
		return rm.Key()
	}
	return storage.Key{}
}
