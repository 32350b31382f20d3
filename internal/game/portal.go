package game

import "github.com/pixil98/go-realm/internal/storage"

const PortalType = "portal"

const (
	PortalCanOpenFromSide1 = "can-open-from-side1"
	PortalCanOpenFromSide2 = "can-open-from-side2"
	PortalCanSeeThrough    = "can-see-through"
	PortalCanHearThrough   = "can-hear-through"
	PortalOpen             = "open"
)

// Portal connects two rooms. Each side has its own name, e.g. "north" from one
// room and "south" from the other. A portal without a second room leads outside.
type Portal struct {
	header

	Name      string
	Name2     string
	Room1     storage.Ref
	Room2     storage.Ref
	FlagNames []string
}

func (p *Portal) Schema() storage.Schema {
	return storage.Schema{
		storage.String("name", &p.Name),
		storage.String("name2", &p.Name2),
		storage.Reference("room", &p.Room1),
		storage.Reference("room2", &p.Room2),
		storage.Strings("flags", &p.FlagNames),
	}
}

func (p *Portal) HasFlag(flag string) bool {
	return hasFlag(p.FlagNames, flag)
}

func (p *Portal) SetFlag(flag string, on bool) {
	p.FlagNames = setFlag(p.FlagNames, flag, on)
}

// Side returns 1 or 2 for the side of the portal in room, or 0 if the portal
// does not touch it.
func (p *Portal) Side(room storage.Key) int {
	switch room {
	case p.Room1.Key():
		return 1
	case p.Room2.Key():
		return 2
	default:
		return 0
	}
}

// Opposite returns the reference to the room across the portal from room.
func (p *Portal) Opposite(room storage.Key) storage.Ref {
	if p.Side(room) == 1 {
		return p.Room2
	}
	return p.Room1
}

// NameFrom returns the name of the portal as seen from room.
func (p *Portal) NameFrom(room storage.Key) string {
	if p.Side(room) == 2 {
		return p.Name2
	}
	return p.Name
}

func (p *Portal) CanOpenFrom(room storage.Key) bool {
	switch p.Side(room) {
	case 1:
		return p.HasFlag(PortalCanOpenFromSide1)
	case 2:
		return p.HasFlag(PortalCanOpenFromSide2)
	default:
		return false
	}
}

// IsOpenable returns true if the portal can be opened from either side.
func (p *Portal) IsOpenable() bool {
	return p.HasFlag(PortalCanOpenFromSide1) || p.HasFlag(PortalCanOpenFromSide2)
}

// IsPassable returns true if the portal is open or has nothing to open.
func (p *Portal) IsPassable() bool {
	return !p.IsOpenable() || p.HasFlag(PortalOpen)
}

func (p *Portal) CanSeeThrough() bool {
	return p.HasFlag(PortalCanSeeThrough) || (p.IsOpenable() && p.HasFlag(PortalOpen))
}

func (p *Portal) CanHearThrough() bool {
	return p.HasFlag(PortalCanHearThrough) || p.CanSeeThrough()
}
