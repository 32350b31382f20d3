package perception

import "github.com/pixil98/go-realm/internal/geom"

// RoomFlags describe the structure of a room.
type RoomFlags int

const (
	NoCeiling RoomFlags = 1 << iota
	NoFloor
)

func (f RoomFlags) Has(flag RoomFlags) bool {
	return f&flag != 0
}

// Room is a location events can be perceived in. Implementations must be
// comparable; rooms are used as map keys.
type Room interface {
	Position() geom.Point
	Flags() RoomFlags
}

// Portal connects two rooms. Room2 may be nil for a portal leading outside.
type Portal interface {
	Room() Room
	Room2() Room
	NameFromRoom(Room) string
	CanOpenFromRoom(Room) bool
	CanSeeThrough() bool
	CanHearThrough() bool
}

// Map gives events access to the topology around a room.
type Map interface {
	PortalsOf(Room) []Portal
}

// OppositeRoom returns the room on the other side of p as seen from room.
func OppositeRoom(p Portal, room Room) Room {
	if p.Room() == room {
		return p.Room2()
	}
	return p.Room()
}
