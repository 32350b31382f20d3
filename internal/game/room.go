package game

import (
	"github.com/pixil98/go-realm/internal/geom"
	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/storage"
)

const RoomType = "room"

const (
	RoomNoCeiling = "no-ceiling"
	RoomNoFloor   = "no-floor"
)

// Room is a location in the world. Rooms are connected by portals.
type Room struct {
	header

	Name        string
	Description string
	X, Y, Z     int
	FlagNames   []string
	Area        storage.Ref
	Portals     []storage.Ref
	Characters  []storage.Ref
	Items       []storage.Ref
	Triggers    []string
}

func (r *Room) Schema() storage.Schema {
	return storage.Schema{
		storage.String("name", &r.Name),
		storage.String("description", &r.Description),
		storage.Int("x", &r.X),
		storage.Int("y", &r.Y),
		storage.Int("z", &r.Z),
		storage.Strings("flags", &r.FlagNames),
		storage.Reference("area", &r.Area),
		storage.References("portals", &r.Portals),
		storage.References("characters", &r.Characters),
		storage.References("items", &r.Items),
		storage.Strings("triggers", &r.Triggers),
	}
}

func (r *Room) Position() geom.Point {
	return geom.Point{X: r.X, Y: r.Y, Z: r.Z}
}

func (r *Room) SetPosition(p geom.Point) {
	r.X, r.Y, r.Z = p.X, p.Y, p.Z
}

// Flags returns the structural flags that affect line of sight.
func (r *Room) Flags() perception.RoomFlags {
	var f perception.RoomFlags
	if hasFlag(r.FlagNames, RoomNoCeiling) {
		f |= perception.NoCeiling
	}
	if hasFlag(r.FlagNames, RoomNoFloor) {
		f |= perception.NoFloor
	}
	return f
}

func (r *Room) HasFlag(flag string) bool {
	return hasFlag(r.FlagNames, flag)
}

func (r *Room) SetFlag(flag string, on bool) {
	r.FlagNames = setFlag(r.FlagNames, flag, on)
}
