package perception

import (
	"math"

	"github.com/google/uuid"
)

// Event is something happening in a room that other rooms may perceive.
type Event interface {
	ID() uuid.UUID
	Origin() Room
	Strength() float64
	// Propagate fills the visit map with every room that perceives the event.
	Propagate()
	Visits() VisitMap
	// IsWithinSight reports whether an observer in source can see towards target.
	IsWithinSight(target, source Room) bool
	// Describe renders the event for an observer in room perceiving it at strength.
	Describe(strength float64, room Room) string
}

// VisitMap records the strength at which each room perceives an event.
type VisitMap map[Room]float64

// Add records strength for room if it is stronger than what is already recorded.
// It returns true if the map changed.
func (v VisitMap) Add(room Room, strength float64) bool {
	if cur, ok := v[room]; ok && cur >= strength {
		return false
	}
	v[room] = strength
	return true
}

type EventOpt func(*base)

// WithAttenuation overrides the default falloff of an event.
func WithAttenuation(a Attenuation) EventOpt {
	return func(b *base) {
		b.atten = a
	}
}

// WithID sets the event identifier instead of generating one.
func WithID(id uuid.UUID) EventOpt {
	return func(b *base) {
		b.id = id
	}
}

// base holds what every event shape shares: the origin, the visit map and the
// lazily explored hop distances used by StrengthForRoom.
type base struct {
	id       uuid.UUID
	world    Map
	origin   Room
	strength float64
	atten    Attenuation
	visits   VisitMap

	hops     map[Room]int
	frontier []Room
	depth    int
}

func newBase(world Map, origin Room, strength float64, opts ...EventOpt) base {
	b := base{
		id:       uuid.New(),
		world:    world,
		origin:   origin,
		strength: math.Min(strength, 1),
		atten:    DefaultAttenuation(),
		visits:   VisitMap{},
	}
	for _, opt := range opts {
		opt(&b)
	}

	b.visits[origin] = b.strength
	b.hops = map[Room]int{origin: 0}
	b.frontier = []Room{origin}
	return b
}

func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) Origin() Room {
	return b.origin
}

func (b *base) Strength() float64 {
	return b.strength
}

func (b *base) Visits() VisitMap {
	return b.visits
}

// StrengthForRoom returns the strength of the event in room based on its hop
// distance from the origin, or 0 if the room is beyond the horizon. Distances are
// explored breadth first only as far as needed to answer the query.
func (b *base) StrengthForRoom(room Room) float64 {
	maxHops := b.atten.MaxHops(b.strength)
	for {
		if h, ok := b.hops[room]; ok {
			s := b.atten.Decay(b.strength, h)
			if s < b.atten.Horizon && room != b.origin {
				return 0
			}
			return s
		}
		if len(b.frontier) == 0 || b.depth >= maxHops {
			return 0
		}
		b.expand()
	}
}

// expand explores one more layer of the hop distance map.
func (b *base) expand() {
	b.depth++
	var next []Room
	for _, r := range b.frontier {
		for _, p := range b.world.PortalsOf(r) {
			target := OppositeRoom(p, r)
			if target == nil {
				continue
			}
			if _, seen := b.hops[target]; seen {
				continue
			}
			b.hops[target] = b.depth
			next = append(next, target)
		}
	}
	b.frontier = next
}

// addVisit records a visit unless it falls below the horizon.
func (b *base) addVisit(room Room, strength float64) bool {
	if room == nil || strength < b.atten.Horizon {
		return false
	}
	return b.visits.Add(room, strength)
}

// passFunc returns the strength multiplier for crossing a portal, and false if
// the event cannot cross it at all.
type passFunc func(Portal) (float64, bool)

type sightFunc func(target, source Room) bool

// spread walks the portal graph outward from every room already visited, keeping
// the strongest strength reached for each room.
func (b *base) spread(pass passFunc, sight sightFunc) {
	queue := make([]Room, 0, len(b.visits))
	for r := range b.visits {
		queue = append(queue, r)
	}

	for len(queue) > 0 {
		room := queue[0]
		queue = queue[1:]
		s := b.visits[room]

		for _, p := range b.world.PortalsOf(room) {
			factor, ok := pass(p)
			if !ok {
				continue
			}
			target := OppositeRoom(p, room)
			if target == nil {
				continue
			}
			if sight != nil && !sight(target, room) {
				continue
			}
			if b.addVisit(target, s*factor) {
				queue = append(queue, target)
			}
		}
	}
}
