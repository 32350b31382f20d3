package perception

import (
	"github.com/pixil98/go-realm/internal/geom"
)

// movement is shared by both movement event shapes.
type movement struct {
	base
	subject     Subject
	verb        Verb
	destination Room
	direction   geom.Vector
}

func newMovement(world Map, subject Subject, origin Room, strength float64, opts ...EventOpt) movement {
	return movement{
		base:    newBase(world, origin, strength, opts...),
		subject: subject,
		verb:    DefaultVerb,
	}
}

func (m *movement) Subject() Subject {
	return m.subject
}

func (m *movement) Destination() Room {
	return m.destination
}

// SetDestination sets the room the subject is moving to. The destination
// perceives the event as strongly as the origin does.
func (m *movement) SetDestination(room Room) {
	m.destination = room
	if room != nil {
		m.addVisit(room, m.StrengthForRoom(m.origin))
	}
}

func (m *movement) Direction() geom.Vector {
	return m.direction
}

func (m *movement) SetDirection(v geom.Vector) {
	m.direction = v
}

func (m *movement) SetVerb(v Verb) {
	m.verb = v
}

func (m *movement) IsWithinSight(target, source Room) bool {
	return withinSight(m.origin, m.destination, target, source)
}

// Propagate spreads the event through every see-through portal along the line
// of sight.
func (m *movement) Propagate() {
	factor := m.atten.HopFactor
	m.spread(func(p Portal) (float64, bool) {
		return factor, p.CanSeeThrough()
	}, m.IsWithinSight)
}

// MovementEvent is a movement seen without regard for where the observer stands,
// described by how clearly the subject can be made out.
type MovementEvent struct {
	movement
}

var movementBands = mustBands("movement",
	bandDef{0.9, `You see {{ .Subject.Name }} {{ .Verb.Continuous }} {{ heading .Direction }}.`},
	bandDef{0.8, `You see {{ .Subject.Distant }} {{ .Verb.Continuous }} {{ heading .Direction }}.`},
	bandDef{0.6, `You see {{ .Subject.VeryDistant | default "someone" }} {{ .Verb.Continuous }} {{ heading .Direction }}.`},
	bandDef{floor, `You see a shape moving {{ heading .Direction }}.`},
)

func NewMovementEvent(world Map, subject Subject, origin Room, strength float64, opts ...EventOpt) *MovementEvent {
	return &MovementEvent{movement: newMovement(world, subject, origin, strength, opts...)}
}

func (e *MovementEvent) Describe(strength float64, _ Room) string {
	return movementBands.render(strength, movementData{
		Subject:   e.subject,
		Verb:      e.verb,
		Direction: e.direction,
	})
}

type movementData struct {
	Subject   Subject
	Verb      Verb
	Direction geom.Vector
}
