package perception

import (
	"github.com/pixil98/go-realm/internal/geom"
)

// FarDistance is the distance beyond which an observer sees a movement "in the distance".
const FarDistance = 100

// MovementVisualEvent is a movement described relative to where the observer
// stands: at the origin, at the destination, or somewhere the movement is
// merely visible from.
type MovementVisualEvent struct {
	movement
}

func NewMovementVisualEvent(world Map, subject Subject, origin Room, strength float64, opts ...EventOpt) *MovementVisualEvent {
	return &MovementVisualEvent{movement: newMovement(world, subject, origin, strength, opts...)}
}

type visualData struct {
	Who       string
	Verb      Verb
	Exit      string
	Direction geom.Vector
}

var (
	departDirection = mustTemplate("depart-direction", `{{ .Who | capitalize }} {{ .Verb.Present }} {{ .Exit }}.`)
	departOutside   = mustTemplate("depart-outside", `{{ .Who | capitalize }} {{ .Verb.Present }} outside.`)
	departThrough   = mustTemplate("depart-through", `{{ .Who | capitalize }} {{ .Verb.Present }} through the {{ .Exit }}.`)
	departTo        = mustTemplate("depart-to", `{{ .Who | capitalize }} {{ .Verb.Present }} to the {{ .Exit }}.`)
	departCompass   = mustTemplate("depart-compass", `{{ .Who | capitalize }} {{ .Verb.Present }} {{ compass .Direction }}.`)
	arrive          = mustTemplate("arrive", `{{ .Who | capitalize }} {{ .Verb.Present }} to you.`)

	nearToward  = mustTemplate("near-toward", `You see {{ .Who }} {{ .Verb.Continuous }} toward you.`)
	nearAway    = mustTemplate("near-away", `You see {{ .Who }} {{ .Verb.Continuous }} away from you.`)
	nearLateral = mustTemplate("near-lateral", `You see {{ .Who }} {{ .Verb.Continuous }} {{ compass .Direction }}.`)
	farToward   = mustTemplate("far-toward", `In the distance, you see {{ .Who }} {{ .Verb.Continuous }} in your direction.`)
	farAway     = mustTemplate("far-away", `In the distance, you see {{ .Who }} {{ .Verb.Continuous }} away from you.`)
	farLateral  = mustTemplate("far-lateral", `In the distance, you see {{ .Who }} {{ .Verb.Continuous }} {{ compass .Direction }}.`)

	subjectBands = mustBands("subject",
		bandDef{0.9, `{{ .Name }}`},
		bandDef{0.8, `{{ .Distant }}`},
		bandDef{floor, `{{ .VeryDistant | default "someone" }}`},
	)
)

func (e *MovementVisualEvent) Describe(strength float64, room Room) string {
	switch {
	case room == e.origin:
		return e.describeDeparture(room)
	case e.destination != nil && room == e.destination:
		return execute(arrive, visualData{Who: e.subject.Name, Verb: e.verb})
	}

	data := visualData{
		Who:       subjectBands.render(strength, e.subject),
		Verb:      e.verb,
		Direction: e.direction,
	}

	vector := room.Position().Sub(e.origin.Position())
	angle := e.direction.Angle(vector)
	toward := angle < geom.Tau/8
	away := angle >= 3*geom.Tau/8

	if vector.Length() > FarDistance {
		switch {
		case toward:
			return execute(farToward, data)
		case away:
			return execute(farAway, data)
		default:
			return execute(farLateral, data)
		}
	}

	switch {
	case toward:
		return execute(nearToward, data)
	case away:
		return execute(nearAway, data)
	default:
		return execute(nearLateral, data)
	}
}

// describeDeparture names the portal leading to the destination, falling back
// to the compass direction of the movement.
func (e *MovementVisualEvent) describeDeparture(room Room) string {
	data := visualData{Who: e.subject.Name, Verb: e.verb, Direction: e.direction}

	if e.destination != nil {
		for _, p := range e.world.PortalsOf(room) {
			if p.Room() != e.destination && p.Room2() != e.destination {
				continue
			}

			data.Exit = p.NameFromRoom(room)
			switch {
			case geom.IsDirection(data.Exit):
				return execute(departDirection, data)
			case data.Exit == "out":
				return execute(departOutside, data)
			case p.CanOpenFromRoom(room):
				return execute(departThrough, data)
			default:
				return execute(departTo, data)
			}
		}

		if data.Direction.Length() == 0 {
			data.Direction = e.destination.Position().Sub(room.Position())
		}
	}

	return execute(departCompass, data)
}
