package perception

import "github.com/pixil98/go-realm/internal/geom"

// SoundEvent is a noise that carries through every portal. Closed portals that
// do not let sound through muffle it twice as much as an open passage.
type SoundEvent struct {
	base
	sound string
}

var soundBands = mustBands("sound",
	bandDef{0.9, `You hear {{ .Sound }}.`},
	bandDef{0.6, `You hear {{ .Sound }} {{ whence .From }}.`},
	bandDef{0.3, `In the distance, you hear {{ .Sound }} {{ whence .From }}.`},
	bandDef{floor, `You hear a faint sound {{ whence .From }}.`},
)

// NewSoundEvent creates a sound described as sound, e.g. "a bell ringing".
func NewSoundEvent(world Map, sound string, origin Room, strength float64, opts ...EventOpt) *SoundEvent {
	return &SoundEvent{
		base:  newBase(world, origin, strength, opts...),
		sound: sound,
	}
}

// IsWithinSight is always true; sound is not bound to a line of sight.
func (e *SoundEvent) IsWithinSight(_, _ Room) bool {
	return true
}

func (e *SoundEvent) Propagate() {
	open := e.atten.HopFactor
	muffled := open * open
	e.spread(func(p Portal) (float64, bool) {
		if p.CanHearThrough() {
			return open, true
		}
		return muffled, true
	}, nil)
}

func (e *SoundEvent) Describe(strength float64, room Room) string {
	return soundBands.render(strength, struct {
		Sound string
		From  geom.Vector
	}{
		Sound: e.sound,
		From:  e.origin.Position().Sub(room.Position()),
	})
}
