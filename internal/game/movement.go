package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/script"
	"github.com/pixil98/go-realm/internal/storage"
)

const (
	TriggerOnExit  = "onexit"
	TriggerOnEntry = "onentry"
)

// MoveCharacter moves c through portal p into the room on the other side. The
// origin room's onexit and the destination's onentry triggers may abort the
// move. Everyone who can see the move, except c, is told about it.
func (r *Realm) MoveCharacter(ctx context.Context, c *Character, p *Portal) error {
	from := r.RoomOf(c.Room)
	if from == nil {
		return fmt.Errorf("%w: room of %s", ErrEntityNotFound, c.Key())
	}
	if p.Side(from.Key()) == 0 {
		return fmt.Errorf("%w: %s does not lead from %s", ErrEntityNotFound, p.Key(), from.Key())
	}
	to := r.RoomOf(p.Opposite(from.Key()))
	if to == nil {
		return fmt.Errorf("%w: destination of %s", ErrEntityNotFound, p.Key())
	}
	if !p.IsPassable() {
		return fmt.Errorf("%w: %s", ErrPortalClosed, p.NameFrom(from.Key()))
	}

	if !r.invoke(from.Key(), from.Triggers, TriggerOnExit, c, p) {
		return ErrMovementAborted
	}
	if !r.invoke(to.Key(), to.Triggers, TriggerOnEntry, c, p) {
		return ErrMovementAborted
	}

	r.mu.Lock()
	from.Characters = withoutRef(from.Characters, c.Key())
	to.Characters = withRef(to.Characters, c.Key())
	c.Room = storage.NewResolvedRef(to.Key())
	r.mu.Unlock()

	r.MarkModified(from)
	r.MarkModified(to)
	r.MarkModified(c)

	slog.DebugContext(ctx, "character moved", "character", c.Key().String(), "from", from.Key().String(), "to", to.Key().String())

	ev := perception.NewMovementVisualEvent(r, c.Subject(), from, 1, perception.WithAttenuation(r.atten))
	ev.SetDestination(to)
	ev.SetDirection(to.Position().Sub(from.Position()))
	return r.Emit(ctx, ev, c.Key())
}

// MakeSound emits a sound from room, heard by everyone within range.
func (r *Realm) MakeSound(ctx context.Context, room *Room, sound string, strength float64) error {
	ev := perception.NewSoundEvent(r, sound, room, strength, perception.WithAttenuation(r.atten))
	return r.Emit(ctx, ev)
}

func (r *Realm) invoke(owner storage.Key, triggers []string, name string, subject any, objects ...any) bool {
	return r.triggers.Invoke(triggers, script.Call{
		Owner:   owner,
		Name:    name,
		Subject: subject,
		Objects: objects,
	})
}
