package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-realm/internal/display"
	"github.com/pixil98/go-realm/internal/perception"
	"github.com/pixil98/go-realm/internal/storage"
)

// Emit propagates ev and delivers its description to every player character
// who perceives it, except those in exclude.
func (r *Realm) Emit(ctx context.Context, ev perception.Event, exclude ...storage.Key) error {
	ev.Propagate()
	sent, err := r.Dispatch(ev, exclude...)

	slog.DebugContext(ctx, "event dispatched",
		"event", ev.ID().String(),
		"kind", eventKind(ev),
		"rooms", len(ev.Visits()),
		"messages", sent)
	return err
}

// Dispatch renders ev once per visited room and publishes the text to each
// player character present. It returns the number of messages sent.
func (r *Realm) Dispatch(ev perception.Event, exclude ...storage.Key) (int, error) {
	if r.publisher == nil {
		return 0, nil
	}

	el := errors.NewErrorList()
	sent := 0
	for room, strength := range ev.Visits() {
		rm, ok := room.(*Room)
		if !ok {
			continue
		}

		var text string
		for _, ref := range rm.Characters {
			if slices.Contains(exclude, ref.Key()) {
				continue
			}
			c := r.CharacterOf(ref)
			if c == nil || !c.IsPlayer {
				continue
			}

			if text == "" {
				text = ev.Describe(strength, rm)
				if text == "" {
					break
				}
				text = display.Wrap(text)
			}

			if err := r.publisher.PublishToCharacter(c.Key(), []byte(text)); err != nil {
				el.Add(fmt.Errorf("publishing to %s: %w", c.Key(), err))
				continue
			}
			sent++
		}
	}

	r.metrics.EventDispatched(eventKind(ev), sent)
	return sent, el.Err()
}

func eventKind(ev perception.Event) string {
	switch ev.(type) {
	case *perception.MovementVisualEvent:
		return "movement-visual"
	case *perception.MovementEvent:
		return "movement"
	case *perception.SoundEvent:
		return "sound"
	default:
		return "other"
	}
}
