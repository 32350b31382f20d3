package perception

import "github.com/pixil98/go-realm/internal/geom"

// withinSight implements line of sight for events anchored at an origin and an
// optional destination. An observer in source can see towards target when target
// lies straight ahead of the anchor-to-source line, or above it through a missing
// ceiling, or below it through a missing floor.
func withinSight(origin, destination, target, source Room) bool {
	if source == origin || (destination != nil && source == destination) {
		return true
	}

	targetVector := target.Position().Sub(source.Position()).Normalized()
	if inLine(origin, source, targetVector) {
		return true
	}
	if destination != nil && inLine(destination, source, targetVector) {
		return true
	}
	return false
}

func inLine(anchor, source Room, targetVector geom.Vector) bool {
	sourceVector := source.Position().Sub(anchor.Position()).Normalized()
	if sourceVector.ApproxEqual(targetVector) {
		return true
	}

	flags := source.Flags()
	if flags.Has(NoCeiling) && targetVector.Z >= sourceVector.Z {
		return true
	}
	if flags.Has(NoFloor) && targetVector.Z <= sourceVector.Z {
		return true
	}
	return false
}
