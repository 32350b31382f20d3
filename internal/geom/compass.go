package geom

import (
	"math"
	"strings"
)

const (
	North     = "north"
	Northeast = "northeast"
	East      = "east"
	Southeast = "southeast"
	South     = "south"
	Southwest = "southwest"
	West      = "west"
	Northwest = "northwest"
	Up        = "up"
	Down      = "down"
)

// compass lists the horizontal directions counter-clockwise starting at east,
// matching the sectors produced by atan2.
var compass = [8]string{East, Northeast, North, Northwest, West, Southwest, South, Southeast}

// DirectionForVector maps v onto the closest of the eight compass points. Vectors that
// are more vertical than horizontal map to up or down instead.
func DirectionForVector(v Vector) string {
	horizontal := math.Hypot(v.X, v.Y)
	if math.Abs(v.Z) > horizontal {
		if v.Z > 0 {
			return Up
		}
		return Down
	}

	angle := math.Atan2(v.Y, v.X)
	sector := int(math.Round(angle/(Tau/8))) % 8
	if sector < 0 {
		sector += 8
	}
	return compass[sector]
}

// IsDirection returns true if name is one of the compass directions, up or down.
func IsDirection(name string) bool {
	switch strings.ToLower(name) {
	case North, Northeast, East, Southeast, South, Southwest, West, Northwest, Up, Down:
		return true
	default:
		return false
	}
}
