package geom

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDirectionForVector(t *testing.T) {
	tests := map[string]struct {
		v   Vector
		exp string
	}{
		"north":            {v: Vector{Y: 1}, exp: North},
		"south":            {v: Vector{Y: -2}, exp: South},
		"east":             {v: Vector{X: 1}, exp: East},
		"west":             {v: Vector{X: -1}, exp: West},
		"northeast":        {v: Vector{X: 1, Y: 1}, exp: Northeast},
		"southwest":        {v: Vector{X: -1, Y: -1}, exp: Southwest},
		"northwest":        {v: Vector{X: -1, Y: 1}, exp: Northwest},
		"southeast":        {v: Vector{X: 1, Y: -1}, exp: Southeast},
		"mostly north":     {v: Vector{X: 0.2, Y: 1}, exp: North},
		"straight up":      {v: Vector{Z: 1}, exp: Up},
		"steep down":       {v: Vector{X: 1, Z: -3}, exp: Down},
		"shallow climb":    {v: Vector{Y: 2, Z: 1}, exp: North},
		"zero is east-ish": {v: Vector{}, exp: East},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "direction", DirectionForVector(tt.v), tt.exp)
		})
	}
}

func TestIsDirection(t *testing.T) {
	tests := map[string]struct {
		name string
		exp  bool
	}{
		"compass point":  {name: "north", exp: true},
		"mixed case":     {name: "SouthWest", exp: true},
		"vertical":       {name: "down", exp: true},
		"named exit":     {name: "door", exp: false},
		"out is special": {name: "out", exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "is direction", IsDirection(tt.name), tt.exp)
		})
	}
}
