package perception

import (
	"fmt"
	"math"

	"github.com/pixil98/go-errors"
)

const (
	DefaultHopFactor = 0.85
	DefaultHorizon   = 0.1
)

// Attenuation controls how quickly an event fades with distance.
type Attenuation struct {
	// HopFactor multiplies the strength for every portal crossed.
	HopFactor float64 `json:"hop_factor"`
	// Horizon is the strength below which a room no longer perceives an event.
	Horizon float64 `json:"horizon"`
}

func DefaultAttenuation() Attenuation {
	return Attenuation{HopFactor: DefaultHopFactor, Horizon: DefaultHorizon}
}

func (a Attenuation) Validate() error {
	el := errors.NewErrorList()
	if a.HopFactor <= 0 || a.HopFactor >= 1 {
		el.Add(fmt.Errorf("hop_factor must be between 0 and 1 exclusive"))
	}
	if a.Horizon <= 0 || a.Horizon >= 1 {
		el.Add(fmt.Errorf("horizon must be between 0 and 1 exclusive"))
	}
	return el.Err()
}

// Decay returns strength after crossing hops portals.
func (a Attenuation) Decay(strength float64, hops int) float64 {
	return strength * math.Pow(a.HopFactor, float64(hops))
}

// MaxHops returns the furthest hop count at which strength is still at or above the horizon.
func (a Attenuation) MaxHops(strength float64) int {
	if strength < a.Horizon {
		return -1
	}
	return int(math.Floor(math.Log(a.Horizon/strength) / math.Log(a.HopFactor)))
}
