package command

import (
	"fmt"

	"github.com/pixil98/go-realm/internal/perception"
)

type PerceptionConfig struct {
	HopFactor float64 `json:"hop_factor"`
	Horizon   float64 `json:"horizon"`
}

func (c *PerceptionConfig) validate() error {
	if err := c.attenuation().Validate(); err != nil {
		return fmt.Errorf("perception: %w", err)
	}
	return nil
}

// attenuation fills unset values with the defaults.
func (c *PerceptionConfig) attenuation() perception.Attenuation {
	a := perception.DefaultAttenuation()
	if c.HopFactor != 0 {
		a.HopFactor = c.HopFactor
	}
	if c.Horizon != 0 {
		a.Horizon = c.Horizon
	}
	return a
}
