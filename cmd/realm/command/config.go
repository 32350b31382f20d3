package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string           `json:"tick_interval"`
	Storage      StorageConfig    `json:"storage"`
	Nats         NatsConfig       `json:"nats"`
	Metrics      MetricsConfig    `json:"metrics"`
	Perception   PerceptionConfig `json:"perception"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if _, err := c.tickInterval(); err != nil {
		el.Add(err)
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Metrics.validate())
	el.Add(c.Perception.validate())

	return el.Err()
}

func (c *Config) tickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if d < time.Second {
		return 0, fmt.Errorf("tick_interval must be at least 1 second")
	}
	return d, nil
}
