package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-realm/internal/messaging"
)

// NatsConfig configures the embedded broker that carries perception text to
// character sessions.
type NatsConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`

	// SubjectPrefix leads every character subject. Defaults to "realm".
	SubjectPrefix string `json:"subject_prefix"`
}

func (c *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if _, err := c.startTimeout(); err != nil {
		el.Add(err)
	}
	if c.Port < -1 || c.Port > 65535 {
		el.Add(fmt.Errorf("nats: port %d out of range", c.Port))
	}
	if c.SubjectPrefix != "" {
		if err := messaging.ValidateSubjectPrefix(c.SubjectPrefix); err != nil {
			el.Add(fmt.Errorf("nats: %w", err))
		}
	}

	return el.Err()
}

func (c *NatsConfig) startTimeout() (time.Duration, error) {
	if c.StartTimeout == "" {
		return messaging.DefaultStartTimeout, nil
	}
	d, err := time.ParseDuration(c.StartTimeout)
	if err != nil {
		return 0, fmt.Errorf("nats: parsing start_timeout: %w", err)
	}
	return d, nil
}

func (c *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	timeout, err := c.startTimeout()
	if err != nil {
		return nil, err
	}

	opts := []messaging.NatsServerOpt{messaging.WithStartTimeout(timeout)}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}
	return messaging.NewNatsServer(opts...)
}

func (c *NatsConfig) buildPublisher(bus messaging.Bus) *messaging.NatsPublisher {
	var opts []messaging.NatsPublisherOpt
	if c.SubjectPrefix != "" {
		opts = append(opts, messaging.WithSubjectPrefix(c.SubjectPrefix))
	}
	return messaging.NewNatsPublisher(bus, opts...)
}
