package command

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pixil98/go-realm/internal/metrics"
)

type MetricsConfig struct {
	// Port serves /metrics when set. Metrics are still collected when it is 0.
	Port int `json:"port"`
}

func (c *MetricsConfig) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("metrics: port %d out of range", c.Port)
	}
	return nil
}

func (c *MetricsConfig) buildServer(gatherer prometheus.Gatherer) *metrics.Server {
	if c.Port == 0 {
		return nil
	}
	return metrics.NewServer(c.Port, gatherer)
}
