package config

import (
	"github.com/rs/zerolog"

	customerrors "meeting-scheduler/errors"
	"meeting-scheduler/formatter"
)

// InputConfig names the CSV inputs.
type InputConfig struct {
	Reps        string `json:"reps"`
	Suppliers   string `json:"suppliers"`
	Preferences string `json:"preferences"`
}

// OutputConfig selects how the chosen schedule is rendered.
type OutputConfig struct {
	// Format is "text", "json" or "csv".
	Format string `json:"format"`
	// View is "supplier" or "rep".
	View string `json:"view"`
	// Path is the output file; empty writes to stdout.
	Path string `json:"path"`
}

func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.View == "" {
		c.View = string(formatter.ViewSupplier)
	}
}

func (c OutputConfig) Validate() error {
	switch c.Format {
	case "text", "json", "csv":
	default:
		return &customerrors.ConfigError{Field: "output.format", Value: c.Format, Err: customerrors.ErrInvalidConfig}
	}
	if _, err := formatter.ParseView(c.View); err != nil {
		return &customerrors.ConfigError{Field: "output.view", Value: c.View, Err: customerrors.ErrInvalidConfig}
	}
	return nil
}

// MetricsConfig controls Prometheus exposure. Both are off when empty.
type MetricsConfig struct {
	// Listen serves /metrics on this address while the run is in progress.
	Listen string `json:"listen"`
	// PushGateway receives the final metrics when set.
	PushGateway string `json:"push_gateway"`
	Job         string `json:"job"`
}

func (c *MetricsConfig) SetDefaults() {
	if c.Job == "" {
		c.Job = "meeting_scheduler"
	}
}

// LoggingConfig sets the minimum log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return &customerrors.ConfigError{Field: "logging.level", Value: c.Level, Err: customerrors.ErrInvalidConfig}
	}
	return nil
}
