package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"meeting-scheduler/calendar"
	"meeting-scheduler/scheduler"
)

// EnvPrefix marks environment overrides, e.g. MSC_SCHEDULER__REP_CAP=10.
const EnvPrefix = "MSC_"

type Config struct {
	Scheduler scheduler.Options `json:"scheduler"`
	Calendar  calendar.Calendar `json:"calendar"`
	Input     InputConfig       `json:"input"`
	Output    OutputConfig      `json:"output"`
	Metrics   MetricsConfig     `json:"metrics"`
	Logging   LoggingConfig     `json:"logging"`
}

// Load reads an optional YAML or JSON file, applies MSC_ environment
// overrides, fills defaults and validates. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Config{Scheduler: scheduler.DefaultOptions()}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every section left empty by the file and environment.
func (c *Config) SetDefaults() {
	if len(c.Calendar.Days) == 0 {
		c.Calendar = calendar.Default()
	}
	c.Calendar.Normalize()
	c.Output.SetDefaults()
	c.Metrics.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.Calendar.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
