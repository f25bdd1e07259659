package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/inletpara/inletpara/internal/compute"
	"github.com/inletpara/inletpara/internal/session"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultHTTPPort          = 8080
	DefaultBroadcastInterval = 5 * time.Second
	DefaultMaxInlets         = session.DefaultMaxInlets
	DefaultInletCount        = 2
)

// Config is the top-level InletPara configuration.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`

	// Inlets is the optional seed collection. When present it replaces the
	// session.count default-valued seed; fields left out of an entry inherit
	// from session.defaults.
	Inlets []InletConfig `yaml:"inlets"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// HTTPPort is the port the REST API, report endpoints, Prometheus
	// exposition, and WebSocket hub listen on (default 8080).
	HTTPPort int `yaml:"http_port"`

	// BroadcastInterval controls how often the WebSocket hub pushes the
	// current results to connected clients (default 5s).
	BroadcastInterval time.Duration `yaml:"broadcast_interval"`
}

// SessionConfig controls the measurement collection.
type SessionConfig struct {
	// MaxInlets caps how many inlet configurations the session may hold
	// (default 10).
	MaxInlets int `yaml:"max_inlets"`

	// Count is how many default-valued inlets to seed when no explicit
	// inlets list is given (default 2).
	Count int `yaml:"count"`

	// Defaults overrides individual fields of the built-in measurement
	// template used for newly added inlets.
	Defaults InletConfig `yaml:"defaults"`
}

// InletConfig is one inlet entry in the config file. Scalar fields are
// pointers so an absent field can be told apart from an explicit zero and
// inherit the session default instead.
type InletConfig struct {
	Name                     string   `yaml:"name"`
	Gamma                    *float64 `yaml:"gamma"`
	Mach                     *float64 `yaml:"mach"`
	TheoreticalPressureRatio *float64 `yaml:"theoretical_pressure_ratio"`
	TotalPressureIn          *float64 `yaml:"total_pressure_in"`
	TotalPressureOut         *float64 `yaml:"total_pressure_out"`
	TotalTempIn              *float64 `yaml:"total_temp_in"`
	TotalTempOut             *float64 `yaml:"total_temp_out"`
	StaticTempIn             *float64 `yaml:"static_temp_in"`
	StaticTempOut            *float64 `yaml:"static_temp_out"`

	// Extrema, when present, replaces the template's exit-plane pressure
	// distribution wholesale. `extrema: none` drops it, which disables the
	// distortion index for this inlet.
	Extrema *ExtremaConfig `yaml:"extrema"`
}

// ExtremaConfig is the exit-plane pressure distribution of one inlet entry.
type ExtremaConfig struct {
	Max float64 `yaml:"max"`
	Min float64 `yaml:"min"`
	Avg float64 `yaml:"avg"`

	// None drops the extrema entirely (yaml: `extrema: {none: true}`).
	None bool `yaml:"none"`
}

// Measurement merges the entry over base, taking base's value for every
// absent field.
func (ic InletConfig) Measurement(base compute.Measurement) compute.Measurement {
	m := base
	if ic.Name != "" {
		m.Name = ic.Name
	}
	setIf(&m.Gamma, ic.Gamma)
	setIf(&m.Mach, ic.Mach)
	setIf(&m.TheoreticalPressureRatio, ic.TheoreticalPressureRatio)
	setIf(&m.TotalPressureIn, ic.TotalPressureIn)
	setIf(&m.TotalPressureOut, ic.TotalPressureOut)
	setIf(&m.TotalTempIn, ic.TotalTempIn)
	setIf(&m.TotalTempOut, ic.TotalTempOut)
	setIf(&m.StaticTempIn, ic.StaticTempIn)
	setIf(&m.StaticTempOut, ic.StaticTempOut)
	if ic.Extrema != nil {
		if ic.Extrema.None {
			m.Extrema = nil
		} else {
			m.Extrema = &compute.Extrema{
				Max: ic.Extrema.Max,
				Min: ic.Extrema.Min,
				Avg: ic.Extrema.Avg,
			}
		}
	} else if base.Extrema != nil {
		e := *base.Extrema
		m.Extrema = &e
	}
	return m
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// DefaultMeasurement returns the template for newly added inlets: the
// built-in session defaults with the session.defaults overrides applied.
func (c *Config) DefaultMeasurement() compute.Measurement {
	return c.Session.Defaults.Measurement(session.Defaults())
}

// Seed returns the initial measurement collection: the explicit inlets list
// when present, otherwise session.count copies of the default template named
// by position.
func (c *Config) Seed() []compute.Measurement {
	base := c.DefaultMeasurement()

	if len(c.Inlets) > 0 {
		out := make([]compute.Measurement, len(c.Inlets))
		for i, ic := range c.Inlets {
			m := ic.Measurement(base)
			if m.Name == "" {
				m.Name = fmt.Sprintf("Inlet %d", i+1)
			}
			out[i] = m
		}
		return out
	}

	out := make([]compute.Measurement, c.Session.Count)
	for i := range out {
		m := base
		if m.Extrema != nil {
			e := *m.Extrema
			m.Extrema = &e
		}
		m.Name = fmt.Sprintf("Inlet %d", i+1)
		out[i] = m
	}
	return out
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with sensible defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return defaults()
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:          DefaultHTTPPort,
			BroadcastInterval: DefaultBroadcastInterval,
		},
		Session: SessionConfig{
			MaxInlets: DefaultMaxInlets,
			Count:     DefaultInletCount,
		},
	}
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range [1, 65535]", cfg.Server.HTTPPort)
	}
	if cfg.Server.BroadcastInterval <= 0 {
		return fmt.Errorf("server.broadcast_interval must be positive")
	}
	if cfg.Session.MaxInlets < 1 || cfg.Session.MaxInlets > 100 {
		return fmt.Errorf("session.max_inlets %d is out of range [1, 100]", cfg.Session.MaxInlets)
	}
	if cfg.Session.Count < 1 || cfg.Session.Count > cfg.Session.MaxInlets {
		return fmt.Errorf("session.count %d is out of range [1, %d]", cfg.Session.Count, cfg.Session.MaxInlets)
	}
	if len(cfg.Inlets) > cfg.Session.MaxInlets {
		return fmt.Errorf("inlets: %d entries exceed session.max_inlets %d", len(cfg.Inlets), cfg.Session.MaxInlets)
	}
	return nil
}
