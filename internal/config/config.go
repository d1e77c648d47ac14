package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 700
	DefaultHeight = 700
	DefaultFPS    = 60
	DefaultPeriod = 1.2
	DefaultDepth  = 0.12
	DefaultHue    = 0.0
	DefaultSteps  = 300
	DefaultScale  = 12.0
)

type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FPS     int     `yaml:"fps"`
	Period  float64 `yaml:"pulse_period"`
	Depth   float64 `yaml:"pulse_depth"`
	BaseHue float64 `yaml:"base_hue"`
	Glow    bool    `yaml:"glow"`
	Theme   string  `yaml:"theme"`
	Steps   int     `yaml:"curve_steps"`
	Scale   float64 `yaml:"base_scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Period:  DefaultPeriod,
		Depth:   DefaultDepth,
		BaseHue: DefaultHue,
		Glow:    true,
		Theme:   "crimson",
		Steps:   DefaultSteps,
		Scale:   DefaultScale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TickInterval returns the seconds per animation frame at the
// configured frame rate.
func (c *Config) TickInterval() float64 {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return 1.0 / float64(fps)
}
