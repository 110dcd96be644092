package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rotor/v2/orient"
)

// Config is the scene and harness configuration.
type Config struct {
	Representation        string        `yaml:"representation"`
	Speeds                []float64     `yaml:"speeds"`
	RingPoints            int           `yaml:"ring_points"`
	Axes                  bool          `yaml:"axes"`
	AxisHalfLength        float64       `yaml:"axis_half_length"`
	Frames                int           `yaml:"frames"`
	IntervalMs            int           `yaml:"interval_ms"`
	ReorthonormalizeEvery int           `yaml:"reorthonormalize_every"`
	View                  ViewConfig    `yaml:"view"`
	Logging               LoggingConfig `yaml:"logging"`
}

// ViewConfig is the fixed camera the scene is projected through.
type ViewConfig struct {
	ElevationDeg float64 `yaml:"elevation_deg"`
	AzimuthDeg   float64 `yaml:"azimuth_deg"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogPath string `yaml:"log_path,omitempty"`
}

// Default returns the built-in scene: three rings with their spin axes
// turning at (0.03, 0.02, 0.04) rad per frame.
func Default() *Config {
	s := orient.DefaultSpeeds
	return &Config{
		Representation: orient.Quat.String(),
		Speeds:         []float64{s.X, s.Y, s.Z},
		RingPoints:     orient.DefaultRingPoints,
		Axes:           true,
		AxisHalfLength: orient.DefaultAxisHalfLength,
		IntervalMs:     20,
		View:           ViewConfig{ElevationDeg: 25, AzimuthDeg: 45},
		Logging:        LoggingConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file on top of Default and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return config, nil
}

// Validate checks the fields the rotation core and the renderer depend on.
func (c *Config) Validate() error {
	if _, err := c.RepresentationValue(); err != nil {
		return err
	}
	if _, err := c.AxisSpeeds(); err != nil {
		return err
	}
	if c.RingPoints < 2 {
		return fmt.Errorf("ring_points must be >= 2, got %d", c.RingPoints)
	}
	if c.Axes && !(c.AxisHalfLength > 0) {
		return fmt.Errorf("axis_half_length must be > 0, got %v", c.AxisHalfLength)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must be >= 0, got %d", c.Frames)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("interval_ms must be > 0, got %d", c.IntervalMs)
	}
	if c.ReorthonormalizeEvery < 0 {
		return fmt.Errorf("reorthonormalize_every must be >= 0, got %d", c.ReorthonormalizeEvery)
	}
	return nil
}

func (c *Config) RepresentationValue() (orient.Representation, error) {
	return orient.ParseRepresentation(c.Representation)
}

func (c *Config) AxisSpeeds() (orient.AxisSpeeds, error) {
	return orient.ParseSpeeds(c.Speeds)
}

// Accumulator builds the orientation accumulator the config describes.
func (c *Config) Accumulator() (orient.Accumulator, error) {
	rep, err := c.RepresentationValue()
	if err != nil {
		return nil, err
	}
	speeds, err := c.AxisSpeeds()
	if err != nil {
		return nil, err
	}
	return orient.NewAccumulator(rep, speeds, c.ReorthonormalizeEvery)
}

// Scene builds the geometry objects the config describes.
func (c *Config) Scene() ([]*orient.Geometry, error) {
	return orient.DefaultScene(c.RingPoints, c.Axes, c.AxisHalfLength)
}
