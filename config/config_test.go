package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rotor/v2/orient"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rotor.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	configContent := `
representation: euler
speeds: [0.1, 0.2, 0.3]
ring_points: 200
axes: false
frames: 1000
interval_ms: 30
reorthonormalize_every: 50
view:
  elevation_deg: 10
  azimuth_deg: -60
logging:
  level: debug
  log_path: /tmp/rotor-logs
`
	config, err := LoadConfig(writeConfig(t, configContent))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Representation != "euler" {
		t.Errorf("Expected representation euler, got %s", config.Representation)
	}
	if config.RingPoints != 200 || config.Axes || config.Frames != 1000 || config.IntervalMs != 30 {
		t.Errorf("Unexpected scene settings: %+v", config)
	}
	if config.ReorthonormalizeEvery != 50 {
		t.Errorf("Expected reorthonormalize_every 50, got %d", config.ReorthonormalizeEvery)
	}
	if config.View.ElevationDeg != 10 || config.View.AzimuthDeg != -60 {
		t.Errorf("Unexpected view: %+v", config.View)
	}
	if config.Logging.Level != "debug" || config.Logging.LogPath != "/tmp/rotor-logs" {
		t.Errorf("Unexpected logging: %+v", config.Logging)
	}
	// Not set in the file, so the default survives.
	if config.AxisHalfLength != orient.DefaultAxisHalfLength {
		t.Errorf("Expected default axis_half_length, got %v", config.AxisHalfLength)
	}

	acc, err := config.Accumulator()
	if err != nil {
		t.Fatalf("Accumulator failed: %v", err)
	}
	if acc.Representation() != orient.Euler {
		t.Errorf("Expected euler accumulator, got %v", acc.Representation())
	}
	acc.Advance()
	if a := acc.Angles(); a != (orient.AngularState{X: 0.1, Y: 0.2, Z: 0.3}) {
		t.Errorf("Unexpected angles after one tick: %+v", a)
	}

	scene, err := config.Scene()
	if err != nil {
		t.Fatalf("Scene failed: %v", err)
	}
	if len(scene) != 3 {
		t.Errorf("Expected 3 rings without axes, got %d objects", len(scene))
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	speeds, err := c.AxisSpeeds()
	if err != nil || speeds != orient.DefaultSpeeds {
		t.Fatalf("Default speeds = %+v, %v", speeds, err)
	}
	scene, err := c.Scene()
	if err != nil || len(scene) != 6 {
		t.Fatalf("Default scene: %d objects, %v", len(scene), err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short speeds", "speeds: [0.1, 0.2]\n", "malformed axis speeds"},
		{"long speeds", "speeds: [0.1, 0.2, 0.3, 0.4]\n", "malformed axis speeds"},
		{"representation", "representation: rodrigues\n", "unknown representation"},
		{"ring points", "ring_points: 1\n", "ring_points"},
		{"interval", "interval_ms: 0\n", "interval_ms"},
		{"frames", "frames: -5\n", "frames"},
		{"axis length", "axis_half_length: 0\n", "axis_half_length"},
		{"yaml", "speeds: [0.1,\n", "error parsing config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	_, err := LoadConfig(writeConfig(t, "speeds: [1]\n"))
	if !errors.Is(err, orient.ErrMalformedSpeeds) {
		t.Errorf("Expected ErrMalformedSpeeds in chain, got %v", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestShippedConfigMatchesDefault(t *testing.T) {
	config, err := LoadConfig(filepath.Join("..", "configs", "rotor.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	def := Default()
	if config.Representation != def.Representation || config.RingPoints != def.RingPoints ||
		config.IntervalMs != def.IntervalMs || config.View != def.View || config.Axes != def.Axes {
		t.Errorf("shipped config %+v differs from default %+v", config, def)
	}
	speeds, err := config.AxisSpeeds()
	if err != nil || speeds != orient.DefaultSpeeds {
		t.Errorf("shipped speeds = %+v, %v", speeds, err)
	}
}
