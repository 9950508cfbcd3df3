package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.World.GroundY != 584 {
		t.Errorf("GroundY = %f, want 584", cfg.World.GroundY)
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Errorf("JumpImpulse should be negative (upward), got %f", cfg.Physics.JumpImpulse)
	}
	if cfg.Physics.GapGravity <= cfg.Physics.Gravity {
		t.Errorf("GapGravity (%f) should exceed normal gravity (%f)",
			cfg.Physics.GapGravity, cfg.Physics.Gravity)
	}
	if cfg.Player.MaxLives != 3 {
		t.Errorf("MaxLives = %d, want 3", cfg.Player.MaxLives)
	}
	if len(cfg.Generator.PlatformWidths) == 0 {
		t.Error("PlatformWidths should not be empty")
	}
	if len(cfg.Run.LifeMilestones) == 0 {
		t.Error("LifeMilestones should not be empty")
	}
	for i := 1; i < len(cfg.Run.LifeMilestones); i++ {
		if cfg.Run.LifeMilestones[i] <= cfg.Run.LifeMilestones[i-1] {
			t.Errorf("LifeMilestones not strictly increasing at index %d", i)
		}
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded Config
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	hard := Default()
	if embedded.World != hard.World {
		t.Errorf("World differs: embedded=%+v hardcoded=%+v", embedded.World, hard.World)
	}
	if embedded.Physics != hard.Physics {
		t.Errorf("Physics differs: embedded=%+v hardcoded=%+v", embedded.Physics, hard.Physics)
	}
	if embedded.Player != hard.Player {
		t.Errorf("Player differs: embedded=%+v hardcoded=%+v", embedded.Player, hard.Player)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := `
world:
  viewport_width: 1024
  viewport_height: 768
  ground_y: 700
physics:
  base_speed: 300
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.World.ViewportWidth != 1024 {
		t.Errorf("ViewportWidth = %f, want 1024", cfg.World.ViewportWidth)
	}
	if cfg.Physics.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %f, want 300", cfg.Physics.BaseSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// With no custom path and no local configs dir, Load should produce
	// the embedded defaults.
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd) //nolint:errcheck
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.World.GroundY != 584 {
		t.Errorf("fallback GroundY = %f, want 584", cfg.World.GroundY)
	}
}
