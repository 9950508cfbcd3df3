package game

import (
	"math"
	"testing"

	"github.com/ferretworks/stash-dash/internal/config"
)

func TestCameraNeverNegative(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(&cfg)

	// Player near the world origin: the target offset would be negative.
	for i := 0; i < 300; i++ {
		cam.Update(1.0/60, 100, 0)
		if cam.OffsetX() < 0 {
			t.Fatalf("camera offset went negative: %f", cam.OffsetX())
		}
	}
}

func TestCameraConvergesToTarget(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(&cfg)

	// Stationary player far from origin; the camera should settle at
	// playerX minus the slow look-ahead offset.
	playerX := 5000.0
	for i := 0; i < 600; i++ {
		cam.Update(1.0/60, playerX, 0)
	}

	want := playerX - cfg.World.ViewportWidth*cfg.Camera.SlowLookahead
	if math.Abs(cam.OffsetX()-want) > 1.0 {
		t.Errorf("camera settled at %f, want ~%f", cam.OffsetX(), want)
	}
}

func TestCameraLookaheadGrowsWithSpeed(t *testing.T) {
	cfg := config.Default()

	slow := NewCamera(&cfg)
	fast := NewCamera(&cfg)
	playerX := 5000.0
	for i := 0; i < 600; i++ {
		slow.Update(1.0/60, playerX, 0)
		fast.Update(1.0/60, playerX, 100)
	}

	// At full speed the camera sits further back from the player, showing
	// more of what's ahead.
	if fast.OffsetX() >= slow.OffsetX() {
		t.Errorf("fast offset %f should be less than slow offset %f",
			fast.OffsetX(), slow.OffsetX())
	}
}

func TestCameraSmoothing(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(&cfg)

	// Settle, then teleport the target: the camera must not jump in a
	// single tick.
	for i := 0; i < 600; i++ {
		cam.Update(1.0/60, 2000, 0)
	}
	before := cam.OffsetX()

	cam.Update(1.0/60, 4000, 0)
	moved := cam.OffsetX() - before
	if moved >= 2000 {
		t.Errorf("camera jumped %f units in one tick", moved)
	}
	if moved <= 0 {
		t.Errorf("camera did not move toward new target, delta=%f", moved)
	}
}

func TestWorldToScreen(t *testing.T) {
	cfg := config.Default()
	cam := NewCamera(&cfg)
	for i := 0; i < 600; i++ {
		cam.Update(1.0/60, 3000, 0)
	}

	x, y := cam.WorldToScreen(3000, 100)
	if x != 3000-cam.OffsetX() {
		t.Errorf("WorldToScreen x = %f, want %f", x, 3000-cam.OffsetX())
	}
	if y != 100 {
		t.Errorf("WorldToScreen y = %f, want 100", y)
	}
}
