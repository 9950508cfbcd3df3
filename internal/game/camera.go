package game

import (
	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
)

// Camera follows the player with smooth lerp-based movement. The look-ahead
// offset grows with player speed so a faster squirrel sees further ahead.
type Camera struct {
	x, y float64

	viewportW float64
	lerpRate  float64

	// Look-ahead bounds: the player sits at baseOffset from the left edge
	// when slow and at maxOffset when at full speed.
	baseOffset float64
	maxOffset  float64
}

// NewCamera creates a camera for the given world viewport.
func NewCamera(cfg *config.Config) *Camera {
	return &Camera{
		viewportW:  cfg.World.ViewportWidth,
		lerpRate:   cfg.Camera.LerpRate,
		baseOffset: cfg.World.ViewportWidth * cfg.Camera.SlowLookahead,
		maxOffset:  cfg.World.ViewportWidth * cfg.Camera.FastLookahead,
	}
}

// Update advances the camera toward the player. speedPct is the player's
// speed as a percentage of maximum (0-100).
func (c *Camera) Update(dt, playerX, speedPct float64) {
	speedFactor := core.ClampF(speedPct/100.0, 0, 1)
	offset := core.Lerp(c.baseOffset, c.maxOffset, speedFactor)

	target := playerX - offset

	// Exponential smoothing toward the target.
	c.x += (target - c.x) * c.lerpRate * dt

	// Never show the void left of the world origin.
	if c.x < 0 {
		c.x = 0
	}
	c.y = 0
}

// OffsetX returns the camera x offset (what to subtract from world x).
func (c *Camera) OffsetX() float64 {
	return c.x
}

// OffsetY returns the camera y offset.
func (c *Camera) OffsetY() float64 {
	return c.y
}

// WorldToScreen converts world coordinates to view coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float64) (float64, float64) {
	return worldX - c.x, worldY - c.y
}

// Visible reports whether an object of the given width at worldX overlaps
// the view. Used by renderers and by the generator's spawn-ahead logic.
func (c *Camera) Visible(worldX, width float64) bool {
	screenX := worldX - c.x
	return screenX >= -width && screenX <= c.viewportW
}
