package game

import (
	"github.com/ferretworks/stash-dash/internal/core"
)

// GroundSegment is one fixed-width ground tile column. Edge flags mark
// adjacency to a gap; they affect rendering only, never collision.
type GroundSegment struct {
	X           float64
	IsLeftEdge  bool
	IsRightEdge bool
}

// Gap is a contiguous run of missing ground tiles. Gaps are never collided
// with directly; falling is derived from the absence of ground under the
// player's center.
type Gap struct {
	StartX float64
	Width  float64
}

// EndX returns the world x where the gap ends.
func (g Gap) EndX() float64 {
	return g.StartX + g.Width
}

// ContainsX reports whether x falls inside the gap.
func (g Gap) ContainsX(x float64) bool {
	return x >= g.StartX && x <= g.EndX()
}

// Platform is a floating traversable surface. Y is the platform top.
type Platform struct {
	X, Y  float64
	Width float64
}

const platformThickness = 16

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, platformThickness)
}

// Bush is a hazard. Its hitbox is smaller than its visual bounds so
// grazing the leaves doesn't count as a hit.
type Bush struct {
	X, Y          float64
	Width, Height float64
}

// NewBush creates a bush anchored so its base sits on groundY.
func NewBush(x, groundY float64) Bush {
	// Sprites carry transparent padding; nudge down so the bush visually
	// roots in the grass.
	const (
		width   = 64
		height  = 48
		yOffset = 12
	)
	return Bush{X: x, Y: groundY - height + yOffset, Width: width, Height: height}
}

// Hitbox returns the damage box, inset by 1/6 width and 1/4 height per side.
func (b Bush) Hitbox() core.Rect {
	full := core.NewRect(b.X, b.Y, b.Width, b.Height)
	return full.Inset(b.Width/6, b.Height/4)
}
