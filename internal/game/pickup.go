package game

import (
	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
)

// Tier is a yarn color group. Higher tiers are worth more points and
// unlock as the stash grows; rare can appear at any time.
type Tier int

const (
	TierBasic Tier = iota
	TierMid
	TierLate
	TierRare
)

// Points returns the stash value of a pickup in this tier.
func (t Tier) Points() int {
	switch t {
	case TierMid:
		return 2
	case TierLate:
		return 3
	case TierRare:
		return 5
	default:
		return 1
	}
}

// MinStash returns the stash count required before this tier may spawn.
// Rare has no threshold; it is gated by its own spawn chance instead.
func (t Tier) MinStash() int {
	switch t {
	case TierMid:
		return 10
	case TierLate:
		return 25
	default:
		return 0
	}
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierMid:
		return "mid"
	case TierLate:
		return "late"
	case TierRare:
		return "rare"
	default:
		return "unknown"
	}
}

// tierPalettes holds the render colors per tier. The original art had
// distinct yarn colors per tier; in the terminal each color is one cell hue.
var tierPalettes = map[Tier][]core.Color{
	TierBasic: {core.ColorRed, core.ColorGreen, core.ColorBlue},
	TierMid:   {core.ColorCyan, core.ColorMagenta, core.ColorYellow, core.ColorGray},
	TierLate:  {core.ColorOrange, core.ColorBrightMagenta, core.ColorBrightGreen, core.ColorBrightCyan, core.ColorBrightRed, core.ColorBrown},
	TierRare:  {core.ColorBrightWhite},
}

// tierForStash returns the highest non-rare tier unlocked at the given
// stash count.
func tierForStash(stash int) Tier {
	tier := TierBasic
	for _, t := range []Tier{TierMid, TierLate} {
		if stash >= t.MinStash() {
			tier = t
		}
	}
	return tier
}

// Scatter physics constants, tuned against the original's per-frame values.
const (
	scatterGravity = 1080 // units/s²
	scatterDrag    = 0.6  // horizontal damping per second
)

// Pickup is a collectible yarn skein. X, Y is the top-left corner in world
// units. A scattered pickup follows a ballistic trajectory with a
// time-to-live after being knocked loose by a hazard hit.
type Pickup struct {
	X, Y   float64
	Tier   Tier
	Points int
	Hue    core.Color

	Scattered  bool
	VelX, VelY float64
	ScatterAge float64
}

// Rect returns the pickup's bounding box.
func (p Pickup) Rect(size float64) core.Rect {
	return core.NewRect(p.X, p.Y, size, size)
}

// StepScatter advances ballistic motion for a scattered pickup.
func (p *Pickup) StepScatter(dt float64) {
	if !p.Scattered {
		return
	}
	p.X += p.VelX * dt
	p.Y += p.VelY * dt
	p.VelY += scatterGravity * dt
	p.VelX -= p.VelX * scatterDrag * dt
	p.ScatterAge += dt
}

// Expired reports whether a scattered pickup has passed its time-to-live.
func (p Pickup) Expired(ttl float64) bool {
	return p.Scattered && p.ScatterAge >= ttl
}

// Collectible reports whether the pickup can currently be collected. A
// freshly scattered pickup gets a grace period so it visibly spreads out
// before it can be re-grabbed.
func (p Pickup) Collectible(grace float64) bool {
	if !p.Scattered {
		return true
	}
	return p.ScatterAge >= grace
}

// spawnPickup creates a pickup at (x, y) with a tier chosen from what the
// unlocked progression allows. Every spawn first rolls the rare chance;
// otherwise the tier is picked weighted by its palette size, matching the
// original's flat choice across all available colors.
func spawnPickup(rng core.Rand, cfg *config.PickupConfig, x, y float64, unlocked Tier) Pickup {
	if rng.Chance(cfg.RareChance) {
		return Pickup{X: x, Y: y, Tier: TierRare, Points: TierRare.Points(), Hue: tierPalettes[TierRare][0]}
	}

	var colors []core.Color
	var tiers []Tier
	for _, t := range []Tier{TierBasic, TierMid, TierLate} {
		if t > unlocked {
			break
		}
		for _, c := range tierPalettes[t] {
			colors = append(colors, c)
			tiers = append(tiers, t)
		}
	}

	i := rng.IntN(len(colors))
	t := tiers[i]
	return Pickup{X: x, Y: y, Tier: t, Points: t.Points(), Hue: colors[i]}
}
