package game

import (
	"github.com/ferretworks/stash-dash/internal/config"
)

// standTolerance is how far (world units) the player's feet may sit off a
// platform top and still count as standing on it.
const standTolerance = 5.0

// CollisionResult reports everything one collision pass decided, so the
// orchestrator can fire sounds and end the run without re-deriving it.
type CollisionResult struct {
	HitHazard  bool
	YarnLost   int
	Collected  int // points gained
	Pieces     int // pickups grabbed
	GotRainbow bool
	Died       bool
	DeathCause string
}

// ResolveCollisions runs the full per-tick collision pass in a fixed
// order: hazards first (a hit reshapes the stash and the pickup field),
// then pickup collection, then support resolution, then gap death.
func ResolveCollisions(p *Player, gen *Generator, cfg *config.Config, dt float64) CollisionResult {
	var res CollisionResult

	resolveHazards(p, gen, &res)
	if res.Died {
		res.DeathCause = "out of lives"
		return res
	}

	collectPickups(p, gen, cfg, &res)
	resolveSupport(p, gen, cfg, dt)

	if p.FallingInGap && p.Y > cfg.World.GroundY+cfg.Run.GapDeathDepth {
		res.Died = true
		res.DeathCause = "fell into a gap"
	}
	return res
}

// resolveHazards checks the player against bush hitboxes. The stun state
// doubles as an invulnerability window, so one bush cannot drain several
// lives across consecutive ticks.
func resolveHazards(p *Player, gen *Generator, res *CollisionResult) {
	if p.State == StateHit {
		return
	}

	playerRect := p.Rect()
	hitIdx := -1
	for i, b := range gen.Bushes {
		if playerRect.Intersects(b.Hitbox()) {
			hitIdx = i
			break
		}
	}
	if hitIdx < 0 {
		return
	}

	yarnLost, shots, dead := p.HitObstacle()
	gen.ScatterYarn(shots)
	gen.ResetTiers()
	gen.Bushes = append(gen.Bushes[:hitIdx], gen.Bushes[hitIdx+1:]...)

	res.HitHazard = true
	res.YarnLost = yarnLost
	res.Died = dead
}

// collectPickups sweeps overlapping pickups into the stash. Scattered
// yarn inside its grace window is skipped so it cannot be re-grabbed the
// same instant it flew off.
func collectPickups(p *Player, gen *Generator, cfg *config.Config, res *CollisionResult) {
	playerRect := p.Rect()
	grace := cfg.Pickups.ScatterGraceSeconds

	kept := gen.Pickups[:0]
	for _, pk := range gen.Pickups {
		if pk.Collectible(grace) && playerRect.Intersects(pk.Rect(cfg.Pickups.Size)) {
			p.CollectPickup(pk.Points)
			res.Collected += pk.Points
			res.Pieces++
			if pk.Tier == TierRare {
				res.GotRainbow = true
			}
			continue
		}
		kept = append(kept, pk)
	}
	gen.Pickups = kept
}

// resolveSupport retargets the player's rest level for this tick: a
// platform the player is landing on or standing on wins over the base
// ground, and a gap under the player with no platform leaves no support
// at all.
func resolveSupport(p *Player, gen *Generator, cfg *config.Config, dt float64) {
	feet := p.FeetY()
	prevFeet := feet - p.VelY*dt

	// Highest platform the player is on or falling onto.
	bestY := 0.0
	found := false
	for _, pf := range gen.Platforms {
		if p.X+p.Width <= pf.X || p.X >= pf.X+pf.Width {
			continue
		}
		standing := p.VelY >= 0 && feet >= pf.Y-standTolerance && feet <= pf.Y+standTolerance
		landing := p.VelY > 0 && prevFeet <= pf.Y+standTolerance && feet >= pf.Y-standTolerance
		if !standing && !landing {
			continue
		}
		if !found || pf.Y < bestY {
			bestY = pf.Y
			found = true
		}
	}

	if found {
		p.GroundY = bestY - p.Height
		p.FallingInGap = false
		return
	}

	if _, inGap := gen.GapAt(p.CenterX()); inGap {
		// No floor: push the rest level out of reach so physics keeps
		// the player falling until the gap death line.
		p.GroundY = cfg.World.GroundY + cfg.Run.GapDeathDepth + 1000
		// The strong gap gravity only engages once the player has
		// dropped below the ground top; a jumper over the gap keeps
		// normal gravity and can still clear it.
		if p.Y > cfg.World.GroundY-p.Height {
			p.FallingInGap = true
		}
		return
	}

	p.GroundY = cfg.World.GroundY - p.Height
	p.FallingInGap = false
}
