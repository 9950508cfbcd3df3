package game

import (
	"math"

	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
)

// Generator produces the endless terrain ahead of the camera and retires
// everything that falls behind it. All randomness goes through the
// injected core.Rand, so a seed fully determines the level.
type Generator struct {
	cfg *config.Config
	rng core.Rand

	Ground    []GroundSegment
	Gaps      []Gap
	Platforms []Platform
	Bushes    []Bush
	Pickups   []Pickup

	frontier      float64
	lastPlatformX float64
	lastPlatformY float64

	// unlockedTier only rises while the stash grows; a hazard hit drops
	// it back to basic via ResetTiers.
	unlockedTier Tier
}

// NewGenerator creates a generator with the starting strip already built.
func NewGenerator(cfg *config.Config, rng core.Rand) *Generator {
	g := &Generator{
		cfg:           cfg,
		rng:           rng,
		lastPlatformX: -cfg.Generator.PlatformMinSpacing,
		lastPlatformY: cfg.World.GroundY,
	}
	g.seedTerrain()
	return g
}

// seedTerrain lays a solid runway with no hazards so every run opens the
// same way, plus a few free pickups to teach collection.
func (g *Generator) seedTerrain() {
	tile := g.cfg.World.TileSize
	for x := -tile; x < 1200; x += tile {
		g.Ground = append(g.Ground, GroundSegment{X: x})
	}
	g.frontier = 1200

	groundY := g.cfg.World.GroundY
	for _, x := range []float64{300, 450, 600} {
		g.Pickups = append(g.Pickups, spawnPickup(g.rng, &g.cfg.Pickups, x, groundY-100, TierBasic))
	}
}

// Airborne pickups spawn at jump-reachable heights above the ground top.
var airPickupHeights = []float64{60, 90, 120}

// difficulty scales hazard odds with distance travelled.
func (g *Generator) difficulty(distance int) float64 {
	return 1 + float64(distance)/1000*g.cfg.Generator.DifficultyRate
}

// Update extends terrain ahead of the camera and retires what is behind
// it. Stash feeds the pickup tier latch.
func (g *Generator) Update(cameraX float64, distance, stash int) {
	if t := tierForStash(stash); t > g.unlockedTier {
		g.unlockedTier = t
	}

	horizon := cameraX + g.cfg.World.ViewportWidth + g.cfg.World.ChunkWidth
	for g.frontier < horizon {
		g.generateChunk(distance, stash)
	}

	g.cleanup(cameraX)
}

// ResetTiers drops the pickup tier back to basic after a hazard hit.
func (g *Generator) ResetTiers() {
	g.unlockedTier = TierBasic
}

// UnlockedTier returns the highest pickup tier currently spawning.
func (g *Generator) UnlockedTier() Tier {
	return g.unlockedTier
}

// generateChunk fills one chunk worth of terrain column by column. Each
// tile column rolls, in priority order: gap, then bush, then platform,
// then airborne pickup. The rolls are mutually exclusive so hazards never
// stack on one column.
func (g *Generator) generateChunk(distance, stash int) {
	wcfg := g.cfg.World
	gcfg := g.cfg.Generator
	pcfg := g.cfg.Pickups
	diff := g.difficulty(distance)

	chunkEnd := g.frontier + wcfg.ChunkWidth
	x := g.frontier
	for x < chunkEnd {
		if distance > gcfg.GapMinDistance && g.rng.Chance(gcfg.BaseGapChance*diff) {
			x = g.carveGap(x)
			continue
		}

		g.Ground = append(g.Ground, GroundSegment{X: x})

		switch {
		case distance > gcfg.BushMinDistance && g.rng.Chance(gcfg.BushChance*diff):
			g.Bushes = append(g.Bushes, NewBush(x, wcfg.GroundY))

		case distance > gcfg.PlatformMinDistance &&
			x-g.lastPlatformX >= gcfg.PlatformMinSpacing &&
			g.rng.Chance(gcfg.PlatformChance):
			g.placePlatform(x, distance)

		default:
			chance := pcfg.BaseAirChance - math.Min(pcfg.AirChanceMaxDecay, float64(stash)*pcfg.AirChanceDecay)
			if g.rng.Chance(chance) {
				px := x + g.rng.Uniform(10, 50)
				y := wcfg.GroundY - airPickupHeights[g.rng.IntN(len(airPickupHeights))]
				g.Pickups = append(g.Pickups, spawnPickup(g.rng, &pcfg, px, y, g.unlockedTier))
			}
		}

		x += wcfg.TileSize
	}
	g.frontier = x
}

// carveGap opens a gap at x and drops the rescue platform over it in the
// same step, so a gap is never emitted without its escape route. Returns
// the x past the gap.
func (g *Generator) carveGap(x float64) float64 {
	wcfg := g.cfg.World
	gcfg := g.cfg.Generator

	tiles := gcfg.GapMinTiles + g.rng.IntN(gcfg.GapMaxTiles-gcfg.GapMinTiles+1)
	width := float64(tiles) * wcfg.TileSize
	g.Gaps = append(g.Gaps, Gap{StartX: x, Width: width})

	if n := len(g.Ground); n > 0 {
		g.Ground[n-1].IsRightEdge = true
	}

	// Rescue platform spans the whole gap plus a lip on each side, at the
	// low platform level so it is reachable from flat ground.
	g.Platforms = append(g.Platforms, Platform{
		X:     x - gcfg.RescueMargin/2,
		Y:     gcfg.PlatformLowY,
		Width: width + gcfg.RescueMargin,
	})
	g.lastPlatformX = x
	g.lastPlatformY = gcfg.PlatformLowY

	// Bait the escape route: a pickup floats over the rescue platform.
	pcfg := &g.cfg.Pickups
	px := x + width/2 - pcfg.Size/2
	g.Pickups = append(g.Pickups, spawnPickup(g.rng, pcfg, px, gcfg.PlatformLowY-45, g.unlockedTier))

	x += width
	g.Ground = append(g.Ground, GroundSegment{X: x, IsLeftEdge: true})
	return x + wcfg.TileSize
}

// placePlatform adds a hop platform at x, with the high level locked
// until the run is far enough along, and maybe a pickup floating over it.
func (g *Generator) placePlatform(x float64, distance int) {
	gcfg := g.cfg.Generator
	pcfg := g.cfg.Pickups

	levels := []float64{gcfg.PlatformLowY, gcfg.PlatformMidY}
	if distance > gcfg.HighPlatformAt {
		levels = append(levels, gcfg.PlatformHighY)
	}
	y := levels[g.rng.IntN(len(levels))]
	width := gcfg.PlatformWidths[g.rng.IntN(len(gcfg.PlatformWidths))]

	g.Platforms = append(g.Platforms, Platform{X: x, Y: y, Width: width})
	g.lastPlatformX = x
	g.lastPlatformY = y

	if g.rng.Chance(pcfg.PlatformPickupChance) {
		px := x + width/2 - pcfg.Size/2
		g.Pickups = append(g.Pickups, spawnPickup(g.rng, &pcfg, px, y-45, g.unlockedTier))
	}
}

// ScatterYarn materializes yarn knocked off the player as scattered
// basic pickups flying along the given trajectories.
func (g *Generator) ScatterYarn(shots []ScatterShot) {
	for _, s := range shots {
		g.Pickups = append(g.Pickups, Pickup{
			X:         s.X,
			Y:         s.Y,
			Tier:      TierBasic,
			Points:    TierBasic.Points(),
			Hue:       tierPalettes[TierBasic][g.rng.IntN(len(tierPalettes[TierBasic]))],
			Scattered: true,
			VelX:      s.VelX,
			VelY:      s.VelY,
		})
	}
}

// UpdateScatters advances scattered pickup ballistics by dt seconds.
func (g *Generator) UpdateScatters(dt float64) {
	groundY := g.cfg.World.GroundY
	for i := range g.Pickups {
		p := &g.Pickups[i]
		if !p.Scattered {
			continue
		}
		p.StepScatter(dt)
		if floor := groundY - g.cfg.Pickups.Size; p.Y > floor {
			p.Y = floor
			p.VelY = 0
			p.VelX = 0
		}
	}
}

// GapAt returns the gap under x, if any.
func (g *Generator) GapAt(x float64) (Gap, bool) {
	for _, gap := range g.Gaps {
		if gap.ContainsX(x) {
			return gap, true
		}
	}
	return Gap{}, false
}

// HasGroundUnder reports whether solid ground exists under x.
func (g *Generator) HasGroundUnder(x float64) bool {
	_, inGap := g.GapAt(x)
	return !inGap
}

// cleanup retires everything behind the camera, expired scatters, and
// pickups whose tier has locked again after a hit.
func (g *Generator) cleanup(cameraX float64) {
	cutoff := cameraX - g.cfg.World.CleanupBuffer

	ground := g.Ground[:0]
	for _, s := range g.Ground {
		if s.X+g.cfg.World.TileSize > cutoff {
			ground = append(ground, s)
		}
	}
	g.Ground = ground

	gaps := g.Gaps[:0]
	for _, gp := range g.Gaps {
		if gp.EndX() > cutoff {
			gaps = append(gaps, gp)
		}
	}
	g.Gaps = gaps

	platforms := g.Platforms[:0]
	for _, p := range g.Platforms {
		if p.X+p.Width > cutoff {
			platforms = append(platforms, p)
		}
	}
	g.Platforms = platforms

	bushes := g.Bushes[:0]
	for _, b := range g.Bushes {
		if b.X+b.Width > cutoff {
			bushes = append(bushes, b)
		}
	}
	g.Bushes = bushes

	pickups := g.Pickups[:0]
	for _, p := range g.Pickups {
		if p.X+g.cfg.Pickups.Size <= cutoff {
			continue
		}
		if p.Scattered && p.Expired(g.cfg.Pickups.ScatterTTLSeconds) {
			continue
		}
		if !p.Scattered && p.Tier != TierRare && p.Tier > g.unlockedTier {
			continue
		}
		pickups = append(pickups, p)
	}
	g.Pickups = pickups
}
