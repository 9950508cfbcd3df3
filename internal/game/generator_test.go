package game

import (
	"testing"

	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
)

// driveGenerator walks the camera forward so the generator produces a long
// stretch of terrain under the given distance and stash.
func driveGenerator(g *Generator, upTo float64, distance, stash int) {
	for camX := 0.0; camX < upTo; camX += 200 {
		g.Update(camX, distance, stash)
	}
}

func TestGeneratorStartsSolid(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(1))

	if len(g.Ground) == 0 {
		t.Fatal("no starting terrain")
	}
	if len(g.Gaps) != 0 {
		t.Error("starting strip should have no gaps")
	}
	if len(g.Bushes) != 0 {
		t.Error("starting strip should have no bushes")
	}
	if len(g.Pickups) == 0 {
		t.Error("starting strip should offer free pickups")
	}
}

func TestEveryGapHasRescuePlatform(t *testing.T) {
	cfg := config.Default()

	for seed := int64(1); seed <= 50; seed++ {
		g := NewGenerator(&cfg, core.NewRand(seed))

		// Far enough in that gaps spawn at full difficulty.
		for camX := 0.0; camX < 30000; camX += 200 {
			g.Update(camX, 2000, 0)

			for _, gap := range g.Gaps {
				if !hasSpanningPlatform(g, gap) {
					t.Fatalf("seed %d: gap [%f, %f] has no spanning platform",
						seed, gap.StartX, gap.EndX())
				}
			}
		}
	}
}

// hasSpanningPlatform reports whether a reachable platform covers the
// whole gap.
func hasSpanningPlatform(g *Generator, gap Gap) bool {
	for _, pf := range g.Platforms {
		if pf.X <= gap.StartX && pf.X+pf.Width >= gap.EndX() {
			return true
		}
	}
	return false
}

func TestRescuePlatformReachable(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(3))
	driveGenerator(g, 30000, 2000, 0)

	if len(g.Gaps) == 0 {
		t.Skip("seed produced no live gaps in the final window")
	}

	for _, gap := range g.Gaps {
		found := false
		for _, pf := range g.Platforms {
			if pf.X <= gap.StartX && pf.X+pf.Width >= gap.EndX() {
				found = true
				// Low platform level: reachable with one jump from flat
				// ground.
				if pf.Y != cfg.Generator.PlatformLowY {
					t.Errorf("rescue platform at y=%f, want low level %f",
						pf.Y, cfg.Generator.PlatformLowY)
				}
			}
		}
		if !found {
			t.Errorf("gap [%f, %f] without rescue platform", gap.StartX, gap.EndX())
		}
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.Default()
	g1 := NewGenerator(&cfg, core.NewRand(99))
	g2 := NewGenerator(&cfg, core.NewRand(99))

	driveGenerator(g1, 10000, 500, 5)
	driveGenerator(g2, 10000, 500, 5)

	if len(g1.Gaps) != len(g2.Gaps) {
		t.Fatalf("gap counts differ: %d vs %d", len(g1.Gaps), len(g2.Gaps))
	}
	for i := range g1.Gaps {
		if g1.Gaps[i] != g2.Gaps[i] {
			t.Errorf("gap %d differs: %+v vs %+v", i, g1.Gaps[i], g2.Gaps[i])
		}
	}
	if len(g1.Platforms) != len(g2.Platforms) {
		t.Fatalf("platform counts differ: %d vs %d", len(g1.Platforms), len(g2.Platforms))
	}
	for i := range g1.Platforms {
		if g1.Platforms[i] != g2.Platforms[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, g1.Platforms[i], g2.Platforms[i])
		}
	}
}

func TestNoHazardsBeforeMinDistance(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(5))

	// At distance 0, under every threshold, nothing dangerous spawns.
	driveGenerator(g, 20000, 0, 0)

	if len(g.Gaps) != 0 {
		t.Errorf("gaps spawned before min distance: %d", len(g.Gaps))
	}
	if len(g.Bushes) != 0 {
		t.Errorf("bushes spawned before min distance: %d", len(g.Bushes))
	}
}

func TestHighPlatformsLockedEarly(t *testing.T) {
	cfg := config.Default()

	// Below the unlock distance, no platform sits at the high level.
	g := NewGenerator(&cfg, core.NewRand(8))
	driveGenerator(g, 30000, cfg.Generator.HighPlatformAt, 0)
	for _, pf := range g.Platforms {
		if pf.Y == cfg.Generator.PlatformHighY {
			t.Errorf("high platform at x=%f before unlock distance", pf.X)
		}
	}
}

func TestTierLatch(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(2))

	if g.UnlockedTier() != TierBasic {
		t.Fatalf("initial tier = %v, want basic", g.UnlockedTier())
	}

	g.Update(0, 0, 12)
	if g.UnlockedTier() != TierMid {
		t.Errorf("tier at stash 12 = %v, want mid", g.UnlockedTier())
	}

	g.Update(0, 0, 30)
	if g.UnlockedTier() != TierLate {
		t.Errorf("tier at stash 30 = %v, want late", g.UnlockedTier())
	}

	// The latch holds even if the stash later drops.
	g.Update(0, 0, 0)
	if g.UnlockedTier() != TierLate {
		t.Errorf("tier dropped with stash: %v", g.UnlockedTier())
	}

	// A hazard hit resets everything.
	g.ResetTiers()
	if g.UnlockedTier() != TierBasic {
		t.Errorf("tier after reset = %v, want basic", g.UnlockedTier())
	}
}

func TestCleanupRemovesLockedTierPickups(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(2))
	g.Update(0, 0, 30) // unlock late tier

	g.Pickups = append(g.Pickups,
		Pickup{X: 500, Y: 400, Tier: TierLate, Points: 3},
		Pickup{X: 520, Y: 400, Tier: TierRare, Points: 5},
	)

	g.ResetTiers()
	g.Update(0, 0, 0)

	for _, p := range g.Pickups {
		if p.Tier == TierLate {
			t.Error("locked late-tier pickup survived cleanup")
		}
	}
	rareSurvived := false
	for _, p := range g.Pickups {
		if p.Tier == TierRare {
			rareSurvived = true
		}
	}
	if !rareSurvived {
		t.Error("rare pickup should survive a tier reset")
	}
}

func TestCleanupBehindCamera(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(4))

	driveGenerator(g, 20000, 500, 0)

	cutoff := 20000 - 200 - cfg.World.CleanupBuffer
	for _, seg := range g.Ground {
		if seg.X+cfg.World.TileSize <= cutoff {
			t.Fatalf("stale ground segment at %f, cutoff %f", seg.X, cutoff)
		}
	}
	for _, p := range g.Pickups {
		if p.X+cfg.Pickups.Size <= cutoff {
			t.Fatalf("stale pickup at %f, cutoff %f", p.X, cutoff)
		}
	}
}

func TestScatterExpires(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(6))

	g.ScatterYarn([]ScatterShot{{X: 100, Y: 300, VelX: 50, VelY: -200}})
	before := len(g.Pickups)

	// Age past the TTL, then run cleanup.
	for i := 0; i < int(cfg.Pickups.ScatterTTLSeconds*60)+10; i++ {
		g.UpdateScatters(1.0 / 60)
	}
	g.Update(0, 0, 0)

	if len(g.Pickups) != before-1 {
		t.Errorf("expired scatter not removed: %d pickups, want %d", len(g.Pickups), before-1)
	}
}

func TestGapAt(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(&cfg, core.NewRand(1))
	g.Gaps = append(g.Gaps, Gap{StartX: 2000, Width: 128})

	if _, in := g.GapAt(2050); !in {
		t.Error("GapAt inside gap should report true")
	}
	if _, in := g.GapAt(1999); in {
		t.Error("GapAt before gap should report false")
	}
	if g.HasGroundUnder(2050) {
		t.Error("HasGroundUnder inside gap should be false")
	}
	if !g.HasGroundUnder(500) {
		t.Error("HasGroundUnder on solid ground should be true")
	}
}
