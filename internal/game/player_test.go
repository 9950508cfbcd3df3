package game

import (
	"math"
	"testing"

	"github.com/ferretworks/stash-dash/internal/config"
)

const testDt = 1.0 / 60

func newTestPlayer() (*Player, config.Config) {
	cfg := config.Default()
	return NewPlayer(&cfg), cfg
}

func TestPlayerStartsGrounded(t *testing.T) {
	p, cfg := newTestPlayer()

	if !p.Grounded {
		t.Error("player should start grounded")
	}
	if p.State != StateRunning {
		t.Errorf("state = %v, want Running", p.State)
	}
	if want := cfg.World.GroundY - cfg.Player.Height; p.Y != want {
		t.Errorf("Y = %f, want %f", p.Y, want)
	}
	if p.Lives != cfg.Player.MaxLives {
		t.Errorf("Lives = %d, want %d", p.Lives, cfg.Player.MaxLives)
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	p, _ := newTestPlayer()

	if !p.Jump() {
		t.Fatal("grounded player should be able to jump")
	}
	if p.State != StateJumping {
		t.Errorf("state = %v, want Jumping", p.State)
	}

	// Mid-air jump is refused.
	p.Update(testDt)
	if p.Jump() {
		t.Error("airborne player should not be able to jump")
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p, _ := newTestPlayer()
	restY := p.Y

	p.Jump()

	// Rises first.
	p.Update(testDt)
	if p.Y >= restY {
		t.Fatalf("player did not rise after jump: %f >= %f", p.Y, restY)
	}

	// Eventually comes back down and lands running.
	landed := false
	for i := 0; i < 600; i++ {
		p.Update(testDt)
		if p.Grounded {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
	if p.Y != restY {
		t.Errorf("landed at %f, want %f", p.Y, restY)
	}
	if p.State != StateRunning {
		t.Errorf("state after landing = %v, want Running", p.State)
	}
}

func TestPlayerSpeedRamp(t *testing.T) {
	p, cfg := newTestPlayer()

	// Ramp grows over time.
	for i := 0; i < 600; i++ { // 10 seconds
		p.Update(testDt)
	}
	if p.SpeedMult <= 1.0 {
		t.Errorf("speed multiplier did not grow: %f", p.SpeedMult)
	}

	// And caps out.
	for i := 0; i < 60*60*60; i++ { // one simulated hour
		p.SpeedMult += cfg.Physics.SpeedRamp * testDt
		if p.SpeedMult > cfg.Physics.MaxSpeedMultiplier {
			p.SpeedMult = cfg.Physics.MaxSpeedMultiplier
		}
	}
	if p.SpeedMult != cfg.Physics.MaxSpeedMultiplier {
		t.Errorf("multiplier = %f, want cap %f", p.SpeedMult, cfg.Physics.MaxSpeedMultiplier)
	}
}

func TestPlayerHitSlowsAndStuns(t *testing.T) {
	p, cfg := newTestPlayer()
	p.Stash = 8

	normalVel := cfg.Physics.BaseSpeed * p.SpeedMult

	_, _, dead := p.HitObstacle()
	if dead {
		t.Fatal("first hit should not kill")
	}
	if p.State != StateHit {
		t.Errorf("state = %v, want Hit", p.State)
	}

	p.Update(testDt)
	if p.VelX >= normalVel {
		t.Errorf("stunned VelX %f should be below normal %f", p.VelX, normalVel)
	}

	// Stun expires and the player recovers.
	for i := 0; i < 120; i++ { // 2 seconds
		p.Update(testDt)
	}
	if p.State == StateHit {
		t.Error("stun never expired")
	}
}

func TestPlayerHitYarnLoss(t *testing.T) {
	tests := []struct {
		name      string
		stash     int
		wantLost  int
		wantShots int
	}{
		{"even stash loses half", 8, 4, 4},
		{"single yarn lost", 1, 1, 1},
		{"empty stash loses nothing", 0, 0, 0},
		{"scatter capped", 100, 50, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer()
			p.Stash = tt.stash

			lost, shots, _ := p.HitObstacle()
			if lost != tt.wantLost {
				t.Errorf("yarnLost = %d, want %d", lost, tt.wantLost)
			}
			if len(shots) != tt.wantShots {
				t.Errorf("shots = %d, want %d", len(shots), tt.wantShots)
			}
			if p.Stash != tt.stash-tt.wantLost {
				t.Errorf("stash = %d, want %d", p.Stash, tt.stash-tt.wantLost)
			}
		})
	}
}

func TestPlayerScatterNeverStraightDown(t *testing.T) {
	for stash := 2; stash <= 30; stash++ {
		p, _ := newTestPlayer()
		p.Stash = stash

		_, shots, _ := p.HitObstacle()
		for i, s := range shots {
			if math.Abs(s.VelX) < 1 && s.VelY > 0 {
				t.Errorf("stash %d shot %d points straight down: vel=(%f,%f)",
					stash, i, s.VelX, s.VelY)
			}
		}
	}
}

func TestPlayerHitWhileStunnedIgnored(t *testing.T) {
	p, _ := newTestPlayer()
	p.Stash = 10

	p.HitObstacle()
	livesAfterFirst := p.Lives

	lost, shots, dead := p.HitObstacle()
	if lost != 0 || shots != nil || dead {
		t.Error("hit during stun should be a no-op")
	}
	if p.Lives != livesAfterFirst {
		t.Errorf("lives changed during stun: %d -> %d", livesAfterFirst, p.Lives)
	}
}

func TestPlayerDeathAfterThreeHits(t *testing.T) {
	p, _ := newTestPlayer()

	for hit := 1; hit <= 3; hit++ {
		_, _, dead := p.HitObstacle()
		wantDead := hit == 3
		if dead != wantDead {
			t.Errorf("hit %d: dead = %v, want %v", hit, dead, wantDead)
		}

		// Let the stun expire before the next hit.
		for i := 0; i < 120; i++ {
			p.Update(testDt)
		}
	}
	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}
}

func TestPlayerAddLifeCapped(t *testing.T) {
	p, cfg := newTestPlayer()

	if p.AddLife() {
		t.Error("AddLife at max should fail")
	}

	p.Lives--
	if !p.AddLife() {
		t.Error("AddLife below max should succeed")
	}
	if p.Lives != cfg.Player.MaxLives {
		t.Errorf("lives = %d, want %d", p.Lives, cfg.Player.MaxLives)
	}
}

func TestPlayerGapGravityFaster(t *testing.T) {
	normal, _ := newTestPlayer()
	gapped, _ := newTestPlayer()

	// Put both in free fall from the same height.
	for _, p := range []*Player{normal, gapped} {
		p.GroundY = 1e9
		p.Grounded = false
	}
	gapped.FallingInGap = true

	for i := 0; i < 30; i++ {
		normal.Update(testDt)
		gapped.Update(testDt)
	}

	if gapped.Y <= normal.Y {
		t.Errorf("gap fall (%f) should be faster than normal fall (%f)", gapped.Y, normal.Y)
	}
}
