package game

import (
	"math"

	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
)

// PlayerState is the player's movement state.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateJumping
	StateHit
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateHit:
		return "hit"
	default:
		return "unknown"
	}
}

// ScatterShot is one ballistic trajectory for yarn knocked loose by a
// hazard hit. Velocities are in world units per second.
type ScatterShot struct {
	X, Y       float64
	VelX, VelY float64
}

// Player is the squirrel. It owns its position, velocity, state, lives,
// and stash; the collision component mutates GroundY and FallingInGap to
// tell it what it is standing on.
type Player struct {
	X, Y          float64
	Width, Height float64

	VelX, VelY float64
	State      PlayerState
	Grounded   bool

	// GroundY is the Y the player's top rests at on the current support
	// (support top minus player height). Collision logic retargets it
	// every tick as platforms and gaps come and go.
	GroundY      float64
	FallingInGap bool

	Lives    int
	MaxLives int
	Stash    int

	SpeedMult float64

	hitTimer float64
	phys     config.PhysicsConfig
	scatter  config.PickupConfig
}

// NewPlayer creates a player resting on the base ground.
func NewPlayer(cfg *config.Config) *Player {
	restY := cfg.World.GroundY - cfg.Player.Height
	return &Player{
		X:         cfg.Player.StartX,
		Y:         restY,
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		State:     StateRunning,
		Grounded:  true,
		GroundY:   restY,
		Lives:     cfg.Player.MaxLives,
		MaxLives:  cfg.Player.MaxLives,
		SpeedMult: 1.0,
		phys:      cfg.Physics,
		scatter:   cfg.Pickups,
	}
}

// Update advances physics and the state machine by dt seconds.
func (p *Player) Update(dt float64) {
	// Speed ramps over time, frozen while stunned.
	if p.State != StateHit {
		p.SpeedMult += p.phys.SpeedRamp * dt
		if p.SpeedMult > p.phys.MaxSpeedMultiplier {
			p.SpeedMult = p.phys.MaxSpeedMultiplier
		}
	}

	// Hit stun counts down; leaving it lands in Running or Jumping
	// depending on where the squirrel is.
	if p.hitTimer > 0 {
		p.hitTimer -= dt
		if p.hitTimer <= 0 {
			if p.Grounded {
				p.State = StateRunning
			} else {
				p.State = StateJumping
			}
		}
	}

	hitFactor := 1.0
	if p.State == StateHit {
		hitFactor = p.phys.HitSpeedFactor
	}
	p.VelX = p.phys.BaseSpeed * p.SpeedMult * hitFactor
	p.X += p.VelX * dt

	// Gap gravity is much stronger so a missed jump reads as a plunge,
	// not a float.
	gravity := p.phys.Gravity
	if p.FallingInGap {
		gravity = p.phys.GapGravity
	}
	p.VelY += gravity * dt
	p.Y += p.VelY * dt

	// Ground resolution against the current support level.
	if p.Y >= p.GroundY {
		p.Y = p.GroundY
		p.VelY = 0
		p.Grounded = true
		if p.State == StateJumping {
			if p.hitTimer <= 0 {
				p.State = StateRunning
			} else {
				p.State = StateHit
			}
		}
	} else {
		p.Grounded = false
	}
}

// Jump launches the player if grounded and not stunned.
// Returns whether a jump actually started (gates the jump sound).
func (p *Player) Jump() bool {
	if !p.Grounded || p.State == StateHit {
		return false
	}
	p.VelY = p.phys.JumpImpulse
	p.Grounded = false
	p.State = StateJumping
	return true
}

// HitObstacle handles a hazard collision: enter the stun state, lose a
// life, bounce, and shed half the stash as scattered yarn. A no-op while
// already stunned so one bush can't double-hit within a stun window.
// Returns the yarn lost, the scatter trajectories, and whether the player
// is out of lives.
func (p *Player) HitObstacle() (yarnLost int, shots []ScatterShot, dead bool) {
	if p.State == StateHit {
		return 0, nil, false
	}

	p.State = StateHit
	p.hitTimer = p.phys.HitStunSeconds

	p.Lives--
	dead = p.Lives <= 0

	// Small upward pop so the stun animation falls back to the ground.
	p.VelY = p.phys.BounceImpulse
	p.Grounded = false

	yarnLost = p.Stash / 2
	if yarnLost == 0 && p.Stash > 0 {
		yarnLost = 1
	}

	// Ring-scatter the lost yarn across a 270° fan, biased upward and
	// never straight down. Capped for readability on screen.
	count := yarnLost
	if count > p.scatter.ScatterCap {
		count = p.scatter.ScatterCap
	}

	cx := p.X + p.Width/2
	cy := p.Y + p.Height/2
	const (
		angleStart = -math.Pi * 0.75 // -135°: upper left
		angleRange = math.Pi * 1.5   // 270° sweep
		upwardBias = 150.0
	)
	for i := 0; i < count; i++ {
		angle := angleStart + float64(i)/math.Max(float64(count-1), 1)*angleRange
		speed := 200 + float64(i%3)*50
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle)*speed - upwardBias
		if math.Abs(vx) < 1 && vy > 0 {
			// An effectively vertical drop would land back on the player;
			// flip it upward instead.
			vy = -vy
		}
		shots = append(shots, ScatterShot{X: cx, Y: cy, VelX: vx, VelY: vy})
	}

	p.Stash -= yarnLost
	return yarnLost, shots, dead
}

// CollectPickup adds points to the stash.
func (p *Player) CollectPickup(points int) {
	p.Stash += points
}

// AddLife grants a life if below max. Returns whether anything changed,
// so the caller can gate the reward sound.
func (p *Player) AddLife() bool {
	if p.Lives < p.MaxLives {
		p.Lives++
		return true
	}
	return false
}

// SpeedPct returns current speed as a percentage of the ramp cap (0-100).
func (p *Player) SpeedPct() float64 {
	return p.SpeedMult / p.phys.MaxSpeedMultiplier * 100
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the player's horizontal center, used for gap detection.
func (p *Player) CenterX() float64 {
	return p.X + p.Width/2
}

// FeetY returns the world y of the player's feet.
func (p *Player) FeetY() float64 {
	return p.Y + p.Height
}

// Stunned reports whether the hit timer is still running.
func (p *Player) Stunned() bool {
	return p.hitTimer > 0
}
