// Package game implements the endless-runner simulation: a fixed-step,
// seed-deterministic world with a procedural level generator, a player
// state machine, and ordered collision resolution. The platform layer
// feeds it input frames and renders its screen buffer.
package game

import (
	"github.com/ferretworks/stash-dash/internal/config"
	"github.com/ferretworks/stash-dash/internal/core"
)

// Phase is the outer run lifecycle.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlaying
	PhaseGameOver
)

// RunRecord is one finished run, as persisted.
type RunRecord struct {
	Stash    int
	Distance int
	Yarn     int
	Duration float64
}

// RecordStore persists finished runs and serves the records shown in the
// HUD. Implemented by storage.Store; a nil store disables persistence.
type RecordStore interface {
	SaveRun(RunRecord) error
	HighScore() (int, error)
	BestDistance() (int, error)
}

type rainbowParticle struct {
	X, Y       float64
	VelX, VelY float64
	Age, TTL   float64
	Hue        core.Color
	Glyph      rune
}

// Game orchestrates one session: splash, runs, and game-over screens.
// Step advances exactly one tick; with the same seed and the same input
// frames, two games play out identically.
type Game struct {
	cfg   *config.Config
	rt    core.RuntimeConfig
	dt    float64
	rng   core.Rand
	audio AudioSink
	store RecordStore

	phase  Phase
	paused bool
	debug  bool

	player *Player
	camera *Camera
	gen    *Generator

	distance  int
	elapsed   float64
	yarnCount int

	highScore    int
	bestDistance int
	newRecord    bool
	signPassed   bool
	milestoneIdx int

	particles []rainbowParticle

	deathCause string
	saveErr    error
}

// New creates a game. store and audio may be nil.
func New(cfg *config.Config, store RecordStore, audio AudioSink) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	return &Game{cfg: cfg, store: store, audio: audio}
}

// ID returns the game's registry identifier.
func (g *Game) ID() string { return "stashdash" }

// Title returns the display name.
func (g *Game) Title() string { return "Stash Dash" }

// Reset rebuilds the whole world from the runtime config's seed and
// returns to the splash screen. Records are reloaded so the HUD and the
// milestone sign reflect runs saved by other sessions.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.dt = 1.0 / float64(rt.TickRate)
	g.rng = core.NewRand(rt.Seed)

	g.player = NewPlayer(g.cfg)
	g.camera = NewCamera(g.cfg)
	g.gen = NewGenerator(g.cfg, g.rng)

	g.phase = PhaseSplash
	g.paused = false
	g.distance = 0
	g.elapsed = 0
	g.yarnCount = 0
	g.newRecord = false
	g.signPassed = false
	g.milestoneIdx = 0
	g.particles = nil
	g.deathCause = ""
	g.saveErr = nil

	g.loadRecords()
}

func (g *Game) loadRecords() {
	g.highScore = 0
	g.bestDistance = 0
	if g.store == nil {
		return
	}
	if hs, err := g.store.HighScore(); err == nil {
		g.highScore = hs
	}
	if bd, err := g.store.BestDistance(); err == nil {
		g.bestDistance = bd
	}
}

func (g *Game) startRun() {
	g.phase = PhasePlaying
	g.elapsed = 0
	g.audio.Play(EventRunStart)
}

// Step advances the game by one tick, applying one input frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseSplash:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionJump) {
			g.startRun()
		}
	case PhaseGameOver:
		switch {
		case input.Has(core.ActionBack):
			g.Reset(g.rt)
		case input.Has(core.ActionRestart) || input.Has(core.ActionConfirm):
			rt := g.rt
			rt.Seed++
			g.Reset(rt)
			g.startRun()
		}
	case PhasePlaying:
		if input.Has(core.ActionBack) {
			// Abandon the run and return to the splash screen.
			g.Reset(g.rt)
			break
		}
		g.stepRun(input)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepRun(input core.InputFrame) {
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if input.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if g.paused {
		return
	}

	if input.Has(core.ActionJump) && g.player.Jump() {
		g.audio.Play(EventJump)
	}

	g.player.Update(g.dt)
	g.camera.Update(g.dt, g.player.X, g.player.SpeedPct())
	g.distance = int(g.player.X / g.cfg.World.DistanceScale)
	g.gen.Update(g.camera.OffsetX(), g.distance, g.player.Stash)
	g.gen.UpdateScatters(g.dt)

	res := ResolveCollisions(g.player, g.gen, g.cfg, g.dt)
	g.yarnCount += res.Pieces
	if res.Pieces > 0 {
		g.audio.Play(EventPickup)
	}
	if res.GotRainbow {
		g.audio.Play(EventRainbow)
	}
	if res.HitHazard {
		g.audio.Play(EventHit)
	}

	g.awardMilestones()
	g.trackRecords()
	g.updateParticles()

	g.elapsed += g.dt
	g.audio.SetSpeedPct(g.player.SpeedPct())

	if res.Died {
		g.endRun(res.DeathCause)
	}
}

// awardMilestones grants one life per crossed milestone. The cursor only
// moves forward, so each milestone pays out once even if a tick jumps
// past several, and a capped award still consumes the milestone.
func (g *Game) awardMilestones() {
	ms := g.cfg.Run.LifeMilestones
	for g.milestoneIdx < len(ms) && g.distance >= ms[g.milestoneIdx] {
		if g.player.AddLife() {
			g.audio.Play(EventLifeGained)
		}
		g.milestoneIdx++
	}
}

// trackRecords latches the new-record banner and fires the rainbow burst
// when the player runs past the previous best-distance sign.
func (g *Game) trackRecords() {
	// A fresh profile has zero records, so the very first run latches
	// the banner as soon as it travels anywhere.
	if !g.newRecord && (g.player.Stash > g.highScore || g.distance > g.bestDistance) {
		g.newRecord = true
	}
	if !g.signPassed && g.bestDistance > 0 && g.player.X >= g.signWorldX() {
		g.signPassed = true
		g.spawnRecordBurst()
		g.audio.Play(EventRainbow)
	}
}

// signWorldX is where the previous best-distance sign stands.
func (g *Game) signWorldX() float64 {
	return float64(g.bestDistance) * g.cfg.World.DistanceScale
}

var burstHues = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow,
	core.ColorGreen, core.ColorCyan, core.ColorMagenta,
}

func (g *Game) spawnRecordBurst() {
	cx := g.player.X + g.player.Width/2
	cy := g.player.Y
	for i := 0; i < 24; i++ {
		g.particles = append(g.particles, rainbowParticle{
			X:     cx,
			Y:     cy,
			VelX:  g.rng.Uniform(-180, 180),
			VelY:  g.rng.Uniform(-320, -80),
			TTL:   g.rng.Uniform(0.8, 1.6),
			Hue:   burstHues[i%len(burstHues)],
			Glyph: []rune{'*', '+', '.'}[i%3],
		})
	}
}

func (g *Game) updateParticles() {
	const particleGravity = 400.0
	alive := g.particles[:0]
	for _, pt := range g.particles {
		pt.Age += g.dt
		if pt.Age >= pt.TTL {
			continue
		}
		pt.VelY += particleGravity * g.dt
		pt.X += pt.VelX * g.dt
		pt.Y += pt.VelY * g.dt
		alive = append(alive, pt)
	}
	g.particles = alive
}

func (g *Game) endRun(cause string) {
	g.phase = PhaseGameOver
	g.deathCause = cause
	g.audio.Play(EventDeath)

	if g.store != nil {
		g.saveErr = g.store.SaveRun(RunRecord{
			Stash:    g.player.Stash,
			Distance: g.distance,
			Yarn:     g.yarnCount,
			Duration: g.elapsed,
		})
	}
}

// State reports the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Stash:    g.player.Stash,
		Distance: g.distance,
		Lives:    g.player.Lives,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// CurrentPhase returns the lifecycle phase.
func (g *Game) CurrentPhase() Phase { return g.phase }
