package game

// AudioEvent identifies a moment worth a sound cue.
type AudioEvent int

const (
	EventRunStart AudioEvent = iota
	EventJump
	EventPickup
	EventHit
	EventDeath
	EventRainbow
	EventLifeGained
)

// AudioSink receives gameplay events. The terminal build ships the nop
// sink; a desktop port can plug a real mixer in without touching the
// simulation.
type AudioSink interface {
	Play(AudioEvent)
	// SetSpeedPct lets the sink pitch or pace cues with the run tempo.
	SetSpeedPct(pct float64)
}

// NopAudio discards all events.
type NopAudio struct{}

func (NopAudio) Play(AudioEvent)     {}
func (NopAudio) SetSpeedPct(float64) {}
