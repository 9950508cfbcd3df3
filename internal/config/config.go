// Package config provides YAML-based game configuration loading with an
// embedded default, in the same search-chain style for custom, user, and
// local config files.
package config

// Config contains all tunables for the runner. Values are in world units
// (the simulation's continuous coordinate space), not screen cells.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Camera    CameraConfig    `yaml:"camera"`
	Generator GeneratorConfig `yaml:"generator"`
	Pickups   PickupConfig    `yaml:"pickups"`
	Run       RunConfig       `yaml:"run"`
}

// WorldConfig defines the fixed world geometry.
type WorldConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`  // Visible world width
	ViewportHeight float64 `yaml:"viewport_height"` // Visible world height
	GroundY        float64 `yaml:"ground_y"`        // Top of the base ground
	TileSize       float64 `yaml:"tile_size"`       // Ground segment width
	ChunkWidth     float64 `yaml:"chunk_width"`     // Generation chunk width
	CleanupBuffer  float64 `yaml:"cleanup_buffer"`  // Behind-camera retain margin
	DistanceScale  float64 `yaml:"distance_scale"`  // World units per meter
}

// PhysicsConfig defines movement and gravity parameters.
type PhysicsConfig struct {
	BaseSpeed          float64 `yaml:"base_speed"`           // Horizontal units/second
	SpeedRamp          float64 `yaml:"speed_ramp"`           // Multiplier gain per second
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier"` // Ramp cap
	JumpImpulse        float64 `yaml:"jump_impulse"`         // Negative = upward
	Gravity            float64 `yaml:"gravity"`
	GapGravity         float64 `yaml:"gap_gravity"` // Applied while falling in a gap
	HitSpeedFactor     float64 `yaml:"hit_speed_factor"`
	HitStunSeconds     float64 `yaml:"hit_stun_seconds"`
	BounceImpulse      float64 `yaml:"bounce_impulse"` // Upward pop on hazard hit
}

// PlayerConfig defines the player body and lives.
type PlayerConfig struct {
	StartX   float64 `yaml:"start_x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxLives int     `yaml:"max_lives"`
}

// CameraConfig defines follow behavior.
type CameraConfig struct {
	LerpRate      float64 `yaml:"lerp_rate"`      // Smoothing per second
	SlowLookahead float64 `yaml:"slow_lookahead"` // Fraction of viewport at 0% speed
	FastLookahead float64 `yaml:"fast_lookahead"` // Fraction of viewport at 100% speed
}

// GeneratorConfig defines procedural generation odds and layout.
type GeneratorConfig struct {
	DifficultyRate      float64   `yaml:"difficulty_rate"`       // Growth per 1000m
	BaseGapChance       float64   `yaml:"base_gap_chance"`       // Per tile column
	GapMinDistance      int       `yaml:"gap_min_distance"`      // Meters before gaps appear
	GapMinTiles         int       `yaml:"gap_min_tiles"`         // Smallest gap in tiles
	GapMaxTiles         int       `yaml:"gap_max_tiles"`         // Largest gap in tiles
	RescueMargin        float64   `yaml:"rescue_margin"`         // Extra rescue platform width
	BushChance          float64   `yaml:"bush_chance"`           // Per tile column
	BushMinDistance     int       `yaml:"bush_min_distance"`     // Meters before bushes appear
	PlatformChance      float64   `yaml:"platform_chance"`       // Per tile column
	PlatformMinDistance int       `yaml:"platform_min_distance"` // Meters before platforms appear
	PlatformMinSpacing  float64   `yaml:"platform_min_spacing"`  // Min X between platforms
	PlatformWidths      []float64 `yaml:"platform_widths"`
	PlatformLowY        float64   `yaml:"platform_low_y"`
	PlatformMidY        float64   `yaml:"platform_mid_y"`
	PlatformHighY       float64   `yaml:"platform_high_y"`
	HighPlatformAt      int       `yaml:"high_platform_at"` // Meters before the high level unlocks
}

// PickupConfig defines yarn spawning and scatter behavior.
type PickupConfig struct {
	Size                 float64 `yaml:"size"`
	RareChance           float64 `yaml:"rare_chance"`            // Rainbow roll on every spawn
	BaseAirChance        float64 `yaml:"base_air_chance"`        // Airborne spawn at stash 0
	AirChanceDecay       float64 `yaml:"air_chance_decay"`       // Chance lost per stash point
	AirChanceMaxDecay    float64 `yaml:"air_chance_max_decay"`   // Decay cap
	PlatformPickupChance float64 `yaml:"platform_pickup_chance"` // Pickup above a rolled platform
	ScatterTTLSeconds    float64 `yaml:"scatter_ttl_seconds"`
	ScatterGraceSeconds  float64 `yaml:"scatter_grace_seconds"` // Uncollectible right after a hit
	ScatterCap           int     `yaml:"scatter_cap"`           // Max scatter trajectories
}

// RunConfig defines scoring and progression.
type RunConfig struct {
	LifeMilestones []int   `yaml:"life_milestones"` // Meters; each awards one life, once
	GapDeathDepth  float64 `yaml:"gap_death_depth"` // Units below ground before the run ends
}
