package game

// Phase is the progression state of a run
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseUpgrade
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseUpgrade:
		return "upgrade"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is the normalized per-tick input produced by the presentation layer.
// Move is already combined from keyboard and joystick sources; the boolean
// actions are one-shot events consumed by a single Step.
type Input struct {
	Move          Vec2
	Aim           Vec2
	Firing        bool
	DropMine      bool
	PlaceTurret   bool
	TogglePause   bool
	Restart       bool
	UpgradeChoice UpgradeID
}

// Player is the singleton player-controlled agent
type Player struct {
	Pos          Vec2     `msgpack:"pos"`
	Radius       float64  `msgpack:"radius"`
	Health       float64  `msgpack:"health"`
	MaxHealth    float64  `msgpack:"maxHealth"`
	Shield       float64  `msgpack:"shield"`
	MaxShield    float64  `msgpack:"maxShield"`
	ShieldRegen  float64  `msgpack:"shieldRegen"` // Per frame
	ShieldDelay  int      `msgpack:"shieldDelay"` // Frames until regen resumes
	Speed        float64  `msgpack:"speed"`
	Invuln       int      `msgpack:"invuln"`       // Frames of invulnerability left
	FireCooldown int      `msgpack:"fireCooldown"` // Frames until the next shot
	Weapon       WeaponID `msgpack:"weapon"`
	Barrels      int      `msgpack:"barrels"`
	Spread       float64  `msgpack:"spread"` // Radians between barrel pairs
	Mines        int      `msgpack:"mines"`
	MaxMines     int      `msgpack:"maxMines"`
	Turrets      int      `msgpack:"turrets"`
	MaxTurrets   int      `msgpack:"maxTurrets"`
	DamageMult   float64  `msgpack:"damageMult"`
	FireRateMult float64  `msgpack:"fireRateMult"`
	AimAngle     float64  `msgpack:"aimAngle"`
}

// Enemy is a hostile agent
type Enemy struct {
	Entity
	Archetype Archetype `msgpack:"archetype"`
	Pos       Vec2      `msgpack:"pos"`
	Vel       Vec2      `msgpack:"vel"`
	Radius    float64   `msgpack:"radius"`
	Health    float64   `msgpack:"health"`
	MaxHealth float64   `msgpack:"maxHealth"`
	Speed     float64   `msgpack:"speed"`
	Damage    float64   `msgpack:"damage"`
	ShotSpeed float64   `msgpack:"shotSpeed"`
	FireRate  int       `msgpack:"fireRate"`
	FireTimer int       `msgpack:"fireTimer"`
	OrbitBias float64   `msgpack:"orbitBias"`
	Phase     int       `msgpack:"phase"` // Boss pattern cursor
	HitFlash  int       `msgpack:"hitFlash"`
}

// Projectile is shared by player, turret and enemy fire
type Projectile struct {
	Entity
	Pos    Vec2    `msgpack:"pos"`
	Vel    Vec2    `msgpack:"vel"`
	Radius float64 `msgpack:"radius"`
	Life   int     `msgpack:"life"` // Frames left
	Damage float64 `msgpack:"damage"`
	Turret bool    `msgpack:"turret"`
}

// Mine is an area-denial device dropped by the player
type Mine struct {
	Entity
	Pos    Vec2    `msgpack:"pos"`
	Radius float64 `msgpack:"radius"`
	Arming int     `msgpack:"arming"` // Frames before it can detonate
	Life   int     `msgpack:"life"`
}

// Armed reports whether the mine can detonate
func (m *Mine) Armed() bool {
	return m.Arming <= 0
}

// Turret is a stationary ally that expires after a number of waves
type Turret struct {
	Entity
	Pos        Vec2    `msgpack:"pos"`
	Radius     float64 `msgpack:"radius"`
	Cooldown   int     `msgpack:"cooldown"`
	FireRate   int     `msgpack:"fireRate"`
	Damage     float64 `msgpack:"damage"`
	Range      float64 `msgpack:"range"`
	ExpiryWave int     `msgpack:"expiryWave"`
	Target     Handle  `msgpack:"target"`
	Angle      float64 `msgpack:"angle"`
}

// Particle is purely cosmetic and never collides
type Particle struct {
	Entity
	Pos  Vec2   `msgpack:"pos"`
	Vel  Vec2   `msgpack:"vel"`
	Life int    `msgpack:"life"`
	Kind string `msgpack:"kind"`
}

// Particle kinds
const (
	ParticleSpark  = "spark"
	ParticleBlood  = "blood"
	ParticleBlast  = "blast"
	ParticlePickup = "pickup"
)

// Event is a notable simulation occurrence for the presentation layer
type Event struct {
	Type  string `msgpack:"type"`
	Wave  int    `msgpack:"wave"`
	Value int    `msgpack:"value,omitempty"`
	Label string `msgpack:"label,omitempty"`
	Pos   Vec2   `msgpack:"pos,omitempty"`
}

// RunState holds the progression counters of a run
type RunState struct {
	Phase     Phase `msgpack:"phase"`
	Wave      int   `msgpack:"wave"`
	Kills     int   `msgpack:"kills"`
	Score     int   `msgpack:"score"`
	BestScore int   `msgpack:"bestScore"`
	Tick      int64 `msgpack:"tick"`
}

// ScoreStore persists the best score between runs
type ScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}
