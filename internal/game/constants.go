package game

// Arena constants
const (
	DefaultWidth  = 1280.0
	DefaultHeight = 720.0
	TickRate      = 60 // Simulation steps per second
)

// Player constants
const (
	PlayerRadius           = 14.0
	PlayerMaxHealth        = 120.0
	PlayerMaxShield        = 60.0
	PlayerShieldRegen      = 0.12 // Shield points per frame once the delay has elapsed
	PlayerShieldRegenDelay = 90   // Frames after a hit before the shield regenerates
	PlayerSpeed            = 3.4
	PlayerInvulnFrames     = 8
	PlayerSpreadAngle      = 0.14 // Radians between barrel pairs
	PlayerMaxBarrels       = 7
	PlayerStartMines       = 2
	PlayerMaxMines         = 3
	PlayerStartTurrets     = 1
	PlayerMaxTurrets       = 1
	KillHeal               = 3.0
	MinFireCooldown        = 2
)

// Enemy steering constants
const (
	SeparationMargin   = 10.0
	CloseRangeThrottle = 0.35
	BossSpeedFactor    = 0.75
	OrbitWeight        = 0.9
	SeparationWeight   = 1.6
	AvoidanceWeight    = 2.2
	EnemyShotRadius    = 5.0
	EnemyShotLife      = 150
)

// Wave constants
const (
	BossWaveInterval    = 10
	UpgradeWaveInterval = 3
	UpgradeChoices      = 3
	SpawnMinDistance    = 240.0
	SpawnAttempts       = 24
	TankUnlockWave      = 7
	SniperUnlockWave    = 6
	TankBand            = 0.18
	SniperBand          = 0.30
	BossToughMinionWave = 20
	BossToughMinionOdds = 0.35
)

// Reward constants
const (
	KillScoreBase     = 120
	KillScorePerWave  = 8
	ClearScoreBase    = 400
	ClearScorePerWave = 15
	ClearHealthReward = 10.0
	ClearShieldReward = 15.0
	ClearMineReward   = 1
	DropHealAmount    = 25.0
	DropHealBand      = 0.45
	DropMineBand      = 0.80
)

// Mine constants
const (
	MineRadius       = 10.0
	MineArmFrames    = 40
	MineLifetime     = 1500
	MineSplashRadius = 95.0
	MineDamage       = 75.0
)

// Turret constants
const (
	TurretRadius        = 12.0
	TurretFireRate      = 22
	TurretDamage        = 8.0
	TurretRange         = 280.0
	TurretShotSpeed     = 9.0
	TurretShotLifetime  = 60
	TurretShotRadius    = 4.0
	TurretLifetimeWaves = 2
)

// Cover constants
const (
	CoverCount        = 7
	CoverMinSide      = 40.0
	CoverMaxSide      = 150.0
	CoverPadding      = 60.0
	CoverTopBand      = 70.0
	CoverPlayerClear  = 110.0
	CoverAttempts     = 40
	CenterCoverWidth  = 0.2
	CenterCoverHeight = 0.06
	CenterCoverY      = 0.68
	ResolveEpsilon    = 0.01
)

// Particle constants
const (
	ParticleMinLife = 18
	ParticleMaxLife = 40
	ParticleDamping = 0.92
	MaxParticles    = 700
)

// Event types emitted to the presentation layer
const (
	EventWaveCleared    = "wave_cleared"
	EventUpgradeOffered = "upgrade_offered"
	EventUpgradeApplied = "upgrade_applied"
	EventBossWave       = "boss_wave"
	EventEnemyKilled    = "enemy_killed"
	EventPickup         = "pickup"
	EventMineDetonated  = "mine_detonated"
	EventGameOver       = "game_over"
	EventNewBest        = "new_best"
)
