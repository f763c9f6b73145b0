package game

import (
	"log"
	"math"
	"math/rand"
	"time"
)

// Config wires a simulation to its arena size, random source and best-score store
type Config struct {
	Width  float64
	Height float64
	Seed   int64 // Zero picks a time-based seed
	Store  ScoreStore
}

// Simulation owns every piece of mutable run state. It is single-threaded:
// callers must not use it from more than one goroutine at a time.
type Simulation struct {
	width  float64
	height float64
	rng    *rand.Rand
	store  ScoreStore

	run      RunState
	player   Player
	cover    []Rect
	offers   []UpgradeID
	loadBest int

	enemies     *Pool[Enemy, *Enemy]
	playerShots *Pool[Projectile, *Projectile]
	enemyShots  *Pool[Projectile, *Projectile]
	mines       *Pool[Mine, *Mine]
	turrets     *Pool[Turret, *Turret]
	particles   *Pool[Particle, *Particle]
	scheduler   Scheduler

	events []Event
}

// NewSimulation creates an idle simulation
func NewSimulation(cfg Config) *Simulation {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Store == nil {
		cfg.Store = discardStore{}
	}

	s := &Simulation{
		width:       cfg.Width,
		height:      cfg.Height,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		store:       cfg.Store,
		enemies:     NewPool[Enemy](),
		playerShots: NewPool[Projectile](),
		enemyShots:  NewPool[Projectile](),
		mines:       NewPool[Mine](),
		turrets:     NewPool[Turret](),
		particles:   NewPool[Particle](),
	}
	s.player = newPlayer(s.center())
	s.run.BestScore = s.loadBestScore()
	return s
}

// newPlayer creates a player with default values
func newPlayer(pos Vec2) Player {
	return Player{
		Pos:          pos,
		Radius:       PlayerRadius,
		Health:       PlayerMaxHealth,
		MaxHealth:    PlayerMaxHealth,
		Shield:       PlayerMaxShield,
		MaxShield:    PlayerMaxShield,
		ShieldRegen:  PlayerShieldRegen,
		Speed:        PlayerSpeed,
		Weapon:       WeaponBlaster,
		Barrels:      1,
		Spread:       PlayerSpreadAngle,
		Mines:        PlayerStartMines,
		MaxMines:     PlayerMaxMines,
		Turrets:      PlayerStartTurrets,
		MaxTurrets:   PlayerMaxTurrets,
		DamageMult:   1,
		FireRateMult: 1,
	}
}

func (s *Simulation) center() Vec2 {
	return Vec2{s.width / 2, s.height / 2}
}

// Start leaves the idle phase by beginning a fresh run
func (s *Simulation) Start() {
	if s.run.Phase != PhaseIdle {
		return
	}
	s.Reset()
}

// Reset discards the current run and starts again at wave 1
func (s *Simulation) Reset() {
	s.enemies.Clear()
	s.playerShots.Clear()
	s.enemyShots.Clear()
	s.mines.Clear()
	s.turrets.Clear()
	s.particles.Clear()
	s.scheduler.Reset()
	s.offers = nil
	s.events = nil

	s.player = newPlayer(s.center())
	s.run = RunState{Phase: PhaseRunning, Wave: 1, BestScore: s.loadBestScore()}
	s.spawnWave()

	log.Printf("Run started (%.0fx%.0f arena, best %d)", s.width, s.height, s.run.BestScore)
}

// Resize updates the wrap bounds to a new viewport; cover is rebuilt on the
// next odd wave
func (s *Simulation) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = width
	s.height = height
}

// Step advances the simulation by one frame with the given input
func (s *Simulation) Step(in Input) {
	s.run.Tick++
	s.handleActions(in)

	switch s.run.Phase {
	case PhaseRunning:
		s.update(in)
		return
	case PhaseUpgrade, PhaseGameOver:
		s.updateMines()
		s.updateParticles()
	case PhasePaused:
		s.updateParticles()
	}
	s.compact()
}

// handleActions consumes the one-shot actions of an input
func (s *Simulation) handleActions(in Input) {
	if in.Restart {
		s.Reset()
		return
	}
	if in.TogglePause {
		s.TogglePause()
	}
	if in.UpgradeChoice != "" {
		s.ChooseUpgrade(in.UpgradeChoice)
	}
	if in.DropMine {
		s.DropMine()
	}
	if in.PlaceTurret {
		s.PlaceTurret()
	}
}

// TogglePause flips between running and paused; other phases ignore it.
// Pausing drops repeat volleys that have not fired yet.
func (s *Simulation) TogglePause() bool {
	switch s.run.Phase {
	case PhaseRunning:
		s.run.Phase = PhasePaused
		s.scheduler.Reset()
	case PhasePaused:
		s.run.Phase = PhaseRunning
	default:
		return false
	}
	return true
}

// update runs one gameplay tick in fixed component order
func (s *Simulation) update(in Input) {
	s.scheduler.Advance(s)
	s.updatePlayer(in)
	s.updateEnemies()
	s.updateProjectiles(s.playerShots)
	s.updateProjectiles(s.enemyShots)
	s.updateTurrets()
	s.updateMines()
	s.updateParticles()

	s.resolveCollisions()
	s.compact()
	s.checkWaveClear()
}

// updatePlayer applies movement, timers, shield regen and the weapon
func (s *Simulation) updatePlayer(in Input) {
	p := &s.player

	move := Vec2{clamp(in.Move.X, -1, 1), clamp(in.Move.Y, -1, 1)}
	if move.LenSq() > 1 {
		move = move.Normalize()
	}
	p.Pos = p.Pos.Add(move.Scale(p.Speed))
	p.Pos = resolveAgainstCover(p.Pos, p.Radius, s.cover)
	p.Pos = wrap(p.Pos, p.Radius, s.width, s.height)

	if in.Aim != p.Pos {
		p.AimAngle = p.Pos.Towards(in.Aim)
	}

	if p.Invuln > 0 {
		p.Invuln--
	}
	if p.ShieldDelay > 0 {
		p.ShieldDelay--
	} else {
		p.Shield = math.Min(p.Shield+p.ShieldRegen, p.MaxShield)
	}

	s.updatePlayerWeapon(in.Firing)
}

// compact drops dead entities from every pool once per tick
func (s *Simulation) compact() {
	s.enemies.Compact()
	s.playerShots.Compact()
	s.enemyShots.Compact()
	s.mines.Compact()
	s.turrets.Compact()
	s.particles.Compact()
}

// gameOver enters the terminal phase and persists a new best score once
func (s *Simulation) gameOver() {
	if s.run.Phase == PhaseGameOver {
		return
	}
	s.run.Phase = PhaseGameOver
	s.scheduler.Reset()
	s.emit(Event{Type: EventGameOver, Value: s.run.Score})
	log.Printf("Game over on wave %d with %d kills and score %d", s.run.Wave, s.run.Kills, s.run.Score)

	if s.run.Score <= s.loadBest {
		return
	}
	s.run.BestScore = s.run.Score
	if err := s.store.SaveBestScore(s.run.Score); err != nil {
		log.Printf("Error saving best score: %v", err)
	}
	s.emit(Event{Type: EventNewBest, Value: s.run.Score})
}

func (s *Simulation) loadBestScore() int {
	best, err := s.store.LoadBestScore()
	if err != nil {
		log.Printf("Error loading best score: %v", err)
		best = 0
	}
	s.loadBest = best
	return best
}

// discardStore is used when no best-score store is configured
type discardStore struct{}

func (discardStore) LoadBestScore() (int, error) { return 0, nil }
func (discardStore) SaveBestScore(int) error     { return nil }

func (s *Simulation) emit(ev Event) {
	if ev.Wave == 0 {
		ev.Wave = s.run.Wave
	}
	s.events = append(s.events, ev)
}

// DrainEvents returns and clears the events recorded since the last call
func (s *Simulation) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// Phase returns the current progression phase
func (s *Simulation) Phase() Phase { return s.run.Phase }

// Run returns the progression counters
func (s *Simulation) Run() RunState { return s.run }

// Player returns a copy of the player state
func (s *Simulation) Player() Player { return s.player }

// Offers returns the upgrade choices currently on offer
func (s *Simulation) Offers() []UpgradeID { return append([]UpgradeID(nil), s.offers...) }

// Cover returns a copy of the cover layout
func (s *Simulation) Cover() []Rect { return append([]Rect(nil), s.cover...) }

// Size returns the arena dimensions
func (s *Simulation) Size() (float64, float64) { return s.width, s.height }
