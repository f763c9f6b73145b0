package game

// Snapshot is a read-only copy of everything the presentation layer draws
type Snapshot struct {
	Width       float64      `msgpack:"width"`
	Height      float64      `msgpack:"height"`
	Run         RunState     `msgpack:"run"`
	Paused      bool         `msgpack:"paused"`
	GameOver    bool         `msgpack:"gameOver"`
	UpgradeOpen bool         `msgpack:"upgradeOpen"`
	Offers      []UpgradeID  `msgpack:"offers"`
	Player      Player       `msgpack:"player"`
	Cover       []Rect       `msgpack:"cover"`
	Enemies     []Enemy      `msgpack:"enemies"`
	PlayerShots []Projectile `msgpack:"playerShots"`
	EnemyShots  []Projectile `msgpack:"enemyShots"`
	Mines       []Mine       `msgpack:"mines"`
	Turrets     []Turret     `msgpack:"turrets"`
	Particles   []Particle   `msgpack:"particles"`
}

// Snapshot copies the current state. The result shares no memory with the
// simulation.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Width:       s.width,
		Height:      s.height,
		Run:         s.run,
		Paused:      s.run.Phase == PhasePaused,
		GameOver:    s.run.Phase == PhaseGameOver,
		UpgradeOpen: s.run.Phase == PhaseUpgrade,
		Offers:      s.Offers(),
		Player:      s.player,
		Cover:       s.Cover(),
		Enemies:     s.enemies.Snapshot(),
		PlayerShots: s.playerShots.Snapshot(),
		EnemyShots:  s.enemyShots.Snapshot(),
		Mines:       s.mines.Snapshot(),
		Turrets:     s.turrets.Snapshot(),
		Particles:   s.particles.Snapshot(),
	}
}

// Running reports whether gameplay is advancing
func (snap Snapshot) Running() bool {
	return snap.Run.Phase == PhaseRunning
}
