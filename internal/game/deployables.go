package game

import (
	"math"
)

// DropMine places a mine under the player. It is a no-op without capacity or
// outside a running phase.
func (s *Simulation) DropMine() bool {
	p := &s.player
	if s.run.Phase != PhaseRunning || p.Mines <= 0 {
		return false
	}

	p.Mines--
	s.mines.Spawn(Mine{
		Pos:    p.Pos,
		Radius: MineRadius,
		Arming: MineArmFrames,
		Life:   MineLifetime,
	})
	return true
}

// PlaceTurret deploys a turret at the player's position that lasts until the
// wave counter reaches placement wave + TurretLifetimeWaves.
func (s *Simulation) PlaceTurret() bool {
	p := &s.player
	if s.run.Phase != PhaseRunning || p.Turrets <= 0 {
		return false
	}

	p.Turrets--
	s.turrets.Spawn(Turret{
		Pos:        p.Pos,
		Radius:     TurretRadius,
		FireRate:   TurretFireRate,
		Damage:     TurretDamage,
		Range:      TurretRange,
		ExpiryWave: s.run.Wave + TurretLifetimeWaves,
	})
	return true
}

// updateMines ticks arming and lifetime countdowns
func (s *Simulation) updateMines() {
	s.mines.Each(func(m *Mine) {
		if m.Arming > 0 {
			m.Arming--
		}
		m.Life--
		if m.Life <= 0 {
			m.Kill()
		}
	})
}

// expireTurrets removes turrets whose expiry wave has been reached
func (s *Simulation) expireTurrets() {
	s.turrets.Each(func(t *Turret) {
		if s.run.Wave >= t.ExpiryWave {
			t.Kill()
		}
	})
}

// updateTurrets keeps each turret locked on a target and fires on cooldown
func (s *Simulation) updateTurrets() {
	s.expireTurrets()

	s.turrets.Each(func(t *Turret) {
		if t.Cooldown > 0 {
			t.Cooldown--
		}

		target := s.enemies.Get(t.Target)
		if target == nil || !overlaps(t.Pos, t.Range, target.Pos, 0) {
			target = s.nearestEnemy(t.Pos, t.Range)
			t.Target = 0
			if target != nil {
				t.Target = target.ID
			}
		}
		if target == nil {
			return
		}

		t.Angle = t.Pos.Towards(target.Pos)
		if t.Cooldown > 0 {
			return
		}
		t.Cooldown = t.FireRate
		s.playerShots.Spawn(Projectile{
			Pos:    t.Pos.Add(fromAngle(t.Angle, t.Radius+TurretShotRadius)),
			Vel:    fromAngle(t.Angle, TurretShotSpeed),
			Radius: TurretShotRadius,
			Life:   TurretShotLifetime,
			Damage: t.Damage,
			Turret: true,
		})
	})
}

// nearestEnemy returns the closest live enemy within maxRange of pos
func (s *Simulation) nearestEnemy(pos Vec2, maxRange float64) *Enemy {
	var best *Enemy
	bestDistSq := maxRange * maxRange
	s.enemies.Each(func(e *Enemy) {
		if d := e.Pos.DistSq(pos); d < bestDistSq {
			best = e
			bestDistSq = d
		}
	})
	return best
}

// burst emits n cosmetic particles at pos
func (s *Simulation) burst(pos Vec2, n int, speed float64, kind string) {
	n = min(n, MaxParticles-s.particles.Len())
	for i := 0; i < n; i++ {
		s.particles.Spawn(Particle{
			Pos:  pos,
			Vel:  fromAngle(s.rng.Float64()*2*math.Pi, randRange(s.rng, 0.3, 1)*speed),
			Life: ParticleMinLife + s.rng.Intn(ParticleMaxLife-ParticleMinLife+1),
			Kind: kind,
		})
	}
}

// updateParticles moves and decays particles; they never collide
func (s *Simulation) updateParticles() {
	s.particles.Each(func(pt *Particle) {
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Vel = pt.Vel.Scale(ParticleDamping)
		pt.Life--
		if pt.Life <= 0 {
			pt.Kill()
		}
	})
}
