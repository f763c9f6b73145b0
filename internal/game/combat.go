package game

import (
	"log"
	"math"
)

// KillCause represents the origin of lethal damage for logging and reward logic.
type KillCause string

const (
	KillCauseShot    KillCause = "shot"
	KillCauseTurret  KillCause = "turret"
	KillCauseMine    KillCause = "mine"
	KillCauseContact KillCause = "contact"
)

func (cause KillCause) describe() string {
	switch cause {
	case KillCauseShot:
		return "a player shot"
	case KillCauseTurret:
		return "a turret"
	case KillCauseMine:
		return "a mine"
	case KillCauseContact:
		return "contact damage"
	default:
		return string(cause)
	}
}

// DamagePlayer applies damage to the player: the shield absorbs first and the
// remainder comes off health. Hits during the invulnerability window are
// ignored. It returns true if the hit was lethal.
func (s *Simulation) DamagePlayer(amount float64, cause KillCause) bool {
	p := &s.player
	if s.run.Phase == PhaseGameOver || amount <= 0 || p.Invuln > 0 {
		return false
	}

	absorbed := math.Min(p.Shield, amount)
	p.Shield -= absorbed
	p.Health = clamp(p.Health-(amount-absorbed), 0, p.MaxHealth)
	p.Invuln = PlayerInvulnFrames
	p.ShieldDelay = PlayerShieldRegenDelay

	if p.Health > 0 {
		return false
	}

	log.Printf("Player died to %s on wave %d", cause.describe(), s.run.Wave)
	s.gameOver()
	return true
}

// damageEnemy applies damage to an enemy and handles its death. Dead enemies
// are clamped to zero health and killed at once so nothing else in the same
// tick can collide with them.
func (s *Simulation) damageEnemy(e *Enemy, amount float64, cause KillCause) bool {
	if !e.Alive || amount <= 0 {
		return false
	}

	e.Health -= amount
	e.HitFlash = 6
	if e.Health > 0 {
		return false
	}

	e.Health = 0
	e.Kill()
	s.handleEnemyDeath(e, cause)
	return true
}

func (s *Simulation) handleEnemyDeath(e *Enemy, cause KillCause) {
	st := LookupArchetype(e.Archetype)
	reward := int(math.Round(float64(KillScoreBase+s.run.Wave*KillScorePerWave) * st.ScoreMult))

	s.run.Kills++
	s.run.Score += reward
	s.healPlayer(KillHeal)
	s.burst(e.Pos, 14, 3.2, ParticleBlood)
	s.emit(Event{Type: EventEnemyKilled, Value: reward, Label: string(e.Archetype), Pos: e.Pos})

	if e.Archetype == ArchetypeBoss {
		log.Printf("Boss destroyed by %s on wave %d", cause.describe(), s.run.Wave)
	}

	if s.rng.Float64() < st.DropChance {
		s.rollDrop(e.Pos)
	}
}

// rollDrop grants one pickup: heal, mine or turret by nested thresholds.
// Capacity-capped pickups fall back to a heal.
func (s *Simulation) rollDrop(pos Vec2) {
	p := &s.player
	r := s.rng.Float64()

	label := "heal"
	switch {
	case r < DropHealBand:
	case r < DropMineBand:
		if p.Mines < p.MaxMines {
			p.Mines++
			label = "mine"
		}
	default:
		if p.Turrets < p.MaxTurrets {
			p.Turrets++
			label = "turret"
		}
	}
	if label == "heal" {
		s.healPlayer(DropHealAmount)
	}

	s.burst(pos, 8, 2, ParticlePickup)
	s.emit(Event{Type: EventPickup, Label: label, Pos: pos})
}

func (s *Simulation) healPlayer(amount float64) {
	p := &s.player
	p.Health = clamp(p.Health+amount, 0, p.MaxHealth)
}

// resolveCollisions runs every pairwise interaction for the tick, in order
func (s *Simulation) resolveCollisions() {
	steps := []func(){
		s.resolvePlayerShots,
		s.resolveEnemyShots,
		s.resolveContact,
		s.resolveMines,
		s.resolveCoverHits,
	}
	for _, step := range steps {
		if s.run.Phase == PhaseGameOver {
			return
		}
		step()
	}
}

// resolvePlayerShots applies friendly fire to enemies; each shot hits at most one
func (s *Simulation) resolvePlayerShots() {
	s.playerShots.Each(func(shot *Projectile) {
		s.enemies.Each(func(e *Enemy) {
			if !shot.Alive || !e.Alive {
				return
			}
			if !overlaps(shot.Pos, shot.Radius, e.Pos, e.Radius) {
				return
			}
			shot.Kill()
			cause := KillCauseShot
			if shot.Turret {
				cause = KillCauseTurret
			}
			s.damageEnemy(e, shot.Damage, cause)
		})
	})
}

func (s *Simulation) resolveEnemyShots() {
	p := &s.player
	s.enemyShots.Each(func(shot *Projectile) {
		if s.run.Phase == PhaseGameOver {
			return
		}
		if overlaps(shot.Pos, shot.Radius, p.Pos, p.Radius) {
			shot.Kill()
			s.DamagePlayer(shot.Damage, KillCauseShot)
		}
	})
}

// resolveContact deals each overlapping enemy's damage every tick; only the
// player's invulnerability window limits the rate
func (s *Simulation) resolveContact() {
	p := &s.player
	s.enemies.Each(func(e *Enemy) {
		if s.run.Phase == PhaseGameOver {
			return
		}
		if overlaps(e.Pos, e.Radius, p.Pos, p.Radius) {
			s.DamagePlayer(e.Damage, KillCauseContact)
		}
	})
}

// resolveMines detonates armed mines touched by an enemy. The blast damages
// every enemy inside the splash radius, not just the one that set it off.
func (s *Simulation) resolveMines() {
	s.mines.Each(func(m *Mine) {
		if !m.Armed() {
			return
		}

		triggered := false
		s.enemies.Each(func(e *Enemy) {
			if !triggered && overlaps(m.Pos, m.Radius, e.Pos, e.Radius) {
				triggered = true
			}
		})
		if !triggered {
			return
		}

		s.detonate(m)
	})
}

func (s *Simulation) detonate(m *Mine) {
	m.Kill()
	s.enemies.Each(func(e *Enemy) {
		if overlaps(m.Pos, MineSplashRadius, e.Pos, e.Radius) {
			s.damageEnemy(e, MineDamage, KillCauseMine)
		}
	})
	s.burst(m.Pos, 26, 4.5, ParticleBlast)
	s.emit(Event{Type: EventMineDetonated, Pos: m.Pos})
}

// resolveCoverHits stops projectiles whose point lies inside cover
func (s *Simulation) resolveCoverHits() {
	s.playerShots.Each(func(shot *Projectile) {
		if insideCover(shot.Pos, s.cover) {
			shot.Kill()
			s.burst(shot.Pos, 3, 1.5, ParticleSpark)
		}
	})
	s.enemyShots.Each(func(shot *Projectile) {
		if insideCover(shot.Pos, s.cover) {
			shot.Kill()
		}
	})
}
