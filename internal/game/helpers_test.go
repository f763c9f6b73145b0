package game

import (
	"testing"
)

const testSeed = 12345

// newRunningSim returns a seeded simulation that has started wave 1
func newRunningSim(t *testing.T) *Simulation {
	t.Helper()
	s := NewSimulation(Config{Seed: testSeed})
	s.Start()
	return s
}

// clearArena removes enemies, projectiles and cover so a test controls every
// position. The phase is left untouched.
func clearArena(s *Simulation) {
	s.enemies.Clear()
	s.playerShots.Clear()
	s.enemyShots.Clear()
	s.mines.Clear()
	s.turrets.Clear()
	s.cover = nil
}

// spawnTestEnemy adds an enemy with a fixed health at pos and returns its
// handle. Pointers into the pool go stale on the next spawn, so tests keep
// handles.
func spawnTestEnemy(s *Simulation, a Archetype, pos Vec2, health float64) Handle {
	e := s.newEnemy(a, pos, s.run.Wave)
	e.Health = health
	e.MaxHealth = health
	return s.enemies.Spawn(e)
}

func countEvents(events []Event, eventType string) int {
	n := 0
	for _, ev := range events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}
