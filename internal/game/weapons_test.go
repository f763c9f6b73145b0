package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarrelOffsetsAlternateSides(t *testing.T) {
	const s = 0.1
	tests := []struct {
		barrel int
		want   float64
	}{
		{0, 0},
		{1, -s},
		{2, s},
		{3, -2 * s},
		{4, 2 * s},
		{5, -3 * s},
		{6, 3 * s},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, barrelOffset(tt.barrel, s), 1e-12, "barrel %d", tt.barrel)
	}
}

func TestCooldownFloor(t *testing.T) {
	assert.Equal(t, 10, cooldownFor(LookupWeapon(WeaponBlaster), 1))
	assert.Equal(t, MinFireCooldown, cooldownFor(LookupWeapon(WeaponBlaster), 0.05))
	assert.Equal(t, 37, cooldownFor(LookupWeapon(WeaponRail), 0.88))
}

func TestShotgunFiresPelletsPerBarrel(t *testing.T) {
	s := newRunningSim(t)
	clearArena(s)
	s.player.Weapon = WeaponShotgun
	s.player.Barrels = 3

	s.fireVolley(WeaponShotgun, 0)
	assert.Equal(t, 3*LookupWeapon(WeaponShotgun).Pellets, s.playerShots.Len())
}

func TestShotsStartAtBarrelTip(t *testing.T) {
	s := newRunningSim(t)
	clearArena(s)

	s.fireVolley(WeaponBlaster, 0)
	shots := s.playerShots.Snapshot()
	require.Len(t, shots, 1)

	stats := LookupWeapon(WeaponBlaster)
	assert.InDelta(t, s.player.Pos.X+s.player.Radius+stats.ShotRadius, shots[0].Pos.X, 1e-9)
	assert.InDelta(t, s.player.Pos.Y, shots[0].Pos.Y, 1e-9)
	assert.InDelta(t, stats.ShotSpeed, shots[0].Vel.Len(), 1e-9)
	assert.Equal(t, stats.Damage, shots[0].Damage)
}

func TestBurstRepeatsUseLiveBarrels(t *testing.T) {
	s := newRunningSim(t)
	clearArena(s)
	s.player.Weapon = WeaponBurst
	s.player.Barrels = 1

	s.updatePlayerWeapon(true)
	require.Equal(t, 1, s.playerShots.Len())
	require.Equal(t, 2, s.scheduler.Pending())

	// An upgrade between the trigger and the repeat widens the later volleys
	s.player.Barrels = 3
	s.player.Spread = 0.2
	s.player.Pos = Vec2{400, 300}

	for i := 0; i < 5; i++ {
		s.scheduler.Advance(s)
	}
	assert.Equal(t, 4, s.playerShots.Len())

	var repeat []Projectile
	s.playerShots.Each(func(p *Projectile) {
		if p.Pos.DistSq(Vec2{400, 300}) < 100*100 {
			repeat = append(repeat, *p)
		}
	})
	assert.Len(t, repeat, 3, "repeat volley leaves from the live barrel position")

	for i := 0; i < 5; i++ {
		s.scheduler.Advance(s)
	}
	assert.Equal(t, 7, s.playerShots.Len())
	assert.Zero(t, s.scheduler.Pending())
}

// burstSim returns a running simulation holding the burst weapon with one
// distant, unkillable enemy so the wave never clears
func burstSim(t *testing.T) *Simulation {
	t.Helper()
	s := newRunningSim(t)
	clearArena(s)
	spawnTestEnemy(s, ArchetypeNormal, Vec2{DefaultWidth - 40, DefaultHeight - 40}, 1e9)
	s.player.Weapon = WeaponBurst
	s.player.Barrels = 1
	return s
}

func TestBurstRepeatsFireOnScheduleThroughStep(t *testing.T) {
	s := burstSim(t)

	s.Step(Input{Firing: true})
	require.Equal(t, 1, s.playerShots.Len())

	var fired []int
	for frame := 1; frame <= 11; frame++ {
		before := s.playerShots.Len()
		s.Step(Input{})
		if s.playerShots.Len() > before {
			fired = append(fired, frame)
		}
	}
	assert.Equal(t, []int{5, 10}, fired)
	assert.Equal(t, 3, s.playerShots.Len())
}

func TestBurstRepeatsDroppedOnPause(t *testing.T) {
	s := burstSim(t)

	s.Step(Input{Firing: true})
	s.Step(Input{TogglePause: true})
	require.Equal(t, PhasePaused, s.Phase())
	assert.Zero(t, s.scheduler.Pending())

	s.Step(Input{TogglePause: true})
	require.Equal(t, PhaseRunning, s.Phase())
	for i := 0; i < 12; i++ {
		s.Step(Input{})
	}
	assert.Equal(t, 1, s.playerShots.Len())
}

func TestBurstRepeatsDroppedWhenUpgradesOpen(t *testing.T) {
	s := newRunningSim(t)
	clearArena(s)
	s.player.Weapon = WeaponBurst

	s.updatePlayerWeapon(true)
	require.Equal(t, 2, s.scheduler.Pending())
	s.checkWaveClear()
	require.Equal(t, PhaseUpgrade, s.Phase())
	assert.Zero(t, s.scheduler.Pending())
}

func TestFireCooldownGatesTrigger(t *testing.T) {
	s := newRunningSim(t)
	clearArena(s)

	s.updatePlayerWeapon(true)
	assert.Equal(t, 1, s.playerShots.Len())

	for i := 0; i < 9; i++ {
		s.updatePlayerWeapon(true)
	}
	assert.Equal(t, 1, s.playerShots.Len(), "blaster cooldown is 10 frames")

	s.updatePlayerWeapon(true)
	assert.Equal(t, 2, s.playerShots.Len())
}

func TestProjectilesExpire(t *testing.T) {
	s := newRunningSim(t)
	clearArena(s)
	h := s.playerShots.Spawn(Projectile{Pos: Vec2{100, 100}, Vel: Vec2{1, 0}, Life: 2, Radius: 3})

	s.updateProjectiles(s.playerShots)
	require.NotNil(t, s.playerShots.Get(h))
	assert.Equal(t, Vec2{101, 100}, s.playerShots.Get(h).Pos)

	s.updateProjectiles(s.playerShots)
	assert.Nil(t, s.playerShots.Get(h))
}
