package game

import (
	"math"
)

// WeaponID identifies a player weapon
type WeaponID string

const (
	WeaponBlaster WeaponID = "blaster"
	WeaponShotgun WeaponID = "shotgun"
	WeaponBurst   WeaponID = "burst"
	WeaponRail    WeaponID = "rail"
)

// WeaponStats holds the firing parameters of a weapon
type WeaponStats struct {
	FireRate     int     // Frames between shots
	Damage       float64 // Per projectile, before the player's multiplier
	ShotSpeed    float64 // Pixels per frame
	ShotLife     int     // Frames
	ShotRadius   float64
	Pellets      int     // Projectiles per barrel
	PelletCone   float64 // Full jitter cone in radians for multi-pellet weapons
	RepeatDelays []int   // Extra volleys fired this many frames after the trigger
}

var weapons = map[WeaponID]WeaponStats{
	WeaponBlaster: {
		FireRate:   10,
		Damage:     10,
		ShotSpeed:  9,
		ShotLife:   70,
		ShotRadius: 4,
		Pellets:    1,
	},
	WeaponShotgun: {
		FireRate:   34,
		Damage:     7,
		ShotSpeed:  8,
		ShotLife:   38,
		ShotRadius: 3,
		Pellets:    6,
		PelletCone: 0.5,
	},
	WeaponBurst: {
		FireRate:     30,
		Damage:       9,
		ShotSpeed:    10,
		ShotLife:     70,
		ShotRadius:   4,
		Pellets:      1,
		RepeatDelays: []int{5, 10},
	},
	WeaponRail: {
		FireRate:   42,
		Damage:     36,
		ShotSpeed:  15,
		ShotLife:   60,
		ShotRadius: 5,
		Pellets:    1,
	},
}

// LookupWeapon returns the stats for a weapon, falling back to the blaster
func LookupWeapon(id WeaponID) WeaponStats {
	if stats, ok := weapons[id]; ok {
		return stats
	}
	return weapons[WeaponBlaster]
}

// barrelOffset returns the angular offset of barrel i. Barrel 0 fires along the
// aim; the rest alternate sides, starting negative, widening every pair.
func barrelOffset(i int, spread float64) float64 {
	if i <= 0 {
		return 0
	}
	side := 1.0
	if i%2 == 1 {
		side = -1
	}
	return side * math.Ceil(float64(i)/2) * spread
}

// barrelAngles lists the firing angle of every barrel around base
func barrelAngles(base float64, barrels int, spread float64) []float64 {
	barrels = max(barrels, 1)
	angles := make([]float64, barrels)
	for i := range angles {
		angles[i] = base + barrelOffset(i, spread)
	}
	return angles
}

// cooldownFor converts a weapon's fire rate into the player's next cooldown
func cooldownFor(stats WeaponStats, fireRateMult float64) int {
	return max(MinFireCooldown, int(math.Round(float64(stats.FireRate)*fireRateMult)))
}

// updatePlayerWeapon counts the cooldown down and fires when the trigger is held
func (s *Simulation) updatePlayerWeapon(firing bool) {
	p := &s.player
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if !firing || p.FireCooldown > 0 {
		return
	}

	stats := LookupWeapon(p.Weapon)
	base := p.AimAngle
	weapon := p.Weapon
	s.fireVolley(weapon, base)
	p.FireCooldown = cooldownFor(stats, p.FireRateMult)

	// Repeat volleys keep the trigger-time aim but read barrels and spread
	// when they actually fire.
	for _, delay := range stats.RepeatDelays {
		s.scheduler.After(delay, func(s *Simulation) {
			if s.run.Phase != PhaseRunning {
				return
			}
			s.fireVolley(weapon, base)
		})
	}
}

// fireVolley spawns one projectile per barrel and pellet using the live
// barrel configuration
func (s *Simulation) fireVolley(weapon WeaponID, base float64) {
	p := &s.player
	stats := LookupWeapon(weapon)
	damage := stats.Damage * p.DamageMult

	for _, angle := range barrelAngles(base, p.Barrels, p.Spread) {
		for pellet := 0; pellet < max(stats.Pellets, 1); pellet++ {
			a := angle
			if stats.Pellets > 1 {
				a += randRange(s.rng, -stats.PelletCone/2, stats.PelletCone/2)
			}
			s.playerShots.Spawn(Projectile{
				Pos:    p.Pos.Add(fromAngle(a, p.Radius+stats.ShotRadius)),
				Vel:    fromAngle(a, stats.ShotSpeed),
				Radius: stats.ShotRadius,
				Life:   stats.ShotLife,
				Damage: damage,
			})
		}
	}
}

// updateProjectiles moves a projectile population, expiring spent shots
func (s *Simulation) updateProjectiles(pool *Pool[Projectile, *Projectile]) {
	pool.Each(func(shot *Projectile) {
		shot.Pos = shot.Pos.Add(shot.Vel)
		shot.Life--
		if shot.Life <= 0 {
			shot.Kill()
			return
		}
		shot.Pos = wrap(shot.Pos, shot.Radius, s.width, s.height)
	})
}
