package game

import (
	"math"
)

// Archetype is an enemy's behavioral and stat category
type Archetype string

const (
	ArchetypeNormal Archetype = "normal"
	ArchetypeTank   Archetype = "tank"
	ArchetypeSniper Archetype = "sniper"
	ArchetypeBoss   Archetype = "boss"
)

// statRange is an affine wave-scaled stat: base + rand(0..spread) + perWave*wave
type statRange struct {
	Base    float64
	Spread  float64
	PerWave float64
}

func (r statRange) roll(s *Simulation, wave int) float64 {
	return r.Base + s.rng.Float64()*r.Spread + r.PerWave*float64(wave)
}

// ArchetypeStats is the per-archetype configuration table entry
type ArchetypeStats struct {
	Radius        float64
	Health        statRange
	Speed         statRange
	Damage        statRange
	ShotSpeed     statRange
	FireRate      int // Frames between shots at wave 0
	FireRatePer   int // Frames removed per wave
	FireRateFloor int
	SpeedFactor   float64
	DesiredRange  float64 // Full speed beyond this distance, throttled inside it
	Jitter        float64 // Max angular error of aimed shots
	DropChance    float64
	ScoreMult     float64
}

var archetypes = map[Archetype]ArchetypeStats{
	ArchetypeNormal: {
		Radius:        13,
		Health:        statRange{26, 8, 5},
		Speed:         statRange{1.3, 0.4, 0.03},
		Damage:        statRange{8, 0, 0.6},
		ShotSpeed:     statRange{4.2, 0, 0.05},
		FireRate:      120,
		FireRatePer:   2,
		FireRateFloor: 45,
		SpeedFactor:   1,
		DesiredRange:  150,
		Jitter:        0.18,
		DropChance:    0.06,
		ScoreMult:     1,
	},
	ArchetypeTank: {
		Radius:        20,
		Health:        statRange{90, 20, 12},
		Speed:         statRange{0.9, 0.2, 0.02},
		Damage:        statRange{14, 0, 0.9},
		ShotSpeed:     statRange{3.6, 0, 0.04},
		FireRate:      150,
		FireRatePer:   2,
		FireRateFloor: 60,
		SpeedFactor:   1,
		DesiredRange:  80,
		Jitter:        0.22,
		DropChance:    0.14,
		ScoreMult:     2,
	},
	ArchetypeSniper: {
		Radius:        11,
		Health:        statRange{22, 6, 4},
		Speed:         statRange{1.1, 0.3, 0.02},
		Damage:        statRange{16, 0, 0.8},
		ShotSpeed:     statRange{7.5, 0, 0.07},
		FireRate:      170,
		FireRatePer:   2,
		FireRateFloor: 70,
		SpeedFactor:   1,
		DesiredRange:  330,
		Jitter:        0.05,
		DropChance:    0.14,
		ScoreMult:     2,
	},
	ArchetypeBoss: {
		Radius:        34,
		Health:        statRange{600, 100, 90},
		Speed:         statRange{1.0, 0.2, 0.01},
		Damage:        statRange{22, 0, 1.2},
		ShotSpeed:     statRange{5, 0, 0.05},
		FireRate:      70,
		FireRatePer:   1,
		FireRateFloor: 25,
		SpeedFactor:   BossSpeedFactor,
		DesiredRange:  220,
		Jitter:        0.10,
		DropChance:    0.60,
		ScoreMult:     10,
	},
}

// LookupArchetype returns the configuration for an archetype
func LookupArchetype(a Archetype) ArchetypeStats {
	if stats, ok := archetypes[a]; ok {
		return stats
	}
	return archetypes[ArchetypeNormal]
}

// fireRateAt scales an archetype's fire interval by wave, never below its floor
func (st ArchetypeStats) fireRateAt(wave int) int {
	return max(st.FireRateFloor, st.FireRate-st.FireRatePer*wave, 1)
}

// newEnemy rolls a wave-scaled enemy of the given archetype at pos
func (s *Simulation) newEnemy(a Archetype, pos Vec2, wave int) Enemy {
	st := LookupArchetype(a)
	health := st.Health.roll(s, wave)
	fireRate := st.fireRateAt(wave)
	return Enemy{
		Archetype: a,
		Pos:       pos,
		Radius:    st.Radius,
		Health:    health,
		MaxHealth: health,
		Speed:     st.Speed.roll(s, wave) * st.SpeedFactor,
		Damage:    st.Damage.roll(s, wave),
		ShotSpeed: st.ShotSpeed.roll(s, wave),
		FireRate:  fireRate,
		FireTimer: s.rng.Intn(fireRate),
		OrbitBias: randRange(s.rng, -1, 1),
	}
}

// updateEnemies steers and fires every live enemy
func (s *Simulation) updateEnemies() {
	s.enemies.Each(func(e *Enemy) {
		if e.HitFlash > 0 {
			e.HitFlash--
		}

		e.Vel = s.steer(e)
		e.Pos = e.Pos.Add(e.Vel)
		e.Pos = resolveAgainstCover(e.Pos, e.Radius, s.cover)
		e.Pos = wrap(e.Pos, e.Radius, s.width, s.height)

		e.FireTimer++
		if e.FireTimer >= e.FireRate {
			e.FireTimer = 0
			s.enemyFire(e)
		}
	})
}

// steer computes an enemy's velocity from seek, orbit, separation and cover
// avoidance, throttled inside the archetype's desired range
func (s *Simulation) steer(e *Enemy) Vec2 {
	st := LookupArchetype(e.Archetype)

	toPlayer := s.player.Pos.Sub(e.Pos)
	distance := toPlayer.Len()
	seek := toPlayer.Normalize()
	orbit := seek.Perp().Scale(e.OrbitBias * OrbitWeight)

	var separation Vec2
	s.enemies.Each(func(other *Enemy) {
		if other.ID == e.ID {
			return
		}
		minDist := e.Radius + other.Radius + SeparationMargin
		away := e.Pos.Sub(other.Pos)
		d := away.Len()
		if d >= minDist {
			return
		}
		if d == 0 {
			away = fromAngle(s.rng.Float64()*2*math.Pi, 1)
			d = 1
		}
		// Closer neighbours push harder
		separation = separation.Add(away.Scale(1 / d).Scale((minDist - d) / minDist))
	})

	var avoidance Vec2
	for _, r := range s.cover {
		pushed, hit := resolveCircleRect(e.Pos, e.Radius, r)
		if hit {
			avoidance = avoidance.Add(pushed.Sub(e.Pos).Normalize())
		}
	}

	desired := seek.
		Add(orbit).
		Add(separation.Scale(SeparationWeight)).
		Add(avoidance.Scale(AvoidanceWeight)).
		Normalize()

	speed := e.Speed
	if distance < st.DesiredRange {
		speed *= CloseRangeThrottle
	}
	return desired.Scale(speed)
}

// enemyFire fires an archetype's pattern toward the player
func (s *Simulation) enemyFire(e *Enemy) {
	st := LookupArchetype(e.Archetype)
	bearing := e.Pos.Towards(s.player.Pos)

	if e.Archetype != ArchetypeBoss {
		s.spawnEnemyShot(e, bearing+randRange(s.rng, -st.Jitter, st.Jitter))
		return
	}

	pattern := bossPatterns[e.Phase%len(bossPatterns)]
	e.Phase++
	for _, angle := range pattern.angles(bearing) {
		s.spawnEnemyShot(e, angle)
	}
}

func (s *Simulation) spawnEnemyShot(e *Enemy, angle float64) {
	s.enemyShots.Spawn(Projectile{
		Pos:    e.Pos.Add(fromAngle(angle, e.Radius+EnemyShotRadius)),
		Vel:    fromAngle(angle, e.ShotSpeed),
		Radius: EnemyShotRadius,
		Life:   EnemyShotLife,
		Damage: e.Damage,
	})
}

// bossPattern is one step of the boss's round-robin firing cycle
type bossPattern struct {
	Name  string
	Shots int
	Step  float64 // Radians between adjacent shots
	Ring  bool    // Ignore the bearing and cover the full circle
}

var bossPatterns = []bossPattern{
	{Name: "fan", Shots: 5, Step: 0.22},
	{Name: "burst", Shots: 3, Step: 0.06},
	{Name: "ring", Shots: 10, Step: 2 * math.Pi / 10, Ring: true},
}

// angles lays the pattern's shots out around bearing
func (bp bossPattern) angles(bearing float64) []float64 {
	out := make([]float64, bp.Shots)
	for i := range out {
		offset := (float64(i) - float64(bp.Shots-1)/2) * bp.Step
		if bp.Ring {
			offset = float64(i) * bp.Step
		}
		out[i] = normalizeAngle(bearing + offset)
	}
	return out
}
