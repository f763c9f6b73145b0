package game

import (
	"log"
	"math"
)

// EnemyCount is the size of a regular wave
func EnemyCount(wave int) int {
	return 8 + int(math.Floor(float64(wave)*2.0))
}

// IsBossWave reports whether wave spawns a boss
func IsBossWave(wave int) bool {
	return wave > 0 && wave%BossWaveInterval == 0
}

// BossMinionCount is the number of escorts spawned with a boss
func BossMinionCount(wave int) int {
	return 4 + wave/5
}

// OffersUpgrade reports whether clearing wave opens the upgrade selection.
// Clears of waves 1, 4, 7, ... qualify.
func OffersUpgrade(clearedWave int) bool {
	return (clearedWave-1)%UpgradeWaveInterval == 0
}

// rollArchetype picks a regular-wave archetype. Tanks and snipers unlock at
// their waves and occupy disjoint probability bands.
func rollArchetype(r float64, wave int) Archetype {
	switch {
	case wave >= TankUnlockWave && r < TankBand:
		return ArchetypeTank
	case wave >= SniperUnlockWave && r >= TankBand && r < SniperBand:
		return ArchetypeSniper
	default:
		return ArchetypeNormal
	}
}

// spawnWave populates the arena for the current wave
func (s *Simulation) spawnWave() {
	wave := s.run.Wave
	if coverRegenerates(wave) {
		s.cover = GenerateCover(s.rng, s.width, s.height, s.player.Pos)
	}

	if IsBossWave(wave) {
		s.spawnEnemy(ArchetypeBoss, wave)
		for i := 0; i < BossMinionCount(wave); i++ {
			a := ArchetypeNormal
			if wave >= BossToughMinionWave && s.rng.Float64() < BossToughMinionOdds {
				a = ArchetypeTank
			}
			s.spawnEnemy(a, wave)
		}
		s.emit(Event{Type: EventBossWave, Value: BossMinionCount(wave) + 1})
		log.Printf("Boss wave %d spawned with %d escorts", wave, BossMinionCount(wave))
		return
	}

	for i := 0; i < EnemyCount(wave); i++ {
		s.spawnEnemy(rollArchetype(s.rng.Float64(), wave), wave)
	}
}

func (s *Simulation) spawnEnemy(a Archetype, wave int) {
	pos := s.randomSpawnPoint(LookupArchetype(a).Radius)
	s.enemies.Spawn(s.newEnemy(a, pos, wave))
}

// checkWaveClear fires the wave-clear transition when no enemies remain
func (s *Simulation) checkWaveClear() {
	if s.run.Phase != PhaseRunning || s.enemies.Len() != 0 {
		return
	}
	s.waveCleared()
}

// waveCleared rewards the cleared wave, advances the counter and either opens
// the upgrade selection or spawns the next wave
func (s *Simulation) waveCleared() {
	p := &s.player
	cleared := s.run.Wave
	bonus := ClearScoreBase + cleared*ClearScorePerWave

	s.run.Score += bonus
	p.Mines = min(p.Mines+ClearMineReward, p.MaxMines)
	p.Health = clamp(p.Health+ClearHealthReward, 0, p.MaxHealth)
	p.Shield = clamp(p.Shield+ClearShieldReward, 0, p.MaxShield)
	s.run.Wave = cleared + 1
	s.expireTurrets()

	s.emit(Event{Type: EventWaveCleared, Wave: cleared, Value: bonus})
	log.Printf("Wave %d cleared (+%d), score %d", cleared, bonus, s.run.Score)

	if OffersUpgrade(cleared) {
		s.offerUpgrades()
		return
	}
	s.spawnWave()
}
