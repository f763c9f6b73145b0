package game

import (
	"log"
)

// UpgradeID is the stable identifier of a catalog upgrade
type UpgradeID string

const (
	UpgradeMaxHealth     UpgradeID = "max_hp"
	UpgradeMaxShield     UpgradeID = "max_shield"
	UpgradeShieldRegen   UpgradeID = "shield_regen"
	UpgradeMoveSpeed     UpgradeID = "move_speed"
	UpgradeFireRate      UpgradeID = "fire_rate"
	UpgradeDamage        UpgradeID = "damage"
	UpgradeExtraBarrel   UpgradeID = "extra_barrel"
	UpgradeTightSpread   UpgradeID = "tight_spread"
	UpgradeMinePack      UpgradeID = "mine_pack"
	UpgradeTurretPack    UpgradeID = "turret_pack"
	UpgradeWeaponShotgun UpgradeID = "weapon_shotgun"
	UpgradeWeaponBurst   UpgradeID = "weapon_burst"
	UpgradeWeaponRail    UpgradeID = "weapon_rail"
	UpgradeWeaponBlaster UpgradeID = "weapon_blaster"
)

// Upgrade is a permanent stat or weapon change. Titles and descriptions
// belong to the presentation layer and are keyed by ID.
type Upgrade struct {
	ID        UpgradeID
	Apply     func(p *Player)
	Available func(p *Player) bool
}

func (u Upgrade) availableFor(p *Player) bool {
	return u.Available == nil || u.Available(p)
}

func weaponSwap(id UpgradeID, weapon WeaponID) Upgrade {
	return Upgrade{
		ID:        id,
		Apply:     func(p *Player) { p.Weapon = weapon },
		Available: func(p *Player) bool { return p.Weapon != weapon },
	}
}

var upgradeCatalog = []Upgrade{
	{
		ID: UpgradeMaxHealth,
		Apply: func(p *Player) {
			p.MaxHealth += 20
			p.Health = clamp(p.Health+20, 0, p.MaxHealth)
		},
	},
	{
		ID: UpgradeMaxShield,
		Apply: func(p *Player) {
			p.MaxShield += 25
			p.Shield = clamp(p.Shield+25, 0, p.MaxShield)
		},
	},
	{
		ID:    UpgradeShieldRegen,
		Apply: func(p *Player) { p.ShieldRegen += 0.05 },
	},
	{
		ID:    UpgradeMoveSpeed,
		Apply: func(p *Player) { p.Speed += 0.35 },
	},
	{
		ID:    UpgradeFireRate,
		Apply: func(p *Player) { p.FireRateMult *= 0.88 },
	},
	{
		ID:    UpgradeDamage,
		Apply: func(p *Player) { p.DamageMult += 0.15 },
	},
	{
		ID:        UpgradeExtraBarrel,
		Apply:     func(p *Player) { p.Barrels = min(p.Barrels+1, PlayerMaxBarrels) },
		Available: func(p *Player) bool { return p.Barrels < PlayerMaxBarrels },
	},
	{
		ID:        UpgradeTightSpread,
		Apply:     func(p *Player) { p.Spread *= 0.8 },
		Available: func(p *Player) bool { return p.Barrels > 1 },
	},
	{
		ID: UpgradeMinePack,
		Apply: func(p *Player) {
			p.MaxMines++
			p.Mines = min(p.Mines+1, p.MaxMines)
		},
	},
	{
		ID: UpgradeTurretPack,
		Apply: func(p *Player) {
			p.MaxTurrets++
			p.Turrets = min(p.Turrets+1, p.MaxTurrets)
		},
	},
	weaponSwap(UpgradeWeaponShotgun, WeaponShotgun),
	weaponSwap(UpgradeWeaponBurst, WeaponBurst),
	weaponSwap(UpgradeWeaponRail, WeaponRail),
	weaponSwap(UpgradeWeaponBlaster, WeaponBlaster),
}

// LookupUpgrade finds a catalog entry by ID
func LookupUpgrade(id UpgradeID) (Upgrade, bool) {
	for _, u := range upgradeCatalog {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// Catalog lists every upgrade ID in catalog order
func Catalog() []UpgradeID {
	ids := make([]UpgradeID, len(upgradeCatalog))
	for i, u := range upgradeCatalog {
		ids[i] = u.ID
	}
	return ids
}

// drawUpgrades picks up to n available upgrades at random without replacement
func (s *Simulation) drawUpgrades(n int) []UpgradeID {
	pool := make([]UpgradeID, 0, len(upgradeCatalog))
	for _, u := range upgradeCatalog {
		if u.availableFor(&s.player) {
			pool = append(pool, u.ID)
		}
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:min(n, len(pool))]
}

// offerUpgrades freezes gameplay and exposes a fresh set of choices
func (s *Simulation) offerUpgrades() {
	s.offers = s.drawUpgrades(UpgradeChoices)
	s.run.Phase = PhaseUpgrade
	s.scheduler.Reset()
	s.emit(Event{Type: EventUpgradeOffered, Value: len(s.offers)})
	log.Printf("Upgrade selection opened after wave %d: %v", s.run.Wave-1, s.offers)
}

// ChooseUpgrade applies one of the offered upgrades and resumes the run with
// the next wave. Choices that were not offered are ignored.
func (s *Simulation) ChooseUpgrade(id UpgradeID) bool {
	if s.run.Phase != PhaseUpgrade {
		return false
	}

	offered := false
	for _, o := range s.offers {
		if o == id {
			offered = true
			break
		}
	}
	if !offered {
		return false
	}

	u, ok := LookupUpgrade(id)
	if !ok {
		return false
	}
	u.Apply(&s.player)
	s.offers = nil
	s.run.Phase = PhaseRunning
	s.emit(Event{Type: EventUpgradeApplied, Label: string(id)})
	log.Printf("Upgrade %s applied before wave %d", id, s.run.Wave)

	s.spawnWave()
	return true
}
