package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawUpgradesWithoutReplacement(t *testing.T) {
	s := newRunningSim(t)

	for i := 0; i < 50; i++ {
		offers := s.drawUpgrades(UpgradeChoices)
		require.Len(t, offers, UpgradeChoices)

		seen := map[UpgradeID]bool{}
		for _, id := range offers {
			assert.False(t, seen[id], "duplicate offer %s", id)
			seen[id] = true

			u, ok := LookupUpgrade(id)
			require.True(t, ok)
			assert.True(t, u.availableFor(&s.player), "unavailable offer %s", id)
		}
	}
}

func TestDrawSkipsUnavailableUpgrades(t *testing.T) {
	s := newRunningSim(t)
	s.player.Barrels = PlayerMaxBarrels

	for i := 0; i < 100; i++ {
		for _, id := range s.drawUpgrades(UpgradeChoices) {
			assert.NotEqual(t, UpgradeExtraBarrel, id)
			assert.NotEqual(t, UpgradeWeaponBlaster, id, "the equipped weapon is never offered")
		}
	}
}

func TestDrawReturnsFewerWhenCatalogIsShort(t *testing.T) {
	s := newRunningSim(t)
	saved := upgradeCatalog
	t.Cleanup(func() { upgradeCatalog = saved })
	upgradeCatalog = saved[:2]

	assert.Len(t, s.drawUpgrades(UpgradeChoices), 2)
}

func TestMaxHealthUpgradeNeverLowersHealth(t *testing.T) {
	u, ok := LookupUpgrade(UpgradeMaxHealth)
	require.True(t, ok)

	p := newPlayer(Vec2{})
	p.Health = 50
	u.Apply(&p)
	u.Apply(&p)
	assert.InDelta(t, PlayerMaxHealth+40, p.MaxHealth, 1e-9)
	assert.InDelta(t, 90, p.Health, 1e-9)

	full := newPlayer(Vec2{})
	u.Apply(&full)
	assert.InDelta(t, full.MaxHealth, full.Health, 1e-9)
}

func TestStatUpgrades(t *testing.T) {
	apply := func(id UpgradeID, p *Player) {
		u, ok := LookupUpgrade(id)
		require.True(t, ok, id)
		u.Apply(p)
	}

	p := newPlayer(Vec2{})
	apply(UpgradeExtraBarrel, &p)
	apply(UpgradeTightSpread, &p)
	apply(UpgradeFireRate, &p)
	apply(UpgradeDamage, &p)
	apply(UpgradeMinePack, &p)
	apply(UpgradeWeaponRail, &p)

	assert.Equal(t, 2, p.Barrels)
	assert.InDelta(t, PlayerSpreadAngle*0.8, p.Spread, 1e-12)
	assert.InDelta(t, 0.88, p.FireRateMult, 1e-12)
	assert.InDelta(t, 1.15, p.DamageMult, 1e-12)
	assert.Equal(t, PlayerMaxMines+1, p.MaxMines)
	assert.Equal(t, PlayerStartMines+1, p.Mines)
	assert.Equal(t, WeaponRail, p.Weapon)

	p.Barrels = PlayerMaxBarrels
	apply(UpgradeExtraBarrel, &p)
	assert.Equal(t, PlayerMaxBarrels, p.Barrels)
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[UpgradeID]bool{}
	for _, id := range Catalog() {
		assert.False(t, seen[id], "duplicate catalog entry %s", id)
		seen[id] = true
	}
	_, ok := LookupUpgrade("unknown")
	assert.False(t, ok)
}
