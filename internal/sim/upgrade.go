package sim

import (
	"math"
	"math/rand"
)

// UpgradeID names one of the permanent upgrades offered on level-up.
type UpgradeID string

const (
	UpgradeAttack         UpgradeID = "attack_up"
	UpgradeHealth         UpgradeID = "health_up"
	UpgradeCooldown       UpgradeID = "cooldown_down"
	UpgradeMagicBoltCount UpgradeID = "magicbolt_count"
	UpgradeBurstCount     UpgradeID = "electricburst_count"
	UpgradeExplosionSize  UpgradeID = "explosion_size"
)

// AllUpgrades is the fixed upgrade pool.
var AllUpgrades = [...]UpgradeID{
	UpgradeAttack,
	UpgradeHealth,
	UpgradeCooldown,
	UpgradeMagicBoltCount,
	UpgradeBurstCount,
	UpgradeExplosionSize,
}

// UpgradeChoices is how many upgrades a level-up offers.
const UpgradeChoices = 3

var upgradeLabels = map[UpgradeID]string{
	UpgradeAttack:         "Attack +10%",
	UpgradeHealth:         "Max health +10%",
	UpgradeCooldown:       "Cooldowns -10%",
	UpgradeMagicBoltCount: "+1 magic bolt",
	UpgradeBurstCount:     "+1 electric burst",
	UpgradeExplosionSize:  "Explosion size +20%",
}

// Label is the menu text for the upgrade.
func (u UpgradeID) Label() string {
	if l, ok := upgradeLabels[u]; ok {
		return l
	}
	return string(u)
}

// ChooseUpgrades samples k distinct upgrades uniformly with a partial
// Fisher-Yates shuffle of the pool.
func ChooseUpgrades(rng *rand.Rand, k int) []UpgradeID {
	pool := AllUpgrades
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]UpgradeID, k)
	copy(out, pool[:k])
	return out
}

// ApplyUpgrade modifies p's stats. Unknown ids are ignored and reported false.
func ApplyUpgrade(p *Player, id UpgradeID, t Tuning) bool {
	switch id {
	case UpgradeAttack:
		p.AttackPower *= 1.1
	case UpgradeHealth:
		p.MaxHealth *= 1.1
		p.Health *= 1.1
	case UpgradeCooldown:
		p.BaseCooldown = math.Max(t.MinCooldown, p.BaseCooldown*0.9)
		p.deriveCooldowns(t)
	case UpgradeMagicBoltCount:
		p.MagicBoltCount++
	case UpgradeBurstCount:
		p.BurstCount++
	case UpgradeExplosionSize:
		p.ExplosionScale *= 1.2
	default:
		return false
	}
	return true
}
