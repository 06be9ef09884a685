package combat

import (
	"idlehunt/internal/content"
	"idlehunt/internal/player"
)

const (
	shieldFactor       = 0.05
	effectiveArmorRate = 0.75
)

// PlayerDefense is the flat damage reduction of the player's equipment.
func PlayerDefense(c Context) float64 {
	armor, shield := 0.0, 0.0
	for _, e := range c.usableEquipment() {
		armor += float64(e.def.Armor + e.inst.Modifiers.Armor)
		if e.slot == content.SlotMainHand || e.slot == content.SlotOffHand {
			shield = max(shield, float64(e.def.Defense+e.inst.Modifiers.Defense))
		}
	}
	eff := player.StatsFor(c.Player.Vocation).ArmorEfficiency
	def := (armor*eff + shield*EffectiveSkill(c, content.SkillShielding)*shieldFactor) * effectiveArmorRate
	return def * (1 + c.Player.PreyPercent(c.TargetID, player.PreyDefense)/100)
}

// Mitigate reduces one incoming hit by defense, never below zero.
func Mitigate(raw, defense float64) float64 {
	return max(0, raw-defense)
}

// ExpectedMitigated is the mean of Mitigate over a hit drawn uniformly from
// [lo, hi].
func ExpectedMitigated(lo, hi, defense float64) float64 {
	if hi <= lo {
		return Mitigate(lo, defense)
	}
	if defense <= lo {
		return (lo+hi)/2 - defense
	}
	if defense >= hi {
		return 0
	}
	// Only the part of the range above defense hurts.
	span := hi - defense
	return span * span / 2 / (hi - lo)
}
