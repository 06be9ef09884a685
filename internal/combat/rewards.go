package combat

import (
	"idlehunt/internal/content"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
)

// Hazard scaling per hazard level.
const (
	HazardDamagePerLevel = 0.15
	HazardYieldPerLevel  = 0.10
	HazardLootPerLevel   = 0.05

	// LureRiskPerTarget is the extra incoming damage per concurrent target
	// beyond the first.
	LureRiskPerTarget = 0.03

	// StaminaXPBonus applies while stamina remains.
	StaminaXPBonus = 0.5

	// BasicAttackMs is the basic attack cadence before attack speed.
	BasicAttackMs = 2000
)

// HazardDamage is the incoming damage multiplier of a hazard level.
func HazardDamage(level int) float64 { return 1 + float64(level)*HazardDamagePerLevel }

// HazardYield is the XP multiplier of a hazard level.
func HazardYield(level int) float64 { return 1 + float64(level)*HazardYieldPerLevel }

// IncomingMultiplier scales a monster's raw hit by the concurrent count, the
// hazard level and the lure risk of pulling several targets.
func IncomingMultiplier(c Context) float64 {
	n := c.concurrent()
	return float64(n) * HazardDamage(c.Player.Settings.HazardLevel) * (1 + float64(n-1)*LureRiskPerTarget)
}

var (
	xpStage = Stage{"stage", func(c Context, _ Hit) float64 {
		return progression.XPStage(c.Player.Level)
	}}
	xpConcurrent = Stage{"concurrent", func(c Context, _ Hit) float64 {
		return float64(c.concurrent())
	}}
	xpHazard = Stage{"hazard", func(c Context, _ Hit) float64 {
		return HazardYield(c.Player.Settings.HazardLevel)
	}}
	xpStamina = Stage{"stamina", func(c Context, _ Hit) float64 {
		if c.Player.Stamina > 0 {
			return 1 + StaminaXPBonus
		}
		return 1
	}}
	xpPrey = Stage{"prey_xp", func(c Context, _ Hit) float64 {
		return 1 + c.Player.PreyPercent(c.TargetID, player.PreyXP)/100
	}}
	xpAscension = Stage{"ascension_xp", func(c Context, _ Hit) float64 {
		return c.Player.PerkMultiplier(player.PerkXPBoost)
	}}
	xpGear = Stage{"gear_xp", func(c Context, _ Hit) float64 {
		return 1 + GearOf(c).XPPercent/100
	}}
)

// XPPipeline turns a monster's base XP into the XP one kill grants.
var XPPipeline = Pipeline{xpStage, xpConcurrent, xpHazard, xpStamina, xpPrey, xpAscension, xpGear}

// KillXP is the XP granted for killing m (already influence-scaled).
func KillXP(c Context, m content.MonsterDef) float64 {
	return XPPipeline.Apply(m.XP, c, Hit{})
}

// GoldMultiplier scales rolled gold by the concurrent count and gold find.
func GoldMultiplier(c Context) float64 {
	return float64(c.concurrent()) * (1 + GearOf(c).GoldFindPercent/100)
}

// LootBonus is the fractional drop-rate bonus passed to loot generation.
func LootBonus(c Context) float64 {
	p := c.Player
	pct := GearOf(c).LootPercent + p.PreyPercent(c.TargetID, player.PreyLoot)
	return pct/100 + (p.PerkMultiplier(player.PerkLootBoost) - 1) + float64(p.Settings.HazardLevel)*HazardLootPerLevel
}

// AttackIntervalMs is the basic attack cadence in game milliseconds.
func AttackIntervalMs(c Context) float64 {
	return BasicAttackMs / (1 + GearOf(c).AttackSpeedPercent/100)
}
