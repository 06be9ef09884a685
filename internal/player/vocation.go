package player

import "idlehunt/internal/content"

// VocationStats are the per-vocation growth and sustain numbers.
type VocationStats struct {
	HPPerLevel      float64
	ManaPerLevel    float64
	HPRegen         float64 // per tick, before promotion
	ManaRegen       float64 // per tick, before promotion
	ArmorEfficiency float64
}

var vocationStats = map[content.Vocation]VocationStats{
	content.VocationNone:     {HPPerLevel: 5, ManaPerLevel: 5, HPRegen: 0.5, ManaRegen: 0.5, ArmorEfficiency: 0.8},
	content.VocationKnight:   {HPPerLevel: 15, ManaPerLevel: 5, HPRegen: 1.0, ManaRegen: 0.5, ArmorEfficiency: 1.0},
	content.VocationPaladin:  {HPPerLevel: 10, ManaPerLevel: 15, HPRegen: 0.75, ManaRegen: 0.75, ArmorEfficiency: 0.9},
	content.VocationSorcerer: {HPPerLevel: 5, ManaPerLevel: 30, HPRegen: 0.5, ManaRegen: 1.5, ArmorEfficiency: 0.8},
	content.VocationDruid:    {HPPerLevel: 5, ManaPerLevel: 30, HPRegen: 0.5, ManaRegen: 1.5, ArmorEfficiency: 0.8},
	content.VocationMonk:     {HPPerLevel: 10, ManaPerLevel: 10, HPRegen: 0.75, ManaRegen: 0.75, ArmorEfficiency: 0.85},
}

// StatsFor returns the stats of a vocation, falling back to VocationNone.
func StatsFor(v content.Vocation) VocationStats {
	if st, ok := vocationStats[v]; ok {
		return st
	}
	return vocationStats[content.VocationNone]
}

const (
	BaseHP   = 150.0
	BaseMana = 50.0

	// MaxStamina is 42 hours of hunting at one unit per tick.
	MaxStamina = 151200.0

	// PromotionRegenFactor multiplies regeneration once promoted.
	PromotionRegenFactor = 1.8
)

// BaseMaxHP is the level-derived maximum HP of a vocation.
func BaseMaxHP(v content.Vocation, level int) float64 {
	if level < 1 {
		level = 1
	}
	return BaseHP + float64(level-1)*StatsFor(v).HPPerLevel
}

// BaseMaxMana is the level-derived maximum mana of a vocation.
func BaseMaxMana(v content.Vocation, level int) float64 {
	if level < 1 {
		level = 1
	}
	return BaseMana + float64(level-1)*StatsFor(v).ManaPerLevel
}

// Ascension perk ids.
const (
	PerkDamageBoost = "damage_boost"
	PerkXPBoost     = "xp_boost"
	PerkLootBoost   = "loot_boost"
	PerkPotionBoost = "potion_boost"
	PerkVitality    = "vitality"
	PerkWisdom      = "wisdom"
)

// PerkPercentPerLevel is the bonus each perk level grants, in percent.
var PerkPercentPerLevel = map[string]float64{
	PerkDamageBoost: 2,
	PerkXPBoost:     3,
	PerkLootBoost:   2,
	PerkPotionBoost: 5,
	PerkVitality:    2,
	PerkWisdom:      2,
}

// PerkMultiplier returns 1 + the perk's total bonus as a fraction.
func (p *State) PerkMultiplier(id string) float64 {
	return 1 + float64(p.Perk(id))*PerkPercentPerLevel[id]/100
}

// EffectiveMaxHP is MaxHP with the vitality perk applied.
func (p *State) EffectiveMaxHP() float64 { return p.MaxHP * p.PerkMultiplier(PerkVitality) }

// EffectiveMaxMana is MaxMana with the wisdom perk applied.
func (p *State) EffectiveMaxMana() float64 { return p.MaxMana * p.PerkMultiplier(PerkWisdom) }

// ClampVitals keeps HP and mana inside [0, effective max] and stamina inside
// [0, MaxStamina].
func (p *State) ClampVitals() {
	p.HP = clamp(p.HP, 0, p.EffectiveMaxHP())
	p.Mana = clamp(p.Mana, 0, p.EffectiveMaxMana())
	p.Stamina = clamp(p.Stamina, 0, MaxStamina)
}

// HPPercent is current HP as a percentage of the effective maximum.
func (p *State) HPPercent() float64 { return percent(p.HP, p.EffectiveMaxHP()) }

// ManaPercent is current mana as a percentage of the effective maximum.
func (p *State) ManaPercent() float64 { return percent(p.Mana, p.EffectiveMaxMana()) }

func percent(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max * 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
