package combat

import "idlehunt/internal/content"

// RollCap bounds every aggregated percentage that drives a roll.
const RollCap = 50.0

// Gear is the sum of modifiers across usable equipment. Percent fields are
// whole percentages.
type Gear struct {
	XPPercent          float64
	LootPercent        float64
	AttackSpeedPercent float64
	CritPercent        float64
	DodgePercent       float64
	GoldFindPercent    float64
	ExecutionerPercent float64
	ReflectionPercent  float64
	SkillBonus         map[content.Skill]int
}

// GearOf aggregates the modifiers of the player's usable equipment.
func GearOf(c Context) Gear {
	g := Gear{SkillBonus: make(map[content.Skill]int)}
	for _, e := range c.usableEquipment() {
		m := e.inst.Modifiers
		g.XPPercent += m.XPPercent
		g.LootPercent += m.LootPercent
		g.AttackSpeedPercent += m.AttackSpeedPercent
		g.CritPercent += m.CritPercent
		g.DodgePercent += m.DodgePercent
		g.GoldFindPercent += m.GoldFindPercent
		g.ExecutionerPercent += m.ExecutionerPercent
		g.ReflectionPercent += m.ReflectionPercent
		for s, v := range m.SkillBonus {
			g.SkillBonus[s] += v
		}
	}
	g.CritPercent = min(g.CritPercent, RollCap)
	g.DodgePercent = min(g.DodgePercent, RollCap)
	g.ExecutionerPercent = min(g.ExecutionerPercent, RollCap)
	g.ReflectionPercent = min(g.ReflectionPercent, RollCap)
	g.AttackSpeedPercent = min(g.AttackSpeedPercent, RollCap)
	return g
}

// EffectiveSkill is the skill level plus flat gear bonuses.
func EffectiveSkill(c Context, s content.Skill) float64 {
	return float64(c.Player.SkillLevel(s) + GearOf(c).SkillBonus[s])
}
