package combat

import "idlehunt/internal/content"

type healShape int

const (
	shapeKnight healShape = iota
	shapePaladin
	shapeMage
)

// healCoeff is a multiplier/base pair for one spell and formula shape.
type healCoeff struct {
	mult, base float64
}

// mageHealReduction is applied to the shared sorcerer/druid shape.
const mageHealReduction = 0.7

var healingTable = map[string]map[healShape]healCoeff{
	"exura_infir": {
		shapeKnight:  {mult: 1.0, base: 20},
		shapePaladin: {mult: 1.2, base: 25},
		shapeMage:    {mult: 1.4, base: 30},
	},
	"exura": {
		shapeKnight:  {mult: 1.6, base: 40},
		shapePaladin: {mult: 2.0, base: 50},
		shapeMage:    {mult: 2.4, base: 60},
	},
	"exura_ico": {
		shapeKnight: {mult: 4.0, base: 100},
	},
	"exura_san": {
		shapePaladin: {mult: 4.5, base: 120},
	},
	"exura_gran": {
		shapePaladin: {mult: 3.2, base: 90},
		shapeMage:    {mult: 3.6, base: 100},
	},
	"exura_vita": {
		shapeMage: {mult: 6.0, base: 180},
	},
}

// SpellHealing is the expected HP restored by a healing spell.
func SpellHealing(c Context, s content.SpellDef) float64 {
	p := c.Player
	level := float64(p.Level)
	magic := EffectiveSkill(c, content.SkillMagic)

	var shape healShape
	switch {
	case p.Vocation == content.VocationKnight:
		shape = shapeKnight
	case p.Vocation == content.VocationPaladin:
		shape = shapePaladin
	case p.Vocation.IsMage():
		shape = shapeMage
	default:
		return floor1(s.Base + level*s.LevelFactor + magic*s.SkillFactor)
	}
	k, ok := healingTable[s.ID][shape]
	if !ok {
		return floor1(s.Base + level*s.LevelFactor + magic*s.SkillFactor)
	}
	switch shape {
	case shapeKnight:
		return floor1(level*0.2*k.mult + k.base)
	case shapePaladin:
		return floor1((level*0.2+magic)*k.mult + k.base)
	}
	return floor1(((level*0.2+magic*4)*k.mult + k.base) * mageHealReduction)
}
