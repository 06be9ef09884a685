package combat

import (
	"idlehunt/internal/content"
)

// Per-vocation scaling factors of the weapon formulas.
var (
	meleeFactor = map[content.Vocation]float64{
		content.VocationKnight:   0.16,
		content.VocationPaladin:  0.09,
		content.VocationMonk:     0.10,
		content.VocationSorcerer: 0.05,
		content.VocationDruid:    0.05,
		content.VocationNone:     0.07,
	}
	distanceFactor = map[content.Vocation]float64{
		content.VocationPaladin: 0.17,
		content.VocationKnight:  0.07,
	}
	magicWeaponFactor = map[content.Vocation]float64{
		content.VocationSorcerer: 0.12,
		content.VocationDruid:    0.12,
	}
)

const (
	defaultDistanceFactor    = 0.06
	defaultMagicWeaponFactor = 0.04
	monkFistFactor           = 0.9
	fistFactor               = 0.3
	weaponScale              = 0.5
)

// baseDamage is the level term every attack starts from.
func baseDamage(c Context) float64 { return float64(c.Player.Level) / 5 }

// PlayerDamage is the expected damage of one basic attack, after the damage
// pipeline and the floor of 1. A launcher without compatible ammunition
// deals 0.
func PlayerDamage(c Context) float64 {
	raw, ok := rawWeaponDamage(c)
	if !ok {
		return 0
	}
	return floor1(DamagePipeline.Apply(raw, c, Hit{}))
}

// AttackSkill is the skill basic attacks train.
func AttackSkill(c Context) content.Skill {
	w, ok := c.weapon()
	if !ok {
		return content.SkillFist
	}
	switch w.def.WeaponKind {
	case content.WeaponBow, content.WeaponCrossbow, content.WeaponThrowing:
		return content.SkillDistance
	case content.WeaponWand, content.WeaponRod:
		return content.SkillMagic
	}
	if w.def.ScalingSkill != "" {
		return w.def.ScalingSkill
	}
	return content.SkillSword
}

// AmmoID returns the item id of ammunition a basic attack consumes, or "".
func AmmoID(c Context) string {
	w, ok := c.weapon()
	if !ok || !w.def.NeedsAmmo() {
		return ""
	}
	return c.Player.Equipment[content.SlotAmmo].ItemID
}

func rawWeaponDamage(c Context) (float64, bool) {
	p := c.Player
	base := baseDamage(c)
	w, ok := c.weapon()
	if !ok {
		f := fistFactor
		if p.Vocation == content.VocationMonk {
			f = monkFistFactor
		}
		return base + EffectiveSkill(c, content.SkillFist)*f, true
	}

	attack := float64(w.def.Attack + w.inst.Modifiers.Attack)
	switch w.def.WeaponKind {
	case content.WeaponBow, content.WeaponCrossbow, content.WeaponThrowing:
		if w.def.NeedsAmmo() {
			ammo, ok := compatibleAmmo(c, w.def.AmmoType)
			if !ok {
				return 0, false
			}
			attack += float64(ammo.Attack)
		}
		f, ok := distanceFactor[p.Vocation]
		if !ok {
			f = defaultDistanceFactor
		}
		return base + attack*EffectiveSkill(c, content.SkillDistance)*f*weaponScale, true
	case content.WeaponWand, content.WeaponRod:
		f, ok := magicWeaponFactor[p.Vocation]
		if !ok {
			f = defaultMagicWeaponFactor
		}
		return base + attack*EffectiveSkill(c, content.SkillMagic)*f*weaponScale, true
	}
	return base + attack*EffectiveSkill(c, AttackSkill(c))*meleeFactor[p.Vocation]*weaponScale, true
}

// compatibleAmmo returns the equipped ammunition if it matches the launcher
// and at least one unit is carried.
func compatibleAmmo(c Context, want content.AmmoType) (content.ItemDef, bool) {
	inst, ok := c.Player.Equipment[content.SlotAmmo]
	if !ok {
		return content.ItemDef{}, false
	}
	def, ok := c.Catalog.Item(inst.ItemID)
	if !ok || def.AmmoType != want || c.Player.Inventory[inst.ItemID] < 1 {
		return content.ItemDef{}, false
	}
	return def, true
}

// SpellDamage is the expected damage of an attack spell.
func SpellDamage(c Context, s content.SpellDef) float64 {
	skill := s.ScalingSkill
	if skill == "" {
		skill = content.SkillMagic
	}
	raw := s.Base + float64(c.Player.Level)*s.LevelFactor + EffectiveSkill(c, skill)*s.SkillFactor
	return floor1(DamagePipeline.Apply(raw, c, Hit{Spell: true, AoE: s.AoE}))
}

// RuneDamage is the expected damage of an offensive rune.
func RuneDamage(c Context, item content.ItemDef) float64 {
	if item.Rune == nil {
		return 0
	}
	r := item.Rune
	raw := r.Base + float64(c.Player.Level)*r.LevelFactor + EffectiveSkill(c, content.SkillMagic)*r.MagicFactor
	return floor1(DamagePipeline.Apply(raw, c, Hit{}))
}

// CanUseRune reports whether the player's magic level allows the rune.
func CanUseRune(c Context, item content.ItemDef) bool {
	return item.Rune != nil && c.Player.SkillLevel(content.SkillMagic) >= item.Rune.MagicLevel
}

func floor1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
