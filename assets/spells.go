package assets

import "idlehunt/internal/content"

var (
	mages      = []content.Vocation{content.VocationSorcerer, content.VocationDruid}
	everyone   = []content.Vocation{content.VocationKnight, content.VocationPaladin, content.VocationSorcerer, content.VocationDruid, content.VocationMonk, content.VocationNone}
	hybridHeal = []content.Vocation{content.VocationPaladin, content.VocationSorcerer, content.VocationDruid}
)

var spells = []content.SpellDef{
	// Healing
	{ID: "exura_infir", Name: "Magic Patch", Words: "exura infir", Kind: content.SpellHeal, ManaCost: 6, CooldownMs: 1000, Level: 1,
		Vocations: everyone, Base: 15, LevelFactor: 0.2, SkillFactor: 1},
	{ID: "exura", Name: "Light Healing", Words: "exura", Kind: content.SpellHeal, ManaCost: 20, CooldownMs: 1000, Level: 8,
		Vocations: []content.Vocation{content.VocationPaladin, content.VocationSorcerer, content.VocationDruid, content.VocationMonk}, Base: 30, LevelFactor: 0.3, SkillFactor: 2},
	{ID: "exura_ico", Name: "Wound Cleansing", Words: "exura ico", Kind: content.SpellHeal, ManaCost: 40, CooldownMs: 1000, Level: 8,
		Vocations: knightOnly},
	{ID: "exura_gran", Name: "Intense Healing", Words: "exura gran", Kind: content.SpellHeal, ManaCost: 70, CooldownMs: 1000, Level: 20,
		Vocations: hybridHeal},
	{ID: "exura_san", Name: "Divine Healing", Words: "exura san", Kind: content.SpellHeal, ManaCost: 160, CooldownMs: 1000, Level: 35,
		Vocations: paladins},
	{ID: "exura_vita", Name: "Ultimate Healing", Words: "exura vita", Kind: content.SpellHeal, ManaCost: 160, CooldownMs: 1000, Level: 30,
		Vocations: mages},

	// Support
	{ID: content.SpellMagicShield, Name: "Magic Shield", Words: "utamo vita", Kind: content.SpellSupport, ManaCost: 50, CooldownMs: 14000, Level: 14,
		Vocations: mages, DurationMs: 200_000},

	// Attack
	{ID: "exori", Name: "Berserk", Words: "exori", Kind: content.SpellAttack, ManaCost: 115, CooldownMs: 4000, Level: 35,
		Vocations: knightOnly, AoE: true, Base: 10, LevelFactor: 0.2, SkillFactor: 1.1, ScalingSkill: content.SkillSword},
	{ID: "exori_ico", Name: "Brutal Strike", Words: "exori ico", Kind: content.SpellAttack, ManaCost: 30, CooldownMs: 6000, Level: 16,
		Vocations: knightOnly, Base: 15, LevelFactor: 0.2, SkillFactor: 1.6, ScalingSkill: content.SkillSword},
	{ID: "exori_gran", Name: "Fierce Berserk", Words: "exori gran", Kind: content.SpellAttack, ManaCost: 340, CooldownMs: 6000, Level: 90,
		Vocations: knightOnly, AoE: true, Base: 20, LevelFactor: 0.2, SkillFactor: 2.2, ScalingSkill: content.SkillSword},
	{ID: "exori_con", Name: "Ethereal Spear", Words: "exori con", Kind: content.SpellAttack, ManaCost: 25, CooldownMs: 2000, Level: 23,
		Vocations: paladins, Base: 10, LevelFactor: 0.2, SkillFactor: 1.4, ScalingSkill: content.SkillDistance},
	{ID: "exevo_mas_san", Name: "Divine Caldera", Words: "exevo mas san", Kind: content.SpellAttack, ManaCost: 160, CooldownMs: 4000, Level: 50,
		Vocations: paladins, AoE: true, Base: 20, LevelFactor: 0.2, SkillFactor: 3.5},
	{ID: "exori_vis", Name: "Energy Strike", Words: "exori vis", Kind: content.SpellAttack, ManaCost: 20, CooldownMs: 2000, Level: 12,
		Vocations: mages, Base: 10, LevelFactor: 0.2, SkillFactor: 1.4},
	{ID: "exori_flam", Name: "Flame Strike", Words: "exori flam", Kind: content.SpellAttack, ManaCost: 20, CooldownMs: 2000, Level: 14,
		Vocations: mages, Base: 10, LevelFactor: 0.2, SkillFactor: 1.4},
	{ID: "exevo_gran_mas_vis", Name: "Rage of the Skies", Words: "exevo gran mas vis", Kind: content.SpellAttack, ManaCost: 600, CooldownMs: 40000, Level: 55,
		Vocations: sorcerers, AoE: true, Base: 30, LevelFactor: 0.2, SkillFactor: 8},
	{ID: "exevo_gran_mas_tera", Name: "Wrath of Nature", Words: "exevo gran mas tera", Kind: content.SpellAttack, ManaCost: 700, CooldownMs: 40000, Level: 55,
		Vocations: druids, AoE: true, Base: 30, LevelFactor: 0.2, SkillFactor: 7},
	{ID: "exori_tiger", Name: "Tiger Clash", Words: "exori tiger", Kind: content.SpellAttack, ManaCost: 30, CooldownMs: 2000, Level: 10,
		Vocations: monks, Base: 12, LevelFactor: 0.2, SkillFactor: 1.5, ScalingSkill: content.SkillFist},
	{ID: "exori_mas_tiger", Name: "Flurry of Blows", Words: "exori mas tiger", Kind: content.SpellAttack, ManaCost: 120, CooldownMs: 4000, Level: 40,
		Vocations: monks, AoE: true, Base: 15, LevelFactor: 0.2, SkillFactor: 1.9, ScalingSkill: content.SkillFist},
}
