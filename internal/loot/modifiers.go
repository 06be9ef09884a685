package loot

import (
	"math"

	"idlehunt/internal/content"
	"idlehunt/internal/player"
	"idlehunt/internal/rng"
)

var (
	rarityStatMultiplier = [...]float64{1.0, 1.15, 1.30, 1.45, 1.60}
	rarityBonusCount     = [...]float64{0, 1, 2, 3, 4.5}
	raritySpecialBase    = [...]float64{0, 1.0, 1.5, 2.0, 3.0}
)

// NewUnique creates an identity-bearing instance of def with rolled
// modifiers. The id is read from src so a seeded run replays.
func NewUnique(src rng.Source, def content.ItemDef, r content.Rarity) player.ItemInstance {
	return player.ItemInstance{
		ItemID:    def.ID,
		UID:       rng.NewID(src),
		Rarity:    r,
		Modifiers: RollModifiers(src, def, r),
	}
}

// Potential scales special modifier magnitudes by how valuable an item is.
func Potential(def content.ItemDef) float64 {
	if def.RequiredLevel > 0 {
		return 1 + float64(def.RequiredLevel)/50
	}
	switch p := def.SellPrice; {
	case p < 100:
		return 1.0
	case p < 1000:
		return 1.3
	case p < 5000:
		return 1.7
	case p < 20000:
		return 2.2
	}
	return 2.8
}

type special struct {
	id     string
	scale  float64
	weight int
}

var percentSpecials = []special{
	{"xp", 1.0, 1},
	{"loot", 1.0, 1},
	{"attack_speed", 1.0, 1},
	{"crit", 0.5, 1},
	{"dodge", 0.5, 1},
	{"gold_find", 1.5, 1},
	{"executioner", 0.5, 1},
	{"reflection", 0.5, 1},
}

// specialPool is the weighted candidate pool for def. The item's own scaling
// skill is weighted three times, on top of the flat magic entry every item
// has, so a wand can roll magic twice.
func specialPool(def content.ItemDef) []special {
	pool := append([]special(nil), percentSpecials...)
	if def.ScalingSkill != "" {
		pool = append(pool, special{"skill:" + string(def.ScalingSkill), 1.0, 3})
	}
	pool = append(pool, special{"defense", 1.0, 1}, special{"skill:magic", 1.0, 1})
	return pool
}

// RollModifiers rolls the bonus stats of an item of rarity r. Every item
// above common ends up with at least one modifier.
func RollModifiers(src rng.Source, def content.ItemDef, r content.Rarity) player.Modifiers {
	var m player.Modifiers
	if r <= content.RarityCommon || int(r) >= len(rarityStatMultiplier) {
		return m
	}

	mult := rarityStatMultiplier[r] - 1
	m.Attack = statBonus(def.Attack, mult)
	m.Armor = statBonus(def.Armor, mult)
	m.Defense = statBonus(def.Defense, mult)

	expected := rarityBonusCount[r]
	n := int(expected)
	if frac := expected - float64(n); rng.Chance(src, frac) {
		n++
	}
	potential := Potential(def)
	pool := specialPool(def)
	for i := 0; i < n && len(pool) > 0; i++ {
		idx := pickWeighted(src, pool)
		s := pool[idx]
		pool = append(pool[:idx:idx], pool[idx+1:]...)
		v := raritySpecialBase[r] * potential * s.scale * rng.Uniform(src, 0.7, 1.3)
		apply(&m, s.id, v)
	}

	if m.Empty() {
		if def.Slot.IsJewelry() {
			m.Armor = 1
		} else {
			m.Defense = 1
		}
	}
	return m
}

func statBonus(base int, mult float64) int {
	if base <= 0 {
		return 0
	}
	return max(1, int(math.Ceil(float64(base)*mult)))
}

func pickWeighted(src rng.Source, pool []special) int {
	total := 0
	for _, s := range pool {
		total += s.weight
	}
	roll := src.Intn(total)
	for i, s := range pool {
		if roll < s.weight {
			return i
		}
		roll -= s.weight
	}
	return len(pool) - 1
}

func apply(m *player.Modifiers, id string, v float64) {
	pct := math.Max(1, math.Round(v*10)/10)
	flat := max(1, int(math.Round(v)))
	switch id {
	case "xp":
		m.XPPercent += pct
	case "loot":
		m.LootPercent += pct
	case "attack_speed":
		m.AttackSpeedPercent += pct
	case "crit":
		m.CritPercent += pct
	case "dodge":
		m.DodgePercent += pct
	case "gold_find":
		m.GoldFindPercent += pct
	case "executioner":
		m.ExecutionerPercent += pct
	case "reflection":
		m.ReflectionPercent += pct
	case "defense":
		m.Defense += flat
	default:
		skill := content.Skill(id[len("skill:"):])
		if m.SkillBonus == nil {
			m.SkillBonus = make(map[content.Skill]int)
		}
		m.SkillBonus[skill] += flat
	}
}
