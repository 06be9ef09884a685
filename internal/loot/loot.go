// Package loot rolls monster drop tables, item rarities and the modifiers of
// unique items.
package loot

import (
	"idlehunt/internal/content"
	"idlehunt/internal/player"
	"idlehunt/internal/rng"
)

const (
	// GlobalDropRate scales every flat drop chance.
	GlobalDropRate = 1.25
	// InfluencedDropFactor scales flat chances of influenced monsters.
	InfluencedDropFactor = 1.5
	// BossLegendaryChance is the share of boss equipment drops that are
	// legendary; the rest are epic.
	BossLegendaryChance = 0.20
)

// Ladder holds cumulative rarity thresholds for one influence type.
type Ladder struct {
	Legendary, Epic, Rare, Uncommon float64
}

// Ladders are the per-influence rarity ladders of non-boss equipment.
var Ladders = map[content.Influence]Ladder{
	content.InfluenceNone:      {Legendary: 0.0005, Epic: 0.003, Rare: 0.015, Uncommon: 0.05},
	content.InfluenceCorrupted: {Legendary: 0.002, Epic: 0.015, Rare: 0.06, Uncommon: 0.18},
	content.InfluenceEnraged:   {Legendary: 0.005, Epic: 0.03, Rare: 0.10, Uncommon: 0.25},
	content.InfluenceBlessed:   {Legendary: 0.01, Epic: 0.05, Rare: 0.15, Uncommon: 0.35},
}

// Drop is the output of one loot roll.
type Drop struct {
	Items   map[string]int        // stackable id -> count
	Uniques []player.ItemInstance // rolled above common
}

// Empty reports whether nothing dropped.
func (d Drop) Empty() bool { return len(d.Items) == 0 && len(d.Uniques) == 0 }

// RollRarity rolls the rarity of one non-boss equipment entry. bonus is a
// fraction (0.1 = +10%) applied to every threshold.
func RollRarity(src rng.Source, inf content.Influence, bonus float64) content.Rarity {
	l, ok := Ladders[inf]
	if !ok {
		l = Ladders[content.InfluenceNone]
	}
	f := 1 + max(bonus, 0)
	r := src.Float64()
	switch {
	case r < l.Legendary*f:
		return content.RarityLegendary
	case r < l.Epic*f:
		return content.RarityEpic
	case r < l.Rare*f:
		return content.RarityRare
	case r < l.Uncommon*f:
		return content.RarityUncommon
	}
	return content.RarityCommon
}

// FlatChance is the probability that a table entry drops as a stackable.
func FlatChance(m content.MonsterDef, e content.LootEntry, bonus float64) float64 {
	p := e.Chance * GlobalDropRate * (1 + max(bonus, 0))
	if m.Influence != content.InfluenceNone {
		p *= InfluencedDropFactor
	}
	return min(p, 1)
}

// GenerateLoot rolls m's drop table. bonus is the caller's fractional loot
// bonus (gear, prey, perks, hazard).
func GenerateLoot(src rng.Source, cat *content.Catalog, m content.MonsterDef, bonus float64) Drop {
	d := Drop{Items: make(map[string]int)}
	for _, e := range m.Loot {
		def, ok := cat.Item(e.ItemID)
		if !ok {
			continue
		}
		if def.IsEquipment() {
			if m.Boss {
				if !rng.Chance(src, FlatChance(m, e, bonus)) {
					continue
				}
				r := content.RarityEpic
				if rng.Chance(src, BossLegendaryChance) {
					r = content.RarityLegendary
				}
				d.Uniques = append(d.Uniques, NewUnique(src, def, r))
				continue
			}
			if r := RollRarity(src, m.Influence, bonus); r > content.RarityCommon {
				d.Uniques = append(d.Uniques, NewUnique(src, def, r))
				continue
			}
		}
		if rng.Chance(src, FlatChance(m, e, bonus)) {
			d.Items[e.ItemID] += rng.Range(src, 1, max(e.MaxCount, 1))
		}
	}
	return d
}

// ExpectedValue is the mean NPC sell value of one kill's stackable drops.
// Uniques are ignored; the offline model does not grant them.
func ExpectedValue(cat *content.Catalog, m content.MonsterDef, bonus float64) float64 {
	total := 0.0
	for _, e := range m.Loot {
		def, ok := cat.Item(e.ItemID)
		if !ok || (def.IsEquipment() && m.Boss) {
			continue
		}
		avgCount := float64(1+max(e.MaxCount, 1)) / 2
		total += FlatChance(m, e, bonus) * avgCount * float64(def.SellPrice)
	}
	return total
}
