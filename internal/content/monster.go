package content

// LootEntry is one row of a monster's drop table.
type LootEntry struct {
	ItemID   string  `json:"item_id"`
	Chance   float64 `json:"chance"` // per kill, 0..1, before drop-rate scaling
	MaxCount int     `json:"max_count"`
}

// MonsterDef is the base combat definition of a monster or boss.
type MonsterDef struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	HP               float64     `json:"hp"`
	MinDamage        float64     `json:"min_damage"`
	MaxDamage        float64     `json:"max_damage"`
	AttackIntervalMs int64       `json:"attack_interval_ms"`
	XP               float64     `json:"xp"`
	MinGold          int         `json:"min_gold"`
	MaxGold          int         `json:"max_gold"`
	Loot             []LootEntry `json:"loot,omitempty"`
	MinLevel         int         `json:"min_level,omitempty"`
	Boss             bool        `json:"boss,omitempty"`
	CooldownSeconds  int64       `json:"cooldown_seconds,omitempty"`

	// Influence is set only on transformed copies returned by Influenced.
	Influence Influence `json:"influence,omitempty"`
}

type influenceScale struct {
	hp, xp, damage, gold, interval float64
}

var influenceScales = map[Influence]influenceScale{
	InfluenceCorrupted: {hp: 4, xp: 6, damage: 1.3, gold: 3, interval: 1},
	InfluenceEnraged:   {hp: 2.5, xp: 12, damage: 1.5, gold: 5, interval: 0.6},
	InfluenceBlessed:   {hp: 15, xp: 40, damage: 1.2, gold: 15, interval: 1},
}

// Influenced returns the monster scaled by the given influence. The base
// definition is never modified and InfluenceNone returns it unchanged.
func (m MonsterDef) Influenced(inf Influence) MonsterDef {
	sc, ok := influenceScales[inf]
	if !ok {
		return m
	}
	out := m
	out.Influence = inf
	out.Name = string(inf) + " " + m.Name
	out.HP = m.HP * sc.hp
	out.XP = m.XP * sc.xp
	out.MinDamage = m.MinDamage * sc.damage
	out.MaxDamage = m.MaxDamage * sc.damage
	out.MinGold = int(float64(m.MinGold) * sc.gold)
	out.MaxGold = int(float64(m.MaxGold) * sc.gold)
	out.AttackIntervalMs = int64(float64(m.AttackIntervalMs) * sc.interval)
	return out
}

// AverageDamage is the midpoint of the damage range.
func (m MonsterDef) AverageDamage() float64 { return (m.MinDamage + m.MaxDamage) / 2 }

// AverageGold is the midpoint of the gold range.
func (m MonsterDef) AverageGold() float64 { return float64(m.MinGold+m.MaxGold) / 2 }
