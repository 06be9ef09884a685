// Package player defines the persisted player aggregate and the small pure
// helpers every simulation step needs (effective maxima, clamping, prey
// lookups). Steps clone a State before changing it so callers never see their
// input mutated.
package player

import (
	"idlehunt/internal/content"
)

// SkillState is a skill level plus progress toward the next level.
type SkillState struct {
	Level    int     `json:"level"`
	Progress float64 `json:"progress"` // percent, [0, 100)
}

// ItemInstance is an equipped or carried item. Stackable copies have no UID;
// unique instances carry a UUID, a rarity and rolled modifiers.
type ItemInstance struct {
	ItemID    string         `json:"item_id"`
	UID       string         `json:"uid,omitempty"`
	Rarity    content.Rarity `json:"rarity,omitempty"`
	Modifiers Modifiers      `json:"modifiers,omitempty"`
}

// Unique reports whether the instance is identity-bearing.
func (it ItemInstance) Unique() bool { return it.UID != "" }

// Modifiers are the rolled bonuses of a unique item. Percent fields are
// whole percentages (2.5 means +2.5%).
type Modifiers struct {
	Attack  int `json:"attack,omitempty"`
	Armor   int `json:"armor,omitempty"`
	Defense int `json:"defense,omitempty"`

	XPPercent          float64               `json:"xp_percent,omitempty"`
	LootPercent        float64               `json:"loot_percent,omitempty"`
	AttackSpeedPercent float64               `json:"attack_speed_percent,omitempty"`
	CritPercent        float64               `json:"crit_percent,omitempty"`
	DodgePercent       float64               `json:"dodge_percent,omitempty"`
	GoldFindPercent    float64               `json:"gold_find_percent,omitempty"`
	ExecutionerPercent float64               `json:"executioner_percent,omitempty"`
	ReflectionPercent  float64               `json:"reflection_percent,omitempty"`
	SkillBonus         map[content.Skill]int `json:"skill_bonus,omitempty"`
}

// Empty reports whether no modifier is set.
func (m Modifiers) Empty() bool {
	if m.Attack != 0 || m.Armor != 0 || m.Defense != 0 {
		return false
	}
	if m.XPPercent != 0 || m.LootPercent != 0 || m.AttackSpeedPercent != 0 || m.CritPercent != 0 {
		return false
	}
	if m.DodgePercent != 0 || m.GoldFindPercent != 0 || m.ExecutionerPercent != 0 || m.ReflectionPercent != 0 {
		return false
	}
	for _, v := range m.SkillBonus {
		if v != 0 {
			return false
		}
	}
	return true
}

// Hunt is the active hunt pointer.
type Hunt struct {
	MonsterID  string `json:"monster_id"`
	Concurrent int    `json:"concurrent"`
	StartedAt  int64  `json:"started_at"`
}

// Training is the active offline-style skill training pointer.
type Training struct {
	Skill     content.Skill `json:"skill"`
	StartedAt int64         `json:"started_at"`
}

// Cooldowns are forward-looking wall-clock marks in Unix milliseconds.
type Cooldowns struct {
	Spells map[string]int64 `json:"spells,omitempty"`
	Potion int64            `json:"potion,omitempty"`
	Rune   int64            `json:"rune,omitempty"`
	Global int64            `json:"global,omitempty"`
}

// Ready reports whether a cooldown mark has passed.
func Ready(mark, now int64) bool { return mark <= now }

// PreyBonus is the bonus kind granted by a prey slot.
type PreyBonus string

const (
	PreyXP      PreyBonus = "xp"
	PreyDamage  PreyBonus = "damage"
	PreyDefense PreyBonus = "defense"
	PreyLoot    PreyBonus = "loot"
)

// PreySlot binds a timed bonus to one monster.
type PreySlot struct {
	MonsterID        string    `json:"monster_id"`
	Bonus            PreyBonus `json:"bonus"`
	Percent          float64   `json:"percent"`
	RemainingSeconds float64   `json:"remaining_seconds"`
}

// Active reports whether the slot still grants its bonus.
func (s PreySlot) Active() bool { return s.MonsterID != "" && s.RemainingSeconds > 0 }

// AutoConsumable triggers one potion or spell below an HP/mana threshold.
type AutoConsumable struct {
	ItemID       string  `json:"item_id,omitempty"`
	SpellID      string  `json:"spell_id,omitempty"`
	ThresholdPct float64 `json:"threshold_pct"`
}

// Settings are player-chosen behaviour knobs.
type Settings struct {
	HealthPotion  AutoConsumable `json:"health_potion"`
	ManaPotion    AutoConsumable `json:"mana_potion"`
	HealSpell     AutoConsumable `json:"heal_spell"`
	SpellRotation []string       `json:"spell_rotation,omitempty"`
	Rune          string         `json:"rune,omitempty"`
	HazardLevel   int            `json:"hazard_level"`
	MagicShield   bool           `json:"magic_shield"` // keep utamo vita up while hunting
}

// Buffs are timed effects.
type Buffs struct {
	MagicShieldUntil int64 `json:"magic_shield_until,omitempty"`
}

// TaskProgress tracks one accepted kill task.
type TaskProgress struct {
	TaskID    string `json:"task_id"`
	MonsterID string `json:"monster_id"`
	Required  int    `json:"required"`
	Kills     int    `json:"kills"`
	Done      bool   `json:"done"`
}

// State is the persisted player aggregate.
type State struct {
	Name     string           `json:"name"`
	Vocation content.Vocation `json:"vocation"`
	Promoted bool             `json:"promoted"`

	Level int     `json:"level"`
	XP    float64 `json:"xp"` // progress inside the current level

	HP      float64 `json:"hp"`
	MaxHP   float64 `json:"max_hp"`
	Mana    float64 `json:"mana"`
	MaxMana float64 `json:"max_mana"`
	Stamina float64 `json:"stamina"`

	Gold       int `json:"gold"`
	BankGold   int `json:"bank_gold"`
	SoulPoints int `json:"soul_points"`
	Ascensions int `json:"ascensions"`

	Equipment   map[content.Slot]ItemInstance `json:"equipment"`
	Inventory   map[string]int                `json:"inventory"`
	UniqueItems []ItemInstance                `json:"unique_items"`
	Skills      map[content.Skill]SkillState  `json:"skills"`

	Hunt     *Hunt     `json:"hunt,omitempty"`
	Training *Training `json:"training,omitempty"`

	Cooldowns     Cooldowns        `json:"cooldowns"`
	BossCooldowns map[string]int64 `json:"boss_cooldowns"`
	BossesKilled  map[string]int   `json:"bosses_killed"`

	Perks        map[string]int `json:"perks"`
	Prey         []PreySlot     `json:"prey"`
	Settings     Settings       `json:"settings"`
	Buffs        Buffs          `json:"buffs"`
	Blessing     bool           `json:"blessing"`
	PremiumUntil int64          `json:"premium_until"`

	Tasks         []TaskProgress  `json:"tasks"`
	QuestProgress map[string]int  `json:"quest_progress"`
	QuestsDone    map[string]bool `json:"quests_done"`
	Tutorials     map[string]bool `json:"tutorials"`

	LastSaveTime int64 `json:"last_save_time"`
}

// Hunting reports whether a hunt is active.
func (p *State) Hunting() bool { return p.Hunt != nil && p.Hunt.MonsterID != "" }

// IsTraining reports whether skill training is active.
func (p *State) IsTraining() bool { return p.Training != nil && p.Training.Skill != "" }

// PremiumActive reports whether premium time covers now.
func (p *State) PremiumActive(now int64) bool { return p.PremiumUntil > now }

// MagicShieldActive reports whether the magic shield buff covers now.
func (p *State) MagicShieldActive(now int64) bool { return p.Buffs.MagicShieldUntil > now }

// SkillLevel returns the level of a skill, treating a missing entry as 10
// (magic as 0).
func (p *State) SkillLevel(s content.Skill) int {
	if st, ok := p.Skills[s]; ok {
		return st.Level
	}
	return StartingSkillLevel(s)
}

// StartingSkillLevel is the level a fresh character has in a skill.
func StartingSkillLevel(s content.Skill) int {
	if s == content.SkillMagic {
		return 0
	}
	return 10
}

// Perk returns the level of an ascension perk.
func (p *State) Perk(id string) int { return p.Perks[id] }

// PreyPercent sums active prey bonuses of the given kind for a monster.
func (p *State) PreyPercent(monsterID string, kind PreyBonus) float64 {
	total := 0.0
	for _, s := range p.Prey {
		if s.Active() && s.MonsterID == monsterID && s.Bonus == kind {
			total += s.Percent
		}
	}
	return total
}

// UniqueIndex returns the position of a unique item in UniqueItems, or -1.
func (p *State) UniqueIndex(uid string) int {
	for i, it := range p.UniqueItems {
		if it.UID == uid {
			return i
		}
	}
	return -1
}
