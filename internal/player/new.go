package player

import "idlehunt/internal/content"

// New creates a level 1 character with full vitals.
func New(name string, voc content.Vocation, now int64) State {
	p := State{
		Name:         name,
		Vocation:     voc,
		Level:        1,
		Stamina:      MaxStamina,
		LastSaveTime: now,
	}
	p.MaxHP = BaseMaxHP(voc, 1)
	p.MaxMana = BaseMaxMana(voc, 1)
	p.Normalize()
	p.HP = p.EffectiveMaxHP()
	p.Mana = p.EffectiveMaxMana()
	p.Settings.HealthPotion.ThresholdPct = 50
	p.Settings.ManaPotion.ThresholdPct = 40
	p.Settings.HealSpell.ThresholdPct = 70
	return p
}

// Normalize fills maps and defaults missing from older or hand-edited saves.
// It is the loader's job; the simulation assumes a normalized State.
func (p *State) Normalize() {
	if p.Vocation == "" {
		p.Vocation = content.VocationNone
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.MaxHP <= 0 {
		p.MaxHP = BaseMaxHP(p.Vocation, p.Level)
	}
	if p.MaxMana <= 0 {
		p.MaxMana = BaseMaxMana(p.Vocation, p.Level)
	}
	if p.Equipment == nil {
		p.Equipment = make(map[content.Slot]ItemInstance)
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	if p.Skills == nil {
		p.Skills = make(map[content.Skill]SkillState)
	}
	for _, s := range content.Skills {
		if _, ok := p.Skills[s]; !ok {
			p.Skills[s] = SkillState{Level: StartingSkillLevel(s)}
		}
	}
	if p.Cooldowns.Spells == nil {
		p.Cooldowns.Spells = make(map[string]int64)
	}
	if p.BossCooldowns == nil {
		p.BossCooldowns = make(map[string]int64)
	}
	if p.BossesKilled == nil {
		p.BossesKilled = make(map[string]int)
	}
	if p.Perks == nil {
		p.Perks = make(map[string]int)
	}
	if p.QuestProgress == nil {
		p.QuestProgress = make(map[string]int)
	}
	if p.QuestsDone == nil {
		p.QuestsDone = make(map[string]bool)
	}
	if p.Tutorials == nil {
		p.Tutorials = make(map[string]bool)
	}
	if len(p.Prey) < PreySlots {
		p.Prey = append(p.Prey, make([]PreySlot, PreySlots-len(p.Prey))...)
	}
	if p.Hunt != nil && p.Hunt.MonsterID == "" {
		p.Hunt = nil
	}
	if p.Training != nil && p.Training.Skill == "" {
		p.Training = nil
	}
	if p.Settings.HazardLevel < 0 {
		p.Settings.HazardLevel = 0
	}
	p.ClampVitals()
}

// PreySlots is the number of prey slots every character owns.
const PreySlots = 3
