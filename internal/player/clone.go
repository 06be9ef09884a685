package player

import (
	"maps"
	"slices"

	"idlehunt/internal/content"
)

// Clone returns a deep copy. Simulation steps clone once and then work on the
// copy, so the caller's snapshot is never aliased.
func (p State) Clone() State {
	out := p
	if p.Equipment != nil {
		out.Equipment = make(map[content.Slot]ItemInstance, len(p.Equipment))
		for slot, it := range p.Equipment {
			out.Equipment[slot] = it.clone()
		}
	}
	out.Inventory = maps.Clone(p.Inventory)
	if p.UniqueItems != nil {
		out.UniqueItems = make([]ItemInstance, len(p.UniqueItems))
		for i, it := range p.UniqueItems {
			out.UniqueItems[i] = it.clone()
		}
	}
	out.Skills = maps.Clone(p.Skills)
	if p.Hunt != nil {
		h := *p.Hunt
		out.Hunt = &h
	}
	if p.Training != nil {
		t := *p.Training
		out.Training = &t
	}
	out.Cooldowns.Spells = maps.Clone(p.Cooldowns.Spells)
	out.BossCooldowns = maps.Clone(p.BossCooldowns)
	out.BossesKilled = maps.Clone(p.BossesKilled)
	out.Perks = maps.Clone(p.Perks)
	out.Prey = slices.Clone(p.Prey)
	out.Settings.SpellRotation = slices.Clone(p.Settings.SpellRotation)
	out.Tasks = slices.Clone(p.Tasks)
	out.QuestProgress = maps.Clone(p.QuestProgress)
	out.QuestsDone = maps.Clone(p.QuestsDone)
	out.Tutorials = maps.Clone(p.Tutorials)
	return out
}

func (it ItemInstance) clone() ItemInstance {
	it.Modifiers.SkillBonus = maps.Clone(it.Modifiers.SkillBonus)
	return it
}
