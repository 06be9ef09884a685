package actions

import (
	"strings"

	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
)

const (
	// MaxRotation is the number of spells a rotation may hold.
	MaxRotation = 4
	// MaxHazard is the highest hazard level.
	MaxHazard = 10
)

// Automation targets for SetAutomation.
const (
	AutoHealthPotion = "health_potion"
	AutoManaPotion   = "mana_potion"
	AutoHealSpell    = "heal_spell"
)

// SetRotation replaces the spell rotation. Only attack and support spells
// the vocation knows are accepted.
func SetRotation(p player.State, cat *content.Catalog, spells []string, now int64) (player.State, event.LogEntry) {
	if len(spells) > MaxRotation {
		return p, event.Entry(event.Info, now, "A rotation holds at most %d spells.", MaxRotation)
	}
	names := make([]string, 0, len(spells))
	for _, id := range spells {
		s, ok := cat.Spell(id)
		if !ok || s.Kind == content.SpellHeal || !s.CastableBy(p.Vocation) {
			return p, event.Entry(event.Info, now, "You cannot use %q in a rotation.", id)
		}
		names = append(names, s.Name)
	}
	out := p.Clone()
	out.Settings.SpellRotation = append([]string(nil), spells...)
	if len(names) == 0 {
		return out, event.Entry(event.Magic, now, "Spell rotation cleared.")
	}
	return out, event.Entry(event.Magic, now, "Spell rotation: %s.", strings.Join(names, ", "))
}

// SetAutomation configures one automatic consumable. An empty id disables
// it; threshold is a percentage of the effective maximum.
func SetAutomation(p player.State, cat *content.Catalog, target, id string, threshold float64, now int64) (player.State, event.LogEntry) {
	if threshold < 0 || threshold > 100 {
		return p, event.Entry(event.Info, now, "Thresholds are between 0 and 100 percent.")
	}
	out := p.Clone()
	switch target {
	case AutoHealthPotion, AutoManaPotion:
		if id != "" {
			def, ok := cat.Item(id)
			if !ok || def.Kind != content.KindPotion ||
				(target == AutoHealthPotion && def.RestoreHP <= 0) ||
				(target == AutoManaPotion && def.RestoreMana <= 0) {
				return p, event.Entry(event.Info, now, "%q cannot be used for %s.", id, target)
			}
		}
		a := &out.Settings.HealthPotion
		if target == AutoManaPotion {
			a = &out.Settings.ManaPotion
		}
		a.ItemID, a.ThresholdPct = id, threshold
	case AutoHealSpell:
		if id != "" {
			s, ok := cat.Spell(id)
			if !ok || s.Kind != content.SpellHeal || !s.CastableBy(p.Vocation) {
				return p, event.Entry(event.Info, now, "You cannot cast %q.", id)
			}
		}
		out.Settings.HealSpell.SpellID, out.Settings.HealSpell.ThresholdPct = id, threshold
	default:
		return p, event.Entry(event.Info, now, "Unknown automation %q.", target)
	}
	if id == "" {
		return out, event.Entry(event.Info, now, "Automatic %s disabled.", target)
	}
	return out, event.Entry(event.Info, now, "Automatic %s: %s below %.0f%%.", target, id, threshold)
}

// SetHazard chooses the hazard level of future hunts.
func SetHazard(p player.State, level int, now int64) (player.State, event.LogEntry) {
	if level < 0 || level > MaxHazard {
		return p, event.Entry(event.Info, now, "Hazard level must be between 0 and %d.", MaxHazard)
	}
	out := p.Clone()
	out.Settings.HazardLevel = level
	return out, event.Entry(event.Danger, now, "Hazard level set to %d.", level)
}

// SetMagicShield toggles keeping the magic shield up while hunting.
func SetMagicShield(p player.State, cat *content.Catalog, on bool, now int64) (player.State, event.LogEntry) {
	if on {
		s, ok := cat.Spell(content.SpellMagicShield)
		if !ok || !s.CastableBy(p.Vocation) {
			return p, event.Entry(event.Info, now, "You cannot cast the magic shield.")
		}
	}
	out := p.Clone()
	out.Settings.MagicShield = on
	if on {
		return out, event.Entry(event.Magic, now, "You will keep the magic shield up.")
	}
	return out, event.Entry(event.Magic, now, "You stop using the magic shield.")
}
