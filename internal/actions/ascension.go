package actions

import (
	"slices"

	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
)

// Perk pricing in soul points.
const (
	PerkBaseCost = 5
	MaxPerkLevel = 20
)

// Perks lists the purchasable ascension perks in display order.
var Perks = []string{
	player.PerkDamageBoost,
	player.PerkXPBoost,
	player.PerkLootBoost,
	player.PerkPotionBoost,
	player.PerkVitality,
	player.PerkWisdom,
}

// PerkCost is the soul point price of raising a perk from level.
func PerkCost(level int) int { return (level + 1) * PerkBaseCost }

// BuyPerk raises an ascension perk by one level.
func BuyPerk(p player.State, perk string, now int64) (player.State, event.LogEntry) {
	if !slices.Contains(Perks, perk) {
		return p, event.Entry(event.Info, now, "Unknown perk %q.", perk)
	}
	lvl := p.Perk(perk)
	if lvl >= MaxPerkLevel {
		return p, event.Entry(event.Info, now, "%s is already at its maximum level.", perk)
	}
	cost := PerkCost(lvl)
	if p.SoulPoints < cost {
		return p, event.Entry(event.Info, now, "You need %d soul points to improve %s.", cost, perk)
	}
	out := p.Clone()
	out.SoulPoints -= cost
	out.Perks[perk] = lvl + 1
	out.ClampVitals()
	return out, event.Entry(event.Gain, now, "%s is now level %d.", perk, lvl+1)
}

// Ascend resets the character to level 1 for soul points.
func Ascend(p player.State, now int64) (player.State, event.LogEntry) {
	out := p.Clone()
	gained, ok := progression.Ascend(&out)
	if !ok {
		return p, event.Entry(event.Info, now, "You need level %d to ascend.", progression.AscensionLevel)
	}
	return out, event.Entry(event.Gain, now, "You ascended and gained %d soul points.", gained)
}
