package actions

import (
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/rng"
)

// Prey roll rules.
const (
	PreyRollCost        = 1000
	PreyDurationSeconds = 2 * 60 * 60
	MinPreyPercent      = 5
	MaxPreyPercent      = 40
)

var preyBonuses = []player.PreyBonus{player.PreyXP, player.PreyDamage, player.PreyDefense, player.PreyLoot}

// RollPrey binds a random bonus to monsterID in a prey slot, replacing
// whatever the slot held.
func RollPrey(p player.State, cat *content.Catalog, slot int, monsterID string, src rng.Source, now int64) (player.State, event.LogEntry) {
	if slot < 0 || slot >= len(p.Prey) {
		return p, event.Entry(event.Info, now, "There is no prey slot %d.", slot+1)
	}
	m, ok := cat.Monster(monsterID)
	if !ok || m.Boss {
		return p, event.Entry(event.Info, now, "%q cannot be chosen as prey.", monsterID)
	}
	if p.Gold < PreyRollCost {
		return p, event.Entry(event.Danger, now, "Insufficient gold: a prey roll costs %d gold.", PreyRollCost)
	}
	out := p.Clone()
	out.Gold -= PreyRollCost
	s := player.PreySlot{
		MonsterID:        m.ID,
		Bonus:            preyBonuses[src.Intn(len(preyBonuses))],
		Percent:          float64(rng.Range(src, MinPreyPercent, MaxPreyPercent)),
		RemainingSeconds: PreyDurationSeconds,
	}
	out.Prey[slot] = s
	return out, event.Entry(event.Gain, now, "Prey: +%.0f%% %s against %s.", s.Percent, s.Bonus, m.Name)
}
