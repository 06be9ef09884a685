package progression

import (
	"math"

	"idlehunt/internal/player"
)

// Death penalty fractions of lifetime XP and on-hand gold.
const (
	DeathPenalty        = 0.10
	BlessedDeathPenalty = 0.04
)

// DeathReport describes what a death cost.
type DeathReport struct {
	XPLost       float64 `json:"xp_lost"`
	GoldLost     int     `json:"gold_lost"`
	LevelsLost   int     `json:"levels_lost"`
	BlessingUsed bool    `json:"blessing_used"`
}

// ApplyDeathPenalty takes the death penalty from p in place, consuming the
// blessing when one is held, and respawns the character with full vitals.
// Lost XP may drop the character below its current level.
func ApplyDeathPenalty(p *player.State) DeathReport {
	frac := DeathPenalty
	var r DeathReport
	if p.Blessing {
		frac = BlessedDeathPenalty
		p.Blessing = false
		r.BlessingUsed = true
	}

	total := TotalXP(p)
	r.XPLost = total * frac
	level, rest := LevelForTotal(total - r.XPLost)
	r.LevelsLost = p.Level - level
	p.Level = level
	p.XP = rest
	p.MaxHP = player.BaseMaxHP(p.Vocation, level)
	p.MaxMana = player.BaseMaxMana(p.Vocation, level)

	r.GoldLost = int(math.Floor(float64(p.Gold) * frac))
	p.Gold -= r.GoldLost

	p.HP = p.EffectiveMaxHP()
	p.Mana = p.EffectiveMaxMana()
	p.Buffs.MagicShieldUntil = 0
	return r
}
