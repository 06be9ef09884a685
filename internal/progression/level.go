// Package progression turns experience and training points into character
// and skill levels, and applies the death and ascension resets.
package progression

import (
	"idlehunt/internal/player"
)

// ExperienceForLevel is the XP needed to advance from level to level+1.
func ExperienceForLevel(level int) float64 {
	l := float64(level)
	return 50*l*l - 150*l + 200
}

// TotalExperience is the XP accumulated on reaching level from level 1.
func TotalExperience(level int) float64 {
	total := 0.0
	for l := 1; l < level; l++ {
		total += ExperienceForLevel(l)
	}
	return total
}

// TotalXP is the lifetime experience of a character at its current level.
func TotalXP(p *player.State) float64 {
	return TotalExperience(p.Level) + p.XP
}

// LevelForTotal returns the level and in-level remainder for a lifetime XP.
func LevelForTotal(total float64) (int, float64) {
	if total < 0 {
		total = 0
	}
	level := 1
	for {
		need := ExperienceForLevel(level)
		if total < need {
			return level, total
		}
		total -= need
		level++
	}
}

// One-shot tutorial triggers fired by level-ups.
const (
	TriggerLevel12 = "level_12"
	TriggerLevel30 = "level_30"
)

var levelTriggers = []struct {
	level int
	id    string
}{
	{12, TriggerLevel12},
	{30, TriggerLevel30},
}

// LevelUp summarises a CheckLevelUp call.
type LevelUp struct {
	Levels   int
	HPGain   float64
	ManaGain float64
	Triggers []string
}

// LeveledUp reports whether at least one level was gained.
func (l LevelUp) LeveledUp() bool { return l.Levels > 0 }

// CheckLevelUp resolves every level-up the player's XP pays for and returns
// the updated copy. The input is not modified.
func CheckLevelUp(p player.State) (player.State, LevelUp) {
	out := p.Clone()
	res := ResolveLevelUps(&out)
	return out, res
}

// ResolveLevelUps is CheckLevelUp in place, for callers that already own a
// private copy of the player.
func ResolveLevelUps(p *player.State) LevelUp {
	var res LevelUp
	stats := player.StatsFor(p.Vocation)
	for need := ExperienceForLevel(p.Level); p.XP >= need; need = ExperienceForLevel(p.Level) {
		p.XP -= need
		p.Level++
		res.Levels++
		res.HPGain += stats.HPPerLevel
		res.ManaGain += stats.ManaPerLevel
	}
	if res.Levels == 0 {
		return res
	}
	p.MaxHP += res.HPGain
	p.MaxMana += res.ManaGain
	p.HP += res.HPGain
	p.Mana += res.ManaGain
	p.ClampVitals()
	for _, tr := range levelTriggers {
		if p.Level >= tr.level && !p.Tutorials[tr.id] {
			if p.Tutorials == nil {
				p.Tutorials = make(map[string]bool)
			}
			p.Tutorials[tr.id] = true
			res.Triggers = append(res.Triggers, tr.id)
		}
	}
	return res
}

// GainXP adds experience and resolves level-ups in place.
func GainXP(p *player.State, amount float64) LevelUp {
	if amount <= 0 {
		return LevelUp{}
	}
	p.XP += amount
	return ResolveLevelUps(p)
}
