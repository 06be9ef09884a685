package progression

import "idlehunt/internal/player"

const (
	// AscensionLevel is the minimum level to ascend.
	AscensionLevel = 100
	// SoulPointsPerLevel is paid for every level above AscensionLevel-1.
	SoulPointsPerLevel = 10
)

// SoulPointsFor returns the soul points an ascension at level would grant.
func SoulPointsFor(level int) int {
	if level < AscensionLevel {
		return 0
	}
	return (level - AscensionLevel + 1) * SoulPointsPerLevel
}

// Ascend resets p to level 1 in place and grants soul points. Perks, skills,
// gold and items are kept. It reports false, leaving p untouched, below
// AscensionLevel.
func Ascend(p *player.State) (int, bool) {
	if p.Level < AscensionLevel {
		return 0, false
	}
	gained := SoulPointsFor(p.Level)
	p.SoulPoints += gained
	p.Ascensions++
	p.Level = 1
	p.XP = 0
	p.MaxHP = player.BaseMaxHP(p.Vocation, 1)
	p.MaxMana = player.BaseMaxMana(p.Vocation, 1)
	p.HP = p.EffectiveMaxHP()
	p.Mana = p.EffectiveMaxMana()
	p.Hunt = nil
	p.Training = nil
	return gained, true
}
