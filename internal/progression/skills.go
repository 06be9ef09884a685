package progression

import (
	"idlehunt/internal/content"
	"idlehunt/internal/player"
)

// TrainingPointsPerTick is the raw amount a dedicated training tick grants.
const TrainingPointsPerTick = 1.0

// SkillGain summarises a TrainSkill call.
type SkillGain struct {
	Skill  content.Skill
	Levels int
	Level  int // level after training
}

// TrainSkill adds raw training to a skill and returns the updated copy and
// whether at least one level was gained. The input is not modified.
func TrainSkill(p player.State, skill content.Skill, raw float64, now int64) (player.State, bool) {
	out := p.Clone()
	g := Train(&out, skill, raw, now)
	return out, g.Levels > 0
}

// Train is TrainSkill in place. raw is 1 per hit or the mana spent on a
// spell; non-positive amounts are ignored so levels never decrease.
func Train(p *player.State, skill content.Skill, raw float64, now int64) SkillGain {
	st, ok := p.Skills[skill]
	if !ok {
		st = player.SkillState{Level: player.StartingSkillLevel(skill)}
	}
	g := SkillGain{Skill: skill, Level: st.Level}
	if raw <= 0 {
		return g
	}
	premium := 1.0
	if p.PremiumActive(now) {
		premium = PremiumTrainingFactor
	}

	// The stage multiplier belongs to the level being trained, so raw
	// amounts are converted level by level. Leftover progress carries over
	// at the next level's requirement.
	need := PointsRequired(p.Vocation, skill, st.Level)
	have := st.Progress / 100 * need
	for {
		rate := StageMultiplier(p.Vocation, skill, st.Level) * premium
		missing := need - have
		if raw*rate < missing {
			have += raw * rate
			break
		}
		raw = max(raw-missing/rate, 0)
		have = 0
		st.Level++
		g.Levels++
		need = PointsRequired(p.Vocation, skill, st.Level)
	}
	st.Progress = have / need * 100
	if st.Progress >= 100 {
		st.Progress = 0
	}
	if p.Skills == nil {
		p.Skills = make(map[content.Skill]player.SkillState)
	}
	p.Skills[skill] = st
	g.Level = st.Level
	return g
}
