package encounter

import (
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/rng"
)

// Rare spawn tuning.
const (
	RareBaseChance     = 0.03
	RarePerTarget      = 0.0057
	RareExtraCap       = 0.04
	RareMinPlayerLevel = 12
)

// RareChance is the probability a spawn is influenced at a concurrent count.
func RareChance(concurrent int) float64 {
	extra := float64(max(concurrent-1, 0)) * RarePerTarget
	return RareBaseChance + min(extra, RareExtraCap)
}

var influenceWeights = []struct {
	inf    content.Influence
	weight float64
}{
	{content.InfluenceCorrupted, 0.6},
	{content.InfluenceEnraged, 0.3},
	{content.InfluenceBlessed, 0.1},
}

// RollInfluence decides whether a spawn is influenced and how.
func RollInfluence(src rng.Source, m content.MonsterDef, playerLevel, concurrent int) content.Influence {
	if m.Boss || playerLevel < RareMinPlayerLevel {
		return content.InfluenceNone
	}
	if !rng.Chance(src, RareChance(concurrent)) {
		return content.InfluenceNone
	}
	r := src.Float64()
	for _, w := range influenceWeights {
		if r < w.weight {
			return w.inf
		}
		r -= w.weight
	}
	return content.InfluenceCorrupted
}

// spawn places a new monster. It reports false when the hunt target no
// longer exists.
func spawn(env Env, p *player.State, e *Encounter, b *event.Batch) bool {
	base, ok := env.Catalog.Monster(p.Hunt.MonsterID)
	if !ok {
		b.Log(event.Danger, env.Now, "There is no monster called %q here.", p.Hunt.MonsterID)
		return false
	}
	n := max(p.Hunt.Concurrent, 1)
	if base.Boss {
		n = 1
	}
	def := base
	if inf := RollInfluence(env.Rng, base, p.Level, n); inf != content.InfluenceNone {
		def = base.Influenced(inf)
		n = 1
		b.Log(event.Danger, env.Now, "A %s appears!", def.Name)
		if !p.Tutorials[TriggerRareMob] {
			p.Tutorials[TriggerRareMob] = true
			b.Trigger(TriggerRareMob)
		}
	}

	e.Monster = Monster{
		Def:        def,
		BaseID:     base.ID,
		HP:         def.HP * float64(n),
		MaxHP:      def.HP * float64(n),
		Concurrent: n,
	}
	e.Phase = Alive
	e.SpawnedAt = env.Now
	e.LastMonsterAttack = env.Now
	e.LastPlayerAttack = 0
	return true
}
