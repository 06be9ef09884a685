package encounter

import (
	"fmt"
	"sort"
	"strings"

	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/loot"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
	"idlehunt/internal/rng"
)

// settle pays out a kill and starts the respawn lock. A boss kill stops the
// hunt.
func settle(env Env, c combat.Context, e *Encounter, b *event.Batch) Outcome {
	p := c.Player
	m := e.Monster
	n := m.Concurrent

	b.Log(event.Combat, env.Now, "You killed %s.", killName(m.Def.Name, n))
	b.Kill(m.Def.Name, n)

	updateTasks(env, p, m, b)
	if m.Def.Influence != content.InfluenceNone {
		updateQuests(env, p, m, b)
	}

	xp := combat.KillXP(c, m.Def)
	b.Stats.XPGained += xp
	grantXP(env, p, xp, b)

	gold := int(float64(rng.Range(env.Rng, m.Def.MinGold, m.Def.MaxGold)) * combat.GoldMultiplier(c))
	p.Gold += gold
	b.Stats.GoldGained += gold
	b.Stats.ProfitGained += gold

	drop := loot.GenerateLoot(env.Rng, env.Catalog, m.Def, combat.LootBonus(c))
	profit := mergeLoot(env, p, drop, b)
	b.Stats.ProfitGained += profit
	logLoot(env, m.Def.Name, gold, drop, b)

	if m.Def.Boss {
		if p.BossesKilled == nil {
			p.BossesKilled = make(map[string]int)
		}
		p.BossesKilled[m.BaseID]++
		b.Log(event.Gain, env.Now, "%s has been defeated!", m.Def.Name)
		b.Trigger(TriggerBossKilled)
		p.Hunt = nil
		e.Reset()
		return Outcome{HuntStopped: true}
	}

	e.Phase = Dead
	e.SpawnAt = env.Now + env.wall(RespawnMs)
	return Outcome{}
}

func killName(name string, n int) string {
	if n > 1 {
		return fmt.Sprintf("%d x %s", n, name)
	}
	return "a " + name
}

// grantXP adds experience and logs every resulting level-up.
func grantXP(env Env, p *player.State, xp float64, b *event.Batch) {
	before := p.Level
	lu := progression.GainXP(p, xp)
	if lu.LeveledUp() {
		b.Log(event.Gain, env.Now, "You advanced from Level %d to Level %d.", before, p.Level)
	}
	for _, tr := range lu.Triggers {
		b.Trigger(tr)
	}
}

func updateTasks(env Env, p *player.State, m Monster, b *event.Batch) {
	for i := range p.Tasks {
		t := &p.Tasks[i]
		if t.Done || t.MonsterID != m.BaseID {
			continue
		}
		t.Kills += m.Concurrent
		if t.Kills < t.Required {
			continue
		}
		t.Kills = t.Required
		t.Done = true
		def := env.Catalog.Tasks[t.TaskID]
		p.Gold += def.RewardGold
		b.Stats.GoldGained += def.RewardGold
		b.Stats.XPGained += def.RewardXP
		b.Log(event.Gain, env.Now, "Task complete: %d %s. Reward: %d gold, %.0f experience.", t.Required, m.Def.Name, def.RewardGold, def.RewardXP)
		grantXP(env, p, def.RewardXP, b)
	}
}

func updateQuests(env Env, p *player.State, m Monster, b *event.Batch) {
	ids := make([]string, 0, len(env.Catalog.Quests))
	for id := range env.Catalog.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		q := env.Catalog.Quests[id]
		if p.QuestsDone[id] || (q.MonsterID != "" && q.MonsterID != m.BaseID) {
			continue
		}
		p.QuestProgress[id]++
		if p.QuestProgress[id] < q.RareKills {
			continue
		}
		p.QuestsDone[id] = true
		p.Gold += q.RewardGold
		p.SoulPoints += q.RewardSoulPoints
		b.Stats.GoldGained += q.RewardGold
		b.Stats.XPGained += q.RewardXP
		b.Log(event.Gain, env.Now, "Quest complete: %s.", q.Name)
		grantXP(env, p, q.RewardXP, b)
	}
}

// mergeLoot moves a drop into the inventories and returns its sell value.
// Uniques beyond UniqueCap are discarded.
func mergeLoot(env Env, p *player.State, d loot.Drop, b *event.Batch) int {
	value := 0
	for id, n := range d.Items {
		p.Inventory[id] += n
		value += env.Catalog.SellValue(id, n)
	}
	for _, it := range d.Uniques {
		def, _ := env.Catalog.Item(it.ItemID)
		if len(p.UniqueItems) >= UniqueCap {
			b.Log(event.Danger, env.Now, "Your backpack is full. The %s %s was left behind.", it.Rarity, def.Name)
			continue
		}
		p.UniqueItems = append(p.UniqueItems, it)
		value += def.SellPrice
	}
	return value
}

func logLoot(env Env, name string, gold int, d loot.Drop, b *event.Batch) {
	var parts []string
	if gold > 0 {
		parts = append(parts, fmt.Sprintf("%d gold coins", gold))
	}
	ids := make([]string, 0, len(d.Items))
	for id := range d.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d %s", d.Items[id], itemName(env, id)))
	}
	best := content.RarityCommon
	for _, u := range d.Uniques {
		parts = append(parts, fmt.Sprintf("%s %s", u.Rarity, itemName(env, u.ItemID)))
		best = max(best, u.Rarity)
	}
	if len(parts) == 0 {
		b.Log(event.Loot, env.Now, "Loot of %s: nothing.", name)
		return
	}
	msg := "Loot of " + name + ": " + strings.Join(parts, ", ") + "."
	if best > content.RarityCommon {
		b.LogRarity(best, env.Now, "%s", msg)
		return
	}
	b.Log(event.Loot, env.Now, "%s", msg)
}

func itemName(env Env, id string) string {
	if def, ok := env.Catalog.Item(id); ok {
		return def.Name
	}
	return id
}
