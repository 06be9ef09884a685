// Package offline projects what happened while the player was away. It never
// replays ticks: it builds a steady-state rate model of the active hunt or
// training and applies it over a window bounded by the absence, a 24 hour
// cap, the estimated time to death and the time until supplies run out.
package offline

import (
	"math"

	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
)

const (
	// MinSeconds is the shortest absence that is extrapolated.
	MinSeconds = 10
	// DefaultCapHours bounds any absence.
	DefaultCapHours = 24
)

// Options tune an extrapolation.
type Options struct {
	CapHours float64 // 0 means DefaultCapHours
}

// SkillReport describes offline skill training.
type SkillReport struct {
	Skill  content.Skill `json:"skill"`
	Levels int           `json:"levels"`
	Level  int           `json:"level"`
}

// DeathReport describes a death while away.
type DeathReport struct {
	progression.DeathReport
	Killer          string  `json:"killer"`
	SecondsSurvived float64 `json:"seconds_survived"`
}

// Report is shown once when a session resumes.
type Report struct {
	SecondsOffline float64        `json:"seconds_offline"`
	XPGained       float64        `json:"xp_gained"`
	GoldGained     int            `json:"gold_gained"`
	KilledMonsters []event.Kill   `json:"killed_monsters"`
	LeveledUp      bool           `json:"leveled_up"`
	LevelsGained   int            `json:"levels_gained"`
	SkillTrained   *SkillReport   `json:"skill_trained,omitempty"`
	Waste          int            `json:"waste"`
	SuppliesUsed   map[string]int `json:"supplies_used,omitempty"`
	StopReason     string         `json:"stop_reason,omitempty"`
	DeathReport    *DeathReport   `json:"death_report,omitempty"`
	Triggers       []string       `json:"triggers,omitempty"`
}

// Extrapolate applies the absence between lastSave and now to p. Gaps below
// MinSeconds return a nil report and only move the save time. The input is
// not modified.
func Extrapolate(p player.State, lastSave, now int64, cat *content.Catalog, opts Options) (player.State, *Report) {
	out := p.Clone()
	out.LastSaveTime = now
	gap := float64(now-lastSave) / 1000
	if gap < MinSeconds {
		return out, nil
	}
	capHours := opts.CapHours
	if capHours <= 0 {
		capHours = DefaultCapHours
	}
	window := min(gap, capHours*3600)
	rep := &Report{SecondsOffline: window}

	switch {
	case out.Hunting():
		hunt(&out, cat, lastSave, window, rep)
	case out.IsTraining():
		train(&out, lastSave, window, rep)
	default:
		idle(&out, window)
	}
	out.ClampVitals()
	return out, rep
}

func idle(p *player.State, seconds float64) {
	p.Stamina = min(p.Stamina+seconds*0.5, player.MaxStamina)
	p.HP = p.EffectiveMaxHP()
	p.Mana = p.EffectiveMaxMana()
}

func train(p *player.State, lastSave int64, seconds float64, rep *Report) {
	skill := p.Training.Skill
	g := progression.Train(p, skill, seconds*progression.TrainingPointsPerTick, lastSave)
	rep.SkillTrained = &SkillReport{Skill: skill, Levels: g.Levels, Level: g.Level}
	idle(p, seconds)
}

func hunt(p *player.State, cat *content.Catalog, lastSave int64, window float64, rep *Report) {
	m, ok := cat.Monster(p.Hunt.MonsterID)
	if !ok {
		p.Hunt = nil
		rep.StopReason = "Your hunting ground no longer exists."
		idle(p, window)
		return
	}
	n := p.Hunt.Concurrent
	if m.Boss {
		n = 1
	}
	r := HuntRates(p, cat, m, n, lastSave)
	if r.KillsPerSec == 0 {
		p.Hunt = nil
		rep.StopReason = "You could not hurt " + m.Name + "."
		idle(p, window)
		return
	}

	active := window
	died := false
	if net := r.NetDamage(); net > 0 {
		if ttd := p.HP / net; ttd < active {
			active = ttd
			died = true
		}
	}
	sup := supplyHorizon(p, cat, r)
	if sup.seconds < active {
		active = sup.seconds
		died = false
		rep.StopReason = sup.reason
	}
	if m.Boss {
		if r.KillSeconds <= active {
			active = r.KillSeconds
			died = false
			rep.StopReason = m.Name + " was defeated."
		}
	}

	applyHunt(p, cat, m, r, lastSave, active, rep)

	switch {
	case died:
		d := progression.ApplyDeathPenalty(p)
		rep.DeathReport = &DeathReport{DeathReport: d, Killer: m.Name, SecondsSurvived: active}
		rep.SecondsOffline = active
		p.Hunt = nil
	case rep.StopReason != "":
		rep.SecondsOffline = active
		p.Hunt = nil
		idle(p, window-active)
	default:
		if net := r.NetDamage(); net > 0 {
			p.HP -= net * active
		} else {
			p.HP = p.EffectiveMaxHP()
		}
	}
}

// applyHunt grants the rewards of hunting for seconds and spends supplies.
func applyHunt(p *player.State, cat *content.Catalog, m content.MonsterDef, r Rates, now int64, seconds float64, rep *Report) {
	kills := r.KillsPerSec * seconds
	if m.Boss {
		kills = 0
		if seconds >= r.KillSeconds {
			kills = 1
			p.BossesKilled[m.ID]++
		}
	}
	staminaSeconds := min(p.Stamina, seconds)
	xp := r.XPPerKill * kills * (1 + combat.StaminaXPBonus*staminaSeconds/max(seconds, 1))
	gold := int(r.GoldPerKill * kills)

	rep.XPGained = xp
	rep.GoldGained = gold
	if k := int(kills) * r.Monsters; k > 0 {
		rep.KilledMonsters = []event.Kill{{Name: m.Name, Count: k}}
	}

	before := p.Level
	lu := progression.GainXP(p, xp)
	rep.LeveledUp = lu.LeveledUp()
	rep.LevelsGained = p.Level - before
	rep.Triggers = lu.Triggers
	p.Gold += gold
	p.Stamina = max(p.Stamina-seconds, 0)

	for i := range p.Prey {
		s := &p.Prey[i]
		if s.Active() && s.MonsterID == m.ID {
			s.RemainingSeconds = max(s.RemainingSeconds-seconds, 0)
		}
	}

	c := combat.Context{Player: p, Catalog: cat, TargetID: m.ID, Now: now, Concurrent: r.Monsters}
	progression.Train(p, combat.AttackSkill(c), r.AttacksPerSec*seconds, now)
	progression.Train(p, content.SkillShielding, r.MonsterAttacksPerSec*seconds, now)
	progression.Train(p, content.SkillMagic, r.SpellManaPerSec*seconds, now)

	spend(p, cat, combat.AmmoID(c), r.AmmoPerSec*seconds, rep)
	spend(p, cat, p.Settings.Rune, r.RunesPerSec*seconds, rep)
	spend(p, cat, p.Settings.HealthPotion.ItemID, r.HealthPotionPerSec*seconds, rep)
	spend(p, cat, p.Settings.ManaPotion.ItemID, r.ManaPotionPerSec*seconds, rep)
}

// spend uses units of a consumable, carried ones first, then bought with
// gold.
func spend(p *player.State, cat *content.Catalog, id string, units float64, rep *Report) {
	n := int(math.Ceil(units))
	if id == "" || n <= 0 {
		return
	}
	def, _ := cat.Item(id)
	carried := min(p.Inventory[id], n)
	p.Inventory[id] -= carried
	if p.Inventory[id] <= 0 {
		delete(p.Inventory, id)
	}
	if bought := n - carried; bought > 0 && def.BuyPrice > 0 {
		bought = min(bought, p.Gold/def.BuyPrice)
		p.Gold -= bought * def.BuyPrice
		n = carried + bought
	}
	rep.Waste += n * def.BuyPrice
	if rep.SuppliesUsed == nil {
		rep.SuppliesUsed = make(map[string]int)
	}
	rep.SuppliesUsed[id] += n
}

type horizon struct {
	seconds float64
	reason  string
}

// supplyHorizon returns how long the tightest consumable lasts, counting what
// current gold could buy for each type independently.
func supplyHorizon(p *player.State, cat *content.Catalog, r Rates) horizon {
	h := horizon{seconds: math.Inf(1)}
	c := combat.Context{Player: p, Catalog: cat}
	check := func(id string, perSec float64, reason string) {
		if id == "" || perSec <= 0 {
			return
		}
		units := float64(p.Inventory[id])
		if def, ok := cat.Item(id); ok && def.BuyPrice > 0 {
			units += float64(p.Gold / def.BuyPrice)
		}
		if s := units / perSec; s < h.seconds {
			h = horizon{seconds: s, reason: reason}
		}
	}
	check(combat.AmmoID(c), r.AmmoPerSec, "You ran out of ammunition.")
	check(p.Settings.Rune, r.RunesPerSec, "You ran out of runes.")
	check(p.Settings.HealthPotion.ItemID, r.HealthPotionPerSec, "You ran out of health potions.")
	check(p.Settings.ManaPotion.ItemID, r.ManaPotionPerSec, "You ran out of mana potions.")
	return h
}
