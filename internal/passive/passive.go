// Package passive applies the per-tick systems that run regardless of what
// the player is doing: regeneration and automatic potion and heal use.
package passive

import (
	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
)

const (
	// PotionCooldownMs is shared by health and mana potions, in game ms.
	PotionCooldownMs = 1000

	staminaDrain   = 1.0
	staminaRecover = 0.5
)

// Regenerate drifts stamina and regenerates HP and mana by one tick.
func Regenerate(p *player.State) {
	if p.Hunting() {
		p.Stamina = max(p.Stamina-staminaDrain, 0)
	} else {
		p.Stamina = min(p.Stamina+staminaRecover, player.MaxStamina)
	}
	hp, mana := RegenPerTick(p)
	p.HP += hp
	p.Mana += mana
	p.ClampVitals()
}

// RegenPerTick is the HP and mana a tick restores.
func RegenPerTick(p *player.State) (hp, mana float64) {
	st := player.StatsFor(p.Vocation)
	f := 1.0
	if p.Promoted {
		f = player.PromotionRegenFactor
	}
	return st.HPRegen * f, st.ManaRegen * f
}

// Env is what automation needs besides the player.
type Env struct {
	Catalog *content.Catalog
	Now     int64
	Speed   float64
}

func (env Env) wall(gameMs float64) int64 {
	s := env.Speed
	if s <= 0 {
		s = 1
	}
	return int64(gameMs / s)
}

// Automate uses the configured heal spell or potions when HP or mana is at or
// below its threshold, and logs an expired magic shield.
func Automate(env Env, p *player.State, b *event.Batch) {
	if p.Buffs.MagicShieldUntil != 0 && !p.MagicShieldActive(env.Now) {
		p.Buffs.MagicShieldUntil = 0
		b.Log(event.Magic, env.Now, "Your magic shield has worn off.")
	}
	if p.HP <= 0 {
		return
	}

	set := p.Settings
	healed := p.HPPercent() <= set.HealSpell.ThresholdPct && castHeal(env, p, b)
	if !healed && p.HPPercent() <= set.HealthPotion.ThresholdPct {
		drink(env, p, set.HealthPotion.ItemID, b)
	}
	if p.ManaPercent() <= set.ManaPotion.ThresholdPct {
		drink(env, p, set.ManaPotion.ItemID, b)
	}
}

func castHeal(env Env, p *player.State, b *event.Batch) bool {
	id := p.Settings.HealSpell.SpellID
	if id == "" {
		return false
	}
	s, ok := env.Catalog.Spell(id)
	if !ok || s.Kind != content.SpellHeal || !s.CastableBy(p.Vocation) || p.Level < s.Level {
		return false
	}
	if p.Mana < s.ManaCost || !player.Ready(p.Cooldowns.Spells[id], env.Now) {
		return false
	}
	heal := combat.SpellHealing(combat.Context{Player: p, Catalog: env.Catalog, Now: env.Now}, s)
	p.Mana -= s.ManaCost
	p.Cooldowns.Spells[id] = env.Now + env.wall(float64(s.CooldownMs))
	progression.Train(p, content.SkillMagic, s.ManaCost, env.Now)
	before := p.HP
	p.HP += heal
	p.ClampVitals()
	b.Say(event.OnPlayer, s.Words)
	b.Splat(event.SplatHeal, event.OnPlayer, p.HP-before)
	return true
}

// drink consumes one potion if the shared potion cooldown allows.
func drink(env Env, p *player.State, id string, b *event.Batch) bool {
	if id == "" || p.Inventory[id] < 1 || !player.Ready(p.Cooldowns.Potion, env.Now) {
		return false
	}
	def, ok := env.Catalog.Item(id)
	if !ok || def.Kind != content.KindPotion {
		return false
	}
	boost := p.PerkMultiplier(player.PerkPotionBoost)
	hpBefore, manaBefore := p.HP, p.Mana
	p.HP += def.RestoreHP * boost
	p.Mana += def.RestoreMana * boost
	p.ClampVitals()

	p.Inventory[id]--
	if p.Inventory[id] <= 0 {
		delete(p.Inventory, id)
		b.Log(event.Danger, env.Now, "You are out of %s.", def.Name)
	}
	p.Cooldowns.Potion = env.Now + env.wall(PotionCooldownMs)
	b.Stats.Waste += def.BuyPrice

	if gained := p.HP - hpBefore; gained > 0 {
		b.Splat(event.SplatHeal, event.OnPlayer, gained)
	}
	if gained := p.Mana - manaBefore; gained > 0 {
		b.Splat(event.SplatMana, event.OnPlayer, gained)
	}
	return true
}
