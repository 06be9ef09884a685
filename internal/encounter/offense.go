package encounter

import (
	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
	"idlehunt/internal/rng"
)

// offense runs the player's automated attacks in priority order: a rotation
// spell, else an offensive rune, then the basic attack on its own cadence.
func offense(env Env, c combat.Context, e *Encounter, b *event.Batch) {
	p := c.Player
	if p.HP <= 0 || e.Monster.HP <= 0 {
		return
	}
	keepMagicShield(env, p, b)

	if !castRotation(env, c, e, b) {
		useRune(env, c, e, b)
	}
	if e.Monster.HP > 0 {
		basicAttack(env, c, e, b)
	}
}

func globalReady(env Env, p *player.State) bool {
	return player.Ready(p.Cooldowns.Global, env.Now)
}

// keepMagicShield recasts the magic shield when enabled and expired.
func keepMagicShield(env Env, p *player.State, b *event.Batch) {
	if !p.Settings.MagicShield || p.MagicShieldActive(env.Now) {
		return
	}
	s, ok := env.Catalog.Spell(content.SpellMagicShield)
	if !ok || !s.CastableBy(p.Vocation) || p.Level < s.Level || p.Mana < s.ManaCost {
		return
	}
	if !player.Ready(p.Cooldowns.Spells[s.ID], env.Now) {
		return
	}
	p.Mana -= s.ManaCost
	progression.Train(p, content.SkillMagic, s.ManaCost, env.Now)
	p.Buffs.MagicShieldUntil = env.Now + env.wall(float64(s.DurationMs))
	p.Cooldowns.Spells[s.ID] = env.Now + env.wall(float64(s.CooldownMs))
	b.Say(event.OnPlayer, s.Words)
	b.Log(event.Magic, env.Now, "You cast %s.", s.Name)
}

// castRotation casts the first affordable, ready attack spell of the
// rotation. It reports whether a spell was cast.
func castRotation(env Env, c combat.Context, e *Encounter, b *event.Batch) bool {
	p := c.Player
	if !globalReady(env, p) {
		return false
	}
	for _, id := range p.Settings.SpellRotation {
		s, ok := env.Catalog.Spell(id)
		if !ok || s.Kind != content.SpellAttack || !s.CastableBy(p.Vocation) || p.Level < s.Level {
			continue
		}
		if p.Mana < s.ManaCost || !player.Ready(p.Cooldowns.Spells[id], env.Now) {
			continue
		}
		p.Mana -= s.ManaCost
		progression.Train(p, content.SkillMagic, s.ManaCost, env.Now)
		p.Cooldowns.Spells[id] = env.Now + env.wall(float64(s.CooldownMs))
		p.Cooldowns.Global = env.Now + env.wall(GlobalCooldownMs)
		b.Say(event.OnPlayer, s.Words)
		hit(env, c, e, b, combat.SpellDamage(c, s))
		return true
	}
	return false
}

// useRune fires the selected offensive rune.
func useRune(env Env, c combat.Context, e *Encounter, b *event.Batch) {
	p := c.Player
	id := p.Settings.Rune
	if id == "" || p.Inventory[id] < 1 || !globalReady(env, p) || !player.Ready(p.Cooldowns.Rune, env.Now) {
		return
	}
	def, ok := env.Catalog.Item(id)
	if !ok || !combat.CanUseRune(c, def) {
		return
	}
	consume(p, id, 1)
	b.Stats.Waste += def.BuyPrice
	p.Cooldowns.Rune = env.Now + env.wall(RuneCooldownMs)
	p.Cooldowns.Global = env.Now + env.wall(GlobalCooldownMs)
	hit(env, c, e, b, combat.RuneDamage(c, def))
}

// basicAttack swings the weapon (or fists) if the attack cadence allows.
func basicAttack(env Env, c combat.Context, e *Encounter, b *event.Batch) {
	if e.LastPlayerAttack != 0 && env.Now-e.LastPlayerAttack < env.wall(combat.AttackIntervalMs(c)) {
		return
	}
	p := c.Player
	dmg := combat.PlayerDamage(c)
	if dmg <= 0 {
		if !e.warnedAmmo {
			e.warnedAmmo = true
			b.Log(event.Danger, env.Now, "You have no ammunition for your weapon.")
		}
		return
	}
	e.warnedAmmo = false
	e.LastPlayerAttack = env.Now
	if ammo := combat.AmmoID(c); ammo != "" {
		consume(p, ammo, 1)
		if def, ok := env.Catalog.Item(ammo); ok {
			b.Stats.Waste += def.BuyPrice
		}
	}
	progression.Train(p, combat.AttackSkill(c), 1, env.Now)
	hit(env, c, e, b, dmg)
}

// hit applies one damage instance with variance, crit and executioner rolls.
func hit(env Env, c combat.Context, e *Encounter, b *event.Batch, expected float64) {
	gear := combat.GearOf(c)
	dmg := expected * rng.Uniform(env.Rng, 1-DamageVariance, 1+DamageVariance)
	if rng.Chance(env.Rng, gear.CritPercent/100) {
		dmg *= CritMultiplier
		b.Log(event.Combat, env.Now, "Critical hit!")
	}
	dmg = max(dmg, 1)
	e.Monster.HP -= dmg
	b.Splat(event.SplatDamage, event.OnMonster, dmg)

	m := &e.Monster
	if m.HP > 0 && m.HP < m.MaxHP*ExecuteThreshold && rng.Chance(env.Rng, gear.ExecutionerPercent/100) {
		b.Log(event.Combat, env.Now, "You execute %s!", m.Def.Name)
		m.HP = 0
	}
}

func consume(p *player.State, id string, n int) {
	p.Inventory[id] -= n
	if p.Inventory[id] <= 0 {
		delete(p.Inventory, id)
	}
}
