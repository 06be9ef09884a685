package encounter

import (
	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/progression"
	"idlehunt/internal/rng"
)

// monsterAttack resolves the monster's attack if its cadence allows. It
// reports whether the player died.
func monsterAttack(env Env, c combat.Context, e *Encounter, b *event.Batch) bool {
	m := e.Monster.Def
	if env.Now-e.LastMonsterAttack < env.wall(float64(m.AttackIntervalMs)) {
		return false
	}
	e.LastMonsterAttack = env.Now
	p := c.Player
	gear := combat.GearOf(c)

	if rng.Chance(env.Rng, gear.DodgePercent/100) {
		b.Splat(event.SplatMiss, event.OnPlayer, 0)
		return false
	}

	raw := rng.Uniform(env.Rng, m.MinDamage, m.MaxDamage) * combat.IncomingMultiplier(c)
	dmg := combat.Mitigate(raw, combat.PlayerDefense(c))
	progression.Train(p, content.SkillShielding, 1, env.Now)
	if dmg <= 0 {
		b.Splat(event.SplatMiss, event.OnPlayer, 0)
		return false
	}

	if refl := dmg * gear.ReflectionPercent / 100; refl > 0 {
		dmg -= refl
		e.Monster.HP -= refl
		b.Splat(event.SplatDamage, event.OnMonster, refl)
	}

	if p.MagicShieldActive(env.Now) {
		paid := min(dmg*MagicShieldShare, p.Mana)
		p.Mana -= paid
		dmg -= paid
		if paid > 0 {
			b.Splat(event.SplatMana, event.OnPlayer, paid)
		}
	}

	p.HP -= dmg
	b.Splat(event.SplatDamage, event.OnPlayer, dmg)
	b.Log(event.Combat, env.Now, "You lose %.0f hitpoints due to an attack by %s.", dmg, m.Name)
	if p.HP <= 0 {
		p.HP = 0
		b.Log(event.Danger, env.Now, "You were killed by %s.", m.Name)
		return true
	}
	return false
}
