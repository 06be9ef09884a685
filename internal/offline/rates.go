package offline

import (
	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/encounter"
	"idlehunt/internal/loot"
	"idlehunt/internal/passive"
	"idlehunt/internal/player"
)

// ConservativeHealingFactor divides the healing a potion is credited with
// while away. Live play drinks exactly when a threshold is crossed; the
// offline model assumes some of each potion is wasted on overheal.
const ConservativeHealingFactor = 1.5

// Rates is the steady-state model of a hunt, per second unless noted.
type Rates struct {
	PlayerDPS   float64
	KillSeconds float64 // one pack, including respawn and grace
	KillsPerSec float64 // packs
	Monsters    int     // monsters per pack

	XPPerKill   float64 // without the stamina bonus
	GoldPerKill float64 // coins plus auto-sold loot

	AttacksPerSec        float64 // basic attacks
	MonsterAttacksPerSec float64
	SpellManaPerSec      float64

	IncomingDPS float64 // after mitigation, dodge and reflection
	RegenHPS    float64
	SpellHPS    float64
	PotionHPS   float64 // credited, already divided by the conservative factor

	AmmoPerSec         float64
	RunesPerSec        float64
	HealthPotionPerSec float64
	ManaPotionPerSec   float64
}

// NetDamage is the HP lost per second once all healing is used.
func (r Rates) NetDamage() float64 {
	return r.IncomingDPS - r.RegenHPS - r.SpellHPS - r.PotionHPS
}

// HuntRates builds the rate model for hunting m with n concurrent targets.
// It uses the same formulas the live encounter does, at speed 1.
//
// Health and mana potions share one cooldown, so together they never exceed
// 1000/PotionCooldownMs per second. Health potions are served first and mana
// potions get what is left.
func HuntRates(p *player.State, cat *content.Catalog, m content.MonsterDef, n int, now int64) Rates {
	budget := potionRate
	for range 8 {
		r := huntRates(p, cat, m, n, now, budget)
		spare := max(potionRate-r.HealthPotionPerSec, 0)
		if r.ManaPotionPerSec <= spare+1e-9 {
			return r
		}
		budget = spare
	}
	return huntRates(p, cat, m, n, now, 0)
}

// potionRate is the most potions per second the shared cooldown allows.
const potionRate = 1000.0 / passive.PotionCooldownMs

// huntRates is HuntRates with at most manaBudget mana potions per second.
func huntRates(p *player.State, cat *content.Catalog, m content.MonsterDef, n int, now int64, manaBudget float64) Rates {
	if m.Boss || n < 1 {
		n = 1
	}
	c := combat.Context{Player: p, Catalog: cat, TargetID: m.ID, Now: now, Concurrent: n}
	gear := combat.GearOf(c)
	critFactor := 1 + gear.CritPercent/100*(encounter.CritMultiplier-1)
	r := Rates{Monsters: n}

	// Offense.
	r.AttacksPerSec = 1000 / combat.AttackIntervalMs(c)
	basic := combat.PlayerDamage(c)
	if basic > 0 && combat.AmmoID(c) != "" {
		r.AmmoPerSec = r.AttacksPerSec
	}
	regenHP, regenMana := passive.RegenPerTick(p)
	r.RegenHPS = regenHP

	boost := p.PerkMultiplier(player.PerkPotionBoost)
	manaPotion := 0.0 // credited mana per potion
	if def, ok := potion(p, cat, p.Settings.ManaPotion.ItemID); ok && def.RestoreMana > 0 && stocked(p, def) {
		manaPotion = def.RestoreMana * boost / ConservativeHealingFactor
	}
	manaIncome := regenMana + manaPotion*manaBudget

	globalRate := 1000.0 / encounter.GlobalCooldownMs
	spellRate, spellDmg := 0.0, 0.0
	if s, ok := rotationSpell(p, cat); ok {
		spellRate = min(1000/float64(max(s.CooldownMs, encounter.GlobalCooldownMs)), manaIncome/s.ManaCost)
		spellDmg = combat.SpellDamage(c, s)
		r.SpellManaPerSec = spellRate * s.ManaCost
	}
	runeRate, runeDmg := 0.0, 0.0
	if def, ok := cat.Item(p.Settings.Rune); ok && p.Inventory[def.ID] > 0 && combat.CanUseRune(c, def) {
		runeRate = max(min(globalRate-spellRate, 1000.0/encounter.RuneCooldownMs), 0)
		runeDmg = combat.RuneDamage(c, def)
		r.RunesPerSec = runeRate
	}
	r.PlayerDPS = (basic*r.AttacksPerSec + spellDmg*spellRate + runeDmg*runeRate) * critFactor

	pool := m.HP * float64(n)
	overhead := float64(encounter.RespawnMs+encounter.SpawnGraceMs) / 1000
	if r.PlayerDPS > 0 {
		fight := pool / r.PlayerDPS
		r.KillSeconds = fight + overhead
		r.KillsPerSec = 1 / r.KillSeconds
	}

	// Rewards.
	noStamina := *p
	noStamina.Stamina = 0
	nc := c
	nc.Player = &noStamina
	r.XPPerKill = combat.KillXP(nc, m)
	r.GoldPerKill = m.AverageGold()*combat.GoldMultiplier(c) + loot.ExpectedValue(cat, m, combat.LootBonus(c))

	// Defense. The monster only attacks while a pack is alive.
	alive := 1.0
	if r.KillSeconds > 0 {
		alive = (r.KillSeconds - overhead) / r.KillSeconds
	}
	mult := combat.IncomingMultiplier(c)
	perHit := combat.ExpectedMitigated(m.MinDamage*mult, m.MaxDamage*mult, combat.PlayerDefense(c))
	perHit *= (1 - gear.DodgePercent/100) * (1 - gear.ReflectionPercent/100)
	r.MonsterAttacksPerSec = 1000 / float64(m.AttackIntervalMs) * alive
	r.IncomingDPS = perHit * r.MonsterAttacksPerSec

	spareMana := max(regenMana-r.SpellManaPerSec, 0)
	if s, ok := healSpell(p, cat); ok && spareMana > 0 {
		casts := min(1000/float64(max(s.CooldownMs, 1000)), spareMana/s.ManaCost)
		r.SpellHPS = min(casts*combat.SpellHealing(c, s), max(r.IncomingDPS-r.RegenHPS, 0))
	}

	if def, ok := potion(p, cat, p.Settings.HealthPotion.ItemID); ok && def.RestoreHP > 0 && stocked(p, def) {
		credited := def.RestoreHP * boost / ConservativeHealingFactor
		deficit := max(r.IncomingDPS-r.RegenHPS-r.SpellHPS, 0)
		r.HealthPotionPerSec = min(deficit/credited, potionRate)
		r.PotionHPS = r.HealthPotionPerSec * credited
	}
	if manaPotion > 0 {
		r.ManaPotionPerSec = min(max(r.SpellManaPerSec-regenMana, 0)/manaPotion, manaBudget)
	}
	return r
}

// stocked reports whether a consumable is carried or could be bought with the
// gold on hand. The supply horizon counts the same two sources.
func stocked(p *player.State, def content.ItemDef) bool {
	return p.Inventory[def.ID] > 0 || (def.BuyPrice > 0 && p.Gold >= def.BuyPrice)
}

func rotationSpell(p *player.State, cat *content.Catalog) (content.SpellDef, bool) {
	for _, id := range p.Settings.SpellRotation {
		s, ok := cat.Spell(id)
		if ok && s.Kind == content.SpellAttack && s.CastableBy(p.Vocation) && p.Level >= s.Level && s.ManaCost > 0 {
			return s, true
		}
	}
	return content.SpellDef{}, false
}

func healSpell(p *player.State, cat *content.Catalog) (content.SpellDef, bool) {
	s, ok := cat.Spell(p.Settings.HealSpell.SpellID)
	if !ok || s.Kind != content.SpellHeal || !s.CastableBy(p.Vocation) || p.Level < s.Level || s.ManaCost <= 0 {
		return content.SpellDef{}, false
	}
	return s, true
}

func potion(p *player.State, cat *content.Catalog, id string) (content.ItemDef, bool) {
	if id == "" {
		return content.ItemDef{}, false
	}
	def, ok := cat.Item(id)
	if !ok || def.Kind != content.KindPotion {
		return content.ItemDef{}, false
	}
	return def, true
}
