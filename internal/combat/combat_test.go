package combat

import (
	"math"
	"testing"

	"idlehunt/internal/content"
	"idlehunt/internal/player"
)

func testCatalog() *content.Catalog {
	return content.NewCatalog(
		[]content.ItemDef{
			{ID: "sword", Name: "Sword", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 14, ScalingSkill: content.SkillSword, WeaponKind: content.WeaponMelee},
			{ID: "giant_sword", Name: "Giant Sword", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 46, ScalingSkill: content.SkillSword, WeaponKind: content.WeaponMelee, RequiredLevel: 50},
			{ID: "bow", Name: "Bow", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 10, WeaponKind: content.WeaponBow, AmmoType: content.AmmoArrow, ScalingSkill: content.SkillDistance},
			{ID: "arrow", Name: "Arrow", Kind: content.KindAmmo, Slot: content.SlotAmmo, Attack: 20, AmmoType: content.AmmoArrow},
			{ID: "bolt", Name: "Bolt", Kind: content.KindAmmo, Slot: content.SlotAmmo, Attack: 25, AmmoType: content.AmmoBolt},
			{ID: "wand", Name: "Wand", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 20, WeaponKind: content.WeaponWand, Vocations: []content.Vocation{content.VocationSorcerer}},
			{ID: "plate", Name: "Plate Armor", Kind: content.KindArmor, Slot: content.SlotArmor, Armor: 10},
			{ID: "shield", Name: "Shield", Kind: content.KindShield, Slot: content.SlotOffHand, Defense: 20},
			{ID: "ring", Name: "Ring", Kind: content.KindJewelry, Slot: content.SlotRing},
			{ID: "sd", Name: "Sudden Death Rune", Kind: content.KindRune, Rune: &content.RuneStats{MagicLevel: 15, Base: 50, LevelFactor: 1, MagicFactor: 3}},
		},
		[]content.MonsterDef{{ID: "rat", Name: "Rat", HP: 20, MinDamage: 0, MaxDamage: 8, AttackIntervalMs: 2000, XP: 5, MinGold: 0, MaxGold: 4}},
		nil, nil, nil,
	)
}

func testContext(voc content.Vocation) Context {
	p := player.New("t", voc, 0)
	return Context{Player: &p, Catalog: testCatalog(), TargetID: "rat", Now: 1000, Concurrent: 1}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPlayerDamageUnarmed(t *testing.T) {
	c := testContext(content.VocationKnight)
	// level 1, fist 10: 0.2 + 10*0.3
	if got := PlayerDamage(c); !near(got, 3.2) {
		t.Errorf("knight fist = %v, want 3.2", got)
	}
	m := testContext(content.VocationMonk)
	if got := PlayerDamage(m); !near(got, 9.2) {
		t.Errorf("monk fist = %v, want 9.2", got)
	}
}

func TestPlayerDamageMelee(t *testing.T) {
	c := testContext(content.VocationKnight)
	c.Player.Equipment[content.SlotMainHand] = player.ItemInstance{ItemID: "sword"}
	want := 0.2 + 14*10*0.16*0.5
	if got := PlayerDamage(c); !near(got, want) {
		t.Errorf("knight sword = %v, want %v", got, want)
	}
	if got := AttackSkill(c); got != content.SkillSword {
		t.Errorf("AttackSkill = %s, want sword", got)
	}
}

func TestPlayerDamageIgnoresUnusableWeapon(t *testing.T) {
	c := testContext(content.VocationKnight)
	c.Player.Equipment[content.SlotMainHand] = player.ItemInstance{ItemID: "giant_sword"}
	if got := PlayerDamage(c); !near(got, 3.2) {
		t.Errorf("level-gated weapon should fall back to fist, got %v", got)
	}
}

func TestPlayerDamageNeedsCompatibleAmmo(t *testing.T) {
	c := testContext(content.VocationPaladin)
	c.Player.Equipment[content.SlotMainHand] = player.ItemInstance{ItemID: "bow"}
	if got := PlayerDamage(c); got != 0 {
		t.Errorf("bow without ammo = %v, want 0", got)
	}
	c.Player.Equipment[content.SlotAmmo] = player.ItemInstance{ItemID: "bolt"}
	c.Player.Inventory["bolt"] = 10
	if got := PlayerDamage(c); got != 0 {
		t.Errorf("bow with bolts = %v, want 0", got)
	}
	c.Player.Equipment[content.SlotAmmo] = player.ItemInstance{ItemID: "arrow"}
	if got := PlayerDamage(c); got != 0 {
		t.Errorf("bow with no arrows carried = %v, want 0", got)
	}
	c.Player.Inventory["arrow"] = 10
	want := 0.2 + 30*10*0.17*0.5
	if got := PlayerDamage(c); !near(got, want) {
		t.Errorf("bow with arrows = %v, want %v", got, want)
	}
	if got := AmmoID(c); got != "arrow" {
		t.Errorf("AmmoID = %q", got)
	}
}

func TestDamagePipelineOrderAndFactors(t *testing.T) {
	c := testContext(content.VocationSorcerer)
	c.Player.Promoted = true
	c.Player.PremiumUntil = 2000
	c.Player.Prey[0] = player.PreySlot{MonsterID: "rat", Bonus: player.PreyDamage, Percent: 20, RemainingSeconds: 10}
	c.Player.Perks[player.PerkDamageBoost] = 5

	names := make([]string, len(DamagePipeline))
	for i, st := range DamagePipeline {
		names[i] = st.Name
	}
	want := []string{"promotion", "premium", "prey_damage", "ascension_damage", "area_of_effect"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("pipeline order = %v, want %v", names, want)
		}
	}

	got := DamagePipeline.Apply(100, c, Hit{Spell: true, AoE: true})
	if exp := 100 * 1.1 * 1.5 * 1.2 * 1.1 * 1.2; !near(got, exp) {
		t.Errorf("pipeline = %v, want %v", got, exp)
	}
	if got := DamagePipeline.Apply(100, c, Hit{AoE: true}); near(got, 100*1.1*1.5*1.2*1.1*1.2) {
		t.Error("area bonus applied to a non-spell hit")
	}
}

func TestSpellAndRuneDamage(t *testing.T) {
	c := testContext(content.VocationSorcerer)
	c.Player.Skills[content.SkillMagic] = player.SkillState{Level: 20}
	spell := content.SpellDef{ID: "exevo_flam", Kind: content.SpellAttack, Base: 10, LevelFactor: 2, SkillFactor: 1.5}
	if got := SpellDamage(c, spell); !near(got, 10+2+30) {
		t.Errorf("spell = %v, want 42", got)
	}
	sd, _ := c.Catalog.Item("sd")
	if !CanUseRune(c, sd) {
		t.Fatal("magic 20 should use a magic 15 rune")
	}
	if got := RuneDamage(c, sd); !near(got, 50+1+60) {
		t.Errorf("rune = %v, want 111", got)
	}
}

func TestDamageFloorsAtOne(t *testing.T) {
	c := testContext(content.VocationDruid)
	spell := content.SpellDef{ID: "weak", Kind: content.SpellAttack}
	if got := SpellDamage(c, spell); got != 1 {
		t.Errorf("zero spell = %v, want floor 1", got)
	}
}

func TestSpellHealingShapes(t *testing.T) {
	exura := content.SpellDef{ID: "exura", Kind: content.SpellHeal}

	k := testContext(content.VocationKnight)
	k.Player.Level = 50
	if got := SpellHealing(k, exura); !near(got, 50*0.2*1.6+40) {
		t.Errorf("knight exura = %v", got)
	}

	m := testContext(content.VocationDruid)
	m.Player.Level = 50
	m.Player.Skills[content.SkillMagic] = player.SkillState{Level: 30}
	want := ((50*0.2+30*4)*2.4 + 60) * 0.7
	if got := SpellHealing(m, exura); !near(got, want) {
		t.Errorf("druid exura = %v, want %v", got, want)
	}

	generic := content.SpellDef{ID: "monk_heal", Kind: content.SpellHeal, Base: 30, LevelFactor: 1}
	mo := testContext(content.VocationMonk)
	if got := SpellHealing(mo, generic); !near(got, 31) {
		t.Errorf("monk generic heal = %v, want 31", got)
	}
}

func TestPlayerDefense(t *testing.T) {
	c := testContext(content.VocationPaladin)
	c.Player.Equipment[content.SlotArmor] = player.ItemInstance{ItemID: "plate"}
	c.Player.Equipment[content.SlotOffHand] = player.ItemInstance{ItemID: "shield", UID: "u", Modifiers: player.Modifiers{Defense: 2}}
	want := (10*0.9 + 22*10*0.05) * 0.75
	if got := PlayerDefense(c); !near(got, want) {
		t.Errorf("defense = %v, want %v", got, want)
	}
	c.Player.Prey[1] = player.PreySlot{MonsterID: "rat", Bonus: player.PreyDefense, Percent: 40, RemainingSeconds: 5}
	if got := PlayerDefense(c); !near(got, want*1.4) {
		t.Errorf("prey defense = %v, want %v", got, want*1.4)
	}
}

func TestExpectedMitigated(t *testing.T) {
	cases := []struct{ lo, hi, def, want float64 }{
		{10, 20, 0, 15},
		{10, 20, 5, 10},
		{10, 20, 25, 0},
		{0, 10, 5, 1.25},
		{8, 8, 3, 5},
	}
	for _, c := range cases {
		if got := ExpectedMitigated(c.lo, c.hi, c.def); !near(got, c.want) {
			t.Errorf("ExpectedMitigated(%v,%v,%v) = %v, want %v", c.lo, c.hi, c.def, got, c.want)
		}
	}
}

func TestGearCapsRollPercentages(t *testing.T) {
	c := testContext(content.VocationKnight)
	c.Player.Equipment[content.SlotRing] = player.ItemInstance{ItemID: "ring", UID: "r", Modifiers: player.Modifiers{DodgePercent: 70, XPPercent: 80}}
	g := GearOf(c)
	if g.DodgePercent != RollCap {
		t.Errorf("dodge = %v, want cap %v", g.DodgePercent, RollCap)
	}
	if g.XPPercent != 80 {
		t.Errorf("xp = %v, want uncapped 80", g.XPPercent)
	}
}

func TestKillXP(t *testing.T) {
	c := testContext(content.VocationKnight)
	c.Concurrent = 3
	c.Player.Settings.HazardLevel = 2
	m, _ := c.Catalog.Monster("rat")
	// stage 5, three targets, hazard 1.2, stamina 1.5
	if got, want := KillXP(c, m), 5*5*3*1.2*1.5; !near(got, want) {
		t.Errorf("KillXP = %v, want %v", got, want)
	}
	c.Player.Stamina = 0
	if got, want := KillXP(c, m), 5*5*3*1.2; !near(got, want) {
		t.Errorf("KillXP without stamina = %v, want %v", got, want)
	}
}

func TestIncomingMultiplier(t *testing.T) {
	c := testContext(content.VocationKnight)
	c.Concurrent = 4
	c.Player.Settings.HazardLevel = 1
	if got, want := IncomingMultiplier(c), 4*1.15*1.09; !near(got, want) {
		t.Errorf("IncomingMultiplier = %v, want %v", got, want)
	}
}
