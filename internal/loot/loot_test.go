package loot

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"idlehunt/internal/content"
)

func lootCatalog() *content.Catalog {
	return content.NewCatalog(
		[]content.ItemDef{
			{ID: "sword", Name: "Sword", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 14, SellPrice: 25, ScalingSkill: content.SkillSword},
			{ID: "ring", Name: "Ring", Kind: content.KindJewelry, Slot: content.SlotRing, SellPrice: 100},
			{ID: "meat", Name: "Meat", Kind: content.KindLoot, SellPrice: 2},
		},
		nil, nil, nil, nil,
	)
}

func TestRollRarityCorruptedFrequencies(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	const trials = 100_000
	counts := map[content.Rarity]int{}
	for i := 0; i < trials; i++ {
		counts[RollRarity(src, content.InfluenceCorrupted, 0)]++
	}
	// Expected shares: legendary 0.2%, epic 1.3%, rare 4.5%, uncommon 12%.
	bounds := map[content.Rarity][2]int{
		content.RarityLegendary: {140, 260},
		content.RarityEpic:      {1150, 1450},
		content.RarityRare:      {4250, 4750},
		content.RarityUncommon:  {11600, 12400},
	}
	for r, b := range bounds {
		if counts[r] < b[0] || counts[r] > b[1] {
			t.Errorf("%s: %d of %d, want %d..%d", r, counts[r], trials, b[0], b[1])
		}
	}
}

func TestGenerateLootCorruptedUniqueShare(t *testing.T) {
	cat := lootCatalog()
	m := content.MonsterDef{ID: "orc", Name: "Orc", HP: 10, Loot: []content.LootEntry{{ItemID: "sword", Chance: 0.01, MaxCount: 1}}}.
		Influenced(content.InfluenceCorrupted)
	src := rand.New(rand.NewSource(3))
	const trials = 100_000
	legendary, uniques := 0, 0
	for i := 0; i < trials; i++ {
		d := GenerateLoot(src, cat, m, 0)
		for _, u := range d.Uniques {
			uniques++
			if u.Rarity == content.RarityLegendary {
				legendary++
			}
		}
	}
	if uniques < 17000 || uniques > 19000 {
		t.Errorf("uniques = %d, want about 18000", uniques)
	}
	if legendary < 140 || legendary > 260 {
		t.Errorf("legendary = %d, want about 200", legendary)
	}
}

func TestBossEquipmentIsEpicOrLegendary(t *testing.T) {
	cat := lootCatalog()
	boss := content.MonsterDef{ID: "b", Name: "Boss", HP: 100, Boss: true, CooldownSeconds: 60,
		Loot: []content.LootEntry{{ItemID: "sword", Chance: 1, MaxCount: 1}}}
	src := rand.New(rand.NewSource(1))
	legendary := 0
	for i := 0; i < 2000; i++ {
		d := GenerateLoot(src, cat, boss, 0)
		if len(d.Uniques) != 1 || len(d.Items) != 0 {
			t.Fatalf("drop = %+v", d)
		}
		switch d.Uniques[0].Rarity {
		case content.RarityLegendary:
			legendary++
		case content.RarityEpic:
		default:
			t.Fatalf("boss rolled %s", d.Uniques[0].Rarity)
		}
	}
	if legendary < 320 || legendary > 480 {
		t.Errorf("legendary = %d of 2000, want about 400", legendary)
	}
}

func TestStackableDropCounts(t *testing.T) {
	cat := lootCatalog()
	m := content.MonsterDef{ID: "rat", Name: "Rat", HP: 10, Loot: []content.LootEntry{{ItemID: "meat", Chance: 1, MaxCount: 3}}}
	src := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		d := GenerateLoot(src, cat, m, 0)
		if n := d.Items["meat"]; n < 1 || n > 3 {
			t.Fatalf("meat count = %d, want 1..3", n)
		}
	}
}

func TestFlatChanceScaling(t *testing.T) {
	e := content.LootEntry{ItemID: "meat", Chance: 0.1, MaxCount: 1}
	plain := content.MonsterDef{ID: "rat"}
	if got := FlatChance(plain, e, 0.2); got < 0.1499 || got > 0.1501 {
		t.Errorf("plain = %v, want 0.15", got)
	}
	inf := plain.Influenced(content.InfluenceBlessed)
	if got := FlatChance(inf, e, 0); got < 0.18749 || got > 0.18751 {
		t.Errorf("influenced = %v, want 0.1875", got)
	}
	if got := FlatChance(plain, content.LootEntry{Chance: 2}, 0); got != 1 {
		t.Errorf("capped = %v, want 1", got)
	}
}

func TestRollModifiersGuarantees(t *testing.T) {
	cat := lootCatalog()
	src := rand.New(rand.NewSource(5))
	sword, _ := cat.Item("sword")
	ring, _ := cat.Item("ring")
	if m := RollModifiers(src, sword, content.RarityCommon); !m.Empty() {
		t.Errorf("common rolled modifiers: %+v", m)
	}
	for r := content.RarityUncommon; r <= content.RarityLegendary; r++ {
		for i := 0; i < 200; i++ {
			m := RollModifiers(src, sword, r)
			if m.Attack < 1 {
				t.Fatalf("%s sword attack bonus = %d, want >= 1", r, m.Attack)
			}
			if rm := RollModifiers(src, ring, r); rm.Empty() {
				t.Fatalf("%s ring rolled nothing", r)
			}
		}
	}
	if m := RollModifiers(src, sword, content.RarityLegendary); m.Attack != 9 {
		t.Errorf("legendary attack bonus = %d, want ceil(14*0.6)=9", m.Attack)
	}
}

func TestNewUniqueIDsReplay(t *testing.T) {
	cat := lootCatalog()
	sword, _ := cat.Item("sword")
	a := NewUnique(rand.New(rand.NewSource(11)), sword, content.RarityRare)
	b := NewUnique(rand.New(rand.NewSource(11)), sword, content.RarityRare)
	if a.UID == "" || a.UID != b.UID {
		t.Errorf("uids %q %q", a.UID, b.UID)
	}
	if !a.Unique() || a.Rarity != content.RarityRare {
		t.Errorf("instance = %+v", a)
	}
}

func TestPotential(t *testing.T) {
	cases := []struct {
		def  content.ItemDef
		want float64
	}{
		{content.ItemDef{RequiredLevel: 50}, 2},
		{content.ItemDef{SellPrice: 50}, 1.0},
		{content.ItemDef{SellPrice: 500}, 1.3},
		{content.ItemDef{SellPrice: 4999}, 1.7},
		{content.ItemDef{SellPrice: 10000}, 2.2},
		{content.ItemDef{SellPrice: 50000}, 2.8},
	}
	for _, c := range cases {
		if got := Potential(c.def); got != c.want {
			t.Errorf("Potential(%+v) = %v, want %v", c.def, got, c.want)
		}
	}
}

func TestSpecialPoolWeightsScalingSkill(t *testing.T) {
	weights := func(def content.ItemDef) map[string]int {
		w := make(map[string]int)
		for _, s := range specialPool(def) {
			w[s.id] += s.weight
		}
		return w
	}

	wand := content.ItemDef{ID: "wand", Kind: content.KindWeapon, ScalingSkill: content.SkillMagic}
	if got := weights(wand)["skill:magic"]; got != 4 {
		t.Errorf("wand magic weight = %d, want 3 for scaling plus 1 flat", got)
	}

	sword := content.ItemDef{ID: "sword", Kind: content.KindWeapon, ScalingSkill: content.SkillSword}
	w := weights(sword)
	if w["skill:sword"] != 3 || w["skill:magic"] != 1 {
		t.Errorf("sword weights: sword %d magic %d, want 3 and 1", w["skill:sword"], w["skill:magic"])
	}

	ring := content.ItemDef{ID: "ring", Kind: content.KindJewelry}
	w = weights(ring)
	if w["skill:magic"] != 1 || w["defense"] != 1 || len(w) != len(percentSpecials)+2 {
		t.Errorf("ring pool = %v", w)
	}
}

type fixedRoll float64

func (f fixedRoll) Float64() float64         { return float64(f) }
func (fixedRoll) Intn(n int) int             { return 0 }
func (fixedRoll) Int63() int64               { return 0 }
func (fixedRoll) Read(p []byte) (int, error) { return len(p), nil }

func TestRarityNeverDropsWithMoreBonus(t *testing.T) {
	infs := []content.Influence{content.InfluenceNone, content.InfluenceCorrupted, content.InfluenceEnraged, content.InfluenceBlessed}
	rapid.Check(t, func(t *rapid.T) {
		inf := rapid.SampledFrom(infs).Draw(t, "influence")
		roll := fixedRoll(rapid.Float64Range(0, 1).Draw(t, "roll"))
		lo := rapid.Float64Range(0, 2).Draw(t, "bonus")
		hi := lo + rapid.Float64Range(0, 2).Draw(t, "extra")
		if RollRarity(roll, inf, hi) < RollRarity(roll, inf, lo) {
			t.Fatalf("more bonus lowered rarity at roll %v", float64(roll))
		}
		l := Ladders[inf]
		if !(l.Legendary < l.Epic && l.Epic < l.Rare && l.Rare < l.Uncommon) {
			t.Fatalf("ladder %s not increasing: %+v", inf, l)
		}
	})
}
