package player

import (
	"testing"

	"idlehunt/internal/content"
)

func TestNewStartsAtFullVitals(t *testing.T) {
	p := New("ana", content.VocationKnight, 1000)
	if p.Level != 1 {
		t.Fatalf("level = %d, want 1", p.Level)
	}
	if p.HP != p.EffectiveMaxHP() || p.Mana != p.EffectiveMaxMana() {
		t.Errorf("vitals %v/%v, want full %v/%v", p.HP, p.Mana, p.EffectiveMaxHP(), p.EffectiveMaxMana())
	}
	if p.Stamina != MaxStamina {
		t.Errorf("stamina = %v, want %v", p.Stamina, MaxStamina)
	}
	if got := p.SkillLevel(content.SkillMagic); got != 0 {
		t.Errorf("magic level = %d, want 0", got)
	}
	if got := p.SkillLevel(content.SkillSword); got != 10 {
		t.Errorf("sword level = %d, want 10", got)
	}
	if len(p.Prey) != PreySlots {
		t.Errorf("prey slots = %d, want %d", len(p.Prey), PreySlots)
	}
}

func TestBaseMaxHPGrowsPerVocation(t *testing.T) {
	cases := []struct {
		voc  content.Vocation
		hp   float64
		mana float64
	}{
		{content.VocationKnight, 150 + 9*15, 50 + 9*5},
		{content.VocationPaladin, 150 + 9*10, 50 + 9*15},
		{content.VocationSorcerer, 150 + 9*5, 50 + 9*30},
		{content.VocationMonk, 150 + 9*10, 50 + 9*10},
	}
	for _, c := range cases {
		if got := BaseMaxHP(c.voc, 10); got != c.hp {
			t.Errorf("%s hp = %v, want %v", c.voc, got, c.hp)
		}
		if got := BaseMaxMana(c.voc, 10); got != c.mana {
			t.Errorf("%s mana = %v, want %v", c.voc, got, c.mana)
		}
	}
}

func TestEffectiveMaxAppliesPerks(t *testing.T) {
	p := New("ana", content.VocationDruid, 0)
	p.Perks[PerkVitality] = 5
	p.Perks[PerkWisdom] = 10
	if got, want := p.EffectiveMaxHP(), p.MaxHP*1.10; got != want {
		t.Errorf("EffectiveMaxHP = %v, want %v", got, want)
	}
	if got, want := p.EffectiveMaxMana(), p.MaxMana*1.20; got != want {
		t.Errorf("EffectiveMaxMana = %v, want %v", got, want)
	}
}

func TestClampVitals(t *testing.T) {
	p := New("ana", content.VocationPaladin, 0)
	p.HP = p.EffectiveMaxHP() + 500
	p.Mana = -3
	p.Stamina = MaxStamina * 2
	p.ClampVitals()
	if p.HP != p.EffectiveMaxHP() {
		t.Errorf("HP = %v, want clamp to %v", p.HP, p.EffectiveMaxHP())
	}
	if p.Mana != 0 {
		t.Errorf("Mana = %v, want 0", p.Mana)
	}
	if p.Stamina != MaxStamina {
		t.Errorf("Stamina = %v, want %v", p.Stamina, MaxStamina)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	p := New("ana", content.VocationKnight, 0)
	p.Inventory["health_potion"] = 3
	p.UniqueItems = append(p.UniqueItems, ItemInstance{
		ItemID:    "sword",
		UID:       "u1",
		Modifiers: Modifiers{SkillBonus: map[content.Skill]int{content.SkillSword: 1}},
	})
	p.Hunt = &Hunt{MonsterID: "rat", Concurrent: 1}

	c := p.Clone()
	c.Inventory["health_potion"] = 0
	c.UniqueItems[0].Modifiers.SkillBonus[content.SkillSword] = 9
	c.Hunt.Concurrent = 4
	c.Skills[content.SkillSword] = SkillState{Level: 80}

	if p.Inventory["health_potion"] != 3 {
		t.Error("inventory aliased")
	}
	if p.UniqueItems[0].Modifiers.SkillBonus[content.SkillSword] != 1 {
		t.Error("unique item modifiers aliased")
	}
	if p.Hunt.Concurrent != 1 {
		t.Error("hunt aliased")
	}
	if p.SkillLevel(content.SkillSword) != 10 {
		t.Error("skills aliased")
	}
}

func TestNormalizeFillsLegacySave(t *testing.T) {
	p := State{Name: "old", Level: 0, Hunt: &Hunt{}}
	p.Normalize()
	if p.Vocation != content.VocationNone || p.Level != 1 {
		t.Errorf("vocation/level = %s/%d", p.Vocation, p.Level)
	}
	if p.Hunt != nil {
		t.Error("empty hunt pointer should be dropped")
	}
	if p.Inventory == nil || p.Perks == nil || p.Cooldowns.Spells == nil {
		t.Error("maps not initialised")
	}
	if p.MaxHP != BaseHP {
		t.Errorf("MaxHP = %v, want %v", p.MaxHP, BaseHP)
	}
}

func TestPreyPercentOnlyCountsActiveMatchingSlots(t *testing.T) {
	p := New("ana", content.VocationKnight, 0)
	p.Prey[0] = PreySlot{MonsterID: "rat", Bonus: PreyXP, Percent: 20, RemainingSeconds: 60}
	p.Prey[1] = PreySlot{MonsterID: "rat", Bonus: PreyXP, Percent: 15, RemainingSeconds: 0}
	p.Prey[2] = PreySlot{MonsterID: "wolf", Bonus: PreyXP, Percent: 30, RemainingSeconds: 60}
	if got := p.PreyPercent("rat", PreyXP); got != 20 {
		t.Errorf("PreyPercent = %v, want 20", got)
	}
	if got := p.PreyPercent("rat", PreyLoot); got != 0 {
		t.Errorf("PreyPercent loot = %v, want 0", got)
	}
}
