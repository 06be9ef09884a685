package content

import "testing"

func TestInfluencedScalesStats(t *testing.T) {
	base := MonsterDef{ID: "orc", Name: "orc", HP: 100, MinDamage: 10, MaxDamage: 20, AttackIntervalMs: 2000, XP: 50, MinGold: 2, MaxGold: 10}

	cases := []struct {
		inf      Influence
		hp, xp   float64
		interval int64
		maxGold  int
	}{
		{InfluenceCorrupted, 400, 300, 2000, 30},
		{InfluenceEnraged, 250, 600, 1200, 50},
		{InfluenceBlessed, 1500, 2000, 2000, 150},
	}
	for _, tc := range cases {
		got := base.Influenced(tc.inf)
		if got.HP != tc.hp || got.XP != tc.xp {
			t.Errorf("%s: hp/xp = %v/%v; want %v/%v", tc.inf, got.HP, got.XP, tc.hp, tc.xp)
		}
		if got.AttackIntervalMs != tc.interval {
			t.Errorf("%s: interval = %d; want %d", tc.inf, got.AttackIntervalMs, tc.interval)
		}
		if got.MaxGold != tc.maxGold {
			t.Errorf("%s: max gold = %d; want %d", tc.inf, got.MaxGold, tc.maxGold)
		}
		if got.Influence != tc.inf {
			t.Errorf("influence tag = %q; want %q", got.Influence, tc.inf)
		}
	}
	if base.HP != 100 || base.Influence != InfluenceNone {
		t.Error("Influenced mutated the base definition")
	}
}

func TestInfluencedNoneIsIdentity(t *testing.T) {
	base := MonsterDef{ID: "rat", Name: "rat", HP: 20, XP: 5}
	if got := base.Influenced(InfluenceNone); got.Name != base.Name || got.HP != base.HP {
		t.Errorf("InfluenceNone changed the monster: %+v", got)
	}
}

func TestValidateUnknownLoot(t *testing.T) {
	c := NewCatalog(nil, []MonsterDef{{ID: "rat", HP: 10, AttackIntervalMs: 1000, Loot: []LootEntry{{ItemID: "cheese", Chance: 0.5, MaxCount: 1}}}}, nil, nil, nil)
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown loot item")
	}
}
