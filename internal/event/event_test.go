package event

import (
	"math/rand"
	"testing"
)

func TestBatchIDsReplayWithSeed(t *testing.T) {
	a := NewBatch(rand.New(rand.NewSource(7)))
	b := NewBatch(rand.New(rand.NewSource(7)))
	for i := 0; i < 3; i++ {
		a.Log(Combat, 1, "hit %d", i)
		b.Log(Combat, 1, "hit %d", i)
	}
	for i := range a.Logs {
		if a.Logs[i].ID != b.Logs[i].ID {
			t.Fatalf("log %d ids differ: %s vs %s", i, a.Logs[i].ID, b.Logs[i].ID)
		}
	}
	if a.Logs[0].ID == a.Logs[1].ID {
		t.Error("consecutive ids repeat")
	}
	if a.Logs[2].Message != "hit 2" {
		t.Errorf("message = %q", a.Logs[2].Message)
	}
}

func TestKillMergesByName(t *testing.T) {
	b := NewBatch(nil)
	b.Kill("Rat", 1)
	b.Kill("Wolf", 2)
	b.Kill("Rat", 3)
	if len(b.Kills) != 2 || b.Kills[0].Count != 4 || b.Kills[1].Count != 2 {
		t.Errorf("kills = %+v", b.Kills)
	}
}

func TestTriggerOnce(t *testing.T) {
	b := NewBatch(nil)
	b.Trigger("rare_mob")
	b.Trigger("rare_mob")
	if len(b.Triggers) != 1 {
		t.Errorf("triggers = %v", b.Triggers)
	}
}

func TestStatsAdd(t *testing.T) {
	s := Stats{XPGained: 1, GoldGained: 2, ProfitGained: 3, Waste: 4}
	s.Add(Stats{XPGained: 1, GoldGained: 1, ProfitGained: 1, Waste: 1})
	if s != (Stats{XPGained: 2, GoldGained: 3, ProfitGained: 4, Waste: 5}) {
		t.Errorf("stats = %+v", s)
	}
}

func TestLogRarityTagsEntry(t *testing.T) {
	b := NewBatch(nil)
	b.LogRarity(3, 5, "Loot: %s", "epic sword")
	if b.Logs[0].Rarity == nil || *b.Logs[0].Rarity != 3 || b.Logs[0].Category != Loot {
		t.Errorf("entry = %+v", b.Logs[0])
	}
}
