package encounter

import (
	"math/rand"
	"strings"
	"testing"

	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/loot"
	"idlehunt/internal/player"
)

func testCatalog() *content.Catalog {
	return content.NewCatalog(
		[]content.ItemDef{
			{ID: "meat", Name: "Meat", Kind: content.KindLoot, SellPrice: 2},
			{ID: "sword", Name: "Sword", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 14, SellPrice: 25, ScalingSkill: content.SkillSword},
			{ID: "ring", Name: "Ring", Kind: content.KindJewelry, Slot: content.SlotRing, SellPrice: 100},
			{ID: "bow", Name: "Bow", Kind: content.KindWeapon, Slot: content.SlotMainHand, Attack: 10, SellPrice: 40,
				WeaponKind: content.WeaponBow, AmmoType: content.AmmoArrow},
			{ID: "arrow", Name: "Arrow", Kind: content.KindAmmo, Slot: content.SlotAmmo, Attack: 2, BuyPrice: 3, AmmoType: content.AmmoArrow},
			{ID: "sudden_death", Name: "Sudden Death Rune", Kind: content.KindRune, BuyPrice: 10,
				Rune: &content.RuneStats{MagicLevel: 0, Base: 100, LevelFactor: 1, MagicFactor: 1}},
		},
		[]content.MonsterDef{
			{ID: "rat", Name: "Rat", HP: 1, MinDamage: 1, MaxDamage: 1, AttackIntervalMs: 60_000, XP: 10, MinGold: 2, MaxGold: 2,
				Loot: []content.LootEntry{{ItemID: "meat", Chance: 1, MaxCount: 1}}},
			{ID: "troll", Name: "Troll", HP: 10_000, MinDamage: 40, MaxDamage: 40, AttackIntervalMs: 1000, XP: 50, MinGold: 0, MaxGold: 0},
			{ID: "dragon", Name: "Dragon", HP: 100_000, MinDamage: 5000, MaxDamage: 5000, AttackIntervalMs: 1000, XP: 500},
			{ID: "king", Name: "Rat King", HP: 1, MinDamage: 1, MaxDamage: 1, AttackIntervalMs: 60_000, XP: 100, MinGold: 50, MaxGold: 50, Boss: true, CooldownSeconds: 600},
		},
		[]content.SpellDef{
			{ID: content.SpellMagicShield, Name: "Magic Shield", Words: "utamo vita", Kind: content.SpellSupport, ManaCost: 50, CooldownMs: 2000, Level: 1,
				Vocations: []content.Vocation{content.VocationSorcerer}, DurationMs: 200_000},
			{ID: "inferno", Name: "Inferno", Words: "exevo gran mas flam", Kind: content.SpellAttack, ManaCost: 500, CooldownMs: 4000, Level: 1,
				Vocations: []content.Vocation{content.VocationSorcerer}, Base: 300},
			{ID: "flare", Name: "Flare", Words: "exori flam", Kind: content.SpellAttack, ManaCost: 10, CooldownMs: 2000, Level: 1,
				Vocations: []content.Vocation{content.VocationSorcerer}, Base: 20},
			{ID: "strike", Name: "Energy Strike", Words: "exori vis", Kind: content.SpellAttack, ManaCost: 20, CooldownMs: 4000, Level: 1,
				Vocations: []content.Vocation{content.VocationSorcerer}, Base: 40},
		},
		[]content.QuestDef{{ID: "rare_hunter", Name: "Rare Hunter", RareKills: 1, RewardGold: 500}},
		[]content.TaskDef{{ID: "rats", MonsterID: "rat", Kills: 2, RewardGold: 100, RewardXP: 20}},
	)
}

type fixture struct {
	env Env
	p   player.State
	enc Encounter
	b   *event.Batch
}

func newFixture(monster string, voc content.Vocation) *fixture {
	src := rand.New(rand.NewSource(1))
	p := player.New("t", voc, 0)
	p.Hunt = &player.Hunt{MonsterID: monster, Concurrent: 1}
	return &fixture{
		env: Env{Catalog: testCatalog(), Rng: src, Speed: 1},
		p:   p,
		b:   event.NewBatch(src),
	}
}

func (f *fixture) tick(now int64) Outcome {
	f.env.Now = now
	return Tick(f.env, &f.p, &f.enc, f.b)
}

func TestSpawnThenGrace(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.tick(0)
	if f.enc.Phase != Alive || f.enc.Monster.HP != 10_000 {
		t.Fatalf("after first tick: phase %s hp %v", f.enc.Phase, f.enc.Monster.HP)
	}
	hp := f.p.HP
	f.tick(500)
	if f.enc.Monster.HP != 10_000 || f.p.HP != hp {
		t.Error("combat happened inside the spawn grace window")
	}
}

func TestKillSettlement(t *testing.T) {
	f := newFixture("rat", content.VocationKnight)
	f.tick(0)
	out := f.tick(1000)
	if out.Died || out.HuntStopped {
		t.Fatalf("outcome = %+v", out)
	}
	if f.enc.Phase != Dead || f.enc.SpawnAt != 1000+RespawnMs {
		t.Fatalf("phase %s spawnAt %d", f.enc.Phase, f.enc.SpawnAt)
	}
	// stage 5 x stamina 1.5
	if f.b.Stats.XPGained != 75 {
		t.Errorf("xp = %v, want 75", f.b.Stats.XPGained)
	}
	if f.p.Gold != 2 || f.b.Stats.GoldGained != 2 {
		t.Errorf("gold = %d / %d, want 2", f.p.Gold, f.b.Stats.GoldGained)
	}
	if f.p.Inventory["meat"] != 1 || f.b.Stats.ProfitGained != 4 {
		t.Errorf("meat %d profit %d", f.p.Inventory["meat"], f.b.Stats.ProfitGained)
	}
	if len(f.b.Kills) != 1 || f.b.Kills[0] != (event.Kill{Name: "Rat", Count: 1}) {
		t.Errorf("kills = %+v", f.b.Kills)
	}
	if f.p.Skills[content.SkillFist].Level <= 10 && f.p.Skills[content.SkillFist].Progress == 0 {
		t.Error("basic attack did not train fist")
	}
	last := f.b.Logs[len(f.b.Logs)-1].Message
	if !strings.HasPrefix(last, "Loot of Rat: 2 gold coins, 1 Meat") {
		t.Errorf("loot line = %q", last)
	}

	// respawn lock holds until 2200
	f.tick(2000)
	if f.enc.Phase != SpawnPending {
		t.Errorf("phase at 2000 = %s, want spawn pending", f.enc.Phase)
	}
	f.tick(3000)
	if f.enc.Phase != Alive {
		t.Errorf("phase at 3000 = %s, want alive", f.enc.Phase)
	}
}

func TestConcurrentPoolAndKills(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.p.Hunt.Concurrent = 3
	f.tick(0)
	if f.enc.Monster.HP != 30_000 || f.enc.Monster.Concurrent != 3 {
		t.Errorf("pool %v concurrent %d", f.enc.Monster.HP, f.enc.Monster.Concurrent)
	}
}

func TestBossKillStopsHunt(t *testing.T) {
	f := newFixture("king", content.VocationKnight)
	f.p.Hunt.Concurrent = 4
	f.tick(0)
	if f.enc.Monster.Concurrent != 1 {
		t.Fatalf("boss concurrent = %d, want 1", f.enc.Monster.Concurrent)
	}
	out := f.tick(1000)
	if !out.HuntStopped || f.p.Hunt != nil {
		t.Fatalf("hunt not stopped: %+v", out)
	}
	if f.p.BossesKilled["king"] != 1 {
		t.Errorf("bosses killed = %v", f.p.BossesKilled)
	}
	if f.enc.Phase != Idle {
		t.Errorf("encounter phase = %s, want idle", f.enc.Phase)
	}
}

func TestPlayerDeath(t *testing.T) {
	f := newFixture("dragon", content.VocationKnight)
	f.tick(0)
	if out := f.tick(1000); !out.Died {
		t.Fatal("expected death")
	}
	if f.p.HP != 0 {
		t.Errorf("HP = %v, want 0", f.p.HP)
	}
}

func TestMagicShieldPaysFromMana(t *testing.T) {
	f := newFixture("troll", content.VocationSorcerer)
	f.p.Buffs.MagicShieldUntil = 1_000_000
	f.p.Mana = 1000
	f.p.MaxMana = 1000
	f.tick(0)
	hp := f.p.HP
	f.tick(1000)
	// 40 raw, no armor: 28 from mana, 12 from HP
	if got := hp - f.p.HP; got < 11.999 || got > 12.001 {
		t.Errorf("HP lost = %v, want 12", got)
	}
	if got := 1000 - f.p.Mana; got < 27.999 || got > 28.001 {
		t.Errorf("mana lost = %v, want 28", got)
	}
}

func TestMagicShieldSpillsIntoHP(t *testing.T) {
	f := newFixture("troll", content.VocationSorcerer)
	f.p.Buffs.MagicShieldUntil = 1_000_000
	f.p.Mana = 10
	f.tick(0)
	hp := f.p.HP
	f.tick(1000)
	if f.p.Mana != 0 {
		t.Errorf("mana = %v, want 0", f.p.Mana)
	}
	if got := hp - f.p.HP; got < 29.999 || got > 30.001 {
		t.Errorf("HP lost = %v, want 30", got)
	}
}

func TestKeepMagicShieldRecasts(t *testing.T) {
	f := newFixture("troll", content.VocationSorcerer)
	f.p.Settings.MagicShield = true
	f.tick(0)
	f.tick(1000)
	if !f.p.MagicShieldActive(1000) {
		t.Fatal("magic shield not cast")
	}
	if f.p.Cooldowns.Spells[content.SpellMagicShield] != 3000 {
		t.Errorf("cooldown = %d, want 3000", f.p.Cooldowns.Spells[content.SpellMagicShield])
	}
}

func TestReflectionDamagesMonster(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.p.Equipment[content.SlotRing] = player.ItemInstance{ItemID: "ring", UID: "r", Rarity: content.RarityRare,
		Modifiers: player.Modifiers{ReflectionPercent: 25}}
	f.tick(0)
	hp := f.p.HP
	f.tick(1000)
	if got := hp - f.p.HP; got < 29.999 || got > 30.001 {
		t.Errorf("HP lost = %v, want 30", got)
	}
	found := false
	for _, s := range f.b.Splats {
		if s.Target == event.OnMonster && s.Value > 9.999 && s.Value < 10.001 {
			found = true
		}
	}
	if !found {
		t.Error("no reflected splat of 10 on the monster")
	}
}

func TestPreyExpires(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.p.Prey[0] = player.PreySlot{MonsterID: "troll", Bonus: player.PreyXP, Percent: 10, RemainingSeconds: 2}
	f.p.Prey[1] = player.PreySlot{MonsterID: "rat", Bonus: player.PreyXP, Percent: 10, RemainingSeconds: 2}
	f.tick(0)
	f.tick(1000)
	f.tick(2000)
	if f.p.Prey[0].Active() {
		t.Error("troll prey still active")
	}
	if f.p.Prey[1].RemainingSeconds != 2 {
		t.Error("prey for another monster was spent")
	}
	found := false
	for _, l := range f.b.Logs {
		if strings.Contains(l.Message, "prey bonus") {
			found = true
		}
	}
	if !found {
		t.Error("no expiry log")
	}
}

func TestTaskCompletes(t *testing.T) {
	f := newFixture("rat", content.VocationKnight)
	f.p.Tasks = []player.TaskProgress{{TaskID: "rats", MonsterID: "rat", Required: 2}}
	for now := int64(0); now <= 6000; now += 1000 {
		f.tick(now)
	}
	task := f.p.Tasks[0]
	if !task.Done || task.Kills != 2 {
		t.Fatalf("task = %+v", task)
	}
	if f.p.Gold < 100 {
		t.Errorf("gold = %d, want task reward", f.p.Gold)
	}
}

func TestInfluencedSpawnIsSingleTarget(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.p.Level = 20
	f.p.Hunt.Concurrent = 5
	f.env.Rng = zeroRoll{}
	f.tick(0)
	m := f.enc.Monster
	if m.Def.Influence != content.InfluenceCorrupted || m.Concurrent != 1 || m.HP != 40_000 {
		t.Fatalf("monster = %+v", m)
	}
	if !f.p.Tutorials[TriggerRareMob] || len(f.b.Triggers) != 1 {
		t.Errorf("rare mob trigger missing: %v", f.b.Triggers)
	}
}

func TestInfluencedKillAdvancesQuest(t *testing.T) {
	f := newFixture("rat", content.VocationKnight)
	f.p.Level = 20
	f.env.Rng = zeroRoll{}
	f.tick(0)
	f.tick(1000)
	if !f.p.QuestsDone["rare_hunter"] {
		t.Fatalf("quest progress = %v", f.p.QuestProgress)
	}
}

func TestRareChance(t *testing.T) {
	cases := map[int]float64{1: 0.03, 2: 0.0357, 8: 0.0699, 20: 0.07}
	for n, want := range cases {
		if got := RareChance(n); got < want-1e-9 || got > want+1e-9 {
			t.Errorf("RareChance(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestRollInfluenceGates(t *testing.T) {
	rat, _ := testCatalog().Monster("rat")
	king, _ := testCatalog().Monster("king")
	if got := RollInfluence(zeroRoll{}, rat, 11, 1); got != content.InfluenceNone {
		t.Errorf("level 11 rolled %s", got)
	}
	if got := RollInfluence(zeroRoll{}, king, 50, 1); got != content.InfluenceNone {
		t.Errorf("boss rolled %s", got)
	}
}

func TestSpeedDividesCadences(t *testing.T) {
	f := newFixture("rat", content.VocationKnight)
	f.env.Speed = 2
	f.tick(0)
	f.tick(500)
	if f.enc.Phase != Dead || f.enc.SpawnAt != 500+RespawnMs/2 {
		t.Fatalf("phase %s spawnAt %d", f.enc.Phase, f.enc.SpawnAt)
	}
}

func TestUniqueCapDiscards(t *testing.T) {
	f := newFixture("rat", content.VocationKnight)
	f.p.UniqueItems = make([]player.ItemInstance, UniqueCap)
	d := loot.Drop{Uniques: []player.ItemInstance{{ItemID: "ring", UID: "x", Rarity: content.RarityRare}}}
	if added := mergeLoot(f.env, &f.p, d, f.b); added != 0 || len(f.p.UniqueItems) != UniqueCap {
		t.Errorf("unique list grew to %d", len(f.p.UniqueItems))
	}
}

func TestTickWithoutHuntResets(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.tick(0)
	f.p.Hunt = nil
	f.tick(1000)
	if f.enc.Phase != Idle {
		t.Errorf("phase = %s, want idle", f.enc.Phase)
	}
}

func (f *fixture) offense(now int64) {
	f.env.Now = now
	offense(f.env, f.enc.context(f.env, &f.p), &f.enc, f.b)
}

func (f *fixture) said(words string) bool {
	for _, s := range f.b.Splats {
		if s.Kind == event.SplatSpeech && s.Text == words {
			return true
		}
	}
	return false
}

func (f *fixture) logged(prefix string) bool {
	for _, l := range f.b.Logs {
		if strings.HasPrefix(l.Message, prefix) {
			return true
		}
	}
	return false
}

func (f *fixture) wear(m player.Modifiers) {
	f.p.Equipment[content.SlotRing] = player.ItemInstance{ItemID: "ring", UID: "r", Rarity: content.RarityLegendary, Modifiers: m}
}

func TestRotationCastsFirstReadyAffordableSpell(t *testing.T) {
	f := newFixture("troll", content.VocationSorcerer)
	f.p.Settings.SpellRotation = []string{"inferno", "flare", "strike"}
	f.p.Settings.Rune = "sudden_death"
	f.p.Inventory["sudden_death"] = 3
	f.p.Mana = 100
	f.p.Cooldowns.Spells["flare"] = 5000
	f.tick(0)

	f.offense(1000)
	if !f.said("exori vis") || f.said("exori flam") || f.said("exevo gran mas flam") {
		t.Fatalf("splats = %+v, want only the strike cast", f.b.Splats)
	}
	if f.p.Mana != 80 {
		t.Errorf("mana = %v, want 80", f.p.Mana)
	}
	if f.p.Cooldowns.Spells["strike"] != 5000 || f.p.Cooldowns.Global != 3000 {
		t.Errorf("strike cooldown %d global %d", f.p.Cooldowns.Spells["strike"], f.p.Cooldowns.Global)
	}
	if f.p.Inventory["sudden_death"] != 3 {
		t.Error("rune fired alongside a spell")
	}
	if f.enc.LastPlayerAttack != 1000 {
		t.Errorf("basic attack at %d, want it on its own cadence at 1000", f.enc.LastPlayerAttack)
	}
	if f.enc.Monster.HP >= 10_000 {
		t.Error("troll took no damage")
	}
}

func TestRuneFiresWhenNoSpellIsReady(t *testing.T) {
	f := newFixture("troll", content.VocationSorcerer)
	f.p.Settings.SpellRotation = []string{"inferno"}
	f.p.Settings.Rune = "sudden_death"
	f.p.Inventory["sudden_death"] = 3
	f.tick(0)

	f.offense(1000)
	if f.p.Inventory["sudden_death"] != 2 || f.b.Stats.Waste != 10 {
		t.Fatalf("runes %d waste %d, want 2 and 10", f.p.Inventory["sudden_death"], f.b.Stats.Waste)
	}
	if f.p.Cooldowns.Rune != 3000 || f.p.Cooldowns.Global != 3000 {
		t.Errorf("rune cooldown %d global %d", f.p.Cooldowns.Rune, f.p.Cooldowns.Global)
	}

	f.offense(2000)
	if f.p.Inventory["sudden_death"] != 2 {
		t.Error("rune fired during the global cooldown")
	}
	f.offense(3000)
	if f.p.Inventory["sudden_death"] != 1 || f.b.Stats.Waste != 20 {
		t.Errorf("runes %d waste %d, want 1 and 20", f.p.Inventory["sudden_death"], f.b.Stats.Waste)
	}
}

func TestBasicAttackSpendsAmmo(t *testing.T) {
	f := newFixture("troll", content.VocationPaladin)
	f.p.Equipment[content.SlotMainHand] = player.ItemInstance{ItemID: "bow"}
	f.p.Equipment[content.SlotAmmo] = player.ItemInstance{ItemID: "arrow"}
	f.p.Inventory["arrow"] = 1
	f.tick(0)

	f.offense(1000)
	if _, ok := f.p.Inventory["arrow"]; ok {
		t.Errorf("arrows = %d, want the stack used up", f.p.Inventory["arrow"])
	}
	if f.b.Stats.Waste != 3 {
		t.Errorf("waste = %d, want 3", f.b.Stats.Waste)
	}
	if st := f.p.Skills[content.SkillDistance]; st.Level == 10 && st.Progress == 0 {
		t.Error("shot did not train distance")
	}

	hp := f.enc.Monster.HP
	f.offense(3000)
	f.offense(5000)
	if f.enc.Monster.HP != hp {
		t.Error("bow fired without arrows")
	}
	warnings := 0
	for _, l := range f.b.Logs {
		if strings.HasPrefix(l.Message, "You have no ammunition") {
			warnings++
		}
	}
	if warnings != 1 {
		t.Errorf("ammo warnings = %d, want 1", warnings)
	}
}

func TestCritIsCappedAndMultiplies(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.wear(player.Modifiers{CritPercent: 80})
	f.tick(0)
	c := f.enc.context(f.env, &f.p)

	f.env.Rng = zeroRoll{}
	hit(f.env, c, &f.enc, f.b, 100)
	// minimum variance 0.8, then x1.5
	if got := 10_000 - f.enc.Monster.HP; got < 119.999 || got > 120.001 {
		t.Errorf("crit dealt %v, want 120", got)
	}
	if !f.logged("Critical hit!") {
		t.Error("no crit log")
	}

	// 0.6 would crit at 80% but not at the 50% cap.
	f.env.Rng = constRoll(0.6)
	hp := f.enc.Monster.HP
	hit(f.env, c, &f.enc, f.b, 100)
	if got := hp - f.enc.Monster.HP; got < 103.999 || got > 104.001 {
		t.Errorf("hit dealt %v, want 104 without crit", got)
	}
}

func TestExecutionerFinishesBelowThreshold(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.wear(player.Modifiers{ExecutionerPercent: 80})
	f.tick(0)
	c := f.enc.context(f.env, &f.p)
	f.env.Rng = zeroRoll{}

	f.enc.Monster.HP = 2000
	hit(f.env, c, &f.enc, f.b, 100)
	if got := f.enc.Monster.HP; got < 1919.999 || got > 1920.001 || f.logged("You execute") {
		t.Fatalf("hp %v above the threshold, want a plain hit", got)
	}

	f.enc.Monster.HP = 1050
	hit(f.env, c, &f.enc, f.b, 100)
	if f.enc.Monster.HP != 0 || !f.logged("You execute Troll!") {
		t.Errorf("hp %v, want an execution below 10%%", f.enc.Monster.HP)
	}

	f.env.Rng = constRoll(0.6)
	f.enc.Monster.HP = 1050
	hit(f.env, c, &f.enc, f.b, 100)
	if got := f.enc.Monster.HP; got < 945.999 || got > 946.001 {
		t.Errorf("hp = %v, want 946 with the roll above the 50%% cap", got)
	}
}

func TestDodgeCancelsMonsterHit(t *testing.T) {
	f := newFixture("troll", content.VocationKnight)
	f.wear(player.Modifiers{DodgePercent: 90})
	f.tick(0)
	c := f.enc.context(f.env, &f.p)
	hp := f.p.HP

	f.env.Now = 5000
	f.env.Rng = zeroRoll{}
	if monsterAttack(f.env, c, &f.enc, f.b) {
		t.Fatal("dodged hit killed the player")
	}
	last := f.b.Splats[len(f.b.Splats)-1]
	if f.p.HP != hp || last.Kind != event.SplatMiss || last.Target != event.OnPlayer {
		t.Fatalf("hp %v splat %+v, want a miss", f.p.HP, last)
	}
	if f.enc.LastMonsterAttack != 5000 {
		t.Errorf("dodged attack did not reset the cadence")
	}

	// 0.6 dodges at 90% but not at the 50% cap.
	f.env.Now = 6000
	f.env.Rng = constRoll(0.6)
	monsterAttack(f.env, c, &f.enc, f.b)
	if got := hp - f.p.HP; got < 39.999 || got > 40.001 {
		t.Errorf("HP lost = %v, want 40", got)
	}
}

// constRoll returns the same value for every float draw.
type constRoll float64

func (r constRoll) Float64() float64         { return float64(r) }
func (constRoll) Intn(int) int               { return 0 }
func (constRoll) Int63() int64               { return 0 }
func (constRoll) Read(p []byte) (int, error) { return len(p), nil }

// zeroRoll makes every chance succeed and every range pick its minimum.
type zeroRoll struct{}

func (zeroRoll) Float64() float64           { return 0 }
func (zeroRoll) Intn(int) int               { return 0 }
func (zeroRoll) Int63() int64               { return 0 }
func (zeroRoll) Read(p []byte) (int, error) { return len(p), nil }
