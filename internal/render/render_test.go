package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"idlehunt/assets"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/offline"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(100, 30)
	t.Cleanup(s.Fini)
	return s
}

// screenText returns the screen contents, one string per row.
func screenText(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(string(c.Runes))
		}
		rows[y] = b.String()
	}
	return rows
}

func contains(rows []string, sub string) bool {
	for _, r := range rows {
		if strings.Contains(r, sub) {
			return true
		}
	}
	return false
}

func TestBar(t *testing.T) {
	cases := []struct {
		cur, max float64
		want     string
	}{
		{5, 10, "[#####-----]"},
		{0, 10, "[----------]"},
		{20, 10, "[##########]"},
		{1, 0, "[----------]"},
	}
	for _, tc := range cases {
		if got := bar(tc.cur, tc.max, 10); got != tc.want {
			t.Errorf("bar(%v, %v) = %q, want %q", tc.cur, tc.max, got, tc.want)
		}
	}
}

func TestDrawStatus(t *testing.T) {
	s := newScreen(t)
	p := assets.NewCharacter("Aria", content.VocationKnight, 0)
	p.Hunt = &player.Hunt{MonsterID: "troll", Concurrent: 2}
	logs := []event.LogEntry{
		event.Entry(event.Combat, 0, "You deal 12 damage to a troll."),
		event.Entry(event.Loot, 0, "Loot of a troll: 1 ham."),
	}
	NewRenderer(s).DrawStatus(View{Player: &p, Logs: logs, Speed: 1, Notice: "Saved."})

	rows := screenText(s)
	for _, want := range []string{"Aria", "Level 1", "Hunting", "Troll", "Loot of a troll", "Saved.", "[q]uit"} {
		if !contains(rows, want) {
			t.Errorf("screen lacks %q:\n%s", want, strings.Join(rows, "\n"))
		}
	}
}

func TestDrawStatusTrainingAndPaused(t *testing.T) {
	s := newScreen(t)
	p := assets.NewCharacter("Bram", content.VocationPaladin, 0)
	p.Training = &player.Training{Skill: content.SkillDistance}
	NewRenderer(s).DrawStatus(View{Player: &p, Speed: 2, Paused: true})
	rows := screenText(s)
	if !contains(rows, "Training distance") || !contains(rows, "PAUSED") {
		t.Errorf("screen:\n%s", strings.Join(rows, "\n"))
	}
}

func TestDrawOfflineReport(t *testing.T) {
	s := newScreen(t)
	rep := &offline.Report{
		SecondsOffline: 3 * 3600,
		XPGained:       1234,
		GoldGained:     56,
		KilledMonsters: []event.Kill{{Name: "Rat", Count: 700}},
		DeathReport: &offline.DeathReport{
			DeathReport: progression.DeathReport{XPLost: 10, GoldLost: 5, BlessingUsed: true},
			Killer:      "Dragon",
		},
	}
	NewRenderer(s).DrawOfflineReport(rep)
	rows := screenText(s)
	for _, want := range []string{"While you were away", "3h0m0s", "+1234", "Killed 700 Rat", "killed by Dragon", "blessing"} {
		if !contains(rows, want) {
			t.Errorf("report lacks %q:\n%s", want, strings.Join(rows, "\n"))
		}
	}
}

func TestDrawMenuScrollsToSelection(t *testing.T) {
	s := newScreen(t)
	rows := make([]string, 60)
	for i := range rows {
		rows[i] = "row " + strings.Repeat("x", i%3) + string(rune('A'+i%26))
	}
	rows[50] = "the chosen one"
	NewRenderer(s).DrawMenu("Pick", rows, 50)
	if got := screenText(s); !contains(got, "> the chosen one") {
		t.Errorf("selection not visible:\n%s", strings.Join(got, "\n"))
	}
}

func TestLogStyleUsesRarity(t *testing.T) {
	r := content.RarityLegendary
	e := event.LogEntry{Category: event.Loot, Rarity: &r}
	fg, _, _ := LogStyle(e).Decompose()
	if fg != tcell.ColorOrange {
		t.Errorf("fg = %v", fg)
	}
	fg, _, _ = LogStyle(event.LogEntry{Category: event.Danger}).Decompose()
	if fg != tcell.ColorRed {
		t.Errorf("danger fg = %v", fg)
	}
}
