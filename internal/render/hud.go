package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"idlehunt/assets"
	"idlehunt/internal/encounter"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
)

// View is everything the status screen shows.
type View struct {
	Player    *player.State
	Encounter encounter.Encounter
	Logs      []event.LogEntry
	Speed     float64
	Paused    bool
	Notice    string // transient line above the key hints
	Now       int64
}

const barWidth = 20

var keyHints = "[h]unt [m]onster [+/-]count [t]rain [b/B]uy potions [x]sell loot [d]eposit [s]peed [p]ause [q]uit"

// DrawStatus renders the HUD: character header, activity, encounter, the
// log tail and key hints.
func (r *Renderer) DrawStatus(v View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	p := v.Player
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)

	voc, _ := assets.Vocation(p.Vocation)
	header := fmt.Sprintf("%s %s  %s  Level %d", voc.Emoji, p.Name, voc.Name, p.Level)
	if p.Promoted {
		header += " (promoted)"
	}
	r.drawText(0, 0, header, white.Bold(true))
	next := progression.ExperienceForLevel(p.Level)
	r.drawText(0, 1, fmt.Sprintf("XP    %s %.0f/%.0f", bar(p.XP, next, barWidth), p.XP, next), gray)
	r.drawText(0, 2, fmt.Sprintf("HP    %s %.0f/%.0f", bar(p.HP, p.EffectiveMaxHP(), barWidth), p.HP, p.EffectiveMaxHP()),
		tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.drawText(0, 3, fmt.Sprintf("Mana  %s %.0f/%.0f", bar(p.Mana, p.EffectiveMaxMana(), barWidth), p.Mana, p.EffectiveMaxMana()),
		tcell.StyleDefault.Foreground(tcell.ColorBlue))
	stamina := time.Duration(p.Stamina) * time.Second
	r.drawText(0, 4, fmt.Sprintf("Stam  %s %dh%02dm", bar(p.Stamina, player.MaxStamina, barWidth),
		int(stamina.Hours()), int(stamina.Minutes())%60), tcell.StyleDefault.Foreground(tcell.ColorGreen))
	gold := fmt.Sprintf("Gold %d  Bank %d", p.Gold, p.BankGold)
	if p.Blessing {
		gold += "  Blessed"
	}
	r.drawText(0, 5, gold, tcell.StyleDefault.Foreground(tcell.ColorGold))

	r.drawText(0, 7, r.activity(v), white)
	r.drawText(0, 8, r.encounterLine(v), white)
	r.drawHLine(9, tcell.ColorGray)

	logTop, logBottom := 10, h-3
	lines := v.Logs
	if n := logBottom - logTop; len(lines) > n {
		lines = lines[len(lines)-max(n, 0):]
	}
	for i, e := range lines {
		r.drawText(0, logTop+i, Truncate(e.Message, w), LogStyle(e))
	}

	if v.Notice != "" {
		r.drawText(0, h-2, v.Notice, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.drawText(0, h-1, Truncate(keyHints, w), gray)
	r.screen.Show()
}

func (r *Renderer) activity(v View) string {
	p := v.Player
	speed := fmt.Sprintf("  x%.0f", v.Speed)
	if v.Paused {
		speed += "  PAUSED"
	}
	switch {
	case p.Hunting():
		id := p.Hunt.MonsterID
		name := id
		if m, ok := assets.Catalog().Monster(id); ok {
			name = m.Name
		}
		return fmt.Sprintf("Hunting %s %d x %s  hazard %d%s", assets.MonsterGlyph(id), p.Hunt.Concurrent, name, p.Settings.HazardLevel, speed)
	case p.IsTraining():
		sk := p.Skills[p.Training.Skill]
		return fmt.Sprintf("Training %s  level %d (%.0f%%)%s", p.Training.Skill, sk.Level, sk.Progress, speed)
	}
	return "Resting in town" + speed
}

func (r *Renderer) encounterLine(v View) string {
	e := v.Encounter
	switch e.Phase {
	case encounter.Alive:
		m := e.Monster
		return fmt.Sprintf("%s%s %s %s %.0f/%.0f", assets.InfluenceGlyph(m.Def.Influence), assets.MonsterGlyph(m.BaseID),
			m.Def.Name, bar(m.HP, m.MaxHP, barWidth), m.HP, m.MaxHP)
	case encounter.SpawnPending, encounter.Dead:
		return "Looking for the next target..."
	}
	return ""
}
