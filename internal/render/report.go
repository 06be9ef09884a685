package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"idlehunt/internal/offline"
)

// DrawOfflineReport shows what happened while the player was away.
func (r *Renderer) DrawOfflineReport(rep *offline.Report) {
	r.screen.Clear()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorGold)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	away := (time.Duration(rep.SecondsOffline) * time.Second).Round(time.Minute)
	r.drawCentered(1, "While you were away", white.Bold(true))
	r.drawCentered(2, away.String(), tcell.StyleDefault.Foreground(tcell.ColorGray))

	y := 4
	line := func(style tcell.Style, format string, args ...any) {
		r.drawText(2, y, fmt.Sprintf(format, args...), style)
		y++
	}
	if rep.XPGained > 0 {
		line(gold, "Experience  +%.0f", rep.XPGained)
	}
	if rep.GoldGained > 0 {
		line(gold, "Gold        +%d", rep.GoldGained)
	}
	if rep.LeveledUp {
		line(gold, "You advanced %d level(s)!", rep.LevelsGained)
	}
	for _, k := range rep.KilledMonsters {
		line(white, "Killed %d %s", k.Count, k.Name)
	}
	if s := rep.SkillTrained; s != nil {
		line(tcell.StyleDefault.Foreground(tcell.ColorAqua), "Trained %s to level %d (+%d)", s.Skill, s.Level, s.Levels)
	}
	if rep.Waste > 0 {
		line(white, "Supplies used: %d gold worth", rep.Waste)
	}
	if rep.StopReason != "" {
		line(tcell.StyleDefault.Foreground(tcell.ColorYellow), "%s", rep.StopReason)
	}
	if d := rep.DeathReport; d != nil {
		y++
		line(red.Bold(true), "You were killed by %s after %s.", d.Killer,
			(time.Duration(d.SecondsSurvived)*time.Second).Round(time.Second))
		line(red, "Lost %.0f experience and %d gold.", d.XPLost, d.GoldLost)
		if d.BlessingUsed {
			line(red, "Your blessing softened the blow.")
		}
	}
	y++
	line(tcell.StyleDefault.Foreground(tcell.ColorGray), "Press any key to continue.")
	r.screen.Show()
}
