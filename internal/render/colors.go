package render

import (
	"github.com/gdamore/tcell/v2"

	"idlehunt/internal/content"
	"idlehunt/internal/event"
)

var categoryColors = map[event.Category]tcell.Color{
	event.Info:   tcell.ColorSilver,
	event.Combat: tcell.ColorWhite,
	event.Loot:   tcell.ColorLightGreen,
	event.Danger: tcell.ColorRed,
	event.Gain:   tcell.ColorGold,
	event.Skill:  tcell.ColorAqua,
	event.Magic:  tcell.ColorFuchsia,
}

var rarityColors = [...]tcell.Color{
	content.RarityCommon:    tcell.ColorWhite,
	content.RarityUncommon:  tcell.ColorLime,
	content.RarityRare:      tcell.ColorDodgerBlue,
	content.RarityEpic:      tcell.ColorMediumPurple,
	content.RarityLegendary: tcell.ColorOrange,
}

// LogStyle is the style of one log line: rarity colour for loot with a
// rarity, otherwise the category colour.
func LogStyle(e event.LogEntry) tcell.Style {
	if e.Rarity != nil && int(*e.Rarity) < len(rarityColors) && *e.Rarity >= 0 {
		return tcell.StyleDefault.Foreground(rarityColors[*e.Rarity])
	}
	c, ok := categoryColors[e.Category]
	if !ok {
		c = tcell.ColorSilver
	}
	return tcell.StyleDefault.Foreground(c)
}
