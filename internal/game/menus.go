package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"idlehunt/assets"
	"idlehunt/internal/actions"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
)

// menu blocks until the player picks a row. Returns false on escape, quit
// or disconnect.
func (g *Game) menu(ctx context.Context, title string, rows []string) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	selected := 0
	for {
		g.renderer.DrawMenu(title, rows, selected)
		var ev tcell.Event
		select {
		case <-ctx.Done():
			return 0, false
		case e, ok := <-g.events:
			if !ok {
				return 0, false
			}
			ev = e
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if d := menuMove(ev); d != 0 {
				selected = (selected + d + len(rows)) % len(rows)
				continue
			}
			switch ev.Key() {
			case tcell.KeyEnter:
				return selected, true
			case tcell.KeyEscape:
				return 0, false
			}
			switch r := ev.Rune(); {
			case r == 'q' || r == 'Q':
				return 0, false
			case r >= '1' && r <= '9':
				if idx := int(r - '1'); idx < len(rows) {
					return idx, true
				}
			}
		}
	}
}

// modal runs a menu with the simulation paused, so closing it causes no
// burst of catch-up ticks. Ticks already owed run before the pause.
func (g *Game) modal(ctx context.Context, title string, rows []string) (int, bool) {
	wasPaused := g.sess.Paused
	g.step()
	g.sess.Pause(g.nowMs())
	defer func() {
		if !wasPaused {
			g.sess.Resume(g.nowMs())
		}
	}()
	return g.menu(ctx, title, rows)
}

// waitKey blocks until any key is pressed.
func (g *Game) waitKey(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-g.events:
			if !ok {
				return
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return
			}
		}
	}
}

func (g *Game) selectVocation(ctx context.Context) (content.Vocation, bool) {
	rows := make([]string, len(assets.Vocations))
	for i, v := range assets.Vocations {
		rows[i] = fmt.Sprintf("%s %-8s %s", v.Emoji, v.Name, v.Lore)
	}
	idx, ok := g.menu(ctx, "Choose your vocation", rows)
	if !ok {
		return "", false
	}
	return assets.Vocations[idx].Vocation, true
}

func (g *Game) selectMonster(ctx context.Context) (string, bool) {
	ids := append(g.cat.HuntOrder(), g.cat.BossOrder()...)
	rows := make([]string, len(ids))
	for i, id := range ids {
		m, _ := g.cat.Monster(id)
		row := fmt.Sprintf("%s %-18s level %3d  %6.0f hp", assets.MonsterGlyph(id), m.Name, m.MinLevel, m.HP)
		if m.Boss {
			row += "  boss"
			if until := g.player.BossCooldowns[id]; until > g.nowMs() {
				row += " (resting)"
			}
		}
		rows[i] = row
	}
	idx, ok := g.modal(ctx, "Choose your prey", rows)
	if !ok {
		return "", false
	}
	return ids[idx], true
}

func (g *Game) selectSkill(ctx context.Context) (content.Skill, bool) {
	rows := make([]string, len(content.Skills))
	for i, s := range content.Skills {
		rows[i] = fmt.Sprintf("%-10s level %d", s, g.player.SkillLevel(s))
	}
	idx, ok := g.modal(ctx, "Train which skill?", rows)
	if !ok {
		return "", false
	}
	return content.Skills[idx], true
}

// potionOf returns the configured potion, or fallback when none is set.
func potionOf(a player.AutoConsumable, fallback string) string {
	if a.ItemID != "" {
		return a.ItemID
	}
	return fallback
}

// sellLoot sells every carried creature product.
func (g *Game) sellLoot(now int64) {
	var ids []string
	for id, n := range g.player.Inventory {
		if it, ok := g.cat.Item(id); ok && it.Kind == content.KindLoot && n > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		g.addLog(event.Entry(event.Info, now, "You have no loot to sell."))
		return
	}
	slices.Sort(ids)
	for _, id := range ids {
		g.apply(actions.Sell(g.player, g.cat, id, 0, now))
	}
}
