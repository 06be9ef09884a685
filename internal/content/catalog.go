package content

import (
	"fmt"
	"sort"
)

// Catalog is the read-only reference data handed to the simulation.
type Catalog struct {
	Items    map[string]ItemDef
	Monsters map[string]MonsterDef // bosses included, flagged with Boss
	Spells   map[string]SpellDef
	Quests   map[string]QuestDef
	Tasks    map[string]TaskDef
}

// NewCatalog indexes the given definitions by id.
func NewCatalog(items []ItemDef, monsters []MonsterDef, spells []SpellDef, quests []QuestDef, tasks []TaskDef) *Catalog {
	c := &Catalog{
		Items:    make(map[string]ItemDef, len(items)),
		Monsters: make(map[string]MonsterDef, len(monsters)),
		Spells:   make(map[string]SpellDef, len(spells)),
		Quests:   make(map[string]QuestDef, len(quests)),
		Tasks:    make(map[string]TaskDef, len(tasks)),
	}
	for _, d := range items {
		c.Items[d.ID] = d
	}
	for _, d := range monsters {
		c.Monsters[d.ID] = d
	}
	for _, d := range spells {
		c.Spells[d.ID] = d
	}
	for _, d := range quests {
		c.Quests[d.ID] = d
	}
	for _, d := range tasks {
		c.Tasks[d.ID] = d
	}
	return c
}

// Item looks up an item definition.
func (c *Catalog) Item(id string) (ItemDef, bool) {
	d, ok := c.Items[id]
	return d, ok
}

// Monster looks up a monster or boss definition.
func (c *Catalog) Monster(id string) (MonsterDef, bool) {
	d, ok := c.Monsters[id]
	return d, ok
}

// Spell looks up a spell definition.
func (c *Catalog) Spell(id string) (SpellDef, bool) {
	d, ok := c.Spells[id]
	return d, ok
}

// SellValue is the NPC sell price of count units of an item.
func (c *Catalog) SellValue(id string, count int) int {
	return c.Items[id].SellPrice * count
}

// HuntOrder returns non-boss monster ids sorted by minimum level, then HP.
func (c *Catalog) HuntOrder() []string {
	return c.sortedMonsters(false)
}

// BossOrder returns boss ids sorted by minimum level, then HP.
func (c *Catalog) BossOrder() []string {
	return c.sortedMonsters(true)
}

func (c *Catalog) sortedMonsters(boss bool) []string {
	var ids []string
	for id, m := range c.Monsters {
		if m.Boss == boss {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.Monsters[ids[i]], c.Monsters[ids[j]]
		if a.MinLevel != b.MinLevel {
			return a.MinLevel < b.MinLevel
		}
		if a.HP != b.HP {
			return a.HP < b.HP
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Validate checks cross references between tables.
func (c *Catalog) Validate() error {
	for id, m := range c.Monsters {
		if m.HP <= 0 {
			return fmt.Errorf("monster %s: hp must be positive", id)
		}
		if m.AttackIntervalMs <= 0 {
			return fmt.Errorf("monster %s: attack interval must be positive", id)
		}
		if m.MinDamage > m.MaxDamage {
			return fmt.Errorf("monster %s: min damage above max", id)
		}
		if m.Boss && m.CooldownSeconds <= 0 {
			return fmt.Errorf("boss %s: missing cooldown", id)
		}
		for _, e := range m.Loot {
			if _, ok := c.Items[e.ItemID]; !ok {
				return fmt.Errorf("monster %s: unknown loot item %q", id, e.ItemID)
			}
			if e.MaxCount < 1 {
				return fmt.Errorf("monster %s: loot %s max count must be positive", id, e.ItemID)
			}
		}
	}
	for id, it := range c.Items {
		if it.Kind == KindRune && it.Rune == nil {
			return fmt.Errorf("item %s: rune without rune stats", id)
		}
		if it.IsEquipment() && it.Slot == "" {
			return fmt.Errorf("item %s: equipment without slot", id)
		}
	}
	for id, q := range c.Quests {
		if q.MonsterID != "" {
			if _, ok := c.Monsters[q.MonsterID]; !ok {
				return fmt.Errorf("quest %s: unknown monster %q", id, q.MonsterID)
			}
		}
	}
	for id, t := range c.Tasks {
		if _, ok := c.Monsters[t.MonsterID]; !ok {
			return fmt.Errorf("task %s: unknown monster %q", id, t.MonsterID)
		}
	}
	return nil
}
