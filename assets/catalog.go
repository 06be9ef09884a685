// Package assets holds the shipped reference data: items, monsters, spells,
// quests, tasks and the vocation outfits.
package assets

import (
	"maps"
	"sync"

	"idlehunt/internal/content"
	"idlehunt/internal/player"
)

var catalog = sync.OnceValue(func() *content.Catalog {
	return content.NewCatalog(items, monsters, spells, quests, tasks)
})

// Catalog returns the shipped tables. The result is shared and must not be
// modified.
func Catalog() *content.Catalog { return catalog() }

// NewCharacter creates a level 1 character wearing its vocation's starting
// outfit.
func NewCharacter(name string, v content.Vocation, now int64) player.State {
	p := player.New(name, v, now)
	def, ok := Vocation(v)
	if !ok {
		return p
	}
	cat := Catalog()
	for _, id := range def.Equipment {
		it, ok := cat.Item(id)
		if !ok {
			continue
		}
		slot := it.Slot
		if it.Kind == content.KindAmmo {
			slot = content.SlotAmmo
		}
		p.Equipment[slot] = player.ItemInstance{ItemID: id}
	}
	maps.Copy(p.Inventory, def.Inventory)
	p.Gold = def.StarterGold
	p.Settings.SpellRotation = append([]string(nil), def.Rotation...)
	p.Settings.HealSpell.SpellID = def.HealSpell
	if def.Inventory["health_potion"] > 0 {
		p.Settings.HealthPotion.ItemID = "health_potion"
	}
	if def.Inventory["mana_potion"] > 0 {
		p.Settings.ManaPotion.ItemID = "mana_potion"
	}
	return p
}
