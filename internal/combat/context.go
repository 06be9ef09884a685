// Package combat holds the pure damage, healing, defense and reward formulas.
// Nothing here mutates the player or rolls randomness: results are expected
// values, and the encounter applies variance on top.
package combat

import (
	"idlehunt/internal/content"
	"idlehunt/internal/player"
)

// Context is everything a formula may look at.
type Context struct {
	Player     *player.State
	Catalog    *content.Catalog
	TargetID   string // monster id, used for prey lookups
	Now        int64
	Concurrent int // effective target count, 1 for influenced spawns
}

// concurrent returns the effective target count, at least 1.
func (c Context) concurrent() int {
	if c.Concurrent < 1 {
		return 1
	}
	return c.Concurrent
}

// equippedItem pairs an equipped instance with its definition.
type equippedItem struct {
	slot content.Slot
	def  content.ItemDef
	inst player.ItemInstance
}

// usableEquipment returns the equipped items the player meets the level and
// vocation requirements of. Unknown item ids are skipped.
func (c Context) usableEquipment() []equippedItem {
	var out []equippedItem
	for _, slot := range content.Slots {
		inst, ok := c.Player.Equipment[slot]
		if !ok || inst.ItemID == "" {
			continue
		}
		def, ok := c.Catalog.Item(inst.ItemID)
		if !ok || def.RequiredLevel > c.Player.Level || !def.UsableBy(c.Player.Vocation) {
			continue
		}
		out = append(out, equippedItem{slot: slot, def: def, inst: inst})
	}
	return out
}

// weapon returns the usable main-hand weapon, if any.
func (c Context) weapon() (equippedItem, bool) {
	for _, e := range c.usableEquipment() {
		if e.slot == content.SlotMainHand && e.def.Kind == content.KindWeapon {
			return e, true
		}
	}
	return equippedItem{}, false
}
