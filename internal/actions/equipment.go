package actions

import (
	"idlehunt/internal/content"
	"idlehunt/internal/encounter"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
)

// Equip puts on a unique item (by UID) or a carried stackable item (by item
// id). Whatever occupied the slot goes back to the inventory. Ammunition is
// equipped by type and stays counted in the inventory.
func Equip(p player.State, cat *content.Catalog, ref string, now int64) (player.State, event.LogEntry) {
	inst, idx := player.ItemInstance{ItemID: ref}, p.UniqueIndex(ref)
	if idx >= 0 {
		inst = p.UniqueItems[idx]
	} else if p.Inventory[ref] < 1 {
		return p, event.Entry(event.Info, now, "You do not carry that item.")
	}
	def, ok := cat.Item(inst.ItemID)
	if !ok {
		return p, event.Entry(event.Info, now, "Unknown item %q.", inst.ItemID)
	}
	slot := def.Slot
	if def.Kind == content.KindAmmo {
		slot = content.SlotAmmo
	}
	if slot == "" || (!def.IsEquipment() && def.Kind != content.KindAmmo) {
		return p, event.Entry(event.Info, now, "%s cannot be equipped.", def.Name)
	}
	if p.Level < def.RequiredLevel {
		return p, event.Entry(event.Info, now, "You need level %d to use %s.", def.RequiredLevel, def.Name)
	}
	if !def.UsableBy(p.Vocation) {
		return p, event.Entry(event.Info, now, "Your vocation cannot use %s.", def.Name)
	}

	old, occupied := p.Equipment[slot]
	if occupied && old.Unique() && idx < 0 && len(p.UniqueItems) >= encounter.UniqueCap {
		return p, event.Entry(event.Danger, now, "Inventory full.")
	}

	out := p.Clone()
	switch {
	case idx >= 0:
		inst = out.UniqueItems[idx]
		out.UniqueItems = append(out.UniqueItems[:idx], out.UniqueItems[idx+1:]...)
	case slot != content.SlotAmmo:
		take(&out, ref, 1)
	}
	if occupied {
		stow(&out, slot, old)
	}
	out.Equipment[slot] = inst
	return out, event.Entry(event.Info, now, "You equip %s.", def.Name)
}

// Unequip takes off the item in slot.
func Unequip(p player.State, cat *content.Catalog, slot content.Slot, now int64) (player.State, event.LogEntry) {
	old, ok := p.Equipment[slot]
	if !ok {
		return p, event.Entry(event.Info, now, "Nothing is equipped there.")
	}
	if old.Unique() && len(p.UniqueItems) >= encounter.UniqueCap {
		return p, event.Entry(event.Danger, now, "Inventory full.")
	}
	out := p.Clone()
	delete(out.Equipment, slot)
	stow(&out, slot, old)
	def, _ := cat.Item(old.ItemID)
	return out, event.Entry(event.Info, now, "You take off %s.", def.Name)
}

func stow(p *player.State, slot content.Slot, it player.ItemInstance) {
	switch {
	case it.Unique():
		p.UniqueItems = append(p.UniqueItems, it)
	case slot != content.SlotAmmo:
		p.Inventory[it.ItemID]++
	}
}

func take(p *player.State, id string, n int) {
	p.Inventory[id] -= n
	if p.Inventory[id] <= 0 {
		delete(p.Inventory, id)
	}
}
