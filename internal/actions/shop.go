// Package actions implements the player commands issued between ticks:
// trading, banking, equipment, ascension perks, prey and automation
// settings. Every action is soft-fail: an invalid request returns the input
// state unchanged with a log line explaining why, and a valid one returns an
// updated copy.
package actions

import (
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
)

// Blessing prices scale with level between these bounds.
const (
	BlessingGoldPerLevel = 200
	MinBlessingCost      = 2000
	MaxBlessingCost      = 20000
)

// BlessingCost is the gold price of a blessing at level.
func BlessingCost(level int) int {
	return min(max(level*BlessingGoldPerLevel, MinBlessingCost), MaxBlessingCost)
}

// Buy purchases count units of an NPC-sold item with on-hand gold.
func Buy(p player.State, cat *content.Catalog, itemID string, count int, now int64) (player.State, event.LogEntry) {
	def, ok := cat.Item(itemID)
	if !ok {
		return p, event.Entry(event.Info, now, "Unknown item %q.", itemID)
	}
	if def.BuyPrice <= 0 {
		return p, event.Entry(event.Info, now, "%s is not sold here.", def.Name)
	}
	if count < 1 {
		return p, event.Entry(event.Info, now, "You must buy at least one %s.", def.Name)
	}
	cost := def.BuyPrice * count
	if p.Gold < cost {
		return p, event.Entry(event.Danger, now, "Insufficient gold: %d %s cost %d gold.", count, def.Name, cost)
	}
	out := p.Clone()
	out.Gold -= cost
	out.Inventory[def.ID] += count
	return out, event.Entry(event.Info, now, "You bought %d %s for %d gold.", count, def.Name, cost)
}

// Sell sells a unique item by UID, or count units of a stackable item. A
// count of 0 sells the whole stack.
func Sell(p player.State, cat *content.Catalog, ref string, count int, now int64) (player.State, event.LogEntry) {
	if i := p.UniqueIndex(ref); i >= 0 {
		it := p.UniqueItems[i]
		def, _ := cat.Item(it.ItemID)
		out := p.Clone()
		out.UniqueItems = append(out.UniqueItems[:i], out.UniqueItems[i+1:]...)
		out.Gold += def.SellPrice
		e := event.Entry(event.Loot, now, "You sold the %s %s for %d gold.", it.Rarity, def.Name, def.SellPrice)
		r := it.Rarity
		e.Rarity = &r
		return out, e
	}

	def, ok := cat.Item(ref)
	if !ok {
		return p, event.Entry(event.Info, now, "Unknown item %q.", ref)
	}
	have := p.Inventory[ref]
	if count == 0 {
		count = have
	}
	if count < 1 || have < count {
		return p, event.Entry(event.Info, now, "You do not have %d %s.", max(count, 1), def.Name)
	}
	if def.SellPrice <= 0 {
		return p, event.Entry(event.Info, now, "Nobody wants to buy %s.", def.Name)
	}
	out := p.Clone()
	out.Inventory[ref] -= count
	if out.Inventory[ref] == 0 {
		delete(out.Inventory, ref)
	}
	gold := cat.SellValue(ref, count)
	out.Gold += gold
	return out, event.Entry(event.Loot, now, "You sold %d %s for %d gold.", count, def.Name, gold)
}

// Deposit moves gold to the bank, where death cannot take it. An amount of
// 0 deposits everything.
func Deposit(p player.State, amount int, now int64) (player.State, event.LogEntry) {
	if amount == 0 {
		amount = p.Gold
	}
	if amount < 1 || amount > p.Gold {
		return p, event.Entry(event.Info, now, "You do not carry %d gold.", max(amount, 1))
	}
	out := p.Clone()
	out.Gold -= amount
	out.BankGold += amount
	return out, event.Entry(event.Info, now, "You deposited %d gold. Balance: %d.", amount, out.BankGold)
}

// Withdraw moves gold from the bank. An amount of 0 withdraws everything.
func Withdraw(p player.State, amount int, now int64) (player.State, event.LogEntry) {
	if amount == 0 {
		amount = p.BankGold
	}
	if amount < 1 || amount > p.BankGold {
		return p, event.Entry(event.Info, now, "Your balance is only %d gold.", p.BankGold)
	}
	out := p.Clone()
	out.BankGold -= amount
	out.Gold += amount
	return out, event.Entry(event.Info, now, "You withdrew %d gold. Balance: %d.", amount, out.BankGold)
}

// BuyBlessing buys protection that reduces the next death penalty.
func BuyBlessing(p player.State, now int64) (player.State, event.LogEntry) {
	if p.Blessing {
		return p, event.Entry(event.Info, now, "You are already blessed.")
	}
	cost := BlessingCost(p.Level)
	if p.Gold < cost {
		return p, event.Entry(event.Danger, now, "Insufficient gold: a blessing costs %d gold.", cost)
	}
	out := p.Clone()
	out.Gold -= cost
	out.Blessing = true
	return out, event.Entry(event.Magic, now, "You have been blessed by the gods.")
}
