package assets

import "idlehunt/internal/content"

func drop(id string, chance float64, maxCount int) content.LootEntry {
	return content.LootEntry{ItemID: id, Chance: chance, MaxCount: maxCount}
}

// monsters are the hunting grounds, ordered roughly by difficulty.
var monsters = []content.MonsterDef{
	{ID: "rat", Name: "Rat", HP: 20, MinDamage: 0, MaxDamage: 8, AttackIntervalMs: 2000, XP: 5, MinGold: 0, MaxGold: 4,
		Loot: []content.LootEntry{drop("cheese", 0.3, 1), drop("club", 0.02, 1)}},
	{ID: "cave_rat", Name: "Cave Rat", HP: 30, MinDamage: 0, MaxDamage: 10, AttackIntervalMs: 2000, XP: 10, MinGold: 0, MaxGold: 6,
		Loot: []content.LootEntry{drop("cheese", 0.4, 2), drop("leather_helmet", 0.03, 1)}},
	{ID: "troll", Name: "Troll", HP: 50, MinDamage: 0, MaxDamage: 24, AttackIntervalMs: 2000, XP: 20, MinGold: 0, MaxGold: 12, MinLevel: 5,
		Loot: []content.LootEntry{drop("ham", 0.4, 2), drop("troll_green", 0.06, 1), drop("hatchet", 0.03, 1), drop("leather_armor", 0.04, 1)}},
	{ID: "orc_warrior", Name: "Orc Warrior", HP: 125, MinDamage: 0, MaxDamage: 50, AttackIntervalMs: 2000, XP: 50, MinGold: 0, MaxGold: 20, MinLevel: 10,
		Loot: []content.LootEntry{drop("orc_tooth", 0.03, 1), drop("sabre", 0.05, 1), drop("brass_armor", 0.02, 1), drop("plate_legs", 0.01, 1)}},
	{ID: "minotaur", Name: "Minotaur", HP: 170, MinDamage: 0, MaxDamage: 45, AttackIntervalMs: 2000, XP: 50, MinGold: 0, MaxGold: 25, MinLevel: 12,
		Loot: []content.LootEntry{drop("minotaur_leather", 0.1, 1), drop("bolt", 0.2, 8), drop("plate_legs", 0.02, 1), drop("steel_helmet", 0.01, 1)}},
	{ID: "cyclops", Name: "Cyclops", HP: 260, MinDamage: 0, MaxDamage: 105, AttackIntervalMs: 2000, XP: 150, MinGold: 0, MaxGold: 47, MinLevel: 20,
		Loot: []content.LootEntry{drop("cyclops_toe", 0.1, 1), drop("dwarven_shield", 0.02, 1), drop("health_potion", 0.05, 1), drop("wyvern_talisman", 0.005, 1)}},
	{ID: "giant_spider", Name: "Giant Spider", HP: 1300, MinDamage: 70, MaxDamage: 300, AttackIntervalMs: 2000, XP: 900, MinGold: 30, MaxGold: 190, MinLevel: 40,
		Loot: []content.LootEntry{drop("giant_spider_silk", 0.02, 1), drop("knight_legs", 0.01, 1), drop("knight_armor", 0.005, 1),
			drop("platinum_amulet", 0.004, 1), drop("strong_health_potion", 0.05, 2)}},
	{ID: "dragon", Name: "Dragon", HP: 1000, MinDamage: 40, MaxDamage: 230, AttackIntervalMs: 2000, XP: 700, MinGold: 20, MaxGold: 105, MinLevel: 35,
		Loot: []content.LootEntry{drop("green_dragon_leather", 0.02, 1), drop("green_dragon_scale", 0.02, 1), drop("dragon_hammer", 0.005, 1),
			drop("dragon_shield", 0.004, 1), drop("onyx_arrow", 0.08, 4), drop("small_sapphire", 0.02, 1)}},
	{ID: "dragon_lord", Name: "Dragon Lord", HP: 1900, MinDamage: 90, MaxDamage: 400, AttackIntervalMs: 2000, XP: 2100, MinGold: 50, MaxGold: 240, MinLevel: 60,
		Loot: []content.LootEntry{drop("red_dragon_scale", 0.02, 1), drop("dragon_claw", 0.001, 1), drop("fire_axe", 0.004, 1),
			drop("crusader_helmet", 0.003, 1), drop("great_mana_potion", 0.05, 2), drop("small_ruby", 0.05, 3)}},
	{ID: "demon", Name: "Demon", HP: 8200, MinDamage: 200, MaxDamage: 650, AttackIntervalMs: 2000, XP: 6000, MinGold: 100, MaxGold: 400, MinLevel: 100,
		Loot: []content.LootEntry{drop("demon_horn", 0.02, 1), drop("giant_sword", 0.02, 1), drop("magic_plate_armor", 0.001, 1),
			drop("mastermind_shield", 0.002, 1), drop("great_spirit_potion", 0.1, 3), drop("giant_shimmering_pearl", 0.01, 1)}},

	// Bosses
	{ID: "the_old_widow", Name: "The Old Widow", HP: 3200, MinDamage: 80, MaxDamage: 350, AttackIntervalMs: 2000, XP: 2800, MinGold: 500, MaxGold: 1500,
		MinLevel: 45, Boss: true, CooldownSeconds: 20 * 60 * 60,
		Loot: []content.LootEntry{drop("giant_spider_silk", 1, 3), drop("knight_armor", 0.2, 1), drop("stone_skin_amulet", 0.5, 1)}},
	{ID: "grorlam", Name: "Grorlam", HP: 3000, MinDamage: 100, MaxDamage: 300, AttackIntervalMs: 2000, XP: 2400, MinGold: 400, MaxGold: 1200,
		MinLevel: 30, Boss: true, CooldownSeconds: 12 * 60 * 60,
		Loot: []content.LootEntry{drop("cyclops_toe", 1, 5), drop("might_ring", 0.4, 1), drop("dwarven_shield", 0.5, 1)}},
	{ID: "zoralurk", Name: "Zoralurk", HP: 55000, MinDamage: 400, MaxDamage: 1400, AttackIntervalMs: 2000, XP: 30000, MinGold: 5000, MaxGold: 15000,
		MinLevel: 150, Boss: true, CooldownSeconds: 48 * 60 * 60,
		Loot: []content.LootEntry{drop("demon_horn", 1, 4), drop("magic_plate_armor", 0.1, 1), drop("prismatic_ring", 0.2, 1), drop("boots_of_haste", 0.3, 1)}},
}
