package assets

import "idlehunt/internal/content"

var (
	knightOnly = []content.Vocation{content.VocationKnight}
	paladins   = []content.Vocation{content.VocationPaladin}
	sorcerers  = []content.Vocation{content.VocationSorcerer}
	druids     = []content.Vocation{content.VocationDruid}
	monks      = []content.Vocation{content.VocationMonk}
	fighters   = []content.Vocation{content.VocationKnight, content.VocationPaladin, content.VocationMonk}
)

// items is every item the simulation knows, grouped by kind.
var items = []content.ItemDef{
	// Potions
	{ID: "health_potion", Name: "Health Potion", Kind: content.KindPotion, RestoreHP: 75, BuyPrice: 50},
	{ID: "strong_health_potion", Name: "Strong Health Potion", Kind: content.KindPotion, RestoreHP: 250, BuyPrice: 100},
	{ID: "great_health_potion", Name: "Great Health Potion", Kind: content.KindPotion, RestoreHP: 500, BuyPrice: 190},
	{ID: "mana_potion", Name: "Mana Potion", Kind: content.KindPotion, RestoreMana: 75, BuyPrice: 56},
	{ID: "strong_mana_potion", Name: "Strong Mana Potion", Kind: content.KindPotion, RestoreMana: 150, BuyPrice: 93},
	{ID: "great_mana_potion", Name: "Great Mana Potion", Kind: content.KindPotion, RestoreMana: 220, BuyPrice: 144},
	{ID: "great_spirit_potion", Name: "Great Spirit Potion", Kind: content.KindPotion, RestoreHP: 250, RestoreMana: 150, BuyPrice: 228},

	// Runes
	{ID: "heavy_magic_missile", Name: "Heavy Magic Missile Rune", Kind: content.KindRune, BuyPrice: 12,
		Rune: &content.RuneStats{MagicLevel: 3, Base: 10, LevelFactor: 0.2, MagicFactor: 1.6}},
	{ID: "great_fireball", Name: "Great Fireball Rune", Kind: content.KindRune, BuyPrice: 57,
		Rune: &content.RuneStats{MagicLevel: 4, Base: 15, LevelFactor: 0.2, MagicFactor: 1.8}},
	{ID: "avalanche", Name: "Avalanche Rune", Kind: content.KindRune, BuyPrice: 57,
		Rune: &content.RuneStats{MagicLevel: 4, Base: 15, LevelFactor: 0.2, MagicFactor: 1.8}},
	{ID: "sudden_death", Name: "Sudden Death Rune", Kind: content.KindRune, BuyPrice: 135,
		Rune: &content.RuneStats{MagicLevel: 15, Base: 40, LevelFactor: 0.3, MagicFactor: 4.5}},

	// Ammunition
	{ID: "arrow", Name: "Arrow", Kind: content.KindAmmo, Slot: content.SlotAmmo, AmmoType: content.AmmoArrow, Attack: 15, BuyPrice: 3, SellPrice: 1},
	{ID: "onyx_arrow", Name: "Onyx Arrow", Kind: content.KindAmmo, Slot: content.SlotAmmo, AmmoType: content.AmmoArrow, Attack: 38, BuyPrice: 7, RequiredLevel: 40},
	{ID: "bolt", Name: "Bolt", Kind: content.KindAmmo, Slot: content.SlotAmmo, AmmoType: content.AmmoBolt, Attack: 20, BuyPrice: 4, SellPrice: 1},
	{ID: "infernal_bolt", Name: "Infernal Bolt", Kind: content.KindAmmo, Slot: content.SlotAmmo, AmmoType: content.AmmoBolt, Attack: 45, BuyPrice: 12, RequiredLevel: 70},

	// Melee weapons
	{ID: "club", Name: "Club", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillClub,
		Attack: 7, SellPrice: 1, BuyPrice: 5},
	{ID: "sabre", Name: "Sabre", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillSword,
		Attack: 12, SellPrice: 5, BuyPrice: 35},
	{ID: "hatchet", Name: "Hatchet", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillAxe,
		Attack: 15, SellPrice: 25, BuyPrice: 85},
	{ID: "spike_sword", Name: "Spike Sword", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillSword,
		Attack: 24, SellPrice: 240, BuyPrice: 8000, RequiredLevel: 15, Vocations: knightOnly},
	{ID: "dragon_hammer", Name: "Dragon Hammer", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillClub,
		Attack: 32, SellPrice: 2000, RequiredLevel: 25, Vocations: knightOnly},
	{ID: "fire_axe", Name: "Fire Axe", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillAxe,
		Attack: 38, SellPrice: 8000, RequiredLevel: 35, Vocations: knightOnly},
	{ID: "giant_sword", Name: "Giant Sword", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillSword,
		Attack: 46, SellPrice: 17000, RequiredLevel: 55, Vocations: knightOnly},
	{ID: "wrap_gloves", Name: "Wrap Gloves", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillFist,
		Attack: 10, SellPrice: 10, BuyPrice: 60, Vocations: monks},
	{ID: "tiger_claws", Name: "Tiger Claws", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponMelee, ScalingSkill: content.SkillFist,
		Attack: 28, SellPrice: 3500, RequiredLevel: 30, Vocations: monks},

	// Distance weapons
	{ID: "spear", Name: "Spear", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponThrowing, Attack: 25, SellPrice: 3, BuyPrice: 10},
	{ID: "bow", Name: "Bow", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponBow, AmmoType: content.AmmoArrow,
		Attack: 5, SellPrice: 100, BuyPrice: 400},
	{ID: "crossbow", Name: "Crossbow", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponCrossbow, AmmoType: content.AmmoBolt,
		Attack: 8, SellPrice: 120, BuyPrice: 500},
	{ID: "modified_crossbow", Name: "Modified Crossbow", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponCrossbow,
		AmmoType: content.AmmoBolt, Attack: 18, SellPrice: 10000, RequiredLevel: 45, Vocations: paladins},

	// Wands and rods
	{ID: "wand_of_vortex", Name: "Wand of Vortex", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponWand,
		Attack: 14, SellPrice: 100, BuyPrice: 500, Vocations: sorcerers},
	{ID: "wand_of_inferno", Name: "Wand of Inferno", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponWand,
		Attack: 38, SellPrice: 3000, BuyPrice: 15000, RequiredLevel: 33, Vocations: sorcerers},
	{ID: "snakebite_rod", Name: "Snakebite Rod", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponRod,
		Attack: 14, SellPrice: 100, BuyPrice: 500, Vocations: druids},
	{ID: "underworld_rod", Name: "Underworld Rod", Kind: content.KindWeapon, Slot: content.SlotMainHand, WeaponKind: content.WeaponRod,
		Attack: 38, SellPrice: 4400, BuyPrice: 22000, RequiredLevel: 42, Vocations: druids},

	// Shields
	{ID: "wooden_shield", Name: "Wooden Shield", Kind: content.KindShield, Slot: content.SlotOffHand, Defense: 14, SellPrice: 5, BuyPrice: 15, Vocations: fighters},
	{ID: "dwarven_shield", Name: "Dwarven Shield", Kind: content.KindShield, Slot: content.SlotOffHand, Defense: 26, SellPrice: 100, BuyPrice: 500, Vocations: fighters},
	{ID: "dragon_shield", Name: "Dragon Shield", Kind: content.KindShield, Slot: content.SlotOffHand, Defense: 31, SellPrice: 4000, RequiredLevel: 30, Vocations: fighters},
	{ID: "mastermind_shield", Name: "Mastermind Shield", Kind: content.KindShield, Slot: content.SlotOffHand, Defense: 37, SellPrice: 50000, RequiredLevel: 60, Vocations: knightOnly},
	{ID: "spellbook", Name: "Spellbook", Kind: content.KindShield, Slot: content.SlotOffHand, Defense: 12, SellPrice: 50, BuyPrice: 150,
		ScalingSkill: content.SkillMagic, Vocations: []content.Vocation{content.VocationSorcerer, content.VocationDruid}},

	// Armor
	{ID: "leather_helmet", Name: "Leather Helmet", Kind: content.KindArmor, Slot: content.SlotHead, Armor: 1, SellPrice: 4, BuyPrice: 12},
	{ID: "steel_helmet", Name: "Steel Helmet", Kind: content.KindArmor, Slot: content.SlotHead, Armor: 6, SellPrice: 293, BuyPrice: 580},
	{ID: "crusader_helmet", Name: "Crusader Helmet", Kind: content.KindArmor, Slot: content.SlotHead, Armor: 8, SellPrice: 6000, RequiredLevel: 30},
	{ID: "leather_armor", Name: "Leather Armor", Kind: content.KindArmor, Slot: content.SlotArmor, Armor: 4, SellPrice: 12, BuyPrice: 35},
	{ID: "brass_armor", Name: "Brass Armor", Kind: content.KindArmor, Slot: content.SlotArmor, Armor: 8, SellPrice: 150, BuyPrice: 450},
	{ID: "knight_armor", Name: "Knight Armor", Kind: content.KindArmor, Slot: content.SlotArmor, Armor: 12, SellPrice: 5000, RequiredLevel: 25, Vocations: fighters},
	{ID: "magic_plate_armor", Name: "Magic Plate Armor", Kind: content.KindArmor, Slot: content.SlotArmor, Armor: 17, SellPrice: 90000, RequiredLevel: 60, Vocations: knightOnly},
	{ID: "blue_robe", Name: "Blue Robe", Kind: content.KindArmor, Slot: content.SlotArmor, Armor: 11, SellPrice: 10000, RequiredLevel: 25,
		Vocations: []content.Vocation{content.VocationSorcerer, content.VocationDruid}},
	{ID: "leather_legs", Name: "Leather Legs", Kind: content.KindArmor, Slot: content.SlotLegs, Armor: 1, SellPrice: 9, BuyPrice: 10},
	{ID: "plate_legs", Name: "Plate Legs", Kind: content.KindArmor, Slot: content.SlotLegs, Armor: 7, SellPrice: 115, BuyPrice: 400},
	{ID: "knight_legs", Name: "Knight Legs", Kind: content.KindArmor, Slot: content.SlotLegs, Armor: 8, SellPrice: 5000, RequiredLevel: 25, Vocations: fighters},
	{ID: "leather_boots", Name: "Leather Boots", Kind: content.KindArmor, Slot: content.SlotBoots, Armor: 1, SellPrice: 2, BuyPrice: 10},
	{ID: "boots_of_haste", Name: "Boots of Haste", Kind: content.KindArmor, Slot: content.SlotBoots, Armor: 1, SellPrice: 30000, RequiredLevel: 40},

	// Jewelry
	{ID: "scarf", Name: "Scarf", Kind: content.KindJewelry, Slot: content.SlotAmulet, Armor: 1, SellPrice: 15, BuyPrice: 50},
	{ID: "platinum_amulet", Name: "Platinum Amulet", Kind: content.KindJewelry, Slot: content.SlotAmulet, Armor: 2, SellPrice: 2500},
	{ID: "stone_skin_amulet", Name: "Stone Skin Amulet", Kind: content.KindJewelry, Slot: content.SlotAmulet, Armor: 3, SellPrice: 500, RequiredLevel: 20},
	{ID: "ring_of_healing", Name: "Ring of Healing", Kind: content.KindJewelry, Slot: content.SlotRing, SellPrice: 100},
	{ID: "might_ring", Name: "Might Ring", Kind: content.KindJewelry, Slot: content.SlotRing, Armor: 1, SellPrice: 250, RequiredLevel: 20},
	{ID: "prismatic_ring", Name: "Prismatic Ring", Kind: content.KindJewelry, Slot: content.SlotRing, Armor: 2, SellPrice: 25000, RequiredLevel: 120},

	// Creature products
	{ID: "cheese", Name: "Cheese", Kind: content.KindLoot, SellPrice: 2},
	{ID: "ham", Name: "Ham", Kind: content.KindLoot, SellPrice: 4},
	{ID: "troll_green", Name: "Troll Green", Kind: content.KindLoot, SellPrice: 25},
	{ID: "orc_tooth", Name: "Orc Tooth", Kind: content.KindLoot, SellPrice: 150},
	{ID: "minotaur_leather", Name: "Minotaur Leather", Kind: content.KindLoot, SellPrice: 80},
	{ID: "cyclops_toe", Name: "Cyclops Toe", Kind: content.KindLoot, SellPrice: 55},
	{ID: "wyvern_talisman", Name: "Wyvern Talisman", Kind: content.KindLoot, SellPrice: 265},
	{ID: "green_dragon_leather", Name: "Green Dragon Leather", Kind: content.KindLoot, SellPrice: 100},
	{ID: "green_dragon_scale", Name: "Green Dragon Scale", Kind: content.KindLoot, SellPrice: 100},
	{ID: "red_dragon_scale", Name: "Red Dragon Scale", Kind: content.KindLoot, SellPrice: 200},
	{ID: "dragon_claw", Name: "Dragon Claw", Kind: content.KindLoot, SellPrice: 8000},
	{ID: "giant_spider_silk", Name: "Giant Spider Silk", Kind: content.KindLoot, SellPrice: 100},
	{ID: "demon_horn", Name: "Demon Horn", Kind: content.KindLoot, SellPrice: 1000},
	{ID: "small_ruby", Name: "Small Ruby", Kind: content.KindLoot, SellPrice: 250},
	{ID: "small_sapphire", Name: "Small Sapphire", Kind: content.KindLoot, SellPrice: 250},
	{ID: "giant_shimmering_pearl", Name: "Giant Shimmering Pearl", Kind: content.KindLoot, SellPrice: 3000},
}
