// Package content holds the read-only reference data types (items, monsters,
// spells, quests) the simulation consumes. The shipped tables live in assets/.
package content

// Vocation is a character class.
type Vocation string

const (
	VocationNone     Vocation = "none"
	VocationKnight   Vocation = "knight"
	VocationPaladin  Vocation = "paladin"
	VocationSorcerer Vocation = "sorcerer"
	VocationDruid    Vocation = "druid"
	VocationMonk     Vocation = "monk"
)

// Vocations lists every vocation in display order.
var Vocations = []Vocation{VocationKnight, VocationPaladin, VocationSorcerer, VocationDruid, VocationMonk, VocationNone}

// IsMage reports whether the vocation is a sorcerer or druid.
func (v Vocation) IsMage() bool { return v == VocationSorcerer || v == VocationDruid }

// Skill identifies a trainable skill.
type Skill string

const (
	SkillFist      Skill = "fist"
	SkillSword     Skill = "sword"
	SkillClub      Skill = "club"
	SkillAxe       Skill = "axe"
	SkillDistance  Skill = "distance"
	SkillShielding Skill = "shielding"
	SkillMagic     Skill = "magic"
)

// Skills lists every skill in display order.
var Skills = []Skill{SkillFist, SkillSword, SkillClub, SkillAxe, SkillDistance, SkillShielding, SkillMagic}

// IsMelee reports whether the skill drives melee weapon damage.
func (s Skill) IsMelee() bool { return s == SkillSword || s == SkillClub || s == SkillAxe }

// Slot is an equipment slot.
type Slot string

const (
	SlotHead     Slot = "head"
	SlotArmor    Slot = "armor"
	SlotLegs     Slot = "legs"
	SlotBoots    Slot = "boots"
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotAmulet   Slot = "amulet"
	SlotRing     Slot = "ring"
	SlotAmmo     Slot = "ammo"
)

// Slots lists every equipment slot in display order.
var Slots = []Slot{SlotHead, SlotAmulet, SlotArmor, SlotLegs, SlotBoots, SlotMainHand, SlotOffHand, SlotRing, SlotAmmo}

// IsJewelry reports whether the slot holds a ring or necklace.
func (s Slot) IsJewelry() bool { return s == SlotRing || s == SlotAmulet }

// Rarity is the quality tier of a unique item.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"common", "uncommon", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return "common"
	}
	return rarityNames[r]
}

// Influence marks a rare monster variant.
type Influence string

const (
	InfluenceNone      Influence = ""
	InfluenceCorrupted Influence = "corrupted"
	InfluenceEnraged   Influence = "enraged"
	InfluenceBlessed   Influence = "blessed"
)

// ItemKind groups items by how the simulation uses them.
type ItemKind string

const (
	KindWeapon  ItemKind = "weapon"
	KindArmor   ItemKind = "armor"
	KindShield  ItemKind = "shield"
	KindJewelry ItemKind = "jewelry"
	KindAmmo    ItemKind = "ammo"
	KindPotion  ItemKind = "potion"
	KindRune    ItemKind = "rune"
	KindLoot    ItemKind = "loot"
)

// WeaponKind distinguishes weapon attack formulas.
type WeaponKind string

const (
	WeaponMelee    WeaponKind = "melee"
	WeaponBow      WeaponKind = "bow"
	WeaponCrossbow WeaponKind = "crossbow"
	WeaponThrowing WeaponKind = "throwing"
	WeaponWand     WeaponKind = "wand"
	WeaponRod      WeaponKind = "rod"
)

// AmmoType pairs launchers with ammunition.
type AmmoType string

const (
	AmmoNone  AmmoType = ""
	AmmoArrow AmmoType = "arrow"
	AmmoBolt  AmmoType = "bolt"
)
