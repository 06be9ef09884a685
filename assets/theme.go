package assets

import "idlehunt/internal/content"

// Glyphs shown next to monsters on the hunting ground list and the HUD.
var monsterGlyphs = map[string]string{
	"rat":           "🐀",
	"cave_rat":      "🐁",
	"troll":         "🧌",
	"orc_warrior":   "👹",
	"minotaur":      "🐂",
	"cyclops":       "👁️",
	"giant_spider":  "🕷️",
	"dragon":        "🐉",
	"dragon_lord":   "🐲",
	"demon":         "😈",
	"the_old_widow": "🕸️",
	"grorlam":       "🗿",
	"zoralurk":      "👿",
}

// MonsterGlyph returns the emoji drawn for a monster, or a generic one.
func MonsterGlyph(id string) string {
	if g, ok := monsterGlyphs[id]; ok {
		return g
	}
	return "👾"
}

// InfluenceGlyph marks a rare monster variant.
func InfluenceGlyph(inf content.Influence) string {
	switch inf {
	case content.InfluenceCorrupted:
		return "🟣"
	case content.InfluenceEnraged:
		return "🔥"
	case content.InfluenceBlessed:
		return "✨"
	}
	return ""
}

// VocationDef describes a selectable vocation and its starting outfit.
type VocationDef struct {
	Vocation content.Vocation
	Name     string
	Emoji    string
	Lore     string // one-liner shown on the character creation screen

	Equipment   []string       // item ids worn from the start
	Inventory   map[string]int // carried item ids and counts
	Rotation    []string       // initial spell rotation
	HealSpell   string
	StarterGold int
}

// Vocations is the ordered list of selectable vocations.
var Vocations = []VocationDef{
	{
		Vocation:    content.VocationKnight,
		Name:        "Knight",
		Emoji:       "🛡️",
		Lore:        "Plate, steel and stubbornness. Knights outlast what they cannot outfight",
		Equipment:   []string{"sabre", "wooden_shield", "leather_helmet", "leather_armor", "leather_legs", "leather_boots"},
		Inventory:   map[string]int{"health_potion": 20},
		HealSpell:   "exura_infir",
		StarterGold: 100,
	},
	{
		Vocation:    content.VocationPaladin,
		Name:        "Paladin",
		Emoji:       "🏹",
		Lore:        "Holy archers who never miss twice",
		Equipment:   []string{"bow", "arrow", "leather_helmet", "leather_armor", "leather_legs", "leather_boots"},
		Inventory:   map[string]int{"arrow": 300, "health_potion": 10, "mana_potion": 10},
		HealSpell:   "exura_infir",
		StarterGold: 100,
	},
	{
		Vocation:    content.VocationSorcerer,
		Name:        "Sorcerer",
		Emoji:       "🔥",
		Lore:        "Masters of fire and lightning, fragile as parchment",
		Equipment:   []string{"wand_of_vortex", "spellbook", "leather_helmet", "leather_armor", "leather_legs", "leather_boots"},
		Inventory:   map[string]int{"mana_potion": 20},
		HealSpell:   "exura_infir",
		StarterGold: 100,
	},
	{
		Vocation:    content.VocationDruid,
		Name:        "Druid",
		Emoji:       "🌿",
		Lore:        "Ice, earth and the best healing in the land",
		Equipment:   []string{"snakebite_rod", "spellbook", "leather_helmet", "leather_armor", "leather_legs", "leather_boots"},
		Inventory:   map[string]int{"mana_potion": 20},
		HealSpell:   "exura_infir",
		StarterGold: 100,
	},
	{
		Vocation:    content.VocationMonk,
		Name:        "Monk",
		Emoji:       "🥋",
		Lore:        "Fists first. Questions never",
		Equipment:   []string{"wrap_gloves", "leather_helmet", "leather_armor", "leather_legs", "leather_boots"},
		Inventory:   map[string]int{"health_potion": 10, "mana_potion": 10},
		HealSpell:   "exura_infir",
		StarterGold: 100,
	},
	{
		Vocation:    content.VocationNone,
		Name:        "Rookie",
		Emoji:       "🧑",
		Lore:        "No vocation yet. Everything is possible and nothing is easy",
		Equipment:   []string{"club", "leather_armor"},
		Inventory:   map[string]int{"health_potion": 5},
		HealSpell:   "exura_infir",
		StarterGold: 50,
	},
}

// Vocation returns the definition of v.
func Vocation(v content.Vocation) (VocationDef, bool) {
	for _, d := range Vocations {
		if d.Vocation == v {
			return d, true
		}
	}
	return VocationDef{}, false
}
