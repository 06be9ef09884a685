package assets

// HuntLore holds a one-line description per hunting ground, shown when the
// player browses monsters.
var HuntLore = map[string]string{
	"rat":           "The sewers under the city. Smells of cheese and ambition.",
	"cave_rat":      "Dripping tunnels where the rats grew bolder than their cousins.",
	"troll":         "Swamp trolls that fight for their ham with surprising dedication.",
	"orc_warrior":   "A war camp on the hills. The drums never stop.",
	"minotaur":      "A ruined maze. The minotaurs remember every wrong turn you take.",
	"cyclops":       "The forge mountain. Every strike of the hammer shakes the cave.",
	"giant_spider":  "Webbed jungle halls. Bring antidotes, or friends, or both.",
	"dragon":        "A lair of scorched stone and a little gold.",
	"dragon_lord":   "Deeper in the lair, where the flames burn red.",
	"demon":         "Below everything. Nobody who went down has written back.",
	"the_old_widow": "A matriarch of the jungle spiders, old and patient.",
	"grorlam":       "A stone golem that wandered out of the cyclops forge.",
	"zoralurk":      "The master of the pits. It has waited a long time.",
}
