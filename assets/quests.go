package assets

import "idlehunt/internal/content"

var quests = []content.QuestDef{
	{ID: "first_corruption", Name: "A Taint in the Sewers", MonsterID: "rat", RareKills: 1, RewardGold: 200, RewardXP: 100},
	{ID: "troll_menace", Name: "The Troll Menace", MonsterID: "troll", RareKills: 3, RewardGold: 800, RewardXP: 600},
	{ID: "dragon_omen", Name: "Omens of the Drake", MonsterID: "dragon", RareKills: 5, RewardGold: 10000, RewardXP: 25000},
	{ID: "rare_hunter", Name: "Hunter of the Strange", RareKills: 25, RewardGold: 25000, RewardXP: 50000, RewardSoulPoints: 5},
	{ID: "legend", Name: "Living Legend", RareKills: 250, RewardGold: 250000, RewardXP: 500000, RewardSoulPoints: 50},
}

var tasks = []content.TaskDef{
	{ID: "rats_100", MonsterID: "rat", Kills: 100, RewardGold: 250, RewardXP: 500},
	{ID: "trolls_150", MonsterID: "troll", Kills: 150, RewardGold: 1000, RewardXP: 2500},
	{ID: "minotaurs_300", MonsterID: "minotaur", Kills: 300, RewardGold: 4000, RewardXP: 15000},
	{ID: "cyclopes_500", MonsterID: "cyclops", Kills: 500, RewardGold: 10000, RewardXP: 60000},
	{ID: "dragons_500", MonsterID: "dragon", Kills: 500, RewardGold: 30000, RewardXP: 300000},
	{ID: "spiders_500", MonsterID: "giant_spider", Kills: 500, RewardGold: 40000, RewardXP: 400000},
	{ID: "dragon_lords_500", MonsterID: "dragon_lord", Kills: 500, RewardGold: 80000, RewardXP: 900000},
	{ID: "demons_666", MonsterID: "demon", Kills: 666, RewardGold: 200000, RewardXP: 3000000},
}
