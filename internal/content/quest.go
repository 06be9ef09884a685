package content

// QuestDef is a long-running goal completed by killing influenced monsters.
type QuestDef struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	MonsterID        string  `json:"monster_id,omitempty"` // empty: any monster
	RareKills        int     `json:"rare_kills"`
	RewardGold       int     `json:"reward_gold"`
	RewardXP         float64 `json:"reward_xp"`
	RewardSoulPoints int     `json:"reward_soul_points,omitempty"`
}

// TaskDef is a repeatable kill task.
type TaskDef struct {
	ID         string  `json:"id"`
	MonsterID  string  `json:"monster_id"`
	Kills      int     `json:"kills"`
	RewardGold int     `json:"reward_gold"`
	RewardXP   float64 `json:"reward_xp"`
}
