package content

// SpellKind classifies spells.
type SpellKind string

const (
	SpellAttack  SpellKind = "attack"
	SpellHeal    SpellKind = "heal"
	SpellSupport SpellKind = "support"
)

// SpellDef is a castable spell.
type SpellDef struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Words        string     `json:"words"`
	Kind         SpellKind  `json:"kind"`
	ManaCost     float64    `json:"mana_cost"`
	CooldownMs   int64      `json:"cooldown_ms"`
	Level        int        `json:"level"`
	Vocations    []Vocation `json:"vocations"`
	AoE          bool       `json:"aoe,omitempty"`
	Base         float64    `json:"base,omitempty"`
	LevelFactor  float64    `json:"level_factor,omitempty"`
	SkillFactor  float64    `json:"skill_factor,omitempty"`
	ScalingSkill Skill      `json:"scaling_skill,omitempty"`

	// DurationMs applies to support spells (magic shield).
	DurationMs int64 `json:"duration_ms,omitempty"`
}

// CastableBy reports whether the vocation knows the spell.
func (s SpellDef) CastableBy(v Vocation) bool {
	for _, allowed := range s.Vocations {
		if allowed == v {
			return true
		}
	}
	return false
}

// SpellMagicShield is the support spell that routes damage to mana.
const SpellMagicShield = "utamo_vita"
