package combat

import "idlehunt/internal/player"

// Hit describes the damage instance a pipeline is applied to.
type Hit struct {
	Spell bool
	AoE   bool
}

// Stage is one named multiplicative step of a bonus chain.
type Stage struct {
	Name   string
	Factor func(c Context, h Hit) float64
}

// Pipeline applies its stages in order.
type Pipeline []Stage

// Apply multiplies v by every stage factor in order.
func (pl Pipeline) Apply(v float64, c Context, h Hit) float64 {
	for _, st := range pl {
		v *= st.Factor(c, h)
	}
	return v
}

// Trace returns the factor of each stage, for audits and the HUD.
func (pl Pipeline) Trace(c Context, h Hit) map[string]float64 {
	out := make(map[string]float64, len(pl))
	for _, st := range pl {
		out[st.Name] = st.Factor(c, h)
	}
	return out
}

// Damage bonus constants.
const (
	PromotionDamageBonus = 0.10
	PremiumDamageBonus   = 0.50
	AreaOfEffectBonus    = 0.20
)

var (
	Promotion = Stage{"promotion", func(c Context, _ Hit) float64 {
		if c.Player.Promoted {
			return 1 + PromotionDamageBonus
		}
		return 1
	}}
	Premium = Stage{"premium", func(c Context, _ Hit) float64 {
		if c.Player.PremiumActive(c.Now) {
			return 1 + PremiumDamageBonus
		}
		return 1
	}}
	PreyDamage = Stage{"prey_damage", func(c Context, _ Hit) float64 {
		return 1 + c.Player.PreyPercent(c.TargetID, player.PreyDamage)/100
	}}
	AscensionDamage = Stage{"ascension_damage", func(c Context, _ Hit) float64 {
		return c.Player.PerkMultiplier(player.PerkDamageBoost)
	}}
	AreaOfEffect = Stage{"area_of_effect", func(_ Context, h Hit) float64 {
		if h.Spell && h.AoE {
			return 1 + AreaOfEffectBonus
		}
		return 1
	}}
)

// DamagePipeline is the fixed order every outgoing damage value passes.
var DamagePipeline = Pipeline{Promotion, Premium, PreyDamage, AscensionDamage, AreaOfEffect}
