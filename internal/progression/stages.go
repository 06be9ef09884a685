package progression

import (
	"math"

	"idlehunt/internal/content"
)

// XPStage is the experience rate multiplier for a character level band.
func XPStage(level int) float64 {
	switch {
	case level < 20:
		return 5
	case level < 50:
		return 4
	case level < 100:
		return 3
	case level < 200:
		return 2
	}
	return 1
}

// SkillStage is the training multiplier of a primary skill at a level band.
func SkillStage(level int) float64 {
	switch {
	case level < 25:
		return 50
	case level < 50:
		return 25
	case level < 75:
		return 10
	case level <= 100:
		return 5
	}
	return 1
}

// PremiumTrainingFactor applies while premium time is active.
const PremiumTrainingFactor = 2.0

// primaryWeights lists, per vocation, the skills that train at stage rate and
// their relative weight. Skills absent from a vocation's row train at 1x.
var primaryWeights = map[content.Vocation]map[content.Skill]float64{
	content.VocationKnight: {
		content.SkillSword:     1.0,
		content.SkillClub:      1.0,
		content.SkillAxe:       1.0,
		content.SkillShielding: 1.0,
	},
	content.VocationPaladin: {
		content.SkillDistance:  1.3,
		content.SkillShielding: 0.6,
	},
	content.VocationSorcerer: {content.SkillMagic: 1.0},
	content.VocationDruid:    {content.SkillMagic: 1.0},
	content.VocationMonk: {
		content.SkillFist:      1.0,
		content.SkillShielding: 0.8,
	},
}

// IsPrimary reports whether a skill is primary for a vocation.
func IsPrimary(v content.Vocation, s content.Skill) bool {
	_, ok := primaryWeights[v][s]
	return ok
}

// StageMultiplier is the full multiplier applied to raw training points,
// without the premium factor.
func StageMultiplier(v content.Vocation, s content.Skill, level int) float64 {
	w, ok := primaryWeights[v][s]
	if !ok {
		return 1
	}
	return SkillStage(level) * w
}

// skillFactors is the per-level growth of the points required, by vocation.
var skillFactors = map[content.Vocation]map[content.Skill]float64{
	content.VocationKnight: {
		content.SkillFist: 1.1, content.SkillSword: 1.1, content.SkillClub: 1.1, content.SkillAxe: 1.1,
		content.SkillDistance: 1.4, content.SkillShielding: 1.1, content.SkillMagic: 3.0,
	},
	content.VocationPaladin: {
		content.SkillFist: 1.2, content.SkillSword: 1.2, content.SkillClub: 1.2, content.SkillAxe: 1.2,
		content.SkillDistance: 1.1, content.SkillShielding: 1.1, content.SkillMagic: 1.4,
	},
	content.VocationSorcerer: {
		content.SkillFist: 1.5, content.SkillSword: 2.0, content.SkillClub: 2.0, content.SkillAxe: 2.0,
		content.SkillDistance: 2.0, content.SkillShielding: 1.5, content.SkillMagic: 1.1,
	},
	content.VocationDruid: {
		content.SkillFist: 1.5, content.SkillSword: 2.0, content.SkillClub: 2.0, content.SkillAxe: 2.0,
		content.SkillDistance: 2.0, content.SkillShielding: 1.5, content.SkillMagic: 1.1,
	},
	content.VocationMonk: {
		content.SkillFist: 1.1, content.SkillSword: 1.5, content.SkillClub: 1.5, content.SkillAxe: 1.5,
		content.SkillDistance: 1.5, content.SkillShielding: 1.15, content.SkillMagic: 1.25,
	},
}

const (
	defaultSkillFactor = 1.5
	defaultMagicFactor = 4.0

	meleeBasePoints  = 50.0
	meleeLevelOffset = 10
	magicBasePoints  = 1600.0
	magicLevelOffset = 0
)

// PointsRequired is the number of training points needed to advance a skill
// from level to level+1.
func PointsRequired(v content.Vocation, s content.Skill, level int) float64 {
	factor, ok := skillFactors[v][s]
	if !ok {
		factor = defaultSkillFactor
		if s == content.SkillMagic {
			factor = defaultMagicFactor
		}
	}
	base, offset := meleeBasePoints, meleeLevelOffset
	if s == content.SkillMagic {
		base, offset = magicBasePoints, magicLevelOffset
	}
	exp := level - offset
	if exp < 0 {
		exp = 0
	}
	return base * math.Pow(factor, float64(exp))
}
