// Package encounter runs the monster side of a hunt: spawning, the monster's
// attacks, the player's automated offense and kill settlement. The Encounter
// value is owned by the play session and must be reset whenever a hunt
// starts or stops or the session resumes.
package encounter

import (
	"idlehunt/internal/combat"
	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
	"idlehunt/internal/rng"
)

// Phase is the encounter state machine position.
type Phase int

const (
	Idle Phase = iota
	SpawnPending
	Alive
	Dead
)

func (ph Phase) String() string {
	switch ph {
	case SpawnPending:
		return "spawn pending"
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	}
	return "idle"
}

// Cadences in game milliseconds. They are divided by the speed factor before
// being compared with wall-clock marks.
const (
	SpawnGraceMs     = 600
	RespawnMs        = 1200
	GlobalCooldownMs = 2000
	RuneCooldownMs   = 2000
)

const (
	CritMultiplier   = 1.5
	ExecuteThreshold = 0.10 // share of the HP pool below which executioner rolls
	DamageVariance   = 0.20
	MagicShieldShare = 0.70

	// UniqueCap is the size of the unique item inventory.
	UniqueCap = 100
)

// One-shot triggers.
const (
	TriggerRareMob    = "rare_mob"
	TriggerBossKilled = "boss_killed"
)

// Monster is a spawned monster instance.
type Monster struct {
	Def        content.MonsterDef // influence already applied
	BaseID     string
	HP         float64
	MaxHP      float64
	Concurrent int
}

// Encounter is the ephemeral per-session combat state.
type Encounter struct {
	Phase     Phase
	MonsterID string // hunt target the encounter was built for
	Monster   Monster

	SpawnAt           int64 // respawn lock ends
	SpawnedAt         int64
	LastMonsterAttack int64
	LastPlayerAttack  int64

	warnedAmmo bool
}

// Reset returns the encounter to Idle.
func (e *Encounter) Reset() { *e = Encounter{} }

// Env is the per-tick environment.
type Env struct {
	Catalog *content.Catalog
	Rng     rng.Source
	Now     int64
	Speed   float64
}

// wall converts a game-millisecond cadence into wall-clock milliseconds.
func (env Env) wall(gameMs float64) int64 {
	s := env.Speed
	if s <= 0 {
		s = 1
	}
	return int64(gameMs / s)
}

// Outcome reports what ended a tick early.
type Outcome struct {
	Died        bool
	HuntStopped bool
}

// Tick advances the encounter by one tick for the player's active hunt.
func Tick(env Env, p *player.State, e *Encounter, b *event.Batch) Outcome {
	if !p.Hunting() {
		if e.Phase != Idle {
			e.Reset()
		}
		return Outcome{}
	}
	if e.MonsterID != p.Hunt.MonsterID {
		e.Reset()
		e.MonsterID = p.Hunt.MonsterID
	}

	if e.Phase == Idle || e.Phase == Dead {
		e.Phase = SpawnPending
		if e.SpawnAt == 0 {
			e.SpawnAt = env.Now
		}
	}
	if e.Phase == SpawnPending {
		if env.Now < e.SpawnAt {
			return Outcome{}
		}
		if !spawn(env, p, e, b) {
			p.Hunt = nil
			e.Reset()
			return Outcome{HuntStopped: true}
		}
		return Outcome{}
	}

	if env.Now-e.SpawnedAt < env.wall(SpawnGraceMs) {
		return Outcome{}
	}

	tickPrey(env, p, e, b)

	c := e.context(env, p)
	if monsterAttack(env, c, e, b) {
		return Outcome{Died: true}
	}

	offense(env, c, e, b)

	if e.Monster.HP <= 0 {
		return settle(env, c, e, b)
	}
	return Outcome{}
}

func (e *Encounter) context(env Env, p *player.State) combat.Context {
	return combat.Context{
		Player:     p,
		Catalog:    env.Catalog,
		TargetID:   e.Monster.BaseID,
		Now:        env.Now,
		Concurrent: e.Monster.Concurrent,
	}
}

// tickPrey spends one second of every prey slot bound to the target.
func tickPrey(env Env, p *player.State, e *Encounter, b *event.Batch) {
	for i := range p.Prey {
		s := &p.Prey[i]
		if !s.Active() || s.MonsterID != e.Monster.BaseID {
			continue
		}
		s.RemainingSeconds--
		if s.RemainingSeconds <= 0 {
			s.RemainingSeconds = 0
			b.Log(event.Info, env.Now, "Your prey bonus (%s) on %s has expired.", s.Bonus, e.Monster.Def.Name)
		}
	}
}
