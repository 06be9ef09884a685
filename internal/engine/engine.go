// Package engine is the tick orchestrator. A Session owns the encounter and
// the tick clock of one play session; Process turns elapsed wall time into
// ticks and runs the passive, training and encounter systems for each.
package engine

import (
	"math"

	"idlehunt/internal/content"
	"idlehunt/internal/encounter"
	"idlehunt/internal/event"
	"idlehunt/internal/passive"
	"idlehunt/internal/player"
	"idlehunt/internal/progression"
	"idlehunt/internal/rng"
)

// BaseTickMs is the length of one tick at speed 1.
const BaseTickMs = 1000.0

// Session is the mutable per-session simulation state. Exactly one Process
// call may run at a time.
type Session struct {
	Encounter    encounter.Encounter
	LastTickTime int64
	Paused       bool

	// MaxTicks caps one batch; leftover debt is processed by later calls.
	// Zero means no cap.
	MaxTicks int

	// Tick n of the current run falls at epoch + floor(n*tickMs), so batch
	// boundaries never shift tick times when tickMs is fractional.
	epoch  int64
	index  int64
	tickMs float64
}

// NewSession returns a session whose clock starts at now.
func NewSession(now int64) *Session {
	return &Session{LastTickTime: now}
}

// Result is the aggregated output of one Process call.
type Result struct {
	*event.Batch
	Ticks int
	Death *progression.DeathReport
}

// TickMs is the wall-clock length of one tick at a speed factor.
func TickMs(speed float64) float64 {
	if speed <= 0 {
		speed = 1
	}
	return BaseTickMs / speed
}

// Process runs every tick elapsed between the session clock and now. The
// input player is never modified; the returned state is a fresh copy when any
// tick ran. Zero or negative elapsed time processes no ticks.
func (s *Session) Process(p player.State, now int64, speed float64, cat *content.Catalog, src rng.Source) (player.State, Result) {
	res := Result{Batch: event.NewBatch(src)}
	if s.Paused {
		return p, res
	}
	tickMs := TickMs(speed)
	s.sync(tickMs)
	due := int64(math.Floor(float64(now-s.epoch)/tickMs)) - s.index
	if due <= 0 {
		return p, res
	}
	ticks := int(due)
	if s.MaxTicks > 0 && ticks > s.MaxTicks {
		ticks = s.MaxTicks
	}

	out := p.Clone()
	for i := 1; i <= ticks; i++ {
		res.Ticks++
		if s.tick(&out, s.at(s.index+int64(i)), speed, cat, src, &res) {
			break
		}
	}
	s.index += int64(ticks)
	s.LastTickTime = s.at(s.index)
	return out, res
}

func (s *Session) at(n int64) int64 {
	return s.epoch + int64(math.Floor(float64(n)*s.tickMs))
}

// sync starts a new run at LastTickTime when the tick length changed or the
// clock was moved by anything other than Process.
func (s *Session) sync(tickMs float64) {
	if tickMs == s.tickMs && s.at(s.index) == s.LastTickTime {
		return
	}
	s.anchor(s.LastTickTime)
	s.tickMs = tickMs
}

func (s *Session) anchor(now int64) {
	s.LastTickTime = now
	s.epoch = now
	s.index = 0
}

// tick runs one tick and reports whether the batch must halt.
func (s *Session) tick(p *player.State, now int64, speed float64, cat *content.Catalog, src rng.Source, res *Result) bool {
	b := res.Batch
	passive.Regenerate(p)
	passive.Automate(passive.Env{Catalog: cat, Now: now, Speed: speed}, p, b)

	if p.IsTraining() && !p.Hunting() {
		train(p, now, b)
	}
	if !p.Hunting() {
		if s.Encounter.Phase != encounter.Idle {
			s.Encounter.Reset()
		}
		return false
	}

	out := encounter.Tick(encounter.Env{Catalog: cat, Rng: src, Now: now, Speed: speed}, p, &s.Encounter, b)
	if out.Died {
		d := progression.ApplyDeathPenalty(p)
		res.Death = &d
		logDeath(now, d, b)
		p.Hunt = nil
		s.Encounter.Reset()
		return true
	}
	return false
}

func train(p *player.State, now int64, b *event.Batch) {
	g := progression.Train(p, p.Training.Skill, progression.TrainingPointsPerTick, now)
	if g.Levels > 0 {
		b.Log(event.Skill, now, "You advanced to %s level %d.", g.Skill, g.Level)
	}
}

func logDeath(now int64, d progression.DeathReport, b *event.Batch) {
	b.Log(event.Danger, now, "You are dead. You lost %.0f experience and %d gold.", d.XPLost, d.GoldLost)
	if d.LevelsLost > 0 {
		b.Log(event.Danger, now, "You were downgraded by %d level(s).", d.LevelsLost)
	}
	if d.BlessingUsed {
		b.Log(event.Info, now, "Your blessing softened the penalty and has faded.")
	}
}

// Pause stops ticking and drops any tick debt.
func (s *Session) Pause(now int64) {
	s.Paused = true
	s.anchor(now)
}

// Resume restarts ticking from now, so no catch-up burst follows a pause.
func (s *Session) Resume(now int64) {
	s.Paused = false
	s.anchor(now)
}

// Restart resets the encounter and the clock, as after an absence.
func (s *Session) Restart(now int64) {
	s.Encounter.Reset()
	s.Paused = false
	s.anchor(now)
}
