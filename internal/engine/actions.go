package engine

import (
	"fmt"
	"slices"
	"time"

	"idlehunt/internal/content"
	"idlehunt/internal/event"
	"idlehunt/internal/player"
)

// MaxConcurrent is the largest number of monsters one hunt may pull.
const MaxConcurrent = 8

// StartHunt begins hunting monsterID with count concurrent targets. A boss
// goes on cooldown as soon as the hunt starts. Invalid requests return the
// player unchanged with an explanatory log line.
func (s *Session) StartHunt(p player.State, cat *content.Catalog, monsterID string, count int, now int64) (player.State, event.LogEntry) {
	m, ok := cat.Monster(monsterID)
	if !ok {
		return p, event.Entry(event.Info, now, "Unknown monster %q.", monsterID)
	}
	if p.Level < m.MinLevel {
		return p, event.Entry(event.Info, now, "You need level %d to hunt %s.", m.MinLevel, m.Name)
	}
	if count < 1 || count > MaxConcurrent {
		return p, event.Entry(event.Info, now, "You can hunt between 1 and %d monsters at once.", MaxConcurrent)
	}
	if m.Boss {
		count = 1
		if until := p.BossCooldowns[m.ID]; until > now {
			wait := time.Duration(until-now) * time.Millisecond
			return p, event.Entry(event.Info, now, "%s can be challenged again in %s.", m.Name, wait.Round(time.Second))
		}
	}

	out := p.Clone()
	if m.Boss {
		out.BossCooldowns[m.ID] = now + m.CooldownSeconds*1000
	}
	out.Training = nil
	out.Hunt = &player.Hunt{MonsterID: m.ID, Concurrent: count, StartedAt: now}
	s.Restart(now)
	return out, event.Entry(event.Info, now, "You start hunting %s.", huntLabel(m.Name, count))
}

func huntLabel(name string, n int) string {
	if n > 1 {
		return fmt.Sprintf("%d x %s", n, name)
	}
	return name
}

// StopHunt ends the active hunt and discards the encounter.
func (s *Session) StopHunt(p player.State, now int64) (player.State, event.LogEntry) {
	if !p.Hunting() {
		return p, event.Entry(event.Info, now, "You are not hunting.")
	}
	out := p.Clone()
	out.Hunt = nil
	s.Restart(now)
	return out, event.Entry(event.Info, now, "You stop hunting.")
}

// StartTraining trains a skill instead of hunting.
func (s *Session) StartTraining(p player.State, skill content.Skill, now int64) (player.State, event.LogEntry) {
	if !slices.Contains(content.Skills, skill) {
		return p, event.Entry(event.Info, now, "Unknown skill %q.", skill)
	}
	out := p.Clone()
	out.Hunt = nil
	out.Training = &player.Training{Skill: skill, StartedAt: now}
	s.Restart(now)
	return out, event.Entry(event.Skill, now, "You start training %s.", skill)
}

// StopTraining ends skill training.
func (s *Session) StopTraining(p player.State, now int64) (player.State, event.LogEntry) {
	if !p.IsTraining() {
		return p, event.Entry(event.Info, now, "You are not training.")
	}
	out := p.Clone()
	out.Training = nil
	s.Restart(now)
	return out, event.Entry(event.Skill, now, "You stop training.")
}
