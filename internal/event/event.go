// Package event defines the structured output of a simulation batch: log
// lines, hit splats, aggregated stats, kills and one-shot triggers.
package event

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"idlehunt/internal/content"
	"idlehunt/internal/rng"
)

// Category classifies a log line.
type Category string

const (
	Info   Category = "info"
	Combat Category = "combat"
	Loot   Category = "loot"
	Danger Category = "danger"
	Gain   Category = "gain"
	Skill  Category = "skill"
	Magic  Category = "magic"
)

// LogEntry is one line of the game log.
type LogEntry struct {
	ID        string          `json:"id"`
	Message   string          `json:"message"`
	Category  Category        `json:"category"`
	Timestamp int64           `json:"timestamp"`
	Rarity    *content.Rarity `json:"rarity,omitempty"`
}

// SplatKind is what a splat shows.
type SplatKind string

const (
	SplatDamage SplatKind = "damage"
	SplatHeal   SplatKind = "heal"
	SplatMana   SplatKind = "mana"
	SplatMiss   SplatKind = "miss"
	SplatSpeech SplatKind = "speech"
)

// Target is who a splat is drawn over.
type Target string

const (
	OnPlayer  Target = "player"
	OnMonster Target = "monster"
)

// Splat is a floating hit number or spoken word. Text is set instead of
// Value for speech.
type Splat struct {
	ID     string    `json:"id"`
	Value  float64   `json:"value,omitempty"`
	Text   string    `json:"text,omitempty"`
	Kind   SplatKind `json:"kind"`
	Target Target    `json:"target"`
}

// Stats are the cumulative gains of a batch.
type Stats struct {
	XPGained     float64 `json:"xp_gained"`
	GoldGained   int     `json:"gold_gained"`
	ProfitGained int     `json:"profit_gained"`
	Waste        int     `json:"waste"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.XPGained += o.XPGained
	s.GoldGained += o.GoldGained
	s.ProfitGained += o.ProfitGained
	s.Waste += o.Waste
}

// Kill counts kills of one monster name.
type Kill struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Entry builds a standalone log line with a random id. Batches use their own
// replayable ids instead.
func Entry(cat Category, now int64, format string, args ...any) LogEntry {
	return LogEntry{
		ID:        uuid.NewString(),
		Message:   fmt.Sprintf(format, args...),
		Category:  cat,
		Timestamp: now,
	}
}

// Batch collects everything one processing pass produced.
type Batch struct {
	Logs     []LogEntry `json:"logs"`
	Splats   []Splat    `json:"splats"`
	Stats    Stats      `json:"stats"`
	Kills    []Kill     `json:"kills"`
	Triggers []string   `json:"triggers"`

	ids io.Reader
}

// NewBatch returns an empty batch drawing ids from r.
func NewBatch(r io.Reader) *Batch {
	return &Batch{ids: r}
}

// Log appends a formatted log line.
func (b *Batch) Log(cat Category, now int64, format string, args ...any) {
	b.Logs = append(b.Logs, LogEntry{
		ID:        rng.NewID(b.ids),
		Message:   fmt.Sprintf(format, args...),
		Category:  cat,
		Timestamp: now,
	})
}

// LogRarity appends a loot line tagged with an item rarity.
func (b *Batch) LogRarity(r content.Rarity, now int64, format string, args ...any) {
	b.Log(Loot, now, format, args...)
	b.Logs[len(b.Logs)-1].Rarity = &r
}

// Append adds an already built entry, typically a rejection from an action.
func (b *Batch) Append(e LogEntry) {
	b.Logs = append(b.Logs, e)
}

// Splat appends a numeric splat.
func (b *Batch) Splat(kind SplatKind, target Target, value float64) {
	b.Splats = append(b.Splats, Splat{ID: rng.NewID(b.ids), Value: value, Kind: kind, Target: target})
}

// Say appends a speech splat.
func (b *Batch) Say(target Target, text string) {
	b.Splats = append(b.Splats, Splat{ID: rng.NewID(b.ids), Text: text, Kind: SplatSpeech, Target: target})
}

// Kill counts n kills of name, merging with an earlier entry of that name.
func (b *Batch) Kill(name string, n int) {
	for i := range b.Kills {
		if b.Kills[i].Name == name {
			b.Kills[i].Count += n
			return
		}
	}
	b.Kills = append(b.Kills, Kill{Name: name, Count: n})
}

// Trigger records a one-shot trigger once per batch.
func (b *Batch) Trigger(id string) {
	for _, t := range b.Triggers {
		if t == id {
			return
		}
	}
	b.Triggers = append(b.Triggers, id)
}
