// Package store persists player snapshots and the per-session journal.
package store

//go:generate go tool mockgen -destination=mocks/store_mock.go -package=mocks idlehunt/internal/store Store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"idlehunt/internal/player"
)

// SnapshotVersion is written into every snapshot.
const SnapshotVersion = 1

var (
	// ErrNotFound is returned by Load when no snapshot exists for a name.
	ErrNotFound = errors.New("store: snapshot not found")
	// ErrInvalidName rejects character names that are not safe file names.
	ErrInvalidName = errors.New("store: invalid character name")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// Snapshot is the persisted form of one character.
type Snapshot struct {
	Version int          `json:"version"`
	Player  player.State `json:"player"`
	SavedAt int64        `json:"saved_at"` // Unix ms
}

// SessionLog summarises one play session. It is appended to the journal
// when the session ends.
type SessionLog struct {
	Name         string         `json:"name"`
	Vocation     string         `json:"vocation"`
	StartedAt    int64          `json:"started_at"`
	EndedAt      int64          `json:"ended_at"`
	LevelStart   int            `json:"level_start"`
	LevelEnd     int            `json:"level_end"`
	XPGained     float64        `json:"xp_gained"`
	GoldGained   int            `json:"gold_gained"`
	Deaths       int            `json:"deaths"`
	Kills        map[string]int `json:"kills"`
	OfflineHours float64        `json:"offline_hours,omitempty"`
}

// Store loads and saves snapshots.
type Store interface {
	Load(ctx context.Context, name string) (Snapshot, error)
	Save(ctx context.Context, name string, s Snapshot) error
	AppendSession(ctx context.Context, log SessionLog) error
}

// ValidName reports whether name can be used as a character name.
func ValidName(name string) bool { return validName.MatchString(name) }

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// normalize prepares a loaded snapshot for the simulation.
func normalize(s Snapshot) Snapshot {
	s.Player.Normalize()
	s.Player.ClampVitals()
	if s.Player.LastSaveTime == 0 {
		s.Player.LastSaveTime = s.SavedAt
	}
	return s
}
