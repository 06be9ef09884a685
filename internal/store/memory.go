package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps snapshots in memory. Snapshots are stored as JSON so a
// caller can never alias a saved player.
type MemoryStore struct {
	mu       sync.Mutex
	saves    map[string][]byte
	sessions []SessionLog
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{saves: make(map[string][]byte)}
}

// Load returns the snapshot of name.
func (s *MemoryStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := checkName(name); err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	data, ok := s.saves[name]
	s.mu.Unlock()
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return normalize(snap), nil
}

// Save stores the snapshot of name.
func (s *MemoryStore) Save(ctx context.Context, name string, snap Snapshot) error {
	if err := checkName(name); err != nil {
		return err
	}
	snap.Version = SnapshotVersion
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.saves[name] = data
	s.mu.Unlock()
	return nil
}

// AppendSession records a session log.
func (s *MemoryStore) AppendSession(ctx context.Context, log SessionLog) error {
	s.mu.Lock()
	s.sessions = append(s.sessions, log)
	s.mu.Unlock()
	return nil
}

// Sessions returns the recorded session logs.
func (s *MemoryStore) Sessions() []SessionLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SessionLog(nil), s.sessions...)
}
