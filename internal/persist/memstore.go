package persist

import (
	"sync"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

// MemStore is an in-memory Port for tests and for clients that opt out of
// disk persistence.
type MemStore struct {
	mu        sync.Mutex
	snapshots map[string]types.Snapshot
	session   *types.Session
}

func NewMemStore() *MemStore {
	return &MemStore{snapshots: make(map[string]types.Snapshot)}
}

func (s *MemStore) SaveSnapshot(sessionID string, snap types.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[sessionID] = snap.Clone()
	return nil
}

func (s *MemStore) LoadSnapshot(sessionID string) (types.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[sessionID]
	if !ok {
		return types.Snapshot{}, ErrNotFound
	}
	return snap.Clone(), nil
}

func (s *MemStore) DeleteSnapshot(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}

func (s *MemStore) SaveSession(sess types.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := sess
	s.session = &cp
	return nil
}

func (s *MemStore) LoadSession() (types.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return types.Session{}, ErrNotFound
	}
	return *s.session, nil
}

func (s *MemStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

var _ Port = (*MemStore)(nil)
