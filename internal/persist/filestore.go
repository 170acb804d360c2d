package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

// FileStore keeps one JSON file per session snapshot plus a session.json
// for the active session, all under a single directory. Files are written
// 0600 in a 0700 directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDataDir resolves the per-user data directory, typically
// ~/.foodhabits.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".foodhabits"), nil
}

func (s *FileStore) snapshotPath(sessionID string) string {
	return filepath.Join(s.dir, "snapshot-"+sanitize(sessionID)+".json")
}

func (s *FileStore) sessionPath() string {
	return filepath.Join(s.dir, "session.json")
}

// sanitize keeps session ids safe to embed in a filename.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, id)
}

func (s *FileStore) SaveSnapshot(sessionID string, snap types.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	if err := os.WriteFile(s.snapshotPath(sessionID), data, 0600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) LoadSnapshot(sessionID string) (types.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return types.Snapshot{}, ErrNotFound
		}
		return types.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A malformed file is treated as absent so the caller reseeds.
		log.Warn().Str("session", sessionID).Err(err).Msg("discarding unreadable snapshot")
		return types.Snapshot{}, ErrNotFound
	}
	return snap, nil
}

func (s *FileStore) DeleteSnapshot(sessionID string) error {
	if err := os.Remove(s.snapshotPath(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) SaveSession(sess types.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	if err := os.WriteFile(s.sessionPath(), data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *FileStore) LoadSession() (types.Session, error) {
	data, err := os.ReadFile(s.sessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return types.Session{}, ErrNotFound
		}
		return types.Session{}, fmt.Errorf("read session: %w", err)
	}
	var sess types.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable session record")
		return types.Session{}, ErrNotFound
	}
	if sess.ID == "" {
		return types.Session{}, ErrNotFound
	}
	return sess, nil
}

func (s *FileStore) ClearSession() error {
	if err := os.Remove(s.sessionPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

var _ Port = (*FileStore)(nil)
