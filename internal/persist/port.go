// Package persist defines the local persistence port and its file and
// in-memory implementations. The client restores the last session and its
// domain snapshot from here on startup; nothing in this package talks to
// the network.
package persist

import (
	"errors"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

// ErrNotFound is returned when no record exists for the requested key.
// A corrupt record is reported the same way: the caller falls back to
// defaults either way.
var ErrNotFound = errors.New("persist: not found")

// Port is the storage interface the client is wired with. Implementations
// must tolerate concurrent calls.
type Port interface {
	// SaveSnapshot stores the domain snapshot for a session id.
	SaveSnapshot(sessionID string, snap types.Snapshot) error

	// LoadSnapshot returns the stored snapshot for a session id, or
	// ErrNotFound when none exists.
	LoadSnapshot(sessionID string) (types.Snapshot, error)

	// DeleteSnapshot removes the stored snapshot for a session id.
	// Removing a missing snapshot is not an error.
	DeleteSnapshot(sessionID string) error

	// SaveSession stores the active session record.
	SaveSession(s types.Session) error

	// LoadSession returns the active session record, or ErrNotFound when
	// no session is stored.
	LoadSession() (types.Session, error)

	// ClearSession removes the active session record. Clearing when none
	// is stored is not an error.
	ClearSession() error
}
