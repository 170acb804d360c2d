// Package session owns the authenticated-session lifecycle: signing in and
// up against the remote API, switching the domain store between per-user
// snapshots, and restoring the last session from local persistence.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/foodhabits/foodhabits-go/internal/persist"
	"github.com/foodhabits/foodhabits-go/internal/store"
	"github.com/foodhabits/foodhabits-go/internal/types"
)

// ErrBusy is returned when a sign-in or sign-up attempt starts while
// another is still in flight.
var ErrBusy = errors.New("session: authentication already in progress")

// ErrNoSession is returned by operations that need an authenticated user
// when none is signed in.
var ErrNoSession = errors.New("session: not signed in")

// AuthFunc performs one credential exchange against the remote API.
type AuthFunc func(ctx context.Context, email, password string) (*types.Session, error)

// SignUpFunc performs account creation against the remote API.
type SignUpFunc func(ctx context.Context, name, email, password string) (*types.Session, error)

// Manager coordinates session state. All state transitions persist the
// outgoing user's snapshot before the incoming user's snapshot is applied,
// so switching accounts never leaks data between them.
type Manager struct {
	logIn  AuthFunc
	signUp SignUpFunc
	store  *store.Store
	disk   persist.Port

	authMu sync.Mutex // held for the duration of one credential exchange

	mu      sync.Mutex
	current *types.Session
}

func NewManager(logIn AuthFunc, signUp SignUpFunc, st *store.Store, disk persist.Port) *Manager {
	return &Manager{logIn: logIn, signUp: signUp, store: st, disk: disk}
}

// Current returns the active session, or ErrNoSession.
func (m *Manager) Current() (types.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return types.Session{}, ErrNoSession
	}
	return *m.current, nil
}

// SignIn exchanges credentials for a session and swaps the store to that
// user's persisted snapshot, seeding defaults for a first sign-in on this
// device. Only one credential exchange may run at a time; a second caller
// gets ErrBusy instead of queueing.
func (m *Manager) SignIn(ctx context.Context, email, password string) (types.Session, error) {
	if !m.authMu.TryLock() {
		return types.Session{}, ErrBusy
	}
	defer m.authMu.Unlock()

	if err := types.ValidateEmail(email); err != nil {
		return types.Session{}, err
	}
	if err := types.ValidatePassword(password); err != nil {
		return types.Session{}, err
	}

	sess, err := m.logIn(ctx, email, password)
	if err != nil {
		return types.Session{}, err
	}
	return m.activate(*sess)
}

// SignUp creates an account and activates the resulting session with a
// fresh default snapshot. Concurrency rules match SignIn.
func (m *Manager) SignUp(ctx context.Context, name, email, password string) (types.Session, error) {
	if !m.authMu.TryLock() {
		return types.Session{}, ErrBusy
	}
	defer m.authMu.Unlock()

	if name == "" {
		return types.Session{}, errors.New("session: name is required")
	}
	if err := types.ValidateEmail(email); err != nil {
		return types.Session{}, err
	}
	if err := types.ValidatePassword(password); err != nil {
		return types.Session{}, err
	}

	sess, err := m.signUp(ctx, name, email, password)
	if err != nil {
		return types.Session{}, err
	}
	return m.activate(*sess)
}

// SignOut persists the active user's snapshot, clears the stored session
// and resets the store to the default seed. Signing out while signed out
// is a no-op.
func (m *Manager) SignOut() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	if err := m.disk.SaveSnapshot(m.current.ID, m.store.Snapshot()); err != nil {
		log.Warn().Str("session", m.current.ID).Err(err).Msg("failed to persist snapshot on sign-out")
	}
	if err := m.disk.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.current = nil
	m.store.Reset(types.DefaultSnapshot())
	return nil
}

// Restore reloads the last persisted session and its snapshot, if any.
// It reports whether a session was restored.
func (m *Manager) Restore() (bool, error) {
	sess, err := m.disk.LoadSession()
	if errors.Is(err, persist.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := m.activate(sess); err != nil {
		return false, err
	}
	return true, nil
}

// Persist writes the active user's snapshot to disk. Called after every
// domain mutation so a crash loses at most the in-flight change.
func (m *Manager) Persist() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ErrNoSession
	}
	return m.disk.SaveSnapshot(m.current.ID, m.store.Snapshot())
}

// activate makes sess the current session: the outgoing user's snapshot is
// saved first, then the incoming user's snapshot (or the default seed) is
// applied.
func (m *Manager) activate(sess types.Session) (types.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		if err := m.disk.SaveSnapshot(m.current.ID, m.store.Snapshot()); err != nil {
			log.Warn().Str("session", m.current.ID).Err(err).Msg("failed to persist outgoing snapshot")
		}
	}

	snap, err := m.disk.LoadSnapshot(sess.ID)
	if errors.Is(err, persist.ErrNotFound) {
		snap = types.DefaultSnapshot()
	} else if err != nil {
		return types.Session{}, fmt.Errorf("load snapshot: %w", err)
	}

	if err := m.disk.SaveSession(sess); err != nil {
		return types.Session{}, fmt.Errorf("save session: %w", err)
	}

	m.current = &sess
	m.store.Reset(snap)
	log.Debug().Str("session", sess.ID).Str("email", sess.Email).Msg("session activated")
	return sess, nil
}
