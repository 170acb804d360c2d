// Package store holds the canonical in-memory domain snapshot. All reads and
// writes pass through Store; consumers only ever see copies, and every
// mutation is a full replacement of one top-level field (copy-on-write).
package store

import (
	"sync"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

// Store is the single source of truth for the active snapshot. It performs
// no derived-field computation and no validation; callers supply fully
// computed replacement values (see the mutation helpers in this package).
type Store struct {
	mu       sync.Mutex
	snapshot types.Snapshot

	nextSub int
	subs    map[int]func(types.Snapshot)
}

// New constructs a Store seeded with the given snapshot.
func New(seed types.Snapshot) *Store {
	return &Store{
		snapshot: seed.Clone(),
		subs:     make(map[int]func(types.Snapshot)),
	}
}

// Snapshot returns a deep copy of the current snapshot.
func (s *Store) Snapshot() types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// Apply merges the patch into the snapshot: each non-nil field fully
// replaces its prior value. It returns the new snapshot and notifies
// subscribers.
func (s *Store) Apply(patch types.Patch) types.Snapshot {
	s.mu.Lock()
	s.applyLocked(patch)
	next := s.snapshot.Clone()
	subs := s.subscribers()
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may read the store.
	for _, fn := range subs {
		fn(next.Clone())
	}
	return next
}

// Update runs fn against the current snapshot and applies the returned
// patch in one critical section. Use it for read-modify-write sequences
// (id confirmation, revert) that must not interleave with other writers;
// a plain Snapshot-then-Apply would lose a concurrent mutation. fn gets a
// deep copy and must not call back into the store.
func (s *Store) Update(fn func(types.Snapshot) types.Patch) types.Snapshot {
	s.mu.Lock()
	s.applyLocked(fn(s.snapshot.Clone()))
	next := s.snapshot.Clone()
	subs := s.subscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next.Clone())
	}
	return next
}

// applyLocked merges the patch into the snapshot; callers must hold s.mu.
func (s *Store) applyLocked(patch types.Patch) {
	if patch.Habits != nil {
		s.snapshot.Habits = append([]types.Habit(nil), (*patch.Habits)...)
	}
	if patch.FoodLog != nil {
		s.snapshot.FoodLog = append([]types.FoodEntry(nil), (*patch.FoodLog)...)
	}
	if patch.Goals != nil {
		s.snapshot.Goals = append([]types.Goal(nil), (*patch.Goals)...)
	}
	if patch.MealPlan != nil {
		s.snapshot.MealPlan = patch.MealPlan.Clone()
	}
}

// Reset replaces the whole snapshot, used on session switch. Subscribers are
// notified with the new state.
func (s *Store) Reset(snapshot types.Snapshot) types.Snapshot {
	s.mu.Lock()
	s.snapshot = snapshot.Clone()
	next := s.snapshot.Clone()
	subs := s.subscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next.Clone())
	}
	return next
}

// Subscribe registers fn to run after every mutation. The returned func
// removes the subscription; it is safe to call more than once.
func (s *Store) Subscribe(fn func(types.Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// subscribers snapshots the callback list; callers must hold s.mu.
func (s *Store) subscribers() []func(types.Snapshot) {
	out := make([]func(types.Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
