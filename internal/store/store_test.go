package store

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

func TestApplyReplacesOnlyProvidedFields(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{
		Habits: []types.Habit{{ID: "h1"}},
		Goals:  []types.Goal{{ID: "g1"}},
	})

	habits := []types.Habit{{ID: "h1"}, {ID: "h2"}}
	s.Apply(types.Patch{Habits: &habits})

	snap := s.Snapshot()
	if len(snap.Habits) != 2 {
		t.Fatalf("habits = %d, want 2", len(snap.Habits))
	}
	if len(snap.Goals) != 1 {
		t.Fatal("goals were touched by a habits-only patch")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{Habits: []types.Habit{{ID: "h1", Streak: 3}}})

	snap := s.Snapshot()
	snap.Habits[0].Streak = 99

	if s.Snapshot().Habits[0].Streak != 3 {
		t.Fatal("mutation through a returned snapshot reached the store")
	}
}

func TestApplyInputIsIsolated(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{})
	habits := []types.Habit{{ID: "h1"}}
	s.Apply(types.Patch{Habits: &habits})

	habits[0].ID = "mutated"
	if s.Snapshot().Habits[0].ID != "h1" {
		t.Fatal("mutation through the patch slice reached the store")
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{})

	var seen []int
	unsub := s.Subscribe(func(snap types.Snapshot) {
		seen = append(seen, len(snap.Habits))
	})

	habits := []types.Habit{{ID: "h1"}}
	s.Apply(types.Patch{Habits: &habits})
	unsub()
	habits = append(habits, types.Habit{ID: "h2"})
	s.Apply(types.Patch{Habits: &habits})

	if diff := cmp.Diff([]int{1}, seen); diff != "" {
		t.Fatalf("subscriber calls mismatch (-want +got):\n%s", diff)
	}
}

func TestResetSwapsWholeSnapshot(t *testing.T) {
	t.Parallel()
	s := New(types.DefaultSnapshot())

	s.Reset(types.Snapshot{Goals: []types.Goal{{ID: "g1"}}})

	snap := s.Snapshot()
	if len(snap.Habits) != 0 {
		t.Fatal("reset kept old habits")
	}
	if len(snap.Goals) != 1 {
		t.Fatal("reset lost new goals")
	}
}

func TestUpdateReadModifyWriteIsAtomic(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{Habits: []types.Habit{{ID: "h1", Streak: 0}}})

	// Each increment reads the streak and writes it back. With a plain
	// Snapshot-then-Apply sequence concurrent increments get lost; Update
	// must keep every one.
	const writers = 64
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			s.Update(func(snap types.Snapshot) types.Patch {
				habits := snap.Habits
				habits[0].Streak++
				return types.Patch{Habits: &habits}
			})
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Habits[0].Streak; got != writers {
		t.Fatalf("streak = %d after %d atomic increments, want %d", got, writers, writers)
	}
}

func TestUpdateNotifiesSubscribers(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{Habits: []types.Habit{{ID: "pending", Name: "Stretch"}}})

	var notified []string
	s.Subscribe(func(snap types.Snapshot) {
		notified = append(notified, snap.Habits[0].ID)
	})

	s.Update(func(snap types.Snapshot) types.Patch {
		habits := snap.Habits
		habits[0].ID = "srv-1"
		return types.Patch{Habits: &habits}
	})

	if diff := cmp.Diff([]string{"srv-1"}, notified); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscriberMayReadStore(t *testing.T) {
	t.Parallel()
	s := New(types.Snapshot{})
	done := make(chan struct{})
	s.Subscribe(func(types.Snapshot) {
		_ = s.Snapshot() // must not deadlock
		close(done)
	})
	habits := []types.Habit{{ID: "h1"}}
	s.Apply(types.Patch{Habits: &habits})
	<-done
}
