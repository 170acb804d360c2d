package persist

import (
	"errors"
	"testing"

	"github.com/foodhabits/foodhabits-go/internal/types"
)

func TestMemStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ms := NewMemStore()

	snap := types.Snapshot{Habits: []types.Habit{{ID: "h1"}}}
	if err := ms.SaveSnapshot("u1", snap); err != nil {
		t.Fatal(err)
	}

	// The stored copy must be independent of the caller's value.
	snap.Habits[0].ID = "mutated"
	got, err := ms.LoadSnapshot("u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Habits[0].ID != "h1" {
		t.Fatal("stored snapshot shares memory with caller")
	}

	if err := ms.DeleteSnapshot("u1"); err != nil {
		t.Fatal(err)
	}
	if _, err := ms.LoadSnapshot("u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemStoreSession(t *testing.T) {
	t.Parallel()
	ms := NewMemStore()
	if _, err := ms.LoadSession(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := ms.SaveSession(types.Session{ID: "u1"}); err != nil {
		t.Fatal(err)
	}
	got, err := ms.LoadSession()
	if err != nil || got.ID != "u1" {
		t.Fatalf("LoadSession = %+v, %v", got, err)
	}
	if err := ms.ClearSession(); err != nil {
		t.Fatal(err)
	}
	if _, err := ms.LoadSession(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after clear err = %v", err)
	}
}
