package foodhabits

import (
	"errors"

	"github.com/foodhabits/foodhabits-go/internal/persist"
	"github.com/foodhabits/foodhabits-go/internal/session"
)

// ErrBackPressure is returned when the client's internal sync queue is full.
// The local mutation was not applied; retry after draining with AwaitSync.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrNotFound is returned when a referenced entity does not exist in the
// current snapshot.
var ErrNotFound = errors.New("not found")

// Session errors re-exported so callers compare against a single symbol.
var (
	ErrNoSession  = session.ErrNoSession
	ErrSignInBusy = session.ErrBusy
)

// ErrNoPersistedState is returned by persistence backends for absent
// records.
var ErrNoPersistedState = persist.ErrNotFound
