package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a JobFunc is nil.
var ErrNilJobFunc = errors.New("nil JobFunc")

// jobFunc lets us pass plain closures to the shard executor.
type jobFunc func(context.Context) error

func (f jobFunc) Run(ctx context.Context) error {
	if f == nil {
		return fmt.Errorf("jobfunc: %w", ErrNilJobFunc)
	}
	return f(ctx)
}

// New creates a new job function from a closure.
func New(fn func(context.Context) error) jobFunc {
	return jobFunc(fn)
}

// fallible couples a job with a hook the executor invokes once it gives up
// on the job (irrecoverable error or retries exhausted).
type fallible struct {
	jobFunc
	onFail func(error)
}

func (f fallible) OnFail(err error) {
	if f.onFail != nil {
		f.onFail(err)
	}
}

// WithOnFail wraps fn so that onFail runs when the executor abandons the job.
// Two-phase create paths use it to revert their pending local entity.
func WithOnFail(fn func(context.Context) error, onFail func(error)) fallible {
	return fallible{jobFunc: jobFunc(fn), onFail: onFail}
}
