package foodhabits

import (
	"context"

	"github.com/foodhabits/foodhabits-go/internal/shardqueue"
)

// executor abstracts the internal async job runner used by the sync paths.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}
