package guard

import "context"

// Awaitable is a handle on a deferred computation. Channels are treated as
// promises as well; Awaitable covers future-like types that are not channels.
type Awaitable interface {
	Await(ctx context.Context) (any, error)
}
