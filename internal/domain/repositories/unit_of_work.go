package repositories

import (
	"context"
)

// UnitOfWork groups repository writes into one atomic scope. The purchase
// flow and webhook settlement both depend on order and offer rows moving
// together.
type UnitOfWork interface {
	// Do executes fn inside a transaction; any error rolls it back
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
