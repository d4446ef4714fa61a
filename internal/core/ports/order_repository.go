package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the order row together with its line items and are
// expected to run inside the transaction of the enclosing UnitOfWork, so a
// failing call leaves no partial writes behind.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: the order
	// fields (status, total, timestamps) and, when the aggregate reports
	// ItemsReplaced, the full item set (old rows deleted, new rows inserted).
	//
	// Update performs an optimistic version check against the stored row.
	// A stale aggregate version yields a VersionIsInvalid conflict so a
	// losing concurrent writer fails cleanly instead of overwriting.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// with all of its items loaded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and cascades to its items.
	// Returns whether a row was actually removed; deleting an absent order
	// is a no-op reporting false, not an error.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
