package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrConcurrentStatusChange is returned by OrderRepository.UpdateInStatus
// when the order's stored status no longer matches the expected one,
// meaning another operation transitioned the order first.
var ErrConcurrentStatusChange = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// unconditionally.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists the aggregate's state only if the stored
	// status still equals expected, as a single conditional update.
	// Returns ErrConcurrentStatusChange when the condition does not hold,
	// which callers surface as the corresponding precondition failure.
	// This is the guard that keeps concurrent transitions from both
	// succeeding on the same order.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetFirstInNewStatus retrieves the oldest order still in new status.
	// Used by the background assignment workflow to find pending orders.
	GetFirstInNewStatus(ctx context.Context) (*order.Order, error)
}
