package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus retrieves the oldest order waiting for an oven.
	// Returns errs.ObjectNotFoundError when the queue is empty.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)

	// GetAllInBakingStatus retrieves every order currently in the oven.
	GetAllInBakingStatus(ctx context.Context) ([]*order.Order, error)
}
