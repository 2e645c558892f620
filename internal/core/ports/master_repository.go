// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
)

// MasterRepository defines the persistence contract for master aggregates.
type MasterRepository interface {
	// Add persists a new master aggregate to storage.
	// The master must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *master.Master) error

	// Update persists changes to an existing master aggregate.
	// The master must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *master.Master) error

	// Get retrieves a master aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*master.Master, error)

	// GetAll retrieves every master regardless of availability.
	GetAll(ctx context.Context) ([]*master.Master, error)

	// GetAllAvailable retrieves the masters currently accepting new
	// assignments. Used by the assignment workflow as its candidate set.
	GetAllAvailable(ctx context.Context) ([]*master.Master, error)

	// ActiveLoads returns the number of orders in assigned or in_progress
	// status per master ID. The counts are derived from order storage on
	// every call; there is no cached counter. Masters with no active
	// orders are absent from the map.
	ActiveLoads(ctx context.Context) (map[kernel.UUID]int, error)
}
