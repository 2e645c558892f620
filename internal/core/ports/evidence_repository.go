package ports

import (
	"context"

	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"
)

// EvidenceRepository defines the persistence contract for evidence records.
// Records are append-only: there is no update or delete.
type EvidenceRepository interface {
	// Add persists a new evidence record.
	Add(ctx context.Context, record *evidence.Evidence) error

	// GetAllByOrderID retrieves every evidence record attached to the
	// given order, oldest first.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*evidence.Evidence, error)

	// HasValidPhoto reports whether at least one stored photo record with
	// capture coordinates and a capture timestamp exists for the order.
	// This is the completion gate predicate, evaluated against already
	// stored records.
	HasValidPhoto(ctx context.Context, orderID kernel.UUID) (bool, error)
}
