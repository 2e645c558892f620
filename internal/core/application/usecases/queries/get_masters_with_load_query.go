package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetMastersWithLoadQueryIsNotConstructed = errors.New(
	"GetMastersWithLoadQuery must be created via NewGetMastersWithLoadQuery constructor",
)

// GetMastersWithLoadQuery retrieves every master together with the number
// of orders currently active on them.
type GetMastersWithLoadQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMastersWithLoadQuery creates a query to retrieve all masters with
// their active load.
func NewGetMastersWithLoadQuery() GetMastersWithLoadQuery {
	return GetMastersWithLoadQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMastersWithLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetMastersWithLoadQueryIsNotConstructed)
}

// GetMastersWithLoadQueryResponse is the master list read model.
// ActiveOrders counts the orders in assigned or in_progress status, derived
// from order storage at query time.
type GetMastersWithLoadQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Rating       float64
	IsAvailable  bool
	Location     kernel.Location
	ActiveOrders int
}
