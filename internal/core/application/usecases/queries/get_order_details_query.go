package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves a single order together with its assigned
// master, if any, and every evidence record attached to it.
type GetOrderDetailsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for the given order.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	q := GetOrderDetailsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the unique identifier of the order to read.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderDetailsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// MasterSummary is the assigned master portion of the order details read
// model.
type MasterSummary struct {
	ID     kernel.UUID
	Name   string
	Rating float64
}

// EvidenceRecord is one stored evidence entry in the order details read
// model.
type EvidenceRecord struct {
	ID         kernel.UUID
	Kind       string
	URL        string
	Location   kernel.Location
	CapturedAt time.Time
	Meta       map[string]any
}

// GetOrderDetailsQueryResponse is the order details read model. Master is
// nil while no master is assigned; Evidence is oldest capture first.
type GetOrderDetailsQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Description   string
	CustomerName  string
	CustomerPhone string
	Location      kernel.Location
	Status        string
	Master        *MasterSummary
	Evidence      []EvidenceRecord
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
