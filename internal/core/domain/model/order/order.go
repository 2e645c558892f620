package order

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a service order in the system. It is the aggregate root
// that manages the order lifecycle from creation through master assignment
// and work progress to completion or rejection.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty title
//   - Must have a valid service location
//   - Status transitions follow the state machine defined on Status
//   - Holds a master reference exactly when status is Assigned, InProgress
//     or Completed
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// title is a short human-readable summary of the requested work
	title string

	// description holds optional free-form details
	description string

	// customerName and customerPhone identify the requester (optional)
	customerName  string
	customerPhone string

	// location is where the work takes place
	location kernel.Location

	// status represents the current state in the order lifecycle
	status Status

	// masterID is the assigned master's ID (nil while unassigned)
	masterID *kernel.UUID

	// createdAt and updatedAt are UTC lifecycle timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// New status with no master assigned and both timestamps set to the current
// UTC time.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - title: short summary of the work (required)
//   - description: optional details
//   - customerName, customerPhone: optional requester contacts
//   - location: validated service location
//
// Example:
//
//	orderID := kernel.NewUUID()
//	location, _ := kernel.NewLocation(55.75, 37.61)
//	ord, err := order.NewOrder(orderID, "Fix kitchen sink", "", "Alice", "+1-555-0101", location)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	title string,
	description string,
	customerName string,
	customerPhone string,
	location kernel.Location,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		description:   description,
		customerName:  customerName,
		customerPhone: customerPhone,
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTitle(title),
		order.setLocation(location),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from its persisted state.
// Unlike NewOrder it accepts any valid status and master reference, but it
// still enforces the structural invariants, including the consistency
// between status and master assignment.
//
// This constructor is intended for repositories rehydrating aggregates from
// the database.
func RestoreOrder(
	id kernel.UUID,
	title string,
	description string,
	customerName string,
	customerPhone string,
	location kernel.Location,
	status Status,
	masterID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		description:   description,
		customerName:  customerName,
		customerPhone: customerPhone,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTitle(title),
		order.setLocation(location),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if masterID != nil {
		if err := masterID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *masterID
		order.masterID = &idCopy
	}

	if err := order.status.ValidateCanHaveMaster(order.masterID != nil); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns ErrOrderIsNotConstructed if the order was not created via
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Title returns the short work summary.
func (o *Order) Title() string {
	return o.title
}

// Description returns the optional free-form details.
func (o *Order) Description() string {
	return o.description
}

// CustomerName returns the requester's name, if provided.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the requester's phone, if provided.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// Location returns the service location for the order.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Master returns the assigned master's ID.
// Returns nil while no master is assigned.
func (o *Order) Master() *kernel.UUID {
	return o.masterID
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the UTC timestamp of the last lifecycle change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign assigns the order to a master and updates the status to Assigned.
//
// Business rules:
//   - The master ID must be valid
//   - The order must be in New status; an order that already holds a master
//     is never silently reassigned
//
// Returns ErrOrderIsNotNew if the order has already left the New status.
func (o *Order) Assign(masterID kernel.UUID) error {
	if err := masterID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.masterID = &masterID
	o.touch()
	return nil
}

// Start marks the order as in progress. The order must be in Assigned status.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete marks the order as completed.
//
// The order must be in Assigned or InProgress status; the master reference
// is kept so completed work stays attributable. Whether completion evidence
// exists is a use-case level precondition, not enforced here.
//
// Returns ErrOrderNotCompletable if the status does not allow completion.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Reject cancels the order from any non-terminal status.
// Any master reference is released so the master's active load drops
// immediately.
//
// Returns ErrOrderNotRejectable if the order is already terminal.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.masterID = nil
	o.touch()
	return nil
}

// touch refreshes the updatedAt timestamp after a lifecycle change.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTitle validates and sets the order's title.
// This is a private method used only during construction.
func (o *Order) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

// setLocation validates and sets the order's service location.
// This is a private method used only during construction.
func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// setStatus validates and sets the order's status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
