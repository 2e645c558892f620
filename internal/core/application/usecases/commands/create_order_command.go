package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateOrderCommand represents a request to register a new service order.
// Carries the order details and the validated service location.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	title         string
	description   string
	customerName  string
	customerPhone string
	location      kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new service order.
// The coordinates are validated into a Location here, so an invalid pair
// fails before any handler work.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	title string,
	description string,
	customerName string,
	customerPhone string,
	latitude float64,
	longitude float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description:   description,
		customerName:  customerName,
		customerPhone: customerPhone,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTitle(title),
		cmd.setLocation(latitude, longitude),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the short work summary.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Description returns the optional free-form details.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// CustomerName returns the requester's name, if provided.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the requester's phone, if provided.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Location returns the validated service location.
func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateOrderCommand) setLocation(latitude float64, longitude float64) error {
	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
