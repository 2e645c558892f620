package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignPendingOrderCommandIsNotConstructed = errors.New(
	"AssignPendingOrderCommand must be created via NewAssignPendingOrderCommand constructor",
)

// AssignPendingOrderCommand triggers the assignment of an available master to
// the oldest pending order. It finds the first order in "new" status and
// assigns the most suitable master.
//
// Example:
//
//	cmd := NewAssignPendingOrderCommand()
//	handler := NewAssignPendingOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available masters: %v", err)
//	}
type AssignPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrderCommand creates a new command to trigger master
// assignment. This is a parameterless command that initiates the
// master-order matching process.
func NewAssignPendingOrderCommand() AssignPendingOrderCommand {
	return AssignPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrderCommandIsNotConstructed)
}
