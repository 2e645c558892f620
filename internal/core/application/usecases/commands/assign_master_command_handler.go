package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ErrNoAvailableMasters is returned when no master is currently available
// to take an order.
var ErrNoAvailableMasters = errors.New("no available masters found")

// AssignMasterCommandHandler orchestrates master assignment for a specific
// order. Finds the candidate masters with their derived active loads, runs
// the dispatcher, and commits the transition with a conditional update so
// concurrent assignment requests cannot both win.
//
// Example:
//
//	handler := NewAssignMasterCommandHandler(uowFactory)
//	cmd, _ := NewAssignMasterCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderIsNotNew):
//	    // already assigned, or lost the race
//	case errors.Is(err, ErrNoAvailableMasters):
//	    // nobody to assign right now
//	}
type AssignMasterCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignMasterCommandHandler creates a handler for master assignment.
func NewAssignMasterCommandHandler(uowFactory AssignmentUoWFactory) AssignMasterCommandHandler {
	return AssignMasterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command for the order named in it.
// Returns errs.ObjectNotFoundError when the order does not exist,
// order.ErrOrderIsNotNew when it has already left the new status (including
// losing a concurrent race), and ErrNoAvailableMasters when no candidate
// exists.
func (h AssignMasterCommandHandler) Handle(ctx context.Context, cmd AssignMasterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return assignMaster(ctx, uow, ord)
}

// assignMaster runs the shared assignment core: candidate selection via the
// dispatcher over fresh loads, then a conditional commit expecting the
// order to still be new.
func assignMaster(ctx context.Context, uow AssignmentUoW, ord *order.Order) error {
	if err := ord.Status().ValidateAssign(); err != nil {
		return err
	}

	masterRepo := uow.MasterRepository()

	masters, err := masterRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(masters) == 0 {
		return ErrNoAvailableMasters
	}

	loads, err := masterRepo.ActiveLoads(ctx)
	if err != nil {
		return err
	}

	best, err := services.NewMasterDispatcher().SelectBestMaster(ord, masters, loads)
	if errors.Is(err, services.ErrMasterNotFound) {
		return ErrNoAvailableMasters
	}
	if err != nil {
		return err
	}

	if err = ord.Assign(best.ID()); err != nil {
		return err
	}

	err = uow.OrderRepository().UpdateInStatus(ctx, ord, order.New)
	if errors.Is(err, ports.ErrConcurrentStatusChange) {
		// Someone else transitioned the order first; never overwrite.
		return order.ErrOrderIsNotNew
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
