package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// ErrNoOrderFound is returned when no order is currently waiting for
// assignment.
var ErrNoOrderFound = errors.New("no order found")

// AssignPendingOrderCommandHandler picks up the oldest unassigned order and
// runs the same assignment core as AssignMasterCommandHandler. Intended to
// be driven periodically by the background dispatch job.
//
// Example:
//
//	handler := NewAssignPendingOrderCommandHandler(uowFactory)
//	cmd := NewAssignPendingOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailableMasters):
//	    log.Println("All masters are busy or offline")
//	}
type AssignPendingOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignPendingOrderCommandHandler creates a handler for background
// assignment runs.
func NewAssignPendingOrderCommandHandler(uowFactory AssignmentUoWFactory) AssignPendingOrderCommandHandler {
	return AssignPendingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one assignment round. Returns ErrNoOrderFound when the
// queue is empty and ErrNoAvailableMasters when nobody can take the order.
func (h AssignPendingOrderCommandHandler) Handle(ctx context.Context, cmd AssignPendingOrderCommand) error {
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

	ord, err := uow.OrderRepository().GetFirstInNewStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	return assignMaster(ctx, uow, ord)
}
