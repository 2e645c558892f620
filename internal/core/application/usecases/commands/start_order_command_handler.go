package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// StartOrderCommandHandler moves an assigned order into progress. The
// transition is committed conditionally on the order still being assigned,
// so a concurrent rejection cannot be overwritten.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for starting orders.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command. Returns errs.ObjectNotFoundError when
// the order does not exist and order.ErrOrderNotStartable when it is not in
// the assigned status, including losing a concurrent transition.
func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Start(); err != nil {
		return err
	}

	err = orderRepo.UpdateInStatus(ctx, ord, order.Assigned)
	if errors.Is(err, ports.ErrConcurrentStatusChange) {
		return order.ErrOrderNotStartable
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
