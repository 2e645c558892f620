package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// RejectOrderCommandHandler rejects an order and releases its master, if
// any. Rejection is allowed from any non-terminal status; the commit is
// conditional on the status the order was read in.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command. Returns errs.ObjectNotFoundError
// when the order does not exist and order.ErrOrderNotRejectable when it has
// already reached a terminal status, including losing a concurrent
// transition.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	prevStatus := ord.Status()

	if err = ord.Reject(); err != nil {
		return err
	}

	err = orderRepo.UpdateInStatus(ctx, ord, prevStatus)
	if errors.Is(err, ports.ErrConcurrentStatusChange) {
		return order.ErrOrderNotRejectable
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
