package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ErrEvidenceRequired is returned when an order cannot be completed because
// no valid photo evidence has been attached to it.
var ErrEvidenceRequired = errors.New(
	"at least one photo with GPS coordinates and timestamp is required",
)

// CompleteOrderCommandHandler completes an order once the evidence gate
// passes. Completion requires at least one photo with GPS coordinates and a
// capture timestamp; the status check runs first so callers learn about a
// wrong status before a missing photo.
type CompleteOrderCommandHandler struct {
	uowFactory EvidenceUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory EvidenceUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. Returns errs.ObjectNotFoundError
// when the order does not exist, order.ErrOrderNotCompletable when it is
// neither assigned nor in progress (including losing a concurrent
// transition), and ErrEvidenceRequired when no qualifying photo exists.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = ord.Complete(); err != nil {
		return err
	}

	hasPhoto, err := uow.EvidenceRepository().HasValidPhoto(ctx, ord.ID())
	if err != nil {
		return err
	}
	if !hasPhoto {
		return ErrEvidenceRequired
	}

	err = orderRepo.UpdateInStatus(ctx, ord, prevStatus)
	if errors.Is(err, ports.ErrConcurrentStatusChange) {
		return order.ErrOrderNotCompletable
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
