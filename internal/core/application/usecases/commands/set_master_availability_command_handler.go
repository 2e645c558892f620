package commands

import (
	"context"
)

// SetMasterAvailabilityCommandHandler toggles a master's availability.
// Availability affects only future assignments; orders the master already
// holds are untouched.
type SetMasterAvailabilityCommandHandler struct {
	uowFactory MasterUoWFactory
}

// NewSetMasterAvailabilityCommandHandler creates a handler for availability
// updates.
func NewSetMasterAvailabilityCommandHandler(uowFactory MasterUoWFactory) SetMasterAvailabilityCommandHandler {
	return SetMasterAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update command.
// Returns an errs.ObjectNotFoundError when the master does not exist.
func (h SetMasterAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetMasterAvailabilityCommand) error {
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

	masterRepo := uow.MasterRepository()

	m, err := masterRepo.Get(ctx, cmd.MasterID())
	if err != nil {
		return err
	}

	m.SetAvailability(cmd.IsAvailable())

	if err = masterRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
