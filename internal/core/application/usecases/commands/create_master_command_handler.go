package commands

import (
	"context"

	"dispatch/internal/core/domain/model/master"
)

// CreateMasterCommandHandler handles the business logic for master
// registration. New masters start available for assignment.
type CreateMasterCommandHandler struct {
	uowFactory MasterUoWFactory
}

// NewCreateMasterCommandHandler creates a handler for master registration.
func NewCreateMasterCommandHandler(uowFactory MasterUoWFactory) CreateMasterCommandHandler {
	return CreateMasterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the master registration command.
func (h CreateMasterCommandHandler) Handle(ctx context.Context, cmd CreateMasterCommand) error {
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

	newMaster, err := master.NewMaster(cmd.MasterID(), cmd.Name(), cmd.Rating(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.MasterRepository().Add(ctx, newMaster); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
