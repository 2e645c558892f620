package commands

import (
	"context"

	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"
)

// AttachEvidenceCommandHandler attaches an evidence record to an existing
// order. Evidence can be attached in any order status so crews may upload
// photos before the completion request arrives. Records are append-only.
type AttachEvidenceCommandHandler struct {
	uowFactory EvidenceUoWFactory
}

// NewAttachEvidenceCommandHandler creates a handler for evidence uploads.
func NewAttachEvidenceCommandHandler(uowFactory EvidenceUoWFactory) AttachEvidenceCommandHandler {
	return AttachEvidenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upload and returns the stored evidence record.
// Returns errs.ObjectNotFoundError when the order does not exist and the
// evidence model's structural errors when the payload is incomplete.
func (h AttachEvidenceCommandHandler) Handle(
	ctx context.Context,
	cmd AttachEvidenceCommand,
) (*evidence.Evidence, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	ev, err := evidence.NewEvidence(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.Kind(),
		cmd.URL(),
		cmd.Latitude(),
		cmd.Longitude(),
		cmd.Timestamp(),
		cmd.Meta(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.EvidenceRepository().Add(ctx, ev); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ev, nil
}
