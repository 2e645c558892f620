package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetMasterAvailabilityCommandIsNotConstructed = errors.New(
	"SetMasterAvailabilityCommand must be created via NewSetMasterAvailabilityCommand constructor",
)

// SetMasterAvailabilityCommand represents a request to toggle whether a
// master accepts new assignments.
type SetMasterAvailabilityCommand struct { //nolint:recvcheck //using for validation
	masterID    kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewSetMasterAvailabilityCommand creates a command to toggle a master's
// availability.
func NewSetMasterAvailabilityCommand(masterID kernel.UUID, isAvailable bool) (SetMasterAvailabilityCommand, error) {
	cmd := SetMasterAvailabilityCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setMasterID(masterID); err != nil {
		return SetMasterAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetMasterAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetMasterAvailabilityCommandIsNotConstructed)
}

// MasterID returns the unique identifier of the master.
func (c SetMasterAvailabilityCommand) MasterID() kernel.UUID {
	return c.masterID
}

// IsAvailable returns the requested availability state.
func (c SetMasterAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *SetMasterAvailabilityCommand) setMasterID(masterID kernel.UUID) error {
	if err := masterID.Validate(); err != nil {
		return err
	}

	c.masterID = masterID
	return nil
}
