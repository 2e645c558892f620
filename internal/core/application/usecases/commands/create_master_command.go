package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateMasterCommandIsNotConstructed = errors.New(
		"CreateMasterCommand must be created via NewCreateMasterCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateMasterCommand represents a request to register a new master.
type CreateMasterCommand struct { //nolint:recvcheck //using for validation
	masterID kernel.UUID
	name     string
	rating   float64
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateMasterCommand creates a command to register a new master.
// Validates that the ID is valid, the name is not empty, the rating is
// within bounds, and the coordinates form a valid location.
func NewCreateMasterCommand(
	masterID kernel.UUID,
	name string,
	rating float64,
	latitude float64,
	longitude float64,
) (CreateMasterCommand, error) {
	cmd := CreateMasterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMasterID(masterID),
		cmd.setName(name),
		cmd.setRating(rating),
		cmd.setLocation(latitude, longitude),
	); err != nil {
		return CreateMasterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMasterCommand) Validate() error {
	return c.guard.Validate(ErrCreateMasterCommandIsNotConstructed)
}

// MasterID returns the unique identifier for the master.
func (c CreateMasterCommand) MasterID() kernel.UUID {
	return c.masterID
}

// Name returns the master's display name.
func (c CreateMasterCommand) Name() string {
	return c.name
}

// Rating returns the master's quality score.
func (c CreateMasterCommand) Rating() float64 {
	return c.rating
}

// Location returns the master's validated position.
func (c CreateMasterCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateMasterCommand) setMasterID(masterID kernel.UUID) error {
	if err := masterID.Validate(); err != nil {
		return err
	}

	c.masterID = masterID
	return nil
}

func (c *CreateMasterCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMasterCommand) setRating(rating float64) error {
	if rating < master.MinRating || rating > master.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, master.MinRating, master.MaxRating)
	}

	c.rating = rating
	return nil
}

func (c *CreateMasterCommand) setLocation(latitude float64, longitude float64) error {
	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
