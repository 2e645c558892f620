package master

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	// MinRating is the lowest rating a master can hold.
	MinRating float64 = 0
	// MaxRating is the highest rating a master can hold.
	MaxRating float64 = 5
)

var (
	// ErrMasterIsNotConstructed is returned when a Master instance was not created
	// through the NewMaster or RestoreMaster factory methods.
	ErrMasterIsNotConstructed = errors.New("Master must be created via NewMaster or RestoreMaster constructor")
)

// Master represents a service provider who can be assigned to orders.
// It is an aggregate root holding the provider's rating, current location
// and availability for new work.
//
// Master follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Rating is always within [MinRating, MaxRating]
//   - Must have a valid location
//   - Can only be created through NewMaster or RestoreMaster
//
// A master's active load (the count of orders currently assigned to or in
// progress with them) is derived from order storage and is intentionally
// not part of this aggregate.
type Master struct {
	// id is the unique identifier for the master
	id kernel.UUID

	// name is the master's display name
	name string

	// rating is the service quality score within [MinRating, MaxRating]
	rating float64

	// isAvailable reports whether the master accepts new assignments
	isAvailable bool

	// location is the master's current position
	location kernel.Location

	// isConstructed ensures the master was created via a constructor
	isConstructed bool
}

// NewMaster creates a new Master instance with validation.
// New masters start available for assignment.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (required)
//   - rating: quality score within [MinRating, MaxRating]
//   - location: validated current position
func NewMaster(id kernel.UUID, name string, rating float64, location kernel.Location) (*Master, error) {
	master := &Master{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		master.setID(id),
		master.setName(name),
		master.setRating(rating),
		master.setLocation(location),
	); err != nil {
		return nil, err
	}

	return master, nil
}

// RestoreMaster reconstructs a Master from its persisted state, including
// the stored availability flag. Intended for repositories rehydrating
// aggregates from the database.
func RestoreMaster(
	id kernel.UUID,
	name string,
	rating float64,
	isAvailable bool,
	location kernel.Location,
) (*Master, error) {
	master, err := NewMaster(id, name, rating, location)
	if err != nil {
		return nil, err
	}

	master.isAvailable = isAvailable
	return master, nil
}

// Validate ensures the Master instance was properly constructed.
//
// Returns ErrMasterIsNotConstructed if the master was not created via
// NewMaster or RestoreMaster.
func (m *Master) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMasterIsNotConstructed
	}

	return nil
}

// IsEqual compares two masters by their unique identifiers.
func (m *Master) IsEqual(other *Master) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the master's unique identifier.
func (m *Master) ID() kernel.UUID {
	return m.id
}

// Name returns the master's display name.
func (m *Master) Name() string {
	return m.name
}

// Rating returns the master's quality score.
func (m *Master) Rating() float64 {
	return m.rating
}

// IsAvailable reports whether the master accepts new assignments.
func (m *Master) IsAvailable() bool {
	return m.isAvailable
}

// Location returns the master's current position.
func (m *Master) Location() kernel.Location {
	return m.location
}

// SetAvailability toggles whether the master accepts new assignments.
// Availability does not affect orders the master already holds.
func (m *Master) SetAvailability(isAvailable bool) {
	m.isAvailable = isAvailable
}

// DistanceTo returns the great-circle distance in kilometers from the
// master's current position to the given location.
func (m *Master) DistanceTo(location kernel.Location) (float64, error) {
	return m.location.DistanceTo(location)
}

// setID validates and sets the master's unique identifier.
// This is a private method used only during construction.
func (m *Master) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

// setName validates and sets the master's display name.
// This is a private method used only during construction.
func (m *Master) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

// setRating validates and sets the master's rating.
// This is a private method used only during construction.
func (m *Master) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	m.rating = rating
	return nil
}

// setLocation validates and sets the master's current position.
// This is a private method used only during construction.
func (m *Master) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	m.location = location
	return nil
}
