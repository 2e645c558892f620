// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates, indexed for efficient querying by status and master
// assignment.
type OrderDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title         string      `gorm:"not null"`
	Description   string
	CustomerName  string
	CustomerPhone string
	Location      LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Status        int         `gorm:"index"`
	MasterID      *uuid.UUID  `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded service location coordinates within
// the orders table.
type LocationDTO struct {
	Lat float64
	Lng float64
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var masterID *uuid.UUID
	if id := aggregate.Master(); id != nil {
		raw := id.Bytes()
		masterID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Title:         aggregate.Title(),
		Description:   aggregate.Description(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		Location: LocationDTO{
			Lat: aggregate.Location().Latitude(),
			Lng: aggregate.Location().Longitude(),
		},
		Status:    int(aggregate.Status()),
		MasterID:  masterID,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder, so all structural invariants are re-checked on the way out
// of storage.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var masterID *kernel.UUID
	if dto.MasterID != nil {
		mID, masterErr := kernel.UUIDFromBytes((*dto.MasterID)[:])
		if masterErr != nil {
			return nil, masterErr
		}

		masterID = &mID
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Title,
		dto.Description,
		dto.CustomerName,
		dto.CustomerPhone,
		loc,
		order.Status(dto.Status),
		masterID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
