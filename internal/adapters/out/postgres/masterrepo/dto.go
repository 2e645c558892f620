// Package masterrepo provides data transfer objects and mapping functions
// for master persistence, plus the derived active-load query over the
// orders table.
package masterrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"

	"github.com/google/uuid"
)

// MasterDTO represents the database structure for persisting master
// aggregates.
type MasterDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"not null"`
	Rating      float64
	IsAvailable bool        `gorm:"index"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for master entities.
func (MasterDTO) TableName() string {
	return "masters"
}

// LocationDTO represents the embedded position coordinates within the
// masters table.
type LocationDTO struct {
	Lat float64
	Lng float64
}

// fromDomain converts a master domain aggregate to its database representation.
func fromDomain(aggregate *master.Master) MasterDTO {
	return MasterDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Rating:      aggregate.Rating(),
		IsAvailable: aggregate.IsAvailable(),
		Location: LocationDTO{
			Lat: aggregate.Location().Latitude(),
			Lng: aggregate.Location().Longitude(),
		},
	}
}

// toDomain converts a database row to a master domain aggregate using
// RestoreMaster.
func toDomain(dto MasterDTO) (*master.Master, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return master.RestoreMaster(id, dto.Name, dto.Rating, dto.IsAvailable, loc)
}
