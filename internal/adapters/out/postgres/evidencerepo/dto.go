// Package evidencerepo provides data transfer objects and mapping functions
// for evidence persistence. Evidence rows are append-only and carry their
// free-form metadata as a JSON column.
package evidencerepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EvidenceDTO represents the database structure for persisting evidence
// records, indexed by owning order.
type EvidenceDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID   `gorm:"type:uuid;index;not null"`
	Kind       string      `gorm:"not null"`
	URL        string      `gorm:"not null"`
	Location   LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	CapturedAt time.Time   `gorm:"not null"`
	Meta       MetaJSON    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for evidence records.
func (EvidenceDTO) TableName() string {
	return "evidence"
}

// LocationDTO represents the embedded capture coordinates within the
// evidence table.
type LocationDTO struct {
	Lat float64
	Lng float64
}

// MetaJSON stores free-form metadata as a JSON column.
// A nil map is stored as SQL NULL.
type MetaJSON map[string]any

// Value implements driver.Valuer.
func (m MetaJSON) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *MetaJSON) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported meta column type %T", value)
	}
}

// fromDomain converts an evidence domain record to its database representation.
func fromDomain(record *evidence.Evidence) EvidenceDTO {
	return EvidenceDTO{
		ID:      record.ID().Bytes(),
		OrderID: record.OrderID().Bytes(),
		Kind:    string(record.Kind()),
		URL:     record.URL(),
		Location: LocationDTO{
			Lat: record.Location().Latitude(),
			Lng: record.Location().Longitude(),
		},
		CapturedAt: record.CapturedAt(),
		Meta:       MetaJSON(record.Meta()),
	}
}

// toDomain converts a database row to an evidence domain record using
// RestoreEvidence.
func toDomain(dto EvidenceDTO) (*evidence.Evidence, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return evidence.RestoreEvidence(
		id,
		orderID,
		evidence.Kind(dto.Kind),
		dto.URL,
		loc,
		dto.CapturedAt,
		map[string]any(dto.Meta),
	)
}
