package evidencerepo

import (
	"context"

	"dispatch/internal/core/domain/model/evidence"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormEvidenceRepository implements ports.EvidenceRepository using GORM.
// Evidence is append-only, so the repository exposes no update or delete.
type GormEvidenceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEvidenceRepository creates a new GORM evidence repository.
func NewGormEvidenceRepository(db *gorm.DB, tracker aggregateTracker) *GormEvidenceRepository {
	return &GormEvidenceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new evidence record to the database.
func (r *GormEvidenceRepository) Add(ctx context.Context, record *evidence.Evidence) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAllByOrderID retrieves every evidence record for the order, oldest
// capture first.
func (r *GormEvidenceRepository) GetAllByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*evidence.Evidence, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EvidenceDTO
	err := r.db.WithContext(ctx).
		Order("captured_at ASC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*evidence.Evidence, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// HasValidPhoto reports whether at least one stored photo with capture
// coordinates and a capture timestamp exists for the order. The predicate
// runs against stored rows, independent of the structural checks performed
// at attach time.
func (r *GormEvidenceRepository) HasValidPhoto(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EvidenceDTO{}).
		Where("order_id = ? AND kind = ?", orderID.Bytes(), string(evidence.KindPhoto)).
		Where("location_lat IS NOT NULL AND location_lng IS NOT NULL").
		Where("captured_at IS NOT NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
