package masterrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMasterRepository implements ports.MasterRepository using GORM.
type GormMasterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMasterRepository creates a new GORM master repository.
func NewGormMasterRepository(db *gorm.DB, tracker aggregateTracker) *GormMasterRepository {
	return &GormMasterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new master to the database.
func (r *GormMasterRepository) Add(ctx context.Context, aggregate *master.Master) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing master to the database.
// Select("*") forces zero-valued columns through, so turning availability
// off is persisted.
func (r *GormMasterRepository) Update(ctx context.Context, aggregate *master.Master) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MasterDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a master by ID.
func (r *GormMasterRepository) Get(ctx context.Context, id kernel.UUID) (*master.Master, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MasterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("master", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every master regardless of availability.
func (r *GormMasterRepository) GetAll(ctx context.Context) ([]*master.Master, error) {
	var dtos []MasterDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves the masters currently accepting assignments.
func (r *GormMasterRepository) GetAllAvailable(ctx context.Context) ([]*master.Master, error) {
	var dtos []MasterDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_available = ?", true).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ActiveLoads derives the per-master count of orders in assigned or
// in_progress status. The counts are computed fresh on every call; nothing
// is cached, so assignment decisions never see a stale load.
func (r *GormMasterRepository) ActiveLoads(ctx context.Context) (map[kernel.UUID]int, error) {
	var rows []struct {
		MasterID uuid.UUID
		Count    int
	}

	err := r.db.WithContext(ctx).
		Table("orders").
		Select("master_id, COUNT(*) AS count").
		Where("master_id IS NOT NULL").
		Where("status IN ?", []int{int(order.Assigned), int(order.InProgress)}).
		Group("master_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	loads := make(map[kernel.UUID]int, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.MasterID[:])
		if err != nil {
			return nil, err
		}
		loads[id] = row.Count
	}

	return loads, nil
}

func toDomainSlice(dtos []MasterDTO) ([]*master.Master, error) {
	masters := make([]*master.Master, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}

	return masters, nil
}
