package schedulerepo

import (
	"context"
	"errors"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/schedule"
	"yardgate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormScheduleRepository implements ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormScheduleRepository creates a new GORM schedule repository.
func NewGormScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormScheduleRepository {
	return &GormScheduleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new appointment to the database.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
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

// Update saves an existing appointment to the database.
func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *schedule.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ScheduleDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an appointment by ID.
func (r *GormScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("schedule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every PENDENTE appointment, oldest first.
func (r *GormScheduleRepository) GetAllPending(ctx context.Context) ([]*schedule.Schedule, error) {
	var dtos []ScheduleDTO
	err := r.db.WithContext(ctx).
		Order("date ASC, time_of_day ASC").
		Find(&dtos, "status = ?", int(schedule.Pendente)).Error
	if err != nil {
		return nil, err
	}

	appointments := make([]*schedule.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		appointment, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}
