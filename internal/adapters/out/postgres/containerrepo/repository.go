package containerrepo

import (
	"context"
	"errors"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContainerRepository implements ContainerRepository using GORM.
type GormContainerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContainerRepository creates a new GORM container repository.
func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new container record and its initial history.
func (r *GormContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing record. New ledger rows insert and existing ones
// rewrite in place, so the state column and the ledger stay in step within
// the surrounding transaction.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a record by ID.
func (r *GormContainerRepository) Get(ctx context.Context, id kernel.UUID) (*container.Container, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByInternalID retrieves the non-closed record bound to a yard slot.
func (r *GormContainerRepository) GetByInternalID(ctx context.Context, internalID int) (*container.Container, error) {
	var dto ContainerDTO
	err := r.preloaded(ctx).
		First(&dto, "internal_id = ? AND state <> ?", internalID, int(container.Closed)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("internalID", internalID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByNumber retrieves the non-closed record for a container number.
func (r *GormContainerRepository) GetActiveByNumber(ctx context.Context, containerNumber string) (*container.Container, error) {
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("containerNumber")
	}

	var dto ContainerDTO
	err := r.preloaded(ctx).
		First(&dto, "container_number = ? AND state <> ?", containerNumber, int(container.Closed)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("containerNumber", containerNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// preloaded returns a query with the history ledger loaded in seq order.
// Replay depends on that order.
func (r *GormContainerRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("seq ASC")
	})
}
