package gatelogrepo

import (
	"context"

	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGateLogRepository implements GateLogRepository using GORM.
type GormGateLogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGateLogRepository creates a new GORM gate ledger repository.
func NewGormGateLogRepository(db *gorm.DB, tracker aggregateTracker) *GormGateLogRepository {
	return &GormGateLogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a movement entry to the ledger.
func (r *GormGateLogRepository) Add(ctx context.Context, entry *gate.LogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByContainerNumber retrieves all movements for a container number in
// chronological order.
func (r *GormGateLogRepository) GetByContainerNumber(ctx context.Context, containerNumber string) ([]*gate.LogEntry, error) {
	if containerNumber == "" {
		return nil, errs.NewValueIsRequiredError("containerNumber")
	}

	var dtos []LogEntryDTO
	err := r.db.WithContext(ctx).
		Order("at ASC").
		Find(&dtos, "container_number = ?", containerNumber).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*gate.LogEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
