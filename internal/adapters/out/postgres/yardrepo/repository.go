package yardrepo

import (
	"context"

	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/yard"
	"yardgate/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormYardSlotRepository implements YardSlotRepository using GORM.
type GormYardSlotRepository struct {
	db *gorm.DB
}

// NewGormYardSlotRepository creates a new GORM yard slot repository.
func NewGormYardSlotRepository(db *gorm.DB) *GormYardSlotRepository {
	return &GormYardSlotRepository{db: db}
}

// EnsureCapacity seeds free slot rows for indexes that do not exist yet.
// Existing rows keep their bindings, so repeated startups are safe.
func (r *GormYardSlotRepository) EnsureCapacity(ctx context.Context, capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, nil)
	}

	rows := make([]SlotDTO, 0, capacity)
	for index := range capacity {
		rows = append(rows, SlotDTO{SlotIndex: index, Occupied: false})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// GetArena loads every slot row and reconstructs the arena. Capacity is the
// row count, so it always matches what EnsureCapacity seeded.
func (r *GormYardSlotRepository) GetArena(ctx context.Context) (*yard.Arena, error) {
	var dtos []SlotDTO
	if err := r.db.WithContext(ctx).Order("slot_index ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("yardSlots", "slot registry is not seeded")
	}

	occupied := make(map[int]kernel.UUID)
	for _, dto := range dtos {
		if !dto.Occupied {
			continue
		}

		containerID, err := bindingFromDTO(dto)
		if err != nil {
			return nil, err
		}
		occupied[dto.SlotIndex] = containerID
	}

	return yard.RestoreArena(len(dtos), occupied)
}

// SaveSlot persists one slot's binding.
func (r *GormYardSlotRepository) SaveSlot(ctx context.Context, slot yard.Slot) error {
	dto := fromDomain(slot)

	result := r.db.WithContext(ctx).Model(&SlotDTO{}).
		Where("slot_index = ?", dto.SlotIndex).
		Updates(map[string]any{"container_id": dto.ContainerID, "occupied": dto.Occupied})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("slotIndex", slot.Index)
	}

	return nil
}
