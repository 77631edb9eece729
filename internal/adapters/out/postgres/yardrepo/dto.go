// Package yardrepo provides persistence for the yard slot registry. The
// table holds exactly one row per physical slot; rows are seeded once at
// startup and only their binding columns change afterwards.
package yardrepo

import (
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/yard"
	"yardgate/internal/pkg/errs"

	"github.com/google/uuid"
)

// SlotDTO represents one yard slot row.
type SlotDTO struct {
	SlotIndex   int        `gorm:"primaryKey;autoIncrement:false;column:slot_index"`
	ContainerID *uuid.UUID `gorm:"type:uuid;index"`
	Occupied    bool       `gorm:"not null"`
}

// TableName specifies the database table name for yard slots.
func (SlotDTO) TableName() string {
	return "yard_slots"
}

// fromDomain converts a slot value to its database representation.
func fromDomain(slot yard.Slot) SlotDTO {
	var containerID *uuid.UUID
	if slot.Occupied {
		raw := slot.ContainerID.Bytes()
		containerID = &raw
	}

	return SlotDTO{
		SlotIndex:   slot.Index,
		ContainerID: containerID,
		Occupied:    slot.Occupied,
	}
}

// bindingFromDTO extracts the container binding of an occupied slot row.
func bindingFromDTO(dto SlotDTO) (kernel.UUID, error) {
	if dto.ContainerID == nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError("containerID")
	}
	return kernel.UUIDFromBytes((*dto.ContainerID)[:])
}
