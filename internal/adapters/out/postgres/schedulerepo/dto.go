// Package schedulerepo provides data transfer objects and mapping functions
// for pre-arrival appointment persistence.
package schedulerepo

import (
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/schedule"

	"github.com/google/uuid"
)

// ScheduleDTO represents the database structure for persisting appointments.
type ScheduleDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContainerNumber string    `gorm:"type:varchar(32);not null;index"`
	ContainerType   string    `gorm:"type:varchar(16)"`
	ShippingLine    string    `gorm:"type:varchar(255)"`
	Location        string    `gorm:"type:varchar(255)"`
	Date            string    `gorm:"type:varchar(16);not null"`
	TimeOfDay       string    `gorm:"type:varchar(8)"`
	Status          int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for appointments.
func (ScheduleDTO) TableName() string {
	return "schedules"
}

// fromDomain converts a schedule aggregate to its database representation.
func fromDomain(appointment *schedule.Schedule) ScheduleDTO {
	return ScheduleDTO{
		ID:              appointment.ID().Bytes(),
		ContainerNumber: appointment.ContainerNumber(),
		ContainerType:   appointment.ContainerType(),
		ShippingLine:    appointment.ShippingLine(),
		Location:        appointment.Location(),
		Date:            appointment.Date(),
		TimeOfDay:       appointment.TimeOfDay(),
		Status:          int(appointment.Status()),
	}
}

// toDomain converts a database DTO to a schedule aggregate.
func toDomain(dto ScheduleDTO) (*schedule.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return schedule.RestoreSchedule(
		id,
		dto.ContainerNumber,
		dto.ContainerType,
		dto.ShippingLine,
		dto.Location,
		dto.Date,
		dto.TimeOfDay,
		schedule.Status(dto.Status),
	)
}
