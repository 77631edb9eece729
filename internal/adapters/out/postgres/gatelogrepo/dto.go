// Package gatelogrepo provides data transfer objects and mapping functions
// for the gate movement ledger. The ledger is append-only; the repository
// exposes no update or delete.
package gatelogrepo

import (
	"time"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LogEntryDTO represents one row of the gate movement ledger.
type LogEntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContainerNumber string    `gorm:"type:varchar(32);not null;index"`
	Movement        int       `gorm:"type:int;not null"`
	Plate           string    `gorm:"type:varchar(16)"`
	DriverName      string    `gorm:"type:varchar(255);not null"`
	InspectorName   string    `gorm:"type:varchar(255)"`
	CargoStatus     int       `gorm:"type:int;not null"`
	At              time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for gate ledger rows.
func (LogEntryDTO) TableName() string {
	return "gate_log"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *gate.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:              entry.ID().Bytes(),
		ContainerNumber: entry.ContainerNumber(),
		Movement:        int(entry.Movement()),
		Plate:           entry.Plate(),
		DriverName:      entry.DriverName(),
		InspectorName:   entry.InspectorName(),
		CargoStatus:     int(entry.CargoStatus()),
		At:              entry.At(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto LogEntryDTO) (*gate.LogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return gate.RestoreLogEntry(
		id,
		dto.ContainerNumber,
		gate.Movement(dto.Movement),
		dto.Plate,
		dto.DriverName,
		dto.InspectorName,
		container.CargoStatus(dto.CargoStatus),
		dto.At,
	)
}
