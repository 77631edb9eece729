// Package containerrepo provides data transfer objects and mapping functions
// for container record persistence. This package implements the repository
// pattern for the container aggregate, handling the conversion between domain
// entities and database representations.
package containerrepo

import (
	"encoding/json"
	"time"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting container
// records. The history ledger lives in a child table keyed by (container, seq)
// so the row order of the ledger is explicit and stable.
type ContainerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	InternalID      int       `gorm:"type:int;not null;index"`
	ContainerNumber string    `gorm:"type:varchar(32);not null;index"`
	Client          string    `gorm:"type:varchar(255)"`
	ShippingLine    string    `gorm:"type:varchar(255)"`
	Booking         string    `gorm:"type:varchar(64)"`
	Terminal        string    `gorm:"type:varchar(255)"`
	CargoStatus     int       `gorm:"type:int;not null"`
	State           int       `gorm:"type:int;not null;index"`
	Billed          bool      `gorm:"not null"`
	History         []HistoryEntryDTO `gorm:"foreignKey:ContainerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for container records.
func (ContainerDTO) TableName() string {
	return "containers"
}

// HistoryEntryDTO represents one row of a record's history ledger. The
// composite primary key makes repeated saves of the same aggregate idempotent:
// existing seqs are rewritten in place and only new seqs insert.
type HistoryEntryDTO struct {
	ContainerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey;autoIncrement:false"`
	At          time.Time `gorm:"not null"`
	Event       int       `gorm:"type:int;not null"`
	Actor       string    `gorm:"type:varchar(255);not null"`
	Metadata    string    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for history ledger rows.
func (HistoryEntryDTO) TableName() string {
	return "container_history"
}

// fromDomain converts a container aggregate to its database representation.
func fromDomain(record *container.Container) (ContainerDTO, error) {
	recordID := record.ID().Bytes()
	history := record.History()
	rows := make([]HistoryEntryDTO, 0, len(history))

	for seq, entry := range history {
		var metadata string
		if len(entry.Metadata) > 0 {
			raw, err := json.Marshal(entry.Metadata)
			if err != nil {
				return ContainerDTO{}, err
			}
			metadata = string(raw)
		}

		rows = append(rows, HistoryEntryDTO{
			ContainerID: recordID,
			Seq:         seq,
			At:          entry.At,
			Event:       int(entry.Event),
			Actor:       entry.Actor,
			Metadata:    metadata,
		})
	}

	return ContainerDTO{
		ID:              recordID,
		InternalID:      record.InternalID(),
		ContainerNumber: record.ContainerNumber(),
		Client:          record.Client(),
		ShippingLine:    record.ShippingLine(),
		Booking:         record.Booking(),
		Terminal:        record.Terminal(),
		CargoStatus:     int(record.CargoStatus()),
		State:           int(record.State()),
		Billed:          record.Billed(),
		History:         rows,
	}, nil
}

// toDomain converts a database DTO to a container aggregate. The restore
// constructor replays the ledger, so a row whose state column drifted from
// its history fails here instead of leaking into the domain.
func toDomain(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	history := make([]container.HistoryEntry, 0, len(dto.History))
	for _, row := range dto.History {
		var metadata map[string]string
		if row.Metadata != "" {
			if err = json.Unmarshal([]byte(row.Metadata), &metadata); err != nil {
				return nil, err
			}
		}

		history = append(history, container.HistoryEntry{
			At:       row.At,
			Event:    container.Event(row.Event),
			Actor:    row.Actor,
			Metadata: metadata,
		})
	}

	return container.RestoreContainer(
		id,
		dto.InternalID,
		dto.ContainerNumber,
		dto.Client,
		dto.ShippingLine,
		dto.Booking,
		dto.Terminal,
		container.CargoStatus(dto.CargoStatus),
		container.State(dto.State),
		dto.Billed,
		history,
	)
}
