package queries

import (
	"errors"
	"time"

	"yardgate/internal/pkg/guard"
)

var ErrGetGateLogQueryIsNotConstructed = errors.New(
	"GetGateLogQuery must be created via NewGetGateLogQuery constructor",
)

// GetGateLogQuery retrieves the gate movement ledger, optionally filtered by
// container number. The ledger is returned newest first, the order the gate
// office reads it in.
type GetGateLogQuery struct {
	containerNumber string

	guard guard.ConstructorGuard
}

// NewGetGateLogQuery creates a gate ledger query. An empty container number
// retrieves the whole ledger.
func NewGetGateLogQuery(containerNumber string) GetGateLogQuery {
	return GetGateLogQuery{
		containerNumber: containerNumber,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetGateLogQueryIsNotConstructed if validation fails.
func (q GetGateLogQuery) Validate() error {
	return q.guard.Validate(ErrGetGateLogQueryIsNotConstructed)
}

// ContainerNumber returns the container number filter, empty for the whole
// ledger.
func (q GetGateLogQuery) ContainerNumber() string {
	return q.containerNumber
}

// GetGateLogQueryResponse represents one gate ledger row in the read model.
type GetGateLogQueryResponse struct {
	ContainerNumber string
	Movement        string
	Plate           string
	DriverName      string
	InspectorName   string
	CargoStatus     string
	At              time.Time
}
