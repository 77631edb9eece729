// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/guard"
)

var ErrGetDirectoryQueryIsNotConstructed = errors.New(
	"GetDirectoryQuery must be created via NewGetDirectoryQuery constructor",
)

// Situation labels shown in the record directory. The situation is a coarse
// projection of the lifecycle state: where the container currently is from
// the client's point of view.
const (
	SituationScheduled = "AGENDADO"
	SituationInYard    = "NO PÁTIO"
	SituationInTransit = "EM TRÂNSITO"
	SituationDelivered = "ENTREGUE"
)

// GetDirectoryQuery retrieves the record directory: one row per container
// record, filterable by terminal, situation, cargo status, and free text
// over the container number, client, and booking columns. Empty filters
// match everything.
type GetDirectoryQuery struct {
	terminal    string
	situation   string
	cargoStatus string
	freeText    string

	guard guard.ConstructorGuard
}

// NewGetDirectoryQuery creates a directory query. The situation filter, when
// set, must be one of the directory's situation labels; the cargo status
// filter, when set, must be VAZIO or CHEIO.
func NewGetDirectoryQuery(terminal, situation, cargoStatus, freeText string) (GetDirectoryQuery, error) {
	switch situation {
	case "", SituationScheduled, SituationInYard, SituationInTransit, SituationDelivered:
	default:
		return GetDirectoryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"situation", fmt.Errorf("%q is not a known situation", situation))
	}

	if cargoStatus != "" {
		if _, err := container.CargoStatusFromString(cargoStatus); err != nil {
			return GetDirectoryQuery{}, err
		}
	}

	return GetDirectoryQuery{
		terminal:    terminal,
		situation:   situation,
		cargoStatus: cargoStatus,
		freeText:    freeText,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDirectoryQueryIsNotConstructed if validation fails.
func (q GetDirectoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDirectoryQueryIsNotConstructed)
}

// Terminal returns the terminal filter, empty for all terminals.
func (q GetDirectoryQuery) Terminal() string {
	return q.terminal
}

// Situation returns the situation filter, empty for all situations.
func (q GetDirectoryQuery) Situation() string {
	return q.situation
}

// CargoStatus returns the cargo status filter, empty for all statuses.
func (q GetDirectoryQuery) CargoStatus() string {
	return q.cargoStatus
}

// FreeText returns the free-text filter, empty for no text filtering.
func (q GetDirectoryQuery) FreeText() string {
	return q.freeText
}

// GetDirectoryQueryResponse represents one directory row in the read model.
type GetDirectoryQueryResponse struct {
	InternalID      int
	ContainerNumber string
	Client          string
	ShippingLine    string
	Booking         string
	Terminal        string
	CargoStatus     string
	State           string
	Situation       string
	Billed          bool
}
