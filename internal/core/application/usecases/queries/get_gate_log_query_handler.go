package queries

import (
	"context"
	"strings"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"

	"gorm.io/gorm"
)

// GetGateLogQueryHandler retrieves gate ledger rows from the database.
type GetGateLogQueryHandler struct {
	db *gorm.DB
}

// NewGetGateLogQueryHandler creates a handler for gate ledger queries.
// Requires a GORM database connection for query execution.
func NewGetGateLogQueryHandler(db *gorm.DB) GetGateLogQueryHandler {
	return GetGateLogQueryHandler{db: db}
}

// Handle executes the gate ledger query, newest movements first.
func (h GetGateLogQueryHandler) Handle(
	ctx context.Context,
	query GetGateLogQuery,
) ([]GetGateLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			container_number,
			movement,
			plate,
			driver_name,
			inspector_name,
			cargo_status,
			at
		FROM gate_log
	`)
	args := make([]any, 0, 1)

	if query.ContainerNumber() != "" {
		sql.WriteString(" WHERE container_number = ?")
		args = append(args, query.ContainerNumber())
	}

	sql.WriteString(" ORDER BY at DESC")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetGateLogQueryResponse, 0)
	for rows.Next() {
		var row GetGateLogQueryResponse
		var movement, cargoStatus int

		err = rows.Scan(
			&row.ContainerNumber,
			&movement,
			&row.Plate,
			&row.DriverName,
			&row.InspectorName,
			&cargoStatus,
			&row.At,
		)
		if err != nil {
			return nil, err
		}

		row.Movement = gate.Movement(movement).String()
		row.CargoStatus = container.CargoStatus(cargoStatus).String()
		entries = append(entries, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
