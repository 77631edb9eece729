package queries

import (
	"context"
	"strings"

	"yardgate/internal/core/domain/model/container"

	"gorm.io/gorm"
)

// GetDirectoryQueryHandler retrieves the record directory from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDirectoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDirectoryQueryHandler creates a handler for directory queries.
// Requires a GORM database connection for query execution.
func NewGetDirectoryQueryHandler(db *gorm.DB) GetDirectoryQueryHandler {
	return GetDirectoryQueryHandler{db: db}
}

// Handle executes the directory query. Rows are ordered by yard slot, with
// closed records last. The situation column is derived from the lifecycle
// state, never stored.
func (h GetDirectoryQueryHandler) Handle(
	ctx context.Context,
	query GetDirectoryQuery,
) ([]GetDirectoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := strings.Builder{}
	sql.WriteString(`
		SELECT
			internal_id,
			container_number,
			client,
			shipping_line,
			booking,
			terminal,
			cargo_status,
			state,
			billed
		FROM containers
		WHERE 1=1
	`)
	args := make([]any, 0, 4)

	if query.Terminal() != "" {
		sql.WriteString(" AND terminal = ?")
		args = append(args, query.Terminal())
	}

	if states := statesForSituation(query.Situation()); len(states) > 0 {
		sql.WriteString(" AND state IN ?")
		args = append(args, states)
	}

	if query.CargoStatus() != "" {
		// The constructor has already vetted the label.
		status, _ := container.CargoStatusFromString(query.CargoStatus())
		sql.WriteString(" AND cargo_status = ?")
		args = append(args, int(status))
	}

	if query.FreeText() != "" {
		sql.WriteString(" AND (container_number ILIKE ? OR client ILIKE ? OR booking ILIKE ?)")
		pattern := "%" + query.FreeText() + "%"
		args = append(args, pattern, pattern, pattern)
	}

	sql.WriteString(" ORDER BY state = ? ASC, internal_id ASC")
	args = append(args, int(container.Closed))

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	directory := make([]GetDirectoryQueryResponse, 0)
	for rows.Next() {
		var row GetDirectoryQueryResponse
		var cargoStatus, state int

		err = rows.Scan(
			&row.InternalID,
			&row.ContainerNumber,
			&row.Client,
			&row.ShippingLine,
			&row.Booking,
			&row.Terminal,
			&cargoStatus,
			&state,
			&row.Billed,
		)
		if err != nil {
			return nil, err
		}

		row.CargoStatus = container.CargoStatus(cargoStatus).String()
		row.State = container.State(state).String()
		row.Situation = situationFor(container.State(state))
		directory = append(directory, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return directory, nil
}

// situationFor projects a lifecycle state onto the directory's situation
// label: Created records are scheduled, Billed ones are on the road, Closed
// ones are delivered, and everything in between is physically in the yard.
func situationFor(state container.State) string {
	switch state {
	case container.Created:
		return SituationScheduled
	case container.Billed:
		return SituationInTransit
	case container.Closed:
		return SituationDelivered
	default:
		return SituationInYard
	}
}

// statesForSituation inverts the situation projection into the set of state
// values to filter on. An empty situation returns nil, meaning no filter.
func statesForSituation(situation string) []int {
	switch situation {
	case SituationScheduled:
		return []int{int(container.Created)}
	case SituationInYard:
		return []int{
			int(container.GateIn),
			int(container.Inspection),
			int(container.Ready),
			int(container.InYard),
			int(container.EmptyAlert),
			int(container.Full),
		}
	case SituationInTransit:
		return []int{int(container.Billed)}
	case SituationDelivered:
		return []int{int(container.Closed)}
	default:
		return nil
	}
}
