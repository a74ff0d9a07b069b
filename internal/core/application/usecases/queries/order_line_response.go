// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers run raw SQL
// against the database and return plain response structures, never domain
// aggregates and never a write.
package queries

import (
	"database/sql"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderLineResponse represents one stored order line as returned by queries.
type OrderLineResponse struct {
	ID           kernel.UUID
	GroupID      kernel.UUID
	Token        kernel.Token
	ItemName     string
	Quantity     int
	Addons       string
	CustomerName string
	UnitPrice    int
	LineTotal    int
	Status       order.Status
	CreatedAt    time.Time
}

// orderLineColumns is the select list every full-row query shares; the order
// must match scanOrderLines.
const orderLineColumns = `
	id,
	group_id,
	token,
	item_name,
	quantity,
	addons,
	customer_name,
	unit_price,
	line_total,
	status,
	created_at`

// scanOrderLines drains rows selected with orderLineColumns into responses.
func scanOrderLines(rows *sql.Rows) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	for rows.Next() {
		var (
			line        OrderLineResponse
			id, groupID uuid.UUID
			token       string
			status      string
		)

		err := rows.Scan(
			&id,
			&groupID,
			&token,
			&line.ItemName,
			&line.Quantity,
			&line.Addons,
			&line.CustomerName,
			&line.UnitPrice,
			&line.LineTotal,
			&status,
			&line.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		lineID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		line.ID = lineID

		lineGroupID, err := kernel.UUIDFromBytes(groupID[:])
		if err != nil {
			return nil, err
		}
		line.GroupID = lineGroupID

		lineToken, err := kernel.TokenFromString(token)
		if err != nil {
			return nil, err
		}
		line.Token = lineToken

		lineStatus, err := order.StatusFromString(status)
		if err != nil {
			return nil, err
		}
		line.Status = lineStatus

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
