// Package lineitemrepo provides data transfer objects and mapping functions
// for order line persistence. Implements the repository pattern for the
// LineItem aggregate, converting between the domain model and the line_items
// table.
package lineitemrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// LineItemDTO represents the database structure for persisting order lines.
// Status is stored as its verbatim string because status filters and the
// progress ordering depend on the vocabulary, not on an enum encoding.
// Token, status and created_at carry indexes for the three read paths:
// token lookup, status partition, chronological ordering.
type LineItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID      uuid.UUID `gorm:"type:uuid;index"`
	Token        string    `gorm:"type:varchar(3);index"`
	ItemName     string
	Quantity     int
	Addons       string
	CustomerName string
	UnitPrice    int
	LineTotal    int
	Status       string    `gorm:"index"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for order lines.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts a LineItem aggregate to its database representation.
func fromDomain(line *order.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:           line.ID().Bytes(),
		GroupID:      line.GroupID().Bytes(),
		Token:        line.Token().String(),
		ItemName:     line.ItemName(),
		Quantity:     line.Quantity(),
		Addons:       line.Addons(),
		CustomerName: line.CustomerName(),
		UnitPrice:    line.UnitPrice(),
		LineTotal:    line.LineTotal(),
		Status:       line.Status().String(),
		CreatedAt:    line.CreatedAt(),
	}
}

// toDomain converts a database DTO to a LineItem aggregate using
// RestoreLineItem, which accepts any valid persisted status.
func toDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.GroupID[:])
	if err != nil {
		return nil, err
	}

	token, err := kernel.TokenFromString(dto.Token)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(
		id,
		groupID,
		token,
		dto.ItemName,
		dto.Quantity,
		dto.Addons,
		dto.CustomerName,
		dto.UnitPrice,
		dto.CreatedAt,
		status,
	)
}
