package lineitemrepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenLockClassID namespaces the advisory locks used for token reservation
// so they cannot collide with any other advisory lock in the same database.
const tokenLockClassID = 900

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLineItemRepository creates a new GORM line-item repository.
func NewGormLineItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddBatch saves all given lines in one insert. GORM wraps the multi-row
// create in a transaction, so readers outside see either every line of the
// batch or none.
func (r *GormLineItemRepository) AddBatch(ctx context.Context, lines []*order.LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	dtos := make([]LineItemDTO, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(line))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, line := range lines {
		r.tracker.TrackAggregate(line.ID(), line)
	}
	return nil
}

// Update persists the current status of an existing line. Status is the only
// column this repository ever rewrites; everything else is immutable after
// AddBatch.
func (r *GormLineItemRepository) Update(ctx context.Context, line *order.LineItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Where("id = ?", line.ID().Bytes()).
		Update("status", line.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", line.ID().String())
	}

	r.tracker.TrackAggregate(line.ID(), line)
	return nil
}

// Get retrieves a line by ID.
func (r *GormLineItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a line and locks its row until the surrounding
// transaction ends. A concurrent writer on the same row blocks here and
// then reads the committed status of whoever won.
func (r *GormLineItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.LineItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByGroupForUpdate retrieves all lines of a group in creation order and
// locks their rows until the surrounding transaction ends.
func (r *GormLineItemRepository) GetByGroupForUpdate(
	ctx context.Context,
	groupID kernel.UUID,
) ([]*order.LineItem, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("created_at, id").
		Find(&dtos, "group_id = ?", groupID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByStatus retrieves all lines in the given status, oldest first.
func (r *GormLineItemRepository) GetAllByStatus(
	ctx context.Context,
	status order.Status,
) ([]*order.LineItem, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "status = ?", status.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByToken retrieves all lines holding the given token, oldest first.
func (r *GormLineItemRepository) GetAllByToken(
	ctx context.Context,
	token kernel.Token,
) ([]*order.LineItem, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "token = ?", token.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ReserveToken reports whether the token is free among stored lines and holds
// it for the calling transaction. The transaction-scoped advisory lock
// serializes concurrent submissions probing the same value, so the count
// below cannot race: the second submission waits, then sees the first one's
// insert and moves on to another candidate.
func (r *GormLineItemRepository) ReserveToken(ctx context.Context, token kernel.Token) (bool, error) {
	if err := token.Validate(); err != nil {
		return false, err
	}

	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", tokenLockClassID, token.Int()).Error
	if err != nil {
		return false, err
	}

	var count int64
	err = r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Where("token = ?", token.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// DeleteAll irreversibly removes every stored line.
func (r *GormLineItemRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM line_items").Error
}

func toDomainSlice(dtos []LineItemDTO) ([]*order.LineItem, error) {
	lines := make([]*order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
