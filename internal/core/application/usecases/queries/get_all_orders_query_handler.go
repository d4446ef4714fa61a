package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders across all owners with optional
// filters, reading projections straight from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order listing query.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. Filters combine with AND; results come back
// newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Select("id", "owner_id", "status", "total_amount", "version", "created_at", "updated_at").
		Order("created_at DESC")

	if query.Status() != nil {
		tx = tx.Where("status = ?", int(*query.Status()))
	}
	if query.OwnerID() != nil {
		tx = tx.Where("owner_id = ?", query.OwnerID().String())
	}
	if query.Limit() > 0 {
		tx = tx.Limit(query.Limit())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, rawIDs, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := loadOrderItems(ctx, h.db, rawIDs)
	if err != nil {
		return nil, err
	}
	attachOrderItems(orders, rawIDs, itemsByOrder)

	return orders, nil
}
