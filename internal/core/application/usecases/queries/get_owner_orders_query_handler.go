package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOwnerOrdersQueryHandler reads one owner's orders straight from the
// database, bypassing the aggregate. Results carry the full projection
// including item lines.
type GetOwnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerOrdersQueryHandler creates a handler for owner order queries.
func NewGetOwnerOrdersQueryHandler(db *gorm.DB) GetOwnerOrdersQueryHandler {
	return GetOwnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first; an owner
// without orders yields an empty slice, not an error.
func (h GetOwnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			status,
			total_amount,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().String()).Rows()
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
