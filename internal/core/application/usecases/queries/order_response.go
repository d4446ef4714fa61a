package queries

import (
	"context"
	"database/sql"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is the read-side projection of an order. Amounts are
// reported as fixed-point money values and the status as its lowercase
// string name.
type OrderResponse struct {
	ID          kernel.UUID
	OwnerID     kernel.UUID
	Status      string
	TotalAmount kernel.Money
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItemResponse
}

// OrderItemResponse is the read-side projection of a single order line.
type OrderItemResponse struct {
	ID          kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// scanOrders reads order rows projected as
// (id, owner_id, status, total_amount, version, created_at, updated_at)
// and returns the responses together with the raw identifiers, preserving
// row order. Items are attached separately.
func scanOrders(rows *sql.Rows) ([]OrderResponse, []uuid.UUID, error) {
	orders := make([]OrderResponse, 0)
	rawIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			ownerID     uuid.UUID
			status      int
			totalAmount decimal.Decimal
			version     int
			createdAt   time.Time
			updatedAt   time.Time
		)

		if err := rows.Scan(&id, &ownerID, &status, &totalAmount, &version, &createdAt, &updatedAt); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		orders = append(orders, OrderResponse{
			ID:          orderID,
			OwnerID:     owner,
			Status:      order.Status(status).String(),
			TotalAmount: kernel.MoneyFromDecimal(totalAmount),
			Version:     version,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		})
		rawIDs = append(rawIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, rawIDs, nil
}

// attachOrderItems joins the grouped item lines back onto the order
// responses by position.
func attachOrderItems(orders []OrderResponse, rawIDs []uuid.UUID, itemsByOrder map[uuid.UUID][]OrderItemResponse) {
	for i := range orders {
		orders[i].Items = itemsByOrder[rawIDs[i]]
	}
}

// loadOrderItems fetches the item lines for a batch of orders in one query
// and groups them by order identifier.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderItemResponse, error) {
	itemsByOrder := make(map[uuid.UUID][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			quantity,
			unit_price,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY product_name
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderID     uuid.UUID
			productName string
			quantity    int
			unitPrice   decimal.Decimal
			subtotal    decimal.Decimal
		)

		if err = rows.Scan(&id, &orderID, &productName, &quantity, &unitPrice, &subtotal); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		itemsByOrder[orderID] = append(itemsByOrder[orderID], OrderItemResponse{
			ID:          itemID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   kernel.MoneyFromDecimal(unitPrice),
			Subtotal:    kernel.MoneyFromDecimal(subtotal),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
