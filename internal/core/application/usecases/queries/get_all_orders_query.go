package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves orders across all owners, newest first, with
// optional status and owner filters and an optional result limit. A nil
// filter means "do not filter"; a zero limit means "no limit".
type GetAllOrdersQuery struct {
	status  *order.Status
	ownerID *kernel.UUID
	limit   int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a filtered listing query. A present status
// must be a member of the status set and the limit must not be negative.
func NewGetAllOrdersQuery(status *order.Status, ownerID *kernel.UUID, limit int) (GetAllOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	if limit < 0 {
		return GetAllOrdersQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetAllOrdersQuery{
		status:  status,
		ownerID: ownerID,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unfiltered.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// OwnerID returns the owner filter, or nil when unfiltered.
func (q GetAllOrdersQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}

// Limit returns the maximum number of orders to return, zero meaning all.
func (q GetAllOrdersQuery) Limit() int {
	return q.limit
}
