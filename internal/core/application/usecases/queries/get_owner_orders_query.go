package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetOwnerOrdersQueryIsNotConstructed = errors.New(
	"GetOwnerOrdersQuery must be created via NewGetOwnerOrdersQuery constructor",
)

// GetOwnerOrdersQuery retrieves all orders belonging to one owner,
// newest first.
type GetOwnerOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerOrdersQuery creates a query for a single owner's orders.
func NewGetOwnerOrdersQuery(ownerID kernel.UUID) (GetOwnerOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOwnerOrdersQuery{}, err
	}

	return GetOwnerOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerOrdersQueryIsNotConstructed)
}

// OwnerID returns the owner whose orders are requested.
func (q GetOwnerOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
