package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a combined order update: an optional status
// change and/or an optional full replacement of the item set, applied as one
// atomic operation. A nil status means "leave the status alone"; a nil items
// slice means "leave the items alone". Callers decide who may replace items
// before building the command; the handler only enforces the state machine
// and the pricing invariant.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  *order.Status
	items   []order.ItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a combined update command.
// A present status must be a member of the status set; a present items slice
// must be non-empty. Both may be absent, in which case the update degrades to
// a no-op refresh.
func NewUpdateOrderCommand(orderID kernel.UUID, status *order.Status, items []order.ItemSpec) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status, or nil when the status is not
// part of the patch.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Items returns the replacement item set, or nil when the items are not part
// of the patch.
func (c UpdateOrderCommand) Items() []order.ItemSpec {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setItems(items []order.ItemSpec) error {
	if items == nil {
		return nil
	}
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}
