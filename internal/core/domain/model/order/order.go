package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a purchase request. It owns its line items
// exclusively and keeps its monetary total derived from them.
//
// Order maintains these invariants:
//   - totalAmount always equals the sum of its items' subtotals
//   - status is always a valid element of the status set and changes only
//     through the transition graph; self-transition is a silent no-op
//   - an order in a terminal status never has its items mutated again
//   - every order has at least one item
//   - ownerID is set once at creation and never changes
//
// The version field supports optimistic concurrency control: the repository
// refuses to persist an aggregate whose version no longer matches the stored
// row, so a losing concurrent writer fails cleanly instead of overwriting.
type Order struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	status      Status
	totalAmount kernel.Money
	items       []*Item
	version     int
	createdAt   time.Time
	updatedAt   time.Time

	// itemsReplaced flags that the item set was swapped since the aggregate
	// was loaded, so the repository must rewrite the item rows.
	itemsReplaced bool

	isConstructed bool
}

// NewOrder creates a new order for the given owner with the given line items.
// The order starts in Pending status with its total recalculated from the
// items. At least one item is required; every item is validated and its
// subtotal computed.
func NewOrder(id, ownerID kernel.UUID, specs []ItemSpec) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	if err := o.setItems(specs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The total is recalculated from the restored items rather than trusted,
// keeping the derivation authoritative on every load.
func RestoreOrder(
	id, ownerID kernel.UUID,
	status Status,
	items []*Item,
	version int,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not a positive version", version))
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items
	o.recalculateTotal()

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user owning the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the derived order total: the sum of all item subtotals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Items returns the order's line items. The slice is a copy; the items
// themselves are shared and must not be mutated by callers.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Version returns the optimistic concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsTerminal reports whether the order's status has no outgoing transitions.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// ItemsReplaced reports whether the item set was swapped since the aggregate
// was constructed or loaded. Repositories use it to decide whether item rows
// must be rewritten.
func (o *Order) ItemsReplaced() bool {
	return o.itemsReplaced
}

// ChangeStatus moves the order to a new status.
//
// Changing to the current status is an explicit no-op: it succeeds without
// touching the aggregate, emitting no update. Any other target is checked
// against the transition graph; an illegal move returns an
// InvalidStatusTransitionError carrying the legal transitions of the current
// status. Status changes never affect the items or the total.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	if !o.status.CanTransitionTo(newStatus) {
		return NewInvalidStatusTransitionError(o.status, newStatus)
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ReplaceItems swaps the order's entire item set for the given replacement.
// Each replacement item is validated and subtotaled like at creation, and the
// order total is recalculated. The item set of an order in a terminal status
// cannot be modified.
func (o *Order) ReplaceItems(specs []ItemSpec) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("order is in terminal status '%s'", o.status))
	}

	items, err := o.buildItems(specs)
	if err != nil {
		return err
	}

	o.items = items
	o.itemsReplaced = true
	o.recalculateTotal()
	o.touch()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(specs []ItemSpec) error {
	items, err := o.buildItems(specs)
	if err != nil {
		return err
	}

	o.items = items
	o.recalculateTotal()
	return nil
}

func (o *Order) buildItems(specs []ItemSpec) ([]*Item, error) {
	if len(specs) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]*Item, 0, len(specs))
	for _, spec := range specs {
		item, err := NewItem(o.id, spec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// recalculateTotal re-derives the order total from the current item set.
// Idempotent: recalculating on an unchanged item set yields the same value.
func (o *Order) recalculateTotal() {
	o.totalAmount = TotalOf(o.items)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}
