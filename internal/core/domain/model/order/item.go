package order

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Field constraints for order items.
const (
	MaxProductNameLength = 255
	MinQuantity          = 1
	MaxQuantity          = 1000
)

// Unit price bounds, inclusive.
var (
	minUnitPrice = kernel.MoneyFromDecimal(decimal.RequireFromString("0.01"))
	maxUnitPrice = kernel.MoneyFromDecimal(decimal.RequireFromString("999999.99"))
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemSpec carries the caller-supplied fields of a line item.
// The subtotal is never supplied; it is derived.
type ItemSpec struct {
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
}

// Item is a single line entry within an order: a product name, a quantity,
// a unit price, and a derived subtotal. Items belong exclusively to one order
// and are deleted with it.
//
// Invariants:
//   - productName is non-empty and at most 255 characters
//   - quantity is between 1 and 1000 inclusive
//   - unitPrice is between 0.01 and 999999.99 inclusive
//   - subtotal always equals quantity * unitPrice
type Item struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	subtotal    kernel.Money

	isConstructed bool
}

// NewItem creates a line item for the given order, assigning it a fresh
// identifier and computing its subtotal. Returns a validation error if any
// field violates its constraints.
func NewItem(orderID kernel.UUID, spec ItemSpec) (*Item, error) {
	return newItem(kernel.NewUUID(), orderID, spec)
}

// RestoreItem reconstructs a line item from persistence.
// The subtotal is recomputed rather than trusted, keeping the derivation
// authoritative on every load.
func RestoreItem(id, orderID kernel.UUID, productName string, quantity int, unitPrice kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return newItem(id, orderID, ItemSpec{
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
}

func newItem(id, orderID kernel.UUID, spec ItemSpec) (*Item, error) {
	item := &Item{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setProductName(spec.ProductName),
		item.setQuantity(spec.Quantity),
		item.setUnitPrice(spec.UnitPrice),
	); err != nil {
		return nil, err
	}

	item.subtotal = Subtotal(item.quantity, item.unitPrice)
	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductName returns the free-text product name.
func (i *Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns the derived line price: quantity * unitPrice.
func (i *Item) Subtotal() kernel.Money {
	return i.subtotal
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	if len(name) > MaxProductNameLength {
		return errs.NewValueIsOutOfRangeError("productName length", len(name), 1, MaxProductNameLength)
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if price.LessThan(minUnitPrice) || price.GreaterThan(maxUnitPrice) {
		return errs.NewValueIsOutOfRangeError("unitPrice", price.String(), minUnitPrice.String(), maxUnitPrice.String())
	}
	i.unitPrice = price
	return nil
}
