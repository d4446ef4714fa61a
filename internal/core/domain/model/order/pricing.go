package order

import "commerce/internal/core/domain/model/kernel"

// Pricing is pure and deterministic: subtotals and totals are computed with
// fixed-point decimal arithmetic, so recomputing them on an unchanged item
// set always yields the same value.

// Subtotal computes the price of a single line: quantity * unitPrice.
func Subtotal(quantity int, unitPrice kernel.Money) kernel.Money {
	return unitPrice.MulInt(quantity)
}

// TotalOf computes the arithmetic sum of the subtotals of all items.
func TotalOf(items []*Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
