// Package order contains the order aggregate and its lifecycle rules.
//
// An Order is a purchase request owned by a user. It holds a status that moves
// through a fixed transition graph (pending -> processing -> completed, with
// cancellation possible before completion) and a monetary total derived from
// its line items. The total is never set by callers: it is recalculated by the
// aggregate whenever the item set changes, using the pure pricing functions in
// this package.
//
// Both Order and Item keep private fields and are created through validated
// constructors; Restore variants rebuild them from persistence.
package order
