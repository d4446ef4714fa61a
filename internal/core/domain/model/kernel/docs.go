// Package kernel contains the shared value objects of the commerce domain.
//
// It provides UUID, an identifier value object wrapping github.com/google/uuid,
// and Money, a fixed-point monetary value object backed by
// github.com/shopspring/decimal. Both are immutable, safe for concurrent use,
// and are created through their constructor functions.
package kernel
