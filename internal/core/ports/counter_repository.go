package ports

import (
	"context"
)

// CounterKind identifies a family of durable sequences.
type CounterKind string

const (
	// CounterAddress numbers client addresses per hub; the scope is the
	// 3-letter hub code.
	CounterAddress CounterKind = "ADDRESS"

	// CounterTracking numbers tracking numbers per year; the scope is the
	// 4-digit year.
	CounterTracking CounterKind = "TRACKING"

	// CounterInvoice numbers invoices per year; the scope is the 4-digit
	// year.
	CounterInvoice CounterKind = "INVOICE"
)

// CounterRepository hands out durable, gapless sequence values.
//
// Next must be called inside an open unit-of-work transaction: it takes a
// row lock on the (kind, scope) counter that is held until the transaction
// ends, so concurrent callers for the same counter serialize, and a
// rollback of the enclosing transaction reverts the increment. Distinct
// (kind, scope) pairs never block each other.
type CounterRepository interface {
	// Next increments the counter and returns the new value. The first
	// call for a (kind, scope) pair returns 1.
	Next(ctx context.Context, kind CounterKind, scope string) (int64, error)
}
