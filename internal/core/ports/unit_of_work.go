package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control, hands out repositories bound to the transaction,
// and collects the domain events raised by tracked aggregates so the
// caller can publish them after a successful commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PopEvents drains the domain events of every aggregate persisted
	// through this unit of work, in persistence order. Call after Commit;
	// events of a rolled-back transaction must not be published.
	PopEvents() []kernel.DomainEvent

	// AddressRepository returns an AddressRepository bound to the current
	// transaction.
	AddressRepository() AddressRepository

	// HubRepository returns a HubRepository bound to the current
	// transaction.
	HubRepository() HubRepository

	// ParcelRepository returns a ParcelRepository bound to the current
	// transaction.
	ParcelRepository() ParcelRepository

	// InvoiceRepository returns an InvoiceRepository bound to the current
	// transaction.
	InvoiceRepository() InvoiceRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository

	// CounterRepository returns a CounterRepository bound to the current
	// transaction.
	CounterRepository() CounterRepository
}
