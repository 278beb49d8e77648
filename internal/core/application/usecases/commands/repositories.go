// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventSource exposes the domain events of the aggregates persisted
	// through a unit of work. Handlers drain it after a successful commit
	// and hand the events to the publisher.
	EventSource interface {
		PopEvents() []kernel.DomainEvent
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// HubRepoFactory provides access to the hub repository within a transaction.
	HubRepoFactory interface {
		HubRepository() ports.HubRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// CounterRepoFactory provides access to the sequence counters within a transaction.
	CounterRepoFactory interface {
		CounterRepository() ports.CounterRepository
	}

	// AddressUoW manages transactions for address allocation and
	// maintenance. The counter repository hands out the hub-local
	// sequence values under the transaction's row lock.
	AddressUoW interface {
		TxManager
		EventSource
		AddressRepoFactory
		HubRepoFactory
		CounterRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// ParcelUoW manages transactions for parcel intake and status updates.
	ParcelUoW interface {
		TxManager
		EventSource
		ParcelRepoFactory
		AddressRepoFactory
		CounterRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// BillingUoW manages transactions spanning invoices, payments and the
	// parcels they settle. Used by invoice generation and both payment
	// flows, which mutate several aggregate types atomically.
	BillingUoW interface {
		TxManager
		EventSource
		InvoiceRepoFactory
		PaymentRepoFactory
		ParcelRepoFactory
		CounterRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}
)

// EventPublisher delivers domain events collected by a unit of work after
// its transaction committed. Publishing is best-effort: implementations
// log handler failures and never propagate them back into the command.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent)
}
