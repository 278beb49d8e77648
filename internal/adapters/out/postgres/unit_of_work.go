// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Key Features:
//   - Transaction management across multiple repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Automatic rollback on transaction failures
//   - Repository factory pattern for consistent database connections
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.ParcelRepository().Add(ctx, parcel); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//
//	// Publish the domain events of the committed aggregates.
//	dispatcher.Dispatch(ctx, uow.PopEvents()...)
//
// Multi-Repository Transactions:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	// All operations within same transaction
//	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.PaymentRepository().Add(ctx, payment); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - The counter repository takes row locks; keep transactions short
package postgres

import (
	"context"

	"forwarding/internal/adapters/out/postgres/addressrepo"
	"forwarding/internal/adapters/out/postgres/counterrepo"
	"forwarding/internal/adapters/out/postgres/hubrepo"
	"forwarding/internal/adapters/out/postgres/invoicerepo"
	"forwarding/internal/adapters/out/postgres/parcelrepo"
	"forwarding/internal/adapters/out/postgres/paymentrepo"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// eventRaiser is implemented by aggregates that accumulate domain events.
type eventRaiser interface {
	PopEvents() []kernel.DomainEvent
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates persisted during the transaction.
// After a successful commit, PopEvents drains the domain events those
// aggregates raised so the caller can publish them; events of rolled-back
// transactions never surface.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction and
// drops the tracked aggregates, so their events are never published.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// PopEvents drains the domain events of every tracked aggregate, in
// persistence order, and clears the tracking list. Call after Commit.
func (uow *GormUnitOfWork) PopEvents() []kernel.DomainEvent {
	var events []kernel.DomainEvent
	for _, tracked := range uow.trackedAggregates {
		if raiser, ok := tracked.Aggregate.(eventRaiser); ok {
			events = append(events, raiser.PopEvents()...)
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}

// AddressRepository provides access to custom address persistence within the
// unit of work. Repository operations execute within the current transaction
// if one is active, otherwise on the main database connection.
func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn(), uow)
}

// HubRepository provides access to hub reference data within the unit of work.
func (uow *GormUnitOfWork) HubRepository() ports.HubRepository {
	return hubrepo.NewGormHubRepository(uow.conn(), uow)
}

// ParcelRepository provides access to parcel persistence within the unit of work.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// InvoiceRepository provides access to invoice persistence within the unit of work.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn(), uow)
}

// PaymentRepository provides access to payment persistence within the unit of work.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

// CounterRepository provides access to the durable sequence counters within
// the unit of work. Counter increments take row locks and therefore only
// make sense inside an active transaction.
func (uow *GormUnitOfWork) CounterRepository() ports.CounterRepository {
	return counterrepo.NewGormCounterRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as persisted within this unit
// of work. Repository implementations call it on Add and Update; the
// aggregates' domain events are later drained through PopEvents.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
