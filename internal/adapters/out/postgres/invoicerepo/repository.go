package invoicerepo

import (
	"context"
	"errors"
	"time"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice with all of its items.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing invoice. Items are immutable after creation and
// are not rewritten.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice with its items by ID.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetLatestForParcel retrieves the most recent invoice billing the given
// parcel, or nil when the parcel was never invoiced.
func (r *GormInvoiceRepository) GetLatestForParcel(ctx context.Context, parcelID kernel.UUID) (*invoice.Invoice, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN invoice_items ON invoice_items.invoice_id = invoices.id").
		Where("invoice_items.parcel_id = ?", parcelID.Bytes()).
		Order("invoices.created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetAllPendingPastDue retrieves every PENDING invoice whose due date has
// passed.
func (r *GormInvoiceRepository) GetAllPendingPastDue(ctx context.Context) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND due_date < ?", invoice.Pending.String(), time.Now()).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := r.load(ctx, dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// load attaches the item rows and restores the aggregate.
func (r *GormInvoiceRepository) load(ctx context.Context, dto InvoiceDTO) (*invoice.Invoice, error) {
	var items []ItemDTO
	if err := r.db.WithContext(ctx).Find(&items, "invoice_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}
