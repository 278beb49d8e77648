// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. Invoice rows and their item rows are written in
// the same transaction.
package invoicerepo

import (
	"time"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates.
type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string          `gorm:"size:20;uniqueIndex"`
	UserID        uuid.UUID       `gorm:"type:uuid;index"`
	Status        string          `gorm:"size:16;index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2)"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2)"`
	Fees          decimal.Decimal `gorm:"type:decimal(10,2)"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2)"`
	DueDate       time.Time
	PaidAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// ItemDTO represents one invoice line. Items are immutable after creation.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;index"`
	ParcelID    uuid.UUID       `gorm:"type:uuid;index"`
	Description string          `gorm:"size:500"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2)"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)"`
}

// TableName specifies the database table name for invoice items.
func (ItemDTO) TableName() string {
	return "invoice_items"
}

// fromDomain converts an invoice aggregate to its database representation,
// the item rows included.
func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, []ItemDTO) {
	dto := InvoiceDTO{
		ID:            aggregate.ID().Bytes(),
		InvoiceNumber: aggregate.InvoiceNumber(),
		UserID:        aggregate.UserID().Bytes(),
		Status:        aggregate.Status().String(),
		Subtotal:      aggregate.Subtotal(),
		Tax:           aggregate.Tax(),
		Fees:          aggregate.Fees(),
		Total:         aggregate.Total(),
		DueDate:       aggregate.DueDate(),
		PaidAt:        aggregate.PaidAt(),
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID.Bytes(),
			InvoiceID:   item.InvoiceID.Bytes(),
			ParcelID:    item.ParcelID.Bytes(),
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return dto, items
}

// toDomain converts database DTOs to an invoice aggregate using
// RestoreInvoice.
func toDomain(dto InvoiceDTO, itemDTOs []ItemDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]invoice.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return invoice.RestoreInvoice(
		id,
		dto.InvoiceNumber,
		userID,
		items,
		invoice.Status(dto.Status),
		dto.Subtotal,
		dto.Tax,
		dto.Fees,
		dto.Total,
		dto.DueDate,
		dto.PaidAt,
	)
}

func itemToDomain(dto ItemDTO) (invoice.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return invoice.Item{}, err
	}

	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return invoice.Item{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return invoice.Item{}, err
	}

	return invoice.Item{
		ID:          id,
		InvoiceID:   invoiceID,
		ParcelID:    parcelID,
		Description: dto.Description,
		Quantity:    dto.Quantity,
		UnitPrice:   dto.UnitPrice,
		Total:       dto.Total,
	}, nil
}
