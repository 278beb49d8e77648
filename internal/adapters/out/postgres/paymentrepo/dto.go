// Package paymentrepo persists payment records. Payments are append-only;
// there is no update path.
package paymentrepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentDTO represents the database structure for payment records.
// Metadata holds method-specific details as jsonb, e.g. the cashier and
// change given for cash payments.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;index"`
	UserID        uuid.UUID       `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)"`
	Currency      string          `gorm:"size:3"`
	Method        string          `gorm:"size:16"`
	Status        string          `gorm:"size:16"`
	TransactionID string          `gorm:"size:64"`
	Metadata      datatypes.JSONMap
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment record to its database representation.
func fromDomain(record *payment.Payment) PaymentDTO {
	var metadata datatypes.JSONMap
	if record.Metadata() != nil {
		metadata = datatypes.JSONMap(record.Metadata())
	}

	return PaymentDTO{
		ID:            record.ID().Bytes(),
		InvoiceID:     record.InvoiceID().Bytes(),
		UserID:        record.UserID().Bytes(),
		Amount:        record.Amount(),
		Currency:      record.Currency(),
		Method:        record.Method().String(),
		Status:        record.Status().String(),
		TransactionID: record.TransactionID(),
		Metadata:      metadata,
		ProcessedAt:   record.ProcessedAt(),
	}
}

// toDomain converts a database DTO to a payment record using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var metadata map[string]any
	if dto.Metadata != nil {
		metadata = map[string]any(dto.Metadata)
	}

	return payment.RestorePayment(
		id,
		invoiceID,
		userID,
		dto.Amount,
		dto.Currency,
		payment.Method(dto.Method),
		payment.Status(dto.Status),
		dto.TransactionID,
		metadata,
		dto.ProcessedAt,
	)
}
