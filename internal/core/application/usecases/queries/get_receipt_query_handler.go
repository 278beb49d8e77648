package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetReceiptQueryHandler assembles the data printed on a payment receipt:
// the invoice, its lines with tracking numbers, the client's display data
// and the latest completed payment. Rendering itself is the receipt
// printer's job.
type GetReceiptQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiptQueryHandler creates a handler for receipt queries.
// Requires a GORM database connection for query execution.
func NewGetReceiptQueryHandler(db *gorm.DB) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{db: db}
}

// Handle executes the query. An unknown invoice fails with
// ObjectNotFoundError; an invoice without a completed payment yet is
// returned with a nil Payment.
func (h GetReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetReceiptQuery,
) (services.ReceiptData, error) {
	if err := query.Validate(); err != nil {
		return services.ReceiptData{}, err
	}

	var data services.ReceiptData
	var userID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT invoice_number, user_id, subtotal, tax, fees, total, created_at
		FROM invoices
		WHERE id = ?
	`, query.InvoiceID().Bytes()).Row()
	err := row.Scan(&data.InvoiceNumber, &userID, &data.Subtotal, &data.Tax, &data.Fees, &data.Total, &data.IssuedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return services.ReceiptData{}, errs.NewObjectNotFoundError("invoiceId", query.InvoiceID())
		}
		return services.ReceiptData{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT first_name || ' ' || last_name, email
		FROM users
		WHERE id = ?
	`, userID).Row()
	if err = row.Scan(&data.ClientName, &data.ClientEmail); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return services.ReceiptData{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(p.tracking_number, ''), ii.description, ii.total
		FROM invoice_items ii
		LEFT JOIN parcels p ON p.id = ii.parcel_id
		WHERE ii.invoice_id = ?
	`, query.InvoiceID().Bytes()).Rows()
	if err != nil {
		return services.ReceiptData{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line services.ReceiptLine
		if err = rows.Scan(&line.TrackingNumber, &line.Description, &line.Total); err != nil {
			return services.ReceiptData{}, err
		}
		data.Lines = append(data.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return services.ReceiptData{}, err
	}

	var method, changeGiven, transactionID string
	var amount decimal.Decimal
	var processedAt time.Time

	row = h.db.WithContext(ctx).Raw(`
		SELECT method, amount, COALESCE(metadata->>'changeGiven', ''), transaction_id, processed_at
		FROM payments
		WHERE invoice_id = ? AND status = 'COMPLETED'
		ORDER BY processed_at DESC
		LIMIT 1
	`, query.InvoiceID().Bytes()).Row()
	switch err = row.Scan(&method, &amount, &changeGiven, &transactionID, &processedAt); {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return services.ReceiptData{}, err
	default:
		change := decimal.Zero
		if changeGiven != "" {
			if change, err = decimal.NewFromString(changeGiven); err != nil {
				change = decimal.Zero
			}
		}
		data.Payment = &services.ReceiptPayment{
			Method:        method,
			Amount:        amount,
			ChangeGiven:   change,
			ProcessedAt:   processedAt,
			TransactionID: transactionID,
		}
	}

	return data, nil
}
