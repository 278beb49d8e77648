package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCashPaymentsQueryHandler retrieves counter cash payments from the
// database.
type GetCashPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetCashPaymentsQueryHandler creates a handler for cash payment
// queries. Requires a GORM database connection for query execution.
func NewGetCashPaymentsQueryHandler(db *gorm.DB) GetCashPaymentsQueryHandler {
	return GetCashPaymentsQueryHandler{db: db}
}

// Handle executes the query and returns the range's cash payments in
// processing order, with the total collected.
func (h GetCashPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetCashPaymentsQuery,
) (GetCashPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCashPaymentsQueryResponse{}, err
	}

	response := GetCashPaymentsQueryResponse{
		Payments:       make([]GetCashPaymentsQueryRecord, 0),
		TotalCollected: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			i.invoice_number,
			p.amount,
			p.transaction_id,
			COALESCE(p.metadata->>'receivedBy', ''),
			p.processed_at
		FROM payments p
		JOIN invoices i ON i.id = p.invoice_id
		WHERE p.method = 'CASH'
		  AND p.processed_at >= ?
		  AND p.processed_at < ?
		ORDER BY p.processed_at
	`, query.From(), query.To()).Rows()
	if err != nil {
		return GetCashPaymentsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetCashPaymentsQueryRecord
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&record.InvoiceNumber,
			&record.Amount,
			&record.TransactionID,
			&record.ReceivedBy,
			&record.ProcessedAt,
		)
		if err != nil {
			return GetCashPaymentsQueryResponse{}, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCashPaymentsQueryResponse{}, idErr
		}
		record.ID = paymentID

		response.Payments = append(response.Payments, record)
		response.TotalCollected = response.TotalCollected.Add(record.Amount)
	}

	if err = rows.Err(); err != nil {
		return GetCashPaymentsQueryResponse{}, err
	}

	return response, nil
}
