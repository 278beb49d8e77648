package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnpaidInvoicesQueryHandler retrieves a user's open invoices from the
// database.
type GetUnpaidInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpaidInvoicesQueryHandler creates a handler for open invoice
// queries. Requires a GORM database connection for query execution.
func NewGetUnpaidInvoicesQueryHandler(db *gorm.DB) GetUnpaidInvoicesQueryHandler {
	return GetUnpaidInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns the user's PENDING and OVERDUE
// invoices, most urgent due date first.
func (h GetUnpaidInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetUnpaidInvoicesQuery,
) ([]GetUnpaidInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetUnpaidInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.invoice_number,
			i.status,
			i.total,
			i.due_date,
			COUNT(ii.id),
			i.created_at
		FROM invoices i
		LEFT JOIN invoice_items ii ON ii.invoice_id = i.id
		WHERE i.user_id = ? AND i.status IN ('PENDING', 'OVERDUE')
		GROUP BY i.id, i.invoice_number, i.status, i.total, i.due_date, i.created_at
		ORDER BY i.due_date
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUnpaidInvoicesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.InvoiceNumber,
			&response.Status,
			&response.Total,
			&response.DueDate,
			&response.ItemCount,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = invoiceID
		invoices = append(invoices, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
