package queries

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserInvoicesQueryHandler retrieves a user's invoices from the
// database.
type GetUserInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetUserInvoicesQueryHandler creates a handler for invoice listing
// queries. Requires a GORM database connection for query execution.
func NewGetUserInvoicesQueryHandler(db *gorm.DB) GetUserInvoicesQueryHandler {
	return GetUserInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns all of the user's invoices,
// newest first.
func (h GetUserInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetUserInvoicesQuery,
) ([]GetUserInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetUserInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.invoice_number,
			i.status,
			i.total,
			i.due_date,
			i.paid_at,
			COUNT(ii.id),
			i.created_at
		FROM invoices i
		LEFT JOIN invoice_items ii ON ii.invoice_id = i.id
		WHERE i.user_id = ?
		GROUP BY i.id, i.invoice_number, i.status, i.total, i.due_date, i.paid_at, i.created_at
		ORDER BY i.created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUserInvoicesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.InvoiceNumber,
			&response.Status,
			&response.Total,
			&response.DueDate,
			&response.PaidAt,
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
