package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBillingStatisticsQueryHandler computes revenue figures from the
// invoice and payment tables.
type GetBillingStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetBillingStatisticsQueryHandler creates a handler for billing
// statistics queries. Requires a GORM database connection for query
// execution.
func NewGetBillingStatisticsQueryHandler(db *gorm.DB) GetBillingStatisticsQueryHandler {
	return GetBillingStatisticsQueryHandler{db: db}
}

// Handle executes the query and returns invoice counts and totals by
// status plus the sum of completed payments.
func (h GetBillingStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetBillingStatisticsQuery,
) (GetBillingStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillingStatisticsQueryResponse{}, err
	}

	response := GetBillingStatisticsQueryResponse{
		InvoicesByStatus: make(map[string]int64),
		TotalInvoiced:    decimal.Zero,
		Outstanding:      decimal.Zero,
		Collected:        decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*), COALESCE(SUM(total), 0)
		FROM invoices
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetBillingStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		var total decimal.Decimal
		if err = rows.Scan(&status, &count, &total); err != nil {
			return GetBillingStatisticsQueryResponse{}, err
		}

		response.InvoicesByStatus[status] = count
		response.InvoiceCount += count
		response.TotalInvoiced = response.TotalInvoiced.Add(total)
		if status == "PENDING" || status == "OVERDUE" {
			response.Outstanding = response.Outstanding.Add(total)
		}
	}
	if err = rows.Err(); err != nil {
		return GetBillingStatisticsQueryResponse{}, err
	}

	var collected decimal.Decimal
	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'COMPLETED'
	`).Row()
	if err = row.Scan(&collected); err != nil {
		return GetBillingStatisticsQueryResponse{}, err
	}
	response.Collected = collected

	return response, nil
}
