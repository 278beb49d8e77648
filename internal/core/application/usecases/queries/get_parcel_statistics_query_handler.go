package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelStatisticsQueryHandler computes parcel counts grouped by
// status.
type GetParcelStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelStatisticsQueryHandler creates a handler for parcel
// statistics queries. Requires a GORM database connection for query
// execution.
func NewGetParcelStatisticsQueryHandler(db *gorm.DB) GetParcelStatisticsQueryHandler {
	return GetParcelStatisticsQueryHandler{db: db}
}

// Handle executes the query and returns per-status counts plus the grand
// total.
func (h GetParcelStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatisticsQuery,
) (GetParcelStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelStatisticsQueryResponse{}, err
	}

	response := GetParcelStatisticsQueryResponse{
		ByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM parcels
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetParcelStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetParcelStatisticsQueryResponse{}, err
		}
		response.ByStatus[status] = count
		response.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetParcelStatisticsQueryResponse{}, err
	}

	return response, nil
}
