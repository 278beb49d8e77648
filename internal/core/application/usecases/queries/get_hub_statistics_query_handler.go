package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetHubStatisticsQueryHandler computes per-hub address allocation
// figures.
type GetHubStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetHubStatisticsQueryHandler creates a handler for hub statistics
// queries. Requires a GORM database connection for query execution.
func NewGetHubStatisticsQueryHandler(db *gorm.DB) GetHubStatisticsQueryHandler {
	return GetHubStatisticsQueryHandler{db: db}
}

// Handle executes the query and returns one row per registered hub,
// ordered by hub code. Hubs without any allocated address report zero
// counts.
func (h GetHubStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetHubStatisticsQuery,
) ([]GetHubStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	hubs := make([]GetHubStatisticsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			h.hub,
			h.hub_name,
			h.is_active,
			COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.status = 'ACTIVE')
		FROM hub_addresses h
		LEFT JOIN custom_addresses a ON a.hub = h.hub
		GROUP BY h.hub, h.hub_name, h.is_active
		ORDER BY h.hub
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetHubStatisticsQueryResponse

		err = rows.Scan(
			&response.Hub,
			&response.HubName,
			&response.IsActive,
			&response.TotalAddresses,
			&response.ActiveAddresses,
		)
		if err != nil {
			return nil, err
		}

		hubs = append(hubs, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hubs, nil
}
