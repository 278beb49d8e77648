package queries

import (
	"errors"

	"forwarding/internal/pkg/guard"
)

var (
	ErrGetHubStatisticsQueryIsNotConstructed = errors.New(
		"GetHubStatisticsQuery must be created via NewGetHubStatisticsQuery constructor",
	)
)

// GetHubStatisticsQuery retrieves address allocation figures per hub.
// This is a parameterless query used by the admin dashboard.
type GetHubStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHubStatisticsQuery creates a query for hub statistics.
func NewGetHubStatisticsQuery() GetHubStatisticsQuery {
	return GetHubStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHubStatisticsQueryIsNotConstructed if validation fails.
func (q GetHubStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetHubStatisticsQueryIsNotConstructed)
}

// GetHubStatisticsQueryResponse is the allocation picture of one hub.
type GetHubStatisticsQueryResponse struct {
	Hub             string
	HubName         string
	IsActive        bool
	TotalAddresses  int64
	ActiveAddresses int64
}
