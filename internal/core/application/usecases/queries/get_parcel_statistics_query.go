package queries

import (
	"errors"

	"forwarding/internal/pkg/guard"
)

var (
	ErrGetParcelStatisticsQueryIsNotConstructed = errors.New(
		"GetParcelStatisticsQuery must be created via NewGetParcelStatisticsQuery constructor",
	)
)

// GetParcelStatisticsQuery retrieves operational counts over the whole
// parcel population. This is a parameterless query used by the admin
// dashboard.
type GetParcelStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelStatisticsQuery creates a query for parcel statistics.
func NewGetParcelStatisticsQuery() GetParcelStatisticsQuery {
	return GetParcelStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelStatisticsQueryIsNotConstructed if validation fails.
func (q GetParcelStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatisticsQueryIsNotConstructed)
}

// GetParcelStatisticsQueryResponse aggregates parcel counts by lifecycle
// position.
type GetParcelStatisticsQueryResponse struct {
	Total    int64
	ByStatus map[string]int64
}
