package counterrepo

import (
	"context"

	"forwarding/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCounterRepository implements CounterRepository using GORM.
//
// Next relies on row-level locking and must run inside an open transaction:
// the SELECT ... FOR UPDATE taken on the counter row serializes concurrent
// callers of the same (kind, scope) until the enclosing transaction ends,
// and a rollback reverts the increment. Counters for distinct (kind, scope)
// pairs do not block each other.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Next increments the (kind, scope) counter and returns the new value.
// The first call for a counter returns 1.
func (r *GormCounterRepository) Next(ctx context.Context, kind ports.CounterKind, scope string) (int64, error) {
	db := r.db.WithContext(ctx)

	// Provision the row on first use. DO NOTHING keeps concurrent
	// provisioning race-free without failing either transaction.
	seed := CounterDTO{Kind: string(kind), Scope: scope, Value: 0}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var dto CounterDTO
	err := db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "kind = ? AND scope = ?", string(kind), scope).Error
	if err != nil {
		return 0, err
	}

	dto.Value++
	if err := db.Save(&dto).Error; err != nil {
		return 0, err
	}

	return dto.Value, nil
}
