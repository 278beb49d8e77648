// Package counterrepo persists the durable sequence counters backing
// address, tracking and invoice numbering.
package counterrepo

// CounterDTO represents one durable sequence row. The (kind, scope)
// composite key identifies the counter: ADDRESS counters are scoped per
// hub code, TRACKING and INVOICE counters per year.
type CounterDTO struct {
	Kind  string `gorm:"primaryKey;size:16"`
	Scope string `gorm:"primaryKey;size:16"`
	Value int64  `gorm:"not null"`
}

// TableName specifies the database table name for sequence counters.
func (CounterDTO) TableName() string {
	return "counters"
}
