package services

import (
	"github.com/shopspring/decimal"
)

// Rate is the shipping tariff applied to a parcel: a flat base charge plus
// a per-pound weight charge.
type Rate struct {
	Base     decimal.Decimal
	PerPound decimal.Decimal
}

// DefaultRate is the tariff applied when a parcel has no category or its
// category carries no rates.
func DefaultRate() Rate {
	return Rate{
		Base:     decimal.NewFromFloat(10.00),
		PerPound: decimal.NewFromFloat(2.00),
	}
}

// Pricer is a domain service computing the shipping cost of a parcel.
//
// The cost is base + weight * perPound. Parcels without a recorded weight
// are charged the base rate only.
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// Cost computes the shipping charge for a parcel of the given weight, in
// pounds, under the given rate. A nil weight contributes nothing.
func (p Pricer) Cost(rate Rate, weight *decimal.Decimal) decimal.Decimal {
	cost := rate.Base
	if weight != nil {
		cost = cost.Add(weight.Mul(rate.PerPound))
	}
	return cost
}
