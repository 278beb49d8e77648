// Package paymentgw initiates card charges. The local adapter only mints a
// charge reference; the processor integration that would redeem it lives
// outside this system, and the reference flows back in as the opaque
// transaction id of the recorded payment.
package paymentgw

import (
	"context"
	"fmt"
	"time"

	"forwarding/internal/core/ports"

	"github.com/google/uuid"
)

// LocalGateway issues charge references without contacting a processor.
type LocalGateway struct{}

// NewLocalGateway creates a local charge reference generator.
func NewLocalGateway() LocalGateway {
	return LocalGateway{}
}

// CreateChargeIntent mints a unique charge reference for the given amount.
func (LocalGateway) CreateChargeIntent(_ context.Context, amount, currency string, _ map[string]string) (ports.ChargeIntent, error) {
	reference := fmt.Sprintf("CHG-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	return ports.ChargeIntent{
		Reference: reference,
		Amount:    amount,
		Currency:  currency,
	}, nil
}
