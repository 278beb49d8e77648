package events

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/invoice"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/ports"
)

// SettlementAuditHandler writes an audit trail entry for every settled
// invoice. Subscribed to invoice.paid.
type SettlementAuditHandler struct {
	audit ports.AuditRecorder
}

// NewSettlementAuditHandler creates a handler recording settlements through
// the given audit recorder.
func NewSettlementAuditHandler(audit ports.AuditRecorder) SettlementAuditHandler {
	return SettlementAuditHandler{audit: audit}
}

// Handle records the settlement. The recorder itself is best-effort, so the
// only error path is an event of an unexpected type.
func (h SettlementAuditHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	paid, ok := event.(invoice.PaidEvent)
	if !ok {
		return fmt.Errorf("unexpected event %q", event.EventName())
	}

	h.audit.Log(ctx, paid.UserID, "invoice.settled", "invoice", paid.InvoiceID.String(),
		fmt.Sprintf("invoice %s settled for %s", paid.InvoiceNumber, paid.Total.StringFixed(2)))
	return nil
}
