// Package notify pushes parcel updates to clients. The default adapter
// writes structured log records; a real channel (mail, SMS, push) slots in
// behind the same port.
package notify

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/kernel"
)

// SlogNotifier logs every notification instead of delivering it.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) SlogNotifier {
	return SlogNotifier{logger: logger}
}

// NotifyParcelReceived logs the warehouse arrival notice.
func (n SlogNotifier) NotifyParcelReceived(ctx context.Context, userID kernel.UUID, trackingNumber string) {
	n.logger.InfoContext(ctx, "notify: parcel received",
		"userId", userID.String(),
		"trackingNumber", trackingNumber)
}

// NotifyStatusChange logs the status update notice.
func (n SlogNotifier) NotifyStatusChange(ctx context.Context, userID kernel.UUID, trackingNumber, oldStatus, newStatus string) {
	n.logger.InfoContext(ctx, "notify: parcel status changed",
		"userId", userID.String(),
		"trackingNumber", trackingNumber,
		"oldStatus", oldStatus,
		"newStatus", newStatus)
}
