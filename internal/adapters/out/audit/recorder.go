// Package audit records sensitive operations. The default adapter writes
// structured log records; recording is best-effort and never fails the
// audited operation.
package audit

import (
	"context"
	"log/slog"

	"forwarding/internal/core/domain/model/kernel"
)

// SlogRecorder logs audit entries.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a recorder writing to the given logger.
func NewSlogRecorder(logger *slog.Logger) SlogRecorder {
	return SlogRecorder{logger: logger}
}

// Log writes one audit entry.
func (r SlogRecorder) Log(ctx context.Context, actorID kernel.UUID, action, resource, resourceID, description string) {
	r.logger.InfoContext(ctx, "audit",
		"actorId", actorID.String(),
		"action", action,
		"resource", resource,
		"resourceId", resourceID,
		"description", description)
}
