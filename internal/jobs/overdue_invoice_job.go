package jobs

import (
	"context"
	"log/slog"

	"forwarding/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueInvoiceJob sweeps pending invoices past their due date into
// OVERDUE status. Runs hourly; the sweep itself is idempotent, so a missed
// or doubled run changes nothing.
type OverdueInvoiceJob struct {
	handler commands.MarkOverdueInvoicesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueInvoiceJob creates the hourly overdue sweep job.
func NewOverdueInvoiceJob(handler commands.MarkOverdueInvoicesCommandHandler, logger *slog.Logger) *OverdueInvoiceJob {
	return &OverdueInvoiceJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_invoice_job"),
	}
}

// Start begins the overdue sweep, running at the top of every hour.
func (j *OverdueInvoiceJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueInvoicesCommand()

		flagged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue invoice sweep failed", "error", handleErr)
			return
		}
		if flagged > 0 {
			j.logger.InfoContext(ctx, "Flagged overdue invoices", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue invoice job started (running hourly)")
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueInvoiceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue invoice job stopped")
}
