package jobs

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartPurger is the use case the cart expiry job drives.
type CartPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeStaleCartItemsCommand) (int64, error)
}

// CartExpiryJob removes cart lines older than the configured TTL on a cron schedule.
type CartExpiryJob struct {
	handler  CartPurger
	schedule string
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartExpiryJob creates the job. schedule is a standard five-field cron
// expression or a descriptor such as "@hourly".
func NewCartExpiryJob(handler CartPurger, schedule string, ttl time.Duration, logger *slog.Logger) *CartExpiryJob {
	return &CartExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		now:      time.Now,
		cron:     cron.New(),
		logger:   logger.With("component", "cart_expiry_job"),
	}
}

// Start registers the purge on the schedule and starts the scheduler.
func (j *CartExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one purge.
func (j *CartExpiryJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewPurgeStaleCartItemsCommand(j.now(), j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart expiry job misconfigured", "error", err)
		return
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart expiry job failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Stale cart items purged", "count", purged)
	}
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *CartExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart expiry job stopped")
}
