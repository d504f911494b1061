package job

import (
	"context"
	"fmt"
	"log/slog"

	"service-storefront/internal"

	"github.com/robfig/cron/v3"
)

const DefaultRatesSchedule = "@every 1h"

type RatesReconciler interface {
	ColdStart(ctx context.Context) error
	ReconcileCycle(ctx context.Context) internal.ReconcileResult
}

// RatesJob is the handle of a running rates schedule.
type RatesJob struct {
	cron   *cron.Cron
	cancel context.CancelFunc
}

// StartRatesJob warms the cache from history, runs one cycle right away and
// then keeps reconciling on schedule. A cycle still running when the next
// tick fires makes that tick a no-op.
func StartRatesJob(ctx context.Context, engine RatesReconciler, schedule string, logger *slog.Logger) (*RatesJob, error) {
	if schedule == "" {
		schedule = DefaultRatesSchedule
	}

	if err := engine.ColdStart(ctx); err != nil {
		logger.Warn("rates cold start failed, cache stays empty", slog.String("error", err.Error()))
	}
	logResult(logger, engine.ReconcileCycle(ctx))

	jobCtx, cancel := context.WithCancel(ctx)
	cronLogger := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := c.AddFunc(schedule, func() {
		logResult(logger, engine.ReconcileCycle(jobCtx))
	}); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule rates job %q: %w", schedule, err)
	}

	c.Start()
	return &RatesJob{cron: c, cancel: cancel}, nil
}

// Stop prevents further runs, aborts in-flight fetches and waits for the
// running cycle to return, or for ctx.
func (j *RatesJob) Stop(ctx context.Context) {
	j.cancel()
	stopped := j.cron.Stop()

	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
}

func logResult(logger *slog.Logger, r internal.ReconcileResult) {
	if r.OK {
		logger.Info("rates updated", slog.Time("updated_at", r.UpdatedAt))
		return
	}
	logger.Warn("rates update failed, using cached",
		slog.Time("updated_at", r.UpdatedAt),
		slog.String("error", r.Error),
	)
}

// cronLogger routes cron's own messages into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.String("error", err.Error())}, keysAndValues...)...)
}
