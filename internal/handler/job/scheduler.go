// Package job runs the periodic background work on robfig/cron.
package job

import (
	"context"
	"log/slog"
	"time"

	"court-slot-engine/internal/pkg/config"
	"court-slot-engine/internal/pkg/errs"
	"court-slot-engine/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Job is one periodic unit of work; Run reports how many items it handled.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) (int, error)
}

func Jobs(cfg config.JobsConfig, bookings commands.BookingCommands, outbox commands.OutboxCommands) []Job {
	return []Job{
		{
			Name: "outbox_dispatch",
			Spec: cfg.OutboxSpec,
			Run: func(ctx context.Context) (int, error) {
				return outbox.DispatchDue(ctx, cfg.BatchSize)
			},
		},
		{
			Name: "booking_completion",
			Spec: cfg.CompletionSpec,
			Run: func(ctx context.Context) (int, error) {
				return bookings.CompleteFinished(ctx, cfg.BatchSize)
			},
		},
		{
			Name: "pending_expiry",
			Spec: cfg.ExpirySpec,
			Run: func(ctx context.Context) (int, error) {
				return bookings.ExpireStalePending(ctx, cfg.PendingTTL, cfg.BatchSize)
			},
		},
	}
}

type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler registers jobs on a cron that skips a run while the previous one is still going.
func NewScheduler(jobs []Job) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{cron: c, ctx: ctx, cancel: cancel}

	for _, j := range jobs {
		run := s.wrap(j)
		if _, err := c.AddJob(j.Spec, cron.NewChain(cron.SkipIfStillRunning(logger)).Then(cron.FuncJob(run))); err != nil {
			cancel()
			return nil, errs.Wrap(err, "invalid schedule for job "+j.Name)
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) wrap(j Job) func() {
	log := slog.With("job", j.Name)
	return func() {
		started := time.Now()
		n, err := j.Run(s.ctx)
		if err != nil {
			log.ErrorContext(s.ctx, "job failed", "error", err, "duration_ms", time.Since(started).Milliseconds())
			return
		}
		if n > 0 {
			log.InfoContext(s.ctx, "job finished", "handled", n, "duration_ms", time.Since(started).Milliseconds())
		}
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug(msg, append([]any{"component", "cron"}, keysAndValues...)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error(msg, append([]any{"component", "cron", "error", err}, keysAndValues...)...)
}
