package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"

	"entregas/internal/adapters/out/tangoconnect"
	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/ports"
)

// DefaultSyncInterval is used when no interval is configured.
const DefaultSyncInterval = 15 * time.Minute

type (
	PullHandler interface {
		Handle(ctx context.Context, cmd commands.SyncPendingInvoicesCommand) (commands.SyncPendingInvoicesResult, error)
	}

	PushHandler interface {
		Handle(ctx context.Context, cmd commands.PushDeliveryConfirmationsCommand) (commands.PushDeliveryConfirmationsResult, error)
	}

	// SyncRecorder receives the outcome of every cycle.
	SyncRecorder interface {
		Pulled(created int, err error)
		Pushed(err error)
		CycleFinished(d time.Duration)
		// AwaitingSync reports how many deliveries are still unacknowledged upstream.
		// It is not called when the cycle could not list them.
		AwaitingSync(n int)
	}
)

// SyncJobConfig configures SynchronizationJob. Zero values fall back to defaults.
type SyncJobConfig struct {
	Interval time.Duration

	// WebhookCallbackURL is registered with the invoicing system on Start when set.
	WebhookCallbackURL string

	// AuthRetryBackoff bounds the wait before the single retry of a pull that failed to
	// authenticate.
	AuthRetryBackoff time.Duration
}

// CycleReport summarizes one synchronization cycle.
type CycleReport struct {
	Pull    commands.SyncPendingInvoicesResult
	PullErr error
	Push    commands.PushDeliveryConfirmationsResult
	PushErr error
}

// SynchronizationJob pulls pending invoices and then pushes delivery confirmations on
// a fixed interval. Cycles never overlap; a tick that fires while a cycle is running
// is skipped.
type SynchronizationJob struct {
	pull      PullHandler
	push      PushHandler
	invoicing ports.InvoicingSystem
	recorder  SyncRecorder
	cfg       SyncJobConfig
	logger    *slog.Logger

	cron *cron.Cron

	// cycle serializes scheduled cycles with startup and manual runs.
	cycle sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewSynchronizationJob(
	pull PullHandler,
	push PushHandler,
	invoicing ports.InvoicingSystem,
	recorder SyncRecorder,
	cfg SyncJobConfig,
	logger *slog.Logger,
) *SynchronizationJob {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSyncInterval
	}
	if cfg.AuthRetryBackoff <= 0 {
		cfg.AuthRetryBackoff = 2 * time.Second
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	logger = logger.With("component", "synchronization_job")
	return &SynchronizationJob{
		pull:      pull,
		push:      push,
		invoicing: invoicing,
		recorder:  recorder,
		cfg:       cfg,
		logger:    logger,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
	}
}

// Start registers the webhook when configured and schedules the cycle.
// Cycles run with a context derived from ctx that Stop cancels.
func (j *SynchronizationJob) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	if j.cfg.WebhookCallbackURL != "" {
		if err := j.invoicing.RegisterWebhook(ctx, j.cfg.WebhookCallbackURL); err != nil {
			j.logger.WarnContext(ctx, "Webhook registration failed", "url", j.cfg.WebhookCallbackURL, "error", err)
		} else {
			j.logger.InfoContext(ctx, "Webhook registered", "url", j.cfg.WebhookCallbackURL)
		}
	}

	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.cfg.Interval), func() {
		j.RunOnce(runCtx)
	})
	if err != nil {
		cancel()
		return err
	}

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.cron.Start()
	j.logger.InfoContext(ctx, "Synchronization job started", "interval", j.cfg.Interval.String())
	return nil
}

// Stop cancels the running cycle, if any, and waits for it to return.
func (j *SynchronizationJob) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
	}
	j.mu.Unlock()

	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Synchronization job stopped")
}

// RunOnce runs a single cycle: the pull, then the push. A failed pull never prevents
// the push.
func (j *SynchronizationJob) RunOnce(ctx context.Context) CycleReport {
	j.cycle.Lock()
	defer j.cycle.Unlock()

	started := time.Now()
	var report CycleReport

	report.Pull, report.PullErr = j.pullWithAuthRetry(ctx)
	j.recorder.Pulled(report.Pull.Created, report.PullErr)
	if report.PullErr != nil {
		j.logger.ErrorContext(ctx, "Pull of pending invoices failed", "error", report.PullErr)
	} else {
		j.logger.InfoContext(ctx, "Pending invoices pulled",
			"received", len(report.Pull.Orders),
			"created", report.Pull.Created,
		)
	}

	cmd, _ := commands.NewPushDeliveryConfirmationsCommand()
	report.Push, report.PushErr = j.push.Handle(ctx, cmd)
	for range report.Push.Pushed {
		j.recorder.Pushed(nil)
	}
	for _, f := range report.Push.Failures {
		j.recorder.Pushed(f.Err)
		j.logger.WarnContext(ctx, "Delivery confirmation push failed", "invoice", f.InvoiceNumber, "error", f.Err)
	}

	j.recorder.CycleFinished(time.Since(started))
	if report.PushErr != nil {
		j.logger.ErrorContext(ctx, "Push of delivery confirmations failed",
			"pushed", report.Push.Pushed,
			"duration", time.Since(started).String(),
			"error", report.PushErr,
		)
		return report
	}

	awaiting := report.Push.Attempted - report.Push.Pushed
	j.recorder.AwaitingSync(awaiting)
	j.logger.InfoContext(ctx, "Synchronization cycle finished",
		"pushed", report.Push.Pushed,
		"awaiting", awaiting,
		"duration", time.Since(started).String(),
	)
	return report
}

// pullWithAuthRetry retries once when the credentials were rejected, which happens
// when the token expired between the cache check and the call.
func (j *SynchronizationJob) pullWithAuthRetry(ctx context.Context) (commands.SyncPendingInvoicesResult, error) {
	cmd, _ := commands.NewSyncPendingInvoicesCommand()

	op := func() (commands.SyncPendingInvoicesResult, error) {
		res, err := j.pull.Handle(ctx, cmd)
		if err != nil && !tangoconnect.IsAuthenticationError(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = j.cfg.AuthRetryBackoff
	policy.MaxInterval = j.cfg.AuthRetryBackoff

	return backoff.RetryWithData(op, backoff.WithContext(backoff.WithMaxRetries(policy, 1), ctx))
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

type nopRecorder struct{}

func (nopRecorder) Pulled(int, error) {}
func (nopRecorder) Pushed(error) {}
func (nopRecorder) CycleFinished(time.Duration) {}
func (nopRecorder) AwaitingSync(int) {}
