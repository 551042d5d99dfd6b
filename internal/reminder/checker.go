package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/state"

	"github.com/robfig/cron/v3"
)

type Status struct {
	Pending   []Reminder `json:"pending"`
	Supported bool       `json:"supported"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
}

type PermissionResult struct {
	Granted bool   `json:"granted"`
	Message string `json:"message"`
}

// Checker periodically looks for missing temperature readings and notifies
// at most once per (date, slot).
type Checker struct {
	app      *state.App
	notifier Notifier // nil when notifications are unsupported
	log      *slog.Logger

	mu        sync.Mutex
	sent      map[string]bool
	sentDate  string
	checkedAt *time.Time
}

func NewChecker(app *state.App, notifier Notifier) *Checker {
	return &Checker{
		app:      app,
		notifier: notifier,
		log:      app.Logger().With(slog.String("component", "reminder")),
		sent:     make(map[string]bool),
	}
}

func (c *Checker) pending() []Reminder {
	snap := c.app.Snapshot()
	return Pending(snap.Settings, snap.Temperatures, c.app.Now())
}

// Status recomputes the pending reminders as of now.
func (c *Checker) Status() Status {
	c.mu.Lock()
	checkedAt := c.checkedAt
	c.mu.Unlock()

	return Status{
		Pending:   c.pending(),
		Supported: c.notifier != nil,
		CheckedAt: checkedAt,
	}
}

// Check recomputes the pending reminders and notifies the ones not yet sent.
// Delivery failures are logged and retried on the next check.
func (c *Checker) Check(ctx context.Context) Status {
	now := c.app.Now()
	pending := c.pending()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkedAt = &now
	if today := engine.FormatDate(now); today != c.sentDate {
		c.sent = make(map[string]bool)
		c.sentDate = today
	}

	if c.notifier != nil {
		for _, r := range pending {
			if c.sent[r.key()] {
				continue
			}
			body := fmt.Sprintf("%s temperature reading for %s is missing (due %s).", r.Slot, r.Date, r.At)
			if err := c.notifier.Notify(ctx, "Temperature check", body); err != nil {
				c.log.Warn("reminder not delivered", slog.String("slot", string(r.Slot)), slog.Any("error", err))
				continue
			}
			c.sent[r.key()] = true
			c.log.Info("reminder sent", slog.String("date", r.Date), slog.String("slot", string(r.Slot)))
		}
	}

	return Status{Pending: pending, Supported: c.notifier != nil, CheckedAt: &now}
}

// Permission asks the notifier to enable delivery. Failures are reported in the
// result, never as an error.
func (c *Checker) Permission(ctx context.Context) PermissionResult {
	if c.notifier == nil {
		return PermissionResult{Message: ErrUnsupported.Error()}
	}
	if err := c.notifier.RequestPermission(ctx); err != nil {
		c.log.Warn("notification permission failed", slog.Any("error", err))
		return PermissionResult{Message: err.Error()}
	}
	return PermissionResult{Granted: true, Message: "notifications enabled"}
}

// Schedule registers Check on a cron spec such as "@every 1m". The caller starts and stops the scheduler.
func (c *Checker) Schedule(spec string) (*cron.Cron, error) {
	sched := cron.New()
	if _, err := sched.AddFunc(spec, func() {
		c.Check(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("reminder schedule %q: %w", spec, err)
	}
	return sched, nil
}
