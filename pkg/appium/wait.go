package appium

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Wait defaults.
const (
	DefaultWaitTimeout  = 30 * time.Second
	DefaultWaitInterval = 250 * time.Millisecond
)

// Wait polls for elements until they appear. It is a value: AtMost and
// CheckEvery return modified copies, so one Wait can seed many independent polls.
//
//	el, err := client.Wait().
//		AtMost(5*time.Second).
//		CheckEvery(100*time.Millisecond).
//		ForElement(ctx, appium.ByID("com.example:id/login"))
//
// Only ErrNoSuchElement is retried; any other error ends the wait immediately.
// At least one attempt is made. The deadline is checked between attempts and
// the final attempt runs at the deadline, so a slow attempt can finish after
// it. Cancel ctx for a hard bound.
type Wait struct {
	finder   Finder
	timeout  time.Duration
	interval time.Duration
	logger   *zap.Logger
}

// Wait starts a wait on the whole screen with default timing.
func (c *Client) Wait() Wait {
	return newWait(c, c.logger)
}

// Wait starts a wait for descendants of e with default timing.
func (e *Element) Wait() Wait {
	return newWait(e, e.client.logger)
}

// NewWait starts a wait over any Finder.
func NewWait(f Finder) Wait {
	return newWait(f, zap.NewNop())
}

func newWait(f Finder, log *zap.Logger) Wait {
	return Wait{
		finder:   f,
		timeout:  DefaultWaitTimeout,
		interval: DefaultWaitInterval,
		logger:   log,
	}
}

// AtMost sets how long to keep polling.
func (w Wait) AtMost(timeout time.Duration) Wait {
	w.timeout = timeout
	return w
}

// CheckEvery sets the pause between attempts.
func (w Wait) CheckEvery(interval time.Duration) Wait {
	w.interval = interval
	return w
}

// Timeout returns the configured timeout.
func (w Wait) Timeout() time.Duration {
	return w.timeout
}

// Interval returns the configured poll interval.
func (w Wait) Interval() time.Duration {
	return w.interval
}

// ForElement polls until an element matching by is found.
func (w Wait) ForElement(ctx context.Context, by By) (*Element, error) {
	return poll(ctx, w, by, func(ctx context.Context) (*Element, error) {
		return w.finder.Find(ctx, by)
	})
}

// ForElements polls until the server answers the lookup. Any well-formed
// reply ends the wait, including an empty list; only a not-found error is
// retried.
func (w Wait) ForElements(ctx context.Context, by By) ([]*Element, error) {
	return poll(ctx, w, by, func(ctx context.Context) ([]*Element, error) {
		return w.finder.FindAll(ctx, by)
	})
}

func poll[T any](ctx context.Context, w Wait, by By, locate func(context.Context) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for attempt := 1; ; attempt++ {
		result, err := locate(ctx)
		if err == nil {
			w.logger.Debug("wait succeeded",
				zap.Stringer("locator", by), zap.Int("attempts", attempt), zap.Duration("elapsed", time.Since(start)))
			return result, nil
		}
		if !IsNotFound(err) {
			return zero, err
		}

		elapsed := time.Since(start)
		if elapsed >= w.timeout {
			w.logger.Debug("wait timed out",
				zap.Stringer("locator", by), zap.Int("attempts", attempt), zap.Duration("elapsed", elapsed))
			return zero, ErrWaitTimeout.
				WithMessage("timed out waiting for " + by.String()).
				WithDetails(map[string]interface{}{
					"timeout":  w.timeout.String(),
					"attempts": attempt,
				})
		}
		w.logger.Debug("element not found yet",
			zap.Stringer("locator", by), zap.Int("attempt", attempt), zap.Duration("elapsed", elapsed))

		// The last pause ends on the deadline so one more attempt runs there.
		pause := w.interval
		if remaining := w.timeout - elapsed; remaining < pause {
			pause = remaining
		}
		if timer == nil {
			timer = time.NewTimer(pause)
		} else {
			timer.Reset(pause)
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
