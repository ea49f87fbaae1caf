// Package resource bounds the memory and IO spent on loading and exporting
// data sets.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrBudgetExceeded is returned when a single reservation is larger than the
// whole load budget and could never be satisfied.
var ErrBudgetExceeded = errors.New("resource: load budget exceeded")

// Config holds resource limits.
type Config struct {
	// LoadBudgetBytes is the hard limit for source bytes held in memory by
	// concurrent loads. If 0, no hard limit is enforced (only tracking).
	LoadBudgetBytes int64

	// MaxConcurrentLoads is the maximum number of sources loaded at once.
	// If 0, defaults to 2.
	MaxConcurrentLoads int64

	// IOLimitBytesPerSec is the maximum read/write throughput.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared resources for loaders and writers.
// A nil *Controller imposes no limits.
type Controller struct {
	cfg Config

	// Memory
	budget *semaphore.Weighted // nil if unlimited
	used   atomic.Int64

	// Concurrency
	loads *semaphore.Weighted

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentLoads <= 0 {
		cfg.MaxConcurrentLoads = 2
	}

	c := &Controller{
		cfg:   cfg,
		loads: semaphore.NewWeighted(cfg.MaxConcurrentLoads),
	}

	if cfg.LoadBudgetBytes > 0 {
		c.budget = semaphore.NewWeighted(cfg.LoadBudgetBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// Config returns the effective limits.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireBudget reserves bytes of the load budget.
// It blocks until enough budget is released or ctx is canceled. A request
// larger than the whole budget fails immediately with ErrBudgetExceeded.
func (c *Controller) AcquireBudget(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.budget != nil {
		if bytes > c.cfg.LoadBudgetBytes {
			return fmt.Errorf("%w: need %d bytes, budget is %d", ErrBudgetExceeded, bytes, c.cfg.LoadBudgetBytes)
		}
		if err := c.budget.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.used.Add(bytes)
	return nil
}

// TryAcquireBudget reserves budget without blocking.
// Returns true if acquired, false if the limit would be exceeded.
func (c *Controller) TryAcquireBudget(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.budget != nil {
		if !c.budget.TryAcquire(bytes) {
			return false
		}
	}

	c.used.Add(bytes)
	return true
}

// ReleaseBudget releases reserved budget.
func (c *Controller) ReleaseBudget(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.budget != nil {
		c.budget.Release(bytes)
	}
	c.used.Add(-bytes)
}

// BudgetUsage returns the currently reserved budget in bytes.
func (c *Controller) BudgetUsage() int64 {
	if c == nil {
		return 0
	}
	return c.used.Load()
}

// AcquireLoad reserves a load slot. Blocks if all slots are busy.
func (c *Controller) AcquireLoad(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.loads.Acquire(ctx, 1)
}

// TryAcquireLoad reserves a load slot without blocking.
func (c *Controller) TryAcquireLoad() bool {
	if c == nil {
		return true
	}
	return c.loads.TryAcquire(1)
}

// ReleaseLoad releases a load slot.
func (c *Controller) ReleaseLoad() {
	if c == nil {
		return
	}
	c.loads.Release(1)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
// Requests larger than the burst are split into burst-sized waits.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}

// ioChunk returns the largest single transfer that AcquireIO can grant in
// one wait, or 0 if IO is unlimited.
func (c *Controller) ioChunk() int {
	if c == nil || c.ioLimiter == nil {
		return 0
	}
	return c.ioLimiter.Burst()
}
