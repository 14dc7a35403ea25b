package health

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/semhq/campaigner/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	defaultTimeout = 5 * time.Second
)

// CheckFunc reports a dependency failure as a non-nil error.
type CheckFunc func(ctx context.Context) error

// Result is the outcome of one named check.
type Result struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates all check results.
type Report struct {
	Checks map[string]Result `json:"checks,omitempty"`
	Status string            `json:"status"`
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool { return r.Status == StatusHealthy }

// Checker runs readiness checks concurrently under a shared timeout.
type Checker struct {
	checks  map[string]CheckFunc
	logger  *slog.Logger
	timeout time.Duration
	mu      sync.RWMutex
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout bounds a full run of all checks. Default: 5s.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCheck registers a named check at construction time.
func WithCheck(name string, fn CheckFunc) Option {
	return func(c *Checker) { c.checks[name] = fn }
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		checks:  make(map[string]CheckFunc),
		logger:  logger.NewNope(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds or replaces a named check.
func (c *Checker) Register(name string, fn CheckFunc) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = fn
}

// Run executes every check and waits for all of them.
// A failing check never cancels the others.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	checks := maps.Clone(c.checks)
	c.mu.RUnlock()

	if len(checks) == 0 {
		return Report{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]Result, len(checks))
		status  = StatusHealthy
	)

	for name, check := range checks {
		g.Go(func() error {
			res := Result{Status: StatusHealthy}
			if err := check(ctx); err != nil {
				res = Result{Status: StatusUnhealthy, Error: err.Error()}
				c.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = res
			if res.Status == StatusUnhealthy {
				status = StatusUnhealthy
			}
			return nil
		})
	}
	_ = g.Wait()

	return Report{Checks: results, Status: status}
}
