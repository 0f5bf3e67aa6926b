// Package dispatch fans a single shell command out across a fleet of hosts
// and gathers one result per host. Per-host faults are captured in the
// result map and never abort the other hosts.
package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/christoph-blessing/sinzlab-tools/internal/logger"
)

// Runner is the interface the transport layer implements to execute a
// command on a single host.
type Runner interface {
	Run(ctx context.Context, host string, command string) *HostResult
}

// Dispatcher runs one command on many hosts concurrently with bounded
// concurrency and a per-host timeout.
type Dispatcher struct {
	runner      Runner
	concurrency int
	timeout     time.Duration
	log         logger.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConcurrency sets the maximum number of parallel executions.
func WithConcurrency(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithTimeout sets the per-host command timeout.
func WithTimeout(t time.Duration) Option {
	return func(d *Dispatcher) {
		if t > 0 {
			d.timeout = t
		}
	}
}

// WithLogger sets the logger used for per-host progress messages.
func WithLogger(l logger.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates a Dispatcher with the given Runner and options.
func New(runner Runner, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		runner:      runner,
		concurrency: 20,
		timeout:     30 * time.Second,
		log:         logger.NewEnvLogger("[dispatch]"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs command on every host concurrently and returns a map with
// exactly one entry per distinct input host. It blocks until every host has
// either succeeded or failed; a fault on one host is recorded in its entry
// and never cancels the others. Duplicate input hosts collapse to one entry.
func (d *Dispatcher) Dispatch(ctx context.Context, hosts []string, command string) map[string]*HostResult {
	distinct := dedupe(hosts)

	// One pre-allocated slot per host so concurrent writers never share.
	results := make([]*HostResult, len(distinct))

	sem := make(chan struct{}, d.concurrency)
	var wg sync.WaitGroup

	for i, host := range distinct {
		wg.Add(1)
		go func(idx int, h string) {
			defer wg.Done()

			// Acquire semaphore, respecting parent context cancellation.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = &HostResult{Host: h, Err: ctx.Err()}
				return
			}

			hostCtx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()

			start := time.Now()
			result := d.runner.Run(hostCtx, h, command)
			result.Host = h
			result.Duration = time.Since(start)

			// A deadline or cancellation the runner swallowed is still a failure.
			if err := hostCtx.Err(); err != nil && result.Err == nil {
				result.Err = err
			}

			if result.Err != nil {
				d.log.Debug("host %s failed after %s: %v", h, result.Duration, result.Err)
			} else {
				d.log.Debug("host %s finished in %s (exit %d)", h, result.Duration, result.ExitCode)
			}

			results[idx] = result
		}(i, host)
	}

	wg.Wait()

	out := make(map[string]*HostResult, len(distinct))
	for _, r := range results {
		out[r.Host] = r
	}
	return out
}

// dedupe returns hosts with duplicates removed, preserving first-seen order.
func dedupe(hosts []string) []string {
	seen := make(map[string]bool, len(hosts))
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}
