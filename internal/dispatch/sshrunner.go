package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/christoph-blessing/sinzlab-tools/pkg/sshutil"
)

// DialFunc establishes a connection to a host. It matches sshutil.Dial and
// exists so tests can substitute a mock transport.
type DialFunc func(host string, timeout time.Duration) (sshutil.SSHClient, error)

// SSHRunner executes commands over one-shot SSH connections, logging in as a
// single shared user on every host.
type SSHRunner struct {
	user        string
	dialTimeout time.Duration
	dial        DialFunc
}

// SSHRunnerOption configures an SSHRunner.
type SSHRunnerOption func(*SSHRunner)

// WithDialTimeout sets the TCP connect timeout.
func WithDialTimeout(t time.Duration) SSHRunnerOption {
	return func(r *SSHRunner) {
		if t > 0 {
			r.dialTimeout = t
		}
	}
}

// WithDialFunc replaces the transport used to reach hosts. Tests use this to
// inject a mock client.
func WithDialFunc(dial DialFunc) SSHRunnerOption {
	return func(r *SSHRunner) {
		if dial != nil {
			r.dial = dial
		}
	}
}

// NewSSHRunner creates a runner that connects as user. An empty user defers
// to ~/.ssh/config and the environment.
func NewSSHRunner(user string, opts ...SSHRunnerOption) *SSHRunner {
	r := &SSHRunner{
		user:        user,
		dialTimeout: 10 * time.Second,
		dial: func(host string, timeout time.Duration) (sshutil.SSHClient, error) {
			return sshutil.Dial(host, timeout)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a command on a single host. Connection errors and exec faults
// are recorded in the result; a command that ran but exited non-zero is not
// an error here.
func (r *SSHRunner) Run(ctx context.Context, host string, command string) *HostResult {
	result := &HostResult{Host: host}

	target := host
	if r.user != "" {
		target = r.user + "@" + host
	}

	client, err := r.dial(target, r.dialTimeout)
	if err != nil {
		result.Err = fmt.Errorf("connect: %w", err)
		return result
	}
	defer client.Close()

	type execOut struct {
		stdout   []byte
		stderr   []byte
		exitCode int
		err      error
	}

	// sshutil.Exec has no context support, so run it in a goroutine and
	// abandon the session if the per-host deadline fires first. Closing the
	// deferred client tears the session down.
	done := make(chan execOut, 1)
	go func() {
		stdout, stderr, exitCode, err := client.Exec(command)
		done <- execOut{stdout, stderr, exitCode, err}
	}()

	select {
	case out := <-done:
		result.Stdout = out.stdout
		result.Stderr = out.stderr
		result.ExitCode = out.exitCode
		result.Err = out.err
	case <-ctx.Done():
		result.Err = ctx.Err()
	}
	return result
}
