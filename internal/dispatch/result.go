package dispatch

import "time"

// HostResult holds the outcome of executing a command on a single host.
// Err is non-nil for connection and execution faults; a command that ran but
// exited non-zero has Err == nil and a non-zero ExitCode.
type HostResult struct {
	Host     string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
	Err      error
}

// Failed reports whether the host produced no usable output, either because
// the execution faulted or because the command exited non-zero.
func (r *HostResult) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}
