// Package testing provides a mock SSH client for exercising the layers
// above the transport without a network.
package testing

import (
	"errors"
	"regexp"
	"sync"
)

// CommandResponse defines a canned response for a command pattern.
type CommandResponse struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Error    error
}

// MockClient simulates an SSH connection. Commands are matched first
// exactly, then against registered regex patterns, falling back to an empty
// success.
type MockClient struct {
	mu       sync.Mutex
	host     string
	address  string
	closed   bool
	commands map[string]CommandResponse
	patterns []patternResponse
	executed []string
}

type patternResponse struct {
	re   *regexp.Regexp
	resp CommandResponse
}

// NewMockClient creates a mock client for the given host.
func NewMockClient(host string) *MockClient {
	return &MockClient{
		host:     host,
		address:  host + ":22",
		commands: make(map[string]CommandResponse),
	}
}

// SetResponse registers a canned response for an exact command string.
func (m *MockClient) SetResponse(cmd string, resp CommandResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[cmd] = resp
}

// SetPatternResponse registers a canned response for any command matching
// the regex pattern. Patterns are tried in registration order.
func (m *MockClient) SetPatternResponse(pattern string, resp CommandResponse) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, patternResponse{re: re, resp: resp})
	return nil
}

// Executed returns the commands run so far, in order.
func (m *MockClient) Executed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.executed))
	copy(out, m.executed)
	return out
}

// Exec returns the canned response for cmd.
func (m *MockClient) Exec(cmd string) (stdout, stderr []byte, exitCode int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, nil, -1, errors.New("connection closed")
	}

	m.executed = append(m.executed, cmd)

	if resp, ok := m.commands[cmd]; ok {
		return resp.Stdout, resp.Stderr, resp.ExitCode, resp.Error
	}
	for _, p := range m.patterns {
		if p.re.MatchString(cmd) {
			return p.resp.Stdout, p.resp.Stderr, p.resp.ExitCode, p.resp.Error
		}
	}
	return nil, nil, 0, nil
}

// Close marks the connection closed; further Exec calls fail.
func (m *MockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// GetHost returns the host the mock was created with.
func (m *MockClient) GetHost() string {
	return m.host
}

// GetAddress returns the simulated host:port address.
func (m *MockClient) GetAddress() string {
	return m.address
}
