package sshutil

// SSHClient is the capability the dispatch layer needs from a transport.
// Both the real Client and the mock in sshutil/testing satisfy it, which
// keeps everything above the wire testable without a network.
type SSHClient interface {
	// Exec runs a command and returns stdout, stderr, and exit code.
	// Exit code is -1 if the command couldn't be executed at all.
	// A non-zero exit code with nil error means the command ran but failed.
	Exec(cmd string) (stdout, stderr []byte, exitCode int, err error)

	// Close closes the connection.
	Close() error

	// GetHost returns the original host string used to connect.
	GetHost() string

	// GetAddress returns the resolved host:port address.
	GetAddress() string
}
