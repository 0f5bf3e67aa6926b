package sshutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSSHConfig points settings resolution at a temp SSH config for the
// duration of the test.
func withSSHConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	orig := sshConfigPath
	sshConfigPath = func() string { return path }
	t.Cleanup(func() { sshConfigPath = orig })
}

func TestResolveSettingsExplicitUserAndPort(t *testing.T) {
	withSSHConfig(t, "")

	s := resolveSettings("alice@gpu1.example.com:2222")

	assert.Equal(t, "alice", s.user)
	assert.Equal(t, "gpu1.example.com", s.hostname)
	assert.Equal(t, "2222", s.port)
	assert.Equal(t, "gpu1.example.com:2222", s.address())
}

func TestResolveSettingsDefaults(t *testing.T) {
	withSSHConfig(t, "")
	t.Setenv("USER", "bob")

	s := resolveSettings("gpu1.example.com")

	assert.Equal(t, "bob", s.user)
	assert.Equal(t, "gpu1.example.com", s.hostname)
	assert.Equal(t, "22", s.port)
}

func TestResolveSettingsFromSSHConfig(t *testing.T) {
	withSSHConfig(t, `
Host gpu1
    HostName gpu1.internal.example.com
    User labuser
    Port 2200
    IdentityFile ~/.ssh/lab_key
`)

	s := resolveSettings("gpu1")

	assert.Equal(t, "gpu1.internal.example.com", s.hostname)
	assert.Equal(t, "labuser", s.user)
	assert.Equal(t, "2200", s.port)
	assert.Equal(t, filepath.Join(homeDir(), ".ssh", "lab_key"), s.identityFile)
}

func TestResolveSettingsExplicitBeatsConfig(t *testing.T) {
	withSSHConfig(t, `
Host gpu1
    User labuser
    Port 2200
`)

	s := resolveSettings("root@gpu1:22")

	assert.Equal(t, "root", s.user)
	assert.Equal(t, "22", s.port)
}

func TestResolveSettingsNonNumericSuffixIsNotAPort(t *testing.T) {
	withSSHConfig(t, "")

	s := resolveSettings("gpu1.example.com")
	assert.Equal(t, "22", s.port)

	// A colon followed by non-digits stays part of the hostname.
	s = resolveSettings("weird:name")
	assert.Equal(t, "weird:name", s.hostname)
	assert.Equal(t, "22", s.port)
}

func TestAllDigits(t *testing.T) {
	assert.True(t, allDigits("22"))
	assert.True(t, allDigits("2222"))
	assert.False(t, allDigits(""))
	assert.False(t, allDigits("2a"))
	assert.False(t, allDigits("name"))
}

func TestExpandPath(t *testing.T) {
	assert.Equal(t, filepath.Join(homeDir(), ".ssh", "id_rsa"), expandPath("~/.ssh/id_rsa"))
	assert.Equal(t, "/etc/ssh/key", expandPath("/etc/ssh/key"))
}

func TestSuggestionForDialError(t *testing.T) {
	tests := []struct {
		name string
		err  string
		want string
	}{
		{name: "refused", err: "dial tcp: connection refused", want: "Is SSH running"},
		{name: "no route", err: "dial tcp: no route to host", want: "Can't route"},
		{name: "timeout", err: "dial tcp: i/o timeout", want: "timed out"},
		{name: "other", err: "something odd", want: "reachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggestionForDialError(errString(tt.err))
			assert.Contains(t, got, tt.want)
		})
	}
}

// errString is a trivial error with a fixed message.
type errString string

func (e errString) Error() string { return string(e) }
