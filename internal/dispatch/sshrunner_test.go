package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christoph-blessing/sinzlab-tools/pkg/sshutil"
	sshtest "github.com/christoph-blessing/sinzlab-tools/pkg/sshutil/testing"
)

func TestSSHRunnerSuccess(t *testing.T) {
	mock := sshtest.NewMockClient("gpu1.lab")
	mock.SetResponse("nvidia-smi", sshtest.CommandResponse{Stdout: []byte("0, 45, 60, 2048, 8192\n")})

	var dialed string
	runner := NewSSHRunner("labuser", WithDialFunc(func(host string, timeout time.Duration) (sshutil.SSHClient, error) {
		dialed = host
		return mock, nil
	}))

	result := runner.Run(context.Background(), "gpu1.lab", "nvidia-smi")

	require.NoError(t, result.Err)
	assert.Equal(t, "labuser@gpu1.lab", dialed)
	assert.Equal(t, "0, 45, 60, 2048, 8192\n", string(result.Stdout))
	assert.Equal(t, 0, result.ExitCode)
}

func TestSSHRunnerEmptyUserDialsBareHost(t *testing.T) {
	var dialed string
	runner := NewSSHRunner("", WithDialFunc(func(host string, timeout time.Duration) (sshutil.SSHClient, error) {
		dialed = host
		return sshtest.NewMockClient(host), nil
	}))

	runner.Run(context.Background(), "gpu1.lab", "uptime")

	assert.Equal(t, "gpu1.lab", dialed)
}

func TestSSHRunnerConnectError(t *testing.T) {
	dialErr := errors.New("connection refused")
	runner := NewSSHRunner("labuser", WithDialFunc(func(host string, timeout time.Duration) (sshutil.SSHClient, error) {
		return nil, dialErr
	}))

	result := runner.Run(context.Background(), "gpu2.lab", "uptime")

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, dialErr)
	assert.True(t, result.Failed())
}

func TestSSHRunnerNonZeroExit(t *testing.T) {
	mock := sshtest.NewMockClient("gpu1.lab")
	mock.SetResponse("docker ps", sshtest.CommandResponse{
		Stderr:   []byte("permission denied\n"),
		ExitCode: 1,
	})

	runner := NewSSHRunner("labuser", WithDialFunc(func(host string, timeout time.Duration) (sshutil.SSHClient, error) {
		return mock, nil
	}))

	result := runner.Run(context.Background(), "gpu1.lab", "docker ps")

	require.NoError(t, result.Err)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, "permission denied\n", string(result.Stderr))
	assert.True(t, result.Failed())
}

func TestSSHRunnerContextCancelled(t *testing.T) {
	mock := sshtest.NewMockClient("gpu1.lab")

	runner := NewSSHRunner("labuser", WithDialFunc(func(host string, timeout time.Duration) (sshutil.SSHClient, error) {
		return mock, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The mock responds instantly, so either outcome of the select is
	// valid; the call must simply not hang.
	result := runner.Run(ctx, "gpu1.lab", "uptime")
	require.NotNil(t, result)
}
