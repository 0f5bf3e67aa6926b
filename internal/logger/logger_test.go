package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when SINZLAB_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when SINZLAB_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when SINZLAB_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			if tt.envValue != "" {
				t.Setenv("SINZLAB_DEBUG", tt.envValue)
			} else {
				os.Unsetenv("SINZLAB_DEBUG")
			}

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewEnvLogger("[dispatch]")
	l.Info("connected to %s", "gpu1")
	l.Warn("slow host %s", "gpu2")
	l.Error("lost %s", "gpu3")

	out := buf.String()
	assert.Contains(t, out, "[dispatch] connected to gpu1")
	assert.Contains(t, out, "[dispatch] WARN: slow host gpu2")
	assert.Contains(t, out, "[dispatch] ERROR: lost gpu3")
}

func TestNoopLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := Noop()
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Info("host %s done", "gpu1")
	l.Error("host %s failed", "gpu2")

	assert.Len(t, l.Messages, 2)
	assert.Equal(t, "info", l.Messages[0].Level)
	assert.Equal(t, "host gpu1 done", l.Messages[0].Message)
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("warn"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("captured")

	assert.Len(t, buf.Messages, 1)
}
