package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"verbose", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			logger := logging.New(tt.level)
			require.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	logger := logging.NewInteractive()
	require.NotNil(t, logger)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestDefaultAndSetLevel(t *testing.T) {
	// Mutates the package default; not parallel.
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	replacement := logging.New("info")
	logging.SetDefault(replacement)
	assert.Same(t, replacement, logging.Default())

	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
	logging.SetLevel("error")
	assert.Equal(t, log.ErrorLevel, logging.Default().GetLevel())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
	assert.NotNil(t, logging.FromContext(context.Background()))
}

func TestWithFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	ctx := logging.WithFile(logging.WithLogger(context.Background(), logger), "src/a.php")

	logging.FromContext(ctx).Debug("fix pass", logging.FieldPass, 1)
	out := buf.String()
	assert.Contains(t, out, "fix pass")
	assert.Contains(t, out, "path=src/a.php")
	assert.Contains(t, out, "pass=1")
}
