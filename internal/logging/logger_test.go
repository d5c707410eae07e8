package logging

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"nonsense", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewWritesTextEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.WithField("url", "https://example.com").Info("Crawling")
	logger.Debug("hidden")

	out := buf.String()
	require.Contains(t, out, "level=info")
	require.Contains(t, out, "msg=Crawling")
	require.Contains(t, out, "url=\"https://example.com\"")
	require.NotContains(t, out, "hidden")
}

func TestWithRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New("info", &buf)

	first := WithRunID(logger)
	second := WithRunID(logger)

	firstID, ok := first.Data["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(firstID)
	require.NoError(t, err)
	require.NotEqual(t, firstID, second.Data["run_id"])
}
