package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ParseLevel(c.input), "ParseLevel(%q)", c.input)
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "listfmt.log")

	require.NoError(t, Init(path, "info"))
	t.Cleanup(func() { Close() })

	Debug("hidden message")
	Info("generation finished", "columns", 3)
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generation finished")
	assert.Contains(t, string(data), "columns=3")
	assert.NotContains(t, string(data), "hidden message")
}
