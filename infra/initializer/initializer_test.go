package initializer

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amirasaad/txrecords/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&config.Log{
		Level:      -4,
		Format:     "json",
		TimeFormat: "2006-01-02",
		Prefix:     "[test]",
	}, &buf)

	logger.Info("CreateTransaction started", "productID", "P1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "CreateTransaction started", entry["msg"])
	assert.Equal(t, "P1", entry["productID"])
	assert.Equal(t, "[test]", entry["prefix"])
	assert.Same(t, logger, slog.Default())
}

func TestSetupLogger_LevelFilters(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&config.Log{Level: 8, Format: "text"}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitializeDependencies_UnknownBackend(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := InitializeDependencies(context.Background(), &config.App{
		Log:   &config.Log{Format: "text"},
		Store: &config.Store{Backend: "cassandra"},
	})
	assert.ErrorContains(t, err, "unknown store backend")
}
