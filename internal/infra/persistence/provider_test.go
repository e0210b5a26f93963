package persistence

import (
	"io"
	"log/slog"
	"testing"

	"attendance/config"
	"attendance/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRepositories(t *testing.T) {
	t.Parallel()

	t.Run("memory driver", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}
		repos, err := NewRepositories(Params{Config: cfg, Logger: newDiscardLogger()})
		require.NoError(t, err)

		assert.IsType(t, &memory.AttendanceRepository{}, repos.Attendances)
		assert.IsType(t, &memory.EventRepository{}, repos.Events)
	})

	t.Run("postgres driver without connection", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverPostgres}}
		_, err := NewRepositories(Params{Config: cfg, Logger: newDiscardLogger()})
		require.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
		_, err := NewRepositories(Params{Config: cfg, Logger: newDiscardLogger()})
		require.Error(t, err)
	})
}
