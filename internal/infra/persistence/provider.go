// Package persistence selects the attendance store configured by storage.driver.
package persistence

import (
	"log/slog"

	"attendance/config"
	"attendance/internal/domain/repository"
	"attendance/internal/infra/persistence/memory"
	"attendance/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies for building repositories
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// Repositories exposes the repositories to the fx graph
type Repositories struct {
	fx.Out

	Attendances repository.AttendanceRepository
	Events      repository.EventRepository
}

// NewRepositories builds the repositories for the configured driver
func NewRepositories(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		if params.DB == nil {
			return Repositories{}, errors.New("postgres storage selected but no database connection is available")
		}

		return Repositories{
			Attendances: postgres.NewAttendanceRepository(params.DB),
			Events:      postgres.NewEventRepository(params.DB),
		}, nil
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory attendance store; data is lost on restart")

		return Repositories{
			Attendances: memory.NewAttendanceRepository(),
			Events:      memory.NewEventRepository(),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", params.Config.Storage.Driver)
	}
}
