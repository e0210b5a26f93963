package geocoding

import (
	"log/slog"

	"attendance/config"
	"attendance/internal/domain/service"
	"attendance/internal/util/clock"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies of the geocoder
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock
	Redis  *redis.Client `optional:"true"`
}

// NewGeocoder builds the process-wide Nominatim geocoder
func NewGeocoder(params Params) service.Geocoder {
	cfg := params.Config.Geocoding

	var resultCache ResultCache
	if params.Redis != nil {
		resultCache = NewRedisResultCache(params.Redis, cfg.CacheTTL)
	}

	return NewNominatimGeocoder(Options{
		BaseURL:     cfg.BaseURL,
		UserAgent:   cfg.UserAgent,
		MinInterval: cfg.MinInterval,
		Timeout:     cfg.Timeout,
	}, params.Clock, resultCache, params.Logger)
}
