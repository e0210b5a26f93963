package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8KB"

	// StorageDriverPostgres persists attendance in PostgreSQL.
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory keeps attendance in process memory.
	StorageDriverMemory = "memory"

	defaultRadiusMeters          = 150.0
	defaultPollInterval          = 45 * time.Second
	defaultAutoCheckoutAfter     = 5 * time.Minute
	defaultSampleTimeout         = 10 * time.Second
	defaultSampleMaxAge          = time.Minute
	defaultGeocodingBaseURL      = "https://nominatim.openstreetmap.org"
	defaultGeocodingUserAgent    = "BidAttendance/1.0 (contact@example.com)"
	defaultGeocodingMinInterval  = time.Second
	defaultGeocodingTimeout      = 10 * time.Second
	defaultGeocodeCacheTTL       = 30 * 24 * time.Hour
	defaultSlowQueryThreshold    = 200 * time.Millisecond
	defaultQRCodeSize            = 256
	defaultQRCodeErrorCorrection = "medium"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage selects the attendance store
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Redis backs the geocode result cache; nil disables caching
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Geofence holds radius and monitor timing
	Geofence GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Geocoding configures the Nominatim client
	Geocoding GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// QRCode configuration for attendee check-in codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for attendance event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects and tunes the persistence backend
type StorageConfig struct {
	// Driver is "postgres" (default) or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates the attendance schema on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks GORM queries logged at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the Redis connection used for caching
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
}

// GeofenceConfig defines the geofence radius and monitor timing
type GeofenceConfig struct {
	// DefaultRadius in meters, used when a caller omits or sends an invalid radius
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`

	// PollInterval between location samples while tracking
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`

	// AutoCheckoutAfter is how long a user must stay outside before check-out
	AutoCheckoutAfter time.Duration `json:"autoCheckoutAfter" yaml:"autoCheckoutAfter"`

	// SampleTimeout bounds a single position request
	SampleTimeout time.Duration `json:"sampleTimeout" yaml:"sampleTimeout"`

	// SampleMaxAge is the oldest cached position accepted while polling
	SampleMaxAge time.Duration `json:"sampleMaxAge" yaml:"sampleMaxAge"`
}

// GeocodingConfig defines the Nominatim client configuration
type GeocodingConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent   string        `json:"userAgent" yaml:"userAgent"`
	MinInterval time.Duration `json:"minInterval" yaml:"minInterval"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL    time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// TrackerConfig configures the geotracker client binary
type TrackerConfig struct {
	Log Log `json:"log" yaml:"log"`

	// BaseURL of the attendance API, e.g. http://localhost:8080/api/v1
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Token is the bearer token of the tracked attendee
	Token string `json:"token" yaml:"token"`

	// RequestTimeout bounds each API call
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	Geofence GeofenceConfig `json:"geofence" yaml:"geofence"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyStorageDefaults(&cfg.Storage)
	cfg.Geofence.ApplyDefaults()
	applyGeocodingDefaults(&cfg.Geocoding)
	applyQRCodeDefaults(cfg)

	if cfg.Storage.Driver == StorageDriverPostgres {
		if cfg.Postgres == nil {
			return nil, errors.New("postgres config is required when storage.driver is postgres")
		}

		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// NewTracker loads geotracker.yaml for the client binary.
func NewTracker() (*TrackerConfig, error) {
	cfg, err := LoadWithEnv[TrackerConfig]("geotracker", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.Geofence.ApplyDefaults()
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultGeocodingTimeout
	}

	return cfg, nil
}

// ApplyDefaults fills zero or invalid geofence settings.
func (g *GeofenceConfig) ApplyDefaults() {
	if !(g.DefaultRadius > 0) {
		g.DefaultRadius = defaultRadiusMeters
	}
	if g.PollInterval <= 0 {
		g.PollInterval = defaultPollInterval
	}
	if g.AutoCheckoutAfter <= 0 {
		g.AutoCheckoutAfter = defaultAutoCheckoutAfter
	}
	if g.SampleTimeout <= 0 {
		g.SampleTimeout = defaultSampleTimeout
	}
	if g.SampleMaxAge <= 0 {
		g.SampleMaxAge = defaultSampleMaxAge
	}
}

func applyStorageDefaults(s *StorageConfig) {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if s.Driver == "" {
		s.Driver = StorageDriverPostgres
	}
	if s.SlowQueryThreshold <= 0 {
		s.SlowQueryThreshold = defaultSlowQueryThreshold
	}
}

func applyGeocodingDefaults(g *GeocodingConfig) {
	if strings.TrimSpace(g.BaseURL) == "" {
		g.BaseURL = defaultGeocodingBaseURL
	}
	if strings.TrimSpace(g.UserAgent) == "" {
		g.UserAgent = defaultGeocodingUserAgent
	}
	if g.MinInterval <= 0 {
		g.MinInterval = defaultGeocodingMinInterval
	}
	if g.Timeout <= 0 {
		g.Timeout = defaultGeocodingTimeout
	}
	if g.CacheTTL <= 0 {
		g.CacheTTL = defaultGeocodeCacheTTL
	}
}

func applyQRCodeDefaults(cfg *Config) {
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if strings.TrimSpace(cfg.QRCode.ErrorCorrectionLevel) == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeErrorCorrection
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
