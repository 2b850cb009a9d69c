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
	defaultMaxRequestBodySize = "100KB"
	defaultStorageTimeout     = 5 * time.Second
	defaultRoundCount         = 5
	defaultMaxRoundCount      = 10
	defaultRankingLimit       = 10
	defaultRankingMaxLimit    = 100
	defaultAbandonAfter       = 24 * time.Hour
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

	// Storage selects the persistence gateway
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Game configuration for session creation and guess validation
	Game *GameConfig `json:"game" yaml:"game"`

	// Ranking configuration for leaderboards
	Ranking *RankingConfig `json:"ranking" yaml:"ranking"`

	// QRCode configuration for result share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the stats worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which persistence gateway backs the repositories
type StorageConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// Timeout bounds every storage round trip of a single operation
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Migrate runs the embedded migrations on start (postgres only)
	Migrate bool `json:"migrate" yaml:"migrate"`

	// SeedPath points to a YAML catalog loaded when no locations exist
	SeedPath string `json:"seedPath" yaml:"seedPath"`

	// SlowQueryThreshold marks statements logged as slow; zero uses the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// GameConfig defines session defaults and the playable map area
type GameConfig struct {
	DefaultRoundCount int       `json:"defaultRoundCount" yaml:"defaultRoundCount"`
	MaxRoundCount     int       `json:"maxRoundCount" yaml:"maxRoundCount"`
	MapBounds         MapBounds `json:"mapBounds" yaml:"mapBounds"`
}

// MapBounds is the rectangle a guess must fall inside
type MapBounds struct {
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MinLng float64 `json:"minLng" yaml:"minLng"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
	MaxLng float64 `json:"maxLng" yaml:"maxLng"`
}

// RankingConfig defines leaderboard behavior
type RankingConfig struct {
	// Timezone is the IANA zone used for daily buckets; empty means server local
	Timezone     string `json:"timezone" yaml:"timezone"`
	DefaultLimit int    `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int    `json:"maxLimit" yaml:"maxLimit"`

	// Async moves completion recording to the stats worker
	Async bool `json:"async" yaml:"async"`

	loc *time.Location
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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

// WorkerConfig defines the stats worker push endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// AbandonAfter is the idle time after which housekeeping abandons a playing session
	AbandonAfter time.Duration `json:"abandonAfter" yaml:"abandonAfter"`
}

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	if err := cfg.Ranking.ResolveLocation(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never see nil.
func applyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Storage.Timeout <= 0 {
		cfg.Storage.Timeout = defaultStorageTimeout
	}

	if cfg.Game == nil {
		cfg.Game = &GameConfig{}
	}
	if cfg.Game.DefaultRoundCount <= 0 {
		cfg.Game.DefaultRoundCount = defaultRoundCount
	}
	if cfg.Game.MaxRoundCount <= 0 {
		cfg.Game.MaxRoundCount = defaultMaxRoundCount
	}
	if cfg.Game.MapBounds == (MapBounds{}) {
		cfg.Game.MapBounds = MapBounds{MinLat: -90, MinLng: -180, MaxLat: 90, MaxLng: 180}
	}

	if cfg.Ranking == nil {
		cfg.Ranking = &RankingConfig{}
	}
	if cfg.Ranking.DefaultLimit <= 0 {
		cfg.Ranking.DefaultLimit = defaultRankingLimit
	}
	if cfg.Ranking.MaxLimit <= 0 {
		cfg.Ranking.MaxLimit = defaultRankingMaxLimit
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.AbandonAfter <= 0 {
		cfg.Worker.AbandonAfter = defaultAbandonAfter
	}
}

// ResolveLocation loads the ranking time zone once. An unknown zone is an
// error: daily buckets must never shift silently.
func (c *RankingConfig) ResolveLocation() error {
	if c.Timezone == "" {
		c.loc = time.Local

		return nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return errors.Wrapf(err, "invalid ranking timezone %q", c.Timezone)
	}
	c.loc = loc

	return nil
}

// Location returns the ranking time zone resolved by ResolveLocation.
// Configs built without New fall back to loading the zone on each call.
func (c *RankingConfig) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.Local
	}
	if c.loc != nil {
		return c.loc
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
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
