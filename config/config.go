package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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
	defaultRemoteTimeout      = 30 * time.Second
	defaultArticleLimit       = 100
	defaultPlaceholderImage   = "/placeholder.jpg"
	defaultSnapshotDriver     = "memory"
	defaultSnapshotKeyPrefix  = "snapshots/"
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

	// Remote describes the business-management API the catalog is pulled from
	Remote *RemoteConfig `json:"remote" yaml:"remote"`

	// Snapshot selects where synchronized snapshots are persisted
	Snapshot *SnapshotConfig `json:"snapshot" yaml:"snapshot"`

	// Sync configures scheduling and fetch behaviour of sync cycles
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// PubSub configuration for sync event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RemoteConfig defines the connection to the remote tenant-oriented API
type RemoteConfig struct {
	BaseURL  string        `json:"baseURL" yaml:"baseURL" validate:"required,url"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout" validate:"gte=0"`
	Username string        `json:"username" yaml:"username" validate:"required"`
	Password string        `json:"password" yaml:"password" validate:"required"`

	// CompanyID is the tenant selected after login
	CompanyID int `json:"companyID" yaml:"companyID" validate:"gt=0"`

	// FiscalYear sent with tenant selection; zero means the current calendar year
	FiscalYear int `json:"fiscalYear" yaml:"fiscalYear" validate:"gte=0"`

	// ArticleLimit caps the single article page requested per cycle
	ArticleLimit int `json:"articleLimit" yaml:"articleLimit" validate:"gte=0"`

	// RateLimit is the outbound request rate in requests per second (0 = unlimited)
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit" validate:"gte=0"`
	RateBurst int     `json:"rateBurst" yaml:"rateBurst" validate:"gte=0"`
}

// SnapshotConfig defines the snapshot store backend
type SnapshotConfig struct {
	// Driver is one of memory, blob or postgres
	Driver string `json:"driver" yaml:"driver" validate:"oneof=memory blob postgres"`

	// BucketURL is a gocloud.dev bucket URL (file://, s3://, gs://, mem://) for the blob driver
	BucketURL string `json:"bucketURL" yaml:"bucketURL" validate:"required_if=Driver blob"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	PlaceholderImage string `json:"placeholderImage" yaml:"placeholderImage"`
}

// SyncConfig defines how sync cycles run
type SyncConfig struct {
	// Interval between scheduled syncs; zero disables the scheduler
	Interval time.Duration `json:"interval" yaml:"interval" validate:"gte=0"`
	OnStart  bool          `json:"onStart" yaml:"onStart"`

	// ParallelFetch issues the article and article-group requests concurrently
	ParallelFetch bool `json:"parallelFetch" yaml:"parallelFetch"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Optional service account file (for google provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Events lists the sync statuses to publish (syncing, synced, error); empty publishes all
	Events []string `json:"events" yaml:"events"`
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

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// REMOTE_BASEURL -> remote.baseURL, aligned with the YAML key casing.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				millisecondsToDurationHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// millisecondsToDurationHookFunc reads a bare integer duration, from YAML or
// the environment (REMOTE_TIMEOUT=30000), as milliseconds. Values with a unit
// are left to StringToTimeDurationHookFunc.
func millisecondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType || from == durationType {
			return data, nil
		}

		v := reflect.ValueOf(data)
		switch from.Kind() {
		case reflect.String:
			ms, err := strconv.ParseInt(strings.TrimSpace(v.String()), 10, 64)
			if err != nil {
				return data, nil
			}

			return time.Duration(ms) * time.Millisecond, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(v.Int()) * time.Millisecond, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(v.Uint()) * time.Millisecond, nil
		case reflect.Float32, reflect.Float64:
			return time.Duration(v.Float() * float64(time.Millisecond)), nil
		default:
			return data, nil
		}
	}
}

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections and zero values.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Remote == nil {
		cfg.Remote = &RemoteConfig{}
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = defaultRemoteTimeout
	}
	if cfg.Remote.ArticleLimit <= 0 {
		cfg.Remote.ArticleLimit = defaultArticleLimit
	}
	cfg.Remote.BaseURL = strings.TrimRight(cfg.Remote.BaseURL, "/")

	if cfg.Snapshot == nil {
		cfg.Snapshot = &SnapshotConfig{}
	}
	if cfg.Snapshot.Driver == "" {
		cfg.Snapshot.Driver = defaultSnapshotDriver
	}
	if cfg.Snapshot.KeyPrefix == "" {
		cfg.Snapshot.KeyPrefix = defaultSnapshotKeyPrefix
	}
	if strings.TrimSpace(cfg.Snapshot.PlaceholderImage) == "" {
		cfg.Snapshot.PlaceholderImage = defaultPlaceholderImage
	}

	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
}

// Validate checks the sections the sync pipeline cannot run without.
func (cfg *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(cfg.Remote); err != nil {
		return errors.Wrap(err, "invalid remote config")
	}
	if err := validate.Struct(cfg.Snapshot); err != nil {
		return errors.Wrap(err, "invalid snapshot config")
	}
	if err := validate.Struct(cfg.Sync); err != nil {
		return errors.Wrap(err, "invalid sync config")
	}
	if cfg.Snapshot.Driver == "postgres" && cfg.Postgres == nil {
		return errors.New("postgres snapshot driver requires a postgres section")
	}

	return nil
}

// ResolveFiscalYear returns the configured fiscal year or the current one.
func (r *RemoteConfig) ResolveFiscalYear(now time.Time) int {
	if r.FiscalYear > 0 {
		return r.FiscalYear
	}

	return now.Year()
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
