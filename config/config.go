package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"socialdesk/internal/domain/constants"

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
	defaultMaxRequestBodySize = "1MB"
	defaultAccessTokenTTL     = 12 * time.Hour
	defaultDedupeTTL          = 24 * time.Hour
	defaultMetaRequestTimeout = 15 * time.Second
	defaultOAuthStateTTL      = 10 * time.Minute
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

	// Worker configuration for the inbox worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Meta app credentials for OAuth, webhook verification and the Graph API
	Meta *MetaConfig `json:"meta" yaml:"meta"`

	// Queue configuration for webhook event delivery to the worker
	Queue *QueueConfig `json:"queue" yaml:"queue"`

	// Redis configuration for idempotency markers and OAuth state (optional)
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the inbox worker process settings
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// How long a processed event id is remembered for duplicate suppression
	DedupeTTL time.Duration `json:"dedupeTtl" yaml:"dedupeTtl"`
}

// MetaConfig defines the Meta app used for OAuth, webhooks and messaging
type MetaConfig struct {
	AppID       string `json:"appId" yaml:"appId"`
	AppSecret   string `json:"appSecret" yaml:"appSecret"`
	VerifyToken string `json:"verifyToken" yaml:"verifyToken"`
	RedirectURI string `json:"redirectUri" yaml:"redirectUri"`
	Scopes      string `json:"scopes" yaml:"scopes"`

	GraphAPIVersion string `json:"graphApiVersion" yaml:"graphApiVersion"`

	// Base URLs are overridable for tests and proxies
	GraphBaseURL  string `json:"graphBaseUrl" yaml:"graphBaseUrl"`
	DialogBaseURL string `json:"dialogBaseUrl" yaml:"dialogBaseUrl"`

	// Messaging tag sent with every outbound message
	MessagingTag string `json:"messagingTag" yaml:"messagingTag"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	StateTTL       time.Duration `json:"stateTtl" yaml:"stateTtl"`
}

// QueueConfig defines how verified webhook events reach the worker
type QueueConfig struct {
	// Provider type: "inline", "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Worker push endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`
}

// RabbitMQConfig defines the AMQP broker used by the rabbitmq provider
type RabbitMQConfig struct {
	URL        string        `json:"url" yaml:"url"`
	Exchange   string        `json:"exchange" yaml:"exchange"`
	Queue      string        `json:"queue" yaml:"queue"`
	RoutingKey string        `json:"routingKey" yaml:"routingKey"`
	RetryCount int           `json:"retryCount" yaml:"retryCount"`
	RetryDelay time.Duration `json:"retryDelay" yaml:"retryDelay"`
	Prefetch   int           `json:"prefetch" yaml:"prefetch"`
}

// RedisConfig defines the optional Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	UseTLS   bool   `json:"useTls" yaml:"useTls"`
}

// MetricsConfig defines Prometheus settings
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
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
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.DedupeTTL <= 0 {
		cfg.Worker.DedupeTTL = defaultDedupeTTL
	}

	if cfg.Meta == nil {
		cfg.Meta = &MetaConfig{}
	}
	if cfg.Meta.GraphAPIVersion == "" {
		cfg.Meta.GraphAPIVersion = constants.DefaultGraphAPIVersion
	}
	if cfg.Meta.MessagingTag == "" {
		cfg.Meta.MessagingTag = constants.DefaultMessagingTag
	}
	if cfg.Meta.RequestTimeout <= 0 {
		cfg.Meta.RequestTimeout = defaultMetaRequestTimeout
	}
	if cfg.Meta.StateTTL <= 0 {
		cfg.Meta.StateTTL = defaultOAuthStateTTL
	}

	if cfg.Queue == nil {
		cfg.Queue = &QueueConfig{}
	}
	if cfg.Queue.Provider == "" {
		cfg.Queue.Provider = constants.QueueProviderInline
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "socialdesk"
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
