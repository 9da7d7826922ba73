package config

import (
	"fmt"
	"strings"
	"time"

	"sso-anythingllm-srv/pkg/keycloak"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - User mappings, API keys
	Postgres PostgresConfig

	// Redis - Admin token and API key cache
	Redis RedisConfig

	// Kafka - User lifecycle events (optional)
	Kafka KafkaConfig

	// Keycloak - Identity provider
	Keycloak KeycloakConfig

	// AnythingLLM - Downstream API
	AnythingLLM AnythingLLMConfig

	// Tracing - OTLP exporter (optional)
	Tracing TracingConfig

	// Jobs - Scheduled maintenance
	Jobs JobsConfig

	Cache          CacheConfig
	Cookie         CookieConfig
	Encrypter      EncrypterConfig
	InternalConfig InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int `validate:"required,gt=0,lt=65536"`
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host         string `validate:"required"`
	Port         int    `validate:"required"`
	User         string `validate:"required"`
	Password     string
	DBName       string `validate:"required"`
	SSLMode      string
	Schema       string
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required"`
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. Publishing is disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// KeycloakConfig describes the realm and how its tokens map onto users.
type KeycloakConfig struct {
	IssuerURL         string `validate:"required,url"`
	ClientID          string `validate:"required"`
	ClientSecret      string
	RedirectURL       string
	Scopes            []string
	SkipClientIDCheck bool

	// Claim names read from verified tokens.
	IDClaim       string `validate:"required"`
	UsernameClaim string
	GroupClaim    string

	// GroupCorrelations maps Keycloak groups to AnythingLLM roles,
	// formatted as "group,role;other_group,role".
	GroupCorrelations string
	DefaultRole       string `validate:"omitempty,oneof=default manager admin"`
}

// AnythingLLMConfig configures the AnythingLLM API client and the accounts it manages.
type AnythingLLMConfig struct {
	// URL is the API root, e.g. http://anythingllm:3001/api.
	URL string `validate:"required,url"`
	// PublicURL is the browser facing address used for SSO redirects. Defaults to URL without /api.
	PublicURL string `validate:"omitempty,url"`

	// APIKey, when set, is used instead of generating one with the admin account.
	APIKey        string
	AdminUser     string
	AdminPassword string

	DefaultUserPassword string `validate:"required"`

	Timeout          time.Duration `validate:"gt=0"`
	MaxRetries       int           `validate:"gte=0"`
	RetryBaseDelay   time.Duration `validate:"gte=0"`
	RetryMaxDelay    time.Duration `validate:"gte=0"`
	RetryOnRateLimit bool
	VerifySSL        bool
	RateLimit        float64 `validate:"gte=0"`
	RateBurst        int     `validate:"gte=0"`
	CircuitBreaker   bool
	Headers          map[string]string
}

// CacheConfig holds cache TTLs and sizes.
type CacheConfig struct {
	AdminTokenTTL time.Duration `validate:"gt=0"`
	APIKeyTTL     time.Duration `validate:"gt=0"`
	// TokenCacheSize bounds the in-process cache of verified Keycloak tokens. Zero disables it.
	TokenCacheSize int           `validate:"gte=0"`
	TokenCacheTTL  time.Duration `validate:"gte=0"`
}

// TracingConfig configures the OTLP/gRPC trace exporter.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string  `validate:"required_if=Enabled true"`
	Insecure    bool
	SampleRatio float64 `validate:"gte=0,lte=1"`
}

// JobsConfig holds cron schedules. An empty schedule disables the job.
type JobsConfig struct {
	APIKeyRotation string
}

// CookieConfig configures the cookies used by the browser login flow.
type CookieConfig struct {
	Domain    string
	Secure    bool
	Name      string `validate:"required"`
	StateName string `validate:"required"`
	MaxAge    int
}

// EncrypterConfig is the configuration for the encrypter
type EncrypterConfig struct {
	Key string `validate:"required,len=32"`
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret expected in X-Internal-Key. Leave empty to disable internal routes.
	InternalKey string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("sso-anythingllm")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/sso-anythingllm/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Event publishing (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Keycloak
	cfg.Keycloak.IssuerURL = viper.GetString("keycloak.issuer_url")
	cfg.Keycloak.ClientID = viper.GetString("keycloak.client_id")
	cfg.Keycloak.ClientSecret = viper.GetString("keycloak.client_secret")
	cfg.Keycloak.RedirectURL = viper.GetString("keycloak.redirect_url")
	cfg.Keycloak.Scopes = viper.GetStringSlice("keycloak.scopes")
	cfg.Keycloak.SkipClientIDCheck = viper.GetBool("keycloak.skip_client_id_check")
	cfg.Keycloak.IDClaim = viper.GetString("keycloak.id_claim")
	cfg.Keycloak.UsernameClaim = viper.GetString("keycloak.username_claim")
	cfg.Keycloak.GroupClaim = viper.GetString("keycloak.group_claim")
	cfg.Keycloak.GroupCorrelations = viper.GetString("keycloak.group_correlations")
	cfg.Keycloak.DefaultRole = viper.GetString("keycloak.default_role")

	// AnythingLLM
	cfg.AnythingLLM.URL = viper.GetString("anythingllm.url")
	cfg.AnythingLLM.PublicURL = viper.GetString("anythingllm.public_url")
	cfg.AnythingLLM.APIKey = viper.GetString("anythingllm.api_key")
	cfg.AnythingLLM.AdminUser = viper.GetString("anythingllm.admin_user")
	cfg.AnythingLLM.AdminPassword = viper.GetString("anythingllm.admin_password")
	cfg.AnythingLLM.DefaultUserPassword = viper.GetString("anythingllm.default_user_password")
	cfg.AnythingLLM.Timeout = viper.GetDuration("anythingllm.timeout")
	cfg.AnythingLLM.MaxRetries = viper.GetInt("anythingllm.max_retries")
	cfg.AnythingLLM.RetryBaseDelay = viper.GetDuration("anythingllm.retry_base_delay")
	cfg.AnythingLLM.RetryMaxDelay = viper.GetDuration("anythingllm.retry_max_delay")
	cfg.AnythingLLM.RetryOnRateLimit = viper.GetBool("anythingllm.retry_on_rate_limit")
	cfg.AnythingLLM.VerifySSL = viper.GetBool("anythingllm.verify_ssl")
	cfg.AnythingLLM.RateLimit = viper.GetFloat64("anythingllm.rate_limit")
	cfg.AnythingLLM.RateBurst = viper.GetInt("anythingllm.rate_burst")
	cfg.AnythingLLM.CircuitBreaker = viper.GetBool("anythingllm.circuit_breaker")
	cfg.AnythingLLM.Headers = viper.GetStringMapString("anythingllm.headers")
	if cfg.AnythingLLM.PublicURL == "" {
		cfg.AnythingLLM.PublicURL = strings.TrimSuffix(strings.TrimRight(cfg.AnythingLLM.URL, "/"), "/api")
	}

	// Tracing
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.Endpoint = viper.GetString("tracing.endpoint")
	cfg.Tracing.Insecure = viper.GetBool("tracing.insecure")
	cfg.Tracing.SampleRatio = viper.GetFloat64("tracing.sample_ratio")

	// Jobs
	cfg.Jobs.APIKeyRotation = viper.GetString("jobs.api_key_rotation")

	// Cache
	cfg.Cache.AdminTokenTTL = viper.GetDuration("cache.admin_token_ttl")
	cfg.Cache.APIKeyTTL = viper.GetDuration("cache.api_key_ttl")
	cfg.Cache.TokenCacheSize = viper.GetInt("cache.token_cache_size")
	cfg.Cache.TokenCacheTTL = viper.GetDuration("cache.token_cache_ttl")

	// Cookie
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.StateName = viper.GetString("cookie.state_name")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Internal auth key
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.schema", "public")
	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.migrate", true)

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. Kafka (disabled unless brokers are set)
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "sso-anythingllm.user.events")

	// 4. Keycloak
	viper.SetDefault("keycloak.scopes", []string{"openid", "profile", "email"})
	viper.SetDefault("keycloak.id_claim", "sub")
	viper.SetDefault("keycloak.username_claim", "preferred_username")
	viper.SetDefault("keycloak.group_claim", "groups")
	viper.SetDefault("keycloak.default_role", "default")

	// 5. AnythingLLM
	viper.SetDefault("anythingllm.url", "http://localhost:3001/api")
	viper.SetDefault("anythingllm.default_user_password", "default-user-password")
	viper.SetDefault("anythingllm.timeout", 30*time.Second)
	viper.SetDefault("anythingllm.max_retries", 3)
	viper.SetDefault("anythingllm.retry_base_delay", time.Second)
	viper.SetDefault("anythingllm.retry_max_delay", 30*time.Second)
	viper.SetDefault("anythingllm.retry_on_rate_limit", false)
	viper.SetDefault("anythingllm.verify_ssl", true)
	viper.SetDefault("anythingllm.rate_limit", 0)
	viper.SetDefault("anythingllm.rate_burst", 10)
	viper.SetDefault("anythingllm.circuit_breaker", false)

	// Tracing
	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.insecure", true)
	viper.SetDefault("tracing.sample_ratio", 1.0)

	// Jobs
	viper.SetDefault("jobs.api_key_rotation", "")

	// Cache
	viper.SetDefault("cache.admin_token_ttl", 30*time.Minute)
	viper.SetDefault("cache.api_key_ttl", 24*time.Hour)
	viper.SetDefault("cache.token_cache_size", 1024)
	viper.SetDefault("cache.token_cache_ttl", time.Minute)

	// Cookie
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.name", "sso_access_token")
	viper.SetDefault("cookie.state_name", "sso_oauth_state")
	viper.SetDefault("cookie.max_age", 300)
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Either a static API key or admin credentials to generate one.
	if cfg.AnythingLLM.APIKey == "" && (cfg.AnythingLLM.AdminUser == "" || cfg.AnythingLLM.AdminPassword == "") {
		return fmt.Errorf("anythingllm.api_key or anythingllm.admin_user and anythingllm.admin_password are required")
	}
	if cfg.AnythingLLM.RetryMaxDelay > 0 && cfg.AnythingLLM.RetryBaseDelay > cfg.AnythingLLM.RetryMaxDelay {
		return fmt.Errorf("anythingllm.retry_base_delay must not exceed anythingllm.retry_max_delay")
	}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}
	if _, err := keycloak.ParseGroupCorrelations(cfg.Keycloak.GroupCorrelations); err != nil {
		return fmt.Errorf("keycloak.group_correlations: %w", err)
	}
	if cfg.Jobs.APIKeyRotation != "" {
		if cfg.AnythingLLM.APIKey != "" {
			return fmt.Errorf("jobs.api_key_rotation cannot rotate a static anythingllm.api_key")
		}
		if _, err := cron.ParseStandard(cfg.Jobs.APIKeyRotation); err != nil {
			return fmt.Errorf("jobs.api_key_rotation: %w", err)
		}
	}

	return nil
}
