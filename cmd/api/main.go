package main

import (
	"context"
	"fmt"
	"time"

	"sso-anythingllm-srv/config"
	configLLM "sso-anythingllm-srv/config/anythingllm"
	configKafka "sso-anythingllm-srv/config/kafka"
	configPostgre "sso-anythingllm-srv/config/postgre"
	configRedis "sso-anythingllm-srv/config/redis"
	_ "sso-anythingllm-srv/docs" // Import swagger docs
	"sso-anythingllm-srv/internal/httpserver"
	"sso-anythingllm-srv/pkg/encrypter"
	"sso-anythingllm-srv/pkg/keycloak"
	"sso-anythingllm-srv/pkg/log"
	"sso-anythingllm-srv/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	serviceName    = "sso-anythingllm-srv"
	serviceVersion = "1.0.0"
)

// @title       SSO AnythingLLM Service API
// @description Maps Keycloak identities to AnythingLLM accounts and signs users into AnythingLLM.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name sso_access_token
// @description Keycloak access token stored in a cookie.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Keycloak access token. Format: "Bearer {token}"
//
// @securityDefinitions.apikey InternalKey
// @in header
// @name X-Internal-Key
// @description Shared secret for /internal routes.
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize tracing (optional)
	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRatio:    cfg.Tracing.SampleRatio,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warnf(ctx, "Tracing shutdown failed: %v", err)
		}
	}()
	if cfg.Tracing.Enabled {
		logger.Infof(ctx, "Tracing exports to %s", cfg.Tracing.Endpoint)
	}

	// 4. Initialize encrypter
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Error(ctx, "Failed to initialize encrypter: ", err)
		return
	}

	// 5. Initialize PostgreSQL and apply migrations
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.Migrate {
		if err := configPostgre.Migrate(ctx, postgresDB); err != nil {
			logger.Error(ctx, "Failed to migrate PostgreSQL: ", err)
			return
		}
		logger.Infof(ctx, "PostgreSQL schema is up to date")
	}

	// 6. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Initialize Kafka producer (optional)
	producer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer configKafka.Disconnect()
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warnf(ctx, "Kafka brokers not configured, user events are not published")
	} else {
		logger.Infof(ctx, "Kafka producer publishing to %s", cfg.Kafka.Topic)
	}

	// 8. Initialize metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 9. Initialize AnythingLLM client
	llmClient, err := configLLM.Connect(logger, cfg.AnythingLLM, registry)
	if err != nil {
		logger.Error(ctx, "Failed to initialize AnythingLLM client: ", err)
		return
	}
	defer configLLM.Disconnect()
	logger.Infof(ctx, "AnythingLLM client targeting %s (retries %d, verify ssl %t)", cfg.AnythingLLM.URL, cfg.AnythingLLM.MaxRetries, cfg.AnythingLLM.VerifySSL)

	// 10. Initialize Keycloak
	// Discovers the realm; the browser login is enabled only with a redirect url and client secret
	provider, err := keycloak.New(ctx, keycloak.Config{
		IssuerURL:         cfg.Keycloak.IssuerURL,
		ClientID:          cfg.Keycloak.ClientID,
		ClientSecret:      cfg.Keycloak.ClientSecret,
		RedirectURL:       cfg.Keycloak.RedirectURL,
		Scopes:            cfg.Keycloak.Scopes,
		SkipClientIDCheck: cfg.Keycloak.SkipClientIDCheck,
		IDClaim:           cfg.Keycloak.IDClaim,
		UsernameClaim:     cfg.Keycloak.UsernameClaim,
		GroupClaim:        cfg.Keycloak.GroupClaim,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Keycloak provider: ", err)
		return
	}
	logger.Infof(ctx, "Keycloak realm discovered at %s", cfg.Keycloak.IssuerURL)

	verifier := keycloak.NewCachedVerifier(provider, cfg.Cache.TokenCacheSize, cfg.Cache.TokenCacheTTL)

	var browserFlow keycloak.IProvider
	if cfg.Keycloak.RedirectURL != "" && cfg.Keycloak.ClientSecret != "" {
		browserFlow = provider
	}

	// 11. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging Configuration
		Producer: producer,

		// Downstream & Identity Configuration
		AnythingLLM: llmClient,
		Verifier:    verifier,
		Provider:    browserFlow,

		// Authentication & Security Configuration
		Config:    cfg,
		Encrypter: encrypterInstance,

		// Monitoring Configuration
		Registry: registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
