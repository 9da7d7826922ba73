package httpserver

import (
	"database/sql"
	"errors"

	"sso-anythingllm-srv/config"
	"sso-anythingllm-srv/internal/apikey"
	apikeyJob "sso-anythingllm-srv/internal/apikey/delivery/job"
	"sso-anythingllm-srv/internal/user"
	"sso-anythingllm-srv/pkg/anythingllm"
	"sso-anythingllm-srv/pkg/encrypter"
	"sso-anythingllm-srv/pkg/kafka"
	"sso-anythingllm-srv/pkg/keycloak"
	"sso-anythingllm-srv/pkg/log"
	pkgRedis "sso-anythingllm-srv/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration
	producer kafka.IProducer

	// Downstream & Identity Configuration
	llm      anythingllm.IClient
	verifier keycloak.IVerifier
	provider keycloak.IProvider

	// Authentication & Security Configuration
	config    *config.Config
	encrypter encrypter.Encrypter

	// Monitoring Configuration
	registry *prometheus.Registry

	// Usecases shared between domains, set up by mapHandlers
	apiKeyUC apikey.UseCase
	userUC   user.UseCase

	// Background jobs, nil when none is scheduled
	scheduler apikeyJob.Scheduler
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration
	Producer kafka.IProducer

	// Downstream & Identity Configuration
	AnythingLLM anythingllm.IClient
	Verifier    keycloak.IVerifier
	// Provider enables the Keycloak browser login. Optional.
	Provider keycloak.IProvider

	// Authentication & Security Configuration
	Config    *config.Config
	Encrypter encrypter.Encrypter

	// Monitoring Configuration
	Registry *prometheus.Registry
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	producer := cfg.Producer
	if producer == nil {
		producer = kafka.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		producer: producer,

		// Downstream & Identity Configuration
		llm:      cfg.AnythingLLM,
		verifier: cfg.Verifier,
		provider: cfg.Provider,

		// Authentication & Security Configuration
		config:    cfg.Config,
		encrypter: cfg.Encrypter,

		// Monitoring Configuration
		registry: registry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Downstream & Identity Configuration
	if srv.llm == nil {
		return errors.New("anythingllm client is required")
	}
	if srv.verifier == nil {
		return errors.New("verifier is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	return nil
}
