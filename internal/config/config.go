package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envStoreDriver           = "STORE_DRIVER"
	envSeedData              = "SEED_DATA"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envJWTSecret             = "JWT_SECRET"
	envJWTIssuer             = "JWT_ISSUER"
	envJWTAudience           = "JWT_AUDIENCE"
	envJWTExpiry             = "JWT_EXPIRY_MINUTES"
	envLogLevel              = "LOG_LEVEL"
	envLogFormat             = "LOG_FORMAT"
	envLoginRateLimitRPS     = "LOGIN_RATE_LIMIT_RPS"
	envLoginRateLimitBurst   = "LOGIN_RATE_LIMIT_BURST"
	envEnableProfiling       = "ENABLE_PROFILING"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

const (
	defaultServerPort          = "8080"
	defaultServerReadTimeout   = 10 * time.Second
	defaultServerWriteTimeout  = 10 * time.Second
	defaultServerShutdown      = 10 * time.Second
	defaultStoreDriver         = StoreDriverMemory
	defaultSeedData            = true
	defaultDBHost              = "localhost"
	defaultDBPort              = 5432
	defaultDBName              = "taskservice"
	defaultDBUser              = "taskservice_app"
	defaultDBSSLMode           = "disable"
	defaultDBMaxConns          = 25
	defaultDBMinConns          = 5
	defaultJWTIssuer           = "task-service"
	defaultJWTAudience         = "task-service"
	defaultJWTExpiry           = 20 * time.Minute
	defaultLogLevel            = "info"
	defaultLogFormat           = "json"
	defaultLoginRateLimitRPS   = 5
	defaultLoginRateLimitBurst = 10
	minJWTSecretLength         = 32
	minUniqueCharsInSecret     = 16
	minRepeatedCharThreshold   = 4
	maxRepeatedChars           = 2
	errPortRequired            = "PORT must be set"
	errDBPasswordRequired      = "DB_PASSWORD must be set when STORE_DRIVER is postgres"
	errJWTSecretRequired       = "JWT_SECRET must be set"
	errJWTSecretLowEntropy     = "JWT_SECRET has insufficient entropy (appears non-random). Use a cryptographically secure random string."
	errJWTIssuerRequired       = "JWT_ISSUER must not be empty"
	errJWTAudienceRequired     = "JWT_AUDIENCE must not be empty"
	errJWTExpiryPositive       = "JWT_EXPIRY_MINUTES must be positive"
	errRateLimitPositive       = "LOGIN_RATE_LIMIT_RPS and LOGIN_RATE_LIMIT_BURST must be positive"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Log      LogConfig
	App      AppConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver string
	Seed   bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type JWTConfig struct {
	Secret         string
	Issuer         string
	Audience       string
	ExpiryDuration time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type AppConfig struct {
	LoginRateLimitRPS   int
	LoginRateLimitBurst int
	EnableProfiling     bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv(envStoreDriver, defaultStoreDriver)),
			Seed:   getBoolEnv(envSeedData, defaultSeedData),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		JWT: JWTConfig{
			Secret:         os.Getenv(envJWTSecret),
			Issuer:         getEnv(envJWTIssuer, defaultJWTIssuer),
			Audience:       getEnv(envJWTAudience, defaultJWTAudience),
			ExpiryDuration: getDurationEnv(envJWTExpiry, defaultJWTExpiry),
		},
		Log: LogConfig{
			Level:  getEnv(envLogLevel, defaultLogLevel),
			Format: strings.ToLower(getEnv(envLogFormat, defaultLogFormat)),
		},
		App: AppConfig{
			LoginRateLimitRPS:   getIntEnv(envLoginRateLimitRPS, defaultLoginRateLimitRPS),
			LoginRateLimitBurst: getIntEnv(envLoginRateLimitBurst, defaultLoginRateLimitBurst),
			EnableProfiling:     getBoolEnv(envEnableProfiling, false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New(errPortRequired))
	}

	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.Database.Password == "" {
			errs = append(errs, errors.New(errDBPasswordRequired))
		}
	default:
		errs = append(errs, messages.storeDriverInvalid(c.Store.Driver))
	}

	switch {
	case c.JWT.Secret == "":
		errs = append(errs, errors.New(errJWTSecretRequired))
	case len(c.JWT.Secret) < minJWTSecretLength:
		errs = append(errs, messages.jwtSecretTooShort(minJWTSecretLength))
	case !hasMinimumEntropy(c.JWT.Secret):
		errs = append(errs, errors.New(errJWTSecretLowEntropy))
	}

	if strings.TrimSpace(c.JWT.Issuer) == "" {
		errs = append(errs, errors.New(errJWTIssuerRequired))
	}

	if strings.TrimSpace(c.JWT.Audience) == "" {
		errs = append(errs, errors.New(errJWTAudienceRequired))
	}

	if c.JWT.ExpiryDuration <= 0 {
		errs = append(errs, errors.New(errJWTExpiryPositive))
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, messages.logFormatInvalid(c.Log.Format))
	}

	if c.App.LoginRateLimitRPS <= 0 || c.App.LoginRateLimitBurst <= 0 {
		errs = append(errs, errors.New(errRateLimitPositive))
	}

	return errors.Join(errs...)
}

func hasMinimumEntropy(secret string) bool {
	if len(secret) < minJWTSecretLength {
		return false
	}

	charCounts := make(map[rune]int)
	for _, char := range secret {
		charCounts[char]++
	}

	if len(charCounts) < minUniqueCharsInSecret {
		return false
	}

	repeatedChars := 0
	for _, count := range charCounts {
		if count > len(secret)/minRepeatedCharThreshold {
			repeatedChars++
		}
	}

	return repeatedChars <= maxRepeatedChars
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Address returns the listen address for the HTTP server.
func (c *ServerConfig) Address() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
