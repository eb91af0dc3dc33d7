package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "studenthub.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "15m"
	defaultProvider     = "local"
	defaultLocalDir     = "uploads"
	defaultLocalBaseURL = "http://localhost:8080/uploads"
	defaultMinioBucket  = "studenthub"
	defaultAITimeout    = "30s"
	defaultAIModel      = "gpt-4o-mini"
)

type StorageConfig struct {
	Provider string // local, minio

	// minio
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string

	// local
	LocalDir     string
	LocalBaseURL string
}

type AIConfig struct {
	APIURL  string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type LogConfig struct {
	Level    string
	Format   string
	Output   string
	FilePath string
}

type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
	Storage      StorageConfig
	AI           AIConfig
	Log          LogConfig
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(getEnv("APP_ENV", "dev"))
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.Storage = StorageConfig{
		Provider:     strings.ToLower(strings.TrimSpace(getEnv("STORAGE_PROVIDER", defaultProvider))),
		Endpoint:     strings.TrimSpace(getEnv("MINIO_ENDPOINT", "localhost:9000")),
		AccessKey:    strings.TrimSpace(getEnv("MINIO_ACCESS_KEY", "")),
		SecretKey:    strings.TrimSpace(getEnv("MINIO_SECRET_KEY", "")),
		Bucket:       strings.TrimSpace(getEnv("MINIO_BUCKET", defaultMinioBucket)),
		UseSSL:       parseBoolEnv("MINIO_USE_SSL", "false"),
		PublicURL:    strings.TrimSpace(getEnv("MINIO_PUBLIC_URL", "")),
		LocalDir:     strings.TrimSpace(getEnv("LOCAL_STORAGE_DIR", defaultLocalDir)),
		LocalBaseURL: strings.TrimSpace(getEnv("LOCAL_STORAGE_BASE_URL", defaultLocalBaseURL)),
	}

	cfg.AI = AIConfig{
		APIURL: strings.TrimSpace(getEnv("AI_API_URL", "")),
		APIKey: strings.TrimSpace(getEnv("AI_API_KEY", "")),
		Model:  strings.TrimSpace(getEnv("AI_MODEL", defaultAIModel)),
	}
	cfg.AI.Timeout, err = parseDurationEnv("AI_TIMEOUT", defaultAITimeout)
	if err != nil {
		return nil, err
	}

	cfg.Log = LogConfig{
		Level:    strings.TrimSpace(getEnv("LOG_LEVEL", "info")),
		Format:   strings.TrimSpace(getEnv("LOG_FORMAT", "json")),
		Output:   strings.TrimSpace(getEnv("LOG_OUTPUT", "stdout")),
		FilePath: strings.TrimSpace(getEnv("LOG_FILE", "logs/studenthub.log")),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.Storage.Provider != "local" && cfg.Storage.Provider != "minio" {
		return fmt.Errorf("STORAGE_PROVIDER must be one of: local, minio")
	}
	if cfg.Storage.Provider == "minio" {
		if cfg.Storage.AccessKey == "" || cfg.Storage.SecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY must be set when STORAGE_PROVIDER=minio")
		}
		if cfg.Storage.Bucket == "" {
			return fmt.Errorf("MINIO_BUCKET must not be empty")
		}
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
