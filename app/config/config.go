package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendBadger  = "badger"
	BackendMongoDB = "mongodb"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Store configuration
	StoreBackend  string
	BadgerPath    string
	BackupDir     string
	MongoURI      string
	MongoDatabase string

	// ImageKit configuration
	ImageKitPublicKey    string
	ImageKitPrivateKey   string
	ImageKitURLEndpoint  string
	ImageKitUploadPrefix string
	ImageKitTimeout      time.Duration

	// Request handling
	MaxUploadBytes     int64
	CORSAllowedOrigins []string
	RateLimitPerMinute int

	LogLevel string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("HTTP_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 60*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 120*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("STORE_BACKEND", BackendBadger)
	v.SetDefault("BADGER_PATH", "data/badger")
	v.SetDefault("BADGER_BACKUP_DIR", "data/backups")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "quickblog")
	v.SetDefault("IMAGEKIT_PUBLIC_KEY", "")
	v.SetDefault("IMAGEKIT_PRIVATE_KEY", "")
	v.SetDefault("IMAGEKIT_URL_ENDPOINT", "")
	v.SetDefault("IMAGEKIT_UPLOAD_PREFIX", "https://upload.imagekit.io/api/v1/")
	v.SetDefault("IMAGEKIT_TIMEOUT", 30*time.Second)
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 100)
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads configuration from an optional .env file, an optional
// quickblog.{yaml,json,toml} in the working directory (or the file named by
// QUICKBLOG_CONFIG) and the environment, in increasing precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	if path := os.Getenv("QUICKBLOG_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("quickblog")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		Port:                 v.GetString("PORT"),
		ReadTimeout:          v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout:         v.GetDuration("HTTP_WRITE_TIMEOUT"),
		IdleTimeout:          v.GetDuration("HTTP_IDLE_TIMEOUT"),
		ShutdownTimeout:      v.GetDuration("SHUTDOWN_TIMEOUT"),
		StoreBackend:         strings.ToLower(v.GetString("STORE_BACKEND")),
		BadgerPath:           v.GetString("BADGER_PATH"),
		BackupDir:            v.GetString("BADGER_BACKUP_DIR"),
		MongoURI:             v.GetString("MONGODB_URI"),
		MongoDatabase:        v.GetString("MONGODB_DATABASE"),
		ImageKitPublicKey:    v.GetString("IMAGEKIT_PUBLIC_KEY"),
		ImageKitPrivateKey:   v.GetString("IMAGEKIT_PRIVATE_KEY"),
		ImageKitURLEndpoint:  v.GetString("IMAGEKIT_URL_ENDPOINT"),
		ImageKitUploadPrefix: v.GetString("IMAGEKIT_UPLOAD_PREFIX"),
		ImageKitTimeout:      v.GetDuration("IMAGEKIT_TIMEOUT"),
		MaxUploadBytes:       v.GetInt64("MAX_UPLOAD_BYTES"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitPerMinute:   v.GetInt("RATE_LIMIT_PER_MINUTE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch c.StoreBackend {
	case BackendBadger:
		if c.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required for the badger backend")
		}
	case BackendMongoDB:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongodb backend")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGODB_DATABASE is required for the mongodb backend")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendBadger, BackendMongoDB, c.StoreBackend)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP timeouts must be positive")
	}
	if c.ImageKitTimeout <= 0 {
		return fmt.Errorf("IMAGEKIT_TIMEOUT must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

// ValidateImageKit reports whether uploads can be made with this configuration.
func (c *Config) ValidateImageKit() error {
	if c.ImageKitURLEndpoint == "" {
		return fmt.Errorf("IMAGEKIT_URL_ENDPOINT is required")
	}
	if c.ImageKitPublicKey == "" {
		return fmt.Errorf("IMAGEKIT_PUBLIC_KEY is required")
	}
	if c.ImageKitPrivateKey == "" {
		return fmt.Errorf("IMAGEKIT_PRIVATE_KEY is required")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
