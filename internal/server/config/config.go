package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	API     APIConfig     `mapstructure:"api"`
	Store   StoreConfig   `mapstructure:"store"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// APIConfig represents the API configuration
type APIConfig struct {
	// CORS settings
	CORS CORSConfig `mapstructure:"cors"`

	// Rate limiting
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// CORSConfig represents the CORS configuration. The allowed origin is
// always the caller's own Origin header (or * when absent); agents and
// dashboards talk to the collector from anywhere by design.
type CORSConfig struct {
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	MaxAge         int      `mapstructure:"max_age"`
}

// RateLimitConfig represents the rate limiting configuration
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// StoreConfig represents the report store time windows
type StoreConfig struct {
	// FreshWindow bounds the age of reports that feed aggregation.
	FreshWindow time.Duration `mapstructure:"fresh_window"`

	// OfflineThreshold is the age past which a listed report is flagged
	// offline. Offline entries stay listed until they expire.
	OfflineThreshold time.Duration `mapstructure:"offline_threshold"`

	// ExpiryWindow is the age past which an entry is purged entirely.
	ExpiryWindow time.Duration `mapstructure:"expiry_window"`

	// SweepInterval is the cadence of the background expiry sweep.
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// DisplayConfig represents the cosmetic rename tables applied when
// listing reports
type DisplayConfig struct {
	HostnameMap map[string]string `mapstructure:"hostname_map"`
	GPUModelMap map[string]string `mapstructure:"gpu_model_map"`
}

// LogConfig represents the logging configuration
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// LoadConfig loads server configuration from file. An empty path yields
// the built-in defaults.
func LoadConfig(path string) (*Config, error) {
	var config Config

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	setDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":3000"
	}

	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 30 * time.Second
	}

	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 30 * time.Second
	}

	if config.Server.IdleTimeout == 0 {
		config.Server.IdleTimeout = 120 * time.Second
	}

	if config.Store.FreshWindow == 0 {
		config.Store.FreshWindow = 30 * time.Second
	}

	if config.Store.OfflineThreshold == 0 {
		config.Store.OfflineThreshold = 30 * time.Second
	}

	if config.Store.ExpiryWindow == 0 {
		config.Store.ExpiryWindow = 300 * time.Second
	}

	if config.Store.SweepInterval == 0 {
		config.Store.SweepInterval = time.Minute
	}

	if config.API.RateLimit.Window == 0 {
		config.API.RateLimit.Window = time.Minute
	}

	if config.API.RateLimit.Requests == 0 {
		config.API.RateLimit.Requests = 600
	}

	if config.API.CORS.MaxAge == 0 {
		config.API.CORS.MaxAge = 86400
	}

	if len(config.API.CORS.AllowedMethods) == 0 {
		config.API.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}

	if len(config.API.CORS.AllowedHeaders) == 0 {
		config.API.CORS.AllowedHeaders = []string{"Content-Type"}
	}

	// Legacy rename tables carried over from the previous collector.
	if config.Display.HostnameMap == nil {
		config.Display.HostnameMap = map[string]string{
			"user-ThinkStation-PX": "user-ThinkStation-PX1",
		}
	}

	if config.Display.GPUModelMap == nil {
		config.Display.GPUModelMap = map[string]string{
			"NVIDIA RTX 5880 Ada Generation": "RTX 4080 Ada",
		}
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	if config.Log.MaxSize == 0 {
		config.Log.MaxSize = 100
	}

	if config.Log.MaxBackups == 0 {
		config.Log.MaxBackups = 3
	}

	if config.Log.MaxAge == 0 {
		config.Log.MaxAge = 28
	}
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if err := validateStoreConfig(&config.Store); err != nil {
		return fmt.Errorf("invalid store config: %w", err)
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.API.RateLimit.Enabled && config.API.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate limit requests must be positive")
	}

	return nil
}

// validateStoreConfig validates the store time windows
func validateStoreConfig(config *StoreConfig) error {
	if config.FreshWindow <= 0 {
		return fmt.Errorf("fresh_window must be positive")
	}
	if config.ExpiryWindow <= 0 {
		return fmt.Errorf("expiry_window must be positive")
	}
	if config.ExpiryWindow < config.OfflineThreshold {
		return fmt.Errorf("expiry_window must not be shorter than offline_threshold")
	}
	if config.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive")
	}
	return nil
}
