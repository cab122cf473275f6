package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides (RADIO_SERVER_PORT, ...)
const EnvPrefix = "RADIO"

// DefaultConfigPath is where an optional settings file is looked up
const DefaultConfigPath = "./config/settings.yaml"

// Fallbacks applied when the configured values are not positive
const (
	DefaultMaxConcurrency = 8
	DefaultRequestTimeout = 45 * time.Second
)

var (
	once    sync.Once
	initErr error
)

// DefaultCORSOrigins are always accepted, env-provided origins are appended to them
var DefaultCORSOrigins = []string{
	"http://localhost",
	"http://127.0.0.1",
	"http://10.0.2.2",
	"https://localhost",
	"https://127.0.0.1",
}

// DefaultDirectoryHosts are the radio-browser mirrors tried in order
var DefaultDirectoryHosts = []string{
	"https://de1.api.radio-browser.info",
	"https://de2.api.radio-browser.info",
	"https://fi1.api.radio-browser.info",
	"https://nl1.api.radio-browser.info",
}

// DefaultVarietyTags is the tag mix used by the variety endpoint
var DefaultVarietyTags = []string{
	"pop", "rock", "jazz", "electronic", "hip hop",
	"latin", "classical", "lofi", "news", "talk",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(DefaultConfigPath)
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing settings file is fine, defaults and env vars still apply
			var notFound viper.ConfigFileNotFoundError
			if !os.IsNotExist(err) && !errors.As(err, &notFound) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Directory.Hosts = normalizeList(cfg.Directory.Hosts)
	cfg.Radios.VarietyTags = normalizeList(cfg.Radios.VarietyTags)
	cfg.Security.CORSOrigins = mergeOrigins(DefaultCORSOrigins, normalizeList(cfg.Security.CORSOrigins))

	return &cfg, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func invalid(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeConfigInvalid, fmt.Sprintf(format, args...))
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return invalid("invalid server port: %d", port)
	}

	if len(normalizeList(viper.GetStringSlice("directory.hosts"))) == 0 {
		return invalid("no directory hosts configured")
	}

	if viper.GetDuration("radios.cache_ttl") <= 0 {
		return invalid("invalid radios.cache_ttl: %s", viper.GetDuration("radios.cache_ttl"))
	}

	// Auto-correct invalid fan-out width
	if viper.GetInt("radios.max_concurrency") <= 0 {
		viper.Set("radios.max_concurrency", DefaultMaxConcurrency)
	}

	if viper.GetDuration("radios.request_timeout") <= 0 {
		viper.Set("radios.request_timeout", DefaultRequestTimeout)
	}
	requestTimeout := viper.GetDuration("radios.request_timeout")
	writeTimeout := viper.GetDuration("server.write_timeout")
	if writeTimeout > 0 && requestTimeout >= writeTimeout {
		return invalid("radios.request_timeout %s must be shorter than server.write_timeout %s", requestTimeout, writeTimeout)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return invalid("invalid server port: %d", c.Server.Port)
	}

	if len(c.Directory.Hosts) == 0 {
		return invalid("no directory hosts configured")
	}

	if c.Radios.CacheTTL <= 0 {
		return invalid("invalid radios cache ttl: %s", c.Radios.CacheTTL)
	}

	if c.Radios.MaxConcurrency <= 0 {
		c.Radios.MaxConcurrency = DefaultMaxConcurrency
	}

	if c.Radios.RequestTimeout <= 0 {
		c.Radios.RequestTimeout = DefaultRequestTimeout
	}
	if c.Server.WriteTimeout > 0 && c.Radios.RequestTimeout >= c.Server.WriteTimeout {
		return invalid("radios request timeout %s must be shorter than the write timeout %s", c.Radios.RequestTimeout, c.Server.WriteTimeout)
	}

	return nil
}

// normalizeList flattens comma separated entries (as they arrive from env vars),
// trims whitespace and drops blanks.
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func mergeOrigins(defaults, extra []string) []string {
	seen := make(map[string]struct{}, len(defaults)+len(extra))
	merged := make([]string, 0, len(defaults)+len(extra))
	for _, o := range append(append([]string{}, defaults...), extra...) {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		merged = append(merged, o)
	}
	return merged
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Directory defaults
	viper.SetDefault("directory.hosts", DefaultDirectoryHosts)
	viper.SetDefault("directory.fallback_url", "https://all.api.radio-browser.info")
	viper.SetDefault("directory.user_agent", "MauiPlayer/1.0 (api-server)")
	viper.SetDefault("directory.timeout", 8*time.Second)
	viper.SetDefault("directory.requests_per_second", 20)
	viper.SetDefault("directory.burst", 10)
	viper.SetDefault("directory.shuffle_hosts", true)

	// Radios defaults
	viper.SetDefault("radios.max_concurrency", DefaultMaxConcurrency)
	viper.SetDefault("radios.request_timeout", DefaultRequestTimeout)
	viper.SetDefault("radios.cache_ttl", 10*time.Minute)
	viper.SetDefault("radios.fallback_cover", "https://via.placeholder.com/300?text=Radio")
	viper.SetDefault("radios.variety_tags", DefaultVarietyTags)
	viper.SetDefault("radios.min_bitrate.search", 192)
	viper.SetDefault("radios.min_bitrate.topvoted", 192)
	viper.SetDefault("radios.min_bitrate.random", 192)
	viper.SetDefault("radios.min_bitrate.variety", 192)
	viper.SetDefault("radios.min_bitrate.comprehensive", 192)

	// Database defaults
	viper.SetDefault("database.path", "./data/radio.db")
	viper.SetDefault("database.verbose", false)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{})
	viper.SetDefault("security.allow_azure_wildcard", true)
	viper.SetDefault("security.enable_request_id", true)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
}

// reset clears viper state and the init guard so tests can reload configuration
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}
