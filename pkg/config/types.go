package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Directory    DirectoryConfig    `mapstructure:"directory"`
	Radios       RadiosConfig       `mapstructure:"radios"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Security     SecurityConfig     `mapstructure:"security"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Monitoring   MonitoringConfig   `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DirectoryConfig contains the radio-browser mirror settings
type DirectoryConfig struct {
	Hosts             []string      `mapstructure:"hosts"`
	FallbackURL       string        `mapstructure:"fallback_url"`
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	ShuffleHosts      bool          `mapstructure:"shuffle_hosts"`
}

// RadiosConfig contains aggregation endpoint settings
type RadiosConfig struct {
	MaxConcurrency int              `mapstructure:"max_concurrency"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`
	CacheTTL       time.Duration    `mapstructure:"cache_ttl"`
	FallbackCover  string           `mapstructure:"fallback_cover"`
	VarietyTags    []string         `mapstructure:"variety_tags"`
	MinBitrate     MinBitrateConfig `mapstructure:"min_bitrate"`
}

// MinBitrateConfig holds the starting bitrate threshold for each endpoint
type MinBitrateConfig struct {
	Search        int `mapstructure:"search"`
	TopVoted      int `mapstructure:"topvoted"`
	Random        int `mapstructure:"random"`
	Variety       int `mapstructure:"variety"`
	Comprehensive int `mapstructure:"comprehensive"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	CORSOrigins        []string `mapstructure:"cors_origins"`
	AllowAzureWildcard bool     `mapstructure:"allow_azure_wildcard"`
	EnableRequestID    bool     `mapstructure:"enable_request_id"`
}

// RateLimitConfig contains inbound rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}
