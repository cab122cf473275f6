package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		env      map[string]string
		wantErr  bool
		check    func(t *testing.T)
	}{
		{
			name: "missing config file uses defaults",
			check: func(t *testing.T) {
				assert.Equal(t, 3000, GetInt("server.port"))
				assert.Equal(t, 10*time.Minute, GetDuration("radios.cache_ttl"))
				assert.Equal(t, 45*time.Second, GetDuration("radios.request_timeout"))
				assert.Equal(t, "MauiPlayer/1.0 (api-server)", GetString("directory.user_agent"))
			},
		},
		{
			name: "load from settings.yaml",
			settings: `
server:
  port: 8081
radios:
  max_concurrency: 4
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8081, GetInt("server.port"))
				assert.Equal(t, 4, GetInt("radios.max_concurrency"))
			},
		},
		{
			name: "environment variable override",
			settings: `
server:
  port: 8081
`,
			env: map[string]string{"RADIO_SERVER_PORT": "9090"},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name:    "invalid port",
			env:     map[string]string{"RADIO_SERVER_PORT": "70000"},
			wantErr: true,
		},
		{
			name:    "request timeout must leave room for the response",
			env:     map[string]string{"RADIO_RADIOS_REQUEST_TIMEOUT": "90s"},
			wantErr: true,
		},
		{
			name:  "non-positive concurrency is corrected",
			env:   map[string]string{"RADIO_RADIOS_MAX_CONCURRENCY": "0"},
			check: func(t *testing.T) { assert.Equal(t, 8, GetInt("radios.max_concurrency")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)

			dir := t.TempDir()
			t.Chdir(dir)
			if tt.settings != "" {
				require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
				require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "settings.yaml"), []byte(tt.settings), 0o644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Init()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig_Lists(t *testing.T) {
	reset()
	t.Cleanup(reset)
	t.Chdir(t.TempDir())

	t.Setenv("RADIO_DIRECTORY_HOSTS", "https://a.example, https://b.example,,")
	t.Setenv("RADIO_SECURITY_CORS_ORIGINS", "https://app.example,http://localhost")
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Directory.Hosts)
	assert.Equal(t, DefaultVarietyTags, cfg.Radios.VarietyTags)
	assert.Equal(t, 192, cfg.Radios.MinBitrate.Search)

	// defaults first, duplicates dropped
	assert.Equal(t, append(append([]string{}, DefaultCORSOrigins...), "https://app.example"), cfg.Security.CORSOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 3000},
			Directory: DirectoryConfig{Hosts: []string{"https://de1.api.radio-browser.info"}},
			Radios:    RadiosConfig{CacheTTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "invalid port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "no hosts", mutate: func(c *Config) { c.Directory.Hosts = nil }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.Radios.CacheTTL = 0 }, wantErr: true},
		{name: "request timeout within write timeout", mutate: func(c *Config) { c.Server.WriteTimeout = time.Minute }},
		{name: "request timeout reaching write timeout", mutate: func(c *Config) {
			c.Server.WriteTimeout = 30 * time.Second
			c.Radios.RequestTimeout = 30 * time.Second
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 8, c.Radios.MaxConcurrency)
			assert.Equal(t, 45*time.Second, c.Radios.RequestTimeout)
		})
	}
}
