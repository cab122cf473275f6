package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mauiplayer/radio-api/api"
	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/api/version"
	"github.com/mauiplayer/radio-api/internal/database"
	"github.com/mauiplayer/radio-api/internal/metrics"
	"github.com/mauiplayer/radio-api/internal/services/counter"
	"github.com/mauiplayer/radio-api/internal/services/radiobrowser"
	"github.com/mauiplayer/radio-api/internal/services/radios"
	"github.com/mauiplayer/radio-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Radio API server with the configured settings.

The server answers the /api/radios endpoints from the radio-browser
directory, plus status, greeting, counter, health and metrics routes.

Example:
  radio-api serve
  radio-api serve --port 9090
  radio-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cmd, cfg)

	// Use config values if flags not provided
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	server, db, err := buildServer(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", server.Addr()).Str("version", Version).Msg("Starting Radio API server")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case runErr = <-serverErr:
		log.Error().Err(runErr).Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return runErr
}

// buildServer wires every dependency from the configuration. The returned
// database must be closed by the caller.
func buildServer(cfg *config.Config) (*api.Server, *database.DB, error) {
	version.Version = Version
	version.GitCommit = GitCommit

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Monitoring.Enabled {
		m = metrics.New()
	}

	directoryCfg := radiobrowser.Config{
		Hosts:             cfg.Directory.Hosts,
		FallbackURL:       cfg.Directory.FallbackURL,
		UserAgent:         cfg.Directory.UserAgent,
		Timeout:           cfg.Directory.Timeout,
		RequestsPerSecond: cfg.Directory.RequestsPerSecond,
		Burst:             cfg.Directory.Burst,
		ShuffleHosts:      cfg.Directory.ShuffleHosts,
	}
	radiosCfg := radios.Config{
		MaxConcurrency: cfg.Radios.MaxConcurrency,
		RequestTimeout: cfg.Radios.RequestTimeout,
		MinBitrate: radios.MinBitrate{
			Search:        cfg.Radios.MinBitrate.Search,
			TopVoted:      cfg.Radios.MinBitrate.TopVoted,
			Random:        cfg.Radios.MinBitrate.Random,
			Variety:       cfg.Radios.MinBitrate.Variety,
			Comprehensive: cfg.Radios.MinBitrate.Comprehensive,
		},
		VarietyTags:   cfg.Radios.VarietyTags,
		FallbackCover: cfg.Radios.FallbackCover,
	}
	if m != nil {
		directoryCfg.Observer = m
		radiosCfg.Recorder = m
	}

	client := radiobrowser.NewClient(directoryCfg)
	cache := radios.NewCache(cfg.Radios.CacheTTL, radios.SystemClock{})

	server := api.NewServer(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	server.SetTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.MaxHeaderBytes)
	server.SetRouteConfig(api.RouteConfigFromConfig(cfg))
	server.SetDependencies(&types.Dependencies{
		DB:             db,
		RadioService:   radios.NewService(client, cache, radiosCfg),
		Directory:      client,
		CounterService: counter.NewService(counter.NewRepository(db.DB)),
		Metrics:        m,
	})

	if err := server.Initialize(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	log.Info().
		Strs("hosts", client.TrialOrder()).
		Dur("cache_ttl", cache.TTL()).
		Int("max_concurrency", cfg.Radios.MaxConcurrency).
		Dur("request_timeout", cfg.Radios.RequestTimeout).
		Bool("metrics", m != nil).
		Msg("Radio API configured")

	return server, db, nil
}
