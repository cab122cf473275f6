package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mauiplayer/radio-api/internal/logging"
	"github.com/mauiplayer/radio-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "radio-api",
	Short: "Radio API server",
	Long: `Radio API - aggregated internet radio stations for the media player

This API proxies the radio-browser.info directory and serves cleaned,
deduplicated station lists as JSON.

Features:
  • Station search, top voted and random lists
  • Variety and comprehensive mixes fanned out across many genres
  • Mirror failover with a remembered preferred host
  • Bitrate filtering that relaxes when too few stations qualify
  • Ten minute response cache`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, err
	}
	return config.GetConfig()
}

// setupLogging configures the global logger. Flags given on the command
// line win over the configured values.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	level := cfg.Logging.Level
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}

	format := cfg.Logging.Format
	if f := cmd.Flags().Lookup("json-logs"); f != nil && f.Changed {
		format = "console"
		if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
			format = "json"
		}
	}

	logging.Setup(level, format)
}
