// invaders is a small vertical shooter for the terminal and the desktop.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window
//	invaders sim             - Run a headless autopilot session
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--log-level <level> - Override the configured log level
//	--log-file <path>   - Override the configured log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacey-invader/internal/config"
	"github.com/vovakirdan/spacey-invader/internal/core"
	"github.com/vovakirdan/spacey-invader/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Spacey Invader - shoot down the descending ships",
	Long: `Spacey Invader is a vertical shooter. Enemy ships descend from the top
of the playfield and fire back; shoot them down before they reach you.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless autopilot session
  config   - Print the effective configuration

Examples:
  invaders play
  invaders window --seed 42
  invaders sim --ticks 36000 --profile cpu
  invaders config > ~/.spacey-invader/configs/invaders.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger for a command. Logs go to the configured
// file, else to fallback.
func newLogger(cfg config.InvadersConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	logger, closer, err := logging.New(cfg.Logging, fallback)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("config loaded", "path", configSource())
	return logger, closer, nil
}

func configSource() string {
	if flagConfig != "" {
		return flagConfig
	}
	return "search path"
}

// runtimeConfig builds the runtime config shared by every frontend.
func runtimeConfig(cfg config.InvadersConfig, screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
}
