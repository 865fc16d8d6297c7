// sweeper is a minesweeper for the terminal, playable locally, over SSH,
// or from a browser through the websocket server.
//
// Usage:
//
//	sweeper list              - List board presets
//	sweeper play [preset]     - Play a board
//	sweeper menu              - Pick boards from a menu
//	sweeper serve             - Start the SSH server
//	sweeper web               - Start the websocket server
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default from config: 30)
//	--seed <value>        - Set RNG seed for a reproducible first board
//	--config <path>       - Use a custom config file
//	--log-level <level>   - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/logging"

	// Registers the board presets.
	_ "github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagLogLevel   string

	// Set by the root PersistentPreRunE.
	appConfig config.SweeperConfig
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `Sweeper is a minesweeper you play in the terminal, over SSH,
or from a browser front end talking to its websocket server.

Available commands:
  list     - Show the board presets
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  web      - Start websocket server for browser clients

Examples:
  sweeper list
  sweeper play medium
  sweeper play --size 12 --mines 20
  sweeper serve --ssh :2222
  sweeper web --addr :9000`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appConfig = cfg
	logger = logging.Stderr("sweeper", cfg.LogLevel)
	return nil
}

// runtimeConfig sizes the screen from the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.TickRate
	cfg.Seed = flagSeed
	return cfg
}
