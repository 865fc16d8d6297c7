package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/web"
)

var (
	flagWebAddr string
	flagOrigins []string
	flagMaxSize int
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the websocket server for browser clients",
	Long: `Start an HTTP server exposing the board presets and a websocket
endpoint. Every websocket connection plays its own board.

Endpoints:
  GET /presets                         - Preset table as JSON
  GET /ws?preset=<name>                - Play a preset
  GET /ws?size=<n>&mines=<m>[&seed=<s>] - Play a custom board (n <= max size)

Messages (JSON):
  client: {"type":"reveal","x":1,"y":2}
          {"type":"new","preset":"medium"}
  server: init, mine_hit, safe_reveal, error

Examples:
  sweeper web
  sweeper web --addr :9000 --origin https://example.com`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (default from config)")
	webCmd.Flags().StringSliceVar(&flagOrigins, "origin", nil, "Allowed CORS origins (default from config)")
	webCmd.Flags().IntVar(&flagMaxSize, "max-size", 0, "Largest custom board side (0 = use config)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg := appConfig
	if flagWebAddr != "" {
		cfg.Web.Address = flagWebAddr
	}
	if len(flagOrigins) > 0 {
		cfg.Web.AllowedOrigins = flagOrigins
	}
	if flagMaxSize > 0 {
		cfg.Web.MaxSize = flagMaxSize
	}

	server := web.NewServer(cfg, logger.WithPrefix("web"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
