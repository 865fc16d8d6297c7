package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sweeper SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a board picker menu and
its own boards. Nothing is shared between connections.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.sweeper/host_key

Examples:
  sweeper serve                           # Listen on :23234
  sweeper serve --ssh :2222               # Listen on port 2222
  sweeper serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (0 = use config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := appConfig
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = minutes(flagIdleTimeout)
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Connect with: ssh localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// port returns the port of a host:port address, or the address itself.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
