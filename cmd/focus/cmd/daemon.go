package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xxesth/focus/internal/daemon"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the focus service in the foreground",
	Long: "Run the focus service in the foreground. This is the systemd unit's\n" +
		"entry point; it reloads the configuration file on a fixed interval\n" +
		"and exits cleanly on SIGTERM/SIGINT.",
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	logger := setupLogger(logLevel)
	logger.Info("starting focus", "version", buildVersion)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	d := daemon.New(daemon.Options{ConfigPath: cfgFile}, logger)
	if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("focus daemon: %w", err)
	}
	return nil
}
