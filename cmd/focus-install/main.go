// Package main is the entry point for the focus-install binary: it builds
// the focus daemon, installs it as a systemd service, and brings it to an
// enabled, running state. It takes no arguments; rerunning it converges any
// prior host state to the same end state.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xxesth/focus/internal/packaging"
)

var rootCmd = &cobra.Command{
	Use:   "focus-install",
	Short: "Build and install focus as a systemd service",
	Long: "Build the focus binary from source and install it as a systemd\n" +
		"service: stop any running instance, place the new binary, bootstrap\n" +
		"default configuration, regenerate the unit file, then enable and\n" +
		"restart the service.",
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := packaging.InstallConfig{}
	cfg.ApplyDefaults()

	installer := packaging.NewInstaller(
		cfg,
		packaging.NewGoBuilder(cfg.BuildPackage, cfg.BuildOutput),
		packaging.NewSystemdController(),
		packaging.NewRootChecker(),
		logger,
	)

	if err := installer.Install(); err != nil {
		return fmt.Errorf("focus install: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "focus installed successfully")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
