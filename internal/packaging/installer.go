package packaging

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xxesth/focus/internal/fsutil"
)

// Installer builds the focus binary and installs it as a systemd service.
// Install is idempotent: running it against any prior host state converges
// to the same enabled-and-running end state, so a failed run is recovered
// by simply running again. There is no rollback.
type Installer struct {
	cfg     InstallConfig
	builder Builder
	systemd SystemdController
	root    RootChecker
	logger  *slog.Logger
}

// NewInstaller creates a new Installer with defaults applied.
func NewInstaller(cfg InstallConfig, builder Builder, systemd SystemdController, root RootChecker, logger *slog.Logger) *Installer {
	cfg.ApplyDefaults()
	return &Installer{
		cfg:     cfg,
		builder: builder,
		systemd: systemd,
		root:    root,
		logger:  logger.With("component", "packaging"),
	}
}

// Install runs the full pipeline:
// build → stop (tolerant) → install binary → bootstrap config →
// write unit file → daemon-reload → enable → restart.
// The first untolerated error aborts the run; completed stages are left
// in place and a rerun converges from there.
func (ins *Installer) Install() error {
	// 1. Check root
	if !ins.root.IsRoot() {
		return errors.New("packaging: install requires root privileges")
	}

	// 2. Check systemd
	if !ins.systemd.IsAvailable() {
		return errors.New("packaging: systemd is not available")
	}

	// 3. Take the pipeline lock. Two concurrent runs would interleave
	// stop/install/restart unpredictably.
	lock, err := fsutil.AcquireLock(ins.cfg.LockPath)
	if err != nil {
		if errors.Is(err, fsutil.ErrLocked) {
			return fmt.Errorf("packaging: another install is already running: %w", err)
		}
		return fmt.Errorf("packaging: acquire lock: %w", err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			ins.logger.Info("release lock", "error", err)
		}
	}()

	// 4. Build. Nothing on the host is touched before the compiler succeeds.
	if err := ins.builder.Build(); err != nil {
		return err
	}
	ins.logger.Info("binary built", "output", ins.cfg.BuildOutput)

	// 5. Stop the service. A unit unknown to systemd means a first-time
	// install — nothing to stop.
	if err := ins.systemd.Stop(ins.cfg.ServiceName); err != nil {
		if !errors.Is(err, ErrUnitNotFound) {
			return err
		}
		ins.logger.Info("service not present, skipping stop", "service", ins.cfg.ServiceName)
	} else {
		ins.logger.Info("service stopped", "service", ins.cfg.ServiceName)
	}

	// 6. Install binary
	if err := ins.installBinary(); err != nil {
		return err
	}

	// 7. Bootstrap config
	if err := ins.bootstrapConfig(); err != nil {
		return err
	}

	// 8. Write unit file
	if err := ins.writeUnitFile(); err != nil {
		return err
	}

	// 9. Daemon reload, so enable/restart see the freshly written unit.
	if err := ins.systemd.DaemonReload(); err != nil {
		return fmt.Errorf("packaging: daemon-reload: %w", err)
	}
	ins.logger.Info("systemd daemon reloaded")

	// 10. Enable at boot
	if err := ins.systemd.Enable(ins.cfg.ServiceName); err != nil {
		return fmt.Errorf("packaging: enable: %w", err)
	}
	ins.logger.Info("service enabled", "service", ins.cfg.ServiceName)

	// 11. Restart. This is the activation point: until here a running old
	// binary keeps serving from its own file handle.
	if err := ins.systemd.Restart(ins.cfg.ServiceName); err != nil {
		return fmt.Errorf("packaging: restart: %w", err)
	}
	ins.logger.Info("service restarted", "service", ins.cfg.ServiceName)

	return nil
}

// installBinary places the build artifact at the install path, overwriting
// whatever was there. No checksum or version comparison — convergence comes
// from the unconditional overwrite.
func (ins *Installer) installBinary() error {
	if err := os.MkdirAll(filepath.Dir(ins.cfg.BinaryPath), 0o755); err != nil {
		return fmt.Errorf("packaging: create binary directory: %w", err)
	}
	if err := fsutil.CopyFileAtomic(ins.cfg.BuildOutput, ins.cfg.BinaryPath, 0o755); err != nil {
		return fmt.Errorf("packaging: install binary: %w", err)
	}
	ins.logger.Info("binary installed", "src", ins.cfg.BuildOutput, "dst", ins.cfg.BinaryPath)
	return nil
}

// bootstrapConfig creates the config directory and default config file on a
// fresh host. A pre-existing config directory is treated as an
// already-bootstrapped host: the file check only runs when the directory was
// just created, and an existing config file is never read or rewritten.
func (ins *Installer) bootstrapConfig() error {
	_, err := os.Stat(ins.cfg.ConfigDir)
	if err == nil {
		ins.logger.Info("existing configuration preserved", "dir", ins.cfg.ConfigDir)
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("packaging: stat config directory: %w", err)
	}

	if err := os.MkdirAll(ins.cfg.ConfigDir, 0o755); err != nil {
		return fmt.Errorf("packaging: create config directory: %w", err)
	}
	ins.logger.Info("config directory created", "dir", ins.cfg.ConfigDir)

	configPath := filepath.Join(ins.cfg.ConfigDir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := fsutil.WriteFileAtomic(configPath, []byte(DefaultConfigJSON), 0o644); err != nil {
			return fmt.Errorf("packaging: write default config: %w", err)
		}
		ins.logger.Info("default config written", "path", configPath)
	} else if err != nil {
		return fmt.Errorf("packaging: stat config: %w", err)
	}
	return nil
}

// writeUnitFile fully regenerates the unit file from the canonical template.
// The write is atomic so systemd never reads a half-written unit.
func (ins *Installer) writeUnitFile() error {
	unitDir := filepath.Dir(ins.cfg.UnitFilePath)
	if err := os.MkdirAll(unitDir, 0o755); err != nil {
		return fmt.Errorf("packaging: create unit file directory: %w", err)
	}
	if err := fsutil.WriteFileAtomic(ins.cfg.UnitFilePath, []byte(GenerateUnitFile(ins.cfg)), 0o644); err != nil {
		return fmt.Errorf("packaging: write unit file: %w", err)
	}
	ins.logger.Info("unit file written", "path", ins.cfg.UnitFilePath)
	return nil
}
