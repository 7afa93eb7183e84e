// Package packaging implements building and installing focus as a systemd service.
package packaging

import (
	"errors"
)

// InstallConfig holds the configuration for building and installing focus
// as a systemd service. InstallConfig is passed as a constructor argument —
// no file I/O in this package.
type InstallConfig struct {
	// BuildPackage is the Go package to compile into the daemon binary.
	// Default: ./cmd/focus
	BuildPackage string

	// BuildOutput is the path the compiler writes the artifact to.
	// Default: bin/focus
	BuildOutput string

	// BinaryPath is the path to install the focus binary.
	// Default: /usr/local/bin/focus
	BinaryPath string

	// ConfigDir is the configuration directory.
	// Default: /etc/focus
	ConfigDir string

	// UnitFilePath is the path for the systemd unit file.
	// Default: /etc/systemd/system/focus.service
	UnitFilePath string

	// ServiceName is the systemd service name.
	// Default: focus
	ServiceName string

	// LockPath is the advisory lock file held for the pipeline's duration.
	// Default: /var/lock/focus-install.lock
	LockPath string
}

// DefaultBuildPackage is the default Go package compiled into the daemon binary.
const DefaultBuildPackage = "./cmd/focus"

// DefaultBuildOutput is the default compiler output path.
const DefaultBuildOutput = "bin/focus"

// DefaultBinaryPath is the default path to install the focus binary.
const DefaultBinaryPath = "/usr/local/bin/focus"

// DefaultConfigDir is the default configuration directory.
const DefaultConfigDir = "/etc/focus"

// DefaultServiceName is the default systemd service name.
const DefaultServiceName = "focus"

// DefaultUnitFilePath is the default path for the systemd unit file.
const DefaultUnitFilePath = "/etc/systemd/system/focus.service"

// DefaultLockPath is the default advisory lock file path.
const DefaultLockPath = "/var/lock/focus-install.lock"

// ConfigFileName is the daemon's configuration file name inside ConfigDir.
const ConfigFileName = "config.json"

// ApplyDefaults sets default values for zero-valued fields.
func (c *InstallConfig) ApplyDefaults() {
	if c.BuildPackage == "" {
		c.BuildPackage = DefaultBuildPackage
	}
	if c.BuildOutput == "" {
		c.BuildOutput = DefaultBuildOutput
	}
	if c.BinaryPath == "" {
		c.BinaryPath = DefaultBinaryPath
	}
	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir
	}
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.UnitFilePath == "" {
		c.UnitFilePath = DefaultUnitFilePath
	}
	if c.LockPath == "" {
		c.LockPath = DefaultLockPath
	}
}

// Validate checks that required fields are set.
func (c *InstallConfig) Validate() error {
	if c.BuildPackage == "" {
		return errors.New("packaging: config: BuildPackage is required")
	}
	if c.BuildOutput == "" {
		return errors.New("packaging: config: BuildOutput is required")
	}
	if c.BinaryPath == "" {
		return errors.New("packaging: config: BinaryPath is required")
	}
	if c.ConfigDir == "" {
		return errors.New("packaging: config: ConfigDir is required")
	}
	if c.ServiceName == "" {
		return errors.New("packaging: config: ServiceName is required")
	}
	if c.UnitFilePath == "" {
		return errors.New("packaging: config: UnitFilePath is required")
	}
	if c.LockPath == "" {
		return errors.New("packaging: config: LockPath is required")
	}
	return nil
}
