package packaging

import "errors"

// ErrUnitNotFound reports that systemd does not know the named unit.
// Stopping a service that was never installed returns this error; the
// installer treats it as "nothing to stop" and proceeds.
var ErrUnitNotFound = errors.New("packaging: unit not found")

// SystemdController abstracts systemd service management for testability.
// All methods that modify state must be idempotent: repeating an operation
// that is already applied returns nil.
type SystemdController interface {
	// IsAvailable returns true if systemd (systemctl) is available on the system.
	IsAvailable() bool

	// DaemonReload executes systemctl daemon-reload to reload unit file changes.
	DaemonReload() error

	// Enable enables the named service to start on boot.
	Enable(service string) error

	// Stop stops the named service. Returns nil if the service is loaded but
	// not running; returns an error wrapping ErrUnitNotFound if the unit is
	// unknown to systemd.
	Stop(service string) error

	// Restart stops and starts the named service, starting it if stopped.
	Restart(service string) error
}

// Builder abstracts the source-to-artifact compilation step for testability.
type Builder interface {
	// Build compiles the daemon binary to the configured output path.
	Build() error
}

// RootChecker abstracts privilege checking for testability.
type RootChecker interface {
	// IsRoot returns true if the current process has root privileges.
	IsRoot() bool
}
