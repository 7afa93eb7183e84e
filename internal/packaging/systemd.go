package packaging

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// realSystemdController implements SystemdController using os/exec to call systemctl.
type realSystemdController struct{}

// NewSystemdController returns a SystemdController that calls the real systemctl binary.
func NewSystemdController() SystemdController {
	return &realSystemdController{}
}

func (c *realSystemdController) IsAvailable() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}

func (c *realSystemdController) DaemonReload() error {
	return c.run("daemon-reload")
}

func (c *realSystemdController) Enable(service string) error {
	return c.run("enable", service)
}

func (c *realSystemdController) Stop(service string) error {
	cmd := exec.Command("systemctl", "stop", service)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if isUnitNotFound(string(output)) {
			return fmt.Errorf("packaging: systemctl stop %s: %w", service, ErrUnitNotFound)
		}
		return fmt.Errorf("packaging: systemctl stop: %s: %w", strings.TrimSpace(string(output)), err)
	}
	return nil
}

func (c *realSystemdController) Restart(service string) error {
	return c.run("restart", service)
}

func (c *realSystemdController) run(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("packaging: systemctl %s: %s: %w", args[0], strings.TrimSpace(string(output)), err)
	}
	return nil
}

// isUnitNotFound reports whether systemctl output describes a unit that is
// unknown to systemd. systemctl stop exits zero for a loaded-but-inactive
// unit, so only the unknown-unit wording needs classification.
func isUnitNotFound(output string) bool {
	lower := strings.ToLower(output)
	for _, marker := range []string{"not loaded", "could not be found", "no such unit"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// realRootChecker implements RootChecker using os.Getuid.
type realRootChecker struct{}

// NewRootChecker returns a RootChecker that checks the real process UID.
func NewRootChecker() RootChecker {
	return &realRootChecker{}
}

func (c *realRootChecker) IsRoot() bool {
	return os.Getuid() == 0
}
