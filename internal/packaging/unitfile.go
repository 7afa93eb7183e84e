package packaging

import (
	"fmt"
)

// GenerateUnitFile produces the complete systemd unit file for the focus
// service. The output is fully regenerated from this template on every
// install — never merged with prior unit file content — so a stale or
// hand-edited unit always converges to this canonical shape.
// It calls cfg.ApplyDefaults() to fill in zero-valued fields before
// generating the output.
func GenerateUnitFile(cfg InstallConfig) string {
	cfg.ApplyDefaults()

	return fmt.Sprintf(`[Unit]
Description=Focus website blocker daemon
After=network.target

[Service]
Type=simple
ExecStart=%s daemon
Restart=always
User=root

[Install]
WantedBy=multi-user.target
`, cfg.BinaryPath)
}
