// Package daemon implements the focus foreground service loop.
package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/xxesth/focus/internal/config"
)

// Options configures the daemon loop.
type Options struct {
	// ConfigPath is the configuration file the loop reloads each cycle.
	// Default: /etc/focus/config.json
	ConfigPath string

	// Interval between reload cycles. Default: 10s.
	Interval time.Duration
}

// ApplyDefaults sets default values for zero-valued fields.
func (o *Options) ApplyDefaults() {
	if o.ConfigPath == "" {
		o.ConfigPath = config.DefaultPath
	}
	if o.Interval == 0 {
		o.Interval = 10 * time.Second
	}
}

// Daemon is the foreground service process. It periodically reloads the
// configuration file so rule edits take effect without a restart.
type Daemon struct {
	opts      Options
	logger    *slog.Logger
	ruleCount int
	loaded    bool
}

// New creates a Daemon with defaults applied.
func New(opts Options, logger *slog.Logger) *Daemon {
	opts.ApplyDefaults()
	return &Daemon{
		opts:   opts,
		logger: logger.With("component", "daemon"),
	}
}

// Run starts the reload loop. It blocks until ctx is cancelled. The first
// cycle runs immediately; subsequent cycles run at the configured interval.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("daemon started",
		"config", d.opts.ConfigPath,
		"interval", d.opts.Interval,
	)

	d.runCycle()

	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("daemon stopped")
			return ctx.Err()
		case <-ticker.C:
			d.runCycle()
		}
	}
}

// runCycle reloads the configuration. A read or parse failure is logged and
// the previous rule set stays in effect until the next cycle.
func (d *Daemon) runCycle() {
	cfg, err := config.Load(d.opts.ConfigPath)
	if err != nil {
		d.logger.Warn("config reload failed", "error", err)
		return
	}
	if !d.loaded || len(cfg.Rules) != d.ruleCount {
		d.logger.Info("rules loaded", "count", len(cfg.Rules))
	}
	d.loaded = true
	d.ruleCount = len(cfg.Rules)
}
