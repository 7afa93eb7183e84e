package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/xxesth/focus/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured blocking rules",
	Long:  "Read the configuration file and print the blocking rules. Useful as a post-install smoke test.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("focus list: %w", err)
	}

	if len(cfg.Rules) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no rules configured")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tSTART\tEND\tEXCEPTION UNTIL")
	now := time.Now()
	for _, rule := range cfg.Rules {
		exception := "-"
		if rule.ExceptionUntil != nil && rule.ExceptionUntil.After(now) {
			exception = rule.ExceptionUntil.Format("15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rule.Domain, rule.StartTime, rule.EndTime, exception)
	}
	return w.Flush()
}
