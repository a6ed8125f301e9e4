package cmd

import (
	"fmt"
	"os"

	"github.com/ThomasBonnelye/invader-comparator/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "invader-comparator",
	Short: "Invader Comparator Service",
	Long: `Invader Comparator compares street-art invader collections between players.
It serves an HTTP API backed by the remote gallery service, with per-account
UID storage and snapshot caching.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format keeps CLI error reporting readable; debug level gives
		// ISO8601 timestamps instead of epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
