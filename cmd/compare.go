package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ThomasBonnelye/invader-comparator/core/config"
	"github.com/ThomasBonnelye/invader-comparator/core/database"
	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/core/logger"
	"github.com/ThomasBonnelye/invader-comparator/core/storage"
	"github.com/ThomasBonnelye/invader-comparator/feature/comparison"
	"github.com/ThomasBonnelye/invader-comparator/feature/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareReference string
	compareTargets   string
	compareAccount   string
	compareFilter    string
	compareNoCache   bool
)

// compareCmd runs a one-shot comparison and prints the report as JSON.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare invader collections without starting the server",
	Long: `Compare target players' invader collections against a reference player
and print the report as JSON.

UIDs come either from explicit flags or from an account stored in the registry.

Examples:
  # Explicit UIDs
  compare --reference my-uid --targets uid1,uid2

  # Stored UIDs for an account (requires the database)
  compare --account thomas

  # Only show invaders matching a term
  compare --account thomas --filter PA_

  # Bypass the snapshot cache
  compare --reference my-uid --targets uid1 --no-cache`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareReference, "reference", "", "Reference player UID")
	compareCmd.Flags().StringVar(&compareTargets, "targets", "", "Comma-separated target player UIDs")
	compareCmd.Flags().StringVar(&compareAccount, "account", "", "Account whose stored UIDs to compare")
	compareCmd.Flags().StringVar(&compareFilter, "filter", "", "Case-insensitive substring filter on the result")
	compareCmd.Flags().BoolVar(&compareNoCache, "no-cache", false, "Bypass the gallery snapshot cache")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if compareAccount == "" && compareReference == "" {
		return fmt.Errorf("either --account or --reference is required")
	}

	// Gallery source, with the snapshot cache unless bypassed
	var source gallery.Source = gallery.NewClient(cfg.Gallery)
	if !compareNoCache && cfg.Gallery.CacheTTLSeconds > 0 {
		if store, err := storage.NewClient(cfg.Storage); err == nil {
			ttl := time.Duration(cfg.Gallery.CacheTTLSeconds) * time.Second
			source = gallery.NewCachedSource(source, store, cfg.Storage.Bucket, ttl, l)
		} else {
			l.Warn("Storage client unavailable, fetching without cache", zap.Error(err))
		}
	}

	reference := compareReference
	targets := splitUIDs(compareTargets)

	// Resolve stored UIDs when an account is given
	if compareAccount != "" {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		regService := registry.NewService(db, l)
		if err := regService.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate registry schema: %w", err)
		}

		storedRef, storedTargets, err := regService.UIDs(ctx, compareAccount)
		if err != nil {
			return err
		}
		if storedRef == "" {
			return fmt.Errorf("no reference uid stored for account %s", compareAccount)
		}
		reference = storedRef
		targets = append(storedTargets, targets...)
	}

	service := comparison.NewService(source, nil, l)
	report, err := service.CompareUIDs(ctx, reference, targets)
	if err != nil {
		return err
	}
	report.Exclusive = comparison.Filter(report.Exclusive, compareFilter)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// splitUIDs splits a comma-separated flag value, dropping blanks.
func splitUIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var uids []string
	for _, uid := range strings.Split(raw, ",") {
		if uid = strings.TrimSpace(uid); uid != "" {
			uids = append(uids, uid)
		}
	}
	return uids
}
