package cmd

import (
	"context"
	"fmt"

	"github.com/ThomasBonnelye/invader-comparator/core/config"
	"github.com/ThomasBonnelye/invader-comparator/core/database"
	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/core/storage"

	"github.com/spf13/cobra"
)

// statusCmd reports on the health of the service's dependencies.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check database and storage health",
	Long: `Checks the registry database connection and schema, and the snapshot
bucket in object storage. Intended for operators and deploy scripts.`,
	RunE: runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Database / registry schema
	if db, err := database.Connect(cfg.Database); err != nil {
		fmt.Printf("database:  UNAVAILABLE (%v)\n", err)
	} else {
		fmt.Printf("database:  ok (%s)\n", cfg.Database.Driver)
		if database.HasTable(db, "registry_entries") {
			columns, err := database.GetTableColumns(db, "registry_entries")
			if err != nil {
				fmt.Printf("registry:  table present, inspection failed (%v)\n", err)
			} else {
				fmt.Printf("registry:  table present, %d columns\n", len(columns))
				for _, col := range columns {
					fmt.Printf("           - %s %s\n", col.Field, col.Type)
				}
			}
		} else {
			fmt.Println("registry:  table missing (created on first server start)")
		}
	}

	// Storage / snapshot bucket
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		fmt.Printf("storage:   UNAVAILABLE (%v)\n", err)
		return nil
	}

	exists, err := store.BucketExists(ctx, cfg.Storage.Bucket)
	switch {
	case err != nil:
		fmt.Printf("storage:   UNAVAILABLE (%v)\n", err)
	case !exists:
		fmt.Printf("storage:   ok, bucket %q missing (created on first server start)\n", cfg.Storage.Bucket)
	default:
		fmt.Printf("storage:   ok, bucket %q present\n", cfg.Storage.Bucket)
		if uids, err := gallery.ListSnapshots(ctx, store, cfg.Storage.Bucket); err == nil {
			fmt.Printf("snapshots: %d cached galleries\n", len(uids))
		}
	}

	return nil
}
