package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThomasBonnelye/invader-comparator/core/config"
	"github.com/ThomasBonnelye/invader-comparator/core/database"
	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
	"github.com/ThomasBonnelye/invader-comparator/core/loader"
	"github.com/ThomasBonnelye/invader-comparator/core/logger"
	"github.com/ThomasBonnelye/invader-comparator/core/middleware/auth"
	"github.com/ThomasBonnelye/invader-comparator/core/middleware/rayid"
	"github.com/ThomasBonnelye/invader-comparator/core/storage"

	"github.com/ThomasBonnelye/invader-comparator/feature/comparison"
	"github.com/ThomasBonnelye/invader-comparator/feature/players"
	"github.com/ThomasBonnelye/invader-comparator/feature/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/ThomasBonnelye/invader-comparator/docs/swagger"
)

// @title Invader Comparator API
// @version 1.0
// @description API for comparing invader collections between players.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the invader comparator server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Without it the UID registry is disabled; ad hoc comparisons still work.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, registry disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to registry database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 5. Gallery source, with optional snapshot cache on top
		var source gallery.Source = gallery.NewClient(cfg.Gallery)
		if cfg.Gallery.CacheTTLSeconds > 0 {
			if store, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Storage client unavailable, snapshot cache disabled", zap.Error(err))
			} else if err := gallery.EnsureBucket(cmd.Context(), store, cfg.Storage.Bucket); err != nil {
				logg.Warn("Snapshot bucket unavailable, snapshot cache disabled", zap.Error(err))
			} else {
				ttl := time.Duration(cfg.Gallery.CacheTTLSeconds) * time.Second
				source = gallery.NewCachedSource(source, store, cfg.Storage.Bucket, ttl, logg)
				logg.Info("Gallery snapshot cache enabled",
					zap.String("bucket", cfg.Storage.Bucket), zap.Duration("ttl", ttl))
			}
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		var provider comparison.UIDProvider
		if db != nil {
			regService := registry.NewService(db, logg)
			provider = regService
			mgr.Register(registry.NewFeature(regService))
		}
		mgr.Register(comparison.NewFeature(source, provider, logg))
		mgr.Register(players.NewFeature(source, logg))

		// Middleware Registration
		// RayID must be first so everything is traceable
		app.Use(rayid.New())

		// Request logging on top of Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
