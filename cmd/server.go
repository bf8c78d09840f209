package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"movieshelf/internal/activity"
	"movieshelf/internal/config"
	"movieshelf/internal/db"
	"movieshelf/internal/movies"
	"movieshelf/internal/server"
	"movieshelf/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the movieshelf HTTP server",
	Long:  `Starts the movieshelf server with the REST API, live updates, and the browser client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}

		// Open database.
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		if cfg.Seed.Enabled {
			inserted, err := database.SeedIfEmpty(cmd.Context(), cfg.Seed.MinCount, nil)
			if err != nil {
				return fmt.Errorf("seeding catalog: %w", err)
			}
			if inserted > 0 {
				fmt.Fprintf(os.Stderr, "Seeded %d placeholder movies\n", inserted)
			}
		}

		// Create server and register all feature routes.
		srv := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.AllowAllOrigins,
		}, database)
		registerAllRoutes(srv, database, cfg)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "movieshelf v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DBPath)

		return srv.Start()
	},
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server, database *db.DB, cfg *config.Config) {
	r := srv.Router()

	// Activity log
	activityStore := activity.NewStore(database)
	activity.RegisterRoutes(r, activityStore)

	// Movie catalog
	movieStore := movies.NewStore(database)
	movies.RegisterRoutes(r, movieStore, activityStore, srv.NotifyMutation, movies.Options{
		PageSizeDefault: cfg.PageSize.Default,
		PageSizeMax:     cfg.PageSize.Max,
	})

	// Browser client
	web.RegisterRoutes(r)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
