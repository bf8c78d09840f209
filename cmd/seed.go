package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"movieshelf/internal/config"
	"movieshelf/internal/db"
)

var seedCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the catalog with placeholder movies",
	Long:  `Inserts placeholder movies until the catalog holds at least the requested count. Already-populated catalogs are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		count := cfg.Seed.MinCount
		if cmd.Flags().Changed("count") {
			count = seedCount
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		progress := newSeedProgress()
		inserted, err := database.SeedIfEmpty(cmd.Context(), count, progress)
		if err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}

		if inserted == 0 {
			fmt.Fprintf(os.Stderr, "Catalog already holds at least %d movies, nothing to do\n", count)
			return nil
		}
		fmt.Fprintf(os.Stderr, "Seeded %d movies into %s\n", inserted, cfg.DBPath)
		return nil
	},
}

// newSeedProgress returns a per-row progress callback: a terminal bar when
// interactive, plain lines under CI.
func newSeedProgress() func(done, total int) {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return func(done, total int) {
			fmt.Fprintf(os.Stderr, "[%d/%d] seeding\n", done, total)
		}
	}

	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Seeding movies"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
		if done == total {
			_ = bar.Finish()
		}
	}
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 30, "Minimum number of movies to seed (overrides config)")
	rootCmd.AddCommand(seedCmd)
}
