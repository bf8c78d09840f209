package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "movieshelf",
	Short: "A movie catalog server with a browser UI",
	Long: `Movieshelf serves a movie collection as a REST API backed by an
embedded SQLite database, together with a browser client for listing,
searching, sorting, and editing the catalog.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".movieshelf.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
