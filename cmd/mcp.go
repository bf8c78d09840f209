package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"movieshelf/internal/config"
	"movieshelf/internal/db"
	mcpserver "movieshelf/internal/mcp"
	"movieshelf/internal/movies"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing movie catalog tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "movieshelf MCP server started on stdio (db=%s)\n", cfg.DBPath)

		srv := mcpserver.NewServer(movies.NewStore(database))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
