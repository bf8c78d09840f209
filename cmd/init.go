package cmd

import (
	"github.com/spf13/cobra"

	"movieshelf/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize movieshelf configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure movieshelf and generates a .movieshelf.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
