package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage toyrsa configuration",
	Long: `Provides commands for creating and inspecting the configuration file.

The file lives in the user config directory (for example
~/.config/toyrsa/config.toml) unless --config points elsewhere.

Examples:
  # Write the default configuration
  toyrsa config init

  # Show the configuration in effect
  toyrsa config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}
