package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/toyrsa/internal/configs"
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the configuration in effect",
	Long: `Displays the settings toyrsa is running with, as TOML.

When no config file exists the defaults are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		path := configPath
		if path == "" {
			path = configs.ConfigFilePath()
		}

		source := ui.Path.Sprint(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			source += " " + ui.Muted.Sprint("not found, showing defaults")
		}
		fmt.Println(ui.Info.Sprint("ℹ") + " Configuration from " + source)
		fmt.Println()

		if err := toml.NewEncoder(os.Stdout).Encode(Config); err != nil {
			return Logger.ErrorfAndReturn("Failed to encode config: %v", err)
		}
		return nil
	},
}
