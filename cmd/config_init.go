package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/toyrsa/internal/configs"
	"github.com/PolarWolf314/toyrsa/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Writes a config.toml holding the default settings so they can be edited.

An existing file is left alone unless --force is given.`,
	Annotations: map[string]string{
		skipConfigAnnotation: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path := configPath
		if path == "" {
			path = configs.ConfigFilePath()
		}
		Logger.Debugf("Config path: %s", path)

		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Println(ui.Warning.Sprint("⚠") + " Config already exists at " + ui.Path.Sprint(path))
			fmt.Println(ui.Info.Sprint("→") + " Use " + ui.Flag.Sprint("--force") + " to replace it")
			return nil
		}

		if err := configs.SaveConfig(path, configs.DefaultConfig()); err != nil {
			return Logger.ErrorfAndReturn("Failed to write config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Wrote default configuration to " + ui.Path.Sprint(path))
		return nil
	},
}
