package cmd

import (
	"fmt"
	"os"

	"github.com/bgraf/gopro2gpx/cmd/tools"
	"github.com/bgraf/gopro2gpx/filesystem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open the configuration file in an editor",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolP("print", "p", false, "Print the effective configuration instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if printOnly, _ := cmd.Flags().GetBool("print"); printOnly {
		for _, key := range viper.AllKeys() {
			fmt.Printf("%s = %v\n", key, viper.Get(key))
		}
		return nil
	}

	path := viper.ConfigFileUsed()
	if path == "" {
		fallback, err := defaultConfigPath()
		if err != nil {
			return err
		}
		path = fallback
	}

	if !filesystem.IsFile(path) {
		if err := viper.SafeWriteConfigAs(path); err != nil {
			return fmt.Errorf("create config: %w", err)
		}
	}

	if err := tools.RunEditor(path); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Edited '%s'.\n", path)
	return nil
}
