package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const initConfigFlagName = "init-config"

// initConfigFlag replaces the rename with writing the default configuration.
var initConfigFlag bool

// writeDefaultConfig creates regren.yaml in the current working directory,
// populated with the current defaults (extension handling, output and
// logging). Existing files are never overwritten.
func writeDefaultConfig(cmd *cobra.Command) error {
	targetPath := filepath.Join(configFolderPath, configFileName)

	err := viper.SafeWriteConfigAs(targetPath)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cmd.Printf("wrote %s\n", targetPath)

	return nil
}
