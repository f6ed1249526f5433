package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jlint-dev/jlint/config"
)

// initCmd: jlint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			os.Exit(2)
		}
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = config.FileName
	}

	d, err := yaml.Marshal(config.Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(configurationPath, d, 0o644); err != nil {
		return err
	}

	fmt.Printf("Configuration file created: %s\n", configurationPath)
	return nil
}
