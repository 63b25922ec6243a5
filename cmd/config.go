/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"

	"github.com/hansbonini/skinstatue/pkg"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/spf13/cobra"
)

// configCmd groups configuration file helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage conversion config files",
	Long: `Manage YAML conversion config files.

Commands:
  init      Write the default configuration
  check     Validate a configuration file

Examples:
  skinstatue config init statue.yaml
  skinstatue config check statue.yaml`,
}

// configInitCmd writes the default configuration.
var configInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write the default configuration to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "skinstatue.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if err := pkg.SaveConfig(path, pkg.DefaultConfig()); err != nil {
			return err
		}
		common.LogInfo(common.InfoConfigWritten, path)
		fmt.Printf("Default configuration written to: %s\n", path)
		return nil
	},
}

// configCheckCmd loads a configuration and reports every problem in it.
var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a YAML configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := pkg.LoadConfig(args[0])
		if err != nil {
			return err
		}

		violations := pkg.ValidateConfig(cfg)
		if len(violations) > 0 {
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			return common.NewConfigError(violations)
		}

		fmt.Printf("Configuration %s is valid\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
}
