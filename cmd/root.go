// Package cmd provides command-line interface functionality for SkinStatue.
// SkinStatue turns player skin textures into block statues that can be
// pasted into a world as .schem, .litematic or .mcstructure files.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the SkinStatue application.
var rootCmd = &cobra.Command{
	Use:   "skinstatue",
	Short: "Build block statues from player skins",
	Long: `SkinStatue - Converts 64x64 player skins into block statues.

Currently supports:
  - Sponge schematics (.schem)
  - Litematica schematics (.litematic)
  - Bedrock structures (.mcstructure)

Examples:
  skinstatue convert steve.png -o ./statues/
  skinstatue convert -f litematic --scale 2 alex.png
  skinstatue convert -w 8 --progress skins/*.png -o ./statues/
  skinstatue palette --category wool --yaml
  skinstatue match "#c0392b" --mode lab
  skinstatue config init statue.yaml

Use 'skinstatue [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
