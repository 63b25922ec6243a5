/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/hansbonini/skinstatue/pkg"
	"github.com/spf13/cobra"
)

// paletteCmd lists the blocks a conversion can use.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the blocks available to a conversion",
	Long: `List the blocks available to a conversion.

Blocks are filtered by category and, unless --include-falling is given,
gravity-affected blocks such as concrete powder are left out.

Examples:
  skinstatue palette
  skinstatue palette --category wool,glass
  skinstatue palette --category all --include-falling --yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := cmd.Flags().GetStringSlice("category")
		if err != nil {
			return fmt.Errorf("error getting category flag: %w", err)
		}
		includeFalling, err := cmd.Flags().GetBool("include-falling")
		if err != nil {
			return fmt.Errorf("error getting include-falling flag: %w", err)
		}
		asYAML, err := cmd.Flags().GetBool("yaml")
		if err != nil {
			return fmt.Errorf("error getting yaml flag: %w", err)
		}

		cfg := pkg.DefaultConfig()
		cfg.Categories = categories
		cfg.ExcludeFalling = !includeFalling
		palette, err := cfg.Palette()
		if err != nil {
			return err
		}

		if asYAML {
			return pkg.NewMaterialsExporter().ExportPalette(os.Stdout, palette)
		}

		for _, b := range palette {
			marker := ""
			if b.Transparent() {
				marker = " (translucent)"
			}
			fmt.Printf("%-40s %s a=%-3d %s%s\n", b.Name, pkg.HexColor(b), b.Color.A, b.Category, marker)
		}
		fmt.Printf("%d blocks\n", len(palette))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringSliceP("category", "c", pkg.DefaultConfig().Categories, "Block categories to list, or \"all\"")
	paletteCmd.Flags().Bool("include-falling", false, "Include gravity-affected blocks")
	paletteCmd.Flags().Bool("yaml", false, "Print the palette as YAML")
}
