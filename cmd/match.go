/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"image/color"

	"github.com/hansbonini/skinstatue/pkg"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

// matchCmd shows which block a single color maps to.
var matchCmd = &cobra.Command{
	Use:   "match [#rrggbb]",
	Short: "Show the block a color is matched to",
	Long: `Show the block a color is matched to.

The color is matched with the same rules a conversion uses, so an alpha
below 200 selects a translucent block and an alpha below 32 places nothing.

Examples:
  skinstatue match "#3a63ab"
  skinstatue match "#ffffff" --alpha 120
  skinstatue match "#c0392b" --mode rgb --category all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		c, err := colorful.Hex(args[0])
		if err != nil {
			return common.FormatError(common.ErrFailedToParseColor, err)
		}
		alpha, err := cmd.Flags().GetUint8("alpha")
		if err != nil {
			return fmt.Errorf("error getting alpha flag: %w", err)
		}

		cfg := pkg.DefaultConfig()
		if err := applyMatchFlags(cmd, &cfg); err != nil {
			return err
		}

		px := toNRGBA(c, alpha)
		block, ok, err := pkg.MatchColor(px, cfg)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s a=%d places no block\n", c.Hex(), alpha)
			return nil
		}

		fmt.Printf("%s a=%d -> %s (%s a=%d)\n", c.Hex(), alpha, block.Name, pkg.HexColor(block), block.Color.A)
		return nil
	},
}

func applyMatchFlags(cmd *cobra.Command, cfg *pkg.ConversionConfig) error {
	var err error
	if cfg.ColorMode, err = cmd.Flags().GetString("mode"); err != nil {
		return fmt.Errorf("error getting mode flag: %w", err)
	}
	if cfg.Categories, err = cmd.Flags().GetStringSlice("category"); err != nil {
		return fmt.Errorf("error getting category flag: %w", err)
	}
	if cfg.ExactMode, err = cmd.Flags().GetBool("exact"); err != nil {
		return fmt.Errorf("error getting exact flag: %w", err)
	}
	includeFalling, err := cmd.Flags().GetBool("include-falling")
	if err != nil {
		return fmt.Errorf("error getting include-falling flag: %w", err)
	}
	cfg.ExcludeFalling = !includeFalling
	return nil
}

// toNRGBA converts a parsed color to the pixel type the matcher works on.
func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func init() {
	rootCmd.AddCommand(matchCmd)

	defaults := pkg.DefaultConfig()
	matchCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
	matchCmd.Flags().Uint8P("alpha", "a", 255, "Alpha of the color")
	matchCmd.Flags().StringP("mode", "m", defaults.ColorMode, "Color distance mode: rgb, absrgb, hsl, hsb or lab")
	matchCmd.Flags().StringSliceP("category", "c", defaults.Categories, "Block categories to match against, or \"all\"")
	matchCmd.Flags().Bool("exact", false, "Only match solid pixels to solid blocks and translucent to translucent")
	matchCmd.Flags().Bool("include-falling", false, "Allow gravity-affected blocks")
}
