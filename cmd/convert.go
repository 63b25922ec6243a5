/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/hansbonini/skinstatue/pkg"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/schematic"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// convertCmd converts one or more skins into statues.
var convertCmd = &cobra.Command{
	Use:   "convert [skin_file...]",
	Short: "Convert skins into block statues",
	Long: `Convert skin textures (PNG or WebP) into block statues.

This command will:
- Load each skin, upgrading legacy 64x32 skins and downscaling HD skins
- Apply the configured color filters
- Match every visible pixel to the closest block
- Write the statue as .schem, .litematic or .mcstructure

Settings are read from --config when given; any flag set on the command
line overrides the file.

Examples:
  skinstatue convert steve.png
  skinstatue convert -f mcstructure --direction south alex.png -o ./out/
  skinstatue convert -c statue.yaml -w 4 --progress skins/*.png -o ./out/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		logFile, err := cmd.Flags().GetString("log-file")
		if err != nil {
			return fmt.Errorf("error getting log-file flag: %w", err)
		}
		if logFile != "" {
			common.SetLogFile(logFile)
			defer func() {
				if err := common.CloseLogFile(); err != nil {
					common.LogWarn(common.WarnLogFileClose, err)
				}
			}()
		}

		cfg, err := loadConvertConfig(cmd)
		if err != nil {
			return err
		}
		format, err := schematic.ParseFormat(cfg.Format)
		if err != nil {
			return common.NewConfigError([]string{err.Error()})
		}

		outputDir, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error getting output flag: %w", err)
		}
		if err := os.MkdirAll(outputDir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		jobs := pkg.BatchJobs(outputDir, args, format)

		showProgress, err := cmd.Flags().GetBool("progress")
		if err != nil {
			return fmt.Errorf("error getting progress flag: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		processor := pkg.NewStatueProcessor()
		var onDone func(pkg.BatchResult)
		if showProgress {
			bar := progressbar.Default(int64(len(jobs)), "converting")
			processor.SetProgress(func(done, total int, region string) {
				bar.Describe(fmt.Sprintf("converting %s (%d/%d)", region, done, total))
			})
			onDone = func(pkg.BatchResult) {
				_ = bar.Add(1)
			}
		}

		fmt.Printf("Converting %d skin(s) to %s\n", len(jobs), format)
		fmt.Printf("Output directory: %s\n", outputDir)

		results, err := processor.ConvertBatch(ctx, jobs, cfg, onDone)
		if err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Printf("- %s: %v\n", r.Job.Input, r.Err)
				continue
			}
			d := r.Result.Dimensions
			fmt.Printf("- %s -> %s (%d blocks, %d unique, %dx%dx%d)\n",
				r.Job.Input, r.Job.Output, r.Result.BlockCount, r.Result.UniqueBlockCount,
				d.Width, d.Height, d.Length)
			if cfg.SaveMaterialsList {
				fmt.Printf("  materials: %s\n", pkg.MaterialsPath(r.Job.Output))
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d conversions failed", failed, len(results))
		}
		fmt.Println("Conversion completed successfully!")
		return nil
	},
}

// loadConvertConfig starts from the defaults or the --config file and
// applies every flag the user set explicitly.
func loadConvertConfig(cmd *cobra.Command) (pkg.ConversionConfig, error) {
	cfg := pkg.DefaultConfig()
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("error getting config flag: %w", err)
	}
	if path != "" {
		if cfg, err = pkg.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	var overrideErr error
	flags.Visit(func(f *pflag.Flag) {
		if overrideErr != nil {
			return
		}
		apply, ok := convertOverrides[f.Name]
		if !ok {
			return
		}
		common.LogDebug(common.DebugConfigOverride, f.Name)
		overrideErr = apply(flags, &cfg)
	})
	return cfg, overrideErr
}

// convertOverrides maps a flag name to the config field it sets.
var convertOverrides = map[string]func(*pflag.FlagSet, *pkg.ConversionConfig) error{
	"format": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Format, err = f.GetString("format")
		return
	},
	"mode": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.ColorMode, err = f.GetString("mode")
		return
	},
	"weights": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Weights, err = f.GetFloat64Slice("weights")
		return
	},
	"category": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Categories, err = f.GetStringSlice("category")
		return
	},
	"skin-format": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.SkinFormat, err = f.GetString("skin-format")
		return
	},
	"include-falling": func(f *pflag.FlagSet, c *pkg.ConversionConfig) error {
		include, err := f.GetBool("include-falling")
		c.ExcludeFalling = !include
		return err
	},
	"exact": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.ExactMode, err = f.GetBool("exact")
		return
	},
	"scale": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Scale, err = f.GetFloat64("scale")
		return
	},
	"parts": func(f *pflag.FlagSet, c *pkg.ConversionConfig) error {
		parts, err := f.GetStringSlice("parts")
		if err != nil {
			return err
		}
		overlay := c.Parts.Overlay
		c.Parts = pkg.PartsConfig{Overlay: overlay}
		for _, p := range parts {
			switch p {
			case "head":
				c.Parts.Head = true
			case "body":
				c.Parts.Body = true
			case "arms":
				c.Parts.Arms = true
			case "legs":
				c.Parts.Legs = true
			default:
				return fmt.Errorf("unknown body part %q", p)
			}
		}
		return nil
	},
	"overlay": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Parts.Overlay, err = f.GetBool("overlay")
		return
	},
	"direction": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Orientation.Direction, err = f.GetString("direction")
		return
	},
	"rotate": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Orientation.Rotate, err = f.GetInt("rotate")
		return
	},
	"plane": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Orientation.Plane, err = f.GetString("plane")
		return
	},
	"flip-h": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Orientation.FlipHorizontal, err = f.GetBool("flip-h")
		return
	},
	"flip-v": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Orientation.FlipVertical, err = f.GetBool("flip-v")
		return
	},
	"offset": func(f *pflag.FlagSet, c *pkg.ConversionConfig) error {
		offset, err := f.GetIntSlice("offset")
		if err != nil {
			return err
		}
		if len(offset) != 3 {
			return fmt.Errorf("offset needs x,y,z, got %d values", len(offset))
		}
		c.Orientation.OffsetX, c.Orientation.OffsetY, c.Orientation.OffsetZ = offset[0], offset[1], offset[2]
		return nil
	},
	"hue": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Filters.Hue, err = f.GetFloat64("hue")
		return
	},
	"saturation": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Filters.Saturation, err = f.GetFloat64("saturation")
		return
	},
	"brightness": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Filters.Brightness, err = f.GetFloat64("brightness")
		return
	},
	"contrast": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Filters.Contrast, err = f.GetFloat64("contrast")
		return
	},
	"posterize": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.Filters.Posterize, err = f.GetInt("posterize")
		return
	},
	"workers": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.MaxWorkers, err = f.GetInt("workers")
		return
	},
	"materials": func(f *pflag.FlagSet, c *pkg.ConversionConfig) (err error) {
		c.SaveMaterialsList, err = f.GetBool("materials")
		return
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addConvertFlags(convertCmd.Flags())
}

// addConvertFlags registers the convert flags, defaulting to DefaultConfig.
func addConvertFlags(f *pflag.FlagSet) {
	d := pkg.DefaultConfig()

	f.BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
	f.String("log-file", "", "Also write log output to a rotating log file")
	f.StringP("config", "c", "", "YAML configuration file")
	f.StringP("output", "o", ".", "Output directory")
	f.BoolP("progress", "p", false, "Show a progress bar")

	f.StringP("format", "f", d.Format, "Output format: schem, litematic or mcstructure")
	f.StringP("mode", "m", d.ColorMode, "Color distance mode: rgb, absrgb, hsl, hsb or lab")
	f.Float64Slice("weights", d.Weights, "Per-channel weights of the color distance")
	f.StringSlice("category", d.Categories, "Block categories to build with, or \"all\"")
	f.String("skin-format", d.SkinFormat, "Skin layout: auto, default, slim or legacy")
	f.Bool("include-falling", false, "Allow gravity-affected blocks")
	f.Bool("exact", false, "Only match solid pixels to solid blocks and translucent to translucent")
	f.Float64P("scale", "s", d.Scale, "Blocks per skin pixel")
	f.StringSlice("parts", []string{"head", "body", "arms", "legs"}, "Body parts to build")
	f.Bool("overlay", d.Parts.Overlay, "Also build the second skin layer (hat, jacket, sleeves, pants)")

	f.String("direction", d.Orientation.Direction, "Facing: north, south, east or west")
	f.Int("rotate", 0, "Extra clockwise rotation: 0, 90, 180 or 270")
	f.String("plane", d.Orientation.Plane, "Layout plane: xz, xy or yz")
	f.Bool("flip-h", false, "Mirror along the x axis")
	f.Bool("flip-v", false, "Mirror along the y axis")
	f.IntSlice("offset", []int{0, 0, 0}, "Offset added to every block as x,y,z")

	f.Float64("hue", d.Filters.Hue, "Hue shift as a fraction of a full turn")
	f.Float64("saturation", d.Filters.Saturation, "Saturation factor, 1 leaves colors unchanged")
	f.Float64("brightness", d.Filters.Brightness, "Brightness factor, 1 leaves colors unchanged")
	f.Float64("contrast", d.Filters.Contrast, "Contrast factor, 1 leaves colors unchanged")
	f.Int("posterize", d.Filters.Posterize, "Levels per channel, 0 to disable")

	f.IntP("workers", "w", d.MaxWorkers, "Skins converted in parallel")
	f.Bool("materials", false, "Write a materials list next to each output")
}
