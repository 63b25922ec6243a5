package pkg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/hansbonini/skinstatue/pkg/blocks"
	"github.com/hansbonini/skinstatue/pkg/colorspace"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/filter"
	"github.com/hansbonini/skinstatue/pkg/schematic"
	"github.com/hansbonini/skinstatue/pkg/voxel"
	"gopkg.in/yaml.v3"
)

// SkinFormatAuto detects the skin layout from the texture.
const SkinFormatAuto = "auto"

// AllCategories selects every block category.
const AllCategories = "all"

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() ConversionConfig {
	return ConversionConfig{
		Format:         schematic.FormatSchem.String(),
		ColorMode:      colorspace.ModeLAB.String(),
		Weights:        []float64{1, 1, 1},
		Categories:     []string{"wool", "concrete", "terracotta", "planks", "glass"},
		SkinFormat:     SkinFormatAuto,
		ExcludeFalling: true,
		Scale:          1,
		Parts: PartsConfig{
			Head: true, Body: true, Arms: true, Legs: true,
		},
		Orientation: OrientationConfig{
			Direction: voxel.North.String(),
			Plane:     voxel.PlaneXZ.String(),
		},
		Filters:    filter.Identity(),
		MaxWorkers: 4,
	}
}

// resolved holds the typed values parsed out of a ConversionConfig.
type resolved struct {
	format      schematic.Format
	mode        colorspace.Mode
	weights     colorspace.Weights
	categories  []blocks.Category
	skinFormat  voxel.SkinFormat
	detectSkin  bool
	orientation voxel.Orientation
}

// resolve parses every enumerated field, collecting a violation for each
// one that does not parse.
func (c ConversionConfig) resolve() (resolved, []string) {
	var r resolved
	var violations []string

	var err error
	if r.format, err = schematic.ParseFormat(c.Format); err != nil {
		violations = append(violations, fmt.Sprintf("%s %q", common.ErrUnknownOutputFormat, c.Format))
	}
	if r.mode, err = colorspace.ParseMode(c.ColorMode); err != nil {
		violations = append(violations, fmt.Sprintf("%s %q", common.ErrUnknownColorMode, c.ColorMode))
	}

	if len(c.Weights) != 3 {
		violations = append(violations, fmt.Sprintf("weights must have exactly 3 values, got %d", len(c.Weights)))
	} else {
		for i, w := range c.Weights {
			if !finite(w) || w < 0 {
				violations = append(violations, fmt.Sprintf("weight %d must be a finite number not below 0, got %v", i, w))
			}
			r.weights[i] = w
		}
	}

	for _, name := range c.Categories {
		if strings.EqualFold(strings.TrimSpace(name), AllCategories) {
			r.categories = blocks.Categories()
			continue
		}
		cat, err := blocks.ParseCategory(name)
		if err != nil {
			violations = append(violations, fmt.Sprintf("%s %q", common.ErrUnknownCategory, name))
			continue
		}
		r.categories = append(r.categories, cat)
	}

	if c.SkinFormat == "" || strings.EqualFold(c.SkinFormat, SkinFormatAuto) {
		r.detectSkin = true
	} else if r.skinFormat, err = voxel.ParseSkinFormat(c.SkinFormat); err != nil {
		violations = append(violations, err.Error())
	}

	o := c.Orientation
	if r.orientation.Direction, err = voxel.ParseDirection(o.Direction); err != nil {
		violations = append(violations, fmt.Sprintf("%s %q", common.ErrUnknownDirection, o.Direction))
	}
	if r.orientation.Plane, err = voxel.ParsePlane(o.Plane); err != nil {
		violations = append(violations, fmt.Sprintf("%s %q", common.ErrUnknownPlane, o.Plane))
	}
	r.orientation.Rotate = o.Rotate
	r.orientation.FlipHorizontal = o.FlipHorizontal
	r.orientation.FlipVertical = o.FlipVertical
	r.orientation.OffsetX = o.OffsetX
	r.orientation.OffsetY = o.OffsetY
	r.orientation.OffsetZ = o.OffsetZ

	return r, violations
}

// ValidateConfig lists every problem with cfg. An empty result means the
// config is usable.
func ValidateConfig(cfg ConversionConfig) []string {
	_, violations := cfg.resolve()

	if !finite(cfg.Scale) || cfg.Scale <= 0 {
		violations = append(violations, fmt.Sprintf("scale must be a finite number greater than 0, got %v", cfg.Scale))
	}
	if !voxel.ValidRotation(cfg.Orientation.Rotate) {
		violations = append(violations, fmt.Sprintf("rotate must be 0, 90, 180 or 270, got %d", cfg.Orientation.Rotate))
	}
	if cfg.MaxWorkers < 1 {
		violations = append(violations, fmt.Sprintf("max_workers must be at least 1, got %d", cfg.MaxWorkers))
	}
	violations = append(violations, cfg.Filters.Validate()...)
	return violations
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (ConversionConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, common.NewConversionError(common.KindConfigRead, common.ErrFailedToReadConfig, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, common.NewConversionError(common.KindConfigParse, common.ErrFailedToParseConfig, err)
	}

	common.LogInfo(common.InfoConfigLoaded, path)
	return cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg ConversionConfig) error {
	file, err := os.Create(path)
	if err != nil {
		return common.FormatError(common.ErrFailedToWriteConfig, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return common.FormatError(common.ErrFailedToWriteConfig, err)
	}
	if err := encoder.Close(); err != nil {
		return common.FormatError(common.ErrFailedToWriteConfig, err)
	}
	return nil
}

// Palette returns the blocks a conversion under c may choose from.
func (c ConversionConfig) Palette() (blocks.Palette, error) {
	r, violations := c.resolve()
	if len(violations) > 0 {
		return nil, common.NewConfigError(violations)
	}
	return blocks.Select(r.categories, c.ExcludeFalling), nil
}
