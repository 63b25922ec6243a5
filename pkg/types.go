package pkg

import (
	"github.com/hansbonini/skinstatue/pkg/filter"
	"github.com/hansbonini/skinstatue/pkg/schematic"
	"github.com/hansbonini/skinstatue/pkg/voxel"
)

// ConversionConfig controls one skin-to-statue conversion. Enumerated
// fields are kept as text so a config file can be validated as a whole.
type ConversionConfig struct {
	Format            string            `yaml:"format"`      // schem, litematic or mcstructure
	ColorMode         string            `yaml:"color_mode"`  // rgb, absrgb, hsl, hsb or lab
	Weights           []float64         `yaml:"weights"`     // per-channel metric weights
	Categories        []string          `yaml:"categories"`  // block categories, or "all"
	SkinFormat        string            `yaml:"skin_format"` // auto, default, slim or legacy
	ExcludeFalling    bool              `yaml:"exclude_falling"`
	ExactMode         bool              `yaml:"exact_mode"`
	Scale             float64           `yaml:"scale"`
	Parts             PartsConfig       `yaml:"parts"`
	Orientation       OrientationConfig `yaml:"orientation"`
	Filters           filter.Settings   `yaml:"filters"`
	MaxWorkers        int               `yaml:"max_workers"`
	SaveMaterialsList bool              `yaml:"save_materials_list"`
}

// PartsConfig toggles body parts and the second skin layer.
type PartsConfig struct {
	Head    bool `yaml:"head"`
	Body    bool `yaml:"body"`
	Arms    bool `yaml:"arms"`
	Legs    bool `yaml:"legs"`
	Overlay bool `yaml:"overlay"`
}

// OrientationConfig places the statue in the world.
type OrientationConfig struct {
	Direction      string `yaml:"direction"`
	Rotate         int    `yaml:"rotate"`
	Plane          string `yaml:"plane"`
	FlipHorizontal bool   `yaml:"flip_horizontal"`
	FlipVertical   bool   `yaml:"flip_vertical"`
	OffsetX        int    `yaml:"offset_x"`
	OffsetY        int    `yaml:"offset_y"`
	OffsetZ        int    `yaml:"offset_z"`
}

// ConversionResult is the encoded statue and its statistics.
type ConversionResult struct {
	Data             []byte
	Format           schematic.Format
	BlockCount       int
	UniqueBlockCount int // distinct block names among placed blocks
	Dimensions       voxel.Dimensions
	SkinFormat       voxel.SkinFormat
	Materials        map[string]int
}

// MaterialEntry is one line of a materials list.
type MaterialEntry struct {
	Name      string `yaml:"name"`
	Count     int    `yaml:"count"`
	Stacks    int    `yaml:"stacks"`
	Remainder int    `yaml:"remainder"`
}

// MaterialsYAML is the materials list written next to an output file.
type MaterialsYAML struct {
	Format       string          `yaml:"format"`
	TotalBlocks  int             `yaml:"total_blocks"`
	UniqueBlocks int             `yaml:"unique_blocks"`
	Width        int             `yaml:"width"`
	Height       int             `yaml:"height"`
	Length       int             `yaml:"length"`
	Materials    []MaterialEntry `yaml:"materials"`
}
