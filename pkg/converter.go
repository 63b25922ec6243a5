// Package pkg converts skin textures into voxel statues. The pipeline
// validates the configuration, detects the skin layout, matches every
// visible pixel to a block and encodes the result in one of the statue
// file formats.
package pkg

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/hansbonini/skinstatue/pkg/blocks"
	"github.com/hansbonini/skinstatue/pkg/colorspace"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/filter"
	"github.com/hansbonini/skinstatue/pkg/matcher"
	"github.com/hansbonini/skinstatue/pkg/schematic"
	"github.com/hansbonini/skinstatue/pkg/skin"
	"github.com/hansbonini/skinstatue/pkg/voxel"
)

// StatueProcessor runs conversions. It holds no per-job state, so one
// processor may serve many jobs; every Convert call builds its own Matcher.
type StatueProcessor struct {
	progress voxel.ProgressFunc
	exporter *MaterialsExporter
}

// NewStatueProcessor creates a new statue processor instance
func NewStatueProcessor() *StatueProcessor {
	return &StatueProcessor{exporter: NewMaterialsExporter()}
}

// SetProgress installs a callback fired after each voxelized region.
func (p *StatueProcessor) SetProgress(fn voxel.ProgressFunc) {
	p.progress = fn
}

// Convert turns img into an encoded statue. img must already be a
// normalised 64x64 (or legacy 64x32) texture with any filters applied.
// Parameters:
//   - ctx: cancels the conversion between regions
//   - img: the skin texture
//   - cfg: the conversion settings, validated before any pixel is read
//
// Returns a ConversionError of kind CFG_001 listing every violation when
// cfg is invalid.
func (p *StatueProcessor) Convert(ctx context.Context, img image.Image, cfg ConversionConfig) (*ConversionResult, error) {
	if violations := ValidateConfig(cfg); len(violations) > 0 {
		return nil, common.NewConfigError(violations)
	}
	r, _ := cfg.resolve()

	skinFormat := r.skinFormat
	if r.detectSkin {
		skinFormat = voxel.DetectFormat(img)
	}
	common.LogInfo(common.InfoSkinFormatDetected, skinFormat)

	m := matcher.New(blocks.Select(r.categories, cfg.ExcludeFalling), cfg.ExactMode)
	common.LogInfo(common.InfoPaletteSelected, len(m.Solid())+len(m.Transparent()), len(m.Solid()), len(m.Transparent()))

	v := voxel.NewVoxelizer(m, voxel.Options{
		Scale:   cfg.Scale,
		Mode:    r.mode,
		Weights: r.weights,
		Parts: voxel.Parts{
			Head: cfg.Parts.Head,
			Body: cfg.Parts.Body,
			Arms: cfg.Parts.Arms,
			Legs: cfg.Parts.Legs,
		},
		Overlay:     cfg.Parts.Overlay,
		Format:      skinFormat,
		Orientation: r.orientation,
		Progress:    p.progress,
	})
	placed, err := v.Voxelize(ctx, img)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToVoxelize, err)
	}
	common.LogInfo(common.InfoVoxelizationDone, len(placed), len(v.Regions()))
	common.LogDebug(common.DebugMatcherCacheSize, m.CacheSize())

	enc, err := schematic.New(r.format)
	if err != nil {
		return nil, common.NewConversionError(common.KindEncode, common.ErrFailedToEncode, err)
	}
	if r.format == schematic.FormatSchem {
		// Sponge sizes from zero and cannot hold negative positions.
		enc.AddBlocks(voxel.Normalize(placed))
	} else {
		enc.AddBlocks(placed)
	}
	data, err := enc.Generate()
	if err != nil {
		return nil, err
	}

	result := &ConversionResult{
		Data:             data,
		Format:           r.format,
		BlockCount:       len(placed),
		UniqueBlockCount: voxel.UniqueNames(placed),
		Dimensions:       voxel.Measure(placed),
		SkinFormat:       skinFormat,
		Materials:        voxel.CountByName(placed),
	}
	if result.BlockCount == 0 {
		common.LogInfo(common.InfoEmptyStatue)
	} else {
		d := result.Dimensions
		common.LogInfo(common.InfoStatueEncoded, r.format, result.BlockCount, result.UniqueBlockCount, d.Width, d.Height, d.Length)
	}
	return result, nil
}

// ConvertFile loads the skin at in, applies the configured filters,
// converts it and writes the statue to out. When SaveMaterialsList is set
// a materials list is written to out + ".materials.yaml".
func (p *StatueProcessor) ConvertFile(ctx context.Context, in, out string, cfg ConversionConfig) (*ConversionResult, error) {
	if violations := ValidateConfig(cfg); len(violations) > 0 {
		return nil, common.NewConfigError(violations)
	}

	img, _, err := skin.Load(in)
	if err != nil {
		return nil, err
	}
	if !cfg.Filters.IsIdentity() {
		img = filter.Apply(img, cfg.Filters)
	}

	result, err := p.Convert(ctx, img, cfg)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(out, result.Data, 0o644); err != nil {
		return nil, common.FormatError(common.ErrFailedToWriteOutput, err)
	}
	common.LogInfo(common.InfoOutputWritten, len(result.Data), out)

	if cfg.SaveMaterialsList {
		if err := p.exporter.Export(result, MaterialsPath(out)); err != nil {
			return nil, common.FormatError(common.ErrFailedToExportMaterials, err)
		}
	}
	return result, nil
}

// MatchColor finds the block cfg would place for a single pixel. It
// reports false for pixels too faint to place or with no candidate.
func MatchColor(px color.NRGBA, cfg ConversionConfig) (blocks.Block, bool, error) {
	r, violations := cfg.resolve()
	if len(violations) > 0 {
		return blocks.Block{}, false, common.NewConfigError(violations)
	}
	if px.A < matcher.MinVisibleAlpha {
		return blocks.Block{}, false, nil
	}

	m := matcher.New(blocks.Select(r.categories, cfg.ExcludeFalling), cfg.ExactMode)
	block, ok := m.FindBestMatch(px, colorspace.Metric(r.mode), r.weights, px.A < matcher.SolidAlpha)
	if ok {
		common.LogDebug(common.DebugPixelMatched, px.R, px.G, px.B, px.A, block.Name)
	}
	return block, ok, nil
}

// OutputPath returns the output file name for a skin converted into dir.
func OutputPath(dir, skinPath string, format schematic.Format) string {
	base := filepath.Base(skinPath)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+format.Extension())
}
