package voxel

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/hansbonini/skinstatue/pkg/colorspace"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/matcher"
)

// Parts selects which body parts are voxelized.
type Parts struct {
	Head, Body, Arms, Legs bool
}

// AllParts includes every body part.
var AllParts = Parts{Head: true, Body: true, Arms: true, Legs: true}

// Includes reports whether p is enabled.
func (ps Parts) Includes(p BodyPart) bool {
	switch p {
	case PartHead:
		return ps.Head
	case PartBody:
		return ps.Body
	case PartArms:
		return ps.Arms
	case PartLegs:
		return ps.Legs
	}
	return true
}

// ProgressFunc is called after each region with the number of regions done.
type ProgressFunc func(done, total int, region string)

// Options configure a Voxelizer.
type Options struct {
	Scale       float64
	Mode        colorspace.Mode
	Weights     colorspace.Weights
	Parts       Parts
	Overlay     bool
	Format      SkinFormat
	Orientation Orientation
	Progress    ProgressFunc
}

// Voxelizer extracts regions from a skin and places one block per visible
// pixel, or a cube of blocks when scaling up.
type Voxelizer struct {
	matcher *matcher.Matcher
	metric  colorspace.MetricFunc
	opts    Options
}

// NewVoxelizer creates a voxelizer that resolves colors through m. The
// matcher's cache belongs to this job.
func NewVoxelizer(m *matcher.Matcher, opts Options) *Voxelizer {
	return &Voxelizer{
		matcher: m,
		metric:  colorspace.Metric(opts.Mode),
		opts:    opts,
	}
}

// Regions returns the regions that will be processed, in order.
func (v *Voxelizer) Regions() []Region {
	candidates := Regions[:]
	if v.opts.Overlay {
		candidates = append(candidates[:len(candidates):len(candidates)], OverlayRegions[:]...)
	}
	var out []Region
	for _, r := range candidates {
		if !v.opts.Parts.Includes(r.Part) {
			common.LogDebug(common.DebugRegionSkipped, r.Name)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Voxelize processes every included region of img. The context is checked
// before each region; a cancelled context aborts with its error.
func (v *Voxelizer) Voxelize(ctx context.Context, img image.Image) ([]PlacedBlock, error) {
	if !(v.opts.Scale > 0) || math.IsInf(v.opts.Scale, 1) {
		return nil, fmt.Errorf("scale must be a finite number greater than 0, got %v", v.opts.Scale)
	}

	regions := v.Regions()
	var placed []PlacedBlock
	for i, r := range regions {
		if err := ctx.Err(); err != nil {
			return nil, common.FormatError(common.ErrConversionCancelled, err)
		}
		before := len(placed)
		placed = v.voxelizeRegion(img, r, placed)
		common.LogDebug(common.DebugRegionDone, r.Name, len(placed)-before)

		if v.opts.Progress != nil {
			v.opts.Progress(i+1, len(regions), r.Name)
		}
	}
	return placed, nil
}

func (v *Voxelizer) voxelizeRegion(img image.Image, r Region, placed []PlacedBlock) []PlacedBlock {
	width := r.WidthFor(v.opts.Format)
	originX, originY := r.Origin()
	common.LogDebug(common.DebugRegionStart, r.Name, r.X, r.Y, width, r.Height(), r.Overlay)

	scale := v.opts.Scale
	layer := 0
	if r.Overlay {
		layer = max(1, int(scale))
	}

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < width; x++ {
			px := pixelAt(img, r.X+x, r.Y+y)
			if px.A < matcher.MinVisibleAlpha {
				continue
			}
			wantTransparent := px.A < matcher.SolidAlpha

			block, ok := v.matcher.FindBestMatch(px, v.metric, v.opts.Weights, wantTransparent)
			if !ok {
				common.LogDebug(common.DebugPixelNoMatch, px.R, px.G, px.B, px.A)
				continue
			}

			flippedY := RegionHeight - 1 - y
			if scale >= 1 {
				n := int(scale)
				baseX := originX + int(float64(x)*scale)
				baseY := originY + int(float64(flippedY)*scale)
				for sy := 0; sy < n; sy++ {
					for sx := 0; sx < n; sx++ {
						for sz := 0; sz < n; sz++ {
							placed = v.place(placed, baseX+sx, baseY+sy, layer+sz, block.Name)
						}
					}
				}
			} else {
				posX := int(float64(originX) + float64(x)*scale)
				posY := int(float64(originY) + float64(flippedY)*scale)
				placed = v.place(placed, posX, posY, layer, block.Name)
			}
		}
	}
	return placed
}

func (v *Voxelizer) place(placed []PlacedBlock, x, y, z int, name string) []PlacedBlock {
	fx, fy, fz := v.opts.Orientation.Apply(x, y, z)
	return append(placed, PlacedBlock{X: fx, Y: fy, Z: fz, Name: name})
}
