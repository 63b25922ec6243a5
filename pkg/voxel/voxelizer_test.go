package voxel

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/hansbonini/skinstatue/pkg/blocks"
	"github.com/hansbonini/skinstatue/pkg/colorspace"
	"github.com/hansbonini/skinstatue/pkg/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledSkin(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func defaultOptions() Options {
	return Options{
		Scale:   1,
		Mode:    colorspace.ModeLAB,
		Weights: colorspace.DefaultWeights,
		Parts:   AllParts,
		Overlay: true,
	}
}

func voxelize(t *testing.T, img image.Image, opts Options) []PlacedBlock {
	t.Helper()
	v := NewVoxelizer(matcher.New(blocks.All(), false), opts)
	placed, err := v.Voxelize(context.Background(), img)
	require.NoError(t, err)
	return placed
}

func TestVoxelizeTransparentSkin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	placed := voxelize(t, img, defaultOptions())
	assert.Empty(t, placed)
	assert.Equal(t, Dimensions{}, Measure(placed))
}

func TestVoxelizeOpaqueSkin(t *testing.T) {
	img := filledSkin(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	tests := []struct {
		name    string
		overlay bool
		want    int
	}{
		{"first layer", false, 384},
		{"with overlay", true, 736},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.Overlay = tt.overlay
			placed := voxelize(t, img, opts)
			assert.Len(t, placed, tt.want)
			assert.Equal(t, 1, UniqueNames(placed))
			assert.Equal(t, map[string]int{"minecraft:white_wool": tt.want}, CountByName(placed))
		})
	}
}

func TestVoxelizeSkipsFaintPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	img.SetNRGBA(8, 8, color.NRGBA{R: 255, A: 31})
	img.SetNRGBA(9, 8, color.NRGBA{R: 255, A: 32})

	placed := voxelize(t, img, defaultOptions())
	require.Len(t, placed, 1)
	assert.Equal(t, 9, placed[0].X)
}

func TestVoxelizeTranslucentPixelUsesGlass(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	img.SetNRGBA(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 150})

	placed := voxelize(t, img, defaultOptions())
	require.Len(t, placed, 1)
	assert.Contains(t, placed[0].Name, "glass")
}

func TestVoxelizePositions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	img.SetNRGBA(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	placed := voxelize(t, img, defaultOptions())
	require.Len(t, placed, 1)
	// Top texture row ends up at the top of the region.
	assert.Equal(t, PlacedBlock{X: 8, Y: 19, Z: 0, Name: "minecraft:white_wool"}, placed[0])
}

func TestVoxelizeOverlayLayer(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	img.SetNRGBA(40, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	tests := []struct {
		name  string
		scale float64
		want  []PlacedBlock
	}{
		{"scale 1", 1, []PlacedBlock{{X: 8, Y: 19, Z: 1, Name: "minecraft:white_wool"}}},
		{"scale 0.5", 0.5, []PlacedBlock{{X: 8, Y: 13, Z: 1, Name: "minecraft:white_wool"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.Scale = tt.scale
			assert.Equal(t, tt.want, voxelize(t, img, opts))
		})
	}
}

func TestVoxelizeHatStopsAtFaceRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	// Rows 16 to 19 under the hat face belong to the arm textures.
	img.SetNRGBA(44, 17, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(44, 15, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	placed := voxelize(t, img, defaultOptions())
	assert.Equal(t, []PlacedBlock{{X: 12, Y: 12, Z: 1, Name: "minecraft:white_wool"}}, placed)
}

func TestRegionHeight(t *testing.T) {
	for _, r := range Regions {
		assert.Equal(t, RegionHeight, r.Height(), r.Name)
	}
	for _, r := range OverlayRegions {
		want := RegionHeight
		if r.Name == "hat" {
			want = 8
		}
		assert.Equal(t, want, r.Height(), r.Name)
		assert.LessOrEqual(t, r.Y+r.Height(), 64, r.Name)
	}
}

func TestVoxelizeScaleUp(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	img.SetNRGBA(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	opts := defaultOptions()
	opts.Scale = 2
	placed := voxelize(t, img, opts)
	require.Len(t, placed, 8)

	box, ok := Bounds(placed)
	require.True(t, ok)
	assert.Equal(t, Box{MinX: 8, MinY: 30, MinZ: 0, MaxX: 9, MaxY: 31, MaxZ: 1}, box)
	assert.Equal(t, Dimensions{Width: 2, Height: 2, Length: 2}, box.Dimensions())
}

func TestVoxelizeParts(t *testing.T) {
	img := filledSkin(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	tests := []struct {
		name  string
		parts Parts
		want  int
	}{
		{"head only", Parts{Head: true}, 96},
		{"arms and legs", Parts{Arms: true, Legs: true}, 192},
		{"nothing", Parts{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.Overlay = false
			opts.Parts = tt.parts
			assert.Len(t, voxelize(t, img, opts), tt.want)
		})
	}
}

func TestVoxelizeSlimArms(t *testing.T) {
	img := filledSkin(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	opts := defaultOptions()
	opts.Overlay = false
	opts.Parts = Parts{Arms: true}
	opts.Format = FormatSlim
	assert.Len(t, voxelize(t, img, opts), 2*3*RegionHeight)
}

func TestVoxelizeOrientation(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	img.SetNRGBA(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	opts := defaultOptions()
	opts.Orientation = Orientation{Direction: South, OffsetY: 64}
	placed := voxelize(t, img, opts)
	require.Len(t, placed, 1)
	assert.Equal(t, -8, placed[0].X)
	assert.Equal(t, 83, placed[0].Y)
	assert.Equal(t, 0, placed[0].Z)
}

func TestVoxelizeProgress(t *testing.T) {
	img := filledSkin(color.NRGBA{A: 255})

	var names []string
	opts := defaultOptions()
	opts.Progress = func(done, total int, region string) {
		assert.Equal(t, len(names)+1, done)
		assert.Equal(t, 12, total)
		names = append(names, region)
	}
	voxelize(t, img, opts)
	assert.Equal(t, []string{
		"head", "body", "right_arm", "left_arm", "right_leg", "left_leg",
		"hat", "jacket", "right_sleeve", "left_sleeve", "right_pants", "left_pants",
	}, names)
}

func TestVoxelizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := NewVoxelizer(matcher.New(blocks.All(), false), defaultOptions())
	_, err := v.Voxelize(ctx, filledSkin(color.NRGBA{A: 255}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestVoxelizeRejectsBadScale(t *testing.T) {
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		opts := defaultOptions()
		opts.Scale = scale
		v := NewVoxelizer(matcher.New(blocks.All(), false), opts)
		_, err := v.Voxelize(context.Background(), filledSkin(color.NRGBA{A: 255}))
		assert.Error(t, err, "scale %v", scale)
	}
}

func TestVoxelizeLegacySkinIgnoresMissingRows(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	opts := defaultOptions()
	opts.Overlay = false
	// head, body, right arm and right leg live above row 32.
	assert.Len(t, voxelize(t, img, opts), 4*96-2*48)
}
