// Package filter applies the cosmetic adjustments a skin goes through before
// voxelization: hue shift, saturation, brightness, contrast and posterize.
//
// Every adjustment keeps the source alpha so filtering never changes which
// pixels are visible.
package filter

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/hansbonini/skinstatue/pkg/colorspace"
	"github.com/hansbonini/skinstatue/pkg/common"
)

// Settings holds the adjustment parameters. Hue is a fraction of a full
// turn. Saturation, Brightness and Contrast are blend factors where 1
// leaves the image unchanged. Posterize is the number of levels per
// channel, 0 to disable.
type Settings struct {
	Hue        float64 `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
	Brightness float64 `yaml:"brightness"`
	Contrast   float64 `yaml:"contrast"`
	Posterize  int     `yaml:"posterize"`
}

// Identity returns settings that leave an image unchanged.
func Identity() Settings {
	return Settings{Saturation: 1, Brightness: 1, Contrast: 1}
}

// IsIdentity reports whether s changes nothing.
func (s Settings) IsIdentity() bool {
	return s.Hue == 0 && s.Saturation == 1 && s.Brightness == 1 && s.Contrast == 1 && !s.posterizes()
}

// MaxPosterize is the largest accepted posterize level count.
const MaxPosterize = 128

// Validate lists every parameter outside its range.
func (s Settings) Validate() []string {
	var violations []string
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"hue", s.Hue},
		{"saturation", s.Saturation},
		{"brightness", s.Brightness},
		{"contrast", s.Contrast},
	} {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 1 {
			violations = append(violations, p.name+" must be between 0 and 1")
		}
	}
	if s.Posterize < 0 || s.Posterize > MaxPosterize {
		violations = append(violations, "posterize must be between 0 and 128")
	}
	return violations
}

func (s Settings) posterizes() bool {
	return s.Posterize > 0 && s.Posterize < 256
}

// Apply runs the adjustments in order: hue, saturation, brightness,
// contrast, posterize. Steps at their neutral value are skipped.
func Apply(img image.Image, s Settings) *image.NRGBA {
	out := imaging.Clone(img)

	if s.Hue != 0 {
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			if c.A == 0 {
				return c
			}
			hsl := colorspace.RGBToHSL(c.R, c.G, c.B)
			hsl.H = fraction(hsl.H + s.Hue)
			r, g, b := colorspace.HSLToRGB(hsl)
			return color.NRGBA{R: r, G: g, B: b, A: c.A}
		})
	}
	if s.Saturation != 1 {
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			gray := luma(c)
			return blend(color.NRGBA{R: gray, G: gray, B: gray, A: c.A}, c, s.Saturation)
		})
	}
	if s.Brightness != 1 {
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			return blend(color.NRGBA{A: c.A}, c, s.Brightness)
		})
	}
	if s.Contrast != 1 {
		mean := meanLuma(out)
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			return blend(color.NRGBA{R: mean, G: mean, B: mean, A: c.A}, c, s.Contrast)
		})
	}
	if s.posterizes() {
		step := 256.0 / float64(s.Posterize)
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			if c.A == 0 {
				return c
			}
			return color.NRGBA{R: posterize(c.R, step), G: posterize(c.G, step), B: posterize(c.B, step), A: c.A}
		})
	}
	return out
}

func fraction(h float64) float64 {
	for h >= 1 {
		h--
	}
	return h
}

// luma is the ITU-R 601 grey level, truncated.
func luma(c color.NRGBA) uint8 {
	return uint8(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
}

// meanLuma averages luma over every pixel, transparent ones included.
func meanLuma(img *image.NRGBA) uint8 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var total int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			total += int(luma(img.NRGBAAt(x, y)))
		}
	}
	return uint8(total / (b.Dx() * b.Dy()))
}

// blend returns base*(1-f) + c*f per channel, keeping c's alpha.
func blend(base, c color.NRGBA, f float64) color.NRGBA {
	mix := func(a, b uint8) uint8 {
		return common.ClampToUint8(int(float64(a)*(1-f) + float64(b)*f))
	}
	return color.NRGBA{R: mix(base.R, c.R), G: mix(base.G, c.G), B: mix(base.B, c.B), A: c.A}
}

func posterize(v uint8, step float64) uint8 {
	return common.ClampToUint8(int(float64(int(float64(v)/step)) * step))
}
