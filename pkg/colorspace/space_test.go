package colorspace

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    HSL
	}{
		{"black", 0, 0, 0, HSL{0, 0, 0}},
		{"white", 255, 255, 255, HSL{0, 0, 1}},
		{"red", 255, 0, 0, HSL{0, 1, 0.5}},
		{"green", 0, 255, 0, HSL{1.0 / 3.0, 1, 0.5}},
		{"blue", 0, 0, 255, HSL{2.0 / 3.0, 1, 0.5}},
		{"magenta wraps sector", 255, 0, 255, HSL{5.0 / 6.0, 1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.L, got.L, 1e-9)
		})
	}
}

func TestHSLAndHSBAgreeWithColorful(t *testing.T) {
	samples := [][3]uint8{
		{200, 55, 55}, {113, 188, 120}, {58, 99, 171}, {207, 88, 176},
		{240, 198, 56}, {12, 200, 240}, {90, 30, 220},
	}
	for _, s := range samples {
		ref := colorful.Color{R: float64(s[0]) / 255, G: float64(s[1]) / 255, B: float64(s[2]) / 255}

		h, sat, l := ref.Hsl()
		got := RGBToHSL(s[0], s[1], s[2])
		assert.InDelta(t, h, got.H*360, 1e-6, "hsl hue for %v", s)
		assert.InDelta(t, sat, got.S, 1e-6, "hsl saturation for %v", s)
		assert.InDelta(t, l, got.L, 1e-6, "hsl lightness for %v", s)

		h, sat, v := ref.Hsv()
		hsb := RGBToHSB(s[0], s[1], s[2])
		assert.InDelta(t, h, hsb.H*360, 1e-6, "hsb hue for %v", s)
		assert.InDelta(t, sat, hsb.S, 1e-6, "hsb saturation for %v", s)
		assert.InDelta(t, v, hsb.B, 1e-6, "hsb brightness for %v", s)
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				hsl := RGBToHSL(uint8(r), uint8(g), uint8(b))
				rr, gg, bb := HSLToRGB(hsl)
				if int(rr) != r || int(gg) != g || int(bb) != b {
					t.Fatalf("HSL round trip (%d,%d,%d) -> %+v -> (%d,%d,%d)", r, g, b, hsl, rr, gg, bb)
				}

				hsb := RGBToHSB(uint8(r), uint8(g), uint8(b))
				rr, gg, bb = HSBToRGB(hsb)
				if int(rr) != r || int(gg) != g || int(bb) != b {
					t.Fatalf("HSB round trip (%d,%d,%d) -> %+v -> (%d,%d,%d)", r, g, b, hsb, rr, gg, bb)
				}
			}
		}
	}
}

func TestRGBToHSB_ZeroMax(t *testing.T) {
	got := RGBToHSB(0, 0, 0)
	assert.Equal(t, HSB{0, 0, 0}, got)
}

func TestRGBToLAB(t *testing.T) {
	white := RGBToLAB(255, 255, 255)
	// Without linearization white still sits at the reference point.
	assert.InDelta(t, 100.0, white.L, 1e-3)
	assert.InDelta(t, 0.0, white.A, 1e-2)
	assert.InDelta(t, 0.0, white.B, 1e-2)

	black := RGBToLAB(0, 0, 0)
	assert.InDelta(t, 0.0, black.L, 1e-9)
	assert.InDelta(t, 0.0, black.A, 1e-9)
	assert.InDelta(t, 0.0, black.B, 1e-9)

	red := RGBToLAB(255, 0, 0)
	assert.Greater(t, red.A, 0.0)
	blue := RGBToLAB(0, 0, 255)
	assert.Less(t, blue.B, 0.0)
}

func TestLABLinearSegment(t *testing.T) {
	// A very dark value falls below (6/29)^3 and uses the linear branch.
	dark := RGBToXYZ(1, 1, 1)
	assert.Less(t, dark.Y/WhiteY, math.Pow(6.0/29.0, 3))
	lab := XYZToLAB(dark)
	want := 116*((1.0/3.0)*(29.0/6.0)*(29.0/6.0)*(dark.Y/WhiteY)+4.0/29.0) - 16
	assert.InDelta(t, want, lab.L, 1e-9)
}

func TestLABRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 15 {
				lab := RGBToLAB(uint8(r), uint8(g), uint8(b))
				rr, gg, bb := LABToRGB(lab)
				if int(rr) != r || int(gg) != g || int(bb) != b {
					t.Fatalf("LAB round trip (%d,%d,%d) -> %+v -> (%d,%d,%d)", r, g, b, lab, rr, gg, bb)
				}
			}
		}
	}
}
