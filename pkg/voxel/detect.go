package voxel

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hansbonini/skinstatue/pkg/common"
)

// SkinFormat is the texture layout variant of a skin.
type SkinFormat int

const (
	FormatDefault SkinFormat = iota
	FormatSlim
	FormatLegacy
)

func (f SkinFormat) String() string {
	switch f {
	case FormatSlim:
		return "slim"
	case FormatLegacy:
		return "legacy"
	default:
		return "default"
	}
}

// ParseSkinFormat parses "default", "slim" or "legacy".
func ParseSkinFormat(s string) (SkinFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "classic", "":
		return FormatDefault, nil
	case "slim", "alex":
		return FormatSlim, nil
	case "legacy":
		return FormatLegacy, nil
	}
	return 0, fmt.Errorf("unknown skin format %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f SkinFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Pixel range scanned for the slim arm check.
const (
	slimScanMinX = 40
	slimScanMaxX = 44
	slimScanMinY = 16
	slimScanMaxY = 32
	slimMaxSpan  = 3
)

// DetectFormat classifies a skin texture. 64x32 textures are legacy. On
// textures at least 50 pixels wide the right arm strip is scanned for
// opaque pixels; a span of three columns or less means a slim skin.
func DetectFormat(img image.Image) SkinFormat {
	b := img.Bounds()
	if b.Dy() == 32 {
		return FormatLegacy
	}
	if b.Dx() < 50 || b.Dy() < slimScanMinY {
		return FormatDefault
	}

	minX, maxX := -1, -1
	for y := slimScanMinY; y < slimScanMaxY && y < b.Dy(); y++ {
		for x := slimScanMinX; x < slimScanMaxX && x < b.Dx(); x++ {
			if alphaAt(img, x, y) == 0 {
				continue
			}
			if minX < 0 || x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
	}
	common.LogDebug(common.DebugSlimArmSpan, minX, maxX)

	if minX >= 0 && maxX-minX+1 <= slimMaxSpan {
		return FormatSlim
	}
	return FormatDefault
}

// pixelAt reads a pixel relative to the image bounds as non-premultiplied RGBA.
func pixelAt(img image.Image, x, y int) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

func alphaAt(img image.Image, x, y int) uint8 {
	return pixelAt(img, x, y).A
}
