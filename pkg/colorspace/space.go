// Package colorspace provides conversions between RGB and the HSL, HSB and
// CIE L*a*b* color spaces, and the distance metrics built on them.
//
// All conversions are pure and deterministic for 0-255 integer input. HSL
// and HSB components are normalized to [0,1]. LAB conversion goes through
// XYZ without sRGB linearization, scaled to a D65 white of 95.047/100/108.883.
package colorspace

import "math"

// D65 reference white.
const (
	WhiteX = 95.047
	WhiteY = 100.000
	WhiteZ = 108.883
)

// labEpsilon is the breakpoint (6/29)^3 of the LAB companding function.
var labEpsilon = math.Pow(6.0/29.0, 3)

// HSL is hue, saturation and lightness, each in [0,1].
type HSL struct {
	H, S, L float64
}

// HSB is hue, saturation and brightness (value), each in [0,1].
type HSB struct {
	H, S, B float64
}

// LAB is a CIE L*a*b* triple.
type LAB struct {
	L, A, B float64
}

// XYZ is a CIE XYZ triple scaled to 0-100.
type XYZ struct {
	X, Y, Z float64
}

func normalize(r, g, b uint8) (float64, float64, float64) {
	return float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0
}

// hue computes the six-sector hue in [0,1) shared by HSL and HSB.
func hue(rf, gf, bf, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch max {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	return h / 6
}

// RGBToHSL converts 8-bit RGB to HSL.
func RGBToHSL(r, g, b uint8) HSL {
	rf, gf, bf := normalize(r, g, b)
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	l := (max + min) / 2
	var s float64
	if delta != 0 {
		if l > 0.5 {
			s = delta / (2 - max - min)
		} else {
			s = delta / (max + min)
		}
	}
	return HSL{H: hue(rf, gf, bf, max, delta), S: s, L: l}
}

// HSLToRGB converts HSL back to 8-bit RGB, rounding to the nearest integer.
func HSLToRGB(c HSL) (uint8, uint8, uint8) {
	if c.S == 0 {
		v := to8(c.L)
		return v, v, v
	}
	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q
	return to8(hueToChannel(p, q, c.H+1.0/3.0)),
		to8(hueToChannel(p, q, c.H)),
		to8(hueToChannel(p, q, c.H-1.0/3.0))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// RGBToHSB converts 8-bit RGB to HSB (HSV).
func RGBToHSB(r, g, b uint8) HSB {
	rf, gf, bf := normalize(r, g, b)
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var s float64
	if max != 0 {
		s = delta / max
	}
	return HSB{H: hue(rf, gf, bf, max, delta), S: s, B: max}
}

// HSBToRGB converts HSB back to 8-bit RGB, rounding to the nearest integer.
func HSBToRGB(c HSB) (uint8, uint8, uint8) {
	if c.S == 0 {
		v := to8(c.B)
		return v, v, v
	}
	h := c.H * 6
	if h >= 6 {
		h = 0
	}
	sector := math.Floor(h)
	f := h - sector
	p := c.B * (1 - c.S)
	q := c.B * (1 - c.S*f)
	t := c.B * (1 - c.S*(1-f))

	var rf, gf, bf float64
	switch int(sector) {
	case 0:
		rf, gf, bf = c.B, t, p
	case 1:
		rf, gf, bf = q, c.B, p
	case 2:
		rf, gf, bf = p, c.B, t
	case 3:
		rf, gf, bf = p, q, c.B
	case 4:
		rf, gf, bf = t, p, c.B
	default:
		rf, gf, bf = c.B, p, q
	}
	return to8(rf), to8(gf), to8(bf)
}

// RGBToXYZ converts 8-bit RGB to XYZ using the fixed sRGB matrix applied to
// the raw (non-linearized) channels.
func RGBToXYZ(r, g, b uint8) XYZ {
	rf, gf, bf := normalize(r, g, b)
	return XYZ{
		X: (rf*0.4124564 + gf*0.3575761 + bf*0.1804375) * 100,
		Y: (rf*0.2126729 + gf*0.7151522 + bf*0.0721750) * 100,
		Z: (rf*0.0193339 + gf*0.1191920 + bf*0.9503041) * 100,
	}
}

// XYZToLAB converts XYZ to LAB relative to the D65 white.
func XYZToLAB(c XYZ) LAB {
	fx := labF(c.X / WhiteX)
	fy := labF(c.Y / WhiteY)
	fz := labF(c.Z / WhiteZ)
	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGBToLAB converts 8-bit RGB to LAB.
func RGBToLAB(r, g, b uint8) LAB {
	return XYZToLAB(RGBToXYZ(r, g, b))
}

// LABToXYZ is the inverse of XYZToLAB.
func LABToXYZ(c LAB) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{
		X: WhiteX * labFInverse(fx),
		Y: WhiteY * labFInverse(fy),
		Z: WhiteZ * labFInverse(fz),
	}
}

// XYZToRGB is the inverse of RGBToXYZ, clamped and rounded to 8 bits.
func XYZToRGB(c XYZ) (uint8, uint8, uint8) {
	x, y, z := c.X/100, c.Y/100, c.Z/100
	rf := x*3.2404542 - y*1.5371385 - z*0.4985314
	gf := -x*0.9692660 + y*1.8760108 + z*0.0415560
	bf := x*0.0556434 - y*0.2040259 + z*1.0572252
	return to8(rf), to8(gf), to8(bf)
}

// LABToRGB converts LAB back to 8-bit RGB. It is meant for reference tooling,
// matching never calls it.
func LABToRGB(c LAB) (uint8, uint8, uint8) {
	return XYZToRGB(LABToXYZ(c))
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (1.0/3.0)*(29.0/6.0)*(29.0/6.0)*t + 4.0/29.0
}

func labFInverse(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// to8 maps a [0,1] channel to 0-255 with rounding and clamping.
func to8(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
