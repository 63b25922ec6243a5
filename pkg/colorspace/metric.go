package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Mode selects one of the fixed color distance metrics.
type Mode int

const (
	ModeRGB Mode = iota
	ModeAbsRGB
	ModeHSL
	ModeHSB
	ModeLAB
)

// componentScale keeps [0,1] component deltas comparable to 0-255 deltas.
const componentScale = 1000.0

// Weights are per-channel multipliers applied by every metric.
type Weights [3]float64

// DefaultWeights weigh all three channels equally.
var DefaultWeights = Weights{1, 1, 1}

// MetricFunc returns a non-negative dissimilarity between two samples.
// Alpha is ignored.
type MetricFunc func(a, b color.NRGBA, w Weights) float64

var metrics = [...]MetricFunc{
	ModeRGB:    rgbDelta,
	ModeAbsRGB: absRGBDelta,
	ModeHSL:    hslDelta,
	ModeHSB:    hsbDelta,
	ModeLAB:    labDelta,
}

var modeNames = [...]string{
	ModeRGB:    "rgb",
	ModeAbsRGB: "absrgb",
	ModeHSL:    "hsl",
	ModeHSB:    "hsb",
	ModeLAB:    "lab",
}

// Modes lists every metric in declaration order.
func Modes() []Mode {
	return []Mode{ModeRGB, ModeAbsRGB, ModeHSL, ModeHSB, ModeLAB}
}

// Valid reports whether m names a known metric.
func (m Mode) Valid() bool {
	return m >= ModeRGB && m <= ModeLAB
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a metric name case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("unknown color mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Metric returns the distance function for m. Unknown modes fall back to LAB.
func Metric(m Mode) MetricFunc {
	if !m.Valid() {
		return metrics[ModeLAB]
	}
	return metrics[m]
}

// Delta computes the distance between a and b under mode m.
func Delta(m Mode, a, b color.NRGBA, w Weights) float64 {
	return Metric(m)(a, b, w)
}

func rgbDelta(a, b color.NRGBA, w Weights) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return dr*dr*w[0] + dg*dg*w[1] + db*db*w[2]
}

func absRGBDelta(a, b color.NRGBA, w Weights) float64 {
	dr := math.Abs(float64(a.R) - float64(b.R))
	dg := math.Abs(float64(a.G) - float64(b.G))
	db := math.Abs(float64(a.B) - float64(b.B))
	return dr*w[0] + dg*w[1] + db*w[2]
}

func scaledSquares(d0, d1, d2 float64, w Weights) float64 {
	d0 *= componentScale
	d1 *= componentScale
	d2 *= componentScale
	return d0*d0*w[0] + d1*d1*w[1] + d2*d2*w[2]
}

func hslDelta(a, b color.NRGBA, w Weights) float64 {
	ca := RGBToHSL(a.R, a.G, a.B)
	cb := RGBToHSL(b.R, b.G, b.B)
	return scaledSquares(ca.H-cb.H, ca.S-cb.S, ca.L-cb.L, w)
}

func hsbDelta(a, b color.NRGBA, w Weights) float64 {
	ca := RGBToHSB(a.R, a.G, a.B)
	cb := RGBToHSB(b.R, b.G, b.B)
	return scaledSquares(ca.H-cb.H, ca.S-cb.S, ca.B-cb.B, w)
}

func labDelta(a, b color.NRGBA, w Weights) float64 {
	ca := RGBToLAB(a.R, a.G, a.B)
	cb := RGBToLAB(b.R, b.G, b.B)
	return scaledSquares(ca.L-cb.L, ca.A-cb.A, ca.B-cb.B, w)
}
