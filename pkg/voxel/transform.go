package voxel

import (
	"fmt"
	"strings"
)

// Direction is the compass direction the statue faces.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{North: "north", South: "south", East: "east", West: "west"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// ParseDirection parses a direction name.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Plane is the pair of world axes the texture is laid out on.
type Plane int

const (
	PlaneXZ Plane = iota // upright, the default layout
	PlaneXY              // y and z exchanged
	PlaneYZ              // x and y exchanged
)

var planeNames = [...]string{PlaneXZ: "xz", PlaneXY: "xy", PlaneYZ: "yz"}

func (p Plane) String() string {
	if p < PlaneXZ || p > PlaneYZ {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return planeNames[p]
}

// Valid reports whether p is a known plane.
func (p Plane) Valid() bool {
	return p >= PlaneXZ && p <= PlaneYZ
}

// ParsePlane parses a plane name.
func ParsePlane(s string) (Plane, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range planeNames {
		if n == name {
			return Plane(p), nil
		}
	}
	return 0, fmt.Errorf("unknown plane %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Plane) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Plane) UnmarshalText(text []byte) error {
	parsed, err := ParsePlane(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Orientation places voxels in the world. Apply runs plane, direction,
// extra quarter turns, offset and flips, in that order.
type Orientation struct {
	Direction      Direction
	Rotate         int // extra clockwise rotation in degrees: 0, 90, 180 or 270
	Plane          Plane
	FlipHorizontal bool
	FlipVertical   bool
	OffsetX        int
	OffsetY        int
	OffsetZ        int
}

// ValidRotation reports whether degrees is a supported quarter turn.
func ValidRotation(degrees int) bool {
	switch degrees {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

func rotate(d Direction, x, z int) (int, int) {
	switch d {
	case South:
		return -x, -z
	case East:
		return z, -x
	case West:
		return -z, x
	}
	return x, z
}

// Apply transforms one position.
func (o Orientation) Apply(x, y, z int) (int, int, int) {
	switch o.Plane {
	case PlaneXY:
		y, z = z, y
	case PlaneYZ:
		x, y = y, x
	}

	x, z = rotate(o.Direction, x, z)
	for turns := (o.Rotate / 90) % 4; turns > 0; turns-- {
		x, z = rotate(East, x, z)
	}

	x += o.OffsetX
	y += o.OffsetY
	z += o.OffsetZ

	if o.FlipHorizontal {
		x = -x
	}
	if o.FlipVertical {
		y = -y
	}
	return x, y, z
}
