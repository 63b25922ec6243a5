// Package voxel turns the body-part regions of a skin texture into placed
// blocks.
package voxel

// RegionHeight is the number of texture rows read for a region unless it
// sets its own Rows.
const RegionHeight = 12

// BodyPart groups regions under the head/body/arms/legs toggles.
type BodyPart int

const (
	PartHead BodyPart = iota
	PartBody
	PartArms
	PartLegs
)

func (p BodyPart) String() string {
	switch p {
	case PartHead:
		return "head"
	case PartBody:
		return "body"
	case PartArms:
		return "arms"
	case PartLegs:
		return "legs"
	}
	return "unknown"
}

// Region is a rectangle of the skin texture. X and Y locate its top-left
// corner, which also becomes its offset in the statue.
type Region struct {
	Name      string
	Part      BodyPart
	X, Y      int
	Width     int
	SlimWidth int // width on slim skins, 0 when unaffected
	Overlay   bool
	// Rows caps the texture rows read, 0 means RegionHeight. Rows are
	// anchored at the top of the region.
	Rows int
	// BaseX and BaseY locate the first-layer region an overlay sits on.
	BaseX, BaseY int
}

// WidthFor returns the region width for a skin format.
func (r Region) WidthFor(format SkinFormat) int {
	if format == FormatSlim && r.SlimWidth > 0 {
		return r.SlimWidth
	}
	return r.Width
}

// Height returns the number of texture rows read for the region.
func (r Region) Height() int {
	if r.Rows > 0 {
		return r.Rows
	}
	return RegionHeight
}

// Regions is the first skin layer in processing order.
var Regions = [...]Region{
	{Name: "head", Part: PartHead, X: 8, Y: 8, Width: 8},
	{Name: "body", Part: PartBody, X: 20, Y: 20, Width: 8},
	{Name: "right_arm", Part: PartArms, X: 40, Y: 20, Width: 4, SlimWidth: 3},
	{Name: "left_arm", Part: PartArms, X: 32, Y: 52, Width: 4, SlimWidth: 3},
	{Name: "right_leg", Part: PartLegs, X: 0, Y: 20, Width: 4},
	{Name: "left_leg", Part: PartLegs, X: 16, Y: 52, Width: 4},
}

// OverlayRegions is the second skin layer (hat, jacket, sleeves, pants).
// The hat face is 8 rows tall; the rows below it hold arm texture.
var OverlayRegions = [...]Region{
	{Name: "hat", Part: PartHead, X: 40, Y: 8, Width: 8, Rows: 8, Overlay: true, BaseX: 8, BaseY: 8},
	{Name: "jacket", Part: PartBody, X: 20, Y: 36, Width: 8, Overlay: true, BaseX: 20, BaseY: 20},
	{Name: "right_sleeve", Part: PartArms, X: 40, Y: 36, Width: 4, SlimWidth: 3, Overlay: true, BaseX: 40, BaseY: 20},
	{Name: "left_sleeve", Part: PartArms, X: 48, Y: 52, Width: 4, SlimWidth: 3, Overlay: true, BaseX: 32, BaseY: 52},
	{Name: "right_pants", Part: PartLegs, X: 0, Y: 36, Width: 4, Overlay: true, BaseX: 0, BaseY: 20},
	{Name: "left_pants", Part: PartLegs, X: 0, Y: 52, Width: 4, Overlay: true, BaseX: 16, BaseY: 52},
}

// Origin returns where the region is placed in the statue before scaling.
func (r Region) Origin() (int, int) {
	if r.Overlay {
		return r.BaseX, r.BaseY
	}
	return r.X, r.Y
}
