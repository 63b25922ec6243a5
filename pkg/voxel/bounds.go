package voxel

// PlacedBlock is one block instance at an integer position.
type PlacedBlock struct {
	X, Y, Z int
	Name    string
}

// Dimensions is a width/height/length triple.
type Dimensions struct {
	Width, Height, Length int
}

// Volume returns Width*Height*Length.
func (d Dimensions) Volume() int {
	return d.Width * d.Height * d.Length
}

// Box is an inclusive axis-aligned bounding box.
type Box struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// Dimensions returns max-min+1 on every axis.
func (b Box) Dimensions() Dimensions {
	return Dimensions{
		Width:  b.MaxX - b.MinX + 1,
		Height: b.MaxY - b.MinY + 1,
		Length: b.MaxZ - b.MinZ + 1,
	}
}

// Bounds computes the bounding box of placed blocks. It reports false for
// an empty list.
func Bounds(placed []PlacedBlock) (Box, bool) {
	if len(placed) == 0 {
		return Box{}, false
	}
	first := placed[0]
	box := Box{first.X, first.Y, first.Z, first.X, first.Y, first.Z}
	for _, p := range placed[1:] {
		box.MinX = min(box.MinX, p.X)
		box.MinY = min(box.MinY, p.Y)
		box.MinZ = min(box.MinZ, p.Z)
		box.MaxX = max(box.MaxX, p.X)
		box.MaxY = max(box.MaxY, p.Y)
		box.MaxZ = max(box.MaxZ, p.Z)
	}
	return box, true
}

// Normalize returns a copy of placed shifted so its bounding box starts at
// the origin. Measure is unchanged by the shift.
func Normalize(placed []PlacedBlock) []PlacedBlock {
	box, ok := Bounds(placed)
	if !ok {
		return nil
	}
	shifted := make([]PlacedBlock, len(placed))
	for i, p := range placed {
		shifted[i] = PlacedBlock{X: p.X - box.MinX, Y: p.Y - box.MinY, Z: p.Z - box.MinZ, Name: p.Name}
	}
	return shifted
}

// Measure returns the dimensions of placed blocks, zero when empty.
func Measure(placed []PlacedBlock) Dimensions {
	box, ok := Bounds(placed)
	if !ok {
		return Dimensions{}
	}
	return box.Dimensions()
}

// UniqueNames counts distinct block names.
func UniqueNames(placed []PlacedBlock) int {
	seen := make(map[string]struct{})
	for _, p := range placed {
		seen[p.Name] = struct{}{}
	}
	return len(seen)
}

// CountByName tallies blocks per name.
func CountByName(placed []PlacedBlock) map[string]int {
	counts := make(map[string]int)
	for _, p := range placed {
		counts[p.Name]++
	}
	return counts
}
