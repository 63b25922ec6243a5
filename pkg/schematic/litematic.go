package schematic

import (
	"encoding/binary"
	"time"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/nbt"
	"github.com/hansbonini/skinstatue/pkg/voxel"
)

// Litematica header constants.
const (
	LitematicVersion     = 7
	LitematicSubVersion  = 1
	LitematicDataVersion = 3700
	LitematicName        = "Skin Statue"
	LitematicAuthor      = "SkinToStatue"
	LitematicDescription = "Generated from Minecraft skin"
	LitematicRegionName  = "Statue"
	litematicAir         = "minecraft:air"
	minBitsPerBlock      = 2
	litematicBitsPerLong = 64
)

// BitsPerBlock returns the smallest b with 2^b >= paletteSize, never less
// than 2.
func BitsPerBlock(paletteSize int) int {
	bits := 0
	for 1<<bits < paletteSize {
		bits++
	}
	return max(bits, minBitsPerBlock)
}

// PackBlockStates packs palette indices into longs, 64/bits entries per
// long. Entry j of a long occupies bits [j*bits, (j+1)*bits); entries never
// span two longs.
func PackBlockStates(indices []int, bits int) []int64 {
	perLong := litematicBitsPerLong / bits
	count := (len(indices) + perLong - 1) / perLong
	mask := uint64(1)<<bits - 1

	packed := make([]int64, count)
	for i, v := range indices {
		word, slot := i/perLong, i%perLong
		packed[word] = int64(uint64(packed[word]) | (uint64(v)&mask)<<(slot*bits))
	}
	return packed
}

// UnpackBlockStates reverses PackBlockStates for n entries.
func UnpackBlockStates(packed []int64, bits, n int) []int {
	perLong := litematicBitsPerLong / bits
	mask := uint64(1)<<bits - 1

	out := make([]int, n)
	for i := range out {
		word, slot := i/perLong, i%perLong
		if word >= len(packed) {
			break
		}
		out[i] = int(uint64(packed[word]) >> (slot * bits) & mask)
	}
	return out
}

// LitematicEncoder writes big-endian Litematica files with a single region.
// Negative coordinates are supported through the region's min corner.
type LitematicEncoder struct {
	blockSet
	now func() time.Time
}

// NewLitematicEncoder creates an empty Litematica encoder using the wall
// clock for timestamps.
func NewLitematicEncoder() *LitematicEncoder {
	return &LitematicEncoder{blockSet: newBlockSet(), now: time.Now}
}

// SetClock replaces the timestamp source.
func (e *LitematicEncoder) SetClock(now func() time.Time) {
	e.now = now
}

// Format returns FormatLitematic.
func (e *LitematicEncoder) Format() Format {
	return FormatLitematic
}

// Dimensions returns the size of the bounding box of every block.
func (e *LitematicEncoder) Dimensions() voxel.Dimensions {
	return voxel.Measure(e.blocks)
}

// Palette returns the block state palette in index order. Index 0 is air so
// cells without a block stay empty.
func (e *LitematicEncoder) Palette() []string {
	return append([]string{litematicAir}, e.names...)
}

// Generate encodes the region file and gzips it.
func (e *LitematicEncoder) Generate() ([]byte, error) {
	if e.empty() {
		return []byte{}, nil
	}

	data, err := nbt.MarshalGzip(binary.BigEndian, "", e.buildTree())
	if err != nil {
		return nil, common.NewConversionError(common.KindEncode, common.ErrFailedToEncode, err)
	}
	return data, nil
}

func (e *LitematicEncoder) buildTree() *nbt.Compound {
	box, _ := voxel.Bounds(e.blocks)
	dims := box.Dimensions()
	common.LogDebug(common.DebugBoundsComputed, box.MinX, box.MinY, box.MinZ, box.MaxX, box.MaxY, box.MaxZ)

	millis := e.now().UnixMilli()
	metadata := nbt.NewCompound().
		Set("Name", nbt.String(LitematicName)).
		Set("Author", nbt.String(LitematicAuthor)).
		Set("Description", nbt.String(LitematicDescription)).
		Set("RegionCount", nbt.Int(1)).
		Set("TotalVolume", nbt.Int(dims.Volume())).
		Set("TotalBlocks", nbt.Int(len(e.blocks))).
		Set("TimeCreated", nbt.Long(millis)).
		Set("TimeModified", nbt.Long(millis)).
		Set("EnclosingSize", vec3(dims.Width, dims.Height, dims.Length))

	regions := nbt.NewCompound().Set(LitematicRegionName, e.buildRegion(box, dims))

	return nbt.NewCompound().
		Set("Version", nbt.Int(LitematicVersion)).
		Set("SubVersion", nbt.Int(LitematicSubVersion)).
		Set("MinecraftDataVersion", nbt.Int(LitematicDataVersion)).
		Set("Metadata", metadata).
		Set("Size", nbt.IntList(int32(dims.Width), int32(dims.Height), int32(dims.Length))).
		Set("Offset", nbt.IntList(int32(box.MinX), int32(box.MinY), int32(box.MinZ))).
		Set("Regions", regions)
}

func (e *LitematicEncoder) buildRegion(box voxel.Box, dims voxel.Dimensions) *nbt.Compound {
	palette := nbt.NewList(nbt.TagCompound)
	names := e.Palette()
	for i, name := range names {
		palette.Add(nbt.NewCompound().
			Set("Name", nbt.String(name)).
			Set("Properties", nbt.NewCompound()))
		common.LogDebug(common.DebugPaletteIndex, i, name)
	}

	cells := make([]int, dims.Volume())
	for _, b := range e.blocks {
		relX, relY, relZ := b.X-box.MinX, b.Y-box.MinY, b.Z-box.MinZ
		cells[relY*dims.Width*dims.Length+relZ*dims.Width+relX] = e.index[b.Name] + 1
	}

	bits := BitsPerBlock(len(names))
	states := PackBlockStates(cells, bits)
	common.LogDebug(common.DebugBitsPerBlock, len(names), bits, len(states))

	return nbt.NewCompound().
		Set("Position", vec3(box.MinX, box.MinY, box.MinZ)).
		Set("Size", vec3(dims.Width, dims.Height, dims.Length)).
		Set("BlockStatePalette", palette).
		Set("BlockStates", nbt.LongArray(states)).
		Set("PendingBlockTicks", nbt.NewList(nbt.TagCompound)).
		Set("PendingFluidTicks", nbt.NewList(nbt.TagCompound)).
		Set("Entities", nbt.NewList(nbt.TagCompound)).
		Set("TileEntities", nbt.NewList(nbt.TagCompound))
}

func vec3(x, y, z int) *nbt.Compound {
	return nbt.NewCompound().
		Set("x", nbt.Int(x)).
		Set("y", nbt.Int(y)).
		Set("z", nbt.Int(z))
}
