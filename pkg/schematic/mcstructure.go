package schematic

import (
	"encoding/binary"
	"slices"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/nbt"
	"github.com/hansbonini/skinstatue/pkg/voxel"
)

// Bedrock structure constants.
const (
	McStructureFormatVersion = 1
	BedrockBlockVersion      = 17959425 // 1.18.10
	noBlock                  = -1
)

// paletteEntry is one Bedrock palette block and the state values of every
// Java block folded into it, in first-seen order.
type paletteEntry struct {
	name     string
	stateKey string
	values   []string
}

// McStructureEncoder writes little-endian Bedrock .mcstructure files. Java
// names are remapped to Bedrock names and the palette is keyed by the
// Bedrock name. Coordinates are normalised to the min corner.
//
// Each palette entry serializes only the first state value seen for it, so
// every Java block folded into that entry shares one look: a statue built
// from several wool colors renders entirely in the first color placed.
// States still reports every value absorbed.
type McStructureEncoder struct {
	blockSet
}

// NewMcStructureEncoder creates an empty Bedrock structure encoder.
func NewMcStructureEncoder() *McStructureEncoder {
	return &McStructureEncoder{blockSet: newBlockSet()}
}

// Format returns FormatMcStructure.
func (e *McStructureEncoder) Format() Format {
	return FormatMcStructure
}

// Dimensions returns the size of the bounding box of every block.
func (e *McStructureEncoder) Dimensions() voxel.Dimensions {
	return voxel.Measure(e.blocks)
}

// UniqueBlockCount returns the number of Bedrock palette entries.
func (e *McStructureEncoder) UniqueBlockCount() int {
	entries, _ := e.palette()
	return len(entries)
}

// States returns every state value absorbed by the Bedrock block name, in
// first-seen order.
func (e *McStructureEncoder) States(bedrockName string) []string {
	entries, _ := e.palette()
	for _, entry := range entries {
		if entry.name == bedrockName {
			return slices.Clone(entry.values)
		}
	}
	return nil
}

// palette builds the Bedrock palette and maps each Java name to its entry.
func (e *McStructureEncoder) palette() ([]paletteEntry, map[string]int) {
	var entries []paletteEntry
	byBedrock := make(map[string]int)
	byJava := make(map[string]int, len(e.names))

	for _, java := range e.names {
		b := ToBedrock(java)
		i, ok := byBedrock[b.Name]
		if !ok {
			i = len(entries)
			byBedrock[b.Name] = i
			entries = append(entries, paletteEntry{name: b.Name, stateKey: b.StateKey})
		}
		if b.HasState() && !slices.Contains(entries[i].values, b.StateValue) {
			entries[i].values = append(entries[i].values, b.StateValue)
		}
		byJava[java] = i
		common.LogDebug(common.DebugBedrockRemap, java, b.Name, b.StateKey, b.StateValue)
	}
	return entries, byJava
}

// Generate encodes the structure and gzips it.
func (e *McStructureEncoder) Generate() ([]byte, error) {
	if e.empty() {
		return []byte{}, nil
	}

	data, err := nbt.MarshalGzip(binary.LittleEndian, "", e.buildTree())
	if err != nil {
		return nil, common.NewConversionError(common.KindEncode, common.ErrFailedToEncode, err)
	}
	return data, nil
}

func (e *McStructureEncoder) buildTree() *nbt.Compound {
	box, _ := voxel.Bounds(e.blocks)
	dims := box.Dimensions()
	common.LogDebug(common.DebugBoundsComputed, box.MinX, box.MinY, box.MinZ, box.MaxX, box.MaxY, box.MaxZ)

	entries, byJava := e.palette()

	indices := make([]int32, dims.Volume())
	waterlogged := make([]int32, dims.Volume())
	for i := range indices {
		indices[i] = noBlock
		waterlogged[i] = noBlock
	}
	for _, b := range e.blocks {
		x, y, z := b.X-box.MinX, b.Y-box.MinY, b.Z-box.MinZ
		indices[y*dims.Width*dims.Length+z*dims.Width+x] = int32(byJava[b.Name])
	}

	blockPalette := nbt.NewList(nbt.TagCompound)
	for i, entry := range entries {
		states := nbt.NewCompound()
		if entry.stateKey != "" && len(entry.values) > 0 {
			states.Set(entry.stateKey, nbt.String(entry.values[0]))
		}
		blockPalette.Add(nbt.NewCompound().
			Set("name", nbt.String(entry.name)).
			Set("states", states).
			Set("version", nbt.Int(BedrockBlockVersion)))
		common.LogDebug(common.DebugPaletteIndex, i, entry.name)
	}

	defaultPalette := nbt.NewCompound().
		Set("block_palette", blockPalette).
		Set("block_position_data", nbt.NewCompound())

	structure := nbt.NewCompound().
		Set("block_indices", nbt.NewList(nbt.TagList).Add(nbt.IntList(indices...), nbt.IntList(waterlogged...))).
		Set("entities", nbt.NewList(nbt.TagCompound)).
		Set("palette", nbt.NewCompound().Set("default", defaultPalette))

	return nbt.NewCompound().
		Set("format_version", nbt.Int(McStructureFormatVersion)).
		Set("size", nbt.IntList(int32(dims.Width), int32(dims.Height), int32(dims.Length))).
		Set("structure", structure).
		Set("structure_world_origin", nbt.IntList(0, 0, 0))
}
