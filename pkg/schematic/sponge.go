package schematic

import (
	"encoding/binary"
	"fmt"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/nbt"
	"github.com/hansbonini/skinstatue/pkg/voxel"
)

// Sponge schematic header constants.
const (
	SpongeVersion     = 2
	SpongeDataVersion = 2578 // Minecraft 1.16.5
	SpongeName        = "Generated Statue"
	SpongeAuthor      = "SkinToStatue"
)

// SpongeEncoder writes big-endian Sponge .schem files. Coordinates are
// taken as-is; negative positions are not representable and must be offset
// by the caller.
type SpongeEncoder struct {
	blockSet
}

// NewSpongeEncoder creates an empty Sponge encoder.
func NewSpongeEncoder() *SpongeEncoder {
	return &SpongeEncoder{blockSet: newBlockSet()}
}

// Format returns FormatSchem.
func (e *SpongeEncoder) Format() Format {
	return FormatSchem
}

// Dimensions returns max coordinate + 1 on every axis, starting from zero.
func (e *SpongeEncoder) Dimensions() voxel.Dimensions {
	var d voxel.Dimensions
	for _, b := range e.blocks {
		d.Width = max(d.Width, b.X+1)
		d.Height = max(d.Height, b.Y+1)
		d.Length = max(d.Length, b.Z+1)
	}
	return d
}

// PackBlock packs a position and palette index into one signed long:
// x in bits 48-63, z in 32-47, y in 16-31 and the index in 0-15. Every
// field is masked to 16 bits.
func PackBlock(x, y, z, index int) int64 {
	u := uint64(x&0xFFFF)<<48 |
		uint64(z&0xFFFF)<<32 |
		uint64(y&0xFFFF)<<16 |
		uint64(index&0xFFFF)
	return int64(u)
}

// UnpackBlock reverses PackBlock. Fields come back as unsigned 16-bit values.
func UnpackBlock(v int64) (x, y, z, index int) {
	u := uint64(v)
	return int(u >> 48 & 0xFFFF), int(u >> 16 & 0xFFFF), int(u >> 32 & 0xFFFF), int(u & 0xFFFF)
}

// Generate encodes the schematic and gzips it.
func (e *SpongeEncoder) Generate() ([]byte, error) {
	if e.empty() {
		return []byte{}, nil
	}

	root, err := e.buildTree()
	if err != nil {
		return nil, err
	}
	data, err := nbt.MarshalGzip(binary.BigEndian, "Schematic", root)
	if err != nil {
		return nil, common.NewConversionError(common.KindEncode, common.ErrFailedToEncode, err)
	}
	return data, nil
}

func (e *SpongeEncoder) buildTree() (*nbt.Compound, error) {
	dims := e.Dimensions()
	width, err := e.dimension("Width", dims.Width)
	if err != nil {
		return nil, err
	}
	height, err := e.dimension("Height", dims.Height)
	if err != nil {
		return nil, err
	}
	length, err := e.dimension("Length", dims.Length)
	if err != nil {
		return nil, err
	}

	for _, b := range e.blocks {
		if b.X < 0 || b.Y < 0 || b.Z < 0 {
			common.LogWarn(common.WarnNegativeCoordinates, FormatSchem)
			break
		}
	}

	palette := nbt.NewCompound()
	for i, name := range e.names {
		palette.Set(name, nbt.Int(i))
		common.LogDebug(common.DebugPaletteIndex, i, name)
	}

	blockData := nbt.NewList(nbt.TagLong)
	for _, b := range e.blocks {
		blockData.Add(nbt.Long(PackBlock(b.X, b.Y, b.Z, e.index[b.Name])))
	}

	metadata := nbt.NewCompound().
		Set("Name", nbt.String(SpongeName)).
		Set("Author", nbt.String(SpongeAuthor))

	return nbt.NewCompound().
		Set("Version", nbt.Int(SpongeVersion)).
		Set("DataVersion", nbt.Int(SpongeDataVersion)).
		Set("Metadata", metadata).
		Set("Width", nbt.Short(width)).
		Set("Height", nbt.Short(height)).
		Set("Length", nbt.Short(length)).
		Set("Offset", nbt.IntArray{0, 0, 0}).
		Set("PaletteMax", nbt.Int(len(e.names))).
		Set("Palette", palette).
		Set("BlockData", blockData), nil
}

func (e *SpongeEncoder) dimension(axis string, v int) (int16, error) {
	s, err := common.SafeIntToInt16(v)
	if err != nil {
		return 0, common.NewConversionError(common.KindDimensionOverflow, common.ErrDimensionOverflow,
			fmt.Errorf("%s: %w", axis, err))
	}
	return s, nil
}
