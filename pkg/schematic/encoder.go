// Package schematic encodes placed blocks into the three statue file formats:
// Sponge schematics, Litematica regions and Bedrock structures.
package schematic

import (
	"fmt"
	"strings"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/voxel"
)

// Encoder accumulates placed blocks and serialises them into one format.
// Generate returns an empty buffer when no block was added.
type Encoder interface {
	AddBlock(x, y, z int, name string)
	AddBlocks(placed []voxel.PlacedBlock)
	Generate() ([]byte, error)
	Clear()
	BlockCount() int
	UniqueBlockCount() int
	Dimensions() voxel.Dimensions
	Format() Format
}

// Format selects an output dialect.
type Format int

const (
	FormatSchem Format = iota
	FormatLitematic
	FormatMcStructure
)

var formatNames = [...]string{
	FormatSchem:       "schem",
	FormatLitematic:   "litematic",
	FormatMcStructure: "mcstructure",
}

// Formats lists every output format.
func Formats() []Format {
	return []Format{FormatSchem, FormatLitematic, FormatMcStructure}
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f >= FormatSchem && f <= FormatMcStructure
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat parses a format name. A leading dot is accepted so file
// extensions can be passed directly.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%s: %q", common.ErrUnknownOutputFormat, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// New returns an empty encoder for format.
func New(format Format) (Encoder, error) {
	switch format {
	case FormatSchem:
		return NewSpongeEncoder(), nil
	case FormatLitematic:
		return NewLitematicEncoder(), nil
	case FormatMcStructure:
		return NewMcStructureEncoder(), nil
	}
	return nil, fmt.Errorf("%s: %v", common.ErrUnknownOutputFormat, format)
}

// blockSet is the accumulator shared by every encoder: placed blocks in
// insertion order plus a name palette in first-seen order.
type blockSet struct {
	blocks []voxel.PlacedBlock
	names  []string
	index  map[string]int
}

func newBlockSet() blockSet {
	return blockSet{index: make(map[string]int)}
}

func (s *blockSet) add(x, y, z int, name string) {
	s.blocks = append(s.blocks, voxel.PlacedBlock{X: x, Y: y, Z: z, Name: name})
	if _, ok := s.index[name]; !ok {
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
	}
}

// AddBlocks adds every placed block.
func (s *blockSet) AddBlocks(placed []voxel.PlacedBlock) {
	for _, p := range placed {
		s.add(p.X, p.Y, p.Z, p.Name)
	}
}

// AddBlock adds one block.
func (s *blockSet) AddBlock(x, y, z int, name string) {
	s.add(x, y, z, name)
}

// BlockCount returns the number of blocks added.
func (s *blockSet) BlockCount() int {
	return len(s.blocks)
}

// UniqueBlockCount returns the number of distinct block names added.
func (s *blockSet) UniqueBlockCount() int {
	return len(s.names)
}

// Clear drops every block.
func (s *blockSet) Clear() {
	s.blocks = nil
	s.names = nil
	s.index = make(map[string]int)
}

func (s *blockSet) empty() bool {
	return len(s.blocks) == 0
}
