package pkg

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hansbonini/skinstatue/pkg/blocks"
	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// StackSize is the number of blocks in one full inventory stack.
const StackSize = 64

// MaterialsExporter writes materials lists and palette listings as YAML.
type MaterialsExporter struct{}

// NewMaterialsExporter creates a new materials exporter instance.
func NewMaterialsExporter() *MaterialsExporter {
	return &MaterialsExporter{}
}

// MaterialsPath returns where the materials list for out is written.
func MaterialsPath(out string) string {
	return out + ".materials.yaml"
}

// BuildMaterials sorts block counts by count, largest first, then by name.
func BuildMaterials(counts map[string]int) []MaterialEntry {
	entries := make([]MaterialEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, MaterialEntry{
			Name:      name,
			Count:     count,
			Stacks:    count / StackSize,
			Remainder: count % StackSize,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Export writes the materials list of result to path.
// Parameters:
//   - result: a finished conversion
//   - path: destination YAML file
//
// Returns an error if the file cannot be created or encoded.
func (e *MaterialsExporter) Export(result *ConversionResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateOutputFile, err)
	}
	defer file.Close()

	doc := MaterialsYAML{
		Format:       result.Format.String(),
		TotalBlocks:  result.BlockCount,
		UniqueBlocks: result.UniqueBlockCount,
		Width:        result.Dimensions.Width,
		Height:       result.Dimensions.Height,
		Length:       result.Dimensions.Length,
		Materials:    BuildMaterials(result.Materials),
	}
	if err := e.encode(file, doc); err != nil {
		return err
	}

	common.LogInfo(common.InfoMaterialsExported, len(doc.Materials), path)
	return nil
}

// PaletteEntry is one block in a palette listing.
type PaletteEntry struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Alpha    uint8  `yaml:"alpha"`
	Category string `yaml:"category"`
	Falling  bool   `yaml:"falling,omitempty"`
}

// PaletteEntries describes every block of p, colors as #rrggbb.
func PaletteEntries(p blocks.Palette) []PaletteEntry {
	entries := make([]PaletteEntry, 0, len(p))
	for _, b := range p {
		entries = append(entries, PaletteEntry{
			Name:     b.Name,
			Color:    HexColor(b),
			Alpha:    b.Color.A,
			Category: b.Category.String(),
			Falling:  b.Falling,
		})
	}
	return entries
}

// HexColor formats a block's color without its alpha.
func HexColor(b blocks.Block) string {
	c := colorful.Color{
		R: float64(b.Color.R) / 255,
		G: float64(b.Color.G) / 255,
		B: float64(b.Color.B) / 255,
	}
	return c.Hex()
}

// ExportPalette writes a palette listing to w.
func (e *MaterialsExporter) ExportPalette(w io.Writer, p blocks.Palette) error {
	if err := e.encode(w, PaletteEntries(p)); err != nil {
		return common.FormatError(common.ErrFailedToEncodePaletteYAML, err)
	}
	return nil
}

func (e *MaterialsExporter) encode(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
