// Package blocks provides the fixed table of building blocks a statue can be
// made of, together with read-only filtered views of it.
package blocks

import (
	"fmt"
	"image/color"
	"strings"
)

// TransparentAlpha is the alpha below which a color counts as translucent.
const TransparentAlpha = 200

// Category groups blocks by material family.
type Category int

const (
	CategoryWool Category = iota
	CategoryConcrete
	CategoryTerracotta
	CategoryPlanks
	CategoryGlass
	CategoryOther
)

var categoryNames = [...]string{
	CategoryWool:       "wool",
	CategoryConcrete:   "concrete",
	CategoryTerracotta: "terracotta",
	CategoryPlanks:     "planks",
	CategoryGlass:      "glass",
	CategoryOther:      "other",
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{CategoryWool, CategoryConcrete, CategoryTerracotta, CategoryPlanks, CategoryGlass, CategoryOther}
}

func (c Category) String() string {
	if c < CategoryWool || c > CategoryOther {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory parses a category name. "gray" is accepted for the
// stone-like bucket.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "gray" || name == "grey" {
		return CategoryOther, nil
	}
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("unknown block category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Block is one immutable palette entry.
type Block struct {
	Name     string      // namespaced identifier, e.g. "minecraft:white_wool"
	Color    color.NRGBA // average top-face color
	Category Category
	Falling  bool // affected by gravity
}

// Transparent reports whether the block's color is translucent.
func (b Block) Transparent() bool {
	return b.Color.A < TransparentAlpha
}

// Palette is an ordered, read-only list of blocks.
type Palette []Block

// Len returns the number of blocks.
func (p Palette) Len() int {
	return len(p)
}

// Filter returns a new palette with the blocks for which keep returns true.
func (p Palette) Filter(keep func(Block) bool) Palette {
	out := make(Palette, 0, len(p))
	for _, b := range p {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// ByCategory narrows the palette to the given categories.
func (p Palette) ByCategory(categories ...Category) Palette {
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	return p.Filter(func(b Block) bool { return want[b.Category] })
}

// ExcludingFalling drops gravity-affected blocks.
func (p Palette) ExcludingFalling() Palette {
	return p.Filter(func(b Block) bool { return !b.Falling })
}

// Names returns the block names in palette order.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, b := range p {
		names[i] = b.Name
	}
	return names
}

var byName = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, b := range table {
		if _, dup := m[b.Name]; dup {
			panic("blocks: duplicate palette entry " + b.Name)
		}
		m[b.Name] = i
	}
	return m
}()

// All returns a copy of the full palette.
func All() Palette {
	return append(Palette(nil), table[:]...)
}

// ByCategory returns the blocks in the given categories.
func ByCategory(categories ...Category) Palette {
	return Palette(table[:]).ByCategory(categories...)
}

// ExcludingFalling returns every block that is not gravity-affected.
func ExcludingFalling() Palette {
	return Palette(table[:]).ExcludingFalling()
}

// Select builds the candidate view used by a conversion. An empty category
// list selects every category.
func Select(categories []Category, excludeFalling bool) Palette {
	p := All()
	if len(categories) > 0 {
		p = p.ByCategory(categories...)
	}
	if excludeFalling {
		p = p.ExcludingFalling()
	}
	return p
}

// Lookup finds a block by name.
func Lookup(name string) (Block, bool) {
	i, ok := byName[name]
	if !ok {
		return Block{}, false
	}
	return table[i], true
}

// IsFalling reports whether name is a gravity-affected block.
func IsFalling(name string) bool {
	b, ok := Lookup(name)
	return ok && b.Falling
}
