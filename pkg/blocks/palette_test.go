package blocks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteSize(t *testing.T) {
	all := All()
	require.Equal(t, 205, all.Len())

	seen := make(map[string]bool, all.Len())
	for _, b := range all {
		if seen[b.Name] {
			t.Errorf("duplicate block name %s", b.Name)
		}
		seen[b.Name] = true
		assert.True(t, strings.HasPrefix(b.Name, "minecraft:"), b.Name)
	}
}

func TestExcludingFalling(t *testing.T) {
	all := All()
	view := ExcludingFalling()

	assert.Less(t, view.Len(), all.Len())
	for _, b := range view {
		assert.False(t, b.Falling, "%s must not be in the non-falling view", b.Name)
	}

	falling := all.Filter(func(b Block) bool { return b.Falling })
	assert.Equal(t, 19, falling.Len())
	assert.Equal(t, all.Len(), view.Len()+falling.Len())
}

func TestFallingMembership(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"minecraft:sand", true},
		{"minecraft:red_sand", true},
		{"minecraft:gravel", true},
		{"minecraft:white_concrete_powder", true},
		{"minecraft:light_gray_concrete_powder", true},
		{"minecraft:white_concrete", false},
		{"minecraft:sandstone", false},
		{"minecraft:not_a_block", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFalling(tt.name))
		})
	}
}

func TestCategoryCounts(t *testing.T) {
	want := map[Category]int{
		CategoryWool:       16,
		CategoryConcrete:   32,
		CategoryTerracotta: 33,
		CategoryPlanks:     11,
		CategoryGlass:      18,
		CategoryOther:      95,
	}
	total := 0
	for c, n := range want {
		assert.Equal(t, n, ByCategory(c).Len(), c.String())
		total += n
	}
	assert.Equal(t, 205, total)
}

func TestTransparency(t *testing.T) {
	for _, b := range All() {
		if b.Category == CategoryGlass {
			assert.True(t, b.Transparent(), b.Name)
		} else {
			assert.False(t, b.Transparent(), b.Name)
		}
	}
}

func TestViewsDoNotAliasTable(t *testing.T) {
	view := All()
	view[0].Name = "minecraft:mutated"

	b, ok := Lookup("minecraft:white_wool")
	require.True(t, ok)
	assert.Equal(t, "minecraft:white_wool", b.Name)
	assert.Equal(t, "minecraft:white_wool", All()[0].Name)
}

func TestSelect(t *testing.T) {
	view := Select([]Category{CategoryWool, CategoryConcrete}, true)
	assert.Equal(t, 32, view.Len())
	for _, b := range view {
		assert.NotContains(t, b.Name, "powder")
	}

	assert.Equal(t, 205, Select(nil, false).Len())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"wool", CategoryWool, false},
		{"Concrete", CategoryConcrete, false},
		{"gray", CategoryOther, false},
		{"other", CategoryOther, false},
		{"glass", CategoryGlass, false},
		{"lava", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
