// Package matcher finds the palette block whose color best matches a pixel.
//
// A Matcher is owned by a single conversion job. Its result cache is not
// synchronized and must not be shared between goroutines.
package matcher

import (
	"image/color"
	"math"
	"strings"

	"github.com/hansbonini/skinstatue/pkg/blocks"
	"github.com/hansbonini/skinstatue/pkg/colorspace"
)

// Alpha cut points for pixel classification.
const (
	MinVisibleAlpha = 32
	SolidAlpha      = blocks.TransparentAlpha
)

// PriorityTolerance is how far, relative to the best delta so far, a higher
// priority block may be and still win.
const PriorityTolerance = 1.05

// priorities are checked in order, first substring hit wins.
var priorities = [...]struct {
	substring string
	priority  int
}{
	{"wool", 10},
	{"concrete_powder", 6},
	{"concrete", 8},
	{"glazed_terracotta", 5},
	{"terracotta", 7},
	{"stained_glass", 4},
	{"shulker_box", 3},
	{"planks", 2},
}

// Priority returns the material preference of a block name.
func Priority(name string) int {
	for _, p := range priorities {
		if strings.Contains(name, p.substring) {
			return p.priority
		}
	}
	return 1
}

type cacheKey struct {
	r, g, b         uint8
	wantTransparent bool
}

type candidate struct {
	block    blocks.Block
	priority int
}

// Matcher holds the solid and transparent partitions of a palette view and
// a per-job result cache.
type Matcher struct {
	solid       []candidate
	transparent []candidate
	exact       bool
	cache       map[cacheKey]blocks.Block
}

// New partitions view into solid and transparent candidates. In exact mode
// a pixel never falls back to the opposite partition.
func New(view blocks.Palette, exact bool) *Matcher {
	m := &Matcher{
		exact: exact,
		cache: make(map[cacheKey]blocks.Block),
	}
	for _, b := range view {
		c := candidate{block: b, priority: Priority(b.Name)}
		switch {
		case b.Color.A >= SolidAlpha:
			m.solid = append(m.solid, c)
		case b.Color.A >= MinVisibleAlpha:
			m.transparent = append(m.transparent, c)
		}
	}
	return m
}

// Solid returns the blocks of the solid partition.
func (m *Matcher) Solid() blocks.Palette {
	return toPalette(m.solid)
}

// Transparent returns the blocks of the transparent partition.
func (m *Matcher) Transparent() blocks.Palette {
	return toPalette(m.transparent)
}

// Exact reports whether fallback to the opposite partition is disabled.
func (m *Matcher) Exact() bool {
	return m.exact
}

// CacheSize returns the number of cached lookups.
func (m *Matcher) CacheSize() int {
	return len(m.cache)
}

// ClearCache drops every cached lookup.
func (m *Matcher) ClearCache() {
	m.cache = make(map[cacheKey]blocks.Block)
}

// FindBestMatch returns the best block for pixel. Alpha is not part of the
// cache key; callers classify it through wantTransparent.
//
// Within the primary partition a candidate replaces the current best when
// its delta is strictly smaller, or when its priority is higher than the
// best priority seen and its delta is within PriorityTolerance of the
// smallest delta. The fallback partition, used only outside exact mode, is
// a plain nearest scan.
func (m *Matcher) FindBestMatch(pixel color.NRGBA, metric colorspace.MetricFunc, w colorspace.Weights, wantTransparent bool) (blocks.Block, bool) {
	key := cacheKey{pixel.R, pixel.G, pixel.B, wantTransparent}
	if b, ok := m.cache[key]; ok {
		return b, true
	}

	primary, fallback := m.solid, m.transparent
	if wantTransparent {
		primary, fallback = m.transparent, m.solid
	}

	best, found := scanWithPriority(primary, pixel, metric, w)
	if !found && len(fallback) > 0 && !m.exact {
		best, found = scanNearest(fallback, pixel, metric, w)
	}
	if found {
		m.cache[key] = best
	}
	return best, found
}

func scanWithPriority(list []candidate, pixel color.NRGBA, metric colorspace.MetricFunc, w colorspace.Weights) (blocks.Block, bool) {
	var best blocks.Block
	found := false
	smallest := math.MaxFloat64
	highest := 0

	for _, c := range list {
		delta := metric(pixel, c.block.Color, w)
		if delta < smallest || (c.priority > highest && delta <= smallest*PriorityTolerance) {
			smallest = delta
			highest = c.priority
			best = c.block
			found = true
		}
	}
	return best, found
}

func scanNearest(list []candidate, pixel color.NRGBA, metric colorspace.MetricFunc, w colorspace.Weights) (blocks.Block, bool) {
	var best blocks.Block
	found := false
	smallest := math.MaxFloat64

	for _, c := range list {
		if delta := metric(pixel, c.block.Color, w); delta < smallest {
			smallest = delta
			best = c.block
			found = true
		}
	}
	return best, found
}

func toPalette(list []candidate) blocks.Palette {
	p := make(blocks.Palette, len(list))
	for i, c := range list {
		p[i] = c.block
	}
	return p
}
