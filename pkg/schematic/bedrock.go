package schematic

import "strings"

// BedrockBlock is a Bedrock block name with at most one block state.
type BedrockBlock struct {
	Name       string
	StateKey   string
	StateValue string
}

// HasState reports whether the block carries a state.
func (b BedrockBlock) HasState() bool {
	return b.StateKey != ""
}

type bedrockRemap struct {
	java     string
	bedrock  string
	stateKey string
	value    string
}

// Colored families collapse every dye color into one Bedrock block. The
// color state is derived from the Java name. Suffixes are checked in order.
var colorFamilies = [...]struct {
	suffix  string
	bedrock string
}{
	{"_concrete_powder", "minecraft:concrete_powder"},
	{"_concrete", "minecraft:concrete"},
	{"_stained_glass", "minecraft:stained_glass"},
	{"_terracotta", "minecraft:stained_hardened_clay"},
	{"_shulker_box", "minecraft:shulker_box"},
	{"_wool", "minecraft:wool"},
}

// Dye names in match order. light_gray is tested before gray and
// light_blue before blue.
var bedrockColors = [...]struct {
	java    string
	bedrock string
}{
	{"white", "white"},
	{"orange", "orange"},
	{"magenta", "magenta"},
	{"light_blue", "light_blue"},
	{"yellow", "yellow"},
	{"lime", "lime"},
	{"pink", "pink"},
	{"light_gray", "silver"},
	{"gray", "gray"},
	{"cyan", "cyan"},
	{"purple", "purple"},
	{"blue", "blue"},
	{"brown", "brown"},
	{"green", "green"},
	{"red", "red"},
	{"black", "black"},
}

// Blocks whose Bedrock name differs from the Java one.
var bedrockRemaps = [...]bedrockRemap{
	{"minecraft:terracotta", "minecraft:hardened_clay", "", ""},
	{"minecraft:shulker_box", "minecraft:undyed_shulker_box", "", ""},
	{"minecraft:light_gray_glazed_terracotta", "minecraft:silver_glazed_terracotta", "", ""},

	{"minecraft:oak_planks", "minecraft:planks", "wood_type", "oak"},
	{"minecraft:spruce_planks", "minecraft:planks", "wood_type", "spruce"},
	{"minecraft:birch_planks", "minecraft:planks", "wood_type", "birch"},
	{"minecraft:jungle_planks", "minecraft:planks", "wood_type", "jungle"},
	{"minecraft:acacia_planks", "minecraft:planks", "wood_type", "acacia"},
	{"minecraft:dark_oak_planks", "minecraft:planks", "wood_type", "dark_oak"},

	{"minecraft:stone", "minecraft:stone", "stone_type", "stone"},
	{"minecraft:granite", "minecraft:stone", "stone_type", "granite"},
	{"minecraft:polished_granite", "minecraft:stone", "stone_type", "granite_smooth"},
	{"minecraft:diorite", "minecraft:stone", "stone_type", "diorite"},
	{"minecraft:polished_diorite", "minecraft:stone", "stone_type", "diorite_smooth"},
	{"minecraft:andesite", "minecraft:stone", "stone_type", "andesite"},
	{"minecraft:polished_andesite", "minecraft:stone", "stone_type", "andesite_smooth"},

	{"minecraft:quartz_block", "minecraft:quartz_block", "chisel_type", "default"},
	{"minecraft:chiseled_quartz_block", "minecraft:quartz_block", "chisel_type", "chiseled"},
	{"minecraft:quartz_pillar", "minecraft:quartz_block", "chisel_type", "lines"},
	{"minecraft:smooth_quartz", "minecraft:quartz_block", "chisel_type", "smooth"},

	{"minecraft:prismarine", "minecraft:prismarine", "prismarine_block_type", "default"},
	{"minecraft:prismarine_bricks", "minecraft:prismarine", "prismarine_block_type", "bricks"},
	{"minecraft:dark_prismarine", "minecraft:prismarine", "prismarine_block_type", "dark"},

	{"minecraft:sandstone", "minecraft:sandstone", "sand_stone_type", "default"},
	{"minecraft:cut_sandstone", "minecraft:sandstone", "sand_stone_type", "cut"},
	{"minecraft:smooth_sandstone", "minecraft:sandstone", "sand_stone_type", "smooth"},
	{"minecraft:red_sandstone", "minecraft:red_sandstone", "sand_stone_type", "default"},
	{"minecraft:cut_red_sandstone", "minecraft:red_sandstone", "sand_stone_type", "cut"},
	{"minecraft:smooth_red_sandstone", "minecraft:red_sandstone", "sand_stone_type", "smooth"},

	{"minecraft:stone_bricks", "minecraft:stonebrick", "stone_brick_type", "default"},
	{"minecraft:mossy_stone_bricks", "minecraft:stonebrick", "stone_brick_type", "mossy"},
	{"minecraft:cracked_stone_bricks", "minecraft:stonebrick", "stone_brick_type", "cracked"},

	{"minecraft:purpur_block", "minecraft:purpur_block", "chisel_type", "default"},
	{"minecraft:purpur_pillar", "minecraft:purpur_block", "chisel_type", "lines"},

	{"minecraft:sand", "minecraft:sand", "sand_type", "normal"},
	{"minecraft:red_sand", "minecraft:sand", "sand_type", "red"},

	{"minecraft:bricks", "minecraft:brick_block", "", ""},
	{"minecraft:nether_bricks", "minecraft:nether_brick", "", ""},
	{"minecraft:red_nether_bricks", "minecraft:red_nether_brick", "", ""},
	{"minecraft:end_stone_bricks", "minecraft:end_bricks", "", ""},
	{"minecraft:snow_block", "minecraft:snow", "", ""},
	{"minecraft:melon", "minecraft:melon_block", "", ""},
}

var bedrockByJava = func() map[string]bedrockRemap {
	m := make(map[string]bedrockRemap, len(bedrockRemaps))
	for _, r := range bedrockRemaps {
		m[r.java] = r
	}
	return m
}()

// BedrockColor returns the Bedrock dye name contained in a Java block name,
// or "" when none matches.
func BedrockColor(java string) string {
	for _, c := range bedrockColors {
		if strings.Contains(java, c.java) {
			return c.bedrock
		}
	}
	return ""
}

// ToBedrock translates a Java block name. Names without a remap keep their
// identity and carry no state.
func ToBedrock(java string) BedrockBlock {
	if r, ok := bedrockByJava[java]; ok {
		return BedrockBlock{Name: r.bedrock, StateKey: r.stateKey, StateValue: r.value}
	}
	// Glazed terracotta has one Bedrock block per color.
	if strings.HasSuffix(java, "_glazed_terracotta") {
		return BedrockBlock{Name: java}
	}
	for _, f := range colorFamilies {
		if !strings.HasSuffix(java, f.suffix) {
			continue
		}
		if color := BedrockColor(java); color != "" {
			return BedrockBlock{Name: f.bedrock, StateKey: "color", StateValue: color}
		}
	}
	return BedrockBlock{Name: java}
}
