package blocks

import "image/color"

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 255} }

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

// table is the compiled-in palette. Order matters: it is the scan order of
// the matcher and the listing order of the CLI.
var table = [...]Block{
	// Wool
	{Name: "minecraft:white_wool", Color: rgb(255, 255, 255), Category: CategoryWool},
	{Name: "minecraft:light_gray_wool", Color: rgb(179, 179, 179), Category: CategoryWool},
	{Name: "minecraft:gray_wool", Color: rgb(128, 128, 128), Category: CategoryWool},
	{Name: "minecraft:black_wool", Color: rgb(34, 34, 34), Category: CategoryWool},
	{Name: "minecraft:brown_wool", Color: rgb(119, 72, 49), Category: CategoryWool},
	{Name: "minecraft:red_wool", Color: rgb(200, 55, 55), Category: CategoryWool},
	{Name: "minecraft:orange_wool", Color: rgb(222, 126, 52), Category: CategoryWool},
	{Name: "minecraft:yellow_wool", Color: rgb(251, 223, 68), Category: CategoryWool},
	{Name: "minecraft:lime_wool", Color: rgb(113, 188, 120), Category: CategoryWool},
	{Name: "minecraft:green_wool", Color: rgb(82, 113, 56), Category: CategoryWool},
	{Name: "minecraft:cyan_wool", Color: rgb(72, 126, 150), Category: CategoryWool},
	{Name: "minecraft:light_blue_wool", Color: rgb(126, 184, 202), Category: CategoryWool},
	{Name: "minecraft:blue_wool", Color: rgb(58, 99, 171), Category: CategoryWool},
	{Name: "minecraft:purple_wool", Color: rgb(145, 75, 165), Category: CategoryWool},
	{Name: "minecraft:magenta_wool", Color: rgb(207, 88, 176), Category: CategoryWool},
	{Name: "minecraft:pink_wool", Color: rgb(233, 140, 170), Category: CategoryWool},

	// Concrete
	{Name: "minecraft:white_concrete", Color: rgb(229, 229, 229), Category: CategoryConcrete},
	{Name: "minecraft:light_gray_concrete", Color: rgb(157, 157, 157), Category: CategoryConcrete},
	{Name: "minecraft:gray_concrete", Color: rgb(109, 109, 109), Category: CategoryConcrete},
	{Name: "minecraft:black_concrete", Color: rgb(29, 29, 29), Category: CategoryConcrete},
	{Name: "minecraft:brown_concrete", Color: rgb(101, 67, 33), Category: CategoryConcrete},
	{Name: "minecraft:red_concrete", Color: rgb(180, 52, 52), Category: CategoryConcrete},
	{Name: "minecraft:orange_concrete", Color: rgb(205, 98, 40), Category: CategoryConcrete},
	{Name: "minecraft:yellow_concrete", Color: rgb(240, 198, 56), Category: CategoryConcrete},
	{Name: "minecraft:lime_concrete", Color: rgb(95, 163, 84), Category: CategoryConcrete},
	{Name: "minecraft:green_concrete", Color: rgb(74, 92, 48), Category: CategoryConcrete},
	{Name: "minecraft:cyan_concrete", Color: rgb(58, 121, 139), Category: CategoryConcrete},
	{Name: "minecraft:light_blue_concrete", Color: rgb(107, 138, 166), Category: CategoryConcrete},
	{Name: "minecraft:blue_concrete", Color: rgb(46, 56, 141), Category: CategoryConcrete},
	{Name: "minecraft:purple_concrete", Color: rgb(122, 57, 127), Category: CategoryConcrete},
	{Name: "minecraft:magenta_concrete", Color: rgb(184, 53, 140), Category: CategoryConcrete},
	{Name: "minecraft:pink_concrete", Color: rgb(213, 101, 142), Category: CategoryConcrete},

	// Terracotta
	{Name: "minecraft:white_terracotta", Color: rgb(209, 177, 161), Category: CategoryTerracotta},
	{Name: "minecraft:light_gray_terracotta", Color: rgb(125, 125, 115), Category: CategoryTerracotta},
	{Name: "minecraft:gray_terracotta", Color: rgb(86, 70, 56), Category: CategoryTerracotta},
	{Name: "minecraft:black_terracotta", Color: rgb(57, 41, 35), Category: CategoryTerracotta},
	{Name: "minecraft:brown_terracotta", Color: rgb(134, 96, 67), Category: CategoryTerracotta},
	{Name: "minecraft:red_terracotta", Color: rgb(161, 75, 59), Category: CategoryTerracotta},
	{Name: "minecraft:orange_terracotta", Color: rgb(179, 110, 68), Category: CategoryTerracotta},
	{Name: "minecraft:yellow_terracotta", Color: rgb(197, 148, 78), Category: CategoryTerracotta},
	{Name: "minecraft:lime_terracotta", Color: rgb(119, 126, 71), Category: CategoryTerracotta},
	{Name: "minecraft:green_terracotta", Color: rgb(96, 96, 62), Category: CategoryTerracotta},
	{Name: "minecraft:cyan_terracotta", Color: rgb(96, 100, 93), Category: CategoryTerracotta},
	{Name: "minecraft:light_blue_terracotta", Color: rgb(113, 108, 129), Category: CategoryTerracotta},
	{Name: "minecraft:blue_terracotta", Color: rgb(85, 85, 98), Category: CategoryTerracotta},
	{Name: "minecraft:purple_terracotta", Color: rgb(126, 82, 88), Category: CategoryTerracotta},
	{Name: "minecraft:magenta_terracotta", Color: rgb(158, 86, 108), Category: CategoryTerracotta},
	{Name: "minecraft:pink_terracotta", Color: rgb(168, 108, 108), Category: CategoryTerracotta},
	{Name: "minecraft:terracotta", Color: rgb(152, 94, 67), Category: CategoryTerracotta},

	// Glazed terracotta
	{Name: "minecraft:white_glazed_terracotta", Color: rgb(224, 228, 230), Category: CategoryTerracotta},
	{Name: "minecraft:orange_glazed_terracotta", Color: rgb(191, 110, 56), Category: CategoryTerracotta},
	{Name: "minecraft:magenta_glazed_terracotta", Color: rgb(176, 77, 126), Category: CategoryTerracotta},
	{Name: "minecraft:light_blue_glazed_terracotta", Color: rgb(106, 137, 171), Category: CategoryTerracotta},
	{Name: "minecraft:yellow_glazed_terracotta", Color: rgb(217, 191, 84), Category: CategoryTerracotta},
	{Name: "minecraft:lime_glazed_terracotta", Color: rgb(121, 169, 73), Category: CategoryTerracotta},
	{Name: "minecraft:pink_glazed_terracotta", Color: rgb(207, 110, 150), Category: CategoryTerracotta},
	{Name: "minecraft:gray_glazed_terracotta", Color: rgb(119, 119, 119), Category: CategoryTerracotta},
	{Name: "minecraft:light_gray_glazed_terracotta", Color: rgb(179, 179, 179), Category: CategoryTerracotta},
	{Name: "minecraft:cyan_glazed_terracotta", Color: rgb(92, 169, 191), Category: CategoryTerracotta},
	{Name: "minecraft:purple_glazed_terracotta", Color: rgb(142, 79, 176), Category: CategoryTerracotta},
	{Name: "minecraft:blue_glazed_terracotta", Color: rgb(76, 94, 173), Category: CategoryTerracotta},
	{Name: "minecraft:brown_glazed_terracotta", Color: rgb(141, 95, 59), Category: CategoryTerracotta},
	{Name: "minecraft:green_glazed_terracotta", Color: rgb(99, 127, 72), Category: CategoryTerracotta},
	{Name: "minecraft:red_glazed_terracotta", Color: rgb(195, 61, 61), Category: CategoryTerracotta},
	{Name: "minecraft:black_glazed_terracotta", Color: rgb(41, 41, 41), Category: CategoryTerracotta},

	// Concrete powder
	{Name: "minecraft:white_concrete_powder", Color: rgb(240, 240, 240), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:light_gray_concrete_powder", Color: rgb(170, 170, 170), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:gray_concrete_powder", Color: rgb(115, 115, 115), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:black_concrete_powder", Color: rgb(35, 35, 35), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:brown_concrete_powder", Color: rgb(110, 72, 39), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:red_concrete_powder", Color: rgb(190, 57, 57), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:orange_concrete_powder", Color: rgb(215, 107, 44), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:yellow_concrete_powder", Color: rgb(250, 207, 61), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:lime_concrete_powder", Color: rgb(101, 172, 89), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:green_concrete_powder", Color: rgb(79, 98, 51), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:cyan_concrete_powder", Color: rgb(62, 129, 147), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:light_blue_concrete_powder", Color: rgb(114, 147, 175), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:blue_concrete_powder", Color: rgb(50, 60, 149), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:purple_concrete_powder", Color: rgb(129, 60, 134), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:magenta_concrete_powder", Color: rgb(192, 56, 147), Category: CategoryConcrete, Falling: true},
	{Name: "minecraft:pink_concrete_powder", Color: rgb(222, 107, 148), Category: CategoryConcrete, Falling: true},

	// Planks
	{Name: "minecraft:oak_planks", Color: rgb(191, 163, 130), Category: CategoryPlanks},
	{Name: "minecraft:spruce_planks", Color: rgb(139, 107, 68), Category: CategoryPlanks},
	{Name: "minecraft:birch_planks", Color: rgb(203, 189, 150), Category: CategoryPlanks},
	{Name: "minecraft:jungle_planks", Color: rgb(157, 127, 79), Category: CategoryPlanks},
	{Name: "minecraft:acacia_planks", Color: rgb(160, 112, 75), Category: CategoryPlanks},
	{Name: "minecraft:dark_oak_planks", Color: rgb(86, 62, 47), Category: CategoryPlanks},
	{Name: "minecraft:mangrove_planks", Color: rgb(117, 54, 48), Category: CategoryPlanks},
	{Name: "minecraft:cherry_planks", Color: rgb(226, 178, 172), Category: CategoryPlanks},
	{Name: "minecraft:bamboo_planks", Color: rgb(193, 173, 80), Category: CategoryPlanks},
	{Name: "minecraft:crimson_planks", Color: rgb(101, 48, 70), Category: CategoryPlanks},
	{Name: "minecraft:warped_planks", Color: rgb(43, 104, 99), Category: CategoryPlanks},

	// Glass
	{Name: "minecraft:white_stained_glass", Color: rgba(255, 255, 255, 150), Category: CategoryGlass},
	{Name: "minecraft:light_gray_stained_glass", Color: rgba(179, 179, 179, 150), Category: CategoryGlass},
	{Name: "minecraft:gray_stained_glass", Color: rgba(128, 128, 128, 150), Category: CategoryGlass},
	{Name: "minecraft:black_stained_glass", Color: rgba(34, 34, 34, 150), Category: CategoryGlass},
	{Name: "minecraft:brown_stained_glass", Color: rgba(119, 72, 49, 150), Category: CategoryGlass},
	{Name: "minecraft:red_stained_glass", Color: rgba(200, 55, 55, 150), Category: CategoryGlass},
	{Name: "minecraft:orange_stained_glass", Color: rgba(222, 126, 52, 150), Category: CategoryGlass},
	{Name: "minecraft:yellow_stained_glass", Color: rgba(251, 223, 68, 150), Category: CategoryGlass},
	{Name: "minecraft:lime_stained_glass", Color: rgba(113, 188, 120, 150), Category: CategoryGlass},
	{Name: "minecraft:green_stained_glass", Color: rgba(82, 113, 56, 150), Category: CategoryGlass},
	{Name: "minecraft:cyan_stained_glass", Color: rgba(72, 126, 150, 150), Category: CategoryGlass},
	{Name: "minecraft:light_blue_stained_glass", Color: rgba(126, 184, 202, 150), Category: CategoryGlass},
	{Name: "minecraft:blue_stained_glass", Color: rgba(58, 99, 171, 150), Category: CategoryGlass},
	{Name: "minecraft:purple_stained_glass", Color: rgba(145, 75, 165, 150), Category: CategoryGlass},
	{Name: "minecraft:magenta_stained_glass", Color: rgba(207, 88, 176, 150), Category: CategoryGlass},
	{Name: "minecraft:pink_stained_glass", Color: rgba(233, 140, 170, 150), Category: CategoryGlass},
	{Name: "minecraft:glass", Color: rgba(175, 213, 219, 150), Category: CategoryGlass},
	{Name: "minecraft:tinted_glass", Color: rgba(44, 38, 46, 150), Category: CategoryGlass},

	// Shulker boxes
	{Name: "minecraft:shulker_box", Color: rgb(139, 96, 139), Category: CategoryOther},
	{Name: "minecraft:white_shulker_box", Color: rgb(216, 221, 221), Category: CategoryOther},
	{Name: "minecraft:light_gray_shulker_box", Color: rgb(124, 124, 115), Category: CategoryOther},
	{Name: "minecraft:gray_shulker_box", Color: rgb(55, 58, 62), Category: CategoryOther},
	{Name: "minecraft:black_shulker_box", Color: rgb(25, 25, 29), Category: CategoryOther},
	{Name: "minecraft:brown_shulker_box", Color: rgb(106, 66, 35), Category: CategoryOther},
	{Name: "minecraft:red_shulker_box", Color: rgb(140, 31, 30), Category: CategoryOther},
	{Name: "minecraft:orange_shulker_box", Color: rgb(234, 106, 8), Category: CategoryOther},
	{Name: "minecraft:yellow_shulker_box", Color: rgb(248, 188, 29), Category: CategoryOther},
	{Name: "minecraft:lime_shulker_box", Color: rgb(99, 172, 23), Category: CategoryOther},
	{Name: "minecraft:green_shulker_box", Color: rgb(79, 100, 31), Category: CategoryOther},
	{Name: "minecraft:cyan_shulker_box", Color: rgb(20, 121, 135), Category: CategoryOther},
	{Name: "minecraft:light_blue_shulker_box", Color: rgb(49, 163, 212), Category: CategoryOther},
	{Name: "minecraft:blue_shulker_box", Color: rgb(43, 45, 140), Category: CategoryOther},
	{Name: "minecraft:purple_shulker_box", Color: rgb(103, 32, 156), Category: CategoryOther},
	{Name: "minecraft:magenta_shulker_box", Color: rgb(173, 54, 163), Category: CategoryOther},
	{Name: "minecraft:pink_shulker_box", Color: rgb(230, 121, 157), Category: CategoryOther},

	// Gravity-affected naturals
	{Name: "minecraft:sand", Color: rgb(219, 207, 163), Category: CategoryOther, Falling: true},
	{Name: "minecraft:red_sand", Color: rgb(190, 102, 33), Category: CategoryOther, Falling: true},
	{Name: "minecraft:gravel", Color: rgb(131, 127, 126), Category: CategoryOther, Falling: true},

	// Stone-like and mineral blocks
	{Name: "minecraft:stone", Color: rgb(128, 128, 128), Category: CategoryOther},
	{Name: "minecraft:cobblestone", Color: rgb(115, 115, 115), Category: CategoryOther},
	{Name: "minecraft:andesite", Color: rgb(158, 158, 157), Category: CategoryOther},
	{Name: "minecraft:diorite", Color: rgb(176, 176, 176), Category: CategoryOther},
	{Name: "minecraft:granite", Color: rgb(175, 130, 126), Category: CategoryOther},
	{Name: "minecraft:polished_andesite", Color: rgb(171, 171, 171), Category: CategoryOther},
	{Name: "minecraft:polished_diorite", Color: rgb(198, 198, 198), Category: CategoryOther},
	{Name: "minecraft:polished_granite", Color: rgb(180, 136, 132), Category: CategoryOther},
	{Name: "minecraft:sandstone", Color: rgb(219, 207, 174), Category: CategoryOther},
	{Name: "minecraft:red_sandstone", Color: rgb(207, 114, 82), Category: CategoryOther},
	{Name: "minecraft:quartz_block", Color: rgb(229, 229, 229), Category: CategoryOther},
	{Name: "minecraft:chiseled_quartz_block", Color: rgb(229, 229, 229), Category: CategoryOther},
	{Name: "minecraft:quartz_pillar", Color: rgb(229, 229, 229), Category: CategoryOther},
	{Name: "minecraft:quartz_bricks", Color: rgb(229, 229, 229), Category: CategoryOther},
	{Name: "minecraft:smooth_quartz", Color: rgb(229, 229, 229), Category: CategoryOther},
	{Name: "minecraft:prismarine", Color: rgb(142, 171, 172), Category: CategoryOther},
	{Name: "minecraft:prismarine_bricks", Color: rgb(130, 154, 157), Category: CategoryOther},
	{Name: "minecraft:dark_prismarine", Color: rgb(83, 86, 83), Category: CategoryOther},
	{Name: "minecraft:deepslate", Color: rgb(80, 80, 82), Category: CategoryOther},
	{Name: "minecraft:cobbled_deepslate", Color: rgb(77, 77, 80), Category: CategoryOther},
	{Name: "minecraft:polished_deepslate", Color: rgb(72, 72, 73), Category: CategoryOther},
	{Name: "minecraft:deepslate_bricks", Color: rgb(70, 70, 71), Category: CategoryOther},
	{Name: "minecraft:deepslate_tiles", Color: rgb(54, 54, 55), Category: CategoryOther},
	{Name: "minecraft:blackstone", Color: rgb(42, 36, 41), Category: CategoryOther},
	{Name: "minecraft:polished_blackstone", Color: rgb(53, 48, 56), Category: CategoryOther},
	{Name: "minecraft:polished_blackstone_bricks", Color: rgb(48, 42, 49), Category: CategoryOther},
	{Name: "minecraft:tuff", Color: rgb(108, 109, 102), Category: CategoryOther},
	{Name: "minecraft:calcite", Color: rgb(223, 224, 220), Category: CategoryOther},
	{Name: "minecraft:dripstone_block", Color: rgb(134, 107, 92), Category: CategoryOther},
	{Name: "minecraft:bricks", Color: rgb(150, 97, 83), Category: CategoryOther},
	{Name: "minecraft:mud_bricks", Color: rgb(137, 103, 79), Category: CategoryOther},
	{Name: "minecraft:packed_mud", Color: rgb(142, 106, 79), Category: CategoryOther},
	{Name: "minecraft:mud", Color: rgb(60, 57, 60), Category: CategoryOther},
	{Name: "minecraft:clay", Color: rgb(160, 166, 179), Category: CategoryOther},
	{Name: "minecraft:nether_bricks", Color: rgb(44, 21, 26), Category: CategoryOther},
	{Name: "minecraft:red_nether_bricks", Color: rgb(69, 7, 9), Category: CategoryOther},
	{Name: "minecraft:netherrack", Color: rgb(97, 38, 38), Category: CategoryOther},
	{Name: "minecraft:end_stone", Color: rgb(219, 222, 158), Category: CategoryOther},
	{Name: "minecraft:end_stone_bricks", Color: rgb(218, 224, 162), Category: CategoryOther},
	{Name: "minecraft:purpur_block", Color: rgb(169, 125, 169), Category: CategoryOther},
	{Name: "minecraft:purpur_pillar", Color: rgb(171, 129, 171), Category: CategoryOther},
	{Name: "minecraft:stone_bricks", Color: rgb(122, 121, 122), Category: CategoryOther},
	{Name: "minecraft:mossy_stone_bricks", Color: rgb(115, 121, 105), Category: CategoryOther},
	{Name: "minecraft:cracked_stone_bricks", Color: rgb(118, 117, 118), Category: CategoryOther},
	{Name: "minecraft:smooth_stone", Color: rgb(158, 158, 158), Category: CategoryOther},
	{Name: "minecraft:mossy_cobblestone", Color: rgb(110, 118, 94), Category: CategoryOther},
	{Name: "minecraft:smooth_sandstone", Color: rgb(223, 214, 170), Category: CategoryOther},
	{Name: "minecraft:cut_sandstone", Color: rgb(217, 206, 159), Category: CategoryOther},
	{Name: "minecraft:smooth_red_sandstone", Color: rgb(181, 97, 31), Category: CategoryOther},
	{Name: "minecraft:cut_red_sandstone", Color: rgb(189, 101, 31), Category: CategoryOther},
	{Name: "minecraft:basalt", Color: rgb(80, 81, 86), Category: CategoryOther},
	{Name: "minecraft:polished_basalt", Color: rgb(88, 88, 91), Category: CategoryOther},
	{Name: "minecraft:smooth_basalt", Color: rgb(72, 72, 78), Category: CategoryOther},
	{Name: "minecraft:obsidian", Color: rgb(15, 10, 24), Category: CategoryOther},
	{Name: "minecraft:crying_obsidian", Color: rgb(32, 10, 60), Category: CategoryOther},
	{Name: "minecraft:snow_block", Color: rgb(249, 254, 254), Category: CategoryOther},
	{Name: "minecraft:bone_block", Color: rgb(229, 225, 207), Category: CategoryOther},
	{Name: "minecraft:hay_block", Color: rgb(166, 139, 12), Category: CategoryOther},
	{Name: "minecraft:melon", Color: rgb(111, 145, 30), Category: CategoryOther},
	{Name: "minecraft:pumpkin", Color: rgb(198, 118, 24), Category: CategoryOther},
	{Name: "minecraft:sea_lantern", Color: rgb(172, 199, 190), Category: CategoryOther},
	{Name: "minecraft:glowstone", Color: rgb(171, 131, 84), Category: CategoryOther},
	{Name: "minecraft:shroomlight", Color: rgb(240, 146, 70), Category: CategoryOther},
	{Name: "minecraft:nether_wart_block", Color: rgb(114, 2, 2), Category: CategoryOther},
	{Name: "minecraft:warped_wart_block", Color: rgb(22, 119, 121), Category: CategoryOther},
	{Name: "minecraft:honeycomb_block", Color: rgb(229, 148, 29), Category: CategoryOther},
	{Name: "minecraft:dried_kelp_block", Color: rgb(50, 58, 38), Category: CategoryOther},
	{Name: "minecraft:moss_block", Color: rgb(89, 109, 45), Category: CategoryOther},
	{Name: "minecraft:iron_block", Color: rgb(220, 220, 220), Category: CategoryOther},
	{Name: "minecraft:gold_block", Color: rgb(246, 208, 61), Category: CategoryOther},
	{Name: "minecraft:diamond_block", Color: rgb(98, 237, 228), Category: CategoryOther},
	{Name: "minecraft:emerald_block", Color: rgb(42, 203, 87), Category: CategoryOther},
	{Name: "minecraft:lapis_block", Color: rgb(30, 67, 140), Category: CategoryOther},
	{Name: "minecraft:redstone_block", Color: rgb(175, 24, 5), Category: CategoryOther},
	{Name: "minecraft:coal_block", Color: rgb(16, 15, 15), Category: CategoryOther},
}
