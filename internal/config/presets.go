package config

import "sort"

// Preset names a Wolfram code worth visiting.
type Preset struct {
	Rule     uint8
	Summary  string
	Behavior string
}

var Presets = map[string]Preset{
	"rule30": {
		Rule: 30, Summary: "chaotic",
		Behavior: "pseudo-random triangles; Wolfram's class 3 poster child",
	},
	"rule54": {
		Rule: 54, Summary: "complex",
		Behavior: "interacting gliders on a periodic background",
	},
	"rule90": {
		Rule: 90, Summary: "fractal",
		Behavior: "Sierpinski triangle from a single live cell",
	},
	"rule110": {
		Rule: 110, Summary: "universal",
		Behavior: "supports universal computation via glider collisions",
	},
	"rule150": {
		Rule: 150, Summary: "fractal",
		Behavior: "three-neighbor parity; overlapping Sierpinski lattices",
	},
	"rule184": {
		Rule: 184, Summary: "traffic",
		Behavior: "the classic single-lane traffic-flow model",
	},
	"rule206": {
		Rule: 206, Summary: "growth",
		Behavior: "a seeded block widens by one cell per generation",
	},
	"rule250": {
		Rule: 250, Summary: "expanding",
		Behavior: "solid expanding checkerboard from any live cell",
	},
}

// PresetNames answers the preset keys in sorted order for stable listings.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
