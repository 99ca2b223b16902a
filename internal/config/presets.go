package config

import "sort"

func target(v int) *int { return &v }

var Presets = map[string]map[string]*Config{
	"sorting": {
		"classic": {
			Category: "sorting", Algorithm: "bubble", Size: 5, Speed: 500,
			Dataset: "5,3,8,1,9",
		},
		"reversed": {
			Category: "sorting", Algorithm: "insertion", Size: 10, Speed: 800,
			Dataset: "100,90,80,70,60,50,40,30,20,10",
		},
		"nearly_sorted": {
			Category: "sorting", Algorithm: "insertion", Size: 10, Speed: 700,
			Dataset: "1,2,3,5,4,6,7,9,8,10",
		},
		"large": {
			Category: "sorting", Algorithm: "selection", Size: 50, Speed: 1000, Seed: 42,
		},
		"demo": {
			Category: "sorting", Algorithm: "bubble", Size: 15, Speed: 500, Seed: 1,
		},
	},
	"searching": {
		"found": {
			Category: "searching", Algorithm: "linear", Size: 5, Speed: 500,
			Dataset: "4,2,9,1,7", Target: target(9),
		},
		"binary_found": {
			Category: "searching", Algorithm: "binary", Size: 5, Speed: 500,
			Dataset: "4,2,9,1,7", Target: target(9),
		},
		"missing": {
			Category: "searching", Algorithm: "binary", Size: 3, Speed: 500,
			Dataset: "10,20,30", Target: target(99),
		},
		"large": {
			Category: "searching", Algorithm: "binary", Size: 50, Speed: 900, Seed: 42,
			Target: target(50),
		},
	},
}

// GetPreset returns a copy of a preset filled in with defaults for the
// fields it leaves empty.
func GetPreset(category, preset string) *Config {
	categoryPresets, ok := Presets[category]
	if !ok {
		return nil
	}
	p, ok := categoryPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Category = p.Category
	cfg.Algorithm = p.Algorithm
	cfg.Size = p.Size
	cfg.Speed = p.Speed
	cfg.Seed = p.Seed
	cfg.Dataset = p.Dataset
	if p.Target != nil {
		cfg.Target = target(*p.Target)
	}
	return cfg
}

func ListPresets(category string) []string {
	categoryPresets, ok := Presets[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(categoryPresets))
	for name := range categoryPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
