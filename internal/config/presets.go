package config

import (
	"sort"

	"github.com/san-kum/algoviz/internal/algorithms"
)

var Presets = map[string]map[string]*Config{
	algorithms.IDBubbleSort: {
		"reversed": {
			Algorithm: algorithms.IDBubbleSort, Speed: "fast",
			Values: []int{9, 8, 7, 6, 5, 4, 3, 2, 1},
		},
		"nearly-sorted": {
			Algorithm: algorithms.IDBubbleSort, Speed: "normal",
			Values: []int{1, 2, 3, 5, 4, 6, 7},
		},
		"sorted": {
			Algorithm: algorithms.IDBubbleSort, Speed: "fast",
			Values: []int{1, 2, 3, 4, 5, 6},
		},
		"duplicates": {
			Algorithm: algorithms.IDBubbleSort, Speed: "normal",
			Values: []int{4, 2, 4, 1, 2, 4},
		},
	},
	algorithms.IDMergeSort: {
		"reversed": {
			Algorithm: algorithms.IDMergeSort, Speed: "fast",
			Values: []int{8, 7, 6, 5, 4, 3, 2, 1},
		},
		"odd": {
			Algorithm: algorithms.IDMergeSort, Speed: "normal",
			Values: []int{38, 27, 43, 3, 9, 82, 10},
		},
		"pairs": {
			Algorithm: algorithms.IDMergeSort, Speed: "slow",
			Values: []int{2, 1, 4, 3},
		},
	},
	algorithms.IDBinarySearch: {
		"first": {
			Algorithm: algorithms.IDBinarySearch, Speed: "normal",
			Values: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, Target: intp(1),
		},
		"last": {
			Algorithm: algorithms.IDBinarySearch, Speed: "normal",
			Values: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, Target: intp(19),
		},
		"missing": {
			Algorithm: algorithms.IDBinarySearch, Speed: "slow",
			Values: []int{2, 4, 6, 8, 10, 12, 14, 16}, Target: intp(11),
		},
		"max": {
			Algorithm: algorithms.IDBinarySearch, Speed: "fast",
			Values: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, Target: intp(14),
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(algorithm, preset string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	out := cfg.Clone()
	if out.Theme == "" {
		out.Theme = DefaultTheme
	}
	if out.LogLevel == "" {
		out.LogLevel = DefaultLogLevel
	}
	return out
}

// ListPresets returns the preset names for algorithm in sorted order.
func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func intp(v int) *int { return &v }
