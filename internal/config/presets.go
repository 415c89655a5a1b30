package config

import "sort"

// Presets are named pacing blocks. "smooth" matches the defaults.
var Presets = map[string]*PacingConfig{
	"smooth": {Alpha: 0.1, HoverScale: 1.05, CameraNear: 0.5, CameraFar: 0.6},
	"snappy": {Alpha: 0.25, HoverScale: 1.05, CameraNear: 0.5, CameraFar: 0.6},
	"gentle": {Alpha: 0.05, HoverScale: 1.05, CameraNear: 0.5, CameraFar: 0.6},
	"wide":   {Alpha: 0.1, HoverScale: 1.1, CameraNear: 0.55, CameraFar: 0.75},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *PacingConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
