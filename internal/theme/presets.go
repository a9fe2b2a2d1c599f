package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumaacademy/atelier/internal/models"
)

// Preset is a named, curated brand pair the editor can offer instead of a
// free color pick. Presets only pre-fill a design config; they are not a
// separate storage shape.
type Preset struct {
	Name   string           `yaml:"name" json:"name"`
	Colors []string         `yaml:"colors" json:"colors"`
	Theme  models.ThemeMode `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// builtinPresets are always available, file or no file.
var builtinPresets = []Preset{
	{Name: "Ember", Colors: []string{"#ea580c", "#f59e0b"}, Theme: models.ThemeLight},
	{Name: "Ocean", Colors: []string{"#0369a1", "#06b6d4"}, Theme: models.ThemeLight},
	{Name: "Forest", Colors: []string{"#15803d", "#84cc16"}, Theme: models.ThemeLight},
	{Name: "Royal", Colors: []string{"#6d28d9", "#c026d3"}, Theme: models.ThemeDark},
	{Name: "Slate", Colors: []string{"#334155", "#0ea5e9"}, Theme: models.ThemeDark},
}

// LoadPresets returns the built-in presets merged with any presets from
// the given YAML file. File presets with invalid colors are skipped; a
// missing path just yields the built-ins.
func LoadPresets(path string) ([]Preset, error) {
	presets := append([]Preset{}, builtinPresets...)

	if path == "" {
		return presets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file %s: %w", path, err)
	}

	var file struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}

	for _, p := range file.Presets {
		if p.Name == "" || !validColors(p.Colors) {
			continue
		}
		presets = append(presets, p)
	}

	return presets, nil
}

func validColors(colors []string) bool {
	if len(colors) == 0 || len(colors) > 2 {
		return false
	}
	for _, c := range colors {
		if _, err := parseHex(c); err != nil {
			return false
		}
	}
	return true
}
