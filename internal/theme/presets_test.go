package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPresets_NoPathReturnsBuiltins(t *testing.T) {
	presets, err := LoadPresets("")
	require.NoError(t, err)
	require.Len(t, presets, len(builtinPresets))

	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Ember")
	assert.Contains(t, names, "Ocean")
}

func TestLoadPresets_MergesFileAndSkipsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := `presets:
  - name: Sunset
    colors: ["#db2777", "#f97316"]
  - name: Broken
    colors: ["not-a-color"]
  - name: ""
    colors: ["#112233"]
  - name: TooMany
    colors: ["#111111", "#222222", "#333333"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, presets, len(builtinPresets)+1)
	assert.Equal(t, "Sunset", presets[len(presets)-1].Name)
}

func TestLoadPresets_MissingFileErrors(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
