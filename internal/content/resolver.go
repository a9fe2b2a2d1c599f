// Package content disambiguates the historical storage shapes of landing
// page documents and exposes typed access to their sections.
//
// Two incompatible shapes coexist in production data: sections directly
// under the document root ("flattened"), and sections one level deeper
// under a "content" key ("nested") left behind by an old write bug. A
// third, older shape stores plain-string headlines and is handled by the
// legacy rendering rules. Classification happens in exactly one place,
// here, so the renderer never probes shapes itself.
package content

import (
	"encoding/json"

	"github.com/lumaacademy/atelier/internal/models"
)

// Format tags the storage shape of a persisted document.
type Format string

const (
	// FormatFlattened is the current shape: sections at the document root,
	// structured (locale-keyed) headline values.
	FormatFlattened Format = "flattened"
	// FormatNested is the double-nested shape: sections under doc.content.
	FormatNested Format = "nested"
	// FormatLegacy is the oldest shape: plain-string headlines, rendered
	// by the legacy rules (theme comes solely from the design config).
	FormatLegacy Format = "legacy"
	// FormatEmpty means no hero was found in either location. The document
	// is still valid; rendering omits the hero and falls back to course data.
	FormatEmpty Format = "empty"
)

// Document is the resolver output: one normalized view over any of the
// storage shapes. Content is the map sections are read from; Theme is the
// embedded theme override when the document carries one.
type Document struct {
	Format    Format
	Flattened bool
	Content   map[string]any
	Theme     map[string]any
}

// Classify determines the storage shape of a raw persisted document.
// The flattened location takes priority when both exist. A document is
// "new schema" only when the hero headline is a structured value; a plain
// string headline marks the legacy schema.
func Classify(raw map[string]any) Format {
	if raw == nil {
		return FormatEmpty
	}

	heroFlat, hasFlat := sectionMap(raw[string(models.SectionHero)])
	heroNested, hasNested := sectionMap(nestedContent(raw)[string(models.SectionHero)])

	var hero map[string]any
	switch {
	case hasFlat:
		hero = heroFlat
	case hasNested:
		hero = heroNested
	default:
		return FormatEmpty
	}

	if _, structured := hero["headline"].(map[string]any); !structured {
		return FormatLegacy
	}

	if hasFlat {
		return FormatFlattened
	}
	return FormatNested
}

// Resolve normalizes a raw persisted document for rendering. It never
// fails: shape ambiguity only selects a branch.
func Resolve(raw map[string]any) *Document {
	format := Classify(raw)

	doc := &Document{Format: format}

	switch format {
	case FormatFlattened, FormatLegacy:
		doc.Flattened = true
		doc.Content = raw
		doc.Theme, _ = sectionMap(raw["theme"])
	case FormatNested:
		doc.Content = nestedContent(raw)
		doc.Theme, _ = sectionMap(doc.Content["theme"])
	case FormatEmpty:
		// No hero anywhere; other sections may still exist in either
		// location. Prefer the nested content map when present.
		if nested := nestedContent(raw); nested != nil {
			doc.Content = nested
			doc.Theme, _ = sectionMap(nested["theme"])
		} else {
			doc.Flattened = true
			doc.Content = raw
			doc.Theme, _ = sectionMap(raw["theme"])
		}
	}

	if doc.Content == nil {
		doc.Content = map[string]any{}
	}

	// Legacy documents have no embedded theme; their theme comes from the
	// separate design config record.
	if format == FormatLegacy {
		doc.Theme = nil
	}

	return doc
}

// Has reports whether the document carries data for a known section.
func (d *Document) Has(key models.SectionKey) bool {
	if !models.IsKnownSection(key) {
		return false
	}
	v, ok := d.Content[string(key)]
	return ok && v != nil
}

// Section returns the raw value stored for a section key.
func (d *Document) Section(key models.SectionKey) (any, bool) {
	if !d.Has(key) {
		return nil, false
	}
	return d.Content[string(key)], true
}

// ThemeOverride decodes the embedded theme block into a partial design
// config, or nil when the document has none.
func (d *Document) ThemeOverride() *models.DesignConfig {
	if len(d.Theme) == 0 {
		return nil
	}
	var cfg models.DesignConfig
	if err := reencode(d.Theme, &cfg); err != nil {
		return nil
	}
	return &cfg
}

// nestedContent returns doc.content when it is a map, else nil.
func nestedContent(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	m, _ := sectionMap(raw["content"])
	return m
}

func sectionMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// reencode converts a loosely typed value into a typed struct via a JSON
// round trip, the same way stored metadata maps are decoded elsewhere.
func reencode(raw any, out any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
