package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesignConfig_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   DesignConfig
		want DesignConfig
	}{
		{
			name: "zero value gets all defaults",
			in:   DesignConfig{},
			want: DesignConfig{
				Colors:   []string{"#ea580c", "#f59e0b"},
				Theme:    ThemeLight,
				CTAStyle: CTAGradient,
				Fonts:    FontConfig{Heading: DefaultFont, Body: DefaultFont},
			},
		},
		{
			name: "explicit values survive",
			in: DesignConfig{
				Colors:   []string{"#112233"},
				Theme:    ThemeDark,
				CTAStyle: CTASolid,
				Fonts:    FontConfig{Heading: "Lora", Body: "Inter"},
			},
			want: DesignConfig{
				Colors:   []string{"#112233"},
				Theme:    ThemeDark,
				CTAStyle: CTASolid,
				Fonts:    FontConfig{Heading: "Lora", Body: "Inter"},
			},
		},
		{
			name: "excess colors truncated to two",
			in:   DesignConfig{Colors: []string{"#111111", "#222222", "#333333"}},
			want: DesignConfig{
				Colors:   []string{"#111111", "#222222"},
				Theme:    ThemeLight,
				CTAStyle: CTAGradient,
				Fonts:    FontConfig{Heading: DefaultFont, Body: DefaultFont},
			},
		},
		{
			name: "unknown theme mode falls back to light",
			in:   DesignConfig{Colors: []string{"#112233"}, Theme: ThemeMode("sepia")},
			want: DesignConfig{
				Colors:   []string{"#112233"},
				Theme:    ThemeLight,
				CTAStyle: CTAGradient,
				Fonts:    FontConfig{Heading: DefaultFont, Body: DefaultFont},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalized())
		})
	}
}

func TestDesignConfig_SectionSequence(t *testing.T) {
	var d DesignConfig
	assert.Equal(t, SectionOrder, d.SectionSequence())

	d.EnabledSections = []SectionKey{SectionFAQ, SectionHero, SectionKey("payment")}
	assert.Equal(t, []SectionKey{SectionFAQ, SectionHero}, d.SectionSequence())
}

func TestIsKnownSection(t *testing.T) {
	for _, key := range SectionOrder {
		assert.True(t, IsKnownSection(key), string(key))
	}
	assert.False(t, IsKnownSection(SectionKey("payment")))
	assert.False(t, IsKnownSection(SectionKey("")))
}
