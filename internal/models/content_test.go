package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestTestimonial_Stars(t *testing.T) {
	tests := []struct {
		name   string
		rating *int
		want   int
	}{
		{name: "missing rating defaults to five", rating: nil, want: 5},
		{name: "in range", rating: intPtr(3), want: 3},
		{name: "below range clamps to one", rating: intPtr(0), want: 1},
		{name: "negative clamps to one", rating: intPtr(-2), want: 1},
		{name: "above range clamps to five", rating: intPtr(9), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := Testimonial{Name: "Ada", Rating: tt.rating}
			assert.Equal(t, tt.want, tm.Stars())
		})
	}
}

func TestCourse_DisplayPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{price: 299, want: "299"},
		{price: 299.0, want: "299"},
		{price: 149.5, want: "149.50"},
		{price: 99.99, want: "99.99"},
		{price: 0, want: "0"},
	}

	for _, tt := range tests {
		c := &Course{Price: tt.price}
		assert.Equal(t, tt.want, c.DisplayPrice())
	}
}

func TestSuggestionState_IsTerminal(t *testing.T) {
	assert.False(t, SuggestionProposed.IsTerminal())
	assert.True(t, SuggestionApplied.IsTerminal())
	assert.True(t, SuggestionDiscarded.IsTerminal())
	assert.True(t, SuggestionSuperseded.IsTerminal())
}

func TestChatMessage_HasPendingSuggestion(t *testing.T) {
	msg := &ChatMessage{Role: "assistant"}
	assert.False(t, msg.HasPendingSuggestion())

	msg.Suggestion = &Suggestion{Section: SectionHero, NewValue: map[string]any{}}
	msg.State = SuggestionProposed
	assert.True(t, msg.HasPendingSuggestion())

	msg.State = SuggestionDiscarded
	assert.False(t, msg.HasPendingSuggestion())
}
