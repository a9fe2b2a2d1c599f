package models

import (
	"time"
)

// SuggestionState tracks a proposed edit through the accept/reject protocol.
// proposed is the only non-terminal state.
type SuggestionState string

const (
	// SuggestionProposed is set when the agent returns a suggestion.
	SuggestionProposed SuggestionState = "proposed"
	// SuggestionApplied is set after the section replacement is persisted.
	SuggestionApplied SuggestionState = "applied"
	// SuggestionDiscarded is set when the user rejects the proposal.
	SuggestionDiscarded SuggestionState = "discarded"
	// SuggestionSuperseded is set when the user edits the same section
	// manually before deciding.
	SuggestionSuperseded SuggestionState = "superseded"
)

// IsTerminal reports whether no further transitions are allowed.
func (s SuggestionState) IsTerminal() bool {
	return s == SuggestionApplied || s == SuggestionDiscarded || s == SuggestionSuperseded
}

// Suggestion is an agent-proposed replacement for one section, or one field
// of a section when Field is set. NewValue fully replaces the old value at
// that granularity; apply is never a deep merge.
type Suggestion struct {
	Section  SectionKey `json:"section" validate:"required"`
	Field    string     `json:"field,omitempty"`
	NewValue any        `json:"new_value" validate:"required"`
	OldValue any        `json:"old_value,omitempty"`
}

// ChatMessage is one entry of a page's editing conversation. Assistant
// messages may carry a Suggestion; its state records the user's decision.
type ChatMessage struct {
	ID      string `json:"id" badgerhold:"key"`
	PageID  string `json:"page_id" badgerholdIndex:"PageID"`
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`

	Suggestion *Suggestion     `json:"suggestion,omitempty"`
	State      SuggestionState `json:"state,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPendingSuggestion reports whether the message carries an undecided
// suggestion.
func (m *ChatMessage) HasPendingSuggestion() bool {
	return m.Suggestion != nil && m.State == SuggestionProposed
}
