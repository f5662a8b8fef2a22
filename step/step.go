// Package step holds the declarative step definition model for the
// multi-step application form: step kinds, per-kind validation rules and the
// builder that materializes a trade-specific form configuration.
package step

// Kind tags a step with the widget and validation behaviour it carries.
type Kind string

const (
	KindWelcome      Kind = "welcome"
	KindShortText    Kind = "short-text"
	KindEmail        Kind = "email"
	KindPhone        Kind = "phone"
	KindSingleSelect Kind = "single-select-cards"
	KindMultiSelect  Kind = "multi-select-cards"
	KindRangeSlider  Kind = "range-slider"
	KindEmojiSelect  Kind = "emoji-select"
	KindLongText     Kind = "long-text"
	KindSummary      Kind = "summary"
)

// Option is one choice of a select-style step.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
}

// Range bounds a slider step.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Definition describes one screen of the form. Display strings are opaque to
// the engine; only ID, Kind, Required, Options and Range drive behaviour.
type Definition struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"kind"`
	Prompt      string   `json:"prompt,omitempty"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Hint        string   `json:"hint,omitempty"`
	Required    bool     `json:"required"`
	Options     []Option `json:"options,omitempty"`
	Range       *Range   `json:"range,omitempty"`

	// AutoAdvance marks steps where the UI may advance on its own after a
	// successful selection. The engine never acts on it.
	AutoAdvance bool `json:"autoAdvance,omitempty"`
}

// HasOption reports whether v is one of the step's option values.
func (d Definition) HasOption(v string) bool {
	for _, opt := range d.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}
