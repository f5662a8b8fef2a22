package step

import (
	"regexp"
	"strings"
)

// ValidationError is a user-correctable problem with one step's value. It is
// data, not an error: it is surfaced inline at the field and never thrown.
type ValidationError struct {
	StepID  string `json:"step_id"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate applies the per-kind rule to a step's accumulated value and
// returns nil when the step may be advanced past. A missing value arrives as
// nil.
func Validate(d Definition, value any) *ValidationError {
	switch d.Kind {
	case KindWelcome, KindSummary:
		return nil

	case KindRangeSlider:
		// A slider always carries a value once its default is seeded.
		return nil

	case KindShortText, KindLongText, KindPhone:
		if !d.Required {
			return nil
		}
		if strings.TrimSpace(asString(value)) == "" {
			return fail(d, requiredMessage(d))
		}
		return nil

	case KindEmail:
		s := strings.TrimSpace(asString(value))
		if s == "" {
			if d.Required {
				return fail(d, "Please enter your email address")
			}
			return nil
		}
		if !emailPattern.MatchString(s) {
			return fail(d, "Please enter a valid email address")
		}
		return nil

	case KindSingleSelect, KindEmojiSelect:
		if !d.Required {
			return nil
		}
		if asString(value) == "" {
			return fail(d, "Please choose an option")
		}
		return nil

	case KindMultiSelect:
		if !d.Required {
			return nil
		}
		if len(asStringSlice(value)) == 0 {
			return fail(d, "Please select at least one option")
		}
		return nil
	}
	return nil
}

func fail(d Definition, msg string) *ValidationError {
	return &ValidationError{StepID: d.ID, Message: msg}
}

func requiredMessage(d Definition) string {
	if d.Kind == KindPhone {
		return "Please enter your phone number"
	}
	return "This field is required"
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringSlice tolerates both []string and the []any shape values take
// after a JSON round-trip through the session store.
func asStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
