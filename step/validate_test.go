package step

import "testing"

func TestValidateByKind(t *testing.T) {
	cases := []struct {
		name  string
		def   Definition
		value any
		ok    bool
	}{
		{"welcome always valid", Definition{ID: "w", Kind: KindWelcome}, nil, true},
		{"summary always valid", Definition{ID: "s", Kind: KindSummary}, nil, true},
		{"slider always valid", Definition{ID: "amt", Kind: KindRangeSlider}, 25000.0, true},
		{"slider valid without value", Definition{ID: "amt", Kind: KindRangeSlider}, nil, true},

		{"required text empty", Definition{ID: "name", Kind: KindShortText, Required: true}, "", false},
		{"required text whitespace", Definition{ID: "name", Kind: KindShortText, Required: true}, "   ", false},
		{"required text present", Definition{ID: "name", Kind: KindShortText, Required: true}, "Dave", true},
		{"optional text empty", Definition{ID: "info", Kind: KindLongText}, "", true},

		{"required phone empty", Definition{ID: "phone", Kind: KindPhone, Required: true}, nil, false},
		{"phone any non-empty accepted", Definition{ID: "phone", Kind: KindPhone, Required: true}, "07123456789", true},

		{"email missing but optional", Definition{ID: "email", Kind: KindEmail}, "", true},
		{"email missing and required", Definition{ID: "email", Kind: KindEmail, Required: true}, "", false},
		{"email malformed", Definition{ID: "email", Kind: KindEmail, Required: true}, "dave@", false},
		{"email no tld", Definition{ID: "email", Kind: KindEmail, Required: true}, "dave@x", false},
		{"email valid", Definition{ID: "email", Kind: KindEmail, Required: true}, "dave@x.com", true},
		{"optional email still checked when set", Definition{ID: "email", Kind: KindEmail}, "not-an-email", false},

		{"select unset", Definition{ID: "purpose", Kind: KindSingleSelect, Required: true}, nil, false},
		{"select set", Definition{ID: "purpose", Kind: KindSingleSelect, Required: true}, "equipment", true},
		{"emoji select unset", Definition{ID: "mood", Kind: KindEmojiSelect, Required: true}, nil, false},
		{"emoji select set", Definition{ID: "mood", Kind: KindEmojiSelect, Required: true}, "great", true},

		{"multi empty required", Definition{ID: "certs", Kind: KindMultiSelect, Required: true}, []string{}, false},
		{"multi set", Definition{ID: "certs", Kind: KindMultiSelect, Required: true}, []string{"niceic"}, true},
		{"multi set via json shape", Definition{ID: "certs", Kind: KindMultiSelect, Required: true}, []any{"niceic"}, true},
		{"multi empty optional", Definition{ID: "certs", Kind: KindMultiSelect}, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verr := Validate(tc.def, tc.value)
			if tc.ok && verr != nil {
				t.Errorf("expected valid, got %q", verr.Message)
			}
			if !tc.ok {
				if verr == nil {
					t.Fatal("expected a validation error")
				}
				if verr.StepID != tc.def.ID {
					t.Errorf("error step id = %s, want %s", verr.StepID, tc.def.ID)
				}
				if verr.Message == "" {
					t.Error("validation error carries no message")
				}
			}
		})
	}
}
