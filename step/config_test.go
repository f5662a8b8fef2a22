package step

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildFormConfigDeterministic(t *testing.T) {
	ov := &Overrides{
		Icon: "⚡",
		Certifications: []Option{
			{Value: "niceic", Label: "NICEIC approved"},
			{Value: "napit", Label: "NAPIT registered"},
		},
	}
	first := BuildFormConfig("electrician", "Electrician", ov)
	second := BuildFormConfig("electrician", "Electrician", ov)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated builds differ (-first +second):\n%s", diff)
	}
}

func TestBuildFormConfigShape(t *testing.T) {
	cfg := BuildFormConfig("electrician", "Electrician", nil)

	if err := cfg.Validate(); err != nil {
		t.Fatalf("built config failed validation: %v", err)
	}
	if cfg.Steps[0].Kind != KindWelcome {
		t.Errorf("first step kind = %s, want %s", cfg.Steps[0].Kind, KindWelcome)
	}
	if last := cfg.Steps[cfg.Len()-1]; last.Kind != KindSummary {
		t.Errorf("last step kind = %s, want %s", last.Kind, KindSummary)
	}

	wantOrder := []string{
		StepWelcome, StepName, StepPhone, StepEmail, StepLoanAmount,
		StepPurpose, StepUrgency, StepYearsTrading, StepCertifications,
		StepAdditionalInfo, StepSummary,
	}
	for i, id := range wantOrder {
		if cfg.Steps[i].ID != id {
			t.Errorf("step %d id = %s, want %s", i, cfg.Steps[i].ID, id)
		}
	}
}

func TestBuildFormConfigInterpolatesTradeName(t *testing.T) {
	cfg := BuildFormConfig("plumber", "Plumber", nil)

	welcome := cfg.Step(0)
	if !strings.Contains(welcome.Prompt, "Plumber") {
		t.Errorf("welcome prompt %q does not mention the trade", welcome.Prompt)
	}
	years := cfg.Step(cfg.StepIndex(StepYearsTrading))
	if !strings.Contains(years.Prompt, "Plumber") {
		t.Errorf("years-trading prompt %q does not mention the trade", years.Prompt)
	}
	if strings.Contains(welcome.Prompt, "{trade}") {
		t.Errorf("placeholder survived interpolation: %q", welcome.Prompt)
	}
}

func TestBuildFormConfigCertificationOverride(t *testing.T) {
	ov := &Overrides{Certifications: []Option{{Value: "gas-safe", Label: "Gas Safe registered"}}}
	cfg := BuildFormConfig("heating-engineer", "Heating Engineer", ov)

	certs := cfg.Step(cfg.StepIndex(StepCertifications))
	if len(certs.Options) != 1 || certs.Options[0].Value != "gas-safe" {
		t.Errorf("certification options not overridden: %+v", certs.Options)
	}

	// No overrides falls back to the generic list.
	generic := BuildFormConfig("builder", "Builder", nil)
	fallback := generic.Step(generic.StepIndex(StepCertifications))
	if len(fallback.Options) == 0 {
		t.Error("expected default certification options")
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	base := BuildFormConfig("electrician", "Electrician", nil)

	dup := base
	dup.Steps = append([]Definition{}, base.Steps...)
	dup.Steps[2] = dup.Steps[1]
	if err := dup.Validate(); err == nil {
		t.Error("duplicate step ids accepted")
	}

	noSummary := base
	noSummary.Steps = base.Steps[:base.Len()-1]
	if err := noSummary.Validate(); err == nil {
		t.Error("config without summary accepted")
	}

	reserved := base
	reserved.Steps = append([]Definition{}, base.Steps...)
	reserved.Steps[1].ID = "submit"
	if err := reserved.Validate(); err == nil {
		t.Error("reserved step id accepted")
	}
}
