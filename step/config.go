package step

import (
	"fmt"
	"strings"
)

// Well-known step ids of the base sequence. The form engine treats the
// loan-amount step specially (calculator pre-fill); everything else is
// addressed positionally.
const (
	StepWelcome        = "welcome"
	StepName           = "name"
	StepPhone          = "phone"
	StepEmail          = "email"
	StepLoanAmount     = "loanAmount"
	StepPurpose        = "purpose"
	StepUrgency        = "urgency"
	StepYearsTrading   = "yearsTrading"
	StepCertifications = "certifications"
	StepAdditionalInfo = "additionalInfo"
	StepSummary        = "summary"
)

// FormConfig is the ordered, trade-specific list of steps plus trade
// metadata. It is immutable once built.
type FormConfig struct {
	TradeID          string       `json:"tradeId"`
	TradeName        string       `json:"tradeName"`
	Icon             string       `json:"icon"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	Steps            []Definition `json:"steps"`
}

// Overrides carries the trade-specific substitutions merged into the base
// template.
type Overrides struct {
	Icon             string
	EstimatedMinutes int
	Certifications   []Option
	LoanRange        *Range
}

// StepIndex returns the position of a step id, or -1 when absent.
func (c FormConfig) StepIndex(id string) int {
	for i, s := range c.Steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Step returns the definition at index i.
func (c FormConfig) Step(i int) Definition {
	return c.Steps[i]
}

// Len returns the number of steps.
func (c FormConfig) Len() int {
	return len(c.Steps)
}

// Validate checks the structural invariants: unique step ids, a welcome
// first step, a summary last step, and no step claiming the reserved submit
// error key. BuildFormConfig output always passes; hand-built configs should
// be checked before use.
func (c FormConfig) Validate() error {
	if len(c.Steps) < 2 {
		return fmt.Errorf("form config: need at least welcome and summary steps, got %d", len(c.Steps))
	}
	if c.Steps[0].Kind != KindWelcome {
		return fmt.Errorf("form config: first step must be %s, got %s", KindWelcome, c.Steps[0].Kind)
	}
	if last := c.Steps[len(c.Steps)-1]; last.Kind != KindSummary {
		return fmt.Errorf("form config: last step must be %s, got %s", KindSummary, last.Kind)
	}
	seen := make(map[string]struct{}, len(c.Steps))
	for _, s := range c.Steps {
		if s.ID == "" {
			return fmt.Errorf("form config: step with empty id")
		}
		if s.ID == "submit" {
			return fmt.Errorf("form config: step id %q is reserved", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("form config: duplicate step id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// BuildFormConfig merges the base step template with trade-specific
// overrides. Prompts in the template carry a {trade} placeholder resolved
// here, so no trade-name substitution leaks into render code. Output is
// deterministic: the same arguments always produce structurally identical
// configs.
func BuildFormConfig(tradeID, tradeName string, ov *Overrides) FormConfig {
	if ov == nil {
		ov = &Overrides{}
	}
	params := map[string]string{"trade": tradeName}

	cfg := FormConfig{
		TradeID:          tradeID,
		TradeName:        tradeName,
		Icon:             ov.Icon,
		EstimatedMinutes: ov.EstimatedMinutes,
		Steps:            baseSteps(params, ov),
	}
	if cfg.EstimatedMinutes == 0 {
		cfg.EstimatedMinutes = 2
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("step: base template is broken: %v", err))
	}
	return cfg
}

func baseSteps(params map[string]string, ov *Overrides) []Definition {
	loanRange := Range{Min: 1000, Max: 500000, Step: 1000, Default: 25000}
	if ov.LoanRange != nil {
		loanRange = *ov.LoanRange
	}
	certOptions := ov.Certifications
	if len(certOptions) == 0 {
		certOptions = defaultCertifications
	}

	return []Definition{
		{
			ID:       StepWelcome,
			Kind:     KindWelcome,
			Prompt:   resolve("Finance built for {trade}s", params),
			Subtitle: "Tell us a little about your business and we'll match you with a lender.",
		},
		{
			ID:          StepName,
			Kind:        KindShortText,
			Prompt:      "What's your name?",
			Placeholder: "Full name",
			Required:    true,
		},
		{
			ID:          StepPhone,
			Kind:        KindPhone,
			Prompt:      "Best number to reach you on?",
			Placeholder: "07123 456789",
			Hint:        "We'll only call about your application.",
			Required:    true,
		},
		{
			ID:          StepEmail,
			Kind:        KindEmail,
			Prompt:      "And your email address?",
			Placeholder: "you@company.co.uk",
			Required:    true,
		},
		{
			ID:     StepLoanAmount,
			Kind:   KindRangeSlider,
			Prompt: "How much are you looking to borrow?",
			Hint:   "Drag the slider or type an amount.",
			Range:  &loanRange,
		},
		{
			ID:          StepPurpose,
			Kind:        KindSingleSelect,
			Prompt:      "What's the finance for?",
			Required:    true,
			AutoAdvance: true,
			Options: []Option{
				{Value: "equipment", Label: "Tools & equipment", Emoji: "🛠️"},
				{Value: "vehicle", Label: "Van or vehicle", Emoji: "🚐"},
				{Value: "cashflow", Label: "Cash flow", Emoji: "💷"},
				{Value: "expansion", Label: "Growing the business", Emoji: "📈"},
				{Value: "vat", Label: "Tax or VAT bill", Emoji: "🧾"},
			},
		},
		{
			ID:          StepUrgency,
			Kind:        KindSingleSelect,
			Prompt:      "How soon do you need the funds?",
			Required:    true,
			AutoAdvance: true,
			Options: []Option{
				{Value: "asap", Label: "As soon as possible", Emoji: "⚡"},
				{Value: "this-week", Label: "This week", Emoji: "📅"},
				{Value: "this-month", Label: "Within a month", Emoji: "🗓️"},
				{Value: "exploring", Label: "Just exploring", Emoji: "🔍"},
			},
		},
		{
			ID:          StepYearsTrading,
			Kind:        KindSingleSelect,
			Prompt:      resolve("How long have you been trading as a {trade}?", params),
			Required:    true,
			AutoAdvance: true,
			Options: []Option{
				{Value: "under-1", Label: "Less than a year"},
				{Value: "1-3", Label: "1–3 years"},
				{Value: "3-5", Label: "3–5 years"},
				{Value: "5-plus", Label: "More than 5 years"},
			},
		},
		{
			ID:       StepCertifications,
			Kind:     KindMultiSelect,
			Prompt:   "Which accreditations do you hold?",
			Hint:     "Pick all that apply — lenders like to see these.",
			Options:  certOptions,
			Required: false,
		},
		{
			ID:          StepAdditionalInfo,
			Kind:        KindLongText,
			Prompt:      "Anything else we should know?",
			Placeholder: "Optional — upcoming contracts, assets, anything useful.",
			Required:    false,
		},
		{
			ID:       StepSummary,
			Kind:     KindSummary,
			Prompt:   "Check your answers",
			Subtitle: "Hit submit and we'll be in touch within one working day.",
		},
	}
}

var defaultCertifications = []Option{
	{Value: "cscs", Label: "CSCS card"},
	{Value: "city-and-guilds", Label: "City & Guilds"},
	{Value: "nvq", Label: "NVQ qualification"},
	{Value: "none", Label: "None of these"},
}

// resolve substitutes {name} placeholders from params into a prompt
// template.
func resolve(template string, params map[string]string) string {
	out := template
	for name, value := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}
