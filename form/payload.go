package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mattylll/tradesmanfinance-engine/gateway"
	"github.com/mattylll/tradesmanfinance-engine/step"
)

// FormType is the discriminator the gateway uses to route this payload.
const FormType = "trade-finance-application"

func newLeadID() string {
	return uuid.NewString()
}

// buildLead flattens accumulated values plus derived metadata into the
// gateway payload. Auxiliary answers that have no field of their own
// (years trading, certifications, free text) are folded into Message.
func (e *Engine) buildLead() gateway.Lead {
	v := e.state.Values
	return gateway.Lead{
		LeadID:      e.newID(),
		FormType:    FormType,
		Name:        stringValue(v, step.StepName),
		Email:       stringValue(v, step.StepEmail),
		Phone:       stringValue(v, step.StepPhone),
		TradeType:   e.cfg.TradeName,
		Amount:      floatValue(v, step.StepLoanAmount),
		FinanceType: stringValue(v, step.StepPurpose),
		Urgency:     stringValue(v, step.StepUrgency),
		Location:    stringValue(v, "location"),
		Message:     e.buildMessage(),
		PageURL:     e.page.URL,
		Referrer:    e.page.Referrer,
		UTMSource:   e.page.UTMSource,
		UTMMedium:   e.page.UTMMedium,
		UTMCampaign: e.page.UTMCampaign,
		UTMTerm:     e.page.UTMTerm,
		UTMContent:  e.page.UTMContent,
		SubmittedAt: e.now().UTC().Format(time.RFC3339),
	}
}

func (e *Engine) buildMessage() string {
	var parts []string
	if info := stringValue(e.state.Values, step.StepAdditionalInfo); strings.TrimSpace(info) != "" {
		parts = append(parts, strings.TrimSpace(info))
	}
	if years := stringValue(e.state.Values, step.StepYearsTrading); years != "" {
		parts = append(parts, "Years trading: "+years)
	}
	if certs := sliceValue(e.state.Values, step.StepCertifications); len(certs) > 0 {
		parts = append(parts, "Certifications: "+strings.Join(certs, ", "))
	}
	return strings.Join(parts, "\n")
}

func stringValue(values map[string]any, id string) string {
	s, _ := values[id].(string)
	return s
}

func floatValue(values map[string]any, id string) float64 {
	switch n := values[id].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%f", &f); err == nil {
			return f
		}
	}
	return 0
}

func sliceValue(values map[string]any, id string) []string {
	switch vv := values[id].(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
