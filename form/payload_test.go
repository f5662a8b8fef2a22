package form

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mattylll/tradesmanfinance-engine/step"
)

func TestBuildLeadMetadata(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	gw := &captureGateway{}

	e, _ := New(ctx, electricianConfig(), gw,
		WithClock(func() time.Time { return fixed }),
		WithPage(PageContext{
			URL:         "https://tradesmanfinance.co.uk/electrician-finance/norfolk/norwich",
			Referrer:    "https://www.google.com/",
			UTMSource:   "google",
			UTMMedium:   "cpc",
			UTMCampaign: "electricians-q1",
		}))

	answerEverything(ctx, e)
	e.SetValue(step.StepAdditionalInfo, "Two vans on order")
	e.NextStep(ctx)

	if len(gw.leads) != 1 {
		t.Fatalf("expected one lead, got %d", len(gw.leads))
	}
	lead := gw.leads[0]

	if lead.SubmittedAt != "2026-03-01T09:30:00Z" {
		t.Errorf("submittedAt = %q", lead.SubmittedAt)
	}
	if lead.PageURL != "https://tradesmanfinance.co.uk/electrician-finance/norfolk/norwich" {
		t.Errorf("pageUrl = %q", lead.PageURL)
	}
	if lead.UTMSource != "google" || lead.UTMMedium != "cpc" || lead.UTMCampaign != "electricians-q1" {
		t.Errorf("utm fields wrong: %+v", lead)
	}

	wantMessage := "Two vans on order\nYears trading: 3-5\nCertifications: NICEIC"
	if lead.Message != wantMessage {
		t.Errorf("message = %q, want %q", lead.Message, wantMessage)
	}
}

func TestBuildLeadHandlesJSONShapedValues(t *testing.T) {
	// After a session round-trip, numbers arrive as float64 and lists as
	// []any. The payload builder must cope with both shapes.
	ctx := context.Background()
	gw := &captureGateway{}
	e, _ := New(ctx, electricianConfig(), gw)

	answerEverything(ctx, e)
	e.SetValue(step.StepLoanAmount, 32000.0)
	e.SetValue(step.StepCertifications, []any{"NICEIC", "NAPIT"})
	e.NextStep(ctx)

	if len(gw.leads) != 1 {
		t.Fatalf("expected one lead, got %d", len(gw.leads))
	}
	lead := gw.leads[0]
	if lead.Amount != 32000 {
		t.Errorf("amount = %v", lead.Amount)
	}
	if want := "Certifications: NICEIC, NAPIT"; !strings.Contains(lead.Message, want) {
		t.Errorf("message %q missing %q", lead.Message, want)
	}
}
