// Package form implements the multi-step application form state machine:
// navigation under per-step validation, unconditional value writes, session
// resume, and submission with user-driven retry. It is a pure state engine —
// rendering layers subscribe to state changes and stay out of here.
package form

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mattylll/tradesmanfinance-engine/gateway"
	"github.com/mattylll/tradesmanfinance-engine/loan"
	"github.com/mattylll/tradesmanfinance-engine/session"
	"github.com/mattylll/tradesmanfinance-engine/step"
)

// SubmitErrorKey is the reserved errors-map key for gateway failures. Step
// ids may not collide with it; step.FormConfig.Validate enforces that.
const SubmitErrorKey = "submit"

const submitErrorMessage = "Something went wrong sending your application. Please try again."

// PageContext carries the page/referrer/UTM context folded into the lead
// payload.
type PageContext struct {
	URL         string
	Referrer    string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	UTMTerm     string
	UTMContent  string
}

// Engine drives one form session. It is single-owner: one goroutine (the UI
// event loop) mutates it, so there is no internal locking.
type Engine struct {
	cfg    step.FormConfig
	state  State
	store  *session.Store[Snapshot]
	calc   *session.Store[loan.SavedCalculation]
	gw     gateway.Gateway
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
	page   PageContext
	notify func(State)
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithStore enables session persistence: snapshots are saved after every
// successful advance and a fresh prior session is resumed at mount.
func WithStore(s *session.Store[Snapshot]) Option {
	return func(e *Engine) { e.store = s }
}

// WithCalculator injects the calculator's persisted output as a read-only
// prefill source for the loan-amount step.
func WithCalculator(s *session.Store[loan.SavedCalculation]) Option {
	return func(e *Engine) { e.calc = s }
}

// WithPage attaches page/referrer/UTM context to the session.
func WithPage(p PageContext) Option {
	return func(e *Engine) { e.page = p }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides the time source used for the submittedAt stamp.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithObserver registers a callback invoked after every state change. The
// rendering layer hangs off this.
func WithObserver(fn func(State)) Option {
	return func(e *Engine) { e.notify = fn }
}

// New builds an engine for one form session and hydrates it: slider
// defaults are seeded, a fresh persisted session (younger than the store's
// window) resumes where it left off, and absent that, the calculator's
// saved amount pre-fills the loan-amount step.
func New(ctx context.Context, cfg step.FormConfig, gw gateway.Gateway, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gw == nil {
		return nil, fmt.Errorf("form: gateway is required")
	}
	e := &Engine{
		cfg:    cfg,
		gw:     gw,
		logger: slog.Default(),
		now:    time.Now,
		newID:  newLeadID,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = e.initialState()
	e.hydrate(ctx)
	return e, nil
}

func (e *Engine) initialState() State {
	st := State{
		Values: map[string]any{},
		Errors: map[string]string{},
	}
	for _, s := range e.cfg.Steps {
		if s.Kind == step.KindRangeSlider && s.Range != nil {
			st.Values[s.ID] = s.Range.Default
		}
	}
	return st
}

func (e *Engine) hydrate(ctx context.Context) {
	resumed := false
	if e.store != nil {
		snap, ok, err := e.store.Get(ctx)
		if err != nil {
			e.logger.Warn("session load failed, starting fresh", "error", err)
		} else if ok {
			for k, v := range snap.FormData {
				e.state.Values[k] = v
			}
			e.state.StepIndex = clampIndex(snap.CurrentStep, e.cfg.Len())
			resumed = true
			e.logger.Debug("resumed session", "step", e.state.StepIndex, "trade", e.cfg.TradeID)
		}
	}
	if resumed || e.calc == nil {
		return
	}
	saved, ok, err := e.calc.Get(ctx)
	if err != nil || !ok {
		return
	}
	for _, s := range e.cfg.Steps {
		if s.Kind != step.KindRangeSlider || s.Range == nil {
			continue
		}
		e.state.Values[s.ID] = loan.Clamp(saved.Amount, s.Range.Min, s.Range.Max)
		e.logger.Debug("prefilled loan amount from calculator", "step", s.ID, "amount", saved.Amount)
		break
	}
}

// Config returns the immutable form configuration the engine runs against.
func (e *Engine) Config() step.FormConfig {
	return e.cfg
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.clone()
}

// CurrentStep returns the definition of the step the session sits on.
func (e *Engine) CurrentStep() step.Definition {
	return e.cfg.Step(e.state.StepIndex)
}

// Value returns the accumulated value for a step id.
func (e *Engine) Value(stepID string) (any, bool) {
	v, ok := e.state.Values[stepID]
	return v, ok
}

// Progress returns how far through the form the session is, 0–100.
func (e *Engine) Progress() float64 {
	return float64(e.state.StepIndex+1) / float64(e.cfg.Len()) * 100
}

// SetValue writes a step's value unconditionally — validation happens at
// advance time, so live widgets never block on it. Any existing error for
// the step clears optimistically.
func (e *Engine) SetValue(stepID string, value any) {
	e.state.Values[stepID] = value
	delete(e.state.Errors, stepID)
	e.changed()
}

// NextStep validates the current step and advances past it. A validation
// failure writes the step's error and leaves the index alone. On the
// terminal summary step, advancing means submitting.
func (e *Engine) NextStep(ctx context.Context) {
	if e.state.Complete || e.state.Submitting {
		return
	}
	current := e.CurrentStep()
	if verr := step.Validate(current, e.state.Values[current.ID]); verr != nil {
		e.state.Errors[verr.StepID] = verr.Message
		e.logger.Debug("step blocked by validation", "step", current.ID, "message", verr.Message)
		e.changed()
		return
	}
	if e.state.StepIndex == e.cfg.Len()-1 {
		e.Submit(ctx)
		return
	}
	e.state.StepIndex++
	e.persist(ctx)
	e.changed()
}

// PrevStep retreats one step. Retreat never validates: the user must always
// be able to go back and fix an earlier answer. At the first step it is a
// no-op.
func (e *Engine) PrevStep() {
	if e.state.StepIndex == 0 || e.state.Submitting {
		return
	}
	e.state.StepIndex--
	e.changed()
}

// GoToStep jumps directly to a step index — the summary screen's "Edit"
// action. Out-of-range indices are ignored.
func (e *Engine) GoToStep(index int) {
	if e.state.Submitting || index < 0 || index >= e.cfg.Len() {
		return
	}
	e.state.StepIndex = index
	e.changed()
}

// Submit re-validates every step in full (a summary-edit may have left a
// later answer stale), then sends the normalized lead through the gateway.
// Failure parks an error under SubmitErrorKey and keeps all values so the
// user can retry; success clears the persisted session and completes the
// machine.
func (e *Engine) Submit(ctx context.Context) {
	if e.state.Complete || e.state.Submitting {
		return
	}
	if firstInvalid := e.validateAll(); firstInvalid >= 0 {
		e.state.StepIndex = firstInvalid
		e.changed()
		return
	}

	e.state.Submitting = true
	delete(e.state.Errors, SubmitErrorKey)
	e.changed()

	lead := e.buildLead()
	err := e.gw.Submit(ctx, lead)
	e.state.Submitting = false
	if err != nil {
		e.state.Errors[SubmitErrorKey] = submitErrorMessage
		e.logger.Warn("lead submission failed", "lead_id", lead.LeadID, "error", err)
		e.changed()
		return
	}

	e.state.Complete = true
	if e.store != nil {
		if derr := e.store.Del(ctx); derr != nil {
			e.logger.Warn("failed to clear persisted session", "error", derr)
		}
	}
	e.logger.Info("lead submitted", "lead_id", lead.LeadID, "trade", e.cfg.TradeID)
	e.changed()
}

// Reset discards the session entirely — the "start over" action. The
// persisted snapshot is cleared as well.
func (e *Engine) Reset(ctx context.Context) {
	e.state = e.initialState()
	if e.store != nil {
		if err := e.store.Del(ctx); err != nil {
			e.logger.Warn("failed to clear persisted session", "error", err)
		}
	}
	e.changed()
}

// validateAll re-checks every step and returns the index of the first
// invalid one, or -1 when the whole form passes. Errors for all invalid
// steps are written in the same pass.
func (e *Engine) validateAll() int {
	first := -1
	for i, s := range e.cfg.Steps {
		verr := step.Validate(s, e.state.Values[s.ID])
		if verr == nil {
			continue
		}
		e.state.Errors[verr.StepID] = verr.Message
		if first < 0 {
			first = i
		}
	}
	return first
}

// persist saves a resume snapshot. Persistence is best-effort: failures are
// logged and never block navigation.
func (e *Engine) persist(ctx context.Context) {
	if e.store == nil {
		return
	}
	if err := e.store.Set(ctx, e.state.snapshot()); err != nil {
		e.logger.Warn("session save failed", "error", err)
	}
}

func (e *Engine) changed() {
	if e.notify != nil {
		e.notify(e.State())
	}
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
