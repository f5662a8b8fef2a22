package form

// State is the runtime state of one form session. The engine owns the only
// mutable copy; State() hands out snapshots.
type State struct {
	StepIndex  int               `json:"stepIndex"`
	Values     map[string]any    `json:"values"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	Complete   bool              `json:"complete"`
}

// Snapshot is the slice of state that survives a page reload. Submitting and
// Complete deliberately do not: a resumed session always starts settled at
// the last successfully advanced step. The save timestamp lives in the
// session store's record envelope.
type Snapshot struct {
	CurrentStep int            `json:"currentStep"`
	FormData    map[string]any `json:"formData"`
}

func (s State) clone() State {
	values := make(map[string]any, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	errs := make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		errs[k] = v
	}
	s.Values = values
	s.Errors = errs
	return s
}

func (s State) snapshot() Snapshot {
	data := make(map[string]any, len(s.Values))
	for k, v := range s.Values {
		data[k] = v
	}
	return Snapshot{CurrentStep: s.StepIndex, FormData: data}
}
