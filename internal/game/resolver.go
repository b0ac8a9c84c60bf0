package game

import "fmt"

// ResolverStatus is the driver-visible state of a step sequence.
type ResolverStatus int

const (
	ResolverRunning ResolverStatus = iota
	ResolverAwaitingSelection
	ResolverDone
	ResolverAborted
	ResolverFailed
)

func (rs ResolverStatus) String() string {
	switch rs {
	case ResolverRunning:
		return "Running"
	case ResolverAwaitingSelection:
		return "AwaitingSelection"
	case ResolverDone:
		return "Done"
	case ResolverAborted:
		return "Aborted"
	case ResolverFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Resolver drives an effect's step list strictly in order, passing the
// output snapshot of step k as the input of step k+1. It suspends on
// interactive steps until the driver supplies a selection, and checks
// victory after every step. The resolver owns the only in-flight copy
// of the snapshot; each step transition allocates a new one.
type Resolver struct {
	registry *Registry
	state    *GameState
	steps    []Step
	idx      int
	status   ResolverStatus
	err      error
	messages []string
}

// NewResolver builds a resolver over a snapshot and step list.
func NewResolver(reg *Registry, s *GameState, steps []Step) *Resolver {
	r := &Resolver{registry: reg, state: s, steps: steps}
	if len(steps) == 0 {
		r.status = ResolverDone
	}
	return r
}

// Status returns the resolver's current state.
func (r *Resolver) Status() ResolverStatus { return r.status }

// State returns the snapshot as of the last completed step.
func (r *Resolver) State() *GameState { return r.state }

// Err returns the terminal error, if the resolver failed.
func (r *Resolver) Err() error { return r.err }

// Messages returns the accumulated per-step messages.
func (r *Resolver) Messages() []string { return r.messages }

// PendingStep returns the interactive step the resolver is suspended
// on, or false when not awaiting a selection.
func (r *Resolver) PendingStep() (Step, bool) {
	if r.status != ResolverAwaitingSelection {
		return Step{}, false
	}
	return r.steps[r.idx], true
}

// PendingSelection returns the selection config and current candidates
// for the suspended step.
func (r *Resolver) PendingSelection() (SelectionConfig, []CardInstance, bool) {
	st, ok := r.PendingStep()
	if !ok {
		return SelectionConfig{}, nil, false
	}
	var candidates []CardInstance
	if st.Selection.Candidates != nil {
		candidates = st.Selection.Candidates(r.state)
	}
	return *st.Selection, candidates, true
}

// Run advances through steps until the resolver suspends, finishes, or
// fails.
func (r *Resolver) Run() ResolverStatus {
	for r.status == ResolverRunning {
		r.advance(nil)
	}
	return r.status
}

// Resume supplies the selection for the suspended step and continues.
// A selection outside the configured bounds is rejected without
// touching the snapshot; the resolver stays suspended for a re-prompt.
func (r *Resolver) Resume(selected []InstanceID) ResolverStatus {
	if r.status != ResolverAwaitingSelection {
		r.err = fmt.Errorf("resume called while %s", r.status)
		r.status = ResolverFailed
		return r.status
	}
	st := r.steps[r.idx]
	if !st.Selection.InBounds(len(selected)) {
		// Stay suspended; the driver must re-prompt.
		r.err = fmt.Errorf("selection must be between %d and %d card(s), got %d",
			st.Selection.Min, st.Selection.Max, len(selected))
		return r.status
	}
	r.err = nil
	r.status = ResolverRunning
	r.advance(selected)
	return r.Run()
}

// Cancel aborts the remaining sequence, leaving the snapshot as of the
// last completed step. Only a suspended, cancelable selection may be
// canceled.
func (r *Resolver) Cancel() error {
	st, ok := r.PendingStep()
	if !ok {
		return fmt.Errorf("no pending selection to cancel")
	}
	if !st.Selection.Cancelable {
		return fmt.Errorf("this selection cannot be canceled")
	}
	r.status = ResolverAborted
	return nil
}

// advance runs the step at idx. Interactive steps with no selection
// provided suspend instead of running.
func (r *Resolver) advance(selected []InstanceID) {
	if r.idx >= len(r.steps) {
		r.status = ResolverDone
		return
	}
	st := r.steps[r.idx]
	if st.Interactive() && selected == nil {
		r.status = ResolverAwaitingSelection
		return
	}

	res := st.Action(r.state, selected)
	if !res.Success {
		if st.Interactive() {
			// Wrong selection content; snapshot unchanged, re-prompt.
			r.err = res.Err
			r.status = ResolverAwaitingSelection
			return
		}
		r.err = res.Err
		r.status = ResolverFailed
		return
	}

	r.state = EvaluateVictory(r.registry, res.State)
	if res.Message != "" {
		r.messages = append(r.messages, res.Message)
	}
	if len(res.Next) > 0 {
		// Splice follow-up steps directly after the current one.
		rest := append([]Step(nil), res.Next...)
		rest = append(rest, r.steps[r.idx+1:]...)
		r.steps = append(r.steps[:r.idx+1], rest...)
	}
	r.idx++
	if r.state.Result.GameOver || r.idx >= len(r.steps) {
		r.status = ResolverDone
		return
	}
	r.status = ResolverRunning
}
