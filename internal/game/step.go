package game

// NotificationLevel hints how prominently a driver should surface a step.
type NotificationLevel int

const (
	NotifySilent NotificationLevel = iota
	NotifyInfo
	NotifyProminent
)

// SelectionConfig describes the player choice an interactive step
// needs before its action can complete. The driver must collect
// between Min and Max instance ids from Candidates and re-invoke the
// step's action with them.
type SelectionConfig struct {
	Min        int
	Max        int
	Cancelable bool
	Prompt     string
	// Candidates returns the instances the player may pick from, given
	// the snapshot the step will run against.
	Candidates func(s *GameState) []CardInstance
}

// InBounds reports whether a selection count satisfies the config.
func (c SelectionConfig) InBounds(n int) bool {
	return n >= c.Min && n <= c.Max
}

// StepResult is the outcome of running one step. On failure State is
// the unchanged input snapshot. Next carries follow-up steps built
// from this step's outcome (e.g. a draw sized by an earlier
// selection); the driver splices them in after the current step.
type StepResult struct {
	Success bool
	State   *GameState
	Message string
	Err     error
	Next    []Step
}

// stepOK builds a successful result.
func stepOK(s *GameState, message string) StepResult {
	return StepResult{Success: true, State: s, Message: message}
}

// stepFail builds a failed result that leaves the snapshot unchanged.
func stepFail(s *GameState, err error) StepResult {
	return StepResult{Success: false, State: s, Err: err}
}

// Step is one atomic, replayable state transition in an effect's
// activation or resolution sequence. A step with a non-nil Selection
// is interactive: its Action must be invoked with the collected
// instance ids. Non-interactive steps receive nil.
type Step struct {
	ID           string
	Summary      string
	Description  string
	Notification NotificationLevel
	Selection    *SelectionConfig
	Action       func(s *GameState, selected []InstanceID) StepResult
}

// Interactive reports whether the step suspends for player input.
func (st Step) Interactive() bool {
	return st.Selection != nil
}
