// Package session wraps one solitaire match behind a mutex so that
// drivers (CLI, web, MCP) can share it safely. The engine itself works
// on immutable snapshots; the session serializes the command/selection
// protocol and keeps the event journal.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
	"github.com/okmethod/ygo-solitaire-sub001/internal/log"
)

var (
	// ErrSelectionPending rejects commands while an effect is suspended
	// on a card selection.
	ErrSelectionPending = errors.New("a card selection is pending")
	// ErrNoSelectionPending rejects selection calls when nothing is
	// suspended.
	ErrNoSelectionPending = errors.New("no card selection is pending")
)

// Session owns one match: the current snapshot, the in-flight resolver
// if an effect is suspended, and the journal of everything that
// happened.
type Session struct {
	mu       sync.Mutex
	registry *game.Registry
	state    *game.GameState
	resolver *game.Resolver
	journal  *log.MemoryLogger
	extra    log.EventLogger
}

// Result is the driver-facing outcome of a dispatched command or a
// submitted selection.
type Result struct {
	Success  bool
	Code     game.ErrorCode
	Message  string
	Messages []string
	// AwaitingSelection is set when the effect suspended and the driver
	// must prompt the player.
	AwaitingSelection bool
	Prompt            string
	Candidates        []game.CardInstance
	MinSelect         int
	MaxSelect         int
	Cancelable        bool
}

// New starts a session over a start-of-match snapshot. The optional
// extra logger mirrors the journal (e.g. a TextLogger on stdout).
func New(reg *game.Registry, state *game.GameState, extra log.EventLogger) *Session {
	return &Session{
		registry: reg,
		state:    state,
		journal:  log.NewMemoryLogger(),
		extra:    extra,
	}
}

// Registry returns the card registry the session was built with.
func (s *Session) Registry() *game.Registry { return s.registry }

// State returns the current snapshot. Snapshots are immutable, so the
// caller may hold it as long as it likes.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Events returns a copy of the journal so far.
func (s *Session) Events() []log.GameEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.Events()
}

// Awaiting reports whether the session is suspended on a selection.
func (s *Session) Awaiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver != nil
}

// Dispatch validates and executes a command, then drives any resulting
// effect steps until they finish or suspend on a selection.
func (s *Session) Dispatch(cmd game.Command) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolver != nil {
		return Result{}, ErrSelectionPending
	}

	res := cmd.Execute(s.state)
	if !res.Success {
		return Result{Success: false, Code: res.Code, Message: res.Message}, nil
	}
	s.state = res.State
	s.logCommand(cmd, res.Message)

	if len(res.Steps) == 0 {
		s.state = game.EvaluateVictory(s.registry, s.state)
		s.logOutcome(nil)
		return Result{Success: true, Message: res.Message}, nil
	}

	r := game.NewResolver(s.registry, s.state, res.Steps)
	r.Run()
	return s.settle(r, res.Message)
}

// PendingSelection returns the suspended step's selection parameters.
func (s *Session) PendingSelection() (game.SelectionConfig, []game.CardInstance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolver == nil {
		return game.SelectionConfig{}, nil, false
	}
	return s.resolver.PendingSelection()
}

// SubmitSelection resumes the suspended effect with the chosen cards.
func (s *Session) SubmitSelection(selected []game.InstanceID) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolver == nil {
		return Result{}, ErrNoSelectionPending
	}
	s.resolver.Resume(selected)
	return s.settle(s.resolver, "")
}

// CancelSelection aborts a suspended cancelable selection, keeping the
// snapshot as of the last completed step.
func (s *Session) CancelSelection() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolver == nil {
		return Result{}, ErrNoSelectionPending
	}
	if err := s.resolver.Cancel(); err != nil {
		return Result{}, err
	}
	return s.settle(s.resolver, "selection canceled")
}

// settle folds the resolver's current status into the session and
// builds the driver-facing result.
func (s *Session) settle(r *game.Resolver, message string) (Result, error) {
	switch r.Status() {
	case game.ResolverAwaitingSelection:
		s.resolver = r
		cfg, candidates, _ := r.PendingSelection()
		s.log(log.NewSelectionRequiredEvent(s.state.Turn, s.state.Phase.String(), cfg.Prompt))
		out := Result{
			Success:           true,
			Message:           message,
			Messages:          r.Messages(),
			AwaitingSelection: true,
			Prompt:            cfg.Prompt,
			Candidates:        candidates,
			MinSelect:         cfg.Min,
			MaxSelect:         cfg.Max,
			Cancelable:        cfg.Cancelable,
		}
		if err := r.Err(); err != nil {
			// A rejected selection keeps the step suspended; surface
			// the complaint for the re-prompt.
			out.Message = err.Error()
		}
		return out, nil

	case game.ResolverFailed:
		s.resolver = nil
		// The snapshot as of the last completed step stands; a failed
		// deterministic step leaves its input untouched.
		s.state = r.State()
		err := r.Err()
		return Result{Success: false, Message: fmt.Sprintf("effect failed: %v", err), Messages: r.Messages()}, nil

	default: // Done or Aborted
		s.resolver = nil
		s.state = r.State()
		for _, m := range r.Messages() {
			s.log(log.NewStepResolvedEvent(s.state.Turn, s.state.Phase.String(), m))
		}
		s.logOutcome(r)
		return Result{Success: true, Message: message, Messages: r.Messages()}, nil
	}
}

func (s *Session) log(e log.GameEvent) {
	s.journal.Log(e)
	if s.extra != nil {
		s.extra.Log(e)
	}
}

// logCommand journals the command itself under the matching event
// type. Command messages are already full sentences, so they go in as
// the event detail verbatim.
func (s *Session) logCommand(cmd game.Command, message string) {
	turn, phase := s.state.Turn, s.state.Phase.String()
	var t log.EventType
	switch cmd.Name() {
	case "AdvancePhase":
		t = log.EventPhaseChange
	case "SummonMonster":
		t = log.EventSummon
	case "SetSpellTrap":
		t = log.EventSetCard
	case "ActivateSpell", "ActivateIgnitionEffect":
		t = log.EventActivate
	case "ShuffleDeck":
		t = log.EventShuffle
	default:
		t = log.EventStepResolved
	}
	s.log(log.GameEvent{Turn: turn, Phase: phase, Type: t, Details: message})
}

// logOutcome journals a win once the snapshot reports game over.
func (s *Session) logOutcome(r *game.Resolver) {
	if !s.state.Result.GameOver {
		return
	}
	s.log(log.NewWinEvent(s.state.Turn, s.state.Phase.String(),
		s.state.Result.Winner.String(), s.state.Result.Reason))
}
