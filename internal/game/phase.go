package game

import "fmt"

// AdvancePhase moves the turn forward one phase. Entering the End
// Phase runs any queued end-phase steps and clears per-turn tracking;
// advancing out of the End Phase starts the next turn and auto-draws
// (a deck-out on that draw loses the game).
type AdvancePhase struct {
	Registry *Registry
}

// NewAdvancePhase builds the command.
func NewAdvancePhase(reg *Registry) *AdvancePhase {
	return &AdvancePhase{Registry: reg}
}

func (c *AdvancePhase) Name() string { return "AdvancePhase" }

func (c *AdvancePhase) CanExecute(s *GameState) ValidationResult {
	return checkGameLive(s)
}

func (c *AdvancePhase) Execute(s *GameState) CommandResult {
	if v := c.CanExecute(s); !v.Valid {
		return failure(s, v)
	}
	out := s.Clone()
	next := out.Phase.Next()

	if next == PhaseEnd {
		out.Phase = PhaseEnd
		out = c.runEndPhase(out)
		return CommandResult{Success: true, State: out, Message: "entered the End Phase"}
	}

	if out.Phase == PhaseEnd {
		// New turn.
		out.Phase = PhaseDraw
		out.Turn++
		out.NormalSummonsUsed = 0
		out.clearPlacedThisTurn()
		res := DrawStep(c.Registry, 1).Action(out, nil)
		if !res.Success {
			// Deck-out: the player cannot perform the turn draw.
			out.Result = GameResult{GameOver: true, Winner: SideOpponent, Reason: ReasonDeckOut}
			return CommandResult{Success: true, State: out, Message: "deck out: no card to draw"}
		}
		out = res.State
		out = EvaluateVictory(c.Registry, out)
		return CommandResult{Success: true, State: out, Message: fmt.Sprintf("turn %d begins", out.Turn)}
	}

	out.Phase = next
	return CommandResult{Success: true, State: out, Message: fmt.Sprintf("entered the %s", next)}
}

// runEndPhase executes the queued end-phase steps in order and wipes
// the turn's once-per-turn tracking and damage negation. Queued steps
// are deterministic; a step that cannot apply is skipped.
func (c *AdvancePhase) runEndPhase(s *GameState) *GameState {
	out := s
	pending := out.PendingEndPhaseSteps
	out = out.Clone()
	out.PendingEndPhaseSteps = nil
	for _, st := range pending {
		res := st.Action(out, nil)
		if res.Success {
			out = res.State
		}
		out = EvaluateVictory(c.Registry, out)
		if out.Result.GameOver {
			return out
		}
	}
	out = out.Clone()
	out.clearTurnTracking()
	out.DamageNegation = false
	return out
}
