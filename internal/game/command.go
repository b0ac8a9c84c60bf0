package game

// Command is one player action. CanExecute is a side-effect-free
// legality check; Execute re-validates and performs the transition.
// Execute never partially applies: on failure it returns the original
// snapshot plus a human-readable error.
type Command interface {
	Name() string
	CanExecute(s *GameState) ValidationResult
	Execute(s *GameState) CommandResult
}

// CommandResult is the outcome of executing a command. For
// effect-bearing activations, Steps carries the resolution sequence
// for the caller to drive; the returned State already reflects the
// command's own transition (e.g. the card moved to its zone).
type CommandResult struct {
	Success bool
	State   *GameState
	Code    ErrorCode
	Message string
	Steps   []Step
}

// failure builds a failed result that preserves the input snapshot.
func failure(s *GameState, v ValidationResult) CommandResult {
	return CommandResult{Success: false, State: s, Code: v.Code, Message: v.Message}
}

// checkGameLive is the validation every command except ShuffleDeck
// starts with.
func checkGameLive(s *GameState) ValidationResult {
	if s.Result.GameOver {
		return Invalid(CodeGameOver, "the game is already over")
	}
	return OK()
}

// findInHand validates that the target instance is a hand card.
func findInHand(s *GameState, id InstanceID) (CardInstance, ValidationResult) {
	card, ok := s.Zones.FindCard(id)
	if !ok {
		return CardInstance{}, Invalid(CodeCardNotFound, "the card does not exist in this match")
	}
	if card.Location != LocationHand {
		return CardInstance{}, Invalid(CodeNotInHand, "the card is not in your hand")
	}
	return card, OK()
}
