package game

// ShuffleDeckCommand permutes the deck zone using the snapshot's seed.
// It is always legal and touches nothing but the deck order and the
// seed.
type ShuffleDeckCommand struct {
	Registry *Registry
}

// NewShuffleDeck builds the command.
func NewShuffleDeck(reg *Registry) *ShuffleDeckCommand {
	return &ShuffleDeckCommand{Registry: reg}
}

func (c *ShuffleDeckCommand) Name() string { return "ShuffleDeck" }

func (c *ShuffleDeckCommand) CanExecute(s *GameState) ValidationResult {
	return OK()
}

func (c *ShuffleDeckCommand) Execute(s *GameState) CommandResult {
	rng, next := s.NextRand()
	out := s.Clone()
	out.Zones = ShuffleDeck(out.Zones, rng)
	out.RandSeed = next
	return CommandResult{Success: true, State: out, Message: "deck shuffled"}
}
