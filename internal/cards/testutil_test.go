package cards

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
)

// fillerID pads decks with a vanilla monster that carries no rules of
// its own (a single limb never triggers the victory check).
const fillerID = ExodiaRightArm

// newDuel deals the named cards into the hand over the named deck and
// jumps to Main Phase 1. Deck order is kept as given, first id on top.
func newDuel(reg *game.Registry, hand, deck []game.CardID) *game.GameState {
	s := game.NewGameState(game.BuildDeck(reg, deck), 11)
	s.Phase = game.PhaseMain1
	for _, c := range game.BuildDeck(reg, hand) {
		c.Location = game.LocationHand
		s.Zones.Hand = append(s.Zones.Hand, c)
	}
	return s
}

// fillers builds n copies of the filler monster id.
func fillers(n int) []game.CardID {
	out := make([]game.CardID, n)
	for i := range out {
		out[i] = fillerID
	}
	return out
}

// inHand returns the instance id of the first hand copy of a card.
func inHand(t *testing.T, s *game.GameState, id game.CardID) game.InstanceID {
	t.Helper()
	for _, c := range s.Zones.Hand {
		if c.CardID == id {
			return c.InstanceID
		}
	}
	t.Fatalf("card %d not in hand", id)
	return ""
}

// onField places a fresh face-up copy directly into a zone and returns
// its instance id.
func onField(reg *game.Registry, s *game.GameState, id game.CardID, loc game.Location) game.InstanceID {
	c := game.BuildDeck(reg, []game.CardID{id})[0]
	c.Location = loc
	c.Field = &game.FieldState{
		Position:         game.FaceUp,
		Counters:         make(map[game.CounterType]int),
		ActivatedEffects: make(map[game.EffectKey]struct{}),
	}
	switch loc {
	case game.LocationMonsterZone:
		s.Zones.MonsterZone = append(s.Zones.MonsterZone, c)
	case game.LocationFieldZone:
		s.Zones.FieldZone = append(s.Zones.FieldZone, c)
	default:
		s.Zones.SpellTrapZone = append(s.Zones.SpellTrapZone, c)
	}
	return c.InstanceID
}

// resolve executes a command and drives its steps to completion.
func resolve(t *testing.T, reg *game.Registry, s *game.GameState, cmd game.Command) *game.GameState {
	t.Helper()
	res := cmd.Execute(s)
	require.True(t, res.Success, "command %s failed: %s", cmd.Name(), res.Message)
	r := game.NewResolver(reg, res.State, res.Steps)
	require.Equal(t, game.ResolverDone, r.Run(), "resolver did not finish: %v", r.Err())
	return r.State()
}

// start executes a command and runs its steps until they finish or
// suspend, returning the live resolver.
func start(t *testing.T, reg *game.Registry, s *game.GameState, cmd game.Command) *game.Resolver {
	t.Helper()
	res := cmd.Execute(s)
	require.True(t, res.Success, "command %s failed: %s", cmd.Name(), res.Message)
	r := game.NewResolver(reg, res.State, res.Steps)
	r.Run()
	return r
}

// countIn counts copies of a card id in a zone slice.
func countIn(zone []game.CardInstance, id game.CardID) int {
	n := 0
	for _, c := range zone {
		if c.CardID == id {
			n++
		}
	}
	return n
}

// nextTurn advances the phase cycle until Main Phase 1 of the next
// turn.
func nextTurn(t *testing.T, reg *game.Registry, s *game.GameState) *game.GameState {
	t.Helper()
	turn := s.Turn
	for s.Turn == turn || s.Phase != game.PhaseMain1 {
		s = resolve(t, reg, s, game.NewAdvancePhase(reg))
	}
	return s
}
