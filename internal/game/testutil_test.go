package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test card ids. The engine tests register their own miniature
// catalogue so they stay independent of the shipped card set.
const (
	testDrakeID   CardID = 1001 // vanilla monster
	testOracleID  CardID = 1002 // monster with a once-per-turn ignition draw
	testGreedID   CardID = 2001 // draw 2
	testCharityID CardID = 2002 // draw 3, discard 2
	testSiteID    CardID = 2003 // plain field spell
	testTollID    CardID = 2004 // continuous spell, costs 500 LP
)

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.RegisterCard(CardData{ID: testDrakeID, Name: "Stone Drake", FrameType: "monster", Level: 4, ATK: 1500, DEF: 1200})
	reg.RegisterCard(CardData{ID: testOracleID, Name: "Deck Oracle", FrameType: "monster", Level: 3, ATK: 800, DEF: 1000})
	reg.RegisterCard(CardData{ID: testGreedID, Name: "Greedy Jar", FrameType: "spell", SpellType: "Normal"})
	reg.RegisterCard(CardData{ID: testCharityID, Name: "Kind Offering", FrameType: "spell", SpellType: "Normal"})
	reg.RegisterCard(CardData{ID: testSiteID, Name: "Quiet Shrine", FrameType: "spell", SpellType: "Field"})
	reg.RegisterCard(CardData{ID: testTollID, Name: "Blood Toll", FrameType: "spell", SpellType: "Continuous"})

	reg.RegisterEffect(testGreedID, &NormalSpell{SpellConfig: SpellConfig{
		Registry: reg,
		CardID:   testGreedID,
		Condition: func(s *GameState, _ CardInstance) ValidationResult {
			if len(s.Zones.Deck) < 2 {
				return Invalid(CodeInsufficientDeck, "need 2 cards in the deck")
			}
			return OK()
		},
		Resolution: func(s *GameState, _ CardInstance) []Step {
			return []Step{DrawStep(reg, 2)}
		},
	}})

	reg.RegisterEffect(testCharityID, &NormalSpell{SpellConfig: SpellConfig{
		Registry: reg,
		CardID:   testCharityID,
		Condition: func(s *GameState, _ CardInstance) ValidationResult {
			if len(s.Zones.Deck) < 3 {
				return Invalid(CodeInsufficientDeck, "need 3 cards in the deck")
			}
			return OK()
		},
		Resolution: func(s *GameState, _ CardInstance) []Step {
			return []Step{DrawStep(reg, 3), DiscardSelectionStep(reg, 2)}
		},
	}})

	reg.RegisterEffect(testSiteID, &FieldSpell{SpellConfig: SpellConfig{
		Registry: reg,
		CardID:   testSiteID,
	}})

	reg.RegisterEffect(testTollID, &ContinuousSpell{SpellConfig: SpellConfig{
		Registry: reg,
		CardID:   testTollID,
		CostSteps: func(s *GameState, _ CardInstance) []Step {
			return []Step{PayLifeStep(reg, 500, SidePlayer)}
		},
	}})

	reg.RegisterEffect(testOracleID, &IgnitionEffect{
		Registry:    reg,
		CardID:      testOracleID,
		EffectID:    "draw",
		OncePerTurn: true,
		Condition: func(s *GameState, _ CardInstance) ValidationResult {
			if len(s.Zones.Deck) < 1 {
				return Invalid(CodeInsufficientDeck, "the deck is empty")
			}
			return OK()
		},
		Resolution: func(s *GameState, _ CardInstance) []Step {
			return []Step{DrawStep(reg, 1)}
		},
	})
	return reg
}

func monster(id CardID) CardInstance {
	return NewCardInstance(id, CardTypeMonster, SpellNone)
}

func spell(id CardID, sub SpellSubtype) CardInstance {
	return NewCardInstance(id, CardTypeSpell, sub)
}

// paddedDeck builds n vanilla monsters.
func paddedDeck(n int) []CardInstance {
	out := make([]CardInstance, n)
	for i := range out {
		out[i] = monster(testDrakeID)
	}
	return out
}

// newTestState puts the given cards in hand over the given deck and
// jumps to Main Phase 1.
func newTestState(hand, deck []CardInstance) *GameState {
	s := NewGameState(deck, 42)
	s.Phase = PhaseMain1
	for i := range hand {
		hand[i].Location = LocationHand
		hand[i].Field = nil
	}
	s.Zones.Hand = append(s.Zones.Hand, hand...)
	return s
}

// placed moves a copy onto the field face-up for direct state setup.
func placed(c CardInstance, loc Location) CardInstance {
	c.Location = loc
	c.Field = &FieldState{
		Position:         FaceUp,
		Counters:         make(map[CounterType]int),
		ActivatedEffects: make(map[EffectKey]struct{}),
	}
	return c
}

// runCommand executes a command and drives its steps to completion,
// failing the test if anything suspends or fails.
func runCommand(t *testing.T, reg *Registry, s *GameState, cmd Command) *GameState {
	t.Helper()
	res := cmd.Execute(s)
	require.True(t, res.Success, "command %s failed: %s", cmd.Name(), res.Message)
	r := NewResolver(reg, res.State, res.Steps)
	require.Equal(t, ResolverDone, r.Run(), "resolver did not finish: %v", r.Err())
	return r.State()
}

// handIDs extracts the instance ids of the first n hand cards.
func handIDs(s *GameState, n int) []InstanceID {
	ids := make([]InstanceID, 0, n)
	for i := 0; i < n && i < len(s.Zones.Hand); i++ {
		ids = append(ids, s.Zones.Hand[i].InstanceID)
	}
	return ids
}

// requireValid asserts the full snapshot invariants hold.
func requireValid(t *testing.T, s *GameState) {
	t.Helper()
	require.NoError(t, s.Validate())
}
