package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

const librarySpellCounterCap = 3

func registerRoyalMagicalLibrary(reg *game.Registry) {
	reg.RegisterEffect(RoyalMagicalLibrary, &game.IgnitionEffect{
		Registry:  reg,
		CardID:    RoyalMagicalLibrary,
		EffectID:  EffectDraw,
		Condition: requireDeck(1),
		CostSteps: func(s *game.GameState, source game.CardInstance) []game.Step {
			return []game.Step{game.RemoveCountersStep(reg, source.InstanceID, game.CounterSpell, librarySpellCounterCap)}
		},
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{game.DrawStep(reg, 1)}
		},
	})
	reg.RegisterRules(RoyalMagicalLibrary, libraryCounterRule{})
}

// libraryCounterRule places a spell counter on its copy of the library
// each time a spell card resolves, up to the printed cap of three.
// Each face-up copy accumulates counters independently.
type libraryCounterRule struct{}

func (libraryCounterRule) Kind() game.RuleKind { return game.RuleStatusModifier }

func (libraryCounterRule) CanApply(s *game.GameState, source game.CardInstance) bool {
	return source.Location == game.LocationMonsterZone && source.IsFaceUp()
}

func (libraryCounterRule) OnSpellResolved(s *game.GameState, source game.CardInstance, spell game.CardInstance) *game.GameState {
	return game.AddCounters(s, source.InstanceID, game.CounterSpell, 1, librarySpellCounterCap)
}
