package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

func registerToonWorld(reg *game.Registry) {
	reg.RegisterEffect(ToonWorld, &game.ContinuousSpell{SpellConfig: game.SpellConfig{
		Registry:  reg,
		CardID:    ToonWorld,
		Condition: requireLife(1000),
		CostSteps: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{game.PayLifeStep(reg, 1000, game.SidePlayer)}
		},
	}})
}

func registerSpellEconomics(reg *game.Registry) {
	reg.RegisterEffect(SpellEconomics, &game.ContinuousSpell{SpellConfig: game.SpellConfig{
		Registry: reg,
		CardID:   SpellEconomics,
	}})
	reg.RegisterRules(SpellEconomics, spellEconomicsRule{})
}

// spellEconomicsRule waives life-point costs of spell activations while
// Spell Economics is face-up in the spell & trap zone.
type spellEconomicsRule struct{}

func (spellEconomicsRule) Kind() game.RuleKind { return game.RuleActionReplacement }

func (spellEconomicsRule) CanApply(s *game.GameState, source game.CardInstance) bool {
	return source.Location == game.LocationSpellTrapZone && source.IsFaceUp()
}

func (spellEconomicsRule) ReplaceStep(s *game.GameState, source game.CardInstance, st game.Step) (game.Step, bool) {
	if st.ID != "pay-life" {
		return st, false
	}
	waived := st
	waived.Summary = "Cost waived"
	waived.Description = "The life-point cost is waived by Spell Economics."
	waived.Action = func(s *game.GameState, _ []game.InstanceID) game.StepResult {
		return game.StepResult{Success: true, State: s, Message: "the life-point cost was waived"}
	}
	return waived, true
}
