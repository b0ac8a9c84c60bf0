package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

// EffectDraw names the pay-to-draw ignition effect of Chicken Game.
const EffectDraw = "draw"

func registerChickenGame(reg *game.Registry) {
	reg.RegisterEffect(ChickenGame, &game.FieldSpell{SpellConfig: game.SpellConfig{
		Registry: reg,
		CardID:   ChickenGame,
	}})
	reg.RegisterEffect(ChickenGame, &game.IgnitionEffect{
		Registry:    reg,
		CardID:      ChickenGame,
		EffectID:    EffectDraw,
		OncePerTurn: true,
		Condition:   allOf(requireLife(1000), requireDeck(1)),
		CostSteps: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{game.PayLifeStep(reg, 1000, game.SidePlayer)}
		},
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{game.DrawStep(reg, 1)}
		},
	})
	reg.RegisterRules(ChickenGame, chickenGameRule{})
}

// chickenGameRule negates all effect damage while Chicken Game is
// face-up in the field zone. The printed card protects only the player
// with fewer life points; with a passive opponent both sides are
// shielded alike, which amounts to the same thing for the solitaire
// player going second on life.
type chickenGameRule struct{}

func (chickenGameRule) Kind() game.RuleKind { return game.RuleStatusModifier }

func (chickenGameRule) CanApply(s *game.GameState, source game.CardInstance) bool {
	return source.Location == game.LocationFieldZone && source.IsFaceUp()
}

func (chickenGameRule) GrantsDamageNegation(s *game.GameState, source game.CardInstance) bool {
	return true
}
