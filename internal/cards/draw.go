package cards

import (
	"fmt"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
)

// Draw spells are the engine of every solitaire deck. Each one is a
// normal spell whose resolution is a short step sequence.

func registerPotOfGreed(reg *game.Registry) {
	reg.RegisterEffect(PotOfGreed, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:  reg,
		CardID:    PotOfGreed,
		Condition: requireDeck(2),
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{game.DrawStep(reg, 2)}
		},
	}})
}

func registerGracefulCharity(reg *game.Registry) {
	reg.RegisterEffect(GracefulCharity, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:  reg,
		CardID:    GracefulCharity,
		Condition: requireDeck(3),
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.DrawStep(reg, 3),
				game.DiscardSelectionStep(reg, 2),
			}
		},
	}})
}

func registerUpstartGoblin(reg *game.Registry) {
	reg.RegisterEffect(UpstartGoblin, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:  reg,
		CardID:    UpstartGoblin,
		Condition: requireDeck(1),
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.DrawStep(reg, 1),
				game.GainLifeStep(reg, 1000, game.SideOpponent),
			}
		},
	}})
}

func registerOneDayOfPeace(reg *game.Registry) {
	// The opponent's draw is not modeled in a solitaire match.
	reg.RegisterEffect(OneDayOfPeace, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:    reg,
		CardID:      OneDayOfPeace,
		OncePerTurn: true,
		Condition:   requireDeck(1),
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.DrawStep(reg, 1),
				game.SetDamageNegationStep(reg),
			}
		},
	}})
}

func registerCardOfDemise(reg *game.Registry) {
	const handTarget = 3
	reg.RegisterEffect(CardOfDemise, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry:    reg,
		CardID:      CardOfDemise,
		OncePerTurn: true,
		Condition: func(s *game.GameState, source game.CardInstance) game.ValidationResult {
			// The card itself leaves the hand on activation, so it does
			// not count toward the target.
			others := len(s.Zones.Hand) - 1
			if others >= handTarget {
				return game.Invalid(game.CodeHandLimit, fmt.Sprintf("the hand already holds %d other card(s)", others))
			}
			if need := handTarget - others; len(s.Zones.Deck) < need {
				return game.Invalid(game.CodeInsufficientDeck, fmt.Sprintf("the deck has %d card(s), need %d", len(s.Zones.Deck), need))
			}
			return game.OK()
		},
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.DrawUpToHandSizeStep(reg, handTarget),
				game.QueueEndPhaseStep(reg, game.DiscardHandStep(reg)),
			}
		},
	}})
}

func registerMagicalMallet(reg *game.Registry) {
	reg.RegisterEffect(MagicalMallet, &game.NormalSpell{SpellConfig: game.SpellConfig{
		Registry: reg,
		CardID:   MagicalMallet,
		Condition: func(s *game.GameState, source game.CardInstance) game.ValidationResult {
			for _, c := range s.Zones.Hand {
				if c.InstanceID != source.InstanceID {
					return game.OK()
				}
			}
			return game.Invalid(game.CodeNoValidTarget, "no cards in hand to return")
		},
		Resolution: func(s *game.GameState, _ game.CardInstance) []game.Step {
			return []game.Step{
				game.ReturnToDeckStep(reg, 1, len(s.Zones.Hand), true, func(returned int) []game.Step {
					return []game.Step{
						game.ShuffleDeckStep(reg),
						game.DrawStep(reg, returned),
					}
				}),
			}
		},
	}})
}
