package cards

import "github.com/okmethod/ygo-solitaire-sub001/internal/game"

func registerExodia(reg *game.Registry) {
	// The victory rule lives on the head piece; the limbs are plain
	// vanilla monsters.
	reg.RegisterRules(ExodiaHead, exodiaRule{})
}

// exodiaRule wins the game on the spot when all five forbidden-one
// pieces sit in the hand together.
type exodiaRule struct{}

func (exodiaRule) Kind() game.RuleKind { return game.RuleVictoryCondition }

func (exodiaRule) CanApply(s *game.GameState, source game.CardInstance) bool {
	return source.Location == game.LocationHand
}

func (exodiaRule) Evaluate(s *game.GameState, source game.CardInstance) (game.GameResult, bool) {
	held := make(map[game.CardID]bool, len(s.Zones.Hand))
	for _, c := range s.Zones.Hand {
		held[c.CardID] = true
	}
	for _, id := range ExodiaPieces {
		if !held[id] {
			return game.GameResult{}, false
		}
	}
	return game.GameResult{
		GameOver: true,
		Winner:   game.SidePlayer,
		Reason:   game.ReasonExodia,
	}, true
}
