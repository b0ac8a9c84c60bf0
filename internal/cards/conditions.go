package cards

import (
	"fmt"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
)

type condition = func(s *game.GameState, source game.CardInstance) game.ValidationResult

// requireDeck fails activation when the deck holds fewer than n cards.
func requireDeck(n int) condition {
	return func(s *game.GameState, _ game.CardInstance) game.ValidationResult {
		if len(s.Zones.Deck) < n {
			return game.Invalid(game.CodeInsufficientDeck, fmt.Sprintf("the deck has %d card(s), need %d", len(s.Zones.Deck), n))
		}
		return game.OK()
	}
}

// requireLife fails activation when the player cannot afford a
// life-point cost. Affordability is re-checked when the cost step runs.
func requireLife(amount int) condition {
	return func(s *game.GameState, _ game.CardInstance) game.ValidationResult {
		if s.LifePoints.Player < amount {
			return game.Invalid(game.CodeInsufficientLP, fmt.Sprintf("cannot pay %d life points with %d remaining", amount, s.LifePoints.Player))
		}
		return game.OK()
	}
}

// requireDeckMatch fails activation when no deck card satisfies the
// predicate.
func requireDeckMatch(reg *game.Registry, what string, pred func(game.CardData) bool) condition {
	return func(s *game.GameState, _ game.CardInstance) game.ValidationResult {
		for _, c := range s.Zones.Deck {
			if d, ok := reg.Card(c.CardID); ok && pred(d) {
				return game.OK()
			}
		}
		return game.Invalid(game.CodeNoValidTarget, fmt.Sprintf("the deck has no %s", what))
	}
}

// allOf composes conditions left to right, stopping at the first
// failure.
func allOf(conds ...condition) condition {
	return func(s *game.GameState, source game.CardInstance) game.ValidationResult {
		for _, c := range conds {
			if v := c(s, source); !v.Valid {
				return v
			}
		}
		return game.OK()
	}
}
