package game

import (
	"fmt"
)

// Step-builder library: parameterized factories for the atomic
// operations that effect sequences compose. Every action validates its
// own preconditions and fails cleanly with the input snapshot intact.
// Callers may override the ID/Summary/Description defaults on the
// returned value.

// DrawStep draws n cards from the top of the deck.
func DrawStep(reg *Registry, n int) Step {
	return Step{
		ID:           "draw",
		Summary:      fmt.Sprintf("Draw %d", n),
		Description:  fmt.Sprintf("Draw %d card(s) from the top of the deck.", n),
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			zones, drawn, err := DrawCards(s.Zones, n)
			if err != nil {
				return stepFail(s, err)
			}
			out := s.Clone()
			out.Zones = zones
			return stepOK(out, fmt.Sprintf("drew %d card(s)", len(drawn)))
		},
	}
}

// DrawUpToHandSizeStep draws until the hand holds target cards. Fails
// if the hand already meets the target or the deck is short.
func DrawUpToHandSizeStep(reg *Registry, target int) Step {
	return Step{
		ID:           "draw-to-hand-size",
		Summary:      fmt.Sprintf("Draw until %d in hand", target),
		Description:  fmt.Sprintf("Draw cards until you hold %d.", target),
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			need := target - len(s.Zones.Hand)
			if need <= 0 {
				return stepFail(s, fmt.Errorf("hand already holds %d card(s)", len(s.Zones.Hand)))
			}
			return DrawStep(reg, need).Action(s, nil)
		},
	}
}

// DiscardSelectionStep asks the player to choose exactly n hand cards
// and sends them to the graveyard.
func DiscardSelectionStep(reg *Registry, n int) Step {
	return Step{
		ID:           "discard-selection",
		Summary:      fmt.Sprintf("Discard %d", n),
		Description:  fmt.Sprintf("Choose %d card(s) from your hand to discard.", n),
		Notification: NotifyProminent,
		Selection: &SelectionConfig{
			Min:    n,
			Max:    n,
			Prompt: fmt.Sprintf("Discard %d card(s)", n),
			Candidates: func(s *GameState) []CardInstance {
				return s.Zones.Hand
			},
		},
		Action: func(s *GameState, selected []InstanceID) StepResult {
			if len(selected) != n {
				return stepFail(s, fmt.Errorf("must discard exactly %d card(s), got %d", n, len(selected)))
			}
			zones, err := DiscardCards(s.Zones, selected)
			if err != nil {
				return stepFail(s, err)
			}
			out := s.Clone()
			out.Zones = zones
			return stepOK(out, fmt.Sprintf("discarded %d card(s)", n))
		},
	}
}

// DiscardHandStep sends the entire hand to the graveyard. Succeeds on
// an empty hand.
func DiscardHandStep(reg *Registry) Step {
	return Step{
		ID:           "discard-hand",
		Summary:      "Discard hand",
		Description:  "Send every card in your hand to the graveyard.",
		Notification: NotifyProminent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			if len(s.Zones.Hand) == 0 {
				return stepOK(s, "hand is empty")
			}
			ids := make([]InstanceID, len(s.Zones.Hand))
			for i, c := range s.Zones.Hand {
				ids[i] = c.InstanceID
			}
			zones, err := DiscardCards(s.Zones, ids)
			if err != nil {
				return stepFail(s, err)
			}
			out := s.Clone()
			out.Zones = zones
			return stepOK(out, fmt.Sprintf("discarded %d card(s)", len(ids)))
		},
	}
}

// ShuffleDeckStep permutes the deck using the snapshot's seed.
func ShuffleDeckStep(reg *Registry) Step {
	return Step{
		ID:           "shuffle",
		Summary:      "Shuffle",
		Description:  "Shuffle the deck.",
		Notification: NotifySilent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			rng, next := s.NextRand()
			out := s.Clone()
			out.Zones = ShuffleDeck(out.Zones, rng)
			out.RandSeed = next
			return stepOK(out, "deck shuffled")
		},
	}
}

// SearchFromDeckTopStep reveals the top count cards and lets the
// player add between min and max of them to the hand. Unchosen cards
// keep their order on top of the deck.
func SearchFromDeckTopStep(reg *Registry, count, min, max int) Step {
	return Step{
		ID:           "search-deck-top",
		Summary:      fmt.Sprintf("Look at top %d", count),
		Description:  fmt.Sprintf("Look at the top %d card(s) of the deck and add %d-%d to your hand.", count, min, max),
		Notification: NotifyProminent,
		Selection: &SelectionConfig{
			Min:    min,
			Max:    max,
			Prompt: fmt.Sprintf("Add %d-%d card(s) to your hand", min, max),
			Candidates: func(s *GameState) []CardInstance {
				if len(s.Zones.Deck) < count {
					return s.Zones.Deck
				}
				return s.Zones.Deck[:count]
			},
		},
		Action: func(s *GameState, selected []InstanceID) StepResult {
			if len(s.Zones.Deck) < count {
				return stepFail(s, fmt.Errorf("deck has %d cards, cannot look at %d", len(s.Zones.Deck), count))
			}
			if n := len(selected); n < min || n > max {
				return stepFail(s, fmt.Errorf("must choose between %d and %d card(s), got %d", min, max, n))
			}
			top := s.Zones.Deck[:count]
			for _, id := range selected {
				found := false
				for _, c := range top {
					if c.InstanceID == id {
						found = true
						break
					}
				}
				if !found {
					return stepFail(s, fmt.Errorf("card %s is not among the revealed cards", id))
				}
			}
			out := s.Clone()
			for _, id := range selected {
				out.Zones = MoveCard(out.Zones, id, LocationHand)
			}
			return stepOK(out, fmt.Sprintf("added %d card(s) to hand", len(selected)))
		},
	}
}

// SearchByPredicateStep lets the player add matching deck cards to the
// hand, then shuffles.
func SearchByPredicateStep(reg *Registry, prompt string, min, max int, pred func(CardData) bool) Step {
	matches := func(s *GameState) []CardInstance {
		var out []CardInstance
		for _, c := range s.Zones.Deck {
			data, ok := reg.Card(c.CardID)
			if ok && pred(data) {
				out = append(out, c)
			}
		}
		return out
	}
	return Step{
		ID:           "search-deck",
		Summary:      "Search the deck",
		Description:  prompt,
		Notification: NotifyProminent,
		Selection: &SelectionConfig{
			Min:        min,
			Max:        max,
			Prompt:     prompt,
			Candidates: matches,
		},
		Action: func(s *GameState, selected []InstanceID) StepResult {
			if n := len(selected); n < min || n > max {
				return stepFail(s, fmt.Errorf("must choose between %d and %d card(s), got %d", min, max, n))
			}
			valid := matches(s)
			for _, id := range selected {
				found := false
				for _, c := range valid {
					if c.InstanceID == id {
						found = true
						break
					}
				}
				if !found {
					return stepFail(s, fmt.Errorf("card %s does not match the search condition", id))
				}
			}
			out := s.Clone()
			for _, id := range selected {
				out.Zones = MoveCard(out.Zones, id, LocationHand)
			}
			shuffled := ShuffleDeckStep(reg).Action(out, nil)
			if !shuffled.Success {
				return shuffled
			}
			return stepOK(shuffled.State, fmt.Sprintf("added %d card(s) to hand", len(selected)))
		},
	}
}

// ReturnToDeckStep asks the player to return between min and max hand
// cards to the deck, then builds follow-up steps from the count
// actually returned (e.g. "draw the same number").
func ReturnToDeckStep(reg *Registry, min, max int, cancelable bool, followUp func(returned int) []Step) Step {
	return Step{
		ID:           "return-to-deck",
		Summary:      "Return cards to the deck",
		Description:  fmt.Sprintf("Return %d-%d card(s) from your hand to the deck.", min, max),
		Notification: NotifyProminent,
		Selection: &SelectionConfig{
			Min:        min,
			Max:        max,
			Cancelable: cancelable,
			Prompt:     fmt.Sprintf("Return %d-%d card(s) to the deck", min, max),
			Candidates: func(s *GameState) []CardInstance {
				return s.Zones.Hand
			},
		},
		Action: func(s *GameState, selected []InstanceID) StepResult {
			if n := len(selected); n < min || n > max {
				return stepFail(s, fmt.Errorf("must return between %d and %d card(s), got %d", min, max, n))
			}
			for _, id := range selected {
				inHand := false
				for _, c := range s.Zones.Hand {
					if c.InstanceID == id {
						inHand = true
						break
					}
				}
				if !inHand {
					return stepFail(s, fmt.Errorf("card %s is not in the hand", id))
				}
			}
			zones, err := ReturnToDeck(s.Zones, selected)
			if err != nil {
				return stepFail(s, err)
			}
			out := s.Clone()
			out.Zones = zones
			res := stepOK(out, fmt.Sprintf("returned %d card(s) to the deck", len(selected)))
			if followUp != nil {
				res.Next = followUp(len(selected))
			}
			return res
		},
	}
}

// GainLifeStep adds life points to one side, capped at MaxLP.
func GainLifeStep(reg *Registry, amount int, side Side) Step {
	return Step{
		ID:           "gain-life",
		Summary:      fmt.Sprintf("Gain %d LP", amount),
		Description:  fmt.Sprintf("The %s gains %d life points.", side, amount),
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			if amount < 0 {
				return stepFail(s, fmt.Errorf("cannot gain %d life points", amount))
			}
			out := s.Clone()
			lp := &out.LifePoints.Player
			if side == SideOpponent {
				lp = &out.LifePoints.Opponent
			}
			*lp += amount
			if *lp > MaxLP {
				*lp = MaxLP
			}
			return stepOK(out, fmt.Sprintf("%s gained %d LP", side, amount))
		},
	}
}

// DealDamageStep inflicts effect damage on one side, floored at zero.
// Damage negation (snapshot flag or a live status rule) reduces it to
// nothing.
func DealDamageStep(reg *Registry, amount int, side Side) Step {
	return Step{
		ID:           "deal-damage",
		Summary:      fmt.Sprintf("Inflict %d damage", amount),
		Description:  fmt.Sprintf("Inflict %d effect damage to the %s.", amount, side),
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			if amount < 0 {
				return stepFail(s, fmt.Errorf("cannot inflict %d damage", amount))
			}
			if DamageNegated(reg, s) {
				return stepOK(s, "effect damage was negated")
			}
			out := s.Clone()
			lp := &out.LifePoints.Player
			if side == SideOpponent {
				lp = &out.LifePoints.Opponent
			}
			*lp -= amount
			if *lp < 0 {
				*lp = 0
			}
			return stepOK(out, fmt.Sprintf("%s took %d damage", side, amount))
		},
	}
}

// PayLifeStep pays a life-point cost. Unlike damage, a payment that
// cannot be afforded fails, and negation never applies.
func PayLifeStep(reg *Registry, amount int, side Side) Step {
	return Step{
		ID:           "pay-life",
		Summary:      fmt.Sprintf("Pay %d LP", amount),
		Description:  fmt.Sprintf("Pay %d life points.", amount),
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			lp := s.LifePoints.Player
			if side == SideOpponent {
				lp = s.LifePoints.Opponent
			}
			if lp < amount {
				return stepFail(s, fmt.Errorf("cannot pay %d life points with %d remaining", amount, lp))
			}
			out := s.Clone()
			if side == SideOpponent {
				out.LifePoints.Opponent -= amount
			} else {
				out.LifePoints.Player -= amount
			}
			return stepOK(out, fmt.Sprintf("paid %d LP", amount))
		},
	}
}

// SetDamageNegationStep turns on effect-damage negation until the End
// Phase clears it.
func SetDamageNegationStep(reg *Registry) Step {
	return Step{
		ID:           "damage-negation",
		Summary:      "Negate effect damage",
		Description:  "Neither side takes effect damage until the End Phase.",
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			out := s.Clone()
			out.DamageNegation = true
			return stepOK(out, "effect damage is negated until the End Phase")
		},
	}
}

// QueueEndPhaseStep defers another step until the turn reaches the End
// Phase.
func QueueEndPhaseStep(reg *Registry, deferred Step) Step {
	return Step{
		ID:           "queue-end-phase",
		Summary:      "Queue an End Phase effect",
		Description:  fmt.Sprintf("At the End Phase: %s", deferred.Summary),
		Notification: NotifySilent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			out := s.Clone()
			out.PendingEndPhaseSteps = append(out.PendingEndPhaseSteps, deferred)
			return stepOK(out, fmt.Sprintf("queued for the End Phase: %s", deferred.Summary))
		},
	}
}

// RecordOncePerTurnStep marks a hard once-per-turn effect as used.
func RecordOncePerTurnStep(reg *Registry, id CardID) Step {
	return Step{
		ID:           "record-once-per-turn",
		Summary:      "Record once-per-turn use",
		Description:  fmt.Sprintf("Record that %s was activated this turn.", reg.CardName(id)),
		Notification: NotifySilent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			if s.OncePerTurnUsed(id) {
				return stepFail(s, fmt.Errorf("%s was already activated this turn", reg.CardName(id)))
			}
			out := s.Clone()
			out.ActivatedOncePerTurn[id] = struct{}{}
			return stepOK(out, "")
		},
	}
}

// RecordIgnitionUseStep marks a per-copy ignition effect as used.
func RecordIgnitionUseStep(reg *Registry, id InstanceID, key EffectKey) Step {
	return Step{
		ID:           "record-ignition-use",
		Summary:      "Record ignition effect use",
		Description:  "Record that this copy's ignition effect was activated this turn.",
		Notification: NotifySilent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			if s.IgnitionUsed(key) {
				return stepFail(s, fmt.Errorf("effect %s was already activated this turn", key))
			}
			return stepOK(s.withIgnitionRecorded(id, key), "")
		},
	}
}

// RemoveCountersStep spends n counters from a field card.
func RemoveCountersStep(reg *Registry, id InstanceID, t CounterType, n int) Step {
	return Step{
		ID:           "remove-counters",
		Summary:      fmt.Sprintf("Remove %d %s counter(s)", n, t),
		Description:  fmt.Sprintf("Remove %d %s counter(s) as a cost.", n, t),
		Notification: NotifyInfo,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			card, ok := s.Zones.FindCard(id)
			if !ok || card.Field == nil {
				return stepFail(s, fmt.Errorf("card %s is not on the field", id))
			}
			if card.Field.CounterCount(t) < n {
				return stepFail(s, fmt.Errorf("card has %d %s counter(s), need %d", card.Field.CounterCount(t), t, n))
			}
			out := s.Clone()
			zone := out.Zones.zoneFor(card.Location)
			for i := range *zone {
				if (*zone)[i].InstanceID == id {
					(*zone)[i].Field.Counters[t] -= n
				}
			}
			return stepOK(out, fmt.Sprintf("removed %d %s counter(s)", n, t))
		},
	}
}

// SendSelfToGraveyardStep is the terminal step of a resolved normal
// spell. It is a no-op if the card already left the field during
// resolution.
func SendSelfToGraveyardStep(reg *Registry, id InstanceID) Step {
	return Step{
		ID:           "send-to-graveyard",
		Summary:      "Send to graveyard",
		Description:  "Send the resolved card to the graveyard.",
		Notification: NotifySilent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			card, ok := s.Zones.FindCard(id)
			if !ok || !onFieldLocation(card.Location) {
				return stepOK(s, "")
			}
			out := s.Clone()
			out.Zones = SendToGraveyard(out.Zones, id)
			return stepOK(out, fmt.Sprintf("%s was sent to the graveyard", reg.CardName(card.CardID)))
		},
	}
}
