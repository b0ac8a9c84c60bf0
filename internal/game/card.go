package game

import (
	"fmt"

	"github.com/google/uuid"
)

// CardID identifies a printed card definition (its passcode).
type CardID int

// InstanceID identifies one physical copy of a card within a match.
type InstanceID string

// NewInstanceID generates a fresh random instance id.
func NewInstanceID() InstanceID {
	return InstanceID(uuid.NewString())
}

// EffectKey gates repeat activation of an ignition effect within a
// turn. It is scoped to a single card copy so that two copies of the
// same card track their activations independently.
type EffectKey string

// MakeEffectKey builds the once-per-turn key for an effect on a
// specific card copy.
func MakeEffectKey(id InstanceID, effectID string) EffectKey {
	return EffectKey(fmt.Sprintf("%s:%s", id, effectID))
}

// FieldState is the portion of a card's state that only exists while
// the card occupies a field zone. It is replaced wholesale, never
// mutated, on every zone transition.
type FieldState struct {
	Position       FacePosition
	BattlePosition BattlePosition
	PlacedThisTurn bool
	Counters       map[CounterType]int
	// ActivatedEffects records which of this copy's ignition effects
	// were used this turn.
	ActivatedEffects map[EffectKey]struct{}
}

// Clone deep-copies the field state.
func (f *FieldState) Clone() *FieldState {
	if f == nil {
		return nil
	}
	c := &FieldState{
		Position:       f.Position,
		BattlePosition: f.BattlePosition,
		PlacedThisTurn: f.PlacedThisTurn,
	}
	if f.Counters != nil {
		c.Counters = make(map[CounterType]int, len(f.Counters))
		for k, v := range f.Counters {
			c.Counters[k] = v
		}
	}
	if f.ActivatedEffects != nil {
		c.ActivatedEffects = make(map[EffectKey]struct{}, len(f.ActivatedEffects))
		for k := range f.ActivatedEffects {
			c.ActivatedEffects[k] = struct{}{}
		}
	}
	return c
}

// CounterCount returns how many counters of the given type are on the card.
func (f *FieldState) CounterCount(t CounterType) int {
	if f == nil || f.Counters == nil {
		return 0
	}
	return f.Counters[t]
}

// CardInstance is one physical card copy. Instances are created when a
// deck is dealt and persist for the life of the match; only Location
// and Field change as the card moves between zones.
type CardInstance struct {
	InstanceID InstanceID
	CardID     CardID
	Type       CardType
	Subtype    SpellSubtype
	Location   Location
	// Field is non-nil only while the card occupies the monster,
	// spell/trap, or field zone.
	Field *FieldState
}

// NewCardInstance creates a fresh copy of a printed card, placed in the deck.
func NewCardInstance(id CardID, t CardType, sub SpellSubtype) CardInstance {
	return CardInstance{
		InstanceID: NewInstanceID(),
		CardID:     id,
		Type:       t,
		Subtype:    sub,
		Location:   LocationDeck,
	}
}

// Clone deep-copies the instance, including its field state.
func (ci CardInstance) Clone() CardInstance {
	c := ci
	c.Field = ci.Field.Clone()
	return c
}

// IsFaceUp reports whether the card is face-up on the field.
func (ci CardInstance) IsFaceUp() bool {
	return ci.Field != nil && ci.Field.Position == FaceUp
}

// ActivatedThisTurn reports whether the given effect key was already
// used on this copy this turn.
func (ci CardInstance) ActivatedThisTurn(key EffectKey) bool {
	if ci.Field == nil || ci.Field.ActivatedEffects == nil {
		return false
	}
	_, ok := ci.Field.ActivatedEffects[key]
	return ok
}

func (ci CardInstance) String() string {
	return fmt.Sprintf("card %d (%s, %s)", ci.CardID, ci.Type, ci.Location)
}
