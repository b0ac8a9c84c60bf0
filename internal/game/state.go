package game

import (
	"fmt"
	"math/rand"
)

const (
	// StartingLP is each side's initial life points.
	StartingLP = 8000
	// MaxLP caps life-point gain.
	MaxLP = 99999
	// InitialHandSize is the number of cards drawn at match setup.
	InitialHandSize = 5
	// DefaultNormalSummonLimit is the per-turn normal summon allowance.
	DefaultNormalSummonLimit = 1
)

// LifePoints holds both sides' life-point totals.
type LifePoints struct {
	Player   int
	Opponent int
}

// GameResult records whether and how the match ended. Winner and
// Reason are set together; a live game has the zero value.
type GameResult struct {
	GameOver bool
	Winner   Side
	Reason   string
}

// GameState is one immutable snapshot of the entire match. Every
// transition produces a new snapshot; nothing ever mutates one in
// place. Copy-on-write is done through Clone.
type GameState struct {
	Zones      Zones
	LifePoints LifePoints
	Phase      Phase
	Turn       int
	Result     GameResult

	NormalSummonLimit int
	NormalSummonsUsed int

	// DamageNegation blocks effect damage until the End Phase.
	DamageNegation bool

	// ActivatedOncePerTurn tracks named effects with a hard
	// once-per-turn clause, across all copies.
	ActivatedOncePerTurn map[CardID]struct{}

	// ActivatedIgnitionEffects mirrors the per-instance bookkeeping at
	// match level so the End Phase can clear everything at once.
	ActivatedIgnitionEffects map[EffectKey]struct{}

	// PendingEndPhaseSteps run when the turn advances into the End
	// Phase (e.g. Card of Demise's hand discard).
	PendingEndPhaseSteps []Step

	// RandSeed drives deck shuffles. Each shuffle consumes the seed and
	// stores a successor, keeping snapshots deterministic and replayable.
	RandSeed int64
}

// NewGameState builds the start-of-match snapshot from a dealt deck.
// The deck is used as given; shuffle with the ShuffleDeck command or
// pass pre-shuffled cards.
func NewGameState(deck []CardInstance, seed int64) *GameState {
	s := &GameState{
		Zones:                    Zones{Deck: cloneCards(deck)},
		LifePoints:               LifePoints{Player: StartingLP, Opponent: StartingLP},
		Phase:                    PhaseDraw,
		Turn:                     1,
		NormalSummonLimit:        DefaultNormalSummonLimit,
		ActivatedOncePerTurn:     make(map[CardID]struct{}),
		ActivatedIgnitionEffects: make(map[EffectKey]struct{}),
		RandSeed:                 seed,
	}
	for i := range s.Zones.Deck {
		s.Zones.Deck[i].Location = LocationDeck
		s.Zones.Deck[i].Field = nil
	}
	return s
}

// Clone deep-copies the snapshot.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Zones = s.Zones.Clone()
	c.ActivatedOncePerTurn = make(map[CardID]struct{}, len(s.ActivatedOncePerTurn))
	for k := range s.ActivatedOncePerTurn {
		c.ActivatedOncePerTurn[k] = struct{}{}
	}
	c.ActivatedIgnitionEffects = make(map[EffectKey]struct{}, len(s.ActivatedIgnitionEffects))
	for k := range s.ActivatedIgnitionEffects {
		c.ActivatedIgnitionEffects[k] = struct{}{}
	}
	c.PendingEndPhaseSteps = append([]Step(nil), s.PendingEndPhaseSteps...)
	return &c
}

// OncePerTurnUsed reports whether the named effect was already
// activated this turn on any copy.
func (s *GameState) OncePerTurnUsed(id CardID) bool {
	_, ok := s.ActivatedOncePerTurn[id]
	return ok
}

// IgnitionUsed reports whether the given per-copy effect key was
// activated this turn.
func (s *GameState) IgnitionUsed(key EffectKey) bool {
	_, ok := s.ActivatedIgnitionEffects[key]
	return ok
}

// NextRand returns a rand source for the snapshot's seed and the
// successor seed to store in the resulting snapshot.
func (s *GameState) NextRand() (*rand.Rand, int64) {
	rng := rand.New(rand.NewSource(s.RandSeed))
	return rng, rng.Int63()
}

// Validate checks the snapshot invariants beyond the zone structure.
func (s *GameState) Validate() error {
	if s.Turn < 1 {
		return fmt.Errorf("turn %d is below 1", s.Turn)
	}
	if s.LifePoints.Player < 0 || s.LifePoints.Player > MaxLP {
		return fmt.Errorf("player life points %d out of range", s.LifePoints.Player)
	}
	if s.LifePoints.Opponent < 0 || s.LifePoints.Opponent > MaxLP {
		return fmt.Errorf("opponent life points %d out of range", s.LifePoints.Opponent)
	}
	if s.Result.GameOver && s.Result.Reason == "" {
		return fmt.Errorf("game over without a reason")
	}
	if !s.Result.GameOver && s.Result.Reason != "" {
		return fmt.Errorf("live game carries a result reason %q", s.Result.Reason)
	}
	return s.Zones.Validate()
}

// withIgnitionRecorded returns a snapshot with the effect key recorded
// both at match level and on the copy's field state.
func (s *GameState) withIgnitionRecorded(id InstanceID, key EffectKey) *GameState {
	out := s.Clone()
	out.ActivatedIgnitionEffects[key] = struct{}{}
	for _, loc := range allLocations {
		zone := out.Zones.zoneFor(loc)
		for i := range *zone {
			if (*zone)[i].InstanceID == id && (*zone)[i].Field != nil {
				if (*zone)[i].Field.ActivatedEffects == nil {
					(*zone)[i].Field.ActivatedEffects = make(map[EffectKey]struct{})
				}
				(*zone)[i].Field.ActivatedEffects[key] = struct{}{}
			}
		}
	}
	return out
}

// AddCounters returns a snapshot with n counters of the given type
// added to a field card, capped at cap. A card that is not on the field
// is left alone and the input snapshot is returned unchanged.
func AddCounters(s *GameState, id InstanceID, t CounterType, n, cap int) *GameState {
	card, ok := s.Zones.FindCard(id)
	if !ok || card.Field == nil {
		return s
	}
	have := card.Field.CounterCount(t)
	if have >= cap {
		return s
	}
	if have+n > cap {
		n = cap - have
	}
	out := s.Clone()
	zone := out.Zones.zoneFor(card.Location)
	for i := range *zone {
		if (*zone)[i].InstanceID == id {
			if (*zone)[i].Field.Counters == nil {
				(*zone)[i].Field.Counters = make(map[CounterType]int)
			}
			(*zone)[i].Field.Counters[t] += n
		}
	}
	return out
}

// clearTurnTracking wipes both once-per-turn mechanisms. Called on the
// transition into the End Phase.
func (s *GameState) clearTurnTracking() {
	s.ActivatedOncePerTurn = make(map[CardID]struct{})
	s.ActivatedIgnitionEffects = make(map[EffectKey]struct{})
	for _, loc := range []Location{LocationMonsterZone, LocationSpellTrapZone, LocationFieldZone} {
		zone := s.Zones.zoneFor(loc)
		for i := range *zone {
			if (*zone)[i].Field != nil {
				(*zone)[i].Field.ActivatedEffects = make(map[EffectKey]struct{})
			}
		}
	}
}

// clearPlacedThisTurn resets the placement flag at the start of a new turn.
func (s *GameState) clearPlacedThisTurn() {
	for _, loc := range []Location{LocationMonsterZone, LocationSpellTrapZone, LocationFieldZone} {
		zone := s.Zones.zoneFor(loc)
		for i := range *zone {
			if (*zone)[i].Field != nil {
				(*zone)[i].Field.PlacedThisTurn = false
			}
		}
	}
}
