package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot serialization restores zones, life points, phase, turn, and
// tracking sets. Queued end-phase steps hold closures and are an
// ephemeral in-turn concern; they are not carried across encode/decode.

type snapshotJSON struct {
	Zones                    zonesJSON   `json:"zones"`
	LifePoints               LifePoints  `json:"lifePoints"`
	Phase                    Phase       `json:"phase"`
	Turn                     int         `json:"turn"`
	Result                   GameResult  `json:"result"`
	NormalSummonLimit        int         `json:"normalSummonLimit"`
	NormalSummonsUsed        int         `json:"normalSummonsUsed"`
	DamageNegation           bool        `json:"damageNegation"`
	ActivatedOncePerTurn     []CardID    `json:"activatedOncePerTurnCards"`
	ActivatedIgnitionEffects []EffectKey `json:"activatedIgnitionEffectsThisTurn"`
	RandSeed                 int64       `json:"randSeed"`
}

type zonesJSON struct {
	Deck          []cardJSON `json:"deck"`
	Hand          []cardJSON `json:"hand"`
	MonsterZone   []cardJSON `json:"mainMonsterZone"`
	SpellTrapZone []cardJSON `json:"spellTrapZone"`
	FieldZone     []cardJSON `json:"fieldZone"`
	Graveyard     []cardJSON `json:"graveyard"`
	Banished      []cardJSON `json:"banished"`
}

type cardJSON struct {
	InstanceID InstanceID      `json:"instanceId"`
	CardID     CardID          `json:"cardId"`
	Type       CardType        `json:"type"`
	Subtype    SpellSubtype    `json:"subtype,omitempty"`
	Location   Location        `json:"location"`
	Field      *fieldStateJSON `json:"stateOnField,omitempty"`
}

type fieldStateJSON struct {
	Position         FacePosition        `json:"position"`
	BattlePosition   BattlePosition      `json:"battlePosition"`
	PlacedThisTurn   bool                `json:"placedThisTurn"`
	Counters         map[CounterType]int `json:"counters,omitempty"`
	ActivatedEffects []EffectKey         `json:"activatedEffects,omitempty"`
}

func cardToJSON(c CardInstance) cardJSON {
	out := cardJSON{
		InstanceID: c.InstanceID,
		CardID:     c.CardID,
		Type:       c.Type,
		Subtype:    c.Subtype,
		Location:   c.Location,
	}
	if c.Field != nil {
		f := &fieldStateJSON{
			Position:       c.Field.Position,
			BattlePosition: c.Field.BattlePosition,
			PlacedThisTurn: c.Field.PlacedThisTurn,
			Counters:       c.Field.Counters,
		}
		for k := range c.Field.ActivatedEffects {
			f.ActivatedEffects = append(f.ActivatedEffects, k)
		}
		out.Field = f
	}
	return out
}

func cardFromJSON(c cardJSON) CardInstance {
	out := CardInstance{
		InstanceID: c.InstanceID,
		CardID:     c.CardID,
		Type:       c.Type,
		Subtype:    c.Subtype,
		Location:   c.Location,
	}
	if c.Field != nil {
		f := &FieldState{
			Position:         c.Field.Position,
			BattlePosition:   c.Field.BattlePosition,
			PlacedThisTurn:   c.Field.PlacedThisTurn,
			Counters:         c.Field.Counters,
			ActivatedEffects: make(map[EffectKey]struct{}),
		}
		if f.Counters == nil {
			f.Counters = make(map[CounterType]int)
		}
		for _, k := range c.Field.ActivatedEffects {
			f.ActivatedEffects[k] = struct{}{}
		}
		out.Field = f
	}
	return out
}

func cardsToJSON(cards []CardInstance) []cardJSON {
	out := make([]cardJSON, len(cards))
	for i, c := range cards {
		out[i] = cardToJSON(c)
	}
	return out
}

func cardsFromJSON(cards []cardJSON) []CardInstance {
	if len(cards) == 0 {
		return nil
	}
	out := make([]CardInstance, len(cards))
	for i, c := range cards {
		out[i] = cardFromJSON(c)
	}
	return out
}

// EncodeSnapshot serializes a snapshot to JSON.
func EncodeSnapshot(s *GameState) ([]byte, error) {
	snap := snapshotJSON{
		Zones: zonesJSON{
			Deck:          cardsToJSON(s.Zones.Deck),
			Hand:          cardsToJSON(s.Zones.Hand),
			MonsterZone:   cardsToJSON(s.Zones.MonsterZone),
			SpellTrapZone: cardsToJSON(s.Zones.SpellTrapZone),
			FieldZone:     cardsToJSON(s.Zones.FieldZone),
			Graveyard:     cardsToJSON(s.Zones.Graveyard),
			Banished:      cardsToJSON(s.Zones.Banished),
		},
		LifePoints:        s.LifePoints,
		Phase:             s.Phase,
		Turn:              s.Turn,
		Result:            s.Result,
		NormalSummonLimit: s.NormalSummonLimit,
		NormalSummonsUsed: s.NormalSummonsUsed,
		DamageNegation:    s.DamageNegation,
		RandSeed:          s.RandSeed,
	}
	for id := range s.ActivatedOncePerTurn {
		snap.ActivatedOncePerTurn = append(snap.ActivatedOncePerTurn, id)
	}
	for key := range s.ActivatedIgnitionEffects {
		snap.ActivatedIgnitionEffects = append(snap.ActivatedIgnitionEffects, key)
	}
	return json.Marshal(snap)
}

// DecodeSnapshot restores a snapshot from JSON and validates it.
func DecodeSnapshot(data []byte) (*GameState, error) {
	var snap snapshotJSON
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	s := &GameState{
		Zones: Zones{
			Deck:          cardsFromJSON(snap.Zones.Deck),
			Hand:          cardsFromJSON(snap.Zones.Hand),
			MonsterZone:   cardsFromJSON(snap.Zones.MonsterZone),
			SpellTrapZone: cardsFromJSON(snap.Zones.SpellTrapZone),
			FieldZone:     cardsFromJSON(snap.Zones.FieldZone),
			Graveyard:     cardsFromJSON(snap.Zones.Graveyard),
			Banished:      cardsFromJSON(snap.Zones.Banished),
		},
		LifePoints:               snap.LifePoints,
		Phase:                    snap.Phase,
		Turn:                     snap.Turn,
		Result:                   snap.Result,
		NormalSummonLimit:        snap.NormalSummonLimit,
		NormalSummonsUsed:        snap.NormalSummonsUsed,
		DamageNegation:           snap.DamageNegation,
		ActivatedOncePerTurn:     make(map[CardID]struct{}),
		ActivatedIgnitionEffects: make(map[EffectKey]struct{}),
		RandSeed:                 snap.RandSeed,
	}
	for _, id := range snap.ActivatedOncePerTurn {
		s.ActivatedOncePerTurn[id] = struct{}{}
	}
	for _, key := range snap.ActivatedIgnitionEffects {
		s.ActivatedIgnitionEffects[key] = struct{}{}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("decoded snapshot is inconsistent: %w", err)
	}
	return s, nil
}
