package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile is the top-level YAML structure for user deck lists.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry is a single named deck.
type DeckEntry struct {
	Name  string          `yaml:"name"`
	Cards []DeckCardEntry `yaml:"cards"`
}

// DeckCardEntry is one card id and its copy count.
type DeckCardEntry struct {
	ID    CardID `yaml:"id"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file into deck name → card id list.
func ParseDeckFile(path string) (map[string][]CardID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	decks := make(map[string][]CardID)
	for _, deck := range df.Decks {
		var ids []CardID
		for _, entry := range deck.Cards {
			for i := 0; i < entry.Count; i++ {
				ids = append(ids, entry.ID)
			}
		}
		decks[deck.Name] = ids
	}
	return decks, nil
}

// DeckByName returns the named deck from a YAML deck file, or the
// first deck when name is empty.
func DeckByName(path, name string) ([]CardID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	if len(df.Decks) == 0 {
		return nil, fmt.Errorf("deck file %s contains no decks", path)
	}
	for _, deck := range df.Decks {
		if name == "" || deck.Name == name {
			var ids []CardID
			for _, entry := range deck.Cards {
				for i := 0; i < entry.Count; i++ {
					ids = append(ids, entry.ID)
				}
			}
			return ids, nil
		}
	}
	return nil, fmt.Errorf("deck %q not found in %s", name, path)
}

// BuildDeck deals fresh card instances for the given ids, using the
// registry's metadata to fix each instance's type and subtype. Unknown
// ids are dealt as effect-less normal spells so a partial card database
// does not block a match.
func BuildDeck(reg *Registry, ids []CardID) []CardInstance {
	deck := make([]CardInstance, 0, len(ids))
	for _, id := range ids {
		t, sub := cardKind(reg, id)
		deck = append(deck, NewCardInstance(id, t, sub))
	}
	return deck
}

// cardKind derives a card's type and subtype from registry metadata.
func cardKind(reg *Registry, id CardID) (CardType, SpellSubtype) {
	data, ok := reg.Card(id)
	if !ok {
		return CardTypeSpell, SpellNormal
	}
	switch data.FrameType {
	case "spell":
		switch data.SpellType {
		case "Continuous":
			return CardTypeSpell, SpellContinuous
		case "Field":
			return CardTypeSpell, SpellField
		case "Quick-Play":
			return CardTypeSpell, SpellQuickPlay
		case "Equip":
			return CardTypeSpell, SpellEquip
		default:
			return CardTypeSpell, SpellNormal
		}
	case "trap":
		return CardTypeTrap, SpellNone
	default:
		return CardTypeMonster, SpellNone
	}
}

// NewGame deals a deck, shuffles it with the seed, and draws the
// opening hand.
func NewGame(reg *Registry, ids []CardID, seed int64) (*GameState, error) {
	if len(ids) < InitialHandSize {
		return nil, fmt.Errorf("deck has %d cards, need at least %d", len(ids), InitialHandSize)
	}
	s := NewGameState(BuildDeck(reg, ids), seed)
	rng, next := s.NextRand()
	s.Zones = ShuffleDeck(s.Zones, rng)
	s.RandSeed = next
	zones, _, err := DrawCards(s.Zones, InitialHandSize)
	if err != nil {
		return nil, err
	}
	s.Zones = zones
	return s, nil
}
