package game

import (
	"fmt"
	"math/rand"
)

// Location names the zone that physically contains a card.
type Location int

const (
	LocationDeck Location = iota
	LocationHand
	LocationMonsterZone
	LocationSpellTrapZone
	LocationFieldZone
	LocationGraveyard
	LocationBanished
)

func (l Location) String() string {
	switch l {
	case LocationDeck:
		return "Deck"
	case LocationHand:
		return "Hand"
	case LocationMonsterZone:
		return "Monster Zone"
	case LocationSpellTrapZone:
		return "Spell & Trap Zone"
	case LocationFieldZone:
		return "Field Zone"
	case LocationGraveyard:
		return "Graveyard"
	case LocationBanished:
		return "Banished"
	default:
		return "Unknown"
	}
}

// Zone capacity ceilings. Deck, hand, graveyard, and banished are unbounded.
const (
	MonsterZoneCapacity   = 5
	SpellTrapZoneCapacity = 5
	FieldZoneCapacity     = 1
)

// Zones holds every card in the match, partitioned by zone. The top of
// the deck is index 0. All operations on Zones are pure: they return a
// new value and never touch the receiver's backing storage.
type Zones struct {
	Deck          []CardInstance
	Hand          []CardInstance
	MonsterZone   []CardInstance
	SpellTrapZone []CardInstance
	FieldZone     []CardInstance
	Graveyard     []CardInstance
	Banished      []CardInstance
}

func cloneCards(cards []CardInstance) []CardInstance {
	if cards == nil {
		return nil
	}
	out := make([]CardInstance, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}

// Clone deep-copies all zones.
func (z Zones) Clone() Zones {
	return Zones{
		Deck:          cloneCards(z.Deck),
		Hand:          cloneCards(z.Hand),
		MonsterZone:   cloneCards(z.MonsterZone),
		SpellTrapZone: cloneCards(z.SpellTrapZone),
		FieldZone:     cloneCards(z.FieldZone),
		Graveyard:     cloneCards(z.Graveyard),
		Banished:      cloneCards(z.Banished),
	}
}

// zoneFor returns the slice backing the given location.
func (z *Zones) zoneFor(loc Location) *[]CardInstance {
	switch loc {
	case LocationDeck:
		return &z.Deck
	case LocationHand:
		return &z.Hand
	case LocationMonsterZone:
		return &z.MonsterZone
	case LocationSpellTrapZone:
		return &z.SpellTrapZone
	case LocationFieldZone:
		return &z.FieldZone
	case LocationGraveyard:
		return &z.Graveyard
	case LocationBanished:
		return &z.Banished
	default:
		panic(fmt.Sprintf("unknown location %d", loc))
	}
}

// allLocations is the fixed iteration order for zone scans.
var allLocations = []Location{
	LocationDeck, LocationHand, LocationMonsterZone, LocationSpellTrapZone,
	LocationFieldZone, LocationGraveyard, LocationBanished,
}

// FindCard locates an instance anywhere in the zones.
func (z Zones) FindCard(id InstanceID) (CardInstance, bool) {
	for _, loc := range allLocations {
		for _, c := range *z.zoneFor(loc) {
			if c.InstanceID == id {
				return c, true
			}
		}
	}
	return CardInstance{}, false
}

// mustRemove extracts an instance from whatever zone contains it.
// Absence is a programming error: callers are required to have
// validated the card's location already.
func (z *Zones) mustRemove(id InstanceID) CardInstance {
	for _, loc := range allLocations {
		zone := z.zoneFor(loc)
		for i, c := range *zone {
			if c.InstanceID == id {
				*zone = append((*zone)[:i:i], (*zone)[i+1:]...)
				return c
			}
		}
	}
	panic(fmt.Sprintf("card not found in any zone: %s", id))
}

// onFieldLocation reports whether cards in the location carry field state.
func onFieldLocation(loc Location) bool {
	return loc == LocationMonsterZone || loc == LocationSpellTrapZone || loc == LocationFieldZone
}

// DrawCards moves the top n cards of the deck to the hand, preserving
// order. If the deck holds fewer than n cards the draw fails atomically
// and the input zones are returned unchanged.
func DrawCards(z Zones, n int) (Zones, []CardInstance, error) {
	if n < 0 {
		return z, nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if len(z.Deck) < n {
		return z, nil, fmt.Errorf("deck has %d cards, cannot draw %d", len(z.Deck), n)
	}
	out := z.Clone()
	drawn := out.Deck[:n]
	out.Deck = out.Deck[n:]
	for i := range drawn {
		drawn[i].Location = LocationHand
		drawn[i].Field = nil
	}
	out.Hand = append(out.Hand, drawn...)
	return out, drawn, nil
}

// MoveCard moves one instance to the target zone, replacing its
// location and field state. Cards entering a field zone face-up get a
// fresh FieldState; cards leaving the field lose it. Panics if the
// instance is absent from every zone.
func MoveCard(z Zones, id InstanceID, to Location) Zones {
	out := z.Clone()
	card := out.mustRemove(id)
	card.Location = to
	if onFieldLocation(to) {
		card.Field = &FieldState{
			Position:         FaceUp,
			PlacedThisTurn:   true,
			Counters:         make(map[CounterType]int),
			ActivatedEffects: make(map[EffectKey]struct{}),
		}
	} else {
		card.Field = nil
	}
	zone := out.zoneFor(to)
	*zone = append(*zone, card)
	return out
}

// SendToGraveyard moves one instance to the graveyard. Panics if the
// instance is absent from every zone.
func SendToGraveyard(z Zones, id InstanceID) Zones {
	return MoveCard(z, id, LocationGraveyard)
}

// DiscardCards sends the given hand cards to the graveyard. Fails
// without effect if any id is not in the hand.
func DiscardCards(z Zones, ids []InstanceID) (Zones, error) {
	for _, id := range ids {
		found := false
		for _, c := range z.Hand {
			if c.InstanceID == id {
				found = true
				break
			}
		}
		if !found {
			return z, fmt.Errorf("card %s is not in the hand", id)
		}
	}
	out := z
	for _, id := range ids {
		out = SendToGraveyard(out, id)
	}
	return out, nil
}

// ReturnToDeck sends the given cards to the bottom of the deck. Fails
// without effect if any id cannot be found.
func ReturnToDeck(z Zones, ids []InstanceID) (Zones, error) {
	for _, id := range ids {
		if _, ok := z.FindCard(id); !ok {
			return z, fmt.Errorf("card %s is not in any zone", id)
		}
	}
	out := z
	for _, id := range ids {
		out = MoveCard(out, id, LocationDeck)
	}
	return out, nil
}

// ShuffleDeck permutes the deck using the given source.
func ShuffleDeck(z Zones, rng *rand.Rand) Zones {
	out := z.Clone()
	rng.Shuffle(len(out.Deck), func(i, j int) {
		out.Deck[i], out.Deck[j] = out.Deck[j], out.Deck[i]
	})
	return out
}

// CardsAt returns the cards in the given zone.
func (z Zones) CardsAt(loc Location) []CardInstance {
	return *((&z).zoneFor(loc))
}

// CountAll returns the total number of instances across all zones.
func (z Zones) CountAll() int {
	n := 0
	for _, loc := range allLocations {
		n += len(*((&z).zoneFor(loc)))
	}
	return n
}

// Validate checks the structural zone invariants: globally unique
// instance ids, recorded locations matching the containing zone,
// capacity ceilings, and field state present exactly on field zones.
func (z Zones) Validate() error {
	if len(z.MonsterZone) > MonsterZoneCapacity {
		return fmt.Errorf("monster zone holds %d cards (capacity %d)", len(z.MonsterZone), MonsterZoneCapacity)
	}
	if len(z.SpellTrapZone) > SpellTrapZoneCapacity {
		return fmt.Errorf("spell & trap zone holds %d cards (capacity %d)", len(z.SpellTrapZone), SpellTrapZoneCapacity)
	}
	if len(z.FieldZone) > FieldZoneCapacity {
		return fmt.Errorf("field zone holds %d cards (capacity %d)", len(z.FieldZone), FieldZoneCapacity)
	}
	seen := make(map[InstanceID]Location)
	for _, loc := range allLocations {
		for _, c := range *((&z).zoneFor(loc)) {
			if prev, dup := seen[c.InstanceID]; dup {
				return fmt.Errorf("instance %s appears in both %s and %s", c.InstanceID, prev, loc)
			}
			seen[c.InstanceID] = loc
			if c.Location != loc {
				return fmt.Errorf("instance %s in %s records location %s", c.InstanceID, loc, c.Location)
			}
			if onFieldLocation(loc) && c.Field == nil {
				return fmt.Errorf("instance %s in %s has no field state", c.InstanceID, loc)
			}
			if !onFieldLocation(loc) && c.Field != nil {
				return fmt.Errorf("instance %s in %s carries field state", c.InstanceID, loc)
			}
		}
	}
	return nil
}
