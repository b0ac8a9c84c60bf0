package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawCardsPreservesOrder(t *testing.T) {
	deck := paddedDeck(5)
	z := Zones{Deck: deck}

	out, drawn, err := DrawCards(z, 3)
	require.NoError(t, err)
	require.Len(t, drawn, 3)
	assert.Equal(t, deck[0].InstanceID, out.Hand[0].InstanceID)
	assert.Equal(t, deck[1].InstanceID, out.Hand[1].InstanceID)
	assert.Equal(t, deck[2].InstanceID, out.Hand[2].InstanceID)
	assert.Len(t, out.Deck, 2)
	for _, c := range out.Hand {
		assert.Equal(t, LocationHand, c.Location)
		assert.Nil(t, c.Field)
	}
}

func TestDrawCardsFailsAtomically(t *testing.T) {
	z := Zones{Deck: paddedDeck(2)}

	out, drawn, err := DrawCards(z, 3)
	require.Error(t, err)
	assert.Nil(t, drawn)
	assert.Len(t, out.Deck, 2)
	assert.Empty(t, out.Hand)
}

func TestDrawCardsDoesNotTouchInput(t *testing.T) {
	z := Zones{Deck: paddedDeck(4)}

	_, _, err := DrawCards(z, 2)
	require.NoError(t, err)
	assert.Len(t, z.Deck, 4, "input zones must be untouched")
	assert.Empty(t, z.Hand)
}

func TestMoveCardToFieldGetsFreshState(t *testing.T) {
	c := monster(testDrakeID)
	c.Location = LocationHand
	z := Zones{Hand: []CardInstance{c}}

	out := MoveCard(z, c.InstanceID, LocationMonsterZone)
	require.Len(t, out.MonsterZone, 1)
	moved := out.MonsterZone[0]
	assert.Equal(t, LocationMonsterZone, moved.Location)
	require.NotNil(t, moved.Field)
	assert.Equal(t, FaceUp, moved.Field.Position)
	assert.True(t, moved.Field.PlacedThisTurn)
}

func TestMoveCardOffFieldDropsState(t *testing.T) {
	c := placed(monster(testDrakeID), LocationMonsterZone)
	z := Zones{MonsterZone: []CardInstance{c}}

	out := SendToGraveyard(z, c.InstanceID)
	require.Len(t, out.Graveyard, 1)
	assert.Nil(t, out.Graveyard[0].Field)
	assert.Empty(t, out.MonsterZone)
}

func TestMustRemovePanicsOnAbsentCard(t *testing.T) {
	z := Zones{}
	assert.Panics(t, func() {
		z.mustRemove("no-such-instance")
	})
}

func TestReturnToDeckGoesToBottom(t *testing.T) {
	deck := paddedDeck(3)
	held := monster(testDrakeID)
	held.Location = LocationHand
	z := Zones{Deck: deck, Hand: []CardInstance{held}}

	out, err := ReturnToDeck(z, []InstanceID{held.InstanceID})
	require.NoError(t, err)
	require.Len(t, out.Deck, 4)
	assert.Equal(t, held.InstanceID, out.Deck[3].InstanceID)
	assert.Empty(t, out.Hand)
}

func TestDiscardCardsRejectsNonHandCard(t *testing.T) {
	z := Zones{Deck: paddedDeck(2)}

	_, err := DiscardCards(z, []InstanceID{z.Deck[0].InstanceID})
	require.Error(t, err)
}

func TestShuffleDeckIsDeterministicPerSeed(t *testing.T) {
	z := Zones{Deck: paddedDeck(20)}

	a := ShuffleDeck(z, rand.New(rand.NewSource(7)))
	b := ShuffleDeck(z, rand.New(rand.NewSource(7)))
	for i := range a.Deck {
		assert.Equal(t, a.Deck[i].InstanceID, b.Deck[i].InstanceID)
	}
}

func TestValidateCatchesDuplicateInstance(t *testing.T) {
	c := monster(testDrakeID)
	c.Location = LocationDeck
	z := Zones{Deck: []CardInstance{c, c}}
	require.Error(t, z.Validate())
}

func TestValidateCatchesCapacityOverflow(t *testing.T) {
	var zone []CardInstance
	for i := 0; i < MonsterZoneCapacity+1; i++ {
		zone = append(zone, placed(monster(testDrakeID), LocationMonsterZone))
	}
	z := Zones{MonsterZone: zone}
	require.Error(t, z.Validate())
}

func TestValidateCatchesLocationMismatch(t *testing.T) {
	c := monster(testDrakeID)
	c.Location = LocationHand
	z := Zones{Deck: []CardInstance{c}}
	require.Error(t, z.Validate())
}
