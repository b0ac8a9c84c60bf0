package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawStepLeavesInputOnFailure(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(1))

	res := DrawStep(reg, 2).Action(s, nil)
	require.False(t, res.Success)
	assert.Same(t, s, res.State, "failed step must return the input snapshot")
	assert.Error(t, res.Err)
}

func TestDrawUpToHandSizeStep(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(1), paddedDeck(10))

	res := DrawUpToHandSizeStep(reg, 3).Action(s, nil)
	require.True(t, res.Success)
	assert.Len(t, res.State.Zones.Hand, 3)
}

func TestDrawUpToHandSizeStepFailsWhenAlreadyMet(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(4), paddedDeck(10))

	res := DrawUpToHandSizeStep(reg, 3).Action(s, nil)
	require.False(t, res.Success)
	assert.Same(t, s, res.State)
}

func TestDiscardSelectionStepExactCount(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(4), nil)

	st := DiscardSelectionStep(reg, 2)
	require.True(t, st.Interactive())

	res := st.Action(s, handIDs(s, 1))
	require.False(t, res.Success, "one card is not an exact discard of two")
	assert.Same(t, s, res.State)

	res = st.Action(s, handIDs(s, 2))
	require.True(t, res.Success)
	assert.Len(t, res.State.Zones.Hand, 2)
	assert.Len(t, res.State.Zones.Graveyard, 2)
}

func TestPayLifeStepUnaffordable(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.LifePoints.Player = 400

	res := PayLifeStep(reg, 500, SidePlayer).Action(s, nil)
	require.False(t, res.Success)
	assert.Equal(t, 400, s.LifePoints.Player)
}

func TestDealDamageStepRespectsNegation(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.DamageNegation = true

	res := DealDamageStep(reg, 3000, SidePlayer).Action(s, nil)
	require.True(t, res.Success)
	assert.Equal(t, StartingLP, res.State.LifePoints.Player)
}

func TestDealDamageFloorsAtZero(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.LifePoints.Opponent = 100

	res := DealDamageStep(reg, 500, SideOpponent).Action(s, nil)
	require.True(t, res.Success)
	assert.Equal(t, 0, res.State.LifePoints.Opponent)
}

func TestGainLifeStepCapped(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.LifePoints.Player = MaxLP - 100

	res := GainLifeStep(reg, 1000, SidePlayer).Action(s, nil)
	require.True(t, res.Success)
	assert.Equal(t, MaxLP, res.State.LifePoints.Player)
}

func TestSearchFromDeckTopRejectsDeepCard(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(5))
	deep := s.Zones.Deck[4].InstanceID

	res := SearchFromDeckTopStep(reg, 3, 1, 1).Action(s, []InstanceID{deep})
	require.False(t, res.Success)
	assert.Same(t, s, res.State)
}

func TestSearchByPredicateShufflesAfter(t *testing.T) {
	reg := testRegistry()
	deck := paddedDeck(10)
	deck = append(deck, spell(testSiteID, SpellField))
	s := newTestState(nil, deck)
	target := s.Zones.Deck[10].InstanceID

	st := SearchByPredicateStep(reg, "find the shrine", 1, 1, func(d CardData) bool {
		return d.SpellType == "Field"
	})
	res := st.Action(s, []InstanceID{target})
	require.True(t, res.Success)
	require.Len(t, res.State.Zones.Hand, 1)
	assert.Equal(t, target, res.State.Zones.Hand[0].InstanceID)
	assert.NotEqual(t, s.RandSeed, res.State.RandSeed, "the shuffle must consume the seed")
}

func TestReturnToDeckStepBuildsFollowUp(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(3), paddedDeck(5))

	st := ReturnToDeckStep(reg, 1, 3, true, func(returned int) []Step {
		return []Step{DrawStep(reg, returned)}
	})
	res := st.Action(s, handIDs(s, 2))
	require.True(t, res.Success)
	require.Len(t, res.Next, 1)
	assert.Len(t, res.State.Zones.Hand, 1)
	assert.Len(t, res.State.Zones.Deck, 7)
}

func TestQueueEndPhaseStep(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)

	res := QueueEndPhaseStep(reg, DiscardHandStep(reg)).Action(s, nil)
	require.True(t, res.Success)
	assert.Len(t, res.State.PendingEndPhaseSteps, 1)
	assert.Empty(t, s.PendingEndPhaseSteps)
}

func TestRemoveCountersStepInsufficient(t *testing.T) {
	reg := testRegistry()
	lib := placed(monster(testOracleID), LocationMonsterZone)
	lib.Field.Counters[CounterSpell] = 2
	s := newTestState(nil, nil)
	s.Zones.MonsterZone = []CardInstance{lib}

	res := RemoveCountersStep(reg, lib.InstanceID, CounterSpell, 3).Action(s, nil)
	require.False(t, res.Success)

	lib2, _ := s.Zones.FindCard(lib.InstanceID)
	assert.Equal(t, 2, lib2.Field.CounterCount(CounterSpell))
}

func TestSendSelfToGraveyardNoopWhenGone(t *testing.T) {
	reg := testRegistry()
	held := monster(testDrakeID)
	s := newTestState([]CardInstance{held}, nil)

	res := SendSelfToGraveyardStep(reg, held.InstanceID).Action(s, nil)
	require.True(t, res.Success)
	assert.Empty(t, res.State.Zones.Graveyard)
}
