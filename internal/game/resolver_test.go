package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverRunsDeterministicSequence(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(5))

	r := NewResolver(reg, s, []Step{DrawStep(reg, 1), DrawStep(reg, 2)})
	require.Equal(t, ResolverDone, r.Run())
	assert.Len(t, r.State().Zones.Hand, 3)
	assert.Len(t, r.Messages(), 2)
}

func TestResolverEmptySequenceIsDone(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)

	r := NewResolver(reg, s, nil)
	assert.Equal(t, ResolverDone, r.Status())
	assert.Same(t, s, r.State())
}

func TestResolverSuspendsOnInteractiveStep(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(3), paddedDeck(5))

	r := NewResolver(reg, s, []Step{DrawStep(reg, 1), DiscardSelectionStep(reg, 2), DrawStep(reg, 1)})
	require.Equal(t, ResolverAwaitingSelection, r.Run())

	cfg, candidates, ok := r.PendingSelection()
	require.True(t, ok)
	assert.Equal(t, 2, cfg.Min)
	assert.Equal(t, 2, cfg.Max)
	assert.Len(t, candidates, 4, "candidates reflect the hand after the first draw")

	require.Equal(t, ResolverDone, r.Resume(handIDs(r.State(), 2)))
	assert.Len(t, r.State().Zones.Graveyard, 2)
	assert.Len(t, r.State().Zones.Hand, 3) // 3 + 1 drawn - 2 discarded + 1 drawn
}

func TestResolverRejectsOutOfBoundsSelection(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(3), paddedDeck(5))

	r := NewResolver(reg, s, []Step{DiscardSelectionStep(reg, 2)})
	require.Equal(t, ResolverAwaitingSelection, r.Run())

	got := r.Resume(handIDs(r.State(), 1))
	assert.Equal(t, ResolverAwaitingSelection, got, "bad count keeps the step suspended")
	assert.Error(t, r.Err())

	require.Equal(t, ResolverDone, r.Resume(handIDs(r.State(), 2)))
	assert.NoError(t, r.Err())
}

func TestResolverReSuspendsOnWrongSelectionContent(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(2), paddedDeck(5))
	notInHand := s.Zones.Deck[0].InstanceID

	r := NewResolver(reg, s, []Step{DiscardSelectionStep(reg, 2)})
	require.Equal(t, ResolverAwaitingSelection, r.Run())

	got := r.Resume([]InstanceID{notInHand, s.Zones.Hand[0].InstanceID})
	assert.Equal(t, ResolverAwaitingSelection, got)
	assert.Error(t, r.Err())
	assert.Len(t, r.State().Zones.Hand, 2, "snapshot unchanged after rejected selection")
}

func TestResolverCancel(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(3), paddedDeck(5))

	cancelable := ReturnToDeckStep(reg, 1, 3, true, nil)
	r := NewResolver(reg, s, []Step{DrawStep(reg, 1), cancelable})
	require.Equal(t, ResolverAwaitingSelection, r.Run())

	require.NoError(t, r.Cancel())
	assert.Equal(t, ResolverAborted, r.Status())
	assert.Len(t, r.State().Zones.Hand, 4, "the completed draw stands after cancel")
}

func TestResolverCancelRejectedWhenNotCancelable(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(2), nil)

	r := NewResolver(reg, s, []Step{DiscardSelectionStep(reg, 2)})
	require.Equal(t, ResolverAwaitingSelection, r.Run())
	assert.Error(t, r.Cancel())
	assert.Equal(t, ResolverAwaitingSelection, r.Status())
}

func TestResolverSplicesFollowUpSteps(t *testing.T) {
	reg := testRegistry()
	s := newTestState(paddedDeck(2), paddedDeck(5))

	st := ReturnToDeckStep(reg, 1, 2, false, func(returned int) []Step {
		return []Step{DrawStep(reg, returned)}
	})
	r := NewResolver(reg, s, []Step{st})
	require.Equal(t, ResolverAwaitingSelection, r.Run())
	require.Equal(t, ResolverDone, r.Resume(handIDs(r.State(), 2)))

	// Returned 2, drew 2 back.
	assert.Len(t, r.State().Zones.Hand, 2)
	assert.Len(t, r.State().Zones.Deck, 5)
}

func TestResolverFailsOnDeterministicStepFailure(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(1))

	r := NewResolver(reg, s, []Step{DrawStep(reg, 5)})
	require.Equal(t, ResolverFailed, r.Run())
	assert.Error(t, r.Err())
	assert.Same(t, s, r.State())
}

func TestResolverStopsWhenGameEnds(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(5))
	s.LifePoints.Opponent = 500

	r := NewResolver(reg, s, []Step{
		DealDamageStep(reg, 1000, SideOpponent),
		DrawStep(reg, 1), // must not run
	})
	require.Equal(t, ResolverDone, r.Run())
	assert.True(t, r.State().Result.GameOver)
	assert.Equal(t, SidePlayer, r.State().Result.Winner)
	assert.Empty(t, r.State().Zones.Hand, "steps after game over are skipped")
}

func TestResolverResumeAfterCompletionFails(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(2))

	r := NewResolver(reg, s, []Step{DrawStep(reg, 1)})
	require.Equal(t, ResolverDone, r.Run())
	assert.Equal(t, ResolverFailed, r.Resume(nil))
}
