package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okmethod/ygo-solitaire-sub001/internal/cards"
	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
	"github.com/okmethod/ygo-solitaire-sub001/internal/log"
)

// newSession deals the named cards into the hand over a padded deck
// and jumps to Main Phase 1.
func newSession(hand []game.CardID, deckSize int) *Session {
	reg := cards.NewRegistry()
	deck := make([]game.CardID, deckSize)
	for i := range deck {
		deck[i] = cards.ExodiaRightArm
	}
	s := game.NewGameState(game.BuildDeck(reg, deck), 5)
	s.Phase = game.PhaseMain1
	for _, c := range game.BuildDeck(reg, hand) {
		c.Location = game.LocationHand
		s.Zones.Hand = append(s.Zones.Hand, c)
	}
	return New(reg, s, nil)
}

func handInstance(t *testing.T, sess *Session, id game.CardID) game.InstanceID {
	t.Helper()
	for _, c := range sess.State().Zones.Hand {
		if c.CardID == id {
			return c.InstanceID
		}
	}
	t.Fatalf("card %d not in hand", id)
	return ""
}

func TestDispatchRunsEffectToCompletion(t *testing.T) {
	sess := newSession([]game.CardID{cards.PotOfGreed}, 5)

	res, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.PotOfGreed)))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.AwaitingSelection)
	assert.NotEmpty(t, res.Messages)

	assert.Len(t, sess.State().Zones.Hand, 2)
	assert.False(t, sess.Awaiting())
}

func TestDispatchSurfacesValidationFailure(t *testing.T) {
	sess := newSession([]game.CardID{cards.PotOfGreed}, 1)
	before := sess.State()

	res, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.PotOfGreed)))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, game.CodeInsufficientDeck, res.Code)
	assert.Same(t, before, sess.State())
}

func TestDispatchRejectedWhileSelectionPending(t *testing.T) {
	sess := newSession([]game.CardID{cards.GracefulCharity}, 5)

	res, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.GracefulCharity)))
	require.NoError(t, err)
	require.True(t, res.AwaitingSelection)
	assert.Equal(t, 2, res.MinSelect)
	require.True(t, sess.Awaiting())

	_, err = sess.Dispatch(game.NewAdvancePhase(sess.Registry()))
	assert.ErrorIs(t, err, ErrSelectionPending)
}

func TestSubmitSelectionResumes(t *testing.T) {
	sess := newSession([]game.CardID{cards.GracefulCharity}, 5)

	res, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.GracefulCharity)))
	require.NoError(t, err)
	require.True(t, res.AwaitingSelection)
	require.Len(t, res.Candidates, 3)

	res, err = sess.SubmitSelection([]game.InstanceID{res.Candidates[0].InstanceID, res.Candidates[1].InstanceID})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.AwaitingSelection)
	assert.False(t, sess.Awaiting())
	assert.Len(t, sess.State().Zones.Hand, 1)
}

func TestSubmitSelectionOutOfBoundsReprompts(t *testing.T) {
	sess := newSession([]game.CardID{cards.GracefulCharity}, 5)

	res, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.GracefulCharity)))
	require.NoError(t, err)
	require.True(t, res.AwaitingSelection)
	pick := res.Candidates[0].InstanceID

	// One card is not enough; the step stays suspended and explains.
	res, err = sess.SubmitSelection([]game.InstanceID{pick})
	require.NoError(t, err)
	assert.True(t, res.AwaitingSelection)
	assert.NotEmpty(t, res.Message)
	assert.True(t, sess.Awaiting())
}

func TestSubmitSelectionWithoutSuspension(t *testing.T) {
	sess := newSession(nil, 3)
	_, err := sess.SubmitSelection(nil)
	assert.ErrorIs(t, err, ErrNoSelectionPending)

	_, err = sess.CancelSelection()
	assert.ErrorIs(t, err, ErrNoSelectionPending)
}

func TestCancelSelection(t *testing.T) {
	sess := newSession([]game.CardID{cards.MagicalMallet, cards.PotOfGreed}, 3)

	res, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.MagicalMallet)))
	require.NoError(t, err)
	require.True(t, res.AwaitingSelection)
	require.True(t, res.Cancelable)

	res, err = sess.CancelSelection()
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, sess.Awaiting())
}

func TestJournalRecordsTheMatch(t *testing.T) {
	sess := newSession([]game.CardID{cards.PotOfGreed}, 5)

	_, err := sess.Dispatch(game.NewActivateSpell(sess.Registry(), handInstance(t, sess, cards.PotOfGreed)))
	require.NoError(t, err)
	_, err = sess.Dispatch(game.NewAdvancePhase(sess.Registry()))
	require.NoError(t, err)

	events := sess.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, log.EventActivate, events[0].Type)

	var phases int
	for _, e := range events {
		if e.Type == log.EventPhaseChange {
			phases++
		}
	}
	assert.Equal(t, 1, phases)
}

func TestExtraLoggerMirrorsTheJournal(t *testing.T) {
	reg := cards.NewRegistry()
	s := game.NewGameState(game.BuildDeck(reg, []game.CardID{cards.ExodiaRightArm, cards.ExodiaRightArm, cards.ExodiaRightArm}), 5)
	s.Phase = game.PhaseMain1
	mirror := log.NewMemoryLogger()
	sess := New(reg, s, mirror)

	_, err := sess.Dispatch(game.NewShuffleDeck(reg))
	require.NoError(t, err)

	assert.Equal(t, sess.Events(), mirror.Events())
}
