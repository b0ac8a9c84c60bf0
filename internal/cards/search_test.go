package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
)

func TestTerraformingFetchesAFieldSpell(t *testing.T) {
	reg := NewRegistry()
	s := newDuel(reg, []game.CardID{Terraforming}, []game.CardID{fillerID, ChickenGame, fillerID})

	r := start(t, reg, s, game.NewActivateSpell(reg, inHand(t, s, Terraforming)))
	require.Equal(t, game.ResolverAwaitingSelection, r.Status())

	_, candidates, ok := r.PendingSelection()
	require.True(t, ok)
	require.Len(t, candidates, 1)
	assert.Equal(t, ChickenGame, candidates[0].CardID)

	require.Equal(t, game.ResolverDone, r.Resume([]game.InstanceID{candidates[0].InstanceID}))
	out := r.State()
	assert.Equal(t, 1, countIn(out.Zones.Hand, ChickenGame))
	assert.Len(t, out.Zones.Deck, 2)
	assert.Equal(t, 1, countIn(out.Zones.Graveyard, Terraforming))
}

func TestTerraformingNeedsAFieldSpellInDeck(t *testing.T) {
	reg := NewRegistry()
	s := newDuel(reg, []game.CardID{Terraforming}, fillers(4))

	res := game.NewActivateSpell(reg, inHand(t, s, Terraforming)).Execute(s)
	require.False(t, res.Success)
	assert.Equal(t, game.CodeNoValidTarget, res.Code)
}

func TestToonTableOfContentsFindsToonCards(t *testing.T) {
	reg := NewRegistry()
	s := newDuel(reg, []game.CardID{ToonTableOfContents}, []game.CardID{ToonWorld, fillerID, ToonTableOfContents})

	r := start(t, reg, s, game.NewActivateSpell(reg, inHand(t, s, ToonTableOfContents)))
	require.Equal(t, game.ResolverAwaitingSelection, r.Status())

	_, candidates, ok := r.PendingSelection()
	require.True(t, ok)
	// Both Toon World and the second Table of Contents qualify.
	require.Len(t, candidates, 2)

	var world game.InstanceID
	for _, c := range candidates {
		if c.CardID == ToonWorld {
			world = c.InstanceID
		}
	}
	require.NotEmpty(t, world)

	require.Equal(t, game.ResolverDone, r.Resume([]game.InstanceID{world}))
	assert.Equal(t, 1, countIn(r.State().Zones.Hand, ToonWorld))
}
