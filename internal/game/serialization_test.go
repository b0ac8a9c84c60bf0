package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestState([]CardInstance{spell(testGreedID, SpellNormal)}, paddedDeck(6))
	s.LifePoints = LifePoints{Player: 6500, Opponent: 7200}
	s.Turn = 3
	s.NormalSummonsUsed = 1
	s.DamageNegation = true
	s.RandSeed = 9001
	s.ActivatedOncePerTurn[testTollID] = struct{}{}

	lib := placed(monster(testOracleID), LocationMonsterZone)
	key := MakeEffectKey(lib.InstanceID, "draw")
	lib.Field.Counters[CounterSpell] = 2
	lib.Field.ActivatedEffects[key] = struct{}{}
	s.Zones.MonsterZone = append(s.Zones.MonsterZone, lib)
	s.ActivatedIgnitionEffects[key] = struct{}{}

	site := spell(testSiteID, SpellField)
	site.Location = LocationFieldZone
	site.Field = &FieldState{Position: FaceDown, PlacedThisTurn: true}
	s.Zones.FieldZone = append(s.Zones.FieldZone, site)

	data, err := EncodeSnapshot(s)
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	requireValid(t, got)

	assert.Equal(t, s.LifePoints, got.LifePoints)
	assert.Equal(t, PhaseMain1, got.Phase)
	assert.Equal(t, 3, got.Turn)
	assert.Equal(t, 1, got.NormalSummonsUsed)
	assert.True(t, got.DamageNegation)
	assert.Equal(t, int64(9001), got.RandSeed)
	assert.True(t, got.OncePerTurnUsed(testTollID))
	assert.True(t, got.IgnitionUsed(key))

	require.Len(t, got.Zones.Hand, 1)
	assert.Equal(t, testGreedID, got.Zones.Hand[0].CardID)
	assert.Len(t, got.Zones.Deck, 6)

	require.Len(t, got.Zones.MonsterZone, 1)
	mz := got.Zones.MonsterZone[0]
	require.NotNil(t, mz.Field)
	assert.Equal(t, FaceUp, mz.Field.Position)
	assert.Equal(t, 2, mz.Field.Counters[CounterSpell])
	assert.True(t, mz.ActivatedThisTurn(key))

	require.Len(t, got.Zones.FieldZone, 1)
	fz := got.Zones.FieldZone[0]
	require.NotNil(t, fz.Field)
	assert.Equal(t, FaceDown, fz.Field.Position)
	assert.True(t, fz.Field.PlacedThisTurn)
}

func TestSnapshotRoundTripFinishedGame(t *testing.T) {
	s := newTestState(nil, nil)
	s.Result = GameResult{GameOver: true, Winner: SideOpponent, Reason: ReasonDeckOut}

	data, err := EncodeSnapshot(s)
	require.NoError(t, err)
	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, s.Result, got.Result)
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeSnapshotRejectsInconsistentState(t *testing.T) {
	// Life points below the legal floor must not produce a snapshot.
	bad := []byte(`{"zones":{},"lifePoints":{"Player":-1,"Opponent":8000},"turn":1,"normalSummonLimit":1,"randSeed":42}`)
	_, err := DecodeSnapshot(bad)
	assert.Error(t, err)
}
