package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handPairRule is a test victory condition: win when two copies of the
// rule's card sit in the hand.
type handPairRule struct{ id CardID }

func (r handPairRule) Kind() RuleKind { return RuleVictoryCondition }

func (r handPairRule) CanApply(s *GameState, source CardInstance) bool {
	return source.Location == LocationHand
}

func (r handPairRule) Evaluate(s *GameState, source CardInstance) (GameResult, bool) {
	n := 0
	for _, c := range s.Zones.Hand {
		if c.CardID == r.id {
			n++
		}
	}
	if n < 2 {
		return GameResult{}, false
	}
	return GameResult{GameOver: true, Winner: SidePlayer, Reason: "pair assembled"}, true
}

func TestEvaluateVictoryPlayerLPZero(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.LifePoints.Player = 0

	out := EvaluateVictory(reg, s)
	require.True(t, out.Result.GameOver)
	assert.Equal(t, SideOpponent, out.Result.Winner)
	assert.Equal(t, ReasonLifePointsZero, out.Result.Reason)
	assert.False(t, s.Result.GameOver, "input snapshot untouched")
}

func TestEvaluateVictoryOpponentLPZero(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.LifePoints.Opponent = 0

	out := EvaluateVictory(reg, s)
	require.True(t, out.Result.GameOver)
	assert.Equal(t, SidePlayer, out.Result.Winner)
}

func TestEvaluateVictoryIdempotent(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, nil)
	s.LifePoints.Opponent = 0

	out := EvaluateVictory(reg, s)
	again := EvaluateVictory(reg, out)
	assert.Same(t, out, again)
}

func TestEvaluateVictoryLiveGameUnchanged(t *testing.T) {
	reg := testRegistry()
	s := newTestState(nil, paddedDeck(3))
	assert.Same(t, s, EvaluateVictory(reg, s))
}

func TestEvaluateVictoryHandRule(t *testing.T) {
	reg := testRegistry()
	reg.RegisterRules(testDrakeID, handPairRule{id: testDrakeID})

	one := newTestState([]CardInstance{monster(testDrakeID)}, nil)
	assert.False(t, EvaluateVictory(reg, one).Result.GameOver)

	two := newTestState([]CardInstance{monster(testDrakeID), monster(testDrakeID)}, nil)
	out := EvaluateVictory(reg, two)
	require.True(t, out.Result.GameOver)
	assert.Equal(t, "pair assembled", out.Result.Reason)
}
