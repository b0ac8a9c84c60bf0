package game

// Victory reasons.
const (
	ReasonLifePointsZero = "life points reached 0"
	ReasonDeckOut        = "deck ran out of cards to draw"
	ReasonExodia         = "all five forbidden one pieces assembled"
)

// EvaluateVictory inspects a snapshot and returns it with the Result
// filled in if the match has ended. It is pure and idempotent: calling
// it on a finished game returns the snapshot unchanged, and calling it
// redundantly is always safe.
func EvaluateVictory(reg *Registry, s *GameState) *GameState {
	if s.Result.GameOver {
		return s
	}
	if s.LifePoints.Opponent <= 0 {
		out := s.Clone()
		out.Result = GameResult{GameOver: true, Winner: SidePlayer, Reason: ReasonLifePointsZero}
		return out
	}
	if s.LifePoints.Player <= 0 {
		out := s.Clone()
		out.Result = GameResult{GameOver: true, Winner: SideOpponent, Reason: ReasonLifePointsZero}
		return out
	}
	// Alternative victory conditions carried by hand cards (the
	// forbidden one) and field cards.
	for _, rs := range append(handRuleSources(reg, s), liveRuleSources(reg, s)...) {
		vc, ok := rs.rule.(VictoryCondition)
		if !ok || !rs.rule.CanApply(s, rs.card) {
			continue
		}
		if result, over := vc.Evaluate(s, rs.card); over {
			out := s.Clone()
			out.Result = result
			return out
		}
	}
	return s
}
