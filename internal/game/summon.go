package game

import "fmt"

// SummonMonster normal-summons a monster from the hand to the main
// monster zone, face-up in attack position. It consumes one normal
// summon for the turn. Tribute requirements are outside the reduced
// ruleset.
type SummonMonster struct {
	Registry   *Registry
	InstanceID InstanceID
}

// NewSummonMonster builds the command for one hand card.
func NewSummonMonster(reg *Registry, id InstanceID) *SummonMonster {
	return &SummonMonster{Registry: reg, InstanceID: id}
}

func (c *SummonMonster) Name() string { return "SummonMonster" }

func (c *SummonMonster) CanExecute(s *GameState) ValidationResult {
	if v := checkGameLive(s); !v.Valid {
		return v
	}
	if s.Phase != PhaseMain1 {
		return Invalid(CodeNotMainPhase, "monsters can only be summoned during Main Phase 1")
	}
	card, v := findInHand(s, c.InstanceID)
	if !v.Valid {
		return v
	}
	if card.Type != CardTypeMonster {
		return Invalid(CodeWrongCardType, fmt.Sprintf("%s is not a monster", c.Registry.CardName(card.CardID)))
	}
	if len(s.Zones.MonsterZone) >= MonsterZoneCapacity {
		return Invalid(CodeMonsterZoneFull, "the monster zone is full")
	}
	if s.NormalSummonsUsed >= s.NormalSummonLimit {
		return Invalid(CodeSummonLimitReached, "you have already normal summoned this turn")
	}
	if v := CheckActionPermissions(c.Registry, s, c); !v.Valid {
		return v
	}
	return OK()
}

func (c *SummonMonster) Execute(s *GameState) CommandResult {
	if v := c.CanExecute(s); !v.Valid {
		return failure(s, v)
	}
	card, _ := s.Zones.FindCard(c.InstanceID)
	out := s.Clone()
	out.Zones = MoveCard(out.Zones, c.InstanceID, LocationMonsterZone)
	out.NormalSummonsUsed++
	return CommandResult{
		Success: true,
		State:   out,
		Message: fmt.Sprintf("summoned %s", c.Registry.CardName(card.CardID)),
	}
}
