package game

import "fmt"

// SetSpellTrap sets a spell or trap from the hand face-down. Field
// spells go to the field zone, displacing a previous field spell to
// the graveyard; everything else goes to the spell & trap zone.
// Setting does not consume the normal summon.
type SetSpellTrap struct {
	Registry   *Registry
	InstanceID InstanceID
}

// NewSetSpellTrap builds the command for one hand card.
func NewSetSpellTrap(reg *Registry, id InstanceID) *SetSpellTrap {
	return &SetSpellTrap{Registry: reg, InstanceID: id}
}

func (c *SetSpellTrap) Name() string { return "SetSpellTrap" }

func (c *SetSpellTrap) CanExecute(s *GameState) ValidationResult {
	if v := checkGameLive(s); !v.Valid {
		return v
	}
	if s.Phase != PhaseMain1 {
		return Invalid(CodeNotMainPhase, "cards can only be set during Main Phase 1")
	}
	card, v := findInHand(s, c.InstanceID)
	if !v.Valid {
		return v
	}
	if card.Type != CardTypeSpell && card.Type != CardTypeTrap {
		return Invalid(CodeWrongCardType, fmt.Sprintf("%s is not a spell or trap", c.Registry.CardName(card.CardID)))
	}
	if card.Subtype != SpellField && len(s.Zones.SpellTrapZone) >= SpellTrapZoneCapacity {
		return Invalid(CodeSpellTrapZoneFull, "the spell & trap zone is full")
	}
	if v := CheckActionPermissions(c.Registry, s, c); !v.Valid {
		return v
	}
	return OK()
}

func (c *SetSpellTrap) Execute(s *GameState) CommandResult {
	if v := c.CanExecute(s); !v.Valid {
		return failure(s, v)
	}
	card, _ := s.Zones.FindCard(c.InstanceID)
	out := s.Clone()
	target := LocationSpellTrapZone
	if card.Subtype == SpellField {
		target = LocationFieldZone
		// An occupied field zone sends its previous card to the
		// graveyard first.
		if len(out.Zones.FieldZone) > 0 {
			out.Zones = SendToGraveyard(out.Zones, out.Zones.FieldZone[0].InstanceID)
		}
	}
	out.Zones = MoveCard(out.Zones, c.InstanceID, target)
	setFacePosition(&out.Zones, c.InstanceID, FaceDown)
	return CommandResult{
		Success: true,
		State:   out,
		Message: fmt.Sprintf("set %s", c.Registry.CardName(card.CardID)),
	}
}

// setFacePosition flips a field card's face position in place on an
// already-cloned Zones value.
func setFacePosition(z *Zones, id InstanceID, pos FacePosition) {
	for _, loc := range []Location{LocationMonsterZone, LocationSpellTrapZone, LocationFieldZone} {
		zone := z.zoneFor(loc)
		for i := range *zone {
			if (*zone)[i].InstanceID == id && (*zone)[i].Field != nil {
				(*zone)[i].Field.Position = pos
			}
		}
	}
}
