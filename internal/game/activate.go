package game

import "fmt"

// ActivateSpell activates a spell card from the hand. The card moves
// to its zone face-up and the effect's activation and resolution steps
// are returned for the caller to drive. A spell with no registered
// effect goes straight to the graveyard.
type ActivateSpell struct {
	Registry   *Registry
	InstanceID InstanceID
}

// NewActivateSpell builds the command for one hand card.
func NewActivateSpell(reg *Registry, id InstanceID) *ActivateSpell {
	return &ActivateSpell{Registry: reg, InstanceID: id}
}

func (c *ActivateSpell) Name() string { return "ActivateSpell" }

func (c *ActivateSpell) CanExecute(s *GameState) ValidationResult {
	if v := checkGameLive(s); !v.Valid {
		return v
	}
	card, v := findInHand(s, c.InstanceID)
	if !v.Valid {
		return v
	}
	if card.Type != CardTypeSpell {
		return Invalid(CodeWrongCardType, fmt.Sprintf("%s is not a spell", c.Registry.CardName(card.CardID)))
	}
	if card.Subtype != SpellField && len(s.Zones.SpellTrapZone) >= SpellTrapZoneCapacity {
		return Invalid(CodeSpellTrapZoneFull, "the spell & trap zone is full")
	}
	if action, ok := c.Registry.CardActivation(card.CardID); ok {
		if v := action.CanActivate(s, card); !v.Valid {
			return v
		}
	} else if s.Phase != PhaseMain1 {
		// Effect-less spells still follow normal spell timing.
		return Invalid(CodeNotMainPhase, "spells can only be activated during Main Phase 1")
	}
	if v := CheckActionPermissions(c.Registry, s, c); !v.Valid {
		return v
	}
	return OK()
}

func (c *ActivateSpell) Execute(s *GameState) CommandResult {
	if v := c.CanExecute(s); !v.Valid {
		return failure(s, v)
	}
	card, _ := s.Zones.FindCard(c.InstanceID)
	name := c.Registry.CardName(card.CardID)

	out := s.Clone()
	target := LocationSpellTrapZone
	if card.Subtype == SpellField {
		target = LocationFieldZone
		if len(out.Zones.FieldZone) > 0 {
			out.Zones = SendToGraveyard(out.Zones, out.Zones.FieldZone[0].InstanceID)
		}
	}
	out.Zones = MoveCard(out.Zones, c.InstanceID, target)

	action, ok := c.Registry.CardActivation(card.CardID)
	if !ok {
		// Fallback: no registered behavior, the card just resolves to
		// the graveyard.
		out.Zones = SendToGraveyard(out.Zones, c.InstanceID)
		return CommandResult{
			Success: true,
			State:   out,
			Message: fmt.Sprintf("activated %s (no effect registered)", name),
		}
	}

	source, _ := out.Zones.FindCard(c.InstanceID)
	steps := append(action.ActivationSteps(out, source), action.ResolutionSteps(out, source)...)
	steps = append(steps, spellResolvedStep(c.Registry, source))
	steps = ApplyReplacements(c.Registry, out, steps)
	return CommandResult{
		Success: true,
		State:   out,
		Message: fmt.Sprintf("activated %s", name),
		Steps:   steps,
	}
}

// spellResolvedStep notifies passive hooks (e.g. spell counters) after
// a spell card finishes resolving.
func spellResolvedStep(reg *Registry, spell CardInstance) Step {
	return Step{
		ID:           "spell-resolved",
		Summary:      "Spell resolved",
		Description:  "Apply passive effects that respond to a resolved spell.",
		Notification: NotifySilent,
		Action: func(s *GameState, _ []InstanceID) StepResult {
			return stepOK(ApplySpellResolvedHooks(reg, s, spell), "")
		},
	}
}

// ActivateIgnitionEffect activates a named ignition effect of a
// face-up card on the field. Usage is recorded per copy, so two copies
// of the same card track independently.
type ActivateIgnitionEffect struct {
	Registry   *Registry
	InstanceID InstanceID
	EffectID   string
}

// NewActivateIgnitionEffect builds the command for one field card's effect.
func NewActivateIgnitionEffect(reg *Registry, id InstanceID, effectID string) *ActivateIgnitionEffect {
	return &ActivateIgnitionEffect{Registry: reg, InstanceID: id, EffectID: effectID}
}

func (c *ActivateIgnitionEffect) Name() string { return "ActivateIgnitionEffect" }

func (c *ActivateIgnitionEffect) CanExecute(s *GameState) ValidationResult {
	if v := checkGameLive(s); !v.Valid {
		return v
	}
	card, ok := s.Zones.FindCard(c.InstanceID)
	if !ok {
		return Invalid(CodeCardNotFound, "the card does not exist in this match")
	}
	if !onFieldLocation(card.Location) {
		return Invalid(CodeNotOnField, fmt.Sprintf("%s is not on the field", c.Registry.CardName(card.CardID)))
	}
	effect, ok := c.Registry.Ignition(card.CardID, c.EffectID)
	if !ok {
		return Invalid(CodeNoSuchEffect, fmt.Sprintf("%s has no ignition effect %q", c.Registry.CardName(card.CardID), c.EffectID))
	}
	if v := effect.CanActivate(s, card); !v.Valid {
		return v
	}
	if v := CheckActionPermissions(c.Registry, s, c); !v.Valid {
		return v
	}
	return OK()
}

func (c *ActivateIgnitionEffect) Execute(s *GameState) CommandResult {
	if v := c.CanExecute(s); !v.Valid {
		return failure(s, v)
	}
	card, _ := s.Zones.FindCard(c.InstanceID)
	effect, _ := c.Registry.Ignition(card.CardID, c.EffectID)

	// Replacement rules rewrite card activations only; an effect
	// activation cost (e.g. a field spell's pay-to-draw) is paid as
	// printed.
	steps := append(effect.ActivationSteps(s, card), effect.ResolutionSteps(s, card)...)
	return CommandResult{
		Success: true,
		State:   s,
		Message: fmt.Sprintf("activated the effect of %s", c.Registry.CardName(card.CardID)),
		Steps:   steps,
	}
}
