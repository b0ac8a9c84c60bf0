package game

import "fmt"

// ChainableAction is the behavior attached to an activatable card or
// effect. Activation is a two-phase protocol: CanActivate composes the
// condition checks, ActivationSteps pays costs and records usage, and
// ResolutionSteps produces the effect's payload. The caller drives the
// combined step list strictly in order.
type ChainableAction interface {
	SpellSpeed() SpellSpeed
	// IsCardActivation distinguishes activating the card itself (a
	// spell from the hand) from an ignition effect of a card already
	// on the field.
	IsCardActivation() bool
	CanActivate(s *GameState, source CardInstance) ValidationResult
	ActivationSteps(s *GameState, source CardInstance) []Step
	ResolutionSteps(s *GameState, source CardInstance) []Step
}

// SpellConfig parameterizes one spell card's behavior. The closed
// variant set (NormalSpell, ContinuousSpell, FieldSpell) shares it;
// subtype-specific timing lives on the variant, card-specific logic in
// the config.
type SpellConfig struct {
	Registry *Registry
	CardID   CardID

	// OncePerTurn enforces the hard "once per turn" clause across all
	// copies of the card.
	OncePerTurn bool

	// Condition is the card-specific activation predicate (deck size,
	// affordability, targets present). May be nil.
	Condition func(s *GameState, source CardInstance) ValidationResult

	// CostSteps builds the deterministic activation-phase steps (life
	// payment, counter spend). May be nil. Whether a cost is modeled
	// here or inside Condition is a per-card choice.
	CostSteps func(s *GameState, source CardInstance) []Step

	// Resolution builds the effect payload.
	Resolution func(s *GameState, source CardInstance) []Step
}

// checkCommon composes the condition phase shared by all spell
// variants: game live, main phase timing, once-per-turn, then the
// card-specific predicate.
func (c SpellConfig) checkCommon(s *GameState, source CardInstance) ValidationResult {
	if s.Result.GameOver {
		return Invalid(CodeGameOver, "the game is already over")
	}
	if s.Phase != PhaseMain1 {
		return Invalid(CodeNotMainPhase, fmt.Sprintf("%s can only be activated during %s", c.Registry.CardName(c.CardID), PhaseMain1))
	}
	if c.OncePerTurn && s.OncePerTurnUsed(c.CardID) {
		return Invalid(CodeOncePerTurnUsed, fmt.Sprintf("%s can only be activated once per turn", c.Registry.CardName(c.CardID)))
	}
	if c.Condition != nil {
		if v := c.Condition(s, source); !v.Valid {
			return v
		}
	}
	return OK()
}

// activationSteps builds the shared activation phase: once-per-turn
// bookkeeping first, then costs.
func (c SpellConfig) activationSteps(s *GameState, source CardInstance) []Step {
	var steps []Step
	if c.OncePerTurn {
		steps = append(steps, RecordOncePerTurnStep(c.Registry, c.CardID))
	}
	if c.CostSteps != nil {
		steps = append(steps, c.CostSteps(s, source)...)
	}
	return steps
}

// --- Variants ---

// NormalSpell resolves its payload and then goes to the graveyard.
type NormalSpell struct {
	SpellConfig
}

func (a *NormalSpell) SpellSpeed() SpellSpeed { return SpellSpeed1 }
func (a *NormalSpell) IsCardActivation() bool { return true }

func (a *NormalSpell) CanActivate(s *GameState, source CardInstance) ValidationResult {
	return a.checkCommon(s, source)
}

func (a *NormalSpell) ActivationSteps(s *GameState, source CardInstance) []Step {
	return a.activationSteps(s, source)
}

func (a *NormalSpell) ResolutionSteps(s *GameState, source CardInstance) []Step {
	var steps []Step
	if a.Resolution != nil {
		steps = a.Resolution(s, source)
	}
	return append(steps, SendSelfToGraveyardStep(a.Registry, source.InstanceID))
}

// ContinuousSpell stays face-up in the spell & trap zone after
// resolving.
type ContinuousSpell struct {
	SpellConfig
}

func (a *ContinuousSpell) SpellSpeed() SpellSpeed { return SpellSpeed1 }
func (a *ContinuousSpell) IsCardActivation() bool { return true }

func (a *ContinuousSpell) CanActivate(s *GameState, source CardInstance) ValidationResult {
	return a.checkCommon(s, source)
}

func (a *ContinuousSpell) ActivationSteps(s *GameState, source CardInstance) []Step {
	return a.activationSteps(s, source)
}

func (a *ContinuousSpell) ResolutionSteps(s *GameState, source CardInstance) []Step {
	if a.Resolution == nil {
		return nil
	}
	return a.Resolution(s, source)
}

// FieldSpell occupies the single field zone; the command layer handles
// displacing a previous field spell.
type FieldSpell struct {
	SpellConfig
}

func (a *FieldSpell) SpellSpeed() SpellSpeed { return SpellSpeed1 }
func (a *FieldSpell) IsCardActivation() bool { return true }

func (a *FieldSpell) CanActivate(s *GameState, source CardInstance) ValidationResult {
	return a.checkCommon(s, source)
}

func (a *FieldSpell) ActivationSteps(s *GameState, source CardInstance) []Step {
	return a.activationSteps(s, source)
}

func (a *FieldSpell) ResolutionSteps(s *GameState, source CardInstance) []Step {
	if a.Resolution == nil {
		return nil
	}
	return a.Resolution(s, source)
}

// IgnitionEffect is a manually activated effect of a card already on
// the field. Repeat use is tracked per copy, so two copies of the same
// card activate independently.
type IgnitionEffect struct {
	Registry *Registry
	CardID   CardID
	// EffectID distinguishes multiple ignition effects on one card.
	EffectID string

	// OncePerTurn gates the effect per copy per turn.
	OncePerTurn bool

	Condition  func(s *GameState, source CardInstance) ValidationResult
	CostSteps  func(s *GameState, source CardInstance) []Step
	Resolution func(s *GameState, source CardInstance) []Step
}

func (a *IgnitionEffect) SpellSpeed() SpellSpeed { return SpellSpeed1 }
func (a *IgnitionEffect) IsCardActivation() bool { return false }

// Key returns the once-per-turn key for the effect on a given copy.
func (a *IgnitionEffect) Key(source CardInstance) EffectKey {
	return MakeEffectKey(source.InstanceID, a.EffectID)
}

func (a *IgnitionEffect) CanActivate(s *GameState, source CardInstance) ValidationResult {
	if s.Result.GameOver {
		return Invalid(CodeGameOver, "the game is already over")
	}
	if s.Phase != PhaseMain1 {
		return Invalid(CodeNotMainPhase, fmt.Sprintf("ignition effects can only be activated during %s", PhaseMain1))
	}
	if !onFieldLocation(source.Location) {
		return Invalid(CodeNotOnField, fmt.Sprintf("%s is not on the field", a.Registry.CardName(a.CardID)))
	}
	if !source.IsFaceUp() {
		return Invalid(CodeFaceDown, fmt.Sprintf("%s is face-down", a.Registry.CardName(a.CardID)))
	}
	if a.OncePerTurn {
		key := a.Key(source)
		if s.IgnitionUsed(key) || source.ActivatedThisTurn(key) {
			return Invalid(CodeOncePerTurnUsed, fmt.Sprintf("this copy of %s already used its effect this turn", a.Registry.CardName(a.CardID)))
		}
	}
	if a.Condition != nil {
		if v := a.Condition(s, source); !v.Valid {
			return v
		}
	}
	return OK()
}

func (a *IgnitionEffect) ActivationSteps(s *GameState, source CardInstance) []Step {
	var steps []Step
	if a.OncePerTurn {
		steps = append(steps, RecordIgnitionUseStep(a.Registry, source.InstanceID, a.Key(source)))
	}
	if a.CostSteps != nil {
		steps = append(steps, a.CostSteps(s, source)...)
	}
	return steps
}

func (a *IgnitionEffect) ResolutionSteps(s *GameState, source CardInstance) []Step {
	if a.Resolution == nil {
		return nil
	}
	return a.Resolution(s, source)
}
