package game

// RuleKind classifies a passive rule that operates outside the step
// machine.
type RuleKind int

const (
	RuleActionPermission RuleKind = iota
	RuleStatusModifier
	RuleActionReplacement
	RuleVictoryCondition
)

func (k RuleKind) String() string {
	switch k {
	case RuleActionPermission:
		return "ActionPermission"
	case RuleStatusModifier:
		return "StatusModifier"
	case RuleActionReplacement:
		return "ActionReplacement"
	case RuleVictoryCondition:
		return "VictoryCondition"
	default:
		return "Unknown"
	}
}

// AdditionalRule is a passive or continuous modifier attached to a
// card id: permission gates, status grants, step replacements, and
// alternative victory conditions. Rules are consulted by the engine at
// fixed hook points rather than resolving as step sequences.
type AdditionalRule interface {
	Kind() RuleKind
	// CanApply reports whether the rule is live for the given source
	// copy in the given snapshot (e.g. "face-up on the field").
	CanApply(s *GameState, source CardInstance) bool
}

// ActionPermission rules can veto a command during validation.
type ActionPermission interface {
	AdditionalRule
	CheckPermission(s *GameState, source CardInstance, cmd Command) ValidationResult
}

// StatusModifier rules grant match-level statuses while live. The only
// status in the reduced ruleset is effect-damage negation.
type StatusModifier interface {
	AdditionalRule
	GrantsDamageNegation(s *GameState, source CardInstance) bool
}

// ActionReplacement rules rewrite a step before it runs (e.g. waiving
// a life-point cost). Returns the replacement and true, or the
// original step untouched and false.
type ActionReplacement interface {
	AdditionalRule
	ReplaceStep(s *GameState, source CardInstance, st Step) (Step, bool)
}

// VictoryCondition rules end the game outside of life points and
// deck-out (e.g. assembling all five forbidden-one pieces).
type VictoryCondition interface {
	AdditionalRule
	Evaluate(s *GameState, source CardInstance) (GameResult, bool)
}

// SpellResolvedHook is an optional capability of an AdditionalRule:
// it observes each resolved spell card (e.g. Royal Magical Library
// gaining a spell counter). The returned snapshot replaces the input.
type SpellResolvedHook interface {
	OnSpellResolved(s *GameState, source CardInstance, spell CardInstance) *GameState
}

// liveRuleSources yields every on-field copy paired with its
// registered rules, in stable zone order.
func liveRuleSources(reg *Registry, s *GameState) []ruleSource {
	var out []ruleSource
	for _, loc := range []Location{LocationMonsterZone, LocationSpellTrapZone, LocationFieldZone} {
		for _, c := range s.Zones.CardsAt(loc) {
			for _, r := range reg.Rules(c.CardID) {
				out = append(out, ruleSource{card: c, rule: r})
			}
		}
	}
	return out
}

// handRuleSources yields hand copies paired with their rules. Victory
// conditions like the forbidden one live on hand cards.
func handRuleSources(reg *Registry, s *GameState) []ruleSource {
	var out []ruleSource
	for _, c := range s.Zones.Hand {
		for _, r := range reg.Rules(c.CardID) {
			out = append(out, ruleSource{card: c, rule: r})
		}
	}
	return out
}

type ruleSource struct {
	card CardInstance
	rule AdditionalRule
}

// CheckActionPermissions asks every live ActionPermission rule whether
// the command may proceed.
func CheckActionPermissions(reg *Registry, s *GameState, cmd Command) ValidationResult {
	for _, rs := range liveRuleSources(reg, s) {
		perm, ok := rs.rule.(ActionPermission)
		if !ok || !rs.rule.CanApply(s, rs.card) {
			continue
		}
		if v := perm.CheckPermission(s, rs.card, cmd); !v.Valid {
			return v
		}
	}
	return OK()
}

// DamageNegated reports whether effect damage is currently negated,
// either by the snapshot flag or by a live StatusModifier rule.
func DamageNegated(reg *Registry, s *GameState) bool {
	if s.DamageNegation {
		return true
	}
	for _, rs := range liveRuleSources(reg, s) {
		mod, ok := rs.rule.(StatusModifier)
		if !ok || !rs.rule.CanApply(s, rs.card) {
			continue
		}
		if mod.GrantsDamageNegation(s, rs.card) {
			return true
		}
	}
	return false
}

// ApplyReplacements runs every live ActionReplacement rule over the
// step list, in order, keeping the first replacement per step.
func ApplyReplacements(reg *Registry, s *GameState, steps []Step) []Step {
	sources := liveRuleSources(reg, s)
	if len(sources) == 0 {
		return steps
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	for i, st := range out {
		for _, rs := range sources {
			rep, ok := rs.rule.(ActionReplacement)
			if !ok || !rs.rule.CanApply(s, rs.card) {
				continue
			}
			if replaced, did := rep.ReplaceStep(s, rs.card, st); did {
				out[i] = replaced
				break
			}
		}
	}
	return out
}

// ApplySpellResolvedHooks notifies every live hook that a spell card
// finished resolving.
func ApplySpellResolvedHooks(reg *Registry, s *GameState, spell CardInstance) *GameState {
	out := s
	for _, rs := range liveRuleSources(reg, out) {
		hook, ok := rs.rule.(SpellResolvedHook)
		if !ok || !rs.rule.CanApply(out, rs.card) {
			continue
		}
		out = hook.OnSpellResolved(out, rs.card, spell)
	}
	return out
}
