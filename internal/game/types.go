package game

// --- Enums ---

// Phase is the current phase of the turn.
type Phase int

const (
	PhaseDraw Phase = iota
	PhaseStandby
	PhaseMain1
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw Phase"
	case PhaseStandby:
		return "Standby Phase"
	case PhaseMain1:
		return "Main Phase 1"
	case PhaseEnd:
		return "End Phase"
	default:
		return "Unknown"
	}
}

// Next returns the phase that follows p within a turn. The End Phase
// wraps around to the Draw Phase of the next turn.
func (p Phase) Next() Phase {
	switch p {
	case PhaseDraw:
		return PhaseStandby
	case PhaseStandby:
		return PhaseMain1
	case PhaseMain1:
		return PhaseEnd
	default:
		return PhaseDraw
	}
}

// CardType is the broad printed card category.
type CardType int

const (
	CardTypeMonster CardType = iota
	CardTypeSpell
	CardTypeTrap
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeMonster:
		return "Monster"
	case CardTypeSpell:
		return "Spell"
	case CardTypeTrap:
		return "Trap"
	default:
		return "Unknown"
	}
}

// SpellSubtype distinguishes how a spell card behaves once activated.
type SpellSubtype int

const (
	SpellNone SpellSubtype = iota
	SpellNormal
	SpellContinuous
	SpellField
	SpellQuickPlay
	SpellEquip
)

func (s SpellSubtype) String() string {
	switch s {
	case SpellNormal:
		return "Normal"
	case SpellContinuous:
		return "Continuous"
	case SpellField:
		return "Field"
	case SpellQuickPlay:
		return "Quick-Play"
	case SpellEquip:
		return "Equip"
	default:
		return ""
	}
}

// FacePosition is whether a card on the field is face-up or face-down.
type FacePosition int

const (
	FaceUp FacePosition = iota
	FaceDown
)

func (f FacePosition) String() string {
	if f == FaceUp {
		return "face-up"
	}
	return "face-down"
}

// BattlePosition applies to monsters in the main monster zone.
type BattlePosition int

const (
	PositionAttack BattlePosition = iota
	PositionDefense
)

func (b BattlePosition) String() string {
	if b == PositionAttack {
		return "ATK"
	}
	return "DEF"
}

// Side identifies whose life points an effect touches. The engine is
// single-player; the opponent exists only as a life-point total.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "opponent"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// SpellSpeed orders which effects may respond to which. Everything in
// the reduced ruleset is speed 1; the type is kept for parity with the
// printed rules.
type SpellSpeed int

const (
	SpellSpeed1 SpellSpeed = 1
	SpellSpeed2 SpellSpeed = 2
	SpellSpeed3 SpellSpeed = 3
)

// CounterType names a kind of counter placed on a field card.
type CounterType string

// CounterSpell is the spell counter used by cards like Royal Magical Library.
const CounterSpell CounterType = "spell"
