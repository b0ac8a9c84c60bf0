package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventPhaseChange
	EventDraw
	EventDiscard
	EventSummon
	EventSetCard
	EventActivate
	EventStepResolved
	EventSelectionRequired
	EventSearch
	EventShuffle
	EventLifeChange
	EventSendToGraveyard
	EventReturnToDeck
	EventCounterChange
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventPhaseChange:
		return "PhaseChange"
	case EventDraw:
		return "Draw"
	case EventDiscard:
		return "Discard"
	case EventSummon:
		return "Summon"
	case EventSetCard:
		return "SetCard"
	case EventActivate:
		return "Activate"
	case EventStepResolved:
		return "StepResolved"
	case EventSelectionRequired:
		return "SelectionRequired"
	case EventSearch:
		return "Search"
	case EventShuffle:
		return "Shuffle"
	case EventLifeChange:
		return "LifeChange"
	case EventSendToGraveyard:
		return "SendToGraveyard"
	case EventReturnToDeck:
		return "ReturnToDeck"
	case EventCounterChange:
		return "CounterChange"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent is a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
