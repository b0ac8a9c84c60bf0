package game

// ErrorCode is a typed, machine-readable reason an action is
// unavailable. The UI layer maps codes to localized messages; the
// engine also attaches a human-readable default.
type ErrorCode string

const (
	CodeGameOver             ErrorCode = "GAME_OVER"
	CodeNotMainPhase         ErrorCode = "NOT_MAIN_PHASE"
	CodeCardNotFound         ErrorCode = "CARD_NOT_FOUND"
	CodeNotInHand            ErrorCode = "NOT_IN_HAND"
	CodeNotOnField           ErrorCode = "NOT_ON_FIELD"
	CodeWrongCardType        ErrorCode = "WRONG_CARD_TYPE"
	CodeMonsterZoneFull      ErrorCode = "MONSTER_ZONE_FULL"
	CodeSpellTrapZoneFull    ErrorCode = "SPELL_TRAP_ZONE_FULL"
	CodeSummonLimitReached   ErrorCode = "SUMMON_LIMIT_REACHED"
	CodeInsufficientDeck     ErrorCode = "INSUFFICIENT_DECK"
	CodeInsufficientLP       ErrorCode = "INSUFFICIENT_LP"
	CodeInsufficientCounters ErrorCode = "INSUFFICIENT_COUNTERS"
	CodeOncePerTurnUsed      ErrorCode = "ONCE_PER_TURN_USED"
	CodeNoValidTarget        ErrorCode = "NO_VALID_TARGET"
	CodeNoSuchEffect         ErrorCode = "NO_SUCH_EFFECT"
	CodeHandLimit            ErrorCode = "HAND_LIMIT"
	CodeFaceDown             ErrorCode = "FACE_DOWN"
	CodePermissionDenied     ErrorCode = "PERMISSION_DENIED"
)

// ValidationResult is the outcome of a side-effect-free legality check.
type ValidationResult struct {
	Valid   bool
	Code    ErrorCode
	Message string
}

// OK is a passing validation.
func OK() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid builds a failing validation with a typed code and message.
func Invalid(code ErrorCode, message string) ValidationResult {
	return ValidationResult{Valid: false, Code: code, Message: message}
}
