package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1))
	l.Log(NewPhaseChangeEvent(1, "Main Phase 1"))
	l.Log(NewDrawEvent(1, "Main Phase 1", "Pot of Greed"))

	events := l.Events()
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, 3, events[2].Seq)
	assert.Equal(t, EventDraw, l.LastEvent().Type)

	draws := l.EventsOfType(EventDraw)
	require.Len(t, draws, 1)
	assert.Contains(t, draws[0].Details, "Pot of Greed")
}

func TestEmptyLogger(t *testing.T) {
	l := NewMemoryLogger()
	assert.Empty(t, l.Events())
	assert.Equal(t, GameEvent{}, l.LastEvent())
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewActivateEvent(2, "Main Phase 1", "Pot of Greed"))
	l.Log(NewWinEvent(2, "Main Phase 1", "player", "exodia"))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "T2")
	assert.Contains(t, lines[0], "activated Pot of Greed")

	// The text logger keeps the journal too.
	assert.Len(t, l.Events(), 2)
}

func TestFormatAll(t *testing.T) {
	events := []GameEvent{
		NewShuffleEvent(1, "Main Phase 1"),
		NewLifeChangeEvent(1, "Main Phase 1", "player", 8000, 7000),
	}
	out := FormatAll(events)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
