package web

import (
	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
	"github.com/okmethod/ygo-solitaire-sub001/internal/log"
	"github.com/okmethod/ygo-solitaire-sub001/internal/session"
)

// CardView describes one card instance for the browser.
type CardView struct {
	InstanceID string         `json:"instanceId"`
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	JaName     string         `json:"jaName,omitempty"`
	FrameType  string         `json:"frameType,omitempty"`
	SpellType  string         `json:"spellType,omitempty"`
	Level      int            `json:"level,omitempty"`
	ATK        int            `json:"atk,omitempty"`
	DEF        int            `json:"def,omitempty"`
	FaceDown   bool           `json:"faceDown,omitempty"`
	Counters   map[string]int `json:"counters,omitempty"`
}

// StateView is the full board from the solitaire player's perspective.
type StateView struct {
	Turn          int         `json:"turn"`
	Phase         string      `json:"phase"`
	PlayerLP      int         `json:"playerLp"`
	OpponentLP    int         `json:"opponentLp"`
	Hand          []CardView  `json:"hand"`
	MonsterZone   []CardView  `json:"monsterZone"`
	SpellTrapZone []CardView  `json:"spellTrapZone"`
	FieldZone     []CardView  `json:"fieldZone"`
	Graveyard     []CardView  `json:"graveyard"`
	DeckCount     int         `json:"deckCount"`
	BanishedCount int         `json:"banishedCount"`
	Result        *ResultView `json:"result,omitempty"`
}

// ResultView reports a finished game.
type ResultView struct {
	Winner string `json:"winner"`
	Reason string `json:"reason"`
}

// SelectionView describes a pending card selection.
type SelectionView struct {
	Prompt     string     `json:"prompt"`
	Min        int        `json:"min"`
	Max        int        `json:"max"`
	Cancelable bool       `json:"cancelable"`
	Candidates []CardView `json:"candidates"`
}

// EventView is one journal entry.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// ActionResultView is the outcome of a dispatched command or
// selection.
type ActionResultView struct {
	Success   bool           `json:"success"`
	Code      string         `json:"code,omitempty"`
	Message   string         `json:"message,omitempty"`
	Messages  []string       `json:"messages,omitempty"`
	Selection *SelectionView `json:"selection,omitempty"`
	State     *StateView     `json:"state"`
}

func cardView(reg *game.Registry, c game.CardInstance) CardView {
	v := CardView{
		InstanceID: string(c.InstanceID),
		ID:         int(c.CardID),
	}
	if d, ok := reg.Card(c.CardID); ok {
		v.Name = d.Name
		v.JaName = d.JaName
		v.FrameType = d.FrameType
		v.SpellType = d.SpellType
		v.Level = d.Level
		v.ATK = d.ATK
		v.DEF = d.DEF
	}
	if c.Field != nil {
		v.FaceDown = !c.IsFaceUp()
		if len(c.Field.Counters) > 0 {
			v.Counters = make(map[string]int, len(c.Field.Counters))
			for t, n := range c.Field.Counters {
				v.Counters[string(t)] = n
			}
		}
	}
	return v
}

func BuildCardViews(reg *game.Registry, cards []game.CardInstance) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = cardView(reg, c)
	}
	return out
}

func BuildStateView(reg *game.Registry, s *game.GameState) *StateView {
	v := &StateView{
		Turn:          s.Turn,
		Phase:         s.Phase.String(),
		PlayerLP:      s.LifePoints.Player,
		OpponentLP:    s.LifePoints.Opponent,
		Hand:          BuildCardViews(reg, s.Zones.Hand),
		MonsterZone:   BuildCardViews(reg, s.Zones.MonsterZone),
		SpellTrapZone: BuildCardViews(reg, s.Zones.SpellTrapZone),
		FieldZone:     BuildCardViews(reg, s.Zones.FieldZone),
		Graveyard:     BuildCardViews(reg, s.Zones.Graveyard),
		DeckCount:     len(s.Zones.Deck),
		BanishedCount: len(s.Zones.Banished),
	}
	if s.Result.GameOver {
		v.Result = &ResultView{
			Winner: s.Result.Winner.String(),
			Reason: s.Result.Reason,
		}
	}
	return v
}

func selectionView(reg *game.Registry, res session.Result) *SelectionView {
	if !res.AwaitingSelection {
		return nil
	}
	return &SelectionView{
		Prompt:     res.Prompt,
		Min:        res.MinSelect,
		Max:        res.MaxSelect,
		Cancelable: res.Cancelable,
		Candidates: BuildCardViews(reg, res.Candidates),
	}
}

func BuildEventViews(events []log.GameEvent) []EventView {
	out := make([]EventView, len(events))
	for i, e := range events {
		out[i] = EventView{
			Seq:     e.Seq,
			Turn:    e.Turn,
			Phase:   e.Phase,
			Type:    e.Type.String(),
			Details: e.Details,
		}
	}
	return out
}

func BuildActionResultView(reg *game.Registry, sess *session.Session, res session.Result) ActionResultView {
	return ActionResultView{
		Success:   res.Success,
		Code:      string(res.Code),
		Message:   res.Message,
		Messages:  res.Messages,
		Selection: selectionView(reg, res),
		State:     BuildStateView(reg, sess.State()),
	}
}
