// Package web serves the solitaire engine over HTTP and WebSocket.
// Each game gets its own session; the REST surface drives commands and
// selections, the WebSocket surface streams the same protocol for a
// live board.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
	"github.com/okmethod/ygo-solitaire-sub001/internal/session"
)

// Server hosts solitaire games over HTTP.
type Server struct {
	registry  *game.Registry
	decksFile string
	logger    *zap.Logger

	mu    sync.Mutex
	games map[string]*session.Session

	mux *http.ServeMux
}

// NewServer builds a server around a card registry and a deck file.
func NewServer(reg *game.Registry, decksFile string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		registry:  reg,
		decksFile: decksFile,
		logger:    logger,
		games:     make(map[string]*session.Session),
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("POST /api/games", s.handleNewGame)
	s.mux.HandleFunc("GET /api/games/{id}", s.handleGameState)
	s.mux.HandleFunc("GET /api/games/{id}/events", s.handleGameEvents)
	s.mux.HandleFunc("POST /api/games/{id}/commands", s.handleCommand)
	s.mux.HandleFunc("POST /api/games/{id}/selection", s.handleSelection)
	s.mux.HandleFunc("DELETE /api/games/{id}/selection", s.handleCancelSelection)
	s.mux.HandleFunc("GET /api/games/{id}/ws", s.handleWebSocket)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) game(id string) (*session.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.games[id]
	return sess, ok
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// CardInfo is the JSON representation of a card for /api/cards.
type CardInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	JaName    string `json:"jaName,omitempty"`
	FrameType string `json:"frameType"`
	SpellType string `json:"spellType,omitempty"`
	Level     int    `json:"level,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	ATK       int    `json:"atk,omitempty"`
	DEF       int    `json:"def,omitempty"`
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	decks, err := game.ParseDeckFile(s.decksFile)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not read decks file")
		return
	}
	seen := make(map[game.CardID]bool)
	var cards []CardInfo
	for _, ids := range decks {
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			d, ok := s.registry.Card(id)
			if !ok {
				continue
			}
			cards = append(cards, CardInfo{
				ID:        int(d.ID),
				Name:      d.Name,
				JaName:    d.JaName,
				FrameType: d.FrameType,
				SpellType: d.SpellType,
				Level:     d.Level,
				Attribute: d.Attribute,
				ATK:       d.ATK,
				DEF:       d.DEF,
			})
		}
	}
	s.writeJSON(w, http.StatusOK, cards)
}

// DeckInfo is the JSON representation of a deck for /api/decks.
type DeckInfo struct {
	Name  string   `json:"name"`
	Size  int      `json:"size"`
	Cards []string `json:"cards"`
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := game.ParseDeckFile(s.decksFile)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not read decks file")
		return
	}
	var out []DeckInfo
	for name, ids := range decks {
		di := DeckInfo{Name: name, Size: len(ids)}
		seen := make(map[game.CardID]bool)
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				di.Cards = append(di.Cards, s.registry.CardName(id))
			}
		}
		out = append(out, di)
	}
	s.writeJSON(w, http.StatusOK, out)
}

type newGameRequest struct {
	Deck string `json:"deck"`
	Seed int64  `json:"seed,omitempty"`
}

type newGameResponse struct {
	GameID string     `json:"gameId"`
	State  *StateView `json:"state"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ids, err := game.DeckByName(s.decksFile, req.Deck)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state, err := game.NewGame(s.registry, ids, seed)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := uuid.NewString()
	sess := session.New(s.registry, state, nil)
	s.mu.Lock()
	s.games[id] = sess
	s.mu.Unlock()

	s.logger.Info("game started",
		zap.String("game_id", id),
		zap.String("deck", req.Deck),
		zap.Int64("seed", seed))
	s.writeJSON(w, http.StatusCreated, newGameResponse{
		GameID: id,
		State:  BuildStateView(s.registry, state),
	})
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.game(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}
	s.writeJSON(w, http.StatusOK, BuildStateView(s.registry, sess.State()))
}

func (s *Server) handleGameEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.game(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}
	s.writeJSON(w, http.StatusOK, BuildEventViews(sess.Events()))
}

// CommandRequest names a command and its card arguments.
type CommandRequest struct {
	Command    string `json:"command"`
	InstanceID string `json:"instanceId,omitempty"`
	EffectID   string `json:"effectId,omitempty"`
}

// BuildCommand maps a wire-level command name onto the engine command.
func BuildCommand(reg *game.Registry, req CommandRequest) (game.Command, bool) {
	id := game.InstanceID(req.InstanceID)
	switch req.Command {
	case "advance_phase":
		return game.NewAdvancePhase(reg), true
	case "summon":
		return game.NewSummonMonster(reg, id), true
	case "set":
		return game.NewSetSpellTrap(reg, id), true
	case "activate_spell":
		return game.NewActivateSpell(reg, id), true
	case "activate_effect":
		return game.NewActivateIgnitionEffect(reg, id, req.EffectID), true
	case "shuffle":
		return game.NewShuffleDeck(reg), true
	default:
		return nil, false
	}
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.game(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cmd, ok := BuildCommand(s.registry, req)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown command "+req.Command)
		return
	}
	res, err := sess.Dispatch(cmd)
	if err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.logger.Debug("command",
		zap.String("game_id", r.PathValue("id")),
		zap.String("command", req.Command),
		zap.Bool("success", res.Success))
	s.writeJSON(w, http.StatusOK, BuildActionResultView(s.registry, sess, res))
}

type selectionRequest struct {
	InstanceIDs []string `json:"instanceIds"`
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.game(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ids := make([]game.InstanceID, len(req.InstanceIDs))
	for i, raw := range req.InstanceIDs {
		ids[i] = game.InstanceID(raw)
	}
	res, err := sess.SubmitSelection(ids)
	if err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, BuildActionResultView(s.registry, sess, res))
}

func (s *Server) handleCancelSelection(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.game(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}
	res, err := sess.CancelSelection()
	if err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, BuildActionResultView(s.registry, sess, res))
}

// wsRequest is the client-to-server WebSocket envelope. Type is
// "command", "select" or "cancel".
type wsRequest struct {
	Type        string   `json:"type"`
	Command     string   `json:"command,omitempty"`
	InstanceID  string   `json:"instanceId,omitempty"`
	EffectID    string   `json:"effectId,omitempty"`
	InstanceIDs []string `json:"instanceIds,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.game(r.PathValue("id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "no such game")
		return
	}
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // same-host browser clients only
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()
	ctx := r.Context()

	// Initial board push.
	if err := wsjson.Write(ctx, conn, BuildActionResultView(s.registry, sess, session.Result{Success: true})); err != nil {
		return
	}

	for {
		var req wsRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			return
		}
		var (
			res    session.Result
			actErr error
		)
		switch req.Type {
		case "command":
			cmd, ok := BuildCommand(s.registry, CommandRequest{
				Command:    req.Command,
				InstanceID: req.InstanceID,
				EffectID:   req.EffectID,
			})
			if !ok {
				actErr = errUnknownCommand(req.Command)
				break
			}
			res, actErr = sess.Dispatch(cmd)
		case "select":
			ids := make([]game.InstanceID, len(req.InstanceIDs))
			for i, raw := range req.InstanceIDs {
				ids[i] = game.InstanceID(raw)
			}
			res, actErr = sess.SubmitSelection(ids)
		case "cancel":
			res, actErr = sess.CancelSelection()
		default:
			actErr = errUnknownCommand(req.Type)
		}
		if actErr != nil {
			if err := wsjson.Write(ctx, conn, map[string]string{"error": actErr.Error()}); err != nil {
				return
			}
			continue
		}
		if err := wsjson.Write(ctx, conn, BuildActionResultView(s.registry, sess, res)); err != nil {
			return
		}
	}
}

type errUnknownCommand string

func (e errUnknownCommand) Error() string { return "unknown command " + string(e) }
