// Package mcp exposes the solitaire engine as MCP tools over stdio, so
// an agent can start a game, read the board, and drive commands and
// selections.
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
	"github.com/okmethod/ygo-solitaire-sub001/internal/session"
	"github.com/okmethod/ygo-solitaire-sub001/internal/web"
)

// Controller holds the one active game of a stdio process.
type Controller struct {
	registry  *game.Registry
	decksFile string

	mu   sync.Mutex
	sess *session.Session
}

// NewController builds a controller over a card registry and deck file.
func NewController(reg *game.Registry, decksFile string) *Controller {
	return &Controller{registry: reg, decksFile: decksFile}
}

// RegisterTools adds all solitaire tools to the MCP server.
func (c *Controller) RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), c.handleStartGame)
	s.AddTool(getGameStateTool(), c.handleGetGameState)
	s.AddTool(runCommandTool(), c.handleRunCommand)
	s.AddTool(selectCardsTool(), c.handleSelectCards)
	s.AddTool(cancelSelectionTool(), c.handleCancelSelection)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new solitaire game with a deck from the decks file. "+
			"Replaces any game already in progress. Returns the opening hand and board."),
		mcp.WithString("deck", mcp.Description("Deck name from decks.yaml (empty for the first deck)")),
		mcp.WithNumber("seed", mcp.Description("Shuffle seed for reproducible games (0 for random)")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current board, any pending card selection, and the event journal. Read-only."),
	)
}

func runCommandTool() mcp.Tool {
	return mcp.NewTool("run_command",
		mcp.WithDescription("Run one game command: 'advance_phase', 'summon', 'set', 'activate_spell', "+
			"'activate_effect' or 'shuffle'. Card commands need instance_id; 'activate_effect' also needs effect_id. "+
			"If the result says a selection is pending, answer it with select_cards."),
		mcp.WithString("command", mcp.Required(), mcp.Description("Command name")),
		mcp.WithString("instance_id", mcp.Description("Instance id of the card the command acts on")),
		mcp.WithString("effect_id", mcp.Description("Effect id for activate_effect (e.g. 'draw')")),
	)
}

func selectCardsTool() mcp.Tool {
	return mcp.NewTool("select_cards",
		mcp.WithDescription("Answer the pending card selection with instance ids from the candidates list. "+
			"Pass an empty list to select nothing, where the bounds allow it."),
		mcp.WithString("instance_ids", mcp.Description("Space-separated instance ids (e.g. 'a1b2 c3d4')")),
	)
}

func cancelSelectionTool() mcp.Tool {
	return mcp.NewTool("cancel_selection",
		mcp.WithDescription("Cancel the pending card selection, if it is cancelable. The effect's remaining steps are dropped."),
	)
}

// --- Tool handlers ---

func (c *Controller) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck := request.GetString("deck", "")
	seed := int64(request.GetInt("seed", 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ids, err := game.DeckByName(c.decksFile, deck)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load deck: %v", err), nil
	}
	state, err := game.NewGame(c.registry, ids, seed)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	c.mu.Lock()
	c.sess = session.New(c.registry, state, nil)
	sess := c.sess
	c.mu.Unlock()

	return mcp.NewToolResultText(respondJSON(web.BuildActionResultView(c.registry, sess, session.Result{
		Success: true,
		Message: "game started",
	}))), nil
}

func (c *Controller) session() (*session.Session, *mcp.CallToolResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return nil, mcp.NewToolResultError("No game is running. Use start_game first.")
	}
	return c.sess, nil
}

func (c *Controller) handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errRes := c.session()
	if errRes != nil {
		return errRes, nil
	}

	resp := struct {
		State     *web.StateView     `json:"state"`
		Selection *web.SelectionView `json:"selection,omitempty"`
		Events    []web.EventView    `json:"events"`
	}{
		State:  web.BuildStateView(c.registry, sess.State()),
		Events: web.BuildEventViews(sess.Events()),
	}
	if cfg, candidates, ok := sess.PendingSelection(); ok {
		resp.Selection = &web.SelectionView{
			Prompt:     cfg.Prompt,
			Min:        cfg.Min,
			Max:        cfg.Max,
			Cancelable: cfg.Cancelable,
			Candidates: web.BuildCardViews(c.registry, candidates),
		}
	}
	if resp.Events == nil {
		resp.Events = []web.EventView{}
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (c *Controller) handleRunCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errRes := c.session()
	if errRes != nil {
		return errRes, nil
	}

	name := request.GetString("command", "")
	cmd, ok := web.BuildCommand(c.registry, web.CommandRequest{
		Command:    name,
		InstanceID: request.GetString("instance_id", ""),
		EffectID:   request.GetString("effect_id", ""),
	})
	if !ok {
		return mcp.NewToolResultErrorf("Unknown command '%s'.", name), nil
	}

	res, err := sess.Dispatch(cmd)
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot run a command now: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(web.BuildActionResultView(c.registry, sess, res))), nil
}

func (c *Controller) handleSelectCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errRes := c.session()
	if errRes != nil {
		return errRes, nil
	}

	var ids []game.InstanceID
	for _, raw := range strings.Fields(request.GetString("instance_ids", "")) {
		ids = append(ids, game.InstanceID(raw))
	}

	res, err := sess.SubmitSelection(ids)
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot select cards now: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(web.BuildActionResultView(c.registry, sess, res))), nil
}

func (c *Controller) handleCancelSelection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errRes := c.session()
	if errRes != nil {
		return errRes, nil
	}

	res, err := sess.CancelSelection()
	if err != nil {
		return mcp.NewToolResultErrorf("Cannot cancel: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(web.BuildActionResultView(c.registry, sess, res))), nil
}

func respondJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error": "failed to encode response"}`
	}
	return string(data)
}
