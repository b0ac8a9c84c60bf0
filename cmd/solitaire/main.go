// Command solitaire plays a one-player draw-engine game in the
// terminal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/okmethod/ygo-solitaire-sub001/internal/cards"
	"github.com/okmethod/ygo-solitaire-sub001/internal/game"
	"github.com/okmethod/ygo-solitaire-sub001/internal/session"
)

type CLI struct {
	Decks string `help:"Path to the decks YAML file." default:"decks.yaml"`
	Deck  string `help:"Deck name to play (empty for the first deck)."`
	Seed  *int64 `help:"Shuffle seed for reproducible games."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	reg := cards.NewRegistry()
	ids, err := game.DeckByName(cli.Decks, cli.Deck)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deck: %v\n", err)
		ctx.Exit(1)
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}
	state, err := game.NewGame(reg, ids, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		ctx.Exit(1)
	}

	sess := session.New(reg, state, nil)
	repl(sess)
}

func repl(sess *session.Session) {
	reg := sess.Registry()
	fmt.Println("Solitaire started. Type 'help' for commands.")
	printBoard(reg, sess.State())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if cfg, candidates, ok := sess.PendingSelection(); ok {
			fmt.Printf("\n%s (%d-%d)\n", cfg.Prompt, cfg.Min, cfg.Max)
			for i, c := range candidates {
				fmt.Printf("  [%d] %s\n", i, reg.CardName(c.CardID))
			}
			if cfg.Cancelable {
				fmt.Println("  (or 'cancel')")
			}
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "board", "state":
			printBoard(reg, sess.State())
		case "next", "advance":
			report(sess.Dispatch(game.NewAdvancePhase(reg)))
		case "shuffle":
			report(sess.Dispatch(game.NewShuffleDeck(reg)))
		case "summon":
			withHandCard(sess, fields, func(id game.InstanceID) {
				report(sess.Dispatch(game.NewSummonMonster(reg, id)))
			})
		case "set":
			withHandCard(sess, fields, func(id game.InstanceID) {
				report(sess.Dispatch(game.NewSetSpellTrap(reg, id)))
			})
		case "activate":
			withHandCard(sess, fields, func(id game.InstanceID) {
				report(sess.Dispatch(game.NewActivateSpell(reg, id)))
			})
		case "effect":
			runEffect(sess, fields)
		case "select":
			runSelect(sess, fields)
		case "cancel":
			res, err := sess.CancelSelection()
			report(res, err)
		case "events":
			for _, e := range sess.Events() {
				fmt.Printf("  T%d %-12s %s %s\n", e.Turn, e.Type, e.Card, e.Details)
			}
		case "quit", "exit":
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", fields[0])
		}

		if s := sess.State(); s.Result.GameOver {
			fmt.Printf("\nGame over: %s wins (%s)\n", s.Result.Winner, s.Result.Reason)
			return
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  board              show the board
  next               advance to the next phase
  summon N           normal summon hand card N
  set N              set hand card N
  activate N         activate hand card N
  effect ZONE N ID   activate ignition effect ID of card N in ZONE (monster|field)
  shuffle            shuffle the deck
  select N [N...]    answer a pending selection by candidate index
  cancel             cancel a pending selection
  events             show the event journal
  quit`)
}

func printBoard(reg *game.Registry, s *game.GameState) {
	fmt.Printf("\nTurn %d, %s | LP %d / opponent %d | Deck %d | GY %d\n",
		s.Turn, s.Phase, s.LifePoints.Player, s.LifePoints.Opponent,
		len(s.Zones.Deck), len(s.Zones.Graveyard))
	printZone(reg, "Field", s.Zones.FieldZone)
	printZone(reg, "Monsters", s.Zones.MonsterZone)
	printZone(reg, "Spells/Traps", s.Zones.SpellTrapZone)
	printZone(reg, "Hand", s.Zones.Hand)
}

func printZone(reg *game.Registry, label string, cards []game.CardInstance) {
	if len(cards) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for i, c := range cards {
		suffix := ""
		if c.Field != nil {
			if !c.IsFaceUp() {
				suffix = " (face-down)"
			}
			if n := c.Field.CounterCount(game.CounterSpell); n > 0 {
				suffix += fmt.Sprintf(" [%d counters]", n)
			}
		}
		fmt.Printf("    [%d] %s%s\n", i, reg.CardName(c.CardID), suffix)
	}
}

// withHandCard resolves "command N" against the hand and runs fn.
func withHandCard(sess *session.Session, fields []string, fn func(game.InstanceID)) {
	if len(fields) < 2 {
		fmt.Println("Which card? Give a hand index.")
		return
	}
	n, err := strconv.Atoi(fields[1])
	hand := sess.State().Zones.Hand
	if err != nil || n < 0 || n >= len(hand) {
		fmt.Printf("Hand index must be 0-%d.\n", len(hand)-1)
		return
	}
	fn(hand[n].InstanceID)
}

func runEffect(sess *session.Session, fields []string) {
	if len(fields) < 4 {
		fmt.Println("Usage: effect ZONE N ID (e.g. 'effect monster 0 draw')")
		return
	}
	s := sess.State()
	var zone []game.CardInstance
	switch fields[1] {
	case "monster":
		zone = s.Zones.MonsterZone
	case "field":
		zone = s.Zones.FieldZone
	case "spell":
		zone = s.Zones.SpellTrapZone
	default:
		fmt.Println("Zone must be monster, spell or field.")
		return
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 || n >= len(zone) {
		fmt.Printf("Zone index must be 0-%d.\n", len(zone)-1)
		return
	}
	report(sess.Dispatch(game.NewActivateIgnitionEffect(sess.Registry(), zone[n].InstanceID, fields[3])))
}

func runSelect(sess *session.Session, fields []string) {
	_, candidates, ok := sess.PendingSelection()
	if !ok {
		fmt.Println("Nothing to select.")
		return
	}
	var ids []game.InstanceID
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n >= len(candidates) {
			fmt.Printf("Candidate index must be 0-%d.\n", len(candidates)-1)
			return
		}
		ids = append(ids, candidates[n].InstanceID)
	}
	res, err := sess.SubmitSelection(ids)
	report(res, err)
}

func report(res session.Result, err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if !res.Success {
		fmt.Printf("Cannot do that: %s\n", res.Message)
		return
	}
	if res.Message != "" {
		fmt.Println(res.Message)
	}
	for _, m := range res.Messages {
		fmt.Printf("  %s\n", m)
	}
}
