/*
Package console
File: handlers.go
Description:
    Contains the command handlers for the text console.
    These functions parse a command line, validate it, call the game engine
    (imported from internal/game) and write a response.

    Key Responsibilities:
    - Input Validation (Is the command known? Do the indices exist?)
    - State Modification (Calling the engine to trade, hire or end the day)
    - Feedback (Turning a trade Response into a message for the player)
*/

package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/everforgeworks/galaxies-trade-run/internal/game"
)

// Command errors. Trade refusals are not errors; they are reported as messages.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
)

// Session is one player's game plus the day count the engine does not keep.
type Session struct {
	State *game.State
	Day   int
}

// NewSession starts on day 1.
func NewSession(state *game.State) *Session {
	return &Session{State: state, Day: 1}
}

// TradeRequest is a parsed buy or sell command. Index is the 1-based row of
// the market listing (buy) or the hold listing (sell).
type TradeRequest struct {
	Index  int
	Amount uint64
}

type handlerFunc func(s *Session, args []string, w io.Writer) error

var handlers map[string]handlerFunc

func init() {
	handlers = map[string]handlerFunc{
		"market":  handleMarket,
		"hold":    handleHold,
		"status":  handleStatus,
		"buy":     handleBuy,
		"sell":    handleSell,
		"hire":    handleHire,
		"dismiss": handleDismiss,
		"rename":  handleRename,
		"wait":    handleNextDay,
		"next":    handleNextDay,
		"help":    handleHelp,
	}
}

const helpText = `Commands:
  market                 show the market
  hold                   show the ship's stock
  status                 show money, space and crew
  buy <index> <amount>   buy from the market listing
  sell <index> <amount>  sell from the hold listing
  hire <n>               hire crew
  dismiss <n>            dismiss crew
  rename <name>          rename the ship
  wait | next            end the day
  quit                   leave the game`

// Handle runs one command line. It reports quit when the player leaves.
func (s *Session) Handle(line string, w io.Writer) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	if cmd == "quit" || cmd == "exit" {
		return true, nil
	}

	h, ok := handlers[cmd]
	if !ok {
		return false, fmt.Errorf("%w: %q (try 'help')", ErrUnknownCommand, cmd)
	}
	return false, h(s, args, w)
}

func handleMarket(s *Session, _ []string, w io.Writer) error {
	return RenderMarket(w, s.State.Market.Listing())
}

func handleHold(s *Session, _ []string, w io.Writer) error {
	return RenderHold(w, s.State.Trader.Vessel().Listing())
}

func handleStatus(s *Session, _ []string, w io.Writer) error {
	return RenderStatus(w, s.Day, s.State.Trader)
}

func handleHelp(_ *Session, _ []string, w io.Writer) error {
	_, err := fmt.Fprintln(w, helpText)
	return err
}

// handleBuy moves goods from the market listing into the hold.
func handleBuy(s *Session, args []string, w io.Writer) error {
	req, err := parseTradeRequest(args)
	if err != nil {
		return err
	}

	// 1. Find the listing entry
	good, ok := s.State.Market.Cargo(req.Index)
	if !ok {
		return fmt.Errorf("%w: no market entry %d", ErrBadArgument, req.Index)
	}

	// 2. Let the market validate and execute
	trader := s.State.Trader
	before := trader.Money()
	resp := trader.Buy(s.State.Market, good.Name, req.Amount)

	// 3. Report
	if resp == game.Done {
		_, err = fmt.Fprintf(w, "Bought %d %s for %s.\n", req.Amount, good.Name, credits(before-trader.Money()))
		return err
	}
	return reportRefusal(w, resp, good.Name)
}

// handleSell moves goods from the hold listing back to the market.
func handleSell(s *Session, args []string, w io.Writer) error {
	req, err := parseTradeRequest(args)
	if err != nil {
		return err
	}

	trader := s.State.Trader
	good, ok := trader.Vessel().Cargo(req.Index)
	if !ok {
		return fmt.Errorf("%w: no hold entry %d", ErrBadArgument, req.Index)
	}

	before := trader.Money()
	resp := trader.Sell(s.State.Market, good.Name, req.Amount)
	if resp == game.Done {
		_, err = fmt.Fprintf(w, "Sold %d %s for %s.\n", req.Amount, good.Name, credits(trader.Money()-before))
		return err
	}
	return reportRefusal(w, resp, good.Name)
}

func handleHire(s *Session, args []string, w io.Writer) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	v := s.State.Trader.Vessel()
	v.HireCrew(n)
	_, err = fmt.Fprintf(w, "Crew: %d/%d.\n", v.Crew(), v.MaxCrew())
	return err
}

func handleDismiss(s *Session, args []string, w io.Writer) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	v := s.State.Trader.Vessel()
	v.DismissCrew(n)
	_, err = fmt.Fprintf(w, "Crew: %d/%d.\n", v.Crew(), v.MaxCrew())
	return err
}

func handleRename(s *Session, args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected a name", ErrBadArgument)
	}
	v := s.State.Trader.Vessel()
	v.SetName(strings.Join(args, " "))
	_, err := fmt.Fprintf(w, "The ship is now the %s.\n", v.Name())
	return err
}

// handleNextDay ticks the clock: the market restocks and the crew is paid.
func handleNextDay(s *Session, _ []string, w io.Writer) error {
	s.State.NextDay()
	s.Day++
	if s.State.Trader.InDebt() {
		fmt.Fprintln(w, "You could not pay your crew. You are in debt!")
	}
	return RenderStatus(w, s.Day, s.State.Trader)
}

func reportRefusal(w io.Writer, resp game.Response, name string) error {
	var msg string
	switch resp {
	case game.InsufficientFunds:
		msg = "You cannot afford that."
	case game.InsufficientStock:
		msg = fmt.Sprintf("Not enough %s available.", name)
	case game.InsufficientCargoSpace:
		msg = "Not enough room in the hold."
	default:
		msg = resp.String()
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

func parseTradeRequest(args []string) (TradeRequest, error) {
	if len(args) != 2 {
		return TradeRequest{}, fmt.Errorf("%w: expected <index> <amount>", ErrBadArgument)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return TradeRequest{}, fmt.Errorf("%w: index %q", ErrBadArgument, args[0])
	}
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return TradeRequest{}, fmt.Errorf("%w: amount %q", ErrBadArgument, args[1])
	}
	return TradeRequest{Index: index, Amount: amount}, nil
}

func parseCount(args []string) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected a number", ErrBadArgument)
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadArgument, args[0])
	}
	return n, nil
}
