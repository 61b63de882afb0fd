/*
Package console
File: render.go
Description:
    Renders the read-only listings of the engine as text tables.
    Nothing here mutates game state; every table is built from the
    Market and Vessel listing snapshots.
*/

package console

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/everforgeworks/galaxies-trade-run/internal/game"
)

const separatorWidth = 61

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

// credits formats an amount of money with thousands separators.
func credits(amount uint64) string {
	if amount > math.MaxInt64 {
		return strconv.FormatUint(amount, 10)
	}
	return humanize.Comma(int64(amount))
}

// RenderMarket writes the market's stock table.
func RenderMarket(w io.Writer, rows []game.MarketRow) error {
	fmt.Fprintln(w, banner("MARKET"))
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tSTAT\tQTY\tBUY PRICE\tSELL PRICE\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%d\t%s\t%s\t\n",
			r.Index, r.Name, r.Stat, r.Amount, credits(r.BuyPrice), credits(r.SellPrice))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Repeat("=", separatorWidth))
	return err
}

// RenderHold writes the ship's cargo table.
func RenderHold(w io.Writer, rows []game.HoldRow) error {
	fmt.Fprintln(w, banner("SHIP'S STOCK"))
	if len(rows) == 0 {
		fmt.Fprintln(w, "The hold is empty.")
	}
	tw := newTable(w)
	if len(rows) > 0 {
		fmt.Fprintln(tw, "#\tNAME\tQTY\tBASE PRICE\t")
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%d.\t%s\t%d\t%s\t\n", r.Index, r.Name, r.Amount, credits(r.BasePrice))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Repeat("=", separatorWidth))
	return err
}

// RenderStatus writes the one-line summary shown between days.
func RenderStatus(w io.Writer, day int, t *game.Trader) error {
	v := t.Vessel()
	money := credits(t.Money())
	if t.InDebt() {
		money = "IN DEBT"
	}
	_, err := fmt.Fprintf(w, "Day %d | %s | Money: %s | Space: %d/%d | Crew: %d/%d (wages %s/day)\n",
		day, v.Name(), money, t.AvailableSpace(), v.Capacity(), v.Crew(), v.MaxCrew(), credits(v.Wage()))
	return err
}

func banner(title string) string {
	title = " " + title + " "
	side := (separatorWidth - len(title)) / 2
	if side < 0 {
		side = 0
	}
	line := strings.Repeat("=", side) + title
	if len(line) >= separatorWidth {
		return line
	}
	return line + strings.Repeat("=", separatorWidth-len(line))
}
