// Package report prints the end-of-session console summary.
package report

import (
	"fmt"
	"io"

	"github.com/lox/mavensledger/internal/handlog"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
)

// Options controls what the summary includes.
type Options struct {
	Files      int
	Collisions int
	// Gate adds per-table skipped-hand counts.
	Gate bool
	// Quiet leaves out the per-player notes.
	Quiet   bool
	NoColor bool
}

// Printer writes summaries to one writer.
type Printer struct {
	w      io.Writer
	opts   Options
	styles styles
}

// NewPrinter creates a printer.
func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts, styles: newStyles(w, opts.NoColor)}
}

// Print writes the summary of a replay.
func (p *Printer) Print(res *ledger.Result, r *roster.Roster) {
	s := p.styles

	fmt.Fprintln(p.w, s.header.Render(" Session summary "))
	fmt.Fprintf(p.w, "Files: %d\n", p.opts.Files)
	fmt.Fprintf(p.w, "Players: %d\n", len(res.Players))
	for _, t := range res.Tables {
		line := fmt.Sprintf("Table %s: Processed hands: %d", t.Name, t.Hands)
		fmt.Fprint(p.w, s.table.Render(line))
		if t.Hands > 0 {
			span := fmt.Sprintf(" (%s to %s)", t.Earliest.Format(handlog.TimeLayout), t.Latest.Format(handlog.TimeLayout))
			fmt.Fprint(p.w, s.muted.Render(span))
		}
		fmt.Fprintln(p.w)
		if p.opts.Gate {
			fmt.Fprintf(p.w, "  Skipped hands: %d\n", t.Skipped)
		}
	}
	if p.opts.Collisions > 0 {
		fmt.Fprintln(p.w, s.warning.Render(fmt.Sprintf("Duplicate hand numbers replaced: %d", p.opts.Collisions)))
	}
	if n := len(res.Inconsistencies); n > 0 {
		fmt.Fprintln(p.w, s.warning.Render(fmt.Sprintf("Inconsistent stacks adjusted: %d", n)))
	}
	fmt.Fprintln(p.w)

	if !p.opts.Quiet {
		for _, st := range res.Settlements {
			p.printNotes(st)
			fmt.Fprintln(p.w)
		}
	}

	for _, st := range res.Settlements {
		alias := st.Player
		if r != nil {
			alias = r.Alias(st.Player)
		}
		fmt.Fprintf(p.w, "%-20s %-5s %s\n", alias, st.Disposition, ledger.FormatAmount(st.Difference))
	}
	fmt.Fprintln(p.w)

	net := "Net balance: " + ledger.FormatAmount(res.NetBalance)
	if res.NetBalance.Round(2).IsZero() {
		fmt.Fprintln(p.w, s.success.Render(net))
	} else {
		fmt.Fprintln(p.w, s.failure.Render(net))
	}
}

func (p *Printer) printNotes(st ledger.Settlement) {
	for i, line := range st.Notes {
		if i == 0 {
			fmt.Fprintln(p.w, p.styles.player.Render(line))
			continue
		}
		fmt.Fprintln(p.w, line)
	}
}
