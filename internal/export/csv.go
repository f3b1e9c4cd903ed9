// Package export writes the replay's transaction log and per-player balances as
// CSV.
package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/mavensledger/internal/fileutil"
	"github.com/lox/mavensledger/internal/handlog"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
)

// DateLayout is the session date format used in balances and mail subjects.
const DateLayout = "01/02/2006"

var (
	transactionHeader = []string{"Time", "Table", "Hand Number", "Player", "Action", "Amount In", "Amount Out"}
	balanceHeader     = []string{"Date", "Disposition", "Player", "Amount", "Note"}
	rosterHeader      = []string{"Poker Mavens Screen Name", "Nickname", "EMail"}
)

// SessionDate is the time of the last replayed hand, or now when nothing was
// replayed.
func SessionDate(res *ledger.Result, clock quartz.Clock) time.Time {
	if !res.LastHand.IsZero() {
		return res.LastHand
	}
	return clock.Now()
}

// WriteTransactions writes one row per transaction. Only the amount column
// matching the action's direction is filled.
func WriteTransactions(w io.Writer, txns []ledger.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for _, tr := range txns {
		in, out := ledger.FormatAmount(tr.AmountIn), ""
		if !tr.Kind.Inbound() {
			in, out = "", ledger.FormatAmount(tr.AmountOut)
		}
		row := []string{
			tr.Time.Format(handlog.TimeLayout),
			tr.Table,
			tr.HandID,
			tr.Player,
			tr.Kind.String(),
			in,
			out,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Balances describes the balance log.
type Balances struct {
	Date        time.Time
	Note        string
	Settlements []ledger.Settlement
	Roster      *roster.Roster
}

// Write writes one row per settlement, naming players by roster alias.
func (b Balances) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(balanceHeader); err != nil {
		return err
	}
	date := b.Date.Format(DateLayout)
	for _, s := range b.Settlements {
		alias := s.Player
		if b.Roster != nil {
			alias = b.Roster.Alias(s.Player)
		}
		row := []string{date, s.Disposition.String(), alias, ledger.FormatAmount(s.Difference), b.Note}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveTransactions writes the transaction log to path atomically.
func SaveTransactions(path string, txns []ledger.Transaction) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteTransactions(w, txns)
	})
}

// Save writes the balance log to path atomically.
func (b Balances) Save(path string) error {
	return fileutil.WriteAtomic(path, 0o644, b.Write)
}

// WriteRoster writes the known players, one row each.
func WriteRoster(w io.Writer, entries []roster.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rosterHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.ScreenName, e.Alias, e.Email}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
