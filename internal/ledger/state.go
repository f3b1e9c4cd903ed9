package ledger

import (
	"time"

	"github.com/lox/mavensledger/internal/handlog"
	"github.com/shopspring/decimal"
)

// Table is the bookkeeping kept for one table name.
type Table struct {
	Name string
	// Hands counts replayed hands; Skipped counts hands held back by the gate.
	Hands      int
	Skipped    int
	Earliest   time.Time
	Latest     time.Time
	LastHandID string

	gateOpen bool
}

// GateOpen reports whether hands for this table are being replayed.
func (t *Table) GateOpen() bool {
	return t.gateOpen
}

func (t *Table) record(h *handlog.Hand) {
	t.Hands++
	t.LastHandID = h.ID
	if t.Earliest.IsZero() {
		t.Earliest = h.Timestamp
	}
	t.Latest = h.Timestamp
}

// Stake is a player's running position at one table.
type Stake struct {
	Table      string
	FirstBuyIn decimal.Decimal
	AmountIn   decimal.Decimal
	AmountOut  decimal.Decimal
	// Latest is the stack the player is expected to declare at the next seat line.
	Latest  decimal.Decimal
	Waiting bool
	Left    bool
}

// Player accumulates a player's cash movements across all tables.
type Player struct {
	Name     string
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
	Notes    []string

	stakes     map[string]*Stake
	stakeOrder []string
}

func newPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Notes:  []string{"Player Notes for " + name},
		stakes: make(map[string]*Stake),
	}
}

// Stake returns the player's position at a table, if they have been seen there.
func (p *Player) Stake(table string) (*Stake, bool) {
	s, ok := p.stakes[table]
	return s, ok
}

// Tables returns the tables the player was seen at, in first-seen order.
func (p *Player) Tables() []string {
	return append([]string(nil), p.stakeOrder...)
}

func (p *Player) join(table string) *Stake {
	s := &Stake{Table: table}
	p.stakes[table] = s
	p.stakeOrder = append(p.stakeOrder, table)
	return s
}

func (p *Player) note(at point, text string) {
	p.Notes = append(p.Notes, at.Time.Format(handlog.TimeLayout)+" table "+at.Table+" hand ("+at.Hand+") "+text)
}

// Transaction is one ledger-mutating action, in replay order.
type Transaction struct {
	Time      time.Time
	Table     string
	HandID    string
	Player    string
	Kind      ActionKind
	AmountIn  decimal.Decimal
	AmountOut decimal.Decimal
}

// Inconsistency records an active player whose declared stack did not match
// the expected one.
type Inconsistency struct {
	Player   string
	Table    string
	Hand     string
	Time     time.Time
	Observed decimal.Decimal
	Expected decimal.Decimal
}

// Settlement is a player's end-of-session position.
type Settlement struct {
	Player      string
	TotalIn     decimal.Decimal
	TotalOut    decimal.Decimal
	Disposition Disposition
	// Difference is the absolute gap between TotalIn and TotalOut.
	Difference decimal.Decimal
	Notes      []string
}

// point locates a transaction in time and in the log.
type point struct {
	Time  time.Time
	Table string
	Hand  string
}
