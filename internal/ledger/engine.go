// Package ledger replays chronologically ordered hands against a running model
// of every player's chips and reconciles it with the stacks the log declares.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/mavensledger/internal/handlog"
	"github.com/shopspring/decimal"
)

// Options configures a replay.
type Options struct {
	// Gate holds back each table's hands until one with local sequence "1".
	Gate   bool
	Policy Policy
}

// Engine replays a Book of hands.
type Engine struct {
	logger *log.Logger
	opts   Options
}

// NewEngine creates an engine.
func NewEngine(logger *log.Logger, opts Options) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{logger: logger, opts: opts}
}

// Result is everything a replay produced.
type Result struct {
	// Players and Tables are in first-seen order.
	Players         []*Player
	Tables          []*Table
	Transactions    []Transaction
	Inconsistencies []Inconsistency
	Settlements     []Settlement
	// NetBalance is what down players owe minus what up players are due. It is
	// zero when chips were conserved.
	NetBalance decimal.Decimal
	// LastHand is the timestamp of the last replayed hand, zero if none was.
	LastHand time.Time
	Replayed int
}

// Player finds a player by log name.
func (r *Result) Player(name string) (*Player, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Table finds a table by name.
func (r *Result) Table(name string) (*Table, bool) {
	for _, t := range r.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Replay applies every hand in the book in chronological order, closes out
// anyone still seated and computes settlements. It is a single forward pass;
// corrected state is never revisited.
func (e *Engine) Replay(book *handlog.Book) (*Result, error) {
	s := newSession(e.logger, e.opts)
	for _, name := range book.Tables() {
		s.table(name)
	}
	for _, h := range book.Chronological() {
		if err := s.replayHand(h); err != nil {
			return nil, err
		}
	}
	s.finalize()
	return s.result(), nil
}

// session owns all mutable state of one replay.
type session struct {
	logger *log.Logger
	opts   Options

	players     map[string]*Player
	playerOrder []*Player
	tables      map[string]*Table
	tableOrder  []*Table

	transactions    []Transaction
	inconsistencies []Inconsistency
	settlements     []Settlement
	netBalance      decimal.Decimal
	lastHand        time.Time
	replayed        int
}

func newSession(logger *log.Logger, opts Options) *session {
	return &session{
		logger:  logger,
		opts:    opts,
		players: make(map[string]*Player),
		tables:  make(map[string]*Table),
	}
}

func (s *session) table(name string) *Table {
	if t, ok := s.tables[name]; ok {
		return t
	}
	t := &Table{Name: name, gateOpen: !s.opts.Gate}
	s.tables[name] = t
	s.tableOrder = append(s.tableOrder, t)
	return t
}

func (s *session) player(name string) *Player {
	if p, ok := s.players[name]; ok {
		return p
	}
	p := newPlayer(name)
	s.players[name] = p
	s.playerOrder = append(s.playerOrder, p)
	return p
}

func (s *session) replayHand(h *handlog.Hand) error {
	if !h.HasTable() {
		return fmt.Errorf("%w: hand %s from %s", ErrMissingTable, h.ID, h.Source)
	}
	t := s.table(h.Table)
	if !t.gateOpen {
		if h.LocalSequence != "1" {
			t.Skipped++
			s.logger.Debug("Skipping hand before table reset", "table", t.Name, "hand", h.ID, "local", h.LocalSequence)
			return nil
		}
		t.gateOpen = true
		s.logger.Debug("Table reset found, replaying", "table", t.Name, "hand", h.ID, "skipped", t.Skipped)
	}

	t.record(h)
	s.lastHand = h.Timestamp
	s.replayed++

	at := point{Time: h.Timestamp, Table: t.Name, Hand: h.ID}
	seated := make(map[string]struct{})
	for _, line := range h.Lines {
		events, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Hand = h.ID
			}
			return err
		}
		for _, ev := range events {
			if err := s.apply(at, ev, seated); err != nil {
				return err
			}
		}
	}
	s.sweep(at, seated)
	return nil
}

func (s *session) apply(at point, ev Event, seated map[string]struct{}) error {
	switch ev := ev.(type) {
	case SeatEvent:
		seated[ev.Player] = struct{}{}
		return s.applySeat(at, ev)
	case AddOnEvent:
		s.applyAddOn(at, ev)
	case WinEvent:
		st, err := s.seatedStake(at, ev.Player)
		if err != nil {
			return err
		}
		st.Latest = st.Latest.Add(ev.Amount)
	case ContributionEvent:
		for _, c := range ev.Contributions {
			st, err := s.seatedStake(at, c.Player)
			if err != nil {
				return err
			}
			st.Latest = st.Latest.Sub(c.Amount)
		}
	default:
		return fmt.Errorf("ledger: unhandled event %T", ev)
	}
	return nil
}

func (s *session) seatedStake(at point, name string) (*Stake, error) {
	if p, ok := s.players[name]; ok {
		if st, ok := p.stakes[at.Table]; ok {
			return st, nil
		}
	}
	return nil, fmt.Errorf("%w: %s at %s in hand %s", ErrUnknownPlayer, name, at.Table, at.Hand)
}

func (s *session) result() *Result {
	return &Result{
		Players:         s.playerOrder,
		Tables:          s.tableOrder,
		Transactions:    s.transactions,
		Inconsistencies: s.inconsistencies,
		Settlements:     s.settlements,
		NetBalance:      s.netBalance,
		LastHand:        s.lastHand,
		Replayed:        s.replayed,
	}
}
