package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ActionKind classifies every ledger-mutating transaction.
type ActionKind int

const (
	InitialBuyIn ActionKind = iota
	AddOn
	AddedWhileWaiting
	ReturnedToTable
	ReducedWhileWaiting
	ConsistencyAddOn
	ConsistencyDeduction
	StoodUp
	EndedTable
)

// String returns the label written to the transaction log.
func (k ActionKind) String() string {
	switch k {
	case InitialBuyIn:
		return "initial buy in"
	case AddOn:
		return "add on"
	case AddedWhileWaiting:
		return "add on while waiting"
	case ReturnedToTable:
		return "returned to table"
	case ReducedWhileWaiting:
		return "reduction while waiting"
	case ConsistencyAddOn:
		return "adjusting for consistency - adding on"
	case ConsistencyDeduction:
		return "adjusting for consistency - deducting"
	case StoodUp:
		return "stood up with"
	case EndedTable:
		return "ended table with"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Inbound reports whether the kind moves money onto the table.
func (k ActionKind) Inbound() bool {
	switch k {
	case InitialBuyIn, AddOn, AddedWhileWaiting, ReturnedToTable, ConsistencyAddOn:
		return true
	default:
		return false
	}
}

// narrative renders the player-notes text for a transaction of this kind.
func (k ActionKind) narrative(amount decimal.Decimal) string {
	a := FormatAmount(amount)
	switch k {
	case InitialBuyIn:
		return "initial buy in " + a
	case AddOn:
		return "added on " + a
	case AddedWhileWaiting:
		return "while waiting added on by " + a
	case ReturnedToTable:
		return "player returned with " + a
	case ReducedWhileWaiting:
		return "while waiting reduced by " + a
	default:
		return k.String() + " " + a
	}
}

// Disposition is the settlement direction of a player.
type Disposition int

const (
	// Even means the player took out exactly what they put in.
	Even Disposition = iota
	// Down means the player put in more than they took out and owes the difference.
	Down
	// Up means the player took out more than they put in and is due the difference.
	Up
)

func (d Disposition) String() string {
	switch d {
	case Even:
		return "even"
	case Down:
		return "owes"
	case Up:
		return "due"
	default:
		return fmt.Sprintf("Disposition(%d)", int(d))
	}
}

// Policy controls what the engine does when an active player's declared stack
// disagrees with the expected one.
type Policy int

const (
	// ContinueAndAdjust logs a warning, books a correcting transaction and carries on.
	ContinueAndAdjust Policy = iota
	// FailFast stops the replay with an *InconsistencyError.
	FailFast
)

func (p Policy) String() string {
	switch p {
	case ContinueAndAdjust:
		return "continue"
	case FailFast:
		return "fail-fast"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "continue", "continue-and-adjust":
		return ContinueAndAdjust, nil
	case "fail-fast", "failfast":
		return FailFast, nil
	default:
		return ContinueAndAdjust, fmt.Errorf("unknown inconsistency policy %q", s)
	}
}
