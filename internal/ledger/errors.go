package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTable is returned when a hand reaches replay without a table line.
	ErrMissingTable = errors.New("ledger: hand has no table")
	// ErrUnknownPlayer is returned when a win or pot contribution names a player
	// that was never seated at the hand's table.
	ErrUnknownPlayer = errors.New("ledger: player not seated at table")
)

// ParseError reports a hand line whose amounts could not be read.
type ParseError struct {
	Hand string
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Hand == "" {
		return fmt.Sprintf("parse %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("hand %s: parse %q: %v", e.Hand, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InconsistencyError is returned under FailFast when an active player's
// declared stack differs from the expected one.
type InconsistencyError struct {
	Inconsistency
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent state for %s at table %s hand %s: has %s expected %s",
		e.Player, e.Table, e.Hand, FormatAmount(e.Observed), FormatAmount(e.Expected))
}
