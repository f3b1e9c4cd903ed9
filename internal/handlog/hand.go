// Package handlog segments Poker Mavens hand-history text into hand records and
// orders them chronologically across every input source.
//
// Replay needs the global time order of all hands before the first one can be
// applied, so the package works in two passes: every source is extracted into a
// Book, then Book.Chronological returns the pooled hands sorted by timestamp.
package handlog

import "time"

// TimeLayout is the timestamp format used on hand header lines.
const TimeLayout = "2006-01-02 15:04:05"

// Hand is one hand record extracted from a log.
type Hand struct {
	// ID is the primary hand number with the local suffix removed.
	ID string
	// LocalSequence is the per-table suffix of the hand number ("1" marks a reset).
	LocalSequence string
	Timestamp     time.Time
	// Table is empty when no "Table:" line was seen for the hand.
	Table  string
	Source string
	Lines  []string

	seq int
}

// HasTable reports whether a table line was seen for the hand.
func (h *Hand) HasTable() bool {
	return h.Table != ""
}

// Source is one input's worth of log lines, in file order.
type Source struct {
	Name  string
	Lines []string
}
