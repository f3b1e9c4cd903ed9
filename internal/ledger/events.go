package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Event is a chip movement recognized on a hand line. The concrete types are
// SeatEvent, AddOnEvent, WinEvent and ContributionEvent.
type Event interface {
	isEvent()
}

// SeatEvent is a seat line declaring a player's stack at hand start.
type SeatEvent struct {
	Seat    int
	Player  string
	Stack   decimal.Decimal
	Waiting bool
}

// AddOnEvent records chips bought mid-session.
type AddOnEvent struct {
	Player string
	Amount decimal.Decimal
}

// WinEvent records a pot (or a share of one) awarded to a player.
type WinEvent struct {
	Player string
	Amount decimal.Decimal
}

// Contribution is one player's share of a pot.
type Contribution struct {
	Player string
	Amount decimal.Decimal
}

// ContributionEvent lists what each player put into the pot.
type ContributionEvent struct {
	Contributions []Contribution
}

func (SeatEvent) isEvent()         {}
func (AddOnEvent) isEvent()        {}
func (WinEvent) isEvent()          {}
func (ContributionEvent) isEvent() {}

const playerName = `[\p{L}\p{N}_-]+`

var (
	seatPattern  = regexp.MustCompile(`Seat (\d+): (` + playerName + `) \(([\d.]+)\)`)
	addOnPattern = regexp.MustCompile(`(` + playerName + `) adds ([\d.]+) chip`)
	winPattern   = regexp.MustCompile(`(` + playerName + `) (?:wins|splits).*Pot *\d? *\(([\d.]+)\)`)
	potPattern   = regexp.MustCompile(`Rake.*Pot.*Players \((.*)\)`)
)

// ParseLine extracts the events on one hand line. Most lines carry none.
// Amount errors are returned as *ParseError.
func ParseLine(line string) ([]Event, error) {
	var events []Event
	fail := func(err error) ([]Event, error) {
		return nil, &ParseError{Line: line, Err: err}
	}

	if m := seatPattern.FindStringSubmatch(line); m != nil {
		seat, _ := strconv.Atoi(m[1])
		stack, err := parseAmount(m[3])
		if err != nil {
			return fail(err)
		}
		events = append(events, SeatEvent{
			Seat:    seat,
			Player:  m[2],
			Stack:   stack,
			Waiting: isWaiting(line),
		})
	}

	if m := addOnPattern.FindStringSubmatch(line); m != nil {
		amount, err := parseAmount(m[2])
		if err != nil {
			return fail(err)
		}
		events = append(events, AddOnEvent{Player: m[1], Amount: amount})
	}

	if m := winPattern.FindStringSubmatch(line); m != nil {
		amount, err := parseAmount(m[2])
		if err != nil {
			return fail(err)
		}
		events = append(events, WinEvent{Player: m[1], Amount: amount})
	}

	if m := potPattern.FindStringSubmatch(line); m != nil {
		contributions, err := parseContributions(m[1])
		if err != nil {
			return fail(err)
		}
		events = append(events, ContributionEvent{Contributions: contributions})
	}

	return events, nil
}

// parseContributions reads "Name: amount, Name: amount".
func parseContributions(list string) ([]Contribution, error) {
	var out []Contribution
	for _, token := range strings.Split(list, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		parts := strings.Split(token, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed contribution %q", strings.TrimSpace(token))
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, fmt.Errorf("contribution %q has no player", strings.TrimSpace(token))
		}
		amount, err := parseAmount(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("contribution %q: %w", strings.TrimSpace(token), err)
		}
		out = append(out, Contribution{Player: name, Amount: amount})
	}
	return out, nil
}

func isWaiting(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "sitting") || strings.Contains(lower, "waiting")
}
