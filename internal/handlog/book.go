package handlog

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// ErrHandCollision is returned by Extract under the Reject policy when two
// headers reduce to the same hand number.
var ErrHandCollision = errors.New("handlog: duplicate hand number")

// CollisionPolicy decides what happens when a hand number is seen twice.
type CollisionPolicy int

const (
	// Warn replaces the earlier record and logs a warning.
	Warn CollisionPolicy = iota
	// Overwrite replaces the earlier record silently.
	Overwrite
	// Reject fails extraction.
	Reject
)

func (p CollisionPolicy) String() string {
	switch p {
	case Warn:
		return "warn"
	case Overwrite:
		return "overwrite"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// ParseCollisionPolicy maps a configuration value to a CollisionPolicy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn":
		return Warn, nil
	case "overwrite":
		return Overwrite, nil
	case "reject":
		return Reject, nil
	default:
		return Warn, fmt.Errorf("unknown collision policy %q", s)
	}
}

var (
	headerPattern = regexp.MustCompile(`Hand #(\d*)-(\d*) - (.*)$`)
	tablePattern  = regexp.MustCompile(`Table: (.*)$`)
)

// Book pools the hands of every source so they can be ordered globally.
type Book struct {
	policy CollisionPolicy
	logger *log.Logger

	hands      map[string]*Hand
	created    int
	collisions int

	tables    []string
	tableSeen map[string]struct{}
}

// NewBook creates an empty book.
func NewBook(logger *log.Logger, policy CollisionPolicy) *Book {
	if logger == nil {
		logger = log.Default()
	}
	return &Book{
		policy:    policy,
		logger:    logger,
		hands:     make(map[string]*Hand),
		tableSeen: make(map[string]struct{}),
	}
}

// Extract segments one source into hands. Lines before the first header, and
// lines after the blank line that ends a hand, are discarded. Header lines whose
// timestamp does not parse are treated as unrecognized text.
func (b *Book) Extract(src Source) error {
	var current *Hand
	for _, raw := range src.Lines {
		line := strings.TrimRight(raw, "\r\n")

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			current = nil
			ts, err := time.Parse(TimeLayout, strings.TrimSpace(m[3]))
			if err != nil {
				b.logger.Debug("Ignoring hand header with unreadable time", "source", src.Name, "line", line)
				continue
			}
			hand := &Hand{
				ID:            m[1],
				LocalSequence: m[2],
				Timestamp:     ts,
				Source:        src.Name,
			}
			if err := b.add(hand); err != nil {
				return err
			}
			current = hand
			continue
		}

		if current == nil {
			continue
		}
		if strings.TrimSpace(line) == "" {
			current = nil
			continue
		}
		if m := tablePattern.FindStringSubmatch(line); m != nil {
			current.Table = m[1]
			b.registerTable(m[1])
		}
		current.Lines = append(current.Lines, line)
	}
	return nil
}

// add stores a hand. A replacing hand keeps the creation slot of the one it
// replaces, which is what decides timestamp ties.
func (b *Book) add(h *Hand) error {
	if prev, ok := b.hands[h.ID]; ok {
		b.collisions++
		switch b.policy {
		case Reject:
			return fmt.Errorf("%w: hand %s in %s (first seen in %s)", ErrHandCollision, h.ID, h.Source, prev.Source)
		case Warn:
			b.logger.Warn("Replacing hand with duplicate number", "hand", h.ID, "source", h.Source, "previous", prev.Source)
		default:
			b.logger.Debug("Replacing hand with duplicate number", "hand", h.ID)
		}
		h.seq = prev.seq
		b.hands[h.ID] = h
		return nil
	}
	h.seq = b.created
	b.created++
	b.hands[h.ID] = h
	return nil
}

func (b *Book) registerTable(name string) {
	if _, ok := b.tableSeen[name]; ok {
		return
	}
	b.tableSeen[name] = struct{}{}
	b.tables = append(b.tables, name)
}

// Len returns the number of distinct hands.
func (b *Book) Len() int {
	return len(b.hands)
}

// Collisions returns how many headers repeated an earlier hand number.
func (b *Book) Collisions() int {
	return b.collisions
}

// Tables returns table names in first-seen order.
func (b *Book) Tables() []string {
	return slices.Clone(b.tables)
}

// Hand looks up a hand by its reduced number.
func (b *Book) Hand(id string) (*Hand, bool) {
	h, ok := b.hands[id]
	return h, ok
}

// Chronological returns every hand ordered by timestamp. Hands with equal
// timestamps keep the order in which they were first created, so the result
// depends on the order sources were extracted in.
func (b *Book) Chronological() []*Hand {
	out := make([]*Hand, 0, len(b.hands))
	for _, h := range b.hands {
		out = append(out, h)
	}
	slices.SortFunc(out, func(x, y *Hand) int {
		if c := x.Timestamp.Compare(y.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(x.seq, y.seq)
	})
	return out
}
