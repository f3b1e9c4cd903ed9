// Package roster resolves Poker Mavens screen names to the aliases and e-mail
// addresses used when presenting settlements.
package roster

import (
	"slices"
	"strings"

	"github.com/lox/mavensledger/internal/config"
	"golang.org/x/text/cases"
)

// Entry is one known player.
type Entry struct {
	ScreenName string
	Alias      string
	Email      string
}

// Roster is a read-only screen-name index.
type Roster struct {
	entries map[string]Entry
}

// New builds a roster from configured players.
func New(players []config.PlayerConfig) *Roster {
	r := &Roster{entries: make(map[string]Entry, len(players))}
	for _, p := range players {
		r.entries[p.ScreenName] = Entry{ScreenName: p.ScreenName, Alias: p.Alias, Email: p.Email}
	}
	return r
}

// Lookup returns the entry for a screen name.
func (r *Roster) Lookup(screenName string) (Entry, bool) {
	e, ok := r.entries[screenName]
	return e, ok
}

// Alias returns the display name for a screen name, or the screen name itself
// when the player is not on the roster.
func (r *Roster) Alias(screenName string) string {
	if e, ok := r.entries[screenName]; ok && e.Alias != "" {
		return e.Alias
	}
	return screenName
}

// Email returns the player's address if one is known.
func (r *Roster) Email(screenName string) (string, bool) {
	e, ok := r.entries[screenName]
	if !ok || e.Email == "" {
		return "", false
	}
	return e.Email, true
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.entries)
}

// Entries returns all entries sorted case-insensitively by screen name.
func (r *Roster) Entries() []Entry {
	fold := cases.Fold()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := strings.Compare(fold.String(a.ScreenName), fold.String(b.ScreenName)); c != 0 {
			return c
		}
		return strings.Compare(a.ScreenName, b.ScreenName)
	})
	return out
}
