package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/mavensledger/internal/config"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBrowser(t *testing.T) *Browser {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	settlements := []ledger.Settlement{
		{Player: "Alice", Disposition: ledger.Up, Notes: []string{"Player Notes for Alice", "Total IN 100.00", "Total OUT 115.00", "Alice is up 15.00"}},
		{Player: "Bob", Disposition: ledger.Down, Notes: []string{"Player Notes for Bob", "Total IN 100.00", "Total OUT 85.00", "Bob is down 15.00"}},
		{Player: "Carol", Disposition: ledger.Even, Notes: []string{"Player Notes for Carol", "Carol breaks even."}},
	}
	r := roster.New([]config.PlayerConfig{{ScreenName: "Alice", Alias: "al"}})
	b := NewBrowser(logger, settlements, r)
	b.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return b
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func current(t *testing.T, b *Browser) string {
	t.Helper()
	st, ok := b.Current()
	require.True(t, ok)
	return st.Player
}

func TestBrowserNavigation(t *testing.T) {
	b := testBrowser(t)
	assert.Equal(t, "Alice", current(t, b))

	b.Update(key("right"))
	assert.Equal(t, "Bob", current(t, b))

	b.Update(key("l"))
	assert.Equal(t, "Carol", current(t, b))

	b.Update(key("l"))
	assert.Equal(t, "Alice", current(t, b), "wraps forward")

	b.Update(key("h"))
	assert.Equal(t, "Carol", current(t, b), "wraps backward")

	b.Update(key("left"))
	assert.Equal(t, "Bob", current(t, b))
}

func TestBrowserView(t *testing.T) {
	b := testBrowser(t)

	view := b.View()
	assert.Contains(t, view, "Player 1/3: Alice (al)")
	assert.Contains(t, view, "Alice is up 15.00")
	assert.Contains(t, view, "q quit")

	b.Update(key("right"))
	view = b.View()
	assert.Contains(t, view, "Player 2/3: Bob")
	assert.NotContains(t, view, "Bob (")
	assert.Contains(t, view, "Bob is down 15.00")
}

func TestBrowserQuit(t *testing.T) {
	b := testBrowser(t)

	_, cmd := b.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, b.View())
}

func TestBrowserEmpty(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	b := NewBrowser(logger, nil, nil)

	assert.Equal(t, "Loading...", b.View())

	b.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	b.Update(key("right"))
	_, ok := b.Current()
	assert.False(t, ok)
	assert.Contains(t, b.View(), "No players")
}
