// Package tui is a terminal browser for per-player session notes.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
)

const helpText = "←/h prev • →/l next • ↑/↓ scroll • q quit"

// Browser shows one player's notes at a time.
type Browser struct {
	logger      *log.Logger
	settlements []ledger.Settlement
	roster      *roster.Roster

	notes    viewport.Model
	index    int
	width    int
	height   int
	quitting bool
}

// NewBrowser creates a browser over the settled players. A nil roster shows
// screen names only.
func NewBrowser(logger *log.Logger, settlements []ledger.Settlement, r *roster.Roster) *Browser {
	// Sized properly on the first WindowSizeMsg
	vp := viewport.New(10, 5)
	b := &Browser{
		logger:      logger.WithPrefix("tui"),
		settlements: settlements,
		roster:      r,
		notes:       vp,
	}
	b.refresh()
	return b
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.resize()
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			b.quitting = true
			return b, tea.Quit
		case "left", "h":
			b.move(-1)
			return b, nil
		case "right", "l":
			b.move(1)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.notes, cmd = b.notes.Update(msg)
	return b, cmd
}

// View renders the browser.
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}
	if b.width == 0 || b.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(" " + b.title() + " ")
	pane := PaneStyle.
		Width(max(b.width-2, 1)).
		Height(b.notes.Height).
		Render(b.notes.View())
	help := HelpStyle.Render(helpText)

	return lipgloss.JoinVertical(lipgloss.Left, header, pane, help)
}

// Current returns the settlement on screen.
func (b *Browser) Current() (ledger.Settlement, bool) {
	if len(b.settlements) == 0 {
		return ledger.Settlement{}, false
	}
	return b.settlements[b.index], true
}

func (b *Browser) move(delta int) {
	n := len(b.settlements)
	if n == 0 {
		return
	}
	b.index = (b.index + delta + n) % n
	b.logger.Debug("Showing player", "player", b.settlements[b.index].Player)
	b.refresh()
}

func (b *Browser) resize() {
	// header, help and the pane border
	b.notes.Width = max(b.width-2, 1)
	b.notes.Height = max(b.height-4, 1)
	b.refresh()
}

func (b *Browser) refresh() {
	b.notes.SetContent(b.content())
	b.notes.GotoTop()
}

func (b *Browser) title() string {
	st, ok := b.Current()
	if !ok {
		return "No players"
	}
	name := st.Player
	if b.roster != nil {
		if alias := b.roster.Alias(st.Player); alias != st.Player {
			name = fmt.Sprintf("%s (%s)", st.Player, alias)
		}
	}
	return fmt.Sprintf("Player %d/%d: %s", b.index+1, len(b.settlements), name)
}

func (b *Browser) content() string {
	st, ok := b.Current()
	if !ok {
		return NotesStyle.Render("Nothing was replayed.")
	}

	lines := make([]string, 0, len(st.Notes))
	for i, line := range st.Notes {
		switch {
		case i == len(st.Notes)-1:
			lines = append(lines, dispositionStyle(st.Disposition).Render(line))
		case strings.HasPrefix(line, "Total "):
			lines = append(lines, TotalsStyle.Render(line))
		default:
			lines = append(lines, NotesStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func dispositionStyle(d ledger.Disposition) lipgloss.Style {
	switch d {
	case ledger.Down:
		return OwesStyle
	case ledger.Up:
		return DueStyle
	default:
		return EvenStyle
	}
}
