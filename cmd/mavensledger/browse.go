package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/mavensledger/internal/tui"
)

// BrowseCmd replays the logs and opens the notes browser.
type BrowseCmd struct {
	Replay ReplayFlags `embed:""`
}

func (c *BrowseCmd) Run() error {
	logger := setupLogger(c.Replay.Debug)
	ctx := setupSignalHandler(logger)

	s, err := c.Replay.replay(ctx, logger)
	if err != nil {
		return err
	}

	browser := tui.NewBrowser(logger, s.result.Settlements, s.roster)
	p := tea.NewProgram(browser, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("notes browser: %w", err)
	}
	return nil
}
