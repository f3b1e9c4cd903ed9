package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/mavensledger/internal/config"
	"github.com/lox/mavensledger/internal/export"
	"github.com/lox/mavensledger/internal/roster"
)

// RosterCmd prints the configured players.
type RosterCmd struct {
	Config string `short:"c" default:"mavensledger.hcl" help:"Configuration file (HCL, or JSON when it ends in .json)"`
	CSV    bool   `help:"Print as CSV"`
}

func (c *RosterCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *RosterCmd) run(out io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	entries := roster.New(cfg.Players).Entries()

	if c.CSV {
		return export.WriteRoster(out, entries)
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%-20s %-20s %s\n", e.ScreenName, e.Alias, e.Email)
	}
	return nil
}
