package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/lox/mavensledger/internal/config"
	"github.com/lox/mavensledger/internal/handlog"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
	"github.com/lox/mavensledger/internal/source"
)

var errNoFiles = errors.New("must provide a name of a log file to process")

// ReplayFlags are shared by every command that replays hand histories.
type ReplayFlags struct {
	Files      []string `arg:"" optional:"" type:"existingfile" help:"Poker Mavens hand history files"`
	Glob       []string `help:"Glob pattern matching hand history files (repeatable)"`
	Config     string   `short:"c" default:"mavensledger.hcl" help:"Configuration file (HCL, or JSON when it ends in .json)"`
	Gate       bool     `help:"Ignore hands at each table until its first table reset"`
	Policy     string   `help:"Inconsistency policy: continue or fail-fast (overrides config)"`
	Collisions string   `help:"Duplicate hand number policy: warn, overwrite or reject (overrides config)"`
	Debug      bool     `help:"Enable debug logging"`
}

// session is everything a replay produced.
type session struct {
	cfg    *config.Config
	roster *roster.Roster
	book   *handlog.Book
	result *ledger.Result
	files  int
}

// apply layers command-line overrides on top of the file configuration.
func (f *ReplayFlags) apply(cfg *config.Config) error {
	if f.Gate {
		cfg.Session.Gate = true
	}
	if f.Policy != "" {
		cfg.Session.Policy = f.Policy
	}
	if f.Collisions != "" {
		cfg.Session.Collisions = f.Collisions
	}
	return cfg.Validate()
}

func (f *ReplayFlags) replay(ctx context.Context, logger *log.Logger) (*session, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if err := f.apply(cfg); err != nil {
		return nil, err
	}

	paths, err := source.Resolve(f.Files, f.Glob)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errNoFiles
	}

	sources, err := source.ReadAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	collisions, err := cfg.CollisionPolicy()
	if err != nil {
		return nil, err
	}
	book := handlog.NewBook(logger, collisions)
	for _, src := range sources {
		if err := book.Extract(src); err != nil {
			return nil, err
		}
	}
	logger.Debug("Extracted hands", "files", len(sources), "hands", book.Len(), "tables", len(book.Tables()))

	opts, err := cfg.LedgerOptions()
	if err != nil {
		return nil, err
	}
	res, err := ledger.NewEngine(logger, opts).Replay(book)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:    cfg,
		roster: roster.New(cfg.Players),
		book:   book,
		result: res,
		files:  len(sources),
	}, nil
}
