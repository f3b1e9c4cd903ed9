package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Settle  SettleCmd        `cmd:"" default:"withargs" help:"Replay hand histories and settle every player"`
	Browse  BrowseCmd        `cmd:"" help:"Replay hand histories and browse player notes"`
	Roster  RosterCmd        `cmd:"" help:"List the configured player roster"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mavensledger"),
		kong.Description("Chip ledger reconciliation for Poker Mavens hand histories"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
