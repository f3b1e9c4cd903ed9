package report

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/mavensledger/internal/config"
	"github.com/lox/mavensledger/internal/handlog"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = `Hand #7-3 - 2020-04-26 19:00:00
Table: Main
Seat 1: Ghost (10)

Hand #1-1 - 2020-04-26 20:00:00
Table: Main
Seat 1: Alice (100)
Seat 2: Bob (100)
Alice wins Pot (30)
Rake (0) Pot (30) Players (Alice: 15, Bob: 15)

Hand #2-2 - 2020-04-26 20:01:00
Table: Main
Seat 1: Alice (115)
Seat 2: Bob (90)
`

func replay(t *testing.T, opts ledger.Options) *ledger.Result {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	book := handlog.NewBook(logger, handlog.Warn)
	require.NoError(t, book.Extract(handlog.Source{Name: "s", Lines: strings.Split(session, "\n")}))
	res, err := ledger.NewEngine(logger, opts).Replay(book)
	require.NoError(t, err)
	return res
}

func TestPrint(t *testing.T) {
	res := replay(t, ledger.Options{Gate: true})
	r := roster.New([]config.PlayerConfig{{ScreenName: "Alice", Alias: "al"}})

	var buf bytes.Buffer
	NewPrinter(&buf, Options{Files: 1, Gate: true, NoColor: true}).Print(res, r)
	out := buf.String()

	assert.Contains(t, out, "Files: 1\n")
	assert.Contains(t, out, "Players: 2\n")
	assert.Contains(t, out, "Table Main: Processed hands: 2")
	assert.Contains(t, out, "(2020-04-26 20:00:00 to 2020-04-26 20:01:00)")
	assert.Contains(t, out, "  Skipped hands: 1\n")
	assert.Contains(t, out, "Inconsistent stacks adjusted: 1")
	assert.Contains(t, out, "Player Notes for Bob")
	assert.Contains(t, out, "adjusting for consistency - adding on 5.00")
	assert.Contains(t, out, "al                   due   15.00")
	assert.Contains(t, out, "Bob                  owes  15.00")
	assert.Contains(t, out, "Net balance: 0.00")
}

func TestPrintQuiet(t *testing.T) {
	res := replay(t, ledger.Options{})

	var buf bytes.Buffer
	NewPrinter(&buf, Options{Files: 1, Quiet: true, NoColor: true}).Print(res, nil)
	out := buf.String()

	assert.NotContains(t, out, "Player Notes for")
	assert.NotContains(t, out, "Skipped hands")
	assert.Contains(t, out, "Players: 3\n")
	assert.Contains(t, out, "Net balance:")
}
