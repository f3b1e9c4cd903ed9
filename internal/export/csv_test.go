package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/mavensledger/internal/config"
	"github.com/lox/mavensledger/internal/handlog"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = `Hand #1-1 - 2020-04-26 20:00:00
Table: Main
Seat 1: Alice (100)
Seat 2: Bob (100)
Alice wins Pot (30)
Rake (0) Pot (30) Players (Alice: 15, Bob: 15)

Hand #2-2 - 2020-04-26 20:01:00
Table: Main
Seat 2: Bob (85)
`

func replay(t *testing.T, text string) *ledger.Result {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	book := handlog.NewBook(logger, handlog.Warn)
	require.NoError(t, book.Extract(handlog.Source{Name: "s", Lines: strings.Split(text, "\n")}))
	res, err := ledger.NewEngine(logger, ledger.Options{}).Replay(book)
	require.NoError(t, err)
	return res
}

func TestWriteTransactions(t *testing.T) {
	res := replay(t, session)

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, res.Transactions))
	assert.Equal(t, strings.Join([]string{
		"Time,Table,Hand Number,Player,Action,Amount In,Amount Out",
		"2020-04-26 20:00:00,Main,1,Alice,initial buy in,100.00,",
		"2020-04-26 20:00:00,Main,1,Bob,initial buy in,100.00,",
		"2020-04-26 20:01:00,Main,2,Alice,stood up with,,115.00",
		"2020-04-26 20:01:00,Main,2,Bob,ended table with,,85.00",
		"",
	}, "\n"), buf.String())
}

func TestBalances(t *testing.T) {
	res := replay(t, session)
	r := roster.New([]config.PlayerConfig{{ScreenName: "Alice", Alias: "al"}})

	b := Balances{
		Date:        SessionDate(res, quartz.NewMock(t)),
		Note:        "session note",
		Settlements: res.Settlements,
		Roster:      r,
	}
	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf))
	assert.Equal(t, strings.Join([]string{
		"Date,Disposition,Player,Amount,Note",
		"04/26/2020,due,al,15.00,session note",
		"04/26/2020,owes,Bob,15.00,session note",
		"",
	}, "\n"), buf.String())
}

func TestSessionDateFallsBackToClock(t *testing.T) {
	clock := quartz.NewMock(t)
	now := time.Date(2021, time.March, 3, 12, 0, 0, 0, time.UTC)
	clock.Set(now)
	assert.Equal(t, now, SessionDate(&ledger.Result{}, clock))
}

func TestSave(t *testing.T) {
	res := replay(t, session)
	dir := t.TempDir()

	txPath := filepath.Join(dir, "gamelog.csv")
	require.NoError(t, SaveTransactions(txPath, res.Transactions))
	data, err := os.ReadFile(txPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Time,Table,Hand Number"))

	balPath := filepath.Join(dir, "balances.csv")
	require.NoError(t, Balances{Date: res.LastHand, Settlements: res.Settlements}.Save(balPath))
	data, err = os.ReadFile(balPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "owes,Bob,15.00")
}

func TestWriteRoster(t *testing.T) {
	r := roster.New([]config.PlayerConfig{
		{ScreenName: "Bob", Alias: "bobby"},
		{ScreenName: "alice", Alias: "al", Email: "alice@example.com"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteRoster(&buf, r.Entries()))
	assert.Equal(t, strings.Join([]string{
		"Poker Mavens Screen Name,Nickname,EMail",
		"alice,al,alice@example.com",
		"Bob,bobby,",
		"",
	}, "\n"), buf.String())
}
