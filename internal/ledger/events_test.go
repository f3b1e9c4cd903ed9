package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Event
	}{
		{
			name: "seat",
			line: "Seat 3: Alice (100.50)",
			want: []Event{SeatEvent{Seat: 3, Player: "Alice", Stack: d("100.50")}},
		},
		{
			name: "seat sitting out",
			line: "Seat 4: Bob-2 (80) - Sitting Out",
			want: []Event{SeatEvent{Seat: 4, Player: "Bob-2", Stack: d("80"), Waiting: true}},
		},
		{
			name: "seat waiting for big blind",
			line: "Seat 5: Zoë (12) - waiting for big blind",
			want: []Event{SeatEvent{Seat: 5, Player: "Zoë", Stack: d("12"), Waiting: true}},
		},
		{
			name: "add on",
			line: "Carol adds 25 chips (125 total)",
			want: []Event{AddOnEvent{Player: "Carol", Amount: d("25")}},
		},
		{
			name: "win",
			line: "Alice wins Pot (20)",
			want: []Event{WinEvent{Player: "Alice", Amount: d("20")}},
		},
		{
			name: "split side pot",
			line: "Bob splits Side Pot 1 (7.50) with Two Pair",
			want: []Event{WinEvent{Player: "Bob", Amount: d("7.50")}},
		},
		{
			name: "contributions",
			line: "Rake (0) Pot (30) Players (Alice: 10, Bob: 20)",
			want: []Event{ContributionEvent{Contributions: []Contribution{
				{Player: "Alice", Amount: d("10")},
				{Player: "Bob", Amount: d("20")},
			}}},
		},
		{
			name: "unrelated",
			line: "Dealt to Alice [As Kd]",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assertEvent(t, tt.want[i], got[i])
			}
		})
	}
}

func assertEvent(t *testing.T, want, got Event) {
	t.Helper()
	switch w := want.(type) {
	case SeatEvent:
		g, ok := got.(SeatEvent)
		require.True(t, ok, "want SeatEvent, got %T", got)
		assert.Equal(t, w.Seat, g.Seat)
		assert.Equal(t, w.Player, g.Player)
		assert.True(t, w.Stack.Equal(g.Stack), "stack %s != %s", w.Stack, g.Stack)
		assert.Equal(t, w.Waiting, g.Waiting)
	case AddOnEvent:
		g, ok := got.(AddOnEvent)
		require.True(t, ok, "want AddOnEvent, got %T", got)
		assert.Equal(t, w.Player, g.Player)
		assert.True(t, w.Amount.Equal(g.Amount))
	case WinEvent:
		g, ok := got.(WinEvent)
		require.True(t, ok, "want WinEvent, got %T", got)
		assert.Equal(t, w.Player, g.Player)
		assert.True(t, w.Amount.Equal(g.Amount), "amount %s != %s", w.Amount, g.Amount)
	case ContributionEvent:
		g, ok := got.(ContributionEvent)
		require.True(t, ok, "want ContributionEvent, got %T", got)
		require.Len(t, g.Contributions, len(w.Contributions))
		for i, c := range w.Contributions {
			assert.Equal(t, c.Player, g.Contributions[i].Player)
			assert.True(t, c.Amount.Equal(g.Contributions[i].Amount))
		}
	default:
		t.Fatalf("unexpected event type %T", want)
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{
		"Rake (0) Pot (10) Players (Alice 10)",
		"Rake (0) Pot (10) Players (Alice: 5: 5)",
		"Rake (0) Pot (10) Players (Alice: ten)",
		"Seat 1: Alice (1.2.3)",
	} {
		_, err := ParseLine(line)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, line)
		assert.Equal(t, line, pe.Line)
	}
}
