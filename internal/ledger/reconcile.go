package ledger

import "github.com/shopspring/decimal"

// applySeat checks a declared stack against the expected one. Seat lines are
// the only checkpoint where the model meets the log.
func (s *session) applySeat(at point, ev SeatEvent) error {
	p := s.player(ev.Player)
	st, known := p.stakes[at.Table]

	switch {
	case !known:
		st = p.join(at.Table)
		st.FirstBuyIn = ev.Stack
		st.Latest = ev.Stack
		s.credit(p, st, at, InitialBuyIn, ev.Stack)

	case st.Waiting || st.Left:
		// Off-hand changes while sitting out or away are legitimate.
		delta := ev.Stack.Sub(st.Latest)
		if !zeroCents(delta) {
			kind := AddedWhileWaiting
			if st.Left {
				kind = ReturnedToTable
			}
			s.adjust(p, st, at, ev.Stack, kind, ReducedWhileWaiting)
		}

	case !sameCents(ev.Stack, st.Latest):
		inc := Inconsistency{
			Player:   p.Name,
			Table:    at.Table,
			Hand:     at.Hand,
			Time:     at.Time,
			Observed: ev.Stack,
			Expected: st.Latest,
		}
		s.inconsistencies = append(s.inconsistencies, inc)
		s.logger.Warn("Inconsistent state",
			"player", p.Name, "table", at.Table, "hand", at.Hand,
			"has", FormatAmount(ev.Stack), "expected", FormatAmount(st.Latest))
		if s.opts.Policy == FailFast {
			return &InconsistencyError{Inconsistency: inc}
		}
		if !zeroCents(ev.Stack.Sub(st.Latest)) {
			s.adjust(p, st, at, ev.Stack, ConsistencyAddOn, ConsistencyDeduction)
		}
	}

	st.Left = false
	st.Waiting = ev.Waiting
	return nil
}

// adjust moves the expected stack to the observed one and books the gap as
// money in (up) or money out (down).
func (s *session) adjust(p *Player, st *Stake, at point, observed decimal.Decimal, up, down ActionKind) {
	delta := observed.Sub(st.Latest)
	st.Latest = observed
	if delta.IsPositive() {
		s.credit(p, st, at, up, delta)
		return
	}
	s.debit(p, st, at, down, delta.Neg())
}

func (s *session) applyAddOn(at point, ev AddOnEvent) {
	p := s.player(ev.Player)
	st, ok := p.stakes[at.Table]
	if !ok {
		st = p.join(at.Table)
		p.note(at, "joined by add-on")
	}
	st.Latest = st.Latest.Add(ev.Amount)
	s.credit(p, st, at, AddOn, ev.Amount)
}

// sweep stands up everyone with a live stake at the table who had no seat line
// in the hand.
func (s *session) sweep(at point, seated map[string]struct{}) {
	for _, p := range s.playerOrder {
		if _, ok := seated[p.Name]; ok {
			continue
		}
		st, ok := p.stakes[at.Table]
		if !ok || st.Left {
			continue
		}
		s.logger.Debug("Player stood up", "player", p.Name, "table", at.Table, "hand", at.Hand)
		s.closeOut(p, st, at, StoodUp)
	}
}

func (s *session) closeOut(p *Player, st *Stake, at point, kind ActionKind) {
	amount := st.Latest
	st.Latest = decimal.Zero
	st.Waiting = true
	st.Left = true
	s.debit(p, st, at, kind, amount)
}

func (s *session) credit(p *Player, st *Stake, at point, kind ActionKind, amount decimal.Decimal) {
	p.TotalIn = p.TotalIn.Add(amount)
	st.AmountIn = st.AmountIn.Add(amount)
	s.record(p, at, kind, amount, decimal.Zero)
}

func (s *session) debit(p *Player, st *Stake, at point, kind ActionKind, amount decimal.Decimal) {
	p.TotalOut = p.TotalOut.Add(amount)
	st.AmountOut = st.AmountOut.Add(amount)
	s.record(p, at, kind, decimal.Zero, amount)
}

func (s *session) record(p *Player, at point, kind ActionKind, in, out decimal.Decimal) {
	s.transactions = append(s.transactions, Transaction{
		Time:      at.Time,
		Table:     at.Table,
		HandID:    at.Hand,
		Player:    p.Name,
		Kind:      kind,
		AmountIn:  in,
		AmountOut: out,
	})
	amount := in
	if !kind.Inbound() {
		amount = out
	}
	p.note(at, kind.narrative(amount))
}
