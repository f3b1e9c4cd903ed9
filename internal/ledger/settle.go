package ledger

// finalize closes out every stake still open at the end of the logs, using the
// table's last replayed hand as context, then settles each player.
func (s *session) finalize() {
	for _, t := range s.tableOrder {
		at := point{Time: t.Latest, Table: t.Name, Hand: t.LastHandID}
		for _, p := range s.playerOrder {
			st, ok := p.stakes[t.Name]
			if !ok || st.Left {
				continue
			}
			s.closeOut(p, st, at, EndedTable)
		}
	}

	for _, p := range s.playerOrder {
		s.settlements = append(s.settlements, s.settle(p))
	}
}

func (s *session) settle(p *Player) Settlement {
	st := Settlement{
		Player:   p.Name,
		TotalIn:  p.TotalIn,
		TotalOut: p.TotalOut,
	}
	p.Notes = append(p.Notes,
		"Total IN "+FormatAmount(p.TotalIn),
		"Total OUT "+FormatAmount(p.TotalOut))

	switch p.TotalIn.Round(2).Cmp(p.TotalOut.Round(2)) {
	case 0:
		st.Disposition = Even
		p.Notes = append(p.Notes, p.Name+" breaks even.")
	case 1:
		st.Disposition = Down
		st.Difference = p.TotalIn.Sub(p.TotalOut)
		s.netBalance = s.netBalance.Add(st.Difference)
		p.Notes = append(p.Notes, p.Name+" is down "+FormatAmount(st.Difference))
	default:
		st.Disposition = Up
		st.Difference = p.TotalOut.Sub(p.TotalIn)
		s.netBalance = s.netBalance.Sub(st.Difference)
		p.Notes = append(p.Notes, p.Name+" is up "+FormatAmount(st.Difference))
	}
	st.Notes = p.Notes
	return st
}
