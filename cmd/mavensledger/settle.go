package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/mavensledger/internal/export"
	"github.com/lox/mavensledger/internal/notify"
	"github.com/lox/mavensledger/internal/report"
	"golang.org/x/term"
)

// SettleCmd replays the logs, prints the summary and optionally writes CSV
// files and mails each player.
type SettleCmd struct {
	Replay ReplayFlags `embed:""`

	CSV      bool   `help:"Write the transaction and balance CSV files"`
	Email    bool   `help:"E-mail each player on the roster their notes"`
	Password string `env:"MAVENSLEDGER_MAIL_PASSWORD" help:"SMTP password, prompted for when --email is set and this is empty"`
	Quiet    bool   `short:"q" help:"Leave per-player notes out of the summary"`
	NoColor  bool   `help:"Disable colored output"`
}

func (c *SettleCmd) Run() error {
	logger := setupLogger(c.Replay.Debug)
	ctx := setupSignalHandler(logger)
	return c.run(ctx, logger, os.Stdout, quartz.NewReal(), nil)
}

// run does the work of Run. A nil send uses smtp.SendMail.
func (c *SettleCmd) run(ctx context.Context, logger *log.Logger, out io.Writer, clock quartz.Clock, send notify.SendFunc) error {
	s, err := c.Replay.replay(ctx, logger)
	if err != nil {
		return err
	}

	report.NewPrinter(out, report.Options{
		Files:      s.files,
		Collisions: s.book.Collisions(),
		Gate:       s.cfg.Session.Gate,
		Quiet:      c.Quiet,
		NoColor:    c.NoColor,
	}).Print(s.result, s.roster)

	date := export.SessionDate(s.result, clock)

	if c.CSV {
		txPath := s.cfg.OutputPath(s.cfg.Output.TransactionsCSV)
		if err := export.SaveTransactions(txPath, s.result.Transactions); err != nil {
			return fmt.Errorf("writing transactions: %w", err)
		}
		balPath := s.cfg.OutputPath(s.cfg.Output.BalancesCSV)
		balances := export.Balances{
			Date:        date,
			Note:        s.cfg.Output.BalanceNote,
			Settlements: s.result.Settlements,
			Roster:      s.roster,
		}
		if err := balances.Save(balPath); err != nil {
			return fmt.Errorf("writing balances: %w", err)
		}
		logger.Info("Wrote CSV files", "transactions", txPath, "balances", balPath)
	}

	if c.Email {
		password, err := c.mailPassword()
		if err != nil {
			return err
		}
		opts := []notify.Option{notify.WithClock(clock)}
		if send != nil {
			opts = append(opts, notify.WithSendFunc(send))
		}
		mailer := notify.NewMailer(notify.Config{
			Addr:          s.cfg.MailAddress(),
			From:          s.cfg.Mail.From,
			CC:            s.cfg.Mail.CC,
			Username:      s.cfg.Mail.Username,
			Password:      password,
			SubjectPrefix: s.cfg.Mail.SubjectPrefix,
		}, s.roster, logger, opts...)
		n, err := mailer.Send(date, s.result.Settlements)
		fmt.Fprintf(out, "Email messages sent: %d\n", n)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *SettleCmd) mailPassword() (string, error) {
	if c.Password != "" {
		return c.Password, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no mail password given and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Mail password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading mail password: %w", err)
	}
	return string(b), nil
}
