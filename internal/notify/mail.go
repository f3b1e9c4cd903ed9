// Package notify e-mails each player their session notes.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/mavensledger/internal/export"
	"github.com/lox/mavensledger/internal/ledger"
	"github.com/lox/mavensledger/internal/roster"
)

const dateHeaderLayout = "Mon, 02 Jan 2006 15:04:05 -0700 (MST)"

// SendFunc delivers one message. smtp.SendMail satisfies it.
type SendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// Config describes the mail account.
type Config struct {
	Addr          string
	From          string
	CC            string
	Username      string
	Password      string
	SubjectPrefix string
}

// Mailer sends player notes to everyone on the roster with an address.
type Mailer struct {
	cfg    Config
	roster *roster.Roster
	clock  quartz.Clock
	logger *log.Logger
	send   SendFunc
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithSendFunc replaces smtp.SendMail.
func WithSendFunc(fn SendFunc) Option {
	return func(m *Mailer) { m.send = fn }
}

// WithClock sets the clock used for the Date header.
func WithClock(clock quartz.Clock) Option {
	return func(m *Mailer) { m.clock = clock }
}

// NewMailer creates a mailer.
func NewMailer(cfg Config, r *roster.Roster, logger *log.Logger, opts ...Option) *Mailer {
	m := &Mailer{
		cfg:    cfg,
		roster: r,
		clock:  quartz.NewReal(),
		logger: logger,
		send:   smtp.SendMail,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send mails every settled player that has a roster address and returns how
// many messages went out. It stops at the first delivery failure.
func (m *Mailer) Send(sessionDate time.Time, settlements []ledger.Settlement) (int, error) {
	var auth smtp.Auth
	if m.cfg.Password != "" {
		user := m.cfg.Username
		if user == "" {
			user = m.cfg.From
		}
		host := m.cfg.Addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", user, m.cfg.Password, host)
	}

	sent := 0
	for _, s := range settlements {
		to, ok := m.roster.Email(s.Player)
		if !ok {
			continue
		}
		recipients := []string{to}
		if m.cfg.CC != "" {
			recipients = append([]string{m.cfg.CC}, recipients...)
		}
		msg := m.compose(to, sessionDate, s)
		if err := m.send(m.cfg.Addr, auth, m.cfg.From, recipients, msg); err != nil {
			return sent, fmt.Errorf("mailing %s: %w", s.Player, err)
		}
		m.logger.Debug("Mailed player notes", "player", s.Player, "to", to)
		sent++
	}
	return sent, nil
}

func (m *Mailer) compose(to string, sessionDate time.Time, s ledger.Settlement) []byte {
	subject := m.cfg.SubjectPrefix + sessionDate.Format(export.DateLayout) + " for " + s.Player

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if m.cfg.CC != "" {
		fmt.Fprintf(&b, "CC: %s\r\n", m.cfg.CC)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", m.clock.Now().Format(dateHeaderLayout))
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(strings.Join(s.Notes, "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
