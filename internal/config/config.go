// Package config loads mavensledger settings and the player roster from an HCL
// file, or from a JSON file using the HCL JSON syntax.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/mavensledger/internal/handlog"
	"github.com/lox/mavensledger/internal/ledger"
)

// DefaultFile is the configuration path used when none is given.
const DefaultFile = "mavensledger.hcl"

// Config is the complete configuration.
type Config struct {
	Session *SessionSettings `hcl:"session,block"`
	Output  *OutputSettings  `hcl:"output,block"`
	Mail    *MailSettings    `hcl:"mail,block"`
	Players []PlayerConfig   `hcl:"player,block"`
}

// SessionSettings controls replay behaviour.
type SessionSettings struct {
	Gate       bool   `hcl:"gate,optional"`
	Policy     string `hcl:"policy,optional"`
	Collisions string `hcl:"collisions,optional"`
}

// OutputSettings names the CSV outputs.
type OutputSettings struct {
	Dir             string `hcl:"dir,optional"`
	TransactionsCSV string `hcl:"transactions_csv,optional"`
	BalancesCSV     string `hcl:"balances_csv,optional"`
	BalanceNote     string `hcl:"balance_note,optional"`
}

// MailSettings configures delivery of player notes.
type MailSettings struct {
	From          string `hcl:"from,optional"`
	CC            string `hcl:"cc,optional"`
	Host          string `hcl:"host,optional"`
	Port          int    `hcl:"port,optional"`
	Username      string `hcl:"username,optional"`
	SubjectPrefix string `hcl:"subject_prefix,optional"`
}

// PlayerConfig maps a Poker Mavens screen name to a ledger alias.
type PlayerConfig struct {
	ScreenName string `hcl:"screen_name,label"`
	Alias      string `hcl:"alias"`
	Email      string `hcl:"email,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		file, diags = parser.ParseJSONFile(filename)
	} else {
		file, diags = parser.ParseHCLFile(filename)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %s", filename, diags.Error())
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Session == nil {
		c.Session = &SessionSettings{}
	}
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Mail == nil {
		c.Mail = &MailSettings{}
	}
	if c.Session.Policy == "" {
		c.Session.Policy = ledger.ContinueAndAdjust.String()
	}
	if c.Session.Collisions == "" {
		c.Session.Collisions = handlog.Warn.String()
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.TransactionsCSV == "" {
		c.Output.TransactionsCSV = "gamelog.csv"
	}
	if c.Output.BalancesCSV == "" {
		c.Output.BalancesCSV = "balances.csv"
	}
	if c.Output.BalanceNote == "" {
		c.Output.BalanceNote = "mavensledger calculation of Poker Mavens session"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 26
	}
	if c.Mail.SubjectPrefix == "" {
		c.Mail.SubjectPrefix = "Mavens game info from "
	}
}

// Validate checks enum-like values and the roster.
func (c *Config) Validate() error {
	if _, err := ledger.ParsePolicy(c.Session.Policy); err != nil {
		return err
	}
	if _, err := handlog.ParseCollisionPolicy(c.Session.Collisions); err != nil {
		return err
	}
	if c.Mail.Port < 1 || c.Mail.Port > 65535 {
		return fmt.Errorf("invalid mail port: %d", c.Mail.Port)
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.ScreenName == "" {
			return fmt.Errorf("player block with empty screen name")
		}
		if seen[p.ScreenName] {
			return fmt.Errorf("player %s: listed more than once", p.ScreenName)
		}
		seen[p.ScreenName] = true
		if p.Alias == "" {
			return fmt.Errorf("player %s: alias must not be empty", p.ScreenName)
		}
	}
	return nil
}

// LedgerOptions converts the session settings into replay options.
func (c *Config) LedgerOptions() (ledger.Options, error) {
	policy, err := ledger.ParsePolicy(c.Session.Policy)
	if err != nil {
		return ledger.Options{}, err
	}
	return ledger.Options{Gate: c.Session.Gate, Policy: policy}, nil
}

// CollisionPolicy returns the configured hand-number collision policy.
func (c *Config) CollisionPolicy() (handlog.CollisionPolicy, error) {
	return handlog.ParseCollisionPolicy(c.Session.Collisions)
}

// MailAddress returns the SMTP host:port.
func (c *Config) MailAddress() string {
	return fmt.Sprintf("%s:%d", c.Mail.Host, c.Mail.Port)
}

// OutputPath resolves an output file name against the output directory.
func (c *Config) OutputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}
