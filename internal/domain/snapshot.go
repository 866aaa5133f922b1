package domain

import "time"

// Snapshot is the full-state interchange bundle: every entity collection
// keyed by its logical name. Import is a complete overwrite, never a merge.
// Entries are not exported; they are an audit trail of the local ledger, and
// account balances travel verbatim on the accounts themselves.
type Snapshot struct {
	ExportedAt time.Time        `json:"exported_at"`
	Books      []*Book          `json:"books"`
	Categories []*Category      `json:"categories"`
	Accounts   []*Account       `json:"accounts"`
	Records    []*Record        `json:"records"`
	Debts      []*Debt          `json:"debts"`
	Repayments []*Repayment     `json:"repayments"`
	Goals      []*Goal          `json:"goals"`
	Rules      []*RecurringRule `json:"recurring_rules"`
	Templates  []*Template      `json:"templates"`
	Settings   *Settings        `json:"settings"`
}
