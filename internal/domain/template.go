package domain

import "github.com/shopspring/decimal"

// Template is a named quick-entry preset for frequently repeated records.
type Template struct {
	ID         string
	Name       string
	Kind       RecordKind
	Amount     decimal.Decimal
	CategoryID string
	AccountID  string
	Remark     string
	Tags       []string
}
