package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one signed balance effect applied to an account by the record
// engine. Deleting a record writes compensating entries rather than erasing
// the originals, so the balance history stays auditable.
type Entry struct {
	CreatedAt       time.Time
	ID              string
	AccountID       string
	RecordID        string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	AccountVersion  int64
}
