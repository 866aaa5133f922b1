package domain

import "time"

// Book is a named ledger partition. Every record and debt belongs to exactly
// one book; exactly one book is the default and cannot be deleted.
type Book struct {
	ID           string
	Name         string
	Icon         string
	BaseCurrency string
	IsDefault    bool
	CreatedAt    time.Time
}
