package domain

import "errors"

var (
	// Validation errors. Rejected before any mutation.
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidExchangeRate    = errors.New("exchange rate must be positive")
	ErrInvalidRecordKind      = errors.New("unknown record kind")
	ErrSameAccount            = errors.New("cannot transfer to same account")
	ErrMissingTransferAccount = errors.New("transfer requires source and destination accounts")
	ErrCategoryKindMismatch   = errors.New("category kind does not match record kind")
	ErrInvalidDayOfMonth      = errors.New("day of month must be between 1 and 28")
	ErrInvalidDebtDirection   = errors.New("unknown debt direction")
	ErrInvalidDraft           = errors.New("malformed record draft")

	// Not-found errors. The operation is a no-op.
	ErrAccountNotFound  = errors.New("account not found")
	ErrRecordNotFound   = errors.New("record not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDebtNotFound     = errors.New("debt not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrRuleNotFound     = errors.New("recurring rule not found")
	ErrTemplateNotFound = errors.New("template not found")

	// Invalid-state errors. The operation is refused with no partial effect.
	ErrNotReimbursable       = errors.New("record is not a reimbursable expense")
	ErrReimbursementAttached = errors.New("expense has an attached reimbursement record")
	ErrDebtCleared           = errors.New("debt is already cleared")
	ErrDefaultBookProtected  = errors.New("default book cannot be deleted")
	ErrBuiltinCategory       = errors.New("builtin category cannot be deleted")
)
