package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryKind partitions categories between the two record directions.
type CategoryKind string

const (
	CategoryExpense CategoryKind = "expense"
	CategoryIncome  CategoryKind = "income"
)

// Builtin categories the debt tracker writes compensating records against.
// The ids are fixed by the seed migration.
const (
	CategoryIDDebtRepayment  = "01H000000000000000CAT0009"
	CategoryIDDebtCollection = "01H000000000000000CAT0105"
)

// Category is a taxonomy entry for records. Builtin categories are seeded by
// migration and protected from deletion. Keywords feed the keyword matcher
// used for bill draft ingestion.
type Category struct {
	ID          string
	Name        string
	Icon        string
	Kind        CategoryKind
	Sort        int
	IsBuiltin   bool
	Keywords    []string
	BudgetLimit *decimal.Decimal
}

// MatchesRemark reports whether any keyword occurs in the remark,
// case-insensitively.
func (c *Category) MatchesRemark(remark string) bool {
	if len(c.Keywords) == 0 {
		return false
	}
	lower := strings.ToLower(remark)
	for _, kw := range c.Keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
